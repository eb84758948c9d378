package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/fzft/go-smallset/log"
	"github.com/fzft/go-smallset/set"
)

const (
	histFileEnv     = "SMALLSET_HISTFILE"
	histFileDefault = ".smallset_history"
	prompt          = "smallset> "
)

const helpText = `commands:
  add <set> <member>...   insert members
  rem <set> <member>...   remove members
  has <set> <member>      membership test
  len <set>               number of members
  members <set>           list members
  union <a> <b>           members of a or b
  inter <a> <b>           members of both a and b
  diff <a> <b>            members of a not in b
  clear <set>             drop all members
  sets                    list known sets
  help                    this text
  quit                    leave the shell`

// shell holds named sets and evaluates one command line at a time.
type shell struct {
	sets map[string]*set.AdaptiveSet[string]
}

func newShell() *shell {
	return &shell{sets: make(map[string]*set.AdaptiveSet[string])}
}

func (sh *shell) get(name string) *set.AdaptiveSet[string] {
	s, ok := sh.sets[name]
	if !ok {
		s = set.New[string]()
		sh.sets[name] = s
	}
	return s
}

func members(s *set.AdaptiveSet[string]) string {
	if s.Empty() {
		return "(empty)"
	}
	return strings.Join(s.Slice(), " ")
}

// eval runs one command line and returns its output. quit reports that
// the user asked to leave.
func (sh *shell) eval(line string) (out string, quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]

	wrongArgs := func() (string, bool) {
		return fmt.Sprintf("wrong number of arguments for %q (try: help)", cmd), false
	}

	switch cmd {
	case "add":
		if len(args) < 2 {
			return wrongArgs()
		}
		s := sh.get(args[0])
		added := 0
		for _, m := range args[1:] {
			if s.Add(m) {
				added++
			}
		}
		return fmt.Sprintf("added %d", added), false

	case "rem":
		if len(args) < 2 {
			return wrongArgs()
		}
		s := sh.get(args[0])
		removed := 0
		for _, m := range args[1:] {
			if s.Remove(m) {
				removed++
			}
		}
		return fmt.Sprintf("removed %d", removed), false

	case "has":
		if len(args) != 2 {
			return wrongArgs()
		}
		return fmt.Sprintf("%v", sh.get(args[0]).Contains(args[1])), false

	case "len":
		if len(args) != 1 {
			return wrongArgs()
		}
		return fmt.Sprintf("%d", sh.get(args[0]).Len()), false

	case "members":
		if len(args) != 1 {
			return wrongArgs()
		}
		return members(sh.get(args[0])), false

	case "union":
		if len(args) != 2 {
			return wrongArgs()
		}
		return members(sh.get(args[0]).Union(sh.get(args[1]))), false

	case "inter":
		if len(args) != 2 {
			return wrongArgs()
		}
		return members(sh.get(args[0]).Intersection(sh.get(args[1]))), false

	case "diff":
		if len(args) != 2 {
			return wrongArgs()
		}
		return members(sh.get(args[0]).Difference(sh.get(args[1]))), false

	case "clear":
		if len(args) != 1 {
			return wrongArgs()
		}
		sh.get(args[0]).Clear()
		return "ok", false

	case "sets":
		if len(sh.sets) == 0 {
			return "(none)", false
		}
		names := make([]string, 0, len(sh.sets))
		for name := range sh.sets {
			names = append(names, name)
		}
		sort.Strings(names)
		return strings.Join(names, " "), false

	case "help":
		return helpText, false

	case "quit", "exit":
		return "", true
	}

	return fmt.Sprintf("unknown command %q (try: help)", cmd), false
}

func histFile() string {
	if f := os.Getenv(histFileEnv); f != "" {
		return f
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return histFileDefault
	}
	return filepath.Join(home, histFileDefault)
}

func runInteractive(sh *shell) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	hist := histFile()
	if f, err := os.Open(hist); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if err != liner.ErrPromptAborted && err != io.EOF {
				log.Logger.Error("prompt failed", zap.Error(err))
			}
			break
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		out, quit := sh.eval(input)
		if out != "" {
			fmt.Println(out)
		}
		if quit {
			break
		}
	}

	if f, err := os.Create(hist); err == nil {
		line.WriteHistory(f)
		f.Close()
	} else {
		log.Logger.Warn("could not save history", zap.String("file", hist), zap.Error(err))
	}
}

func runBatch(sh *shell) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		out, quit := sh.eval(scanner.Text())
		if out != "" {
			fmt.Println(out)
		}
		if quit {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Logger.Error("reading input failed", zap.Error(err))
	}
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := log.InitLogger(*debug); err != nil {
		fmt.Fprintln(os.Stderr, "logger init failed:", err)
		os.Exit(1)
	}
	defer log.Logger.Sync()

	sh := newShell()

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Println("smallset shell (try: help)")
		runInteractive(sh)
		return
	}
	runBatch(sh)
}
