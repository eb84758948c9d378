package set

import (
	"fmt"
	"hash/fnv"
)

const (
	loadFactor       = 0.7
	defaultTableSize = 16
)

type entry[K comparable, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// HashTable is a separate chaining hash table. Keys are hashed by
// FNV-1a over their formatted value; equality is the key type's own ==.
type HashTable[K comparable, V any] struct {
	table []*entry[K, V]
	size  int
	count int
}

func NewHashTable[K comparable, V any](initSize int) *HashTable[K, V] {
	if initSize < 1 {
		initSize = defaultTableSize
	}
	return &HashTable[K, V]{
		table: make([]*entry[K, V], initSize),
		size:  initSize,
	}
}

func (h *HashTable[K, V]) hash(key K) int {
	hasher := fnv.New32a()
	hasher.Write([]byte(fmt.Sprintf("%v", key)))
	return int(hasher.Sum32() % uint32(h.size))
}

// Set stores value under key, reporting whether the key was newly
// inserted. An existing key has its value updated in place.
func (h *HashTable[K, V]) Set(key K, value V) bool {
	if float64(h.count)/float64(h.size) > loadFactor {
		h.resize()
	}

	index := h.hash(key)
	for curr := h.table[index]; curr != nil; curr = curr.next {
		if curr.key == key {
			curr.value = value
			return false
		}
	}
	h.table[index] = &entry[K, V]{key: key, value: value, next: h.table[index]}
	h.count++
	return true
}

func (h *HashTable[K, V]) resize() {
	oldTable := h.table
	h.size *= 2
	h.table = make([]*entry[K, V], h.size)
	h.count = 0

	for _, e := range oldTable {
		for e != nil {
			h.Set(e.key, e.value)
			e = e.next
		}
	}
}

// Delete removes key, reporting whether it was present.
func (h *HashTable[K, V]) Delete(key K) bool {
	index := h.hash(key)
	prev := &h.table[index]
	for curr := *prev; curr != nil; curr = curr.next {
		if curr.key == key {
			*prev = curr.next
			h.count--
			return true
		}
		prev = &curr.next
	}
	return false
}

// Get returns the value stored under key.
func (h *HashTable[K, V]) Get(key K) (V, bool) {
	index := h.hash(key)
	for curr := h.table[index]; curr != nil; curr = curr.next {
		if curr.key == key {
			return curr.value, true
		}
	}
	var zero V
	return zero, false
}

// LookupKey returns the stored key equal to key, if any.
func (h *HashTable[K, V]) LookupKey(key K) (K, bool) {
	index := h.hash(key)
	for curr := h.table[index]; curr != nil; curr = curr.next {
		if curr.key == key {
			return curr.key, true
		}
	}
	var zero K
	return zero, false
}

// Len returns the number of entries in the hash table
func (h *HashTable[K, V]) Len() int {
	return h.count
}

// Empty returns true if the hash table is empty
func (h *HashTable[K, V]) Empty() bool {
	return h.count == 0
}

// Clone returns an independent copy of the table.
func (h *HashTable[K, V]) Clone() *HashTable[K, V] {
	out := NewHashTable[K, V](h.size)
	for _, e := range h.table {
		for e != nil {
			out.Set(e.key, e.value)
			e = e.next
		}
	}
	return out
}

// Keys returns a lazy iterator over the keys, in bucket order. The
// order is unspecified and changes across resizes.
func (h *HashTable[K, V]) Keys() Iterator[K] {
	return &tableIterator[K, V]{t: h}
}

type tableIterator[K comparable, V any] struct {
	t      *HashTable[K, V]
	bucket int
	entry  *entry[K, V]
}

func (it *tableIterator[K, V]) Next() (K, bool) {
	for it.entry == nil {
		if it.bucket >= it.t.size {
			var zero K
			return zero, false
		}
		it.entry = it.t.table[it.bucket]
		it.bucket++
	}
	k := it.entry.key
	it.entry = it.entry.next
	return k, true
}
