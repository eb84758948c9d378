package set

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestAdaptiveSetCloneIndependence(t *testing.T) {
	build := map[string][]int{
		"single": {1},
		"array":  {1, 2, 3, 4},
		"hash":   {1, 2, 3, 4, 5, 6, 7, 8, 9},
	}

	for name, elems := range build {
		t.Run(name, func(t *testing.T) {
			orig := New[int](elems...)
			cp := orig.Clone()
			assert.Equal(t, orig.mode, cp.mode, "clone keeps the representation")

			cp.Add(1000)
			cp.Remove(elems[0])
			assert.Equal(t, len(elems), orig.Len())
			assert.True(t, orig.Contains(elems[0]))
			assert.False(t, orig.Contains(1000))

			orig.Add(2000)
			assert.False(t, cp.Contains(2000))
		})
	}
}

func TestAdaptiveSetUnionDoesNotMutateOperands(t *testing.T) {
	a := New[int](1, 2, 3)
	b := New[int](3, 4)

	u := a.Union(b)

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 4, u.Len())
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, u.Slice())
}

// TestSetAlgebra cross-checks Union, Intersection and Difference
// against samber/lo over random inputs, with operand sizes spanning
// every representation mode.
func TestSetAlgebra(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{0, 1, 2, 5, 8, 9, 40}

	randElems := func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = rng.Intn(30)
		}
		return out
	}

	for _, na := range sizes {
		for _, nb := range sizes {
			t.Run(fmt.Sprintf("%d-%d", na, nb), func(t *testing.T) {
				as := lo.Uniq(randElems(na))
				bs := lo.Uniq(randElems(nb))

				a := New[int](as...)
				b := New[int](bs...)

				wantUnion := lo.Union(as, bs)
				wantInter := lo.Intersect(as, bs)
				wantDiff, _ := lo.Difference(as, bs)

				assert.ElementsMatch(t, wantUnion, a.Union(b).Slice())
				assert.ElementsMatch(t, wantInter, a.Intersection(b).Slice())
				assert.ElementsMatch(t, wantDiff, a.Difference(b).Slice())

				// operands are left untouched
				assert.ElementsMatch(t, as, a.Slice())
				assert.ElementsMatch(t, bs, b.Slice())
			})
		}
	}
}

func TestSetAlgebraAcrossImplementations(t *testing.T) {
	// the algebra accepts any Set implementation as the other operand
	a := New[string]("a", "b", "c")
	b := NewHashSet[string](0)
	b.Add("b")
	b.Add("d")

	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, a.Union(b).Slice())
	assert.ElementsMatch(t, []string{"b"}, a.Intersection(b).Slice())
	assert.ElementsMatch(t, []string{"a", "c"}, a.Difference(b).Slice())
}

func TestContainsAllAndEquals(t *testing.T) {
	a := New[int](1, 2, 3)
	b := New[int](1, 2)

	assert.True(t, a.ContainsAll(b))
	assert.False(t, b.ContainsAll(a))
	assert.False(t, a.Equals(b))

	b.Add(3)
	assert.True(t, a.Equals(b))
	assert.True(t, b.ContainsAll(a))

	// comparison works across representations
	big := New[int]()
	for i := 1; i <= 9; i++ {
		big.Add(i)
	}
	small := New[int](1, 2, 3)
	assert.True(t, big.ContainsAll(small))
	assert.False(t, big.Equals(small))

	h := NewHashSet[int](0)
	for i := 1; i <= 9; i++ {
		h.Add(i)
	}
	assert.True(t, big.Equals(h))
}

func TestAddAllRemoveAll(t *testing.T) {
	s := New[int]()
	s.AddAll(1, 2, 3, 2, 1)
	assert.Equal(t, 3, s.Len())

	s.RemoveAll(2, 3, 99)
	assert.Equal(t, []int{1}, s.Slice())
}
