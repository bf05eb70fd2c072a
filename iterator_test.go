package ternary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorPrefixOrder(t *testing.T) {
	tree := sampleTree(t)

	var got []string
	for it, end := tree.Begin(), tree.End(); !it.Equal(end); it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []string{"R", "L", "L1", "M", "Ω"}, got)

	got = got[:0]
	for k := range tree.All() {
		got = append(got, k)
	}
	assert.Equal(t, []string{"R", "L", "L1", "M", "Ω"}, got)
}

func TestIteratorLayouts(t *testing.T) {
	dataSet := []struct {
		keys     []string
		expected []string
	}{
		{
			[]string{"a"},
			[]string{"a"},
		},
		{
			[]string{"a", "b", "c", "d"},
			[]string{"a", "b", "c", "d"},
		},
		{
			[]string{"a", "b", "c", "d", "e", "f", "g", "h"},
			[]string{"a", "b", "e", "f", "g", "c", "h", "d"},
		},
	}

	for _, d := range dataSet {
		tree := buildTree(t, d.keys)
		assert.Equal(t, d.expected, tree.Keys())
		assert.Equal(t, prefixOrder(d.keys, 0, nil), tree.Keys())
	}
}

func TestIteratorEmptyTree(t *testing.T) {
	var e *Node[int]

	assert.True(t, e.Begin().Equal(e.End()))
	assert.False(t, e.Begin().Valid())
	assert.Empty(t, e.Keys())

	n := 0
	for range e.All() {
		n++
	}
	assert.Equal(t, 0, n)

	it := e.Begin()
	it.Next()
	assert.False(t, it.Valid())
	assert.Panics(t, func() { it.Value() })

	_, err := it.Step()
	assert.Equal(t, ErrNoMoreNodes, err)
}

func TestIteratorExhausted(t *testing.T) {
	tree := New(7)
	it := tree.Begin()
	assert.True(t, it.Valid())
	assert.Equal(t, 7, it.Value())

	it.Next()
	assert.True(t, it.Equal(tree.End()))
	it.Next()
	assert.True(t, it.Equal(tree.End()))
	assert.Panics(t, func() { it.Value() })
}

func TestIteratorPostNext(t *testing.T) {
	tree := sampleTree(t)
	it := tree.Begin()

	old := it.PostNext()
	assert.Equal(t, "R", old.Value())
	assert.Equal(t, "L", it.Value())

	it.Next()
	it.Next()
	assert.Equal(t, "M", it.Value())
	assert.Equal(t, "R", old.Value())

	old.Next()
	assert.Equal(t, "L", old.Value())
	assert.Equal(t, "M", it.Value())
}

func TestIteratorBeginEnd(t *testing.T) {
	tree := sampleTree(t)
	it := tree.Begin()
	it.Next()
	it.Next()

	begin := it.Begin()
	assert.True(t, begin.Equal(tree.Begin()))
	assert.Equal(t, "R", begin.Value())
	assert.Equal(t, "L1", it.Value())

	end := it.End()
	assert.True(t, end.Equal(tree.End()))
	assert.False(t, end.Valid())
	assert.Equal(t, "L1", it.Value())
}

func TestIteratorEqual(t *testing.T) {
	a := sampleTree(t)
	b := a.Clone()

	assert.True(t, a.Begin().Equal(a.Begin()))
	assert.False(t, a.Begin().Equal(b.Begin()))
	assert.False(t, a.Begin().Equal(a.End()))

	// same tree, same number of pending nodes, different positions
	x := a.Begin()
	x.Next() // pending L, M, Ω
	y := a.Begin()
	y.Next()
	y.Next() // pending L1, M, Ω
	assert.Equal(t, len(x.stack), len(y.stack))
	assert.False(t, x.Equal(y))

	c := x.Clone()
	assert.True(t, c.Equal(x))
	c.Next()
	assert.False(t, c.Equal(x))
	assert.True(t, c.Equal(y))

	var unbound *Iterator[string]
	var e *Node[string]
	assert.True(t, unbound.Equal(nil))
	assert.False(t, unbound.Equal(e.End()))
	assert.False(t, e.Begin().Equal(unbound))
	assert.True(t, e.Begin().Equal(e.End()))
	assert.False(t, unbound.Equal(a.End()))
	assert.False(t, a.End().Equal(unbound))
}

func TestIteratorNilReceiver(t *testing.T) {
	var it *Iterator[int]

	assert.Nil(t, it.Begin())
	assert.Nil(t, it.End())
	assert.Nil(t, it.Clone())
	assert.False(t, it.Valid())
	assert.False(t, it.HasNext())
	it.Next()

	_, err := it.Step()
	assert.Equal(t, ErrNoMoreNodes, err)
}

func TestIteratorStep(t *testing.T) {
	tree := New("2")
	require.NoError(t, tree.AddLeft(New("1")))

	it := tree.Begin()
	assert.True(t, it.HasNext())
	v, err := it.Step()
	assert.NoError(t, err)
	assert.Equal(t, "2", v)

	assert.True(t, it.HasNext())
	v, err = it.Step()
	assert.NoError(t, err)
	assert.Equal(t, "1", v)

	assert.False(t, it.HasNext())
	v, err = it.Step()
	assert.Equal(t, "", v)
	assert.Equal(t, ErrNoMoreNodes, err)
}

func TestIteratorAllStop(t *testing.T) {
	tree := sampleTree(t)

	var got []string
	for k := range tree.All() {
		if k == "M" {
			break
		}
		got = append(got, k)
	}
	assert.Equal(t, []string{"R", "L", "L1"}, got)
}

func BenchmarkWordsTreeIterate(b *testing.B) {
	benchTrees(b, func(b *testing.B, keys []string, tree *Node[string]) {
		for i := 0; i < b.N/len(keys); i++ {
			for it := tree.Begin(); it.Valid(); it.Next() {
			}
		}
	})
}
