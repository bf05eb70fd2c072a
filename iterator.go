package ternary

import (
	"iter"
	"slices"
)

// Begin returns an iterator positioned at n, the first node in prefix order.
func (n *Node[T]) Begin() *Iterator[T] {
	it := &Iterator[T]{root: n}
	if !n.Empty() {
		it.stack = append(it.stack, n)
	}
	return it
}

// End returns an exhausted iterator over n.
func (n *Node[T]) End() *Iterator[T] {
	return &Iterator[T]{root: n}
}

// All returns the keys of the tree in prefix order. The tree must not be
// changed while the sequence is being consumed.
func (n *Node[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := n.Begin(); it.Valid(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Keys collects the keys of the tree in prefix order.
func (n *Node[T]) Keys() []T {
	return slices.Collect(n.All())
}

// Begin returns a fresh iterator over the same tree positioned at its root.
func (it *Iterator[T]) Begin() *Iterator[T] {
	if it == nil {
		return nil
	}
	return it.root.Begin()
}

// End returns an exhausted iterator over the same tree.
func (it *Iterator[T]) End() *Iterator[T] {
	if it == nil {
		return nil
	}
	return it.root.End()
}

// Valid reports whether the iterator points at a node.
func (it *Iterator[T]) Valid() bool {
	return it != nil && len(it.stack) > 0
}

// Value returns the key of the current node. Calling Value on an exhausted
// iterator is a programming error and panics.
func (it *Iterator[T]) Value() T {
	if !it.Valid() {
		panic(ErrNoMoreNodes)
	}
	return it.stack[len(it.stack)-1].key
}

// Next moves to the following node in prefix order. It does nothing once
// the iterator is exhausted.
func (it *Iterator[T]) Next() {
	if !it.Valid() {
		return
	}

	top := len(it.stack) - 1
	node := it.stack[top]
	it.stack[top] = nil
	it.stack = it.stack[:top]

	// right first so that left is popped first
	for s := Right; s >= Left; s-- {
		if c := node.children[s]; !c.Empty() {
			it.stack = append(it.stack, c)
		}
	}
}

// PostNext advances the iterator and returns a copy of its state from
// before the move.
func (it *Iterator[T]) PostNext() *Iterator[T] {
	old := it.Clone()
	it.Next()
	return old
}

func (it *Iterator[T]) Clone() *Iterator[T] {
	if it == nil {
		return nil
	}
	return &Iterator[T]{root: it.root, stack: slices.Clone(it.stack)}
}

// Equal reports whether both iterators walk the same tree and have the same
// nodes pending. A nil iterator is bound to no tree and only equals another
// nil iterator; iterators over the empty tree are bound to it.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	if it == nil || other == nil {
		return it == nil && other == nil
	}
	return it.root == other.root && slices.Equal(it.stack, other.stack)
}

func (it *Iterator[T]) HasNext() bool {
	return it.Valid()
}

// Step returns the current key and advances, or ErrNoMoreNodes once the
// walk is over.
func (it *Iterator[T]) Step() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreNodes
	}
	v := it.Value()
	it.Next()
	return v, nil
}
