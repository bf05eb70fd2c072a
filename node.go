package ternary

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Empty reports whether n is the empty tree.
func (n *Node[T]) Empty() bool {
	return n == nil
}

// Value returns the key stored in n.
func (n *Node[T]) Value() (T, error) {
	if n.Empty() {
		var zero T
		return zero, errors.Wrap(ErrInvalidOperation, "value of empty tree")
	}
	return n.key, nil
}

func (n *Node[T]) Left() *Node[T] {
	return n.child(Left)
}

func (n *Node[T]) Middle() *Node[T] {
	return n.child(Middle)
}

func (n *Node[T]) Right() *Node[T] {
	return n.child(Right)
}

// Child returns the subtree in slot s, which may be the empty tree.
func (n *Node[T]) Child(s Slot) (*Node[T], error) {
	if !s.valid() {
		return nil, errors.Wrapf(ErrOutOfRange, "child %s", s)
	}
	return n.child(s), nil
}

func (n *Node[T]) child(s Slot) *Node[T] {
	if n.Empty() {
		return nil
	}
	return n.children[s]
}

func (n *Node[T]) AddLeft(sub *Node[T]) error {
	return n.Attach(Left, sub)
}

func (n *Node[T]) AddMiddle(sub *Node[T]) error {
	return n.Attach(Middle, sub)
}

func (n *Node[T]) AddRight(sub *Node[T]) error {
	return n.Attach(Right, sub)
}

// Attach hands sub over to n as its child in slot s. The slot must be empty;
// an occupied slot is never overwritten. Once attached, sub is owned by n and
// must not be attached anywhere else. sub must not be n or an ancestor of n:
// only the first case is detected, the second builds a cycle.
func (n *Node[T]) Attach(s Slot, sub *Node[T]) error {
	if !s.valid() {
		return errors.Wrapf(ErrOutOfRange, "attach %s", s)
	}
	if n.Empty() {
		return errors.Wrapf(ErrInvalidOperation, "attach %s to empty tree", s)
	}
	if !n.children[s].Empty() {
		return errors.Wrapf(ErrInvalidOperation, "attach %s: slot is occupied", s)
	}
	if sub == n {
		return errors.Wrapf(ErrInvalidOperation, "attach %s: node cannot own itself", s)
	}

	n.children[s] = sub
	return nil
}

func (n *Node[T]) RemoveLeft() (*Node[T], error) {
	return n.Detach(Left)
}

func (n *Node[T]) RemoveMiddle() (*Node[T], error) {
	return n.Detach(Middle)
}

func (n *Node[T]) RemoveRight() (*Node[T], error) {
	return n.Detach(Right)
}

// Detach removes the subtree in slot s and returns it to the caller, who
// becomes its owner. Detaching from an empty slot is an error.
func (n *Node[T]) Detach(s Slot) (*Node[T], error) {
	if !s.valid() {
		return nil, errors.Wrapf(ErrOutOfRange, "detach %s", s)
	}
	if n.child(s).Empty() {
		return nil, errors.Wrapf(ErrMissingChild, "detach %s", s)
	}

	sub := n.children[s]
	n.children[s] = nil
	return sub, nil
}

// Leaf reports whether n has no children. The empty tree is a leaf.
func (n *Node[T]) Leaf() bool {
	if n.Empty() {
		return true
	}
	for _, c := range n.children {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// Height returns 0 for a leaf and one more than the highest child otherwise.
func (n *Node[T]) Height() (int, error) {
	if n.Empty() {
		return 0, errors.Wrap(ErrInvalidOperation, "height of empty tree")
	}
	return n.height(), nil
}

func (n *Node[T]) height() int {
	h := 0
	for _, c := range n.children {
		if c.Empty() {
			continue
		}
		if ch := c.height() + 1; ch > h {
			h = ch
		}
	}
	return h
}

// Size returns the number of nodes in the tree rooted at n.
func (n *Node[T]) Size() int {
	if n.Empty() {
		return 0
	}
	size := 1
	for _, c := range n.children {
		size += c.Size()
	}
	return size
}

// Clone returns a copy of the tree rooted at n made of freshly allocated
// nodes. Keys are copied by assignment. Cloning the empty tree returns the
// empty tree.
func (n *Node[T]) Clone() *Node[T] {
	if n.Empty() {
		return n
	}

	c := New(n.key)
	for i, child := range n.children {
		c.children[i] = child.Clone()
	}
	return c
}

// CloneDeep is Clone with every key deep-copied as NewCopy does.
func (n *Node[T]) CloneDeep() (*Node[T], error) {
	if n.Empty() {
		return n, nil
	}

	c, err := NewCopy(n.key)
	if err != nil {
		return nil, err
	}
	for i, child := range n.children {
		if c.children[i], err = child.CloneDeep(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// CopyFrom replaces the key and children of n with a copy of src. The old
// children of n are released. src may be n itself or one of its descendants.
func (n *Node[T]) CopyFrom(src *Node[T]) error {
	if src.Empty() {
		return errors.Wrap(ErrInvalidOperation, "copy from empty tree")
	}
	if n.Empty() {
		return errors.Wrap(ErrInvalidOperation, "copy into empty tree")
	}

	// copy before release, src may live below n
	key := src.key
	var children [slotCount]*Node[T]
	for i, c := range src.children {
		children[i] = c.Clone()
	}

	n.release()
	n.key, n.children = key, children
	return nil
}

// Move returns a new node that takes over the key and children of n in
// constant time. n is left with a zero key and three empty slots.
func (n *Node[T]) Move() *Node[T] {
	if n.Empty() {
		return n
	}

	m := &Node[T]{key: n.key, children: n.children}
	n.clear()
	return m
}

// MoveFrom releases the children of n and takes over the key and children
// of src, leaving src with a zero key and three empty slots. Moving a node
// onto itself does nothing. n must not be a descendant of src, or the tree
// ends up owning itself.
func (n *Node[T]) MoveFrom(src *Node[T]) error {
	if n == src {
		return nil
	}
	if src.Empty() {
		return errors.Wrap(ErrInvalidOperation, "move from empty tree")
	}
	if n.Empty() {
		return errors.Wrap(ErrInvalidOperation, "move into empty tree")
	}

	key, children := src.key, src.children
	src.clear()

	n.release()
	n.key, n.children = key, children
	return nil
}

// Release tears down the tree rooted at n: every node is detached from its
// parent and its key is zeroed. It returns the number of nodes released.
// The empty tree owns nothing and releases nothing.
func (n *Node[T]) Release() int {
	if n.Empty() {
		return 0
	}
	released := n.release() + 1
	var zero T
	n.key = zero
	return released
}

// release drops every child of n, returning the number of nodes released
func (n *Node[T]) release() int {
	released := 0
	for i, c := range n.children {
		if c.Empty() {
			continue
		}
		released += c.Release()
		n.children[i] = nil
	}
	return released
}

func (n *Node[T]) clear() {
	var zero T
	n.key = zero
	n.children = [slotCount]*Node[T]{}
}

// Fingerprint hashes the shape and keys of the tree rooted at n. Keys are
// hashed through their %v formatting, so trees with the same shape and
// equally printed keys share a fingerprint.
func (n *Node[T]) Fingerprint() uint64 {
	d := xxhash.New()
	n.fingerprint(d)
	return d.Sum64()
}

func (n *Node[T]) fingerprint(d *xxhash.Digest) {
	if n.Empty() {
		_, _ = d.WriteString("-")
		return
	}

	s := fmt.Sprint(n.key)
	fmt.Fprintf(d, "(%d:%s", len(s), s)
	for _, c := range n.children {
		c.fingerprint(d)
	}
	_, _ = d.WriteString(")")
}
