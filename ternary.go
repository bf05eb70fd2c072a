package ternary

import (
	"errors"
	"fmt"
)

const (
	Left Slot = iota
	Middle
	Right
)

const (
	// number of child slots of every node
	slotCount = 3
)

var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrMissingChild     = errors.New("missing child")
	ErrOutOfRange       = errors.New("slot out of range")
	ErrNoMoreNodes      = errors.New("There are no more nodes in the tree")
)

type (
	// Slot addresses one of the three children of a node.
	Slot int

	// Node is a vertex of a ternary tree. The nil *Node is the empty tree:
	// it owns nothing, accepts no children and is shared by every tree.
	Node[T any] struct {
		key      T
		children [slotCount]*Node[T]
	}

	// Iterator walks a tree in prefix order: node, then left, middle and
	// right subtrees. It does not own the tree it walks.
	Iterator[T any] struct {
		root *Node[T]
		// pending subtrees, top of stack is the next node to visit
		stack []*Node[T]
	}
)

func (s Slot) String() string {
	if !s.valid() {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return []string{"left", "middle", "right"}[s]
}

func (s Slot) valid() bool {
	return s >= Left && s <= Right
}
