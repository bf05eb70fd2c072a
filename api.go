package ternary

import (
	"reflect"

	"github.com/mitchellh/copystructure"
	"github.com/pkg/errors"
)

// New returns a leaf node holding key. The key is stored as given, so any
// memory it references now belongs to the node.
func New[T any](key T) *Node[T] {
	return &Node[T]{key: key}
}

// NewCopy returns a leaf node holding a deep copy of key. Slices, maps and
// pointers reachable from key are duplicated, so later changes made by the
// caller are not visible through the node. Keys that cannot be copied
// faithfully, such as structs with unexported fields, are rejected with
// ErrInvalidOperation.
func NewCopy[T any](key T) (*Node[T], error) {
	c, err := copyKey(key)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

func copyKey[T any](key T) (T, error) {
	if any(key) == nil {
		return key, nil
	}
	v, err := copystructure.Copy(key)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "copy key")
	}
	c, ok := v.(T)
	if !ok {
		return key, errors.Errorf("copy key: got %T", v)
	}
	// unexported fields come back zeroed
	if !reflect.DeepEqual(key, c) {
		return key, errors.Wrapf(ErrInvalidOperation, "copy key: %T does not copy faithfully", key)
	}
	return c, nil
}
