// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package model

import (
	"github.com/iancoleman/orderedmap"
)

// Identifiable is implemented by entities that can be checked for duplicates.
// Two values are the same entity when their identity keys are equal, even if
// other fields differ.
type Identifiable interface {
	IdentityKey() string
}

// UniqueList is an ordered collection that holds at most one element per
// identity key. It is not safe for concurrent use.
type UniqueList[T Identifiable] struct {
	items *orderedmap.OrderedMap
	less  func(a, b T) bool
}

// NewUniqueList creates an empty list. When less is non-nil the list keeps
// itself sorted by it; otherwise insertion order is kept.
func NewUniqueList[T Identifiable](less func(a, b T) bool) *UniqueList[T] {
	return &UniqueList[T]{
		items: orderedmap.New(),
		less:  less,
	}
}

// Len returns the number of elements.
func (l *UniqueList[T]) Len() int {
	return len(l.items.Keys())
}

// Contains reports whether an element with the same identity as x exists.
func (l *UniqueList[T]) Contains(x T) bool {
	_, ok := l.items.Get(x.IdentityKey())
	return ok
}

// Add appends x. Fails with CodeDuplicateEntity if x's identity is taken.
func (l *UniqueList[T]) Add(x T) error {
	key := x.IdentityKey()
	if _, ok := l.items.Get(key); ok {
		return ErrDuplicate(key)
	}
	l.items.Set(key, x)
	l.sort()
	return nil
}

// Remove deletes the element with x's identity. Fails with
// CodeEntityNotFound if there is none.
func (l *UniqueList[T]) Remove(x T) error {
	key := x.IdentityKey()
	if _, ok := l.items.Get(key); !ok {
		return ErrNotFound(key)
	}
	l.items.Delete(key)
	return nil
}

// Get returns the element at index.
func (l *UniqueList[T]) Get(index Index) (T, error) {
	keys := l.items.Keys()
	if index.ZeroBased() >= len(keys) {
		var zero T
		return zero, ErrIndexOutOfRange(index, len(keys))
	}
	v, _ := l.items.Get(keys[index.ZeroBased()])
	return v.(T), nil
}

// RemoveAt deletes and returns the element at index.
func (l *UniqueList[T]) RemoveAt(index Index) (T, error) {
	x, err := l.Get(index)
	if err != nil {
		return x, err
	}
	l.items.Delete(x.IdentityKey())
	return x, nil
}

// SetAll replaces the contents with xs. The list is left untouched if xs
// contains two elements with the same identity.
func (l *UniqueList[T]) SetAll(xs []T) error {
	next := orderedmap.New()
	for _, x := range xs {
		key := x.IdentityKey()
		if _, ok := next.Get(key); ok {
			return ErrDuplicate(key)
		}
		next.Set(key, x)
	}
	l.items = next
	l.sort()
	return nil
}

// Items returns a copy of the elements in list order. Changing the returned
// slice does not change the list.
func (l *UniqueList[T]) Items() []T {
	keys := l.items.Keys()
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		v, _ := l.items.Get(k)
		out = append(out, v.(T))
	}
	return out
}

// Filter returns the elements for which keep returns true, in list order.
func (l *UniqueList[T]) Filter(keep func(T) bool) []T {
	var out []T
	for _, x := range l.Items() {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

// IndexOf returns the position of the element with x's identity.
func (l *UniqueList[T]) IndexOf(x T) (Index, bool) {
	key := x.IdentityKey()
	for i, k := range l.items.Keys() {
		if k == key {
			return FromZeroBased(i), true
		}
	}
	return Index{}, false
}

func (l *UniqueList[T]) sort() {
	if l.less == nil {
		return
	}
	l.items.Sort(func(a, b *orderedmap.Pair) bool {
		return l.less(a.Value().(T), b.Value().(T))
	})
}
