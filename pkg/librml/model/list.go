package model

import (
	"fmt"
	"iter"
	"reflect"

	rmlErrors "slub/librml/pkg/librml/errors"
)

// List is an ordered sequence that only holds values of type T.
//
// Add checks the element type at compile time. Append, Insert and Set accept
// any value and reject those whose dynamic type is not T with a
// TypeMismatchError, which is what decoders and other untyped callers use.
type List[T any] struct {
	items []T
}

// NewList creates an empty list.
func NewList[T any]() *List[T] {
	return &List[T]{items: make([]T, 0)}
}

// Add appends v.
func (l *List[T]) Add(v T) {
	l.items = append(l.items, v)
}

// Append appends v after checking its type.
func (l *List[T]) Append(v any) error {
	item, err := l.check(v)
	if err != nil {
		return err
	}
	l.items = append(l.items, item)
	return nil
}

// Insert inserts v at index i, shifting later elements. i may equal Len.
func (l *List[T]) Insert(i int, v any) error {
	item, err := l.check(v)
	if err != nil {
		return err
	}
	if i < 0 || i > len(l.items) {
		return fmt.Errorf("insert index %d out of range [0,%d]", i, len(l.items))
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	return nil
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, v any) error {
	item, err := l.check(v)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("index %d out of range [0,%d)", i, len(l.items))
	}
	l.items[i] = item
	return nil
}

// At returns the element at index i.
func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, fmt.Errorf("index %d out of range [0,%d)", i, len(l.items))
	}
	return l.items[i], nil
}

// Delete removes the element at index i.
func (l *List[T]) Delete(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("index %d out of range [0,%d)", i, len(l.items))
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Len returns the number of elements. A nil list is empty.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Items returns a copy of the elements in insertion order.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// All iterates over the elements in insertion order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

func (l *List[T]) check(v any) (T, error) {
	item, ok := v.(T)
	if !ok {
		var zero T
		return zero, &rmlErrors.TypeMismatchError{
			Want: reflect.TypeFor[T]().String(),
			Got:  fmt.Sprintf("%T", v),
		}
	}
	return item, nil
}
