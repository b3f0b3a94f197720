package store

import "slices"

// SameFunc reports whether two elements represent the same entity.
type SameFunc[T any] func(a, b T) bool

// UniqueList is an ordered list in which no two elements are the same under
// its SameFunc. Identity, not full equality, governs every lookup.
//
// The zero value is not usable; construct with NewUniqueList.
type UniqueList[T any] struct {
	same  SameFunc[T]
	items []T
}

// NewUniqueList creates an empty list using same as the identity predicate.
func NewUniqueList[T any](same SameFunc[T]) *UniqueList[T] {
	return &UniqueList[T]{same: same}
}

// Contains reports whether an element the same as item is in the list.
func (l *UniqueList[T]) Contains(item T) bool {
	return l.IndexOf(item) >= 0
}

// IndexOf returns the position of the element the same as item, or -1.
func (l *UniqueList[T]) IndexOf(item T) int {
	return slices.IndexFunc(l.items, func(existing T) bool {
		return l.same(existing, item)
	})
}

// Add appends item to the end of the list.
// Returns ErrDuplicateItem if an element the same as item already exists.
func (l *UniqueList[T]) Add(item T) error {
	if l.Contains(item) {
		return ErrDuplicateItem
	}
	l.items = append(l.items, item)
	return nil
}

// Set replaces the element the same as target with replacement, keeping its
// position.
// Returns ErrItemNotFound if target is absent, or ErrDuplicateItem if
// replacement is the same as a different element.
func (l *UniqueList[T]) Set(target, replacement T) error {
	index, err := l.setIndex(target, replacement)
	if err != nil {
		return err
	}
	l.items[index] = replacement
	return nil
}

// CanSet reports the error Set would return for the same arguments without
// changing the list.
func (l *UniqueList[T]) CanSet(target, replacement T) error {
	_, err := l.setIndex(target, replacement)
	return err
}

func (l *UniqueList[T]) setIndex(target, replacement T) (int, error) {
	index := l.IndexOf(target)
	if index < 0 {
		return -1, ErrItemNotFound
	}

	for i, existing := range l.items {
		if i != index && l.same(existing, replacement) {
			return -1, ErrDuplicateItem
		}
	}
	return index, nil
}

// Remove deletes the element the same as item.
// Returns ErrItemNotFound if no such element exists.
func (l *UniqueList[T]) Remove(item T) error {
	index := l.IndexOf(item)
	if index < 0 {
		return ErrItemNotFound
	}
	l.items = slices.Delete(l.items, index, index+1)
	return nil
}

// RemoveFunc deletes the first element for which match returns true.
// Returns ErrItemNotFound if nothing matches.
func (l *UniqueList[T]) RemoveFunc(match func(T) bool) error {
	index := slices.IndexFunc(l.items, match)
	if index < 0 {
		return ErrItemNotFound
	}
	l.items = slices.Delete(l.items, index, index+1)
	return nil
}

// SetAll replaces the whole contents with items.
// Returns ErrDuplicateItems, leaving the list untouched, if items contains
// two elements that are the same.
func (l *UniqueList[T]) SetAll(items []T) error {
	if !l.allUnique(items) {
		return ErrDuplicateItems
	}
	l.items = slices.Clone(items)
	return nil
}

// Len returns the number of elements.
func (l *UniqueList[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i. It panics if i is out of range.
func (l *UniqueList[T]) At(i int) T {
	return l.items[i]
}

// Items returns a copy of the elements in order.
func (l *UniqueList[T]) Items() []T {
	return slices.Clone(l.items)
}

func (l *UniqueList[T]) allUnique(items []T) bool {
	for i := 0; i < len(items)-1; i++ {
		for j := i + 1; j < len(items); j++ {
			if l.same(items[i], items[j]) {
				return false
			}
		}
	}
	return true
}
