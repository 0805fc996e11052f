package list

import "iter"

// Iterator is a bidirectional cursor over a list. It is bound to the list
// that produced it; using it against another list reports
// ErrInvalidIterator. The zero Iterator is invalid.
//
// An Iterator grants mutable access through Ref and Set; callers that only
// read use Value. There is no separate read-only iterator type.
type Iterator[T any] struct {
	list *List[T]
	n    *node[T]
}

// Begin returns an iterator to the first element (End when the list is
// empty).
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{list: l, n: l.root.next}
}

// End returns the past-the-end iterator, positioned on the sentinel.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{list: l, n: &l.root}
}

// AtEnd reports whether the iterator is positioned on the sentinel.
func (it Iterator[T]) AtEnd() bool {
	return it.list == nil || it.n == &it.list.root
}

// Eq reports whether two iterators address the same position of the same
// list.
func (it Iterator[T]) Eq(other Iterator[T]) bool {
	return it.list == other.list && it.n == other.n
}

// Next advances the iterator by one position. Advancing from End is a
// contract violation and reports ErrInvalidIterator; advancing from the last
// element to End is fine.
func (it *Iterator[T]) Next() error {
	if it.list == nil || it.n == nil || it.n == &it.list.root {
		return ErrInvalidIterator
	}
	it.n = it.n.next
	return nil
}

// Prev moves the iterator back by one position. Moving before the first
// element reports ErrInvalidIterator; moving from End to the last element is
// fine.
func (it *Iterator[T]) Prev() error {
	if it.list == nil || it.n == nil || it.n.prev == &it.list.root {
		return ErrInvalidIterator
	}
	it.n = it.n.prev
	return nil
}

// Value returns the element at the iterator's position. Dereferencing the
// sentinel reports ErrInvalidIterator.
func (it Iterator[T]) Value() (T, error) {
	if it.list == nil || it.n == nil || it.n == &it.list.root {
		var zero T
		return zero, ErrInvalidIterator
	}
	return it.n.value, nil
}

// Ref returns a pointer to the element at the iterator's position for
// in-place mutation.
func (it Iterator[T]) Ref() (*T, error) {
	if it.list == nil || it.n == nil || it.n == &it.list.root {
		return nil, ErrInvalidIterator
	}
	return &it.n.value, nil
}

// Set replaces the element at the iterator's position.
func (it Iterator[T]) Set(v T) error {
	p, err := it.Ref()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// All yields the elements in order, front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.root.next; n != &l.root; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields the elements in reverse order, back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.root.prev; n != &l.root; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}
