package ring

import (
	"errors"
	"iter"
)

var (
	// ErrEmpty is returned when popping from an empty buffer.
	ErrEmpty = errors.New("ring: buffer is empty")

	// ErrOutOfRange is returned when an index is outside [0, Len()).
	ErrOutOfRange = errors.New("ring: index out of range")

	// ErrInvalidCapacity is returned by New for a non-positive capacity.
	ErrInvalidCapacity = errors.New("ring: capacity must be positive")
)

// Buffer is a fixed-capacity circular buffer. Logical index 0 is the oldest
// element; Len()-1 is the newest.
type Buffer[T any] struct {
	data []T
	head int
	size int
}

// New creates a buffer with freshly allocated storage for capacity elements.
func New[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Buffer[T]{data: make([]T, capacity)}, nil
}

// NewFrom creates a buffer on top of the caller's storage. The buffer aliases
// the slice rather than copying it; its capacity is len(storage), which must
// be positive.
func NewFrom[T any](storage []T) *Buffer[T] {
	return &Buffer[T]{data: storage}
}

// Len returns the number of stored elements.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool { return b.size == 0 }

// Full reports whether the buffer is at capacity.
func (b *Buffer[T]) Full() bool { return b.size == len(b.data) }

// idx maps a logical index to a position in the backing slice.
func (b *Buffer[T]) idx(i int) int {
	return (b.head + i) % len(b.data)
}

// PushBack appends v as the newest element. A full buffer overwrites its
// oldest element to make room.
func (b *Buffer[T]) PushBack(v T) {
	if len(b.data) == 0 {
		return
	}
	if b.Full() {
		b.data[b.head] = v
		b.head = (b.head + 1) % len(b.data)
		return
	}
	b.data[b.idx(b.size)] = v
	b.size++
}

// PushFront prepends v as the oldest element. A full buffer overwrites its
// newest element to make room.
func (b *Buffer[T]) PushFront(v T) {
	if len(b.data) == 0 {
		return
	}
	newHead := (b.head - 1 + len(b.data)) % len(b.data)
	b.data[newHead] = v
	b.head = newHead
	if !b.Full() {
		b.size++
	}
}

// PopBack removes and returns the newest element.
func (b *Buffer[T]) PopBack() (T, error) {
	var zero T
	if b.size == 0 {
		return zero, ErrEmpty
	}
	i := b.idx(b.size - 1)
	v := b.data[i]
	b.data[i] = zero
	b.size--
	return v, nil
}

// PopFront removes and returns the oldest element.
func (b *Buffer[T]) PopFront() (T, error) {
	var zero T
	if b.size == 0 {
		return zero, ErrEmpty
	}
	v := b.data[b.head]
	b.data[b.head] = zero
	b.head = (b.head + 1) % len(b.data)
	b.size--
	return v, nil
}

// At returns the element at logical index i.
func (b *Buffer[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= b.size {
		return zero, ErrOutOfRange
	}
	return b.data[b.idx(i)], nil
}

// Set overwrites the element at logical index i.
func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= b.size {
		return ErrOutOfRange
	}
	b.data[b.idx(i)] = v
	return nil
}

// Front returns the oldest element.
func (b *Buffer[T]) Front() (T, error) { return b.At(0) }

// Back returns the newest element.
func (b *Buffer[T]) Back() (T, error) { return b.At(b.size - 1) }

// Insert places v at logical index i, shifting later elements toward the
// back. Inserting into a full buffer evicts the oldest element first; as a
// consequence, inserting at index 0 of a full buffer is a no-op that leaves
// the buffer unchanged. Returns the logical index where v now lives.
func (b *Buffer[T]) Insert(i int, v T) (int, error) {
	if i < 0 || i > b.size {
		return 0, ErrOutOfRange
	}

	if b.Full() {
		if i == 0 {
			return 0, nil
		}
		if _, err := b.PopFront(); err != nil {
			return 0, err
		}
		i--
	}

	if b.size == 0 {
		b.PushBack(v)
		return 0, nil
	}

	last, _ := b.Back()
	b.PushBack(last)
	for j := b.size - 2; j > i; j-- {
		b.data[b.idx(j)] = b.data[b.idx(j-1)]
	}
	b.data[b.idx(i)] = v
	return i, nil
}

// Erase removes the element at logical index i, shifting later elements
// toward the front.
func (b *Buffer[T]) Erase(i int) error {
	if i < 0 || i >= b.size {
		return ErrOutOfRange
	}
	for j := i; j < b.size-1; j++ {
		b.data[b.idx(j)] = b.data[b.idx(j+1)]
	}
	_, err := b.PopBack()
	return err
}

// Clear removes all elements and releases their values to the garbage
// collector. Capacity is unchanged.
func (b *Buffer[T]) Clear() {
	var zero T
	for i := 0; i < b.size; i++ {
		b.data[b.idx(i)] = zero
	}
	b.head = 0
	b.size = 0
}

// Clone returns a buffer with the same capacity and elements in freshly
// allocated storage. The clone's elements are compacted to start at the
// beginning of its backing slice.
func (b *Buffer[T]) Clone() *Buffer[T] {
	out := &Buffer[T]{data: make([]T, len(b.data))}
	for i := 0; i < b.size; i++ {
		out.data[i] = b.data[b.idx(i)]
	}
	out.size = b.size
	return out
}

// Swap exchanges the contents, capacity, and storage of two buffers.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
	b.head, other.head = other.head, b.head
	b.size, other.size = other.size, b.size
}

// All yields elements oldest to newest.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(b.data[b.idx(i)]) {
				return
			}
		}
	}
}

// Backward yields elements newest to oldest.
func (b *Buffer[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := b.size - 1; i >= 0; i-- {
			if !yield(b.data[b.idx(i)]) {
				return
			}
		}
	}
}
