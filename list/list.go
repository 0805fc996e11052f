package list

import (
	"errors"

	"github.com/hupe1980/arenakit/arena"
)

var (
	// ErrInvalidIterator is returned when dereferencing the sentinel,
	// advancing past the end, or using an iterator against a list it does
	// not belong to.
	ErrInvalidIterator = errors.New("list: invalid iterator")
	// ErrIncompatibleAllocators is returned by Swap when propagation is
	// disabled and the two lists do not share a backing arena.
	ErrIncompatibleAllocators = errors.New("list: swap of non-propagating lists with different allocators")
)

// node is the internal ring element. The sentinel is a node whose value is
// never used.
type node[T any] struct {
	value      T
	prev, next *node[T]
}

// List is a doubly linked list over a sentinel-terminated circular ring.
// Construct lists with New, NewLen, or NewFill; the zero value is not usable.
type List[T any] struct {
	root   node[T] // sentinel, lives in the List itself
	size   int
	alloc  arena.Allocator[T]
	nodes  arena.Allocator[node[T]]
	policy Policy
}

// Option is a configuration option for List constructors.
type Option func(*config)

type config struct {
	policy Policy
}

// WithPolicy sets the allocator propagation policy. The zero Policy is the
// default: no propagation, clones share the source's allocator.
func WithPolicy(p Policy) Option {
	return func(c *config) { c.policy = p }
}

// New creates an empty list whose nodes are served by the given allocator.
// The allocator's arena (if any) must outlive the list.
func New[T any](al arena.Allocator[T], opts ...Option) *List[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	l := &List[T]{
		alloc:  al,
		nodes:  arena.Rebind[node[T]](al),
		policy: c.policy,
	}
	l.root.prev = &l.root
	l.root.next = &l.root
	return l
}

// NewLen creates a list of n zero-valued elements. If allocation fails
// partway, every node built so far is released and the error is returned.
func NewLen[T any](al arena.Allocator[T], n int, opts ...Option) (*List[T], error) {
	var zero T
	return NewFill(al, n, zero, opts...)
}

// NewFill creates a list of n copies of v. Same failure behavior as NewLen.
func NewFill[T any](al arena.Allocator[T], n int, v T, opts ...Option) (*List[T], error) {
	l := New(al, opts...)
	for i := 0; i < n; i++ {
		if _, err := l.Insert(l.End(), v); err != nil {
			l.Clear()
			return nil, err
		}
	}
	return l, nil
}

// Allocator returns the element allocator the list was constructed with, so
// sibling containers can be built over the same arena.
func (l *List[T]) Allocator() arena.Allocator[T] { return l.alloc }

// Policy returns the list's propagation policy.
func (l *List[T]) Policy() Policy { return l.policy }

// Len returns the number of elements. It is maintained incrementally and
// never recomputed by traversal.
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

func (l *List[T]) link(left, right *node[T]) {
	left.next = right
	right.prev = left
}

func (l *List[T]) connect(left, mid, right *node[T]) {
	left.next = mid
	mid.prev = left
	mid.next = right
	right.prev = mid
}

func (l *List[T]) createNode(v T) (*node[T], error) {
	n, err := l.nodes.Allocate(1)
	if err != nil {
		return nil, err
	}
	n.value = v
	return n, nil
}

// destroyNode drops the payload so the pinned node slab cannot keep element
// references alive, then releases the node.
func (l *List[T]) destroyNode(n *node[T]) {
	var zero T
	n.value = zero
	n.prev, n.next = nil, nil
	l.nodes.Deallocate(n, 1)
}

// Insert splices v immediately before pos and returns an iterator to the new
// element. On allocation failure the list is left exactly as it was.
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	if pos.list != l || pos.n == nil {
		return l.End(), ErrInvalidIterator
	}

	n, err := l.createNode(v)
	if err != nil {
		return l.End(), err
	}

	l.connect(pos.n.prev, n, pos.n)
	l.size++
	return Iterator[T]{list: l, n: n}, nil
}

// Erase unlinks the element at pos and returns an iterator to the element
// that followed it. Erasing End or anything from an empty list is a no-op
// returning End.
func (l *List[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	if pos.list != l || pos.n == nil {
		return l.End(), ErrInvalidIterator
	}
	if l.size == 0 || pos.n == &l.root {
		return l.End(), nil
	}

	next := pos.n.next
	l.link(pos.n.prev, next)
	l.destroyNode(pos.n)
	l.size--
	return Iterator[T]{list: l, n: next}, nil
}

// PushBack appends v. Equivalent to Insert at End.
func (l *List[T]) PushBack(v T) error {
	_, err := l.Insert(l.End(), v)
	return err
}

// PushFront prepends v. Equivalent to Insert at Begin.
func (l *List[T]) PushFront(v T) error {
	_, err := l.Insert(l.Begin(), v)
	return err
}

// PopBack removes and returns the last element. The second return value is
// false when the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	n := l.root.prev
	v := n.value
	l.link(n.prev, &l.root)
	l.destroyNode(n)
	l.size--
	return v, true
}

// PopFront removes and returns the first element. The second return value is
// false when the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	n := l.root.next
	v := n.value
	l.link(&l.root, n.next)
	l.destroyNode(n)
	l.size--
	return v, true
}

// Front returns the first element without removing it.
func (l *List[T]) Front() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	return l.root.next.value, true
}

// Back returns the last element without removing it.
func (l *List[T]) Back() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	return l.root.prev.value, true
}

// Clear releases every node and leaves the list empty. The arena itself
// reclaims nothing; see the arena package.
func (l *List[T]) Clear() {
	current := l.root.next
	for current != &l.root {
		doomed := current
		current = current.next
		l.destroyNode(doomed)
	}
	l.root.next = &l.root
	l.root.prev = &l.root
	l.size = 0
}
