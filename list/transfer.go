package list

import "github.com/hupe1980/arenakit/arena"

// Policy governs whether a list's allocator travels with its elements during
// copy, move, and swap. The zero value disables all propagation and lets
// clones share the source's allocator, mirroring the defaults of a stateful
// stack allocator.
type Policy struct {
	// PropagateOnCopy adopts the source's allocator during Assign.
	PropagateOnCopy bool
	// PropagateOnMove adopts the source's allocator during MoveAssign,
	// enabling the O(1) ring transfer even across arenas.
	PropagateOnMove bool
	// PropagateOnSwap exchanges the two lists' allocators during Swap.
	// When false, Swap requires both lists to share a backing arena.
	PropagateOnSwap bool
	// FreshAllocatorOnClone gives clones a fresh default (heap) allocator
	// instead of sharing the source's.
	FreshAllocatorOnClone bool
}

// adopt re-points l's sentinel at other's ring and resets other to empty.
// l's previous ring is dropped without destruction; callers clear l first.
func (l *List[T]) adopt(other *List[T]) {
	if other.size == 0 {
		l.root.next = &l.root
		l.root.prev = &l.root
		l.size = 0
		return
	}
	l.root.next = other.root.next
	l.root.prev = other.root.prev
	l.root.next.prev = &l.root
	l.root.prev.next = &l.root
	l.size = other.size

	other.root.next = &other.root
	other.root.prev = &other.root
	other.size = 0
}

// Clone copies the list element by element. The clone's allocator is the
// source's own unless FreshAllocatorOnClone selects a default one. If any
// allocation fails partway, every node built so far is released and no
// partial list escapes.
func (l *List[T]) Clone() (*List[T], error) {
	al := l.alloc
	if l.policy.FreshAllocatorOnClone {
		al = arena.NewAllocator[T](nil)
	}
	return l.CloneWith(al)
}

// CloneWith copies the list using the given allocator.
func (l *List[T]) CloneWith(al arena.Allocator[T]) (*List[T], error) {
	out := New(al, WithPolicy(l.policy))
	for n := l.root.next; n != &l.root; n = n.next {
		if _, err := out.Insert(out.End(), n.value); err != nil {
			out.Clear()
			return nil, err
		}
	}
	return out, nil
}

// Assign replaces l's contents with a copy of src. Honors PropagateOnCopy
// for allocator selection. The copy is built before l is touched, so a
// failed Assign leaves l unchanged.
func (l *List[T]) Assign(src *List[T]) error {
	if l == src {
		return nil
	}

	al := l.alloc
	if l.policy.PropagateOnCopy {
		al = src.alloc
	}

	tmp, err := src.CloneWith(al)
	if err != nil {
		return err
	}

	l.Clear()
	l.alloc = al
	l.nodes = tmp.nodes
	l.adopt(tmp)
	return nil
}

// Move transfers the entire ring into a new list in O(1), leaving l empty
// with its allocator intact.
func (l *List[T]) Move() *List[T] {
	out := New(l.alloc, WithPolicy(l.policy))
	out.adopt(l)
	return out
}

// MoveAssign replaces l's contents with src's. When PropagateOnMove is set
// or both lists share a backing arena, the whole ring transfers in O(1) and
// src is left empty. Otherwise each element is moved out of src and erased
// from it one at a time; this path is not atomic: if a mid-sequence
// allocation fails, l is cleared and src keeps the elements that had not yet
// been moved.
func (l *List[T]) MoveAssign(src *List[T]) error {
	if l == src {
		return nil
	}

	if l.policy.PropagateOnMove || arena.Same(l.alloc, src.alloc) {
		l.Clear()
		if l.policy.PropagateOnMove {
			l.alloc = src.alloc
			l.nodes = src.nodes
		}
		l.adopt(src)
		return nil
	}

	l.Clear()
	it := src.Begin()
	for !it.AtEnd() {
		v, err := it.Value()
		if err != nil {
			return err
		}
		if _, err := l.Insert(l.End(), v); err != nil {
			l.Clear()
			return err
		}
		if it, err = src.Erase(it); err != nil {
			return err
		}
	}
	return nil
}

// Swap exchanges the contents of two lists in O(1). Allocators are swapped
// only under PropagateOnSwap; without it, both lists must share a backing
// arena or Swap fails with ErrIncompatibleAllocators.
func (l *List[T]) Swap(other *List[T]) error {
	if l == other {
		return nil
	}

	if !l.policy.PropagateOnSwap && !arena.Same(l.alloc, other.alloc) {
		return ErrIncompatibleAllocators
	}

	if l.policy.PropagateOnSwap {
		l.alloc, other.alloc = other.alloc, l.alloc
		l.nodes, other.nodes = other.nodes, l.nodes
	}

	// Degenerate cases are handled as explicit relinking, not general-case
	// arithmetic: an empty side's sentinel must not end up linked into the
	// other ring.
	switch {
	case l.size == 0 && other.size == 0:
		return nil
	case l.size == 0:
		l.adopt(other)
		return nil
	case other.size == 0:
		other.adopt(l)
		return nil
	}

	lFirst, lLast := l.root.next, l.root.prev
	oFirst, oLast := other.root.next, other.root.prev

	l.root.next, l.root.prev = oFirst, oLast
	other.root.next, other.root.prev = lFirst, lLast

	lFirst.prev, lLast.next = &other.root, &other.root
	oFirst.prev, oLast.next = &l.root, &l.root

	l.size, other.size = other.size, l.size
	return nil
}
