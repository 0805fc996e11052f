package arena

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/hupe1980/arenakit/internal/conv"
)

// Allocator is a typed adapter over an Arena. It computes the byte span and
// alignment for its element type and delegates the actual reservation to the
// bound arena. Allocator values are cheap to copy and compare by arena
// identity: two allocators are interchangeable exactly when they share a
// backing arena, regardless of element type.
//
// A nil arena selects the default heap allocator: allocations come from the
// Go runtime, Deallocate remains a no-op, and all heap allocators compare
// equal to each other.
type Allocator[T any] struct {
	arena *Arena

	// element layout, cached at construction
	size    uintptr
	align   uintptr
	ptrFree bool
}

// NewAllocator binds a typed allocator to an arena. The arena must outlive
// the allocator and every container constructed from it. A nil arena yields
// the default heap allocator.
func NewAllocator[T any](a *Arena) Allocator[T] {
	var zero T
	return Allocator[T]{
		arena:   a,
		size:    unsafe.Sizeof(zero),
		align:   unsafe.Alignof(zero),
		ptrFree: !typeHasPointers(reflect.TypeOf(&zero).Elem()),
	}
}

// Rebind produces an allocator for element type U bound to the same arena
// as al. Containers use this to allocate their internal node layout while
// preserving arena identity.
func Rebind[U, T any](al Allocator[T]) Allocator[U] {
	return NewAllocator[U](al.arena)
}

// Same reports whether two allocators of possibly different element types
// share a backing arena.
func Same[T, U any](a Allocator[T], b Allocator[U]) bool {
	return a.arena == b.arena
}

// Allocate reserves storage for n contiguous elements and returns a pointer
// to the first. The reservation is charged against the arena's capacity;
// ErrOutOfCapacity leaves the arena unchanged. n of zero returns nil.
func (al Allocator[T]) Allocate(n int) (*T, error) {
	s, err := al.slice(n)
	if err != nil || s == nil {
		return nil, err
	}
	return &s[0], nil
}

// AllocateSlice is Allocate returning the reservation as a slice of length n.
func (al Allocator[T]) AllocateSlice(n int) ([]T, error) {
	return al.slice(n)
}

func (al Allocator[T]) slice(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("arena: negative element count %d", n)
	}
	if n == 0 {
		return nil, nil
	}

	if al.arena == nil || al.size == 0 {
		return make([]T, n), nil
	}

	elemSize, err := conv.UintptrToInt(al.size)
	if err != nil {
		return nil, err
	}
	span, err := conv.MulInt(n, elemSize)
	if err != nil {
		return nil, err
	}

	if al.ptrFree {
		p, err := al.arena.AllocPointer(span, int(al.align))
		if err != nil {
			return nil, err
		}
		return unsafe.Slice((*T)(p), n), nil
	}

	// T contains Go pointers: charge the span against the cursor, but back
	// the allocation with a GC-visible slab pinned to the arena.
	if _, err := al.arena.reserve(span, int(al.align)); err != nil {
		return nil, err
	}
	s := make([]T, n)
	al.arena.pin(s)
	return s, nil
}

// Deallocate releases storage for n elements starting at p. It is a no-op,
// matching the arena's no-reclaim policy.
func (al Allocator[T]) Deallocate(_ *T, _ int) {}

// Equal reports whether al and other share a backing arena.
func (al Allocator[T]) Equal(other Allocator[T]) bool {
	return al.arena == other.arena
}

// Arena returns the backing arena (nil for the default heap allocator).
func (al Allocator[T]) Arena() *Arena { return al.arena }

// typeHasPointers reports whether values of t contain Go pointers the
// garbage collector must be able to see.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Chan, Func, Interface, Map, Pointer, Slice, String, UnsafePointer
		return true
	}
}
