package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/arenakit/arena"
)

func TestList_Clone(t *testing.T) {
	t.Run("copies are independent", func(t *testing.T) {
		a := newIntArena(t, 32)
		l := New(arena.NewAllocator[int](a))
		for _, v := range []int{1, 2, 3} {
			require.NoError(t, l.PushBack(v))
		}

		c, err := l.Clone()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, collect(c))

		require.NoError(t, c.PushBack(4))
		_, ok := l.PopFront()
		require.True(t, ok)

		assert.Equal(t, []int{2, 3}, collect(l))
		assert.Equal(t, []int{1, 2, 3, 4}, collect(c))
	})

	t.Run("clone shares the source allocator by default", func(t *testing.T) {
		a := newIntArena(t, 32)
		l := New(arena.NewAllocator[int](a))
		require.NoError(t, l.PushBack(1))

		c, err := l.Clone()
		require.NoError(t, err)
		assert.True(t, arena.Same(l.Allocator(), c.Allocator()))
	})

	t.Run("fresh allocator on clone", func(t *testing.T) {
		a := newIntArena(t, 32)
		l := New(arena.NewAllocator[int](a),
			WithPolicy(Policy{FreshAllocatorOnClone: true}))
		require.NoError(t, l.PushBack(1))

		c, err := l.Clone()
		require.NoError(t, err)
		assert.Nil(t, c.Allocator().Arena())
		assert.Equal(t, []int{1}, collect(c))
	})

	t.Run("failed clone releases partial copy", func(t *testing.T) {
		// Source holds 3 nodes; the arena has room for one more, so the
		// clone fails partway through.
		a := newIntArena(t, 4)
		l := New(arena.NewAllocator[int](a))
		for _, v := range []int{1, 2, 3} {
			require.NoError(t, l.PushBack(v))
		}

		_, err := l.Clone()
		require.ErrorIs(t, err, arena.ErrOutOfCapacity)

		// Source is untouched.
		assert.Equal(t, []int{1, 2, 3}, collect(l))
	})
}

func TestList_Assign(t *testing.T) {
	t.Run("replaces contents", func(t *testing.T) {
		a := newIntArena(t, 32)
		src := New(arena.NewAllocator[int](a))
		dst := New(arena.NewAllocator[int](a))
		for _, v := range []int{1, 2} {
			require.NoError(t, src.PushBack(v))
		}
		require.NoError(t, dst.PushBack(9))

		require.NoError(t, dst.Assign(src))
		assert.Equal(t, []int{1, 2}, collect(dst))
		assert.Equal(t, []int{1, 2}, collect(src), "source unchanged")
	})

	t.Run("failure leaves destination unchanged", func(t *testing.T) {
		srcArena := newIntArena(t, 8)
		dstArena := newIntArena(t, 3)

		src := New(arena.NewAllocator[int](srcArena))
		for _, v := range []int{1, 2, 3, 4, 5} {
			require.NoError(t, src.PushBack(v))
		}

		dst := New(arena.NewAllocator[int](dstArena))
		require.NoError(t, dst.PushBack(42))

		err := dst.Assign(src)
		require.ErrorIs(t, err, arena.ErrOutOfCapacity)
		assert.Equal(t, []int{42}, collect(dst))
	})

	t.Run("propagate on copy adopts source allocator", func(t *testing.T) {
		srcArena := newIntArena(t, 16)
		dstArena := newIntArena(t, 16)

		src := New(arena.NewAllocator[int](srcArena))
		require.NoError(t, src.PushBack(1))

		dst := New(arena.NewAllocator[int](dstArena),
			WithPolicy(Policy{PropagateOnCopy: true}))

		require.NoError(t, dst.Assign(src))
		assert.True(t, arena.Same(dst.Allocator(), src.Allocator()))
		assert.Equal(t, []int{1}, collect(dst))
	})

	t.Run("self assign", func(t *testing.T) {
		a := newIntArena(t, 8)
		l := New(arena.NewAllocator[int](a))
		require.NoError(t, l.PushBack(1))

		require.NoError(t, l.Assign(l))
		assert.Equal(t, []int{1}, collect(l))
	})
}

func TestList_Move(t *testing.T) {
	// List X with [1,2,3] on arena A; move-constructing Y leaves X empty
	// and Y holding the original elements in order.
	a := newIntArena(t, 8)
	x := New(arena.NewAllocator[int](a))
	for _, v := range []int{1, 2, 3} {
		require.NoError(t, x.PushBack(v))
	}

	y := x.Move()

	assert.True(t, x.Empty())
	assert.Equal(t, 0, x.Len())
	assert.Equal(t, []int{1, 2, 3}, collect(y))
	assert.True(t, arena.Same(x.Allocator(), y.Allocator()))

	// The emptied source remains usable.
	require.NoError(t, x.PushBack(7))
	assert.Equal(t, []int{7}, collect(x))
	assert.Equal(t, []int{1, 2, 3}, collect(y))
}

func TestList_MoveAssign(t *testing.T) {
	t.Run("same arena transfers the ring", func(t *testing.T) {
		a := newIntArena(t, 16)
		src := New(arena.NewAllocator[int](a))
		dst := New(arena.NewAllocator[int](a))
		for _, v := range []int{1, 2, 3} {
			require.NoError(t, src.PushBack(v))
		}
		require.NoError(t, dst.PushBack(9))

		require.NoError(t, dst.MoveAssign(src))
		assert.True(t, src.Empty())
		assert.Equal(t, []int{1, 2, 3}, collect(dst))
	})

	t.Run("propagate on move transfers across arenas", func(t *testing.T) {
		srcArena := newIntArena(t, 16)
		dstArena := newIntArena(t, 16)

		src := New(arena.NewAllocator[int](srcArena))
		for _, v := range []int{1, 2} {
			require.NoError(t, src.PushBack(v))
		}

		dst := New(arena.NewAllocator[int](dstArena),
			WithPolicy(Policy{PropagateOnMove: true}))

		require.NoError(t, dst.MoveAssign(src))
		assert.True(t, src.Empty())
		assert.Equal(t, []int{1, 2}, collect(dst))
		assert.True(t, arena.Same(dst.Allocator(), src.Allocator()))
	})

	t.Run("fallback moves element-wise", func(t *testing.T) {
		srcArena := newIntArena(t, 16)
		dstArena := newIntArena(t, 16)

		src := New(arena.NewAllocator[int](srcArena))
		for _, v := range []int{1, 2, 3} {
			require.NoError(t, src.PushBack(v))
		}

		dst := New(arena.NewAllocator[int](dstArena))

		require.NoError(t, dst.MoveAssign(src))
		assert.True(t, src.Empty())
		assert.Equal(t, []int{1, 2, 3}, collect(dst))
		assert.False(t, arena.Same(dst.Allocator(), src.Allocator()))
	})

	t.Run("fallback failure clears destination, source keeps remainder", func(t *testing.T) {
		srcArena := newIntArena(t, 8)
		dstArena := newIntArena(t, 2)

		src := New(arena.NewAllocator[int](srcArena))
		for _, v := range []int{1, 2, 3, 4} {
			require.NoError(t, src.PushBack(v))
		}

		dst := New(arena.NewAllocator[int](dstArena))

		err := dst.MoveAssign(src)
		require.ErrorIs(t, err, arena.ErrOutOfCapacity)

		// Destination exposes no partial result; source retains the
		// elements that were never moved out.
		assert.True(t, dst.Empty())
		assert.Equal(t, []int{3, 4}, collect(src))
	})

	t.Run("self move-assign", func(t *testing.T) {
		a := newIntArena(t, 8)
		l := New(arena.NewAllocator[int](a))
		require.NoError(t, l.PushBack(1))

		require.NoError(t, l.MoveAssign(l))
		assert.Equal(t, []int{1}, collect(l))
	})
}

func TestList_Swap(t *testing.T) {
	t.Run("both non-empty", func(t *testing.T) {
		a := newIntArena(t, 16)
		l1 := New(arena.NewAllocator[int](a))
		l2 := New(arena.NewAllocator[int](a))
		for _, v := range []int{1, 2, 3} {
			require.NoError(t, l1.PushBack(v))
		}
		for _, v := range []int{7, 8} {
			require.NoError(t, l2.PushBack(v))
		}

		require.NoError(t, l1.Swap(l2))
		assert.Equal(t, []int{7, 8}, collect(l1))
		assert.Equal(t, []int{1, 2, 3}, collect(l2))
		assert.Equal(t, 2, l1.Len())
		assert.Equal(t, 3, l2.Len())
	})

	t.Run("one side empty", func(t *testing.T) {
		a := newIntArena(t, 16)
		l1 := New(arena.NewAllocator[int](a))
		l2 := New(arena.NewAllocator[int](a))
		require.NoError(t, l2.PushBack(5))

		require.NoError(t, l1.Swap(l2))
		assert.Equal(t, []int{5}, collect(l1))
		assert.True(t, l2.Empty())

		// And back the other way.
		require.NoError(t, l1.Swap(l2))
		assert.True(t, l1.Empty())
		assert.Equal(t, []int{5}, collect(l2))
	})

	t.Run("both empty", func(t *testing.T) {
		a := newIntArena(t, 4)
		l1 := New(arena.NewAllocator[int](a))
		l2 := New(arena.NewAllocator[int](a))

		require.NoError(t, l1.Swap(l2))
		assert.True(t, l1.Empty())
		assert.True(t, l2.Empty())
	})

	t.Run("distinct arenas without propagation are rejected", func(t *testing.T) {
		a1 := newIntArena(t, 4)
		a2 := newIntArena(t, 4)
		l1 := New(arena.NewAllocator[int](a1))
		l2 := New(arena.NewAllocator[int](a2))
		require.NoError(t, l1.PushBack(1))

		err := l1.Swap(l2)
		assert.ErrorIs(t, err, ErrIncompatibleAllocators)
		assert.Equal(t, []int{1}, collect(l1), "failed swap changes nothing")
	})

	t.Run("propagate on swap exchanges allocators", func(t *testing.T) {
		a1 := newIntArena(t, 4)
		a2 := newIntArena(t, 4)
		l1 := New(arena.NewAllocator[int](a1),
			WithPolicy(Policy{PropagateOnSwap: true}))
		l2 := New(arena.NewAllocator[int](a2))
		require.NoError(t, l1.PushBack(1))
		require.NoError(t, l2.PushBack(2))

		require.NoError(t, l1.Swap(l2))
		assert.Equal(t, []int{2}, collect(l1))
		assert.Equal(t, []int{1}, collect(l2))
		assert.Same(t, a2, l1.Allocator().Arena())
		assert.Same(t, a1, l2.Allocator().Arena())
	})

	t.Run("self swap", func(t *testing.T) {
		a := newIntArena(t, 4)
		l := New(arena.NewAllocator[int](a))
		require.NoError(t, l.PushBack(1))

		require.NoError(t, l.Swap(l))
		assert.Equal(t, []int{1}, collect(l))
	})
}
