package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](b *Buffer[T]) []T {
	out := make([]T, 0, b.Len())
	for v := range b.All() {
		out = append(out, v)
	}
	return out
}

func TestBuffer_New(t *testing.T) {
	b, err := New[int](4)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Cap())
	assert.True(t, b.Empty())

	_, err = New[int](0)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = New[int](-1)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestBuffer_NewFrom(t *testing.T) {
	storage := make([]string, 3)
	b := NewFrom(storage)
	assert.Equal(t, 3, b.Cap())

	b.PushBack("a")
	b.PushBack("b")

	// NewFrom aliases, not copies.
	assert.Equal(t, "a", storage[0])
	assert.Equal(t, "b", storage[1])
}

func TestBuffer_PushOverwrite(t *testing.T) {
	t.Run("push back evicts oldest", func(t *testing.T) {
		b, err := New[int](3)
		require.NoError(t, err)

		for i := 1; i <= 3; i++ {
			b.PushBack(i)
		}
		assert.True(t, b.Full())
		assert.Equal(t, []int{1, 2, 3}, collect(b))

		b.PushBack(4)
		assert.Equal(t, []int{2, 3, 4}, collect(b))
		assert.Equal(t, 3, b.Len())
	})

	t.Run("push front evicts newest", func(t *testing.T) {
		b, err := New[int](3)
		require.NoError(t, err)

		for i := 1; i <= 3; i++ {
			b.PushBack(i)
		}

		b.PushFront(0)
		assert.Equal(t, []int{0, 1, 2}, collect(b))
		assert.Equal(t, 3, b.Len())
	})
}

func TestBuffer_Pop(t *testing.T) {
	b, err := New[int](4)
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		b.PushBack(i)
	}

	v, err := b.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = b.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = b.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = b.PopBack()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = b.PopFront()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestBuffer_Wraparound(t *testing.T) {
	b, err := New[int](3)
	require.NoError(t, err)

	// Rotate through the storage several times.
	for i := 0; i < 10; i++ {
		b.PushBack(i)
		if b.Len() > 2 {
			_, err := b.PopFront()
			require.NoError(t, err)
		}
	}

	assert.Equal(t, []int{8, 9}, collect(b))
}

func TestBuffer_AtSet(t *testing.T) {
	b, err := New[string](3)
	require.NoError(t, err)
	b.PushBack("a")
	b.PushBack("b")

	v, err := b.At(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	require.NoError(t, b.Set(0, "z"))
	assert.Equal(t, []string{"z", "b"}, collect(b))

	_, err = b.At(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.At(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, b.Set(5, "x"), ErrOutOfRange)

	front, err := b.Front()
	require.NoError(t, err)
	assert.Equal(t, "z", front)

	back, err := b.Back()
	require.NoError(t, err)
	assert.Equal(t, "b", back)
}

func TestBuffer_Insert(t *testing.T) {
	t.Run("middle", func(t *testing.T) {
		b, err := New[int](5)
		require.NoError(t, err)
		for _, v := range []int{1, 2, 4} {
			b.PushBack(v)
		}

		i, err := b.Insert(2, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, i)
		assert.Equal(t, []int{1, 2, 3, 4}, collect(b))
	})

	t.Run("into empty", func(t *testing.T) {
		b, err := New[int](2)
		require.NoError(t, err)

		i, err := b.Insert(0, 7)
		require.NoError(t, err)
		assert.Equal(t, 0, i)
		assert.Equal(t, []int{7}, collect(b))
	})

	t.Run("full buffer evicts oldest", func(t *testing.T) {
		b, err := New[int](3)
		require.NoError(t, err)
		for _, v := range []int{1, 2, 3} {
			b.PushBack(v)
		}

		i, err := b.Insert(2, 9)
		require.NoError(t, err)
		assert.Equal(t, 1, i)
		assert.Equal(t, []int{2, 9, 3}, collect(b))
	})

	t.Run("full buffer at index zero is a no-op", func(t *testing.T) {
		b, err := New[int](3)
		require.NoError(t, err)
		for _, v := range []int{1, 2, 3} {
			b.PushBack(v)
		}

		i, err := b.Insert(0, 9)
		require.NoError(t, err)
		assert.Equal(t, 0, i)
		assert.Equal(t, []int{1, 2, 3}, collect(b))
	})

	t.Run("out of range", func(t *testing.T) {
		b, err := New[int](3)
		require.NoError(t, err)

		_, err = b.Insert(1, 9)
		assert.ErrorIs(t, err, ErrOutOfRange)
		_, err = b.Insert(-1, 9)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestBuffer_Erase(t *testing.T) {
	b, err := New[int](4)
	require.NoError(t, err)
	for _, v := range []int{1, 2, 3, 4} {
		b.PushBack(v)
	}

	require.NoError(t, b.Erase(1))
	assert.Equal(t, []int{1, 3, 4}, collect(b))

	require.NoError(t, b.Erase(2))
	assert.Equal(t, []int{1, 3}, collect(b))

	assert.ErrorIs(t, b.Erase(2), ErrOutOfRange)
}

func TestBuffer_CloneSwapClear(t *testing.T) {
	b, err := New[int](3)
	require.NoError(t, err)
	for _, v := range []int{1, 2, 3} {
		b.PushBack(v)
	}
	b.PushBack(4) // wrap so the clone has to compact

	c := b.Clone()
	assert.Equal(t, collect(b), collect(c))

	c.PushBack(9)
	assert.Equal(t, []int{2, 3, 4}, collect(b), "clone is independent")

	other, err := New[int](2)
	require.NoError(t, err)
	other.PushBack(8)

	b.Swap(other)
	assert.Equal(t, []int{8}, collect(b))
	assert.Equal(t, 2, b.Cap())
	assert.Equal(t, []int{2, 3, 4}, collect(other))
	assert.Equal(t, 3, other.Cap())

	b.Clear()
	assert.True(t, b.Empty())
	assert.Equal(t, 2, b.Cap())
}

func TestBuffer_Backward(t *testing.T) {
	b, err := New[int](4)
	require.NoError(t, err)
	for _, v := range []int{1, 2, 3} {
		b.PushBack(v)
	}

	var out []int
	for v := range b.Backward() {
		out = append(out, v)
	}
	assert.Equal(t, []int{3, 2, 1}, out)

	for v := range b.All() {
		if v == 2 {
			break
		}
		out = append(out, v)
	}
	assert.Equal(t, []int{3, 2, 1, 1}, out)
}
