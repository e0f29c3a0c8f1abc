package blockdeque

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockFirstWriteDirection(t *testing.T) {
	t.Run("push back starts at the left edge", func(t *testing.T) {
		b := &block{}
		b.pushBack(7)
		require.Equal(t, 1, b.size)
		require.Equal(t, 0, b.head)
		require.Equal(t, 0, b.tail)
		require.Equal(t, 7, b.get(0))
	})

	t.Run("push front starts at the right edge", func(t *testing.T) {
		b := &block{}
		b.pushFront(7)
		require.Equal(t, 1, b.size)
		require.Equal(t, blockCap-1, b.head)
		require.Equal(t, blockCap-1, b.tail)
		require.Equal(t, 7, b.get(0))
	})
}

// A block first written by pushFront keeps all its room at the front; a block
// first written by pushBack keeps all its room at the back.
func TestBlockDirectionalBias(t *testing.T) {
	b := &block{}
	b.pushFront(1)
	require.True(t, b.isRightClose())
	require.True(t, b.isHeadShifted())
	for i := 2; i <= blockCap; i++ {
		b.pushFront(i)
	}
	require.True(t, b.isFull())
	require.False(t, b.isHeadShifted())

	b = &block{}
	b.pushBack(1)
	require.False(t, b.isRightClose())
	require.False(t, b.isHeadShifted())
	for i := 2; i <= blockCap; i++ {
		b.pushBack(i)
	}
	require.True(t, b.isFull())
	require.True(t, b.isRightClose())
}

func TestBlockPushPopWindow(t *testing.T) {
	b := &block{}
	b.pushBack(1)
	b.pushBack(2)
	b.pushBack(3)
	require.Equal(t, 3, b.size)
	require.Equal(t, 0, b.head)
	require.Equal(t, 2, b.tail)

	require.Equal(t, 3, b.popBack())
	require.Equal(t, 1, b.popFront())
	require.Equal(t, 1, b.size)
	require.Equal(t, 2, b.get(0))
}

// Emptying a block resets its window to the origin, so the next first write
// decides the growth direction afresh.
func TestBlockEmptyResetsWindow(t *testing.T) {
	b := &block{}
	b.pushFront(1)
	require.Equal(t, 1, b.popFront())
	require.Equal(t, 0, b.size)
	require.Equal(t, 0, b.head)
	require.Equal(t, 0, b.tail)

	b.pushBack(2)
	require.Equal(t, 0, b.head)

	require.Equal(t, 2, b.popBack())
	b.pushFront(3)
	require.Equal(t, blockCap-1, b.head)
}

func TestBlockPopZeroesSlot(t *testing.T) {
	b := &block{}
	b.pushBack(5)
	b.pushBack(6)
	b.popBack()
	require.Equal(t, 0, b.data[1])
	b.popFront()
	require.Equal(t, 0, b.data[0])
}

func TestBlockGetSet(t *testing.T) {
	b := &block{}
	for i := 0; i < 10; i++ {
		b.pushFront(i)
	}
	// Window sits at the right edge; get is window-relative.
	require.Equal(t, 9, b.get(0))
	require.Equal(t, 0, b.get(9))
	b.set(4, 42)
	require.Equal(t, 42, b.get(4))
	require.Equal(t, 42, b.data[b.head+4])
}

func TestNewFilledBlock(t *testing.T) {
	b := newFilledBlock(5, -1)
	require.Equal(t, 5, b.size)
	require.Equal(t, 0, b.head)
	require.Equal(t, 4, b.tail)
	for i := 0; i < 5; i++ {
		require.Equal(t, -1, b.get(i))
	}

	full := newFilledBlock(blockCap, 3)
	require.True(t, full.isFull())
	require.True(t, full.isRightClose())
}
