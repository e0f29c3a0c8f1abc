// Package blockdeque implements a double-ended queue over fixed-capacity
// element blocks addressed by a growable ring of ownership slots. Pushing at
// either end never moves existing elements: a full end gets a fresh block,
// and when the ring itself fills up only the block handles relocate.
package blockdeque

import (
	"errors"
	"fmt"
	"iter"
)

// Deque is a double-ended queue with amortized O(1) pushes and pops at both
// ends and O(1) access by position. Unlike a flat ring buffer it never copies
// element payloads on growth, and unlike a linked list it does not allocate
// per element.
//
// To create a Deque instance, you must use one of the available constructors,
// MakeDeque(), MakeDequeWithLen(n), MakeDequeFilled(n, filler), or
// CopySliceToDeque(s). Creating a Deque in the following way is wrong:
//
//	var deque Deque // wrong
//
// A Deque has a single logical owner and is not safe for concurrent use.
type Deque struct {
	ring  *blockRing
	count int
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeDeque returns an empty Deque holding one pre-allocated block and the
// default ring capacity.
func MakeDeque() *Deque {
	return &Deque{ring: newBlockRing()}
}

// MakeDequeWithLen returns a Deque of n zero-valued elements. Returns an
// error if passed a negative length.
func MakeDequeWithLen(n int) (*Deque, error) {
	return MakeDequeFilled(n, 0)
}

// MakeDequeFilled returns a Deque of n elements, each set to filler. The
// blocks are pre-allocated, with the last block holding the remainder.
// Returns an error if passed a negative length.
func MakeDequeFilled(n, filler int) (*Deque, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if n == 0 {
		return MakeDeque(), nil
	}
	return &Deque{ring: newBlockRingFilled(n, filler), count: n}, nil
}

// CopySliceToDeque returns a Deque with the contents of s in order, front to
// back. Memory is not shared with s. The ring is pre-sized for len(s), so the
// pushes never trigger a doubling.
func CopySliceToDeque(s []int) *Deque {
	d := &Deque{ring: newBlockRingForLen(len(s))}
	for _, v := range s {
		d.PushBack(v)
	}
	return d
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque) Len() int {
	if d == nil {
		return 0
	}
	return d.count
}

// Empty returns whether the Deque is empty.
func (d *Deque) Empty() bool { return d.count == 0 }

// Cap returns the element capacity of the current ring shape: slots times
// block size. Pushing past it doubles the ring, relocating only the block
// handles.
func (d *Deque) Cap() int { return len(d.ring.blocks) * blockCap }

// PushBack appends v at the back of the Deque. Use PushBack and PopFront for
// FIFO ordering, or PushBack and PopBack for LIFO ordering.
func (d *Deque) PushBack(v int) {
	if d.ring.isFull() && d.ring.tailBlockFull() {
		d.ring.expand()
	}
	if d.ring.tailBlockFull() || d.ring.tailRightClose() {
		d.ring.addTailBlock()
	}
	d.ring.tailBlock().pushBack(v)
	d.count++
}

// PushFront prepends v at the front of the Deque.
func (d *Deque) PushFront(v int) {
	if d.ring.isFull() && d.ring.headBlockFull() {
		d.ring.expand()
	}
	if d.count > 0 && d.ring.headStartNotShifted() {
		d.ring.addHeadBlock()
	}
	d.ring.headBlock().pushFront(v)
	d.count++
}

// PopBack removes the last element in the Deque and returns it. An emptied
// back block is released unless it is the only block left. Calling PopBack on
// an empty Deque leads to undefined behavior from then on.
func (d *Deque) PopBack() int {
	b := d.ring.tailBlock()
	v := b.popBack()
	if b.isEmpty() && d.count > 1 {
		d.ring.deleteTailBlock()
	}
	d.count--
	return v
}

// PopFront removes the first element in the Deque and returns it. An emptied
// front block is released unless it is the only block left. Calling PopFront
// on an empty Deque leads to undefined behavior from then on.
func (d *Deque) PopFront() int {
	b := d.ring.headBlock()
	v := b.popFront()
	if b.isEmpty() && d.count > 1 {
		d.ring.deleteHeadBlock()
	}
	d.count--
	return v
}

// PeekBack returns the last element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque) PeekBack() (v int, ok bool) {
	if d.Empty() {
		return
	}
	b := d.ring.tailBlock()
	return b.get(b.size - 1), true
}

// PeekFront returns the first element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque) PeekFront() (v int, ok bool) {
	if d.Empty() {
		return
	}
	return d.ring.headBlock().get(0), true
}

// At returns the element at position i, counting from the front. Panics if
// out of bounds.
func (d *Deque) At(i int) int {
	d.checkBounds(i)
	return d.AtUnsafe(i)
}

// AtUnsafe returns the element at position i without a bounds check. An
// out-of-range position reads whatever slot the block translation lands on.
func (d *Deque) AtUnsafe(i int) int {
	return d.ring.get(i)
}

// Set writes v to position i, counting from the front. Panics if out of
// bounds.
func (d *Deque) Set(i, v int) {
	d.checkBounds(i)
	d.SetUnsafe(i, v)
}

// SetUnsafe writes v to position i without a bounds check. An out-of-range
// position writes to whatever slot the block translation lands on.
func (d *Deque) SetUnsafe(i, v int) {
	d.ring.set(i, v)
}

// Clear discards every block and returns the Deque to its freshly constructed
// state, including the initial ring capacity. This is a real reset: popping
// everything keeps the grown ring, Clear does not.
func (d *Deque) Clear() {
	d.ring.reset()
	d.count = 0
}

/*****************************************************************************
 * COPY, MOVE, SWAP
 *****************************************************************************/

// Clone returns a deep copy of the Deque. The copy shares no memory with the
// original; mutating one never affects the other.
func (d *Deque) Clone() *Deque {
	return &Deque{ring: d.ring.clone(), count: d.count}
}

// Take moves the contents of src into d, dropping whatever d held. src is
// left reset to a valid empty state with the initial ring capacity, as if
// freshly constructed. Taking from itself is a no-op.
func (d *Deque) Take(src *Deque) {
	if d == src {
		return
	}
	d.ring = src.ring
	d.count = src.count
	src.ring = newBlockRing()
	src.count = 0
}

// Swap exchanges the contents of the two Deques in O(1). Only the counts and
// the rings' slot arrays and indices move; no element data is copied.
func (d *Deque) Swap(other *Deque) {
	d.ring.swap(other.ring)
	d.count, other.count = other.count, d.count
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// Iter returns an iterator over values only, front to back. If you need
// positions, use All instead. The Deque must not be mutated during iteration.
func (d *Deque) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		if d == nil {
			return
		}
		d.ring.forEachBlock(func(b *block) bool {
			for i := 0; i < b.size; i++ {
				if !yield(b.get(i)) {
					return false
				}
			}
			return true
		})
	}
}

// All returns an iterator over position-value pairs, front to back. If you
// don't need positions, use Iter instead. The Deque must not be mutated
// during iteration.
func (d *Deque) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if d == nil {
			return
		}
		pos := 0
		d.ring.forEachBlock(func(b *block) bool {
			for i := 0; i < b.size; i++ {
				if !yield(pos, b.get(i)) {
					return false
				}
				pos++
			}
			return true
		})
	}
}

// Equal returns whether both Deques have the same length and the same
// elements in the same order. Two nil Deques are equal, but an empty Deque
// and nil are not.
func Equal(d1, d2 *Deque) bool {
	if d1 == nil || d2 == nil {
		return d1 == d2
	}
	if d1.count != d2.count {
		return false
	}
	for i := 0; i < d1.count; i++ {
		if d1.ring.get(i) != d2.ring.get(i) {
			return false
		}
	}
	return true
}

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrNegativeLength is returned when constructing a Deque with a negative
// length.
var ErrNegativeLength = errors.New("length cannot be negative")

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

func (d *Deque) checkBounds(i int) {
	if i < 0 || i >= d.Len() {
		panic(fmt.Sprintf("blockdeque: index %d out of bounds with length %d", i, d.Len()))
	}
}
