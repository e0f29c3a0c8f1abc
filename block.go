package blockdeque

// blockCap is the number of elements a single block holds, sized so a block's
// payload fills 512 bytes of ints.
const blockCap = 128

// A block stores a contiguous run of elements in a fixed array. The occupied
// window [head, tail] never wraps: a block that runs out of room on one side
// is retired by the ring, not wrapped, so indexing inside a block needs no
// modulo arithmetic.
//
// The first write to an empty block decides how the remaining room is split:
// pushFront starts the window at the right edge, pushBack at the left edge.
// How much head-room vs tail-room a block retains therefore depends on its
// first-ever write, not just on how many slots are free.
type block struct {
	data [blockCap]int
	size int
	head int
	tail int
}

// newFilledBlock returns a block holding n copies of filler, laid out from
// index 0. Requires 0 < n <= blockCap.
func newFilledBlock(n, filler int) *block {
	b := &block{size: n, tail: n - 1}
	for i := 0; i < n; i++ {
		b.data[i] = filler
	}
	return b
}

// pushBack writes v just past the current tail. The block must be empty or
// have tail < blockCap-1; the owner checks isFull/isRightClose before calling.
func (b *block) pushBack(v int) {
	if b.size == 0 {
		b.head, b.tail = 0, 0
		b.data[0] = v
	} else {
		b.tail++
		b.data[b.tail] = v
	}
	b.size++
}

// pushFront writes v just before the current head. The block must be empty or
// have head > 0; the owner checks isHeadShifted before calling.
func (b *block) pushFront(v int) {
	if b.size == 0 {
		b.head, b.tail = blockCap-1, blockCap-1
		b.data[b.head] = v
	} else {
		b.head--
		b.data[b.head] = v
	}
	b.size++
}

// popBack removes and returns the element at tail, zeroing its slot. Requires
// size > 0. A block that becomes empty resets its window to the origin, so
// the cursors never run past the array edges.
func (b *block) popBack() int {
	v := b.data[b.tail]
	b.data[b.tail] = 0
	b.size--
	if b.size == 0 {
		b.head, b.tail = 0, 0
	} else {
		b.tail--
	}
	return v
}

// popFront removes and returns the element at head, zeroing its slot.
// Requires size > 0.
func (b *block) popFront() int {
	v := b.data[b.head]
	b.data[b.head] = 0
	b.size--
	if b.size == 0 {
		b.head, b.tail = 0, 0
	} else {
		b.head++
	}
	return v
}

// get returns the i-th element of the window. Requires 0 <= i < size.
func (b *block) get(i int) int { return b.data[b.head+i] }

// set overwrites the i-th element of the window. Requires 0 <= i < size.
func (b *block) set(i, v int) { b.data[b.head+i] = v }

func (b *block) isEmpty() bool { return b.size == 0 }

func (b *block) isFull() bool { return b.size == blockCap }

// isHeadShifted reports whether the window still has room in front of head.
func (b *block) isHeadShifted() bool { return b.head != 0 }

// isRightClose reports whether the window already touches the right edge, in
// which case pushBack needs a fresh block even though slots may remain in
// front of head.
func (b *block) isRightClose() bool { return b.head+b.size >= blockCap }
