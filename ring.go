package blockdeque

import "math/bits"

// initialRingCap is the slot count of a fresh ring. Ring capacities are always
// powers of two so slot indices wrap with a mask.
const initialRingCap = 16

// A blockRing is a circular array of block ownership slots. The populated
// slots occupy ring positions head..tail (wrapping); a nil slot owns nothing.
// A freshly built ring always holds exactly one empty block, so callers never
// observe a ring with no block at all.
//
// The flat-index translation in locate assumes every populated block strictly
// after the head block (other than the tail block) is full. The deque's push
// protocol maintains that: a new block is only ever added when the adjacent
// block is full or edge-closed.
type blockRing struct {
	blocks []*block
	size   int // populated slots
	head   int
	tail   int
	mask   int
}

func newBlockRing() *blockRing {
	r := &blockRing{blocks: make([]*block, initialRingCap), size: 1, mask: initialRingCap - 1}
	r.blocks[0] = &block{}
	return r
}

// newBlockRingForLen returns a ring with a single empty block, sized so that
// n elements fit without a doubling.
func newBlockRingForLen(n int) *blockRing {
	c := ringCapFor(blocksFor(n))
	r := &blockRing{blocks: make([]*block, c), size: 1, mask: c - 1}
	r.blocks[0] = &block{}
	return r
}

// newBlockRingFilled returns a ring pre-populated with enough blocks to hold
// n copies of filler. The last block takes the remainder, which is a full
// block when n is a multiple of blockCap. Requires n > 0.
func newBlockRingFilled(n, filler int) *blockRing {
	populated := blocksFor(n)
	c := ringCapFor(populated)
	r := &blockRing{
		blocks: make([]*block, c),
		size:   populated,
		tail:   populated - 1,
		mask:   c - 1,
	}
	for i := 0; i < populated; i++ {
		sz := blockCap
		if i == populated-1 {
			sz = n - (populated-1)*blockCap
		}
		r.blocks[i] = newFilledBlock(sz, filler)
	}
	return r
}

// addTailBlock populates the slot after tail with a fresh empty block. The
// caller must expand first if the ring is full.
func (r *blockRing) addTailBlock() {
	r.tail = (r.tail + 1) & r.mask
	r.blocks[r.tail] = &block{}
	r.size++
}

// addHeadBlock populates the slot before head with a fresh empty block. The
// caller must expand first if the ring is full.
func (r *blockRing) addHeadBlock() {
	r.head = (r.head - 1) & r.mask
	r.blocks[r.head] = &block{}
	r.size++
}

// deleteTailBlock vacates the slot at tail. Vacating the last populated slot
// resets the ring to the empty state; the next tailBlock or headBlock call
// re-allocates lazily.
func (r *blockRing) deleteTailBlock() {
	r.blocks[r.tail] = nil
	if r.tail == r.head {
		r.head, r.tail, r.size = 0, 0, 0
		return
	}
	r.tail = (r.tail - 1) & r.mask
	r.size--
}

// deleteHeadBlock vacates the slot at head, with the same last-slot reset as
// deleteTailBlock.
func (r *blockRing) deleteHeadBlock() {
	r.blocks[r.head] = nil
	if r.head == r.tail {
		r.head, r.tail, r.size = 0, 0, 0
		return
	}
	r.head = (r.head + 1) & r.mask
	r.size--
}

func (r *blockRing) isFull() bool { return r.size == len(r.blocks) }

// tailBlock returns the block at tail, re-allocating it if the slot was
// vacated by the delete that emptied the ring.
func (r *blockRing) tailBlock() *block {
	if r.blocks[r.tail] == nil {
		r.blocks[r.tail] = &block{}
		if r.size == 0 {
			r.size = 1
		}
	}
	return r.blocks[r.tail]
}

// headBlock returns the block at head, with the same lazy re-allocation as
// tailBlock.
func (r *blockRing) headBlock() *block {
	if r.blocks[r.head] == nil {
		r.blocks[r.head] = &block{}
		if r.size == 0 {
			r.size = 1
		}
	}
	return r.blocks[r.head]
}

// Predicates the deque consults before deciding whether a push needs a new
// block or a ring doubling.
func (r *blockRing) tailBlockFull() bool       { return r.tailBlock().isFull() }
func (r *blockRing) headBlockFull() bool       { return r.headBlock().isFull() }
func (r *blockRing) tailRightClose() bool      { return r.tailBlock().isRightClose() }
func (r *blockRing) headStartNotShifted() bool { return !r.headBlock().isHeadShifted() }

// expand doubles the slot count and relocates block ownership into positions
// 0..size-1 in head-to-tail order. Only the handles move; no element payloads
// are copied.
func (r *blockRing) expand() {
	next := make([]*block, len(r.blocks)*2)
	n := 0
	for i := r.head; ; i = (i + 1) & r.mask {
		next[n] = r.blocks[i]
		n++
		if i == r.tail {
			break
		}
	}
	r.blocks = next
	r.mask = len(next) - 1
	r.head = 0
	r.tail = r.size - 1
}

// locate translates flat index i into its owning block and window offset.
// Indexes within the head block resolve there; past it, every block up to the
// target is assumed full, so the stride is a whole blockCap per ring step.
func (r *blockRing) locate(i int) (*block, int) {
	headSize := r.blocks[r.head].size
	if i < headSize {
		return r.blocks[r.head], i
	}
	i -= headSize
	return r.blocks[(r.head+i/blockCap+1)&r.mask], i % blockCap
}

func (r *blockRing) get(i int) int {
	b, off := r.locate(i)
	return b.get(off)
}

func (r *blockRing) set(i, v int) {
	b, off := r.locate(i)
	b.set(off, v)
}

// forEachBlock calls f on every populated block from head to tail, stopping
// early if f returns false.
func (r *blockRing) forEachBlock(f func(*block) bool) {
	if r.size == 0 {
		return
	}
	for i := r.head; ; i = (i + 1) & r.mask {
		if !f(r.blocks[i]) {
			return
		}
		if i == r.tail {
			return
		}
	}
}

// swap exchanges the underlying slot arrays and indices with other. No block
// or element data is copied.
func (r *blockRing) swap(other *blockRing) {
	r.blocks, other.blocks = other.blocks, r.blocks
	r.size, other.size = other.size, r.size
	r.head, other.head = other.head, r.head
	r.tail, other.tail = other.tail, r.tail
	r.mask, other.mask = other.mask, r.mask
}

// clone deep-copies every populated block into a ring of the same shape.
func (r *blockRing) clone() *blockRing {
	cp := &blockRing{
		blocks: make([]*block, len(r.blocks)),
		size:   r.size,
		head:   r.head,
		tail:   r.tail,
		mask:   r.mask,
	}
	for i, b := range r.blocks {
		if b != nil {
			dup := *b
			cp.blocks[i] = &dup
		}
	}
	return cp
}

// reset drops every owned block and returns the ring to its initial state:
// default capacity, one empty block.
func (r *blockRing) reset() {
	r.blocks = make([]*block, initialRingCap)
	r.blocks[0] = &block{}
	r.size = 1
	r.head, r.tail = 0, 0
	r.mask = initialRingCap - 1
}

// blocksFor returns the number of blocks needed to hold n elements, at
// least 1.
func blocksFor(n int) int {
	if n == 0 {
		return 1
	}
	return (n-1)/blockCap + 1
}

// ringCapFor rounds a populated-slot count up to a power of two, never below
// the initial ring capacity.
func ringCapFor(populated int) int {
	c := ceilPow2(populated)
	if c < initialRingCap {
		c = initialRingCap
	}
	return c
}

func ceilPow2(x int) int {
	// For our purposes, values below 1 round to 1.
	if x <= 1 {
		return 1
	}
	msb := bits.UintSize - 1 - bits.LeadingZeros(uint(x))
	result := 1 << msb
	if result < x {
		result <<= 1
	}
	return result
}
