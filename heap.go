// heap.go — the slot arena.
//
// Heap values live in slots. A slot is either occupied (it holds an HVal)
// or vacant (it sits on the free list waiting for reuse). Each slot carries
// a generation counter with a parity convention: odd means occupied, even
// means vacant. Every transition between the two states increments the
// generation, so a Handle minted for one occupancy of a slot can never pass
// the generation check against a later occupancy of the same slot. Slot
// indices are stable for the lifetime of the heap; there is no compaction.

package ginkgo

// slot is one arena cell. marked is collector-private scratch state and is
// false outside a GC call.
type slot struct {
	gen    uint64
	marked bool
	val    HVal
}

// heap is the arena backing one VM. It is not safe for concurrent use; the
// owning VM serializes all access.
type heap struct {
	slots []slot
	free  []int // indices of vacant slots, reused LIFO
	live  int   // count of occupied slots
	roots map[int]int
}

func newHeap() *heap {
	return &heap{roots: make(map[int]int)}
}

// insert stores v in a vacant slot (reusing one from the free list when
// possible, growing the arena otherwise) and returns a fresh handle for it.
// The handle is unrooted: the value survives the next collection only if it
// is rooted or reachable from a root by then.
func (h *heap) insert(v HVal) Handle {
	var idx int
	if n := len(h.free); n > 0 {
		idx = h.free[n-1]
		h.free = h.free[:n-1]
		h.slots[idx].gen++ // even -> odd: occupied again, new generation
		h.slots[idx].val = v
	} else {
		idx = len(h.slots)
		h.slots = append(h.slots, slot{gen: 1, val: v})
	}
	h.live++
	return Handle{index: idx, gen: h.slots[idx].gen}
}

// get returns the value behind hd, or nil when the generation no longer
// matches (the slot was reclaimed, and possibly reused, since hd was made).
// The returned pointer borrows the slot's storage: it is good until the
// next GC and must not be retained across one.
func (h *heap) get(hd Handle) *HVal {
	if hd.index < 0 || hd.index >= len(h.slots) {
		return nil
	}
	s := &h.slots[hd.index]
	if s.gen != hd.gen || s.gen%2 == 0 {
		return nil
	}
	return &s.val
}

// size reports the number of occupied slots.
func (h *heap) size() int { return h.live }

// root registers hd's slot in the root table, bumping its refcount. Stale
// handles register nothing: the value they named is already gone, and
// pinning a reused slot on their behalf would keep an unrelated value
// alive.
func (h *heap) root(hd Handle) bool {
	if h.get(hd) == nil {
		return false
	}
	h.roots[hd.index]++
	return true
}

// unroot drops one refcount from hd's slot, removing the root table entry
// at zero. The slot stays occupied either way; only the next collection
// decides whether the value is still reachable.
func (h *heap) unroot(hd Handle) {
	n, ok := h.roots[hd.index]
	if !ok {
		return
	}
	if n <= 1 {
		delete(h.roots, hd.index)
	} else {
		h.roots[hd.index] = n - 1
	}
}
