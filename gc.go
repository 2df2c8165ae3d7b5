// gc.go — root table ownership and the mark-and-sweep collector.
//
// Liveness has exactly one source: the root table. A plain Object held in
// a Go local does not keep its target alive; callers that want a value to
// survive a collection promote it with VM.Rooted and release the result
// when done. The collector itself never runs on its own — VM.GC is the
// only trigger, it runs to completion before returning, and between calls
// the heap does not change shape.

package ginkgo

// eachRef enumerates the outgoing references of a heap value, in order.
// This per-kind switch is the whole tracing protocol: a future composite
// kind (map, closure, ...) joins the collector by adding a case here.
func (v *HVal) eachRef(visit func(Object)) {
	switch v.Kind {
	case HPair:
		visit(v.Head)
		visit(v.Tail)
	case HVec:
		for _, el := range v.Elems {
			visit(el)
		}
	case HText:
		// leaf
	}
}

// collect is one full stop-the-world mark-and-sweep cycle.
func (h *heap) collect() {
	// Mark: flood from the root table. The worklist holds slot indices
	// whose generation already checked out when they were pushed.
	var work []int
	for idx := range h.roots {
		if h.slots[idx].gen%2 == 1 {
			work = append(work, idx)
		}
	}
	for len(work) > 0 {
		idx := work[len(work)-1]
		work = work[:len(work)-1]
		s := &h.slots[idx]
		if s.marked {
			continue
		}
		s.marked = true
		s.val.eachRef(func(o Object) {
			if o.Kind != ObjHeap {
				return
			}
			if h.get(o.H) != nil && !h.slots[o.H.index].marked {
				work = append(work, o.H.index)
			}
		})
	}

	// Sweep: reclaim every occupied slot the mark phase missed, clear
	// the marks on the survivors.
	for idx := range h.slots {
		s := &h.slots[idx]
		if s.gen%2 == 0 {
			continue
		}
		if s.marked {
			s.marked = false
			continue
		}
		s.val = HVal{} // drop payloads so Go can reclaim them
		s.gen++        // odd -> even: every outstanding handle goes stale
		h.free = append(h.free, idx)
		h.live--
	}
}

// Rooted is an owning reference: while it is live (created by VM.Rooted
// and not yet released) the collector will not sweep its target, nor
// anything its target reaches. Immediate values need no pinning, so a
// Rooted over an immediate carries no root table registration.
//
// Go has no destructors; Release must be called explicitly when the value
// no longer needs to survive collections. Releasing does not free
// anything by itself — the slot stays occupied until a later GC finds it
// unreachable.
type Rooted struct {
	vm       *VM
	obj      Object
	pinned   bool // a root table refcount is held on obj.H
	released bool
}

// Object returns the underlying reference.
func (r *Rooted) Object() Object { return r.obj }

// Release gives up this Rooted's claim on its target. Safe to call more
// than once; only the first call decrements the root table.
func (r *Rooted) Release() {
	if r.released {
		return
	}
	r.released = true
	if r.pinned {
		r.vm.heap.unroot(r.obj.H)
	}
}
