// vm.go — the Ginkgo virtual machine.
//
// One VM owns one heap. Everything a reader or evaluator does with values
// goes through VM methods: constructing them, taking pairs and vectors
// apart, rooting what must outlive a collection, collecting, and resolving
// references for inspection. A VM is not safe for concurrent use; run one
// per goroutine or synchronize externally.

package ginkgo

import "errors"

// Distinct VecSet failures, distinguishable with errors.Is. Accessors
// signal "wrong type" by absence, but mutation needs the caller to tell a
// bad index apart from a non-vector target.
var (
	ErrNotVec   = errors.New("not a vector")
	ErrVecRange = errors.New("vector index out of range")
)

// VM is the entry point for all use of Ginkgo values.
type VM struct {
	heap *heap
}

// New creates an empty VM.
func New() *VM {
	return &VM{heap: newHeap()}
}

/* ---------- construction ---------- */

// Int returns an integer object. No heap interaction.
func (vm *VM) Int(v int64) Object { return imm(SVal{Kind: SInt, Int: v}) }

// Float returns a floating point object. No heap interaction.
func (vm *VM) Float(v float64) Object { return imm(SVal{Kind: SFloat, Float: v}) }

// Cons allocates an unrooted cons cell.
func (vm *VM) Cons(car, cdr Object) Object {
	return Object{Kind: ObjHeap, H: vm.heap.insert(HVal{Kind: HPair, Head: car, Tail: cdr})}
}

// Vec allocates an unrooted vector of n elements, all Undef. The length is
// fixed for the life of the vector.
func (vm *VM) Vec(n int) Object {
	return Object{Kind: ObjHeap, H: vm.heap.insert(HVal{Kind: HVec, Elems: make([]Object, n)})}
}

// Text allocates an unrooted text value holding s.
func (vm *VM) Text(s string) Object {
	return Object{Kind: ObjHeap, H: vm.heap.insert(HVal{Kind: HText, Text: s})}
}

/* ---------- access ---------- */

// pair resolves o to a live pair, or nil.
func (vm *VM) pair(o Object) *HVal {
	if o.Kind != ObjHeap {
		return nil
	}
	v := vm.heap.get(o.H)
	if v == nil || v.Kind != HPair {
		return nil
	}
	return v
}

// Car returns the head of a live pair; absent otherwise.
func (vm *VM) Car(o Object) (Object, bool) {
	if p := vm.pair(o); p != nil {
		return p.Head, true
	}
	return Undef, false
}

// Cdr returns the tail of a live pair; absent otherwise.
func (vm *VM) Cdr(o Object) (Object, bool) {
	if p := vm.pair(o); p != nil {
		return p.Tail, true
	}
	return Undef, false
}

// vec resolves o to a live vector, or nil.
func (vm *VM) vec(o Object) *HVal {
	if o.Kind != ObjHeap {
		return nil
	}
	v := vm.heap.get(o.H)
	if v == nil || v.Kind != HVec {
		return nil
	}
	return v
}

// VecGet returns element i of a live vector; absent when o is not a live
// vector or i is out of range.
func (vm *VM) VecGet(o Object, i int) (Object, bool) {
	v := vm.vec(o)
	if v == nil || i < 0 || i >= len(v.Elems) {
		return Undef, false
	}
	return v.Elems[i], true
}

// VecSet stores el at index i. Fails with ErrNotVec when o is not a live
// vector, and with ErrVecRange when the index is out of bounds.
func (vm *VM) VecSet(o Object, i int, el Object) error {
	v := vm.vec(o)
	if v == nil {
		return ErrNotVec
	}
	if i < 0 || i >= len(v.Elems) {
		return ErrVecRange
	}
	v.Elems[i] = el
	return nil
}

/* ---------- lifecycle ---------- */

// Rooted promotes o to an owning reference. Heap-resident objects get a
// root table registration; immediates (and stale handles, which have
// nothing left to pin) are wrapped unchanged. Call Release on the result
// when the value no longer needs to survive collections.
func (vm *VM) Rooted(o Object) *Rooted {
	r := &Rooted{vm: vm, obj: o}
	if o.Kind == ObjHeap {
		r.pinned = vm.heap.root(o.H)
	}
	return r
}

// GC runs one synchronous mark-and-sweep collection. Every occupied slot
// not reachable from the root table is reclaimed, and all outstanding
// handles to reclaimed slots go stale.
func (vm *VM) GC() { vm.heap.collect() }

// HeapSize reports the number of occupied heap slots.
func (vm *VM) HeapSize() int { return vm.heap.size() }

/* ---------- resolution ---------- */

// DirectKind discriminates the three outcomes of resolving an Object.
type DirectKind uint8

const (
	DirectImm  DirectKind = iota // immediate value, in Imm
	DirectHeap                   // live heap value, borrowed in Heap
	DirectDead                   // stale handle, its identity in Dead
)

// Direct is the short-lived resolution of an Object: the immediate it
// embeds, a borrowed view of the heap value it names, or a Dead marker
// carrying the stale handle for diagnostic display. A Direct must not be
// retained past the operation that produced it — a GC in between can
// reclaim or reuse the slot behind Heap.
type Direct struct {
	Kind DirectKind
	Imm  SVal
	Heap *HVal
	Dead Handle
}

// Direct resolves o for the current operation.
func (vm *VM) Direct(o Object) Direct {
	if o.Kind == ObjImm {
		return Direct{Kind: DirectImm, Imm: o.Imm}
	}
	if v := vm.heap.get(o.H); v != nil {
		return Direct{Kind: DirectHeap, Heap: v}
	}
	return Direct{Kind: DirectDead, Dead: o.H}
}
