// vm_test.go
package ginkgo

import (
	"errors"
	"testing"
)

func Test_VM_Cons_Car_Cdr(t *testing.T) {
	vm := New()

	a := vm.Cons(vm.Int(0), Nil)
	if got, ok := vm.Car(a); !ok || got != vm.Int(0) {
		t.Fatalf("Car = %v, %v, want 0", vm.Wrap(got), ok)
	}
	if got, ok := vm.Cdr(a); !ok || got != Nil {
		t.Fatalf("Cdr = %v, %v, want nil", vm.Wrap(got), ok)
	}

	b := vm.Cons(vm.Int(1), a)
	if got, ok := vm.Cdr(b); !ok || got != a {
		t.Fatalf("Cdr of nested cons = %v, %v, want the inner cons", vm.Wrap(got), ok)
	}

	// Wrong type: absence, not an error.
	if _, ok := vm.Car(vm.Int(1)); ok {
		t.Fatalf("Car on an int succeeded")
	}
	if _, ok := vm.Cdr(Nil); ok {
		t.Fatalf("Cdr on nil succeeded")
	}
	v := vm.Vec(1)
	if _, ok := vm.Car(v); ok {
		t.Fatalf("Car on a vector succeeded")
	}
}

func Test_VM_Vec_Get_Set(t *testing.T) {
	vm := New()
	v := vm.Vec(3)

	// Fresh vectors are filled with #undefined.
	for i := 0; i < 3; i++ {
		if got, ok := vm.VecGet(v, i); !ok || got != Undef {
			t.Fatalf("VecGet(%d) on fresh vector = %v, %v", i, vm.Wrap(got), ok)
		}
	}

	if err := vm.VecSet(v, 0, vm.Int(0)); err != nil {
		t.Fatalf("VecSet(0): %v", err)
	}
	if err := vm.VecSet(v, 1, Nil); err != nil {
		t.Fatalf("VecSet(1): %v", err)
	}
	if err := vm.VecSet(v, 2, vm.Float(2.3)); err != nil {
		t.Fatalf("VecSet(2): %v", err)
	}

	if got, ok := vm.VecGet(v, 0); !ok || got != vm.Int(0) {
		t.Fatalf("VecGet(0) = %v, %v", vm.Wrap(got), ok)
	}
	if got, ok := vm.VecGet(v, 1); !ok || got != Nil {
		t.Fatalf("VecGet(1) = %v, %v", vm.Wrap(got), ok)
	}
	if got, ok := vm.VecGet(v, 2); !ok || got != vm.Float(2.3) {
		t.Fatalf("VecGet(2) = %v, %v", vm.Wrap(got), ok)
	}
}

func Test_VM_Vec_Failure_Kinds(t *testing.T) {
	vm := New()
	v := vm.Vec(3)

	// Out of range is distinct from wrong type.
	if err := vm.VecSet(v, 3, Nil); !errors.Is(err, ErrVecRange) {
		t.Fatalf("VecSet past the end: %v, want ErrVecRange", err)
	}
	if err := vm.VecSet(v, -1, Nil); !errors.Is(err, ErrVecRange) {
		t.Fatalf("VecSet at -1: %v, want ErrVecRange", err)
	}
	if err := vm.VecSet(vm.Int(3), 0, Nil); !errors.Is(err, ErrNotVec) {
		t.Fatalf("VecSet on an int: %v, want ErrNotVec", err)
	}
	if err := vm.VecSet(vm.Cons(Nil, Nil), 0, Nil); !errors.Is(err, ErrNotVec) {
		t.Fatalf("VecSet on a cons: %v, want ErrNotVec", err)
	}

	// Gets never panic; they report absence.
	if _, ok := vm.VecGet(v, 3); ok {
		t.Fatalf("VecGet past the end succeeded")
	}
	if _, ok := vm.VecGet(v, -1); ok {
		t.Fatalf("VecGet at -1 succeeded")
	}
	if _, ok := vm.VecGet(Nil, 0); ok {
		t.Fatalf("VecGet on nil succeeded")
	}

	// A stale vector handle behaves like a non-vector.
	vm.GC()
	if err := vm.VecSet(v, 0, Nil); !errors.Is(err, ErrNotVec) {
		t.Fatalf("VecSet on a stale handle: %v, want ErrNotVec", err)
	}
	if _, ok := vm.VecGet(v, 0); ok {
		t.Fatalf("VecGet on a stale handle succeeded")
	}
}

func Test_VM_Direct_Resolution(t *testing.T) {
	vm := New()

	if d := vm.Direct(vm.Int(5)); d.Kind != DirectImm || d.Imm.Int != 5 {
		t.Fatalf("Direct(5) = %+v", d)
	}

	c := vm.Cons(vm.Int(1), Nil)
	d := vm.Direct(c)
	if d.Kind != DirectHeap || d.Heap.Kind != HPair {
		t.Fatalf("Direct(cons) = %+v", d)
	}
	if d.Heap.Head != vm.Int(1) || d.Heap.Tail != Nil {
		t.Fatalf("Direct(cons) payload = %v / %v", vm.Wrap(d.Heap.Head), vm.Wrap(d.Heap.Tail))
	}

	vm.GC()
	if d := vm.Direct(c); d.Kind != DirectDead || d.Dead != c.H {
		t.Fatalf("Direct(stale) = %+v, want DirectDead with the old identity", d)
	}
}

func Test_VM_Text_Construction(t *testing.T) {
	vm := New()
	o := vm.Text("hi there\n")
	wantSize(t, vm, 1)

	d := vm.Direct(o)
	if d.Kind != DirectHeap || d.Heap.Kind != HText || d.Heap.Text != "hi there\n" {
		t.Fatalf("Direct(text) = %+v", d)
	}

	vm.GC()
	wantSize(t, vm, 0)
}
