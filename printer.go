// printer.go — the canonical textual form of Ginkgo values.

package ginkgo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Render produces the canonical text for o. Stale references render as a
// #dead placeholder instead of failing.
func (vm *VM) Render(o Object) string {
	var b strings.Builder
	vm.render(&b, o)
	return b.String()
}

// Wrap pairs o with its VM so it can travel as a fmt.Stringer.
func (vm *VM) Wrap(o Object) WrappedObject {
	return WrappedObject{vm: vm, obj: o}
}

// WrappedObject is an Object bound to the VM that owns its heap, for
// display purposes (fmt.Println, %v, %s).
type WrappedObject struct {
	vm  *VM
	obj Object
}

func (w WrappedObject) String() string { return w.vm.Render(w.obj) }

func (vm *VM) render(b *strings.Builder, o Object) {
	d := vm.Direct(o)
	switch d.Kind {
	case DirectDead:
		// Diagnostic only; the identity is opaque but stable.
		fmt.Fprintf(b, "#dead<%#x:%#x>", d.Dead.index, d.Dead.gen)

	case DirectImm:
		switch d.Imm.Kind {
		case SUndefined:
			b.WriteString("#undefined")
		case SNil:
			b.WriteString("nil")
		case SBool:
			if d.Imm.Bool {
				b.WriteString("#t")
			} else {
				b.WriteString("#f")
			}
		case SInt:
			b.WriteString(strconv.FormatInt(d.Imm.Int, 10))
		case SFloat:
			b.WriteString(formatFloat(d.Imm.Float))
		}

	case DirectHeap:
		switch d.Heap.Kind {
		case HPair:
			// Walk the tail chain with a loop; a million-element list
			// must not cost a million stack frames.
			b.WriteByte('(')
			vm.render(b, d.Heap.Head)
			tail := d.Heap.Tail
			for {
				dt := vm.Direct(tail)
				if dt.Kind != DirectHeap || dt.Heap.Kind != HPair {
					break
				}
				b.WriteByte(' ')
				vm.render(b, dt.Heap.Head)
				tail = dt.Heap.Tail
			}
			if tail == Nil {
				b.WriteByte(')')
			} else {
				b.WriteString(" . ")
				vm.render(b, tail)
				b.WriteByte(')')
			}

		case HVec:
			b.WriteString("#(")
			for i, el := range d.Heap.Elems {
				if i > 0 {
					b.WriteByte(' ')
				}
				vm.render(b, el)
			}
			b.WriteByte(')')

		case HText:
			b.WriteByte('"')
			b.WriteString(Escape(d.Heap.Text))
			b.WriteByte('"')
		}
	}
}

// formatFloat renders v in plain decimal and forces a trailing ".0" when
// the natural form has no decimal point, so floats never read as
// integers. NaN and the infinities keep strconv's spelling.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") && !math.IsNaN(v) && !math.IsInf(v, 0) {
		s += ".0"
	}
	return s
}
