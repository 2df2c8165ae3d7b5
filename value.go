// value.go — the runtime value model.
//
// Three layers, mirroring how values travel through the machine:
//   - SVal: an immediate value. Lives wherever it is written; copying it
//     copies the value. Constructing one never touches the heap.
//   - HVal: a composite value. Lives in a heap slot and is only ever
//     reached through a Handle; composites reference each other with
//     Objects, never with Go pointers.
//   - Object: the universal reference. Either an embedded SVal or a
//     Handle into the heap. Objects are small, copyable and comparable;
//     `==` on two Objects is exactly the language's reference equality
//     (immediates by kind and payload, heap values by slot identity).
//
// Rooted and Direct, the owning and borrowing views of an Object, are
// defined next to the machinery that backs them (gc.go and vm.go).

package ginkgo

// SValKind discriminates the immediate value kinds.
type SValKind uint8

const (
	SUndefined SValKind = iota // the "no value" value
	SNil                       // empty list terminator
	SBool                      // true / false
	SInt                       // signed machine-word integer
	SFloat                     // IEEE 754 double
)

// SVal is an immediate Ginkgo value. The Kind selects which payload field
// is meaningful; constructors leave the others zero so that `==` compares
// structurally. Note that like any IEEE comparison, an SFloat holding NaN
// is unequal to itself.
type SVal struct {
	Kind  SValKind
	Bool  bool
	Int   int64
	Float float64
}

// HValKind discriminates the heap value kinds.
type HValKind uint8

const (
	HPair HValKind = iota // cons cell
	HVec                  // fixed-length mutable sequence
	HText                 // character string
)

// HVal is a heap-resident Ginkgo value. As with SVal, the Kind selects the
// live payload fields. HVals are owned by the heap: they are created
// through VM constructors, mutated only through VM accessors, and
// destroyed only by the collector's sweep.
type HVal struct {
	Kind  HValKind
	Head  Object   // HPair
	Tail  Object   // HPair
	Elems []Object // HVec
	Text  string   // HText
}

// Handle identifies a heap slot at a particular point in its lifetime. A
// handle stays valid until the collector reclaims its slot; after that it
// compares unequal to every later handle for the same slot and no longer
// resolves. The zero Handle is never valid.
type Handle struct {
	index int
	gen   uint64
}

// ObjKind discriminates the two shapes of an Object.
type ObjKind uint8

const (
	ObjImm  ObjKind = iota // immediate: the Imm field carries an SVal
	ObjHeap                // heap-resident: the H field carries a Handle
)

// Object is a Ginkgo reference: an immediate value carried inline, or a
// generation-checked handle to a heap value. Obtain Objects from VM
// constructors or the canonical constants; hand-built literals must leave
// the unused payload field zero or `==` loses its meaning.
type Object struct {
	Kind ObjKind
	Imm  SVal   // ObjImm
	H    Handle // ObjHeap
}

// The four canonical immediates. Each is equal only to itself, and never
// to any heap-resident value. Undef is also the zero Object.
var (
	Undef = Object{}
	Nil   = Object{Imm: SVal{Kind: SNil}}
	True  = Object{Imm: SVal{Kind: SBool, Bool: true}}
	False = Object{Imm: SVal{Kind: SBool, Bool: false}}
)

// imm wraps an immediate value in an Object.
func imm(v SVal) Object { return Object{Kind: ObjImm, Imm: v} }

// IsHeap reports whether o refers to a heap slot (live or not).
func (o Object) IsHeap() bool { return o.Kind == ObjHeap }

// AsInt returns the integer payload, or absence when o is not an
// immediate integer.
func (o Object) AsInt() (int64, bool) {
	if o.Kind == ObjImm && o.Imm.Kind == SInt {
		return o.Imm.Int, true
	}
	return 0, false
}

// AsFloat returns the float payload, or absence when o is not an
// immediate float. Integers do not coerce.
func (o Object) AsFloat() (float64, bool) {
	if o.Kind == ObjImm && o.Imm.Kind == SFloat {
		return o.Imm.Float, true
	}
	return 0, false
}

// AsBool returns the boolean payload, or absence when o is not an
// immediate boolean. No truthiness here: nil and 0 are not false.
func (o Object) AsBool() (bool, bool) {
	if o.Kind == ObjImm && o.Imm.Kind == SBool {
		return o.Imm.Bool, true
	}
	return false, false
}
