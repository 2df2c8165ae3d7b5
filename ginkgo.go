// Package ginkgo implements the value representation and memory management
// substrate for the Ginkgo language: a tagged value model split between
// immediate (stack) values and heap-resident composites, a slot arena with
// generation-checked handles, an explicit mark-and-sweep collector driven by
// a root table, a canonical textual renderer, and the escape codec for text
// literals.
//
// Everything revolves around the VM type. One VM owns one heap; a reader or
// evaluator built on top of this package holds a *VM and goes through its
// methods for construction, access, rooting, collection and rendering. There
// is no package-level heap state.
//
// The collector never runs on its own. Heap values stay alive between
// explicit GC calls, and across them exactly when they are reachable from a
// live Rooted. A plain Object in a local variable is not a root; callers
// keep a value across a collection by promoting it with VM.Rooted and
// releasing it when done.
package ginkgo

// Version is the semantic version of the ginkgo runtime.
const Version = "0.1.0-dev"
