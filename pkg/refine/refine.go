// Package refine provides validated value types whose constraints are fixed
// by phantom type parameters and checked once, at construction time.
//
// A constraint parameter (a bound of a range, a required length) is written
// as a zero-sized tag type. The tag appears in the container's type, so the
// compiler rejects mixing values validated against different constraints:
//
//	var votes refine.Bounded[refine.One, refine.Ten]
//	votes = rating // compile error when rating is Bounded[Two, Five]
//
// The check itself runs at construction. Make* constructors return the
// validated container or a coded error; there is no other way to obtain an
// instance, so holding one proves its payload satisfied the constraint.
// Rejection is an ordinary outcome reported as a value, never a panic.
//
// Go cannot carry the arithmetic proof into the type system the way a
// dependently-typed language would; the tag scheme deliberately trades the
// compile-time guarantee for a constructor-time guarantee while keeping the
// constraint visible in the type.
//
// All containers are immutable after construction and safe to share across
// goroutines without synchronization.
package refine
