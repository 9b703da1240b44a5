package refine

// Tag is implemented by zero-sized marker types that denote exactly one
// integer. A tag's value is fixed by its type declaration: the method is the
// registration, and the method set guarantees one value per tag that never
// changes afterwards. Resolution is total; there is no failure mode.
//
// Declaring a new tag is declaring a new constraint parameter:
//
//	type Sixty struct{}
//
//	func (Sixty) Value() int { return 60 }
type Tag interface {
	// Value returns the integer this tag denotes.
	Value() int
}

// Resolve returns the integer denoted by the tag type T.
func Resolve[T Tag]() int {
	var tag T
	return tag.Value()
}
