package refine

import (
	"encoding/json"
	"fmt"
	"slices"

	dErrors "inkwell/pkg/domain-errors"
)

// FixedLength is a sequence proven to hold exactly Resolve[N]() elements.
// The wrapped slice is copied on construction and on read, so an instance
// exclusively owns its elements and stays immutable even when the caller
// keeps mutating the input slice.
type FixedLength[N Tag, E any] struct {
	items []E
}

// MakeFixedLength validates that items holds exactly Resolve[N]() elements.
// A tag resolving to 0 accepts the empty (or nil) slice; empty input is not
// otherwise special. Rejection returns a CodeInvalidInput error.
func MakeFixedLength[N Tag, E any](items []E) (FixedLength[N, E], error) {
	want := Resolve[N]()
	if len(items) != want {
		return FixedLength[N, E]{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"sequence has %d elements, want exactly %d", len(items), want)
	}
	return FixedLength[N, E]{items: slices.Clone(items)}, nil
}

// Len returns the validated length, which always equals Resolve[N]().
func (l FixedLength[N, E]) Len() int {
	return len(l.items)
}

// At returns the element at index i. Indexing past Len panics the same way
// slice indexing does.
func (l FixedLength[N, E]) At(i int) E {
	return l.items[i]
}

// Items returns a copy of the wrapped elements.
func (l FixedLength[N, E]) Items() []E {
	return slices.Clone(l.items)
}

// String formats the wrapped elements.
func (l FixedLength[N, E]) String() string {
	return fmt.Sprintf("%v", l.items)
}

// FixedLengthEqual reports element-wise equality of two sequences validated
// against the same length tag.
func FixedLengthEqual[N Tag, E comparable](a, b FixedLength[N, E]) bool {
	return slices.Equal(a.items, b.items)
}

// MarshalJSON encodes the wrapped elements as a JSON array.
func (l FixedLength[N, E]) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		// A zero-tag instance may wrap nil; it still encodes as [].
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

// UnmarshalJSON decodes through MakeFixedLength so decoded sequences carry
// the same guarantee as constructed ones.
func (l *FixedLength[N, E]) UnmarshalJSON(data []byte) error {
	var items []E
	if err := json.Unmarshal(data, &items); err != nil {
		return dErrors.Wrap(dErrors.CodeBadRequest, "decode fixed-length sequence", err)
	}
	fixed, err := MakeFixedLength[N](items)
	if err != nil {
		return err
	}
	*l = fixed
	return nil
}
