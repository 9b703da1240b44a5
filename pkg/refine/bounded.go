package refine

import (
	"encoding/json"
	"strconv"

	dErrors "inkwell/pkg/domain-errors"
)

// Bounded is an integer proven to lie in the closed range [L, U].
// Invariant: every instance satisfies Resolve[L]() <= value <= Resolve[U]();
// the only constructor is MakeBounded, so the invariant cannot be bypassed.
//
// Bounded is comparable; equality is equality of the wrapped integer within
// the same bounds. Values with different bounds are different types and do
// not compare at all.
type Bounded[L, U Tag] struct {
	value int
}

// MakeBounded validates v against the closed range [L, U]. Both ends are
// inclusive. Rejection returns a CodeInvalidInput error and the zero value.
func MakeBounded[L, U Tag](v int) (Bounded[L, U], error) {
	lower, upper := Resolve[L](), Resolve[U]()
	if v < lower || v > upper {
		return Bounded[L, U]{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"value %d outside range [%d, %d]", v, lower, upper)
	}
	return Bounded[L, U]{value: v}, nil
}

// Value returns the wrapped integer.
func (b Bounded[L, U]) Value() int {
	return b.value
}

// Bounds returns the inclusive range the value was validated against.
func (b Bounded[L, U]) Bounds() (lower, upper int) {
	return Resolve[L](), Resolve[U]()
}

// String returns the decimal representation of the wrapped integer.
func (b Bounded[L, U]) String() string {
	return strconv.Itoa(b.value)
}

// MarshalJSON encodes the wrapped integer.
func (b Bounded[L, U]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.value)
}

// UnmarshalJSON decodes through MakeBounded so decoded values carry the same
// guarantee as constructed ones.
func (b *Bounded[L, U]) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return dErrors.Wrap(dErrors.CodeBadRequest, "decode bounded value", err)
	}
	bounded, err := MakeBounded[L, U](v)
	if err != nil {
		return err
	}
	*b = bounded
	return nil
}
