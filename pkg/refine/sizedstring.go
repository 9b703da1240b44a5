package refine

import (
	"encoding/json"
	"unicode/utf8"

	dErrors "inkwell/pkg/domain-errors"
)

// SizedString is a string whose rune count is proven to lie in the closed
// range [L, U]. Lengths are counted in runes, not bytes, so multi-byte text
// validates the way a reader would count it.
type SizedString[L, U Tag] struct {
	value string
}

// MakeSizedString validates that s holds between Resolve[L]() and
// Resolve[U]() runes, inclusive. Rejection returns a CodeInvalidInput error.
func MakeSizedString[L, U Tag](s string) (SizedString[L, U], error) {
	lower, upper := Resolve[L](), Resolve[U]()
	n := utf8.RuneCountInString(s)
	if n < lower || n > upper {
		return SizedString[L, U]{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"string has %d characters, want between %d and %d", n, lower, upper)
	}
	return SizedString[L, U]{value: s}, nil
}

// Value returns the wrapped string.
func (s SizedString[L, U]) Value() string {
	return s.value
}

// Len returns the validated rune count.
func (s SizedString[L, U]) Len() int {
	return utf8.RuneCountInString(s.value)
}

func (s SizedString[L, U]) String() string {
	return s.value
}

// MarshalJSON encodes the wrapped string.
func (s SizedString[L, U]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

// UnmarshalJSON decodes through MakeSizedString so decoded values carry the
// same guarantee as constructed ones.
func (s *SizedString[L, U]) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return dErrors.Wrap(dErrors.CodeBadRequest, "decode sized string", err)
	}
	sized, err := MakeSizedString[L, U](raw)
	if err != nil {
		return err
	}
	*s = sized
	return nil
}
