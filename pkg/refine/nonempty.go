package refine

import (
	"encoding/json"

	dErrors "inkwell/pkg/domain-errors"
)

// NonEmpty is a string proven to be non-empty. Only the empty string is
// rejected; whitespace-only strings are accepted, callers wanting stricter
// rules trim before constructing.
type NonEmpty struct {
	value string
}

// MakeNonEmpty validates that s is not empty. Rejection returns a
// CodeInvalidInput error.
func MakeNonEmpty(s string) (NonEmpty, error) {
	if s == "" {
		return NonEmpty{}, dErrors.New(dErrors.CodeInvalidInput, "string cannot be empty")
	}
	return NonEmpty{value: s}, nil
}

// Value returns the wrapped string.
func (n NonEmpty) Value() string {
	return n.value
}

func (n NonEmpty) String() string {
	return n.value
}

// MarshalJSON encodes the wrapped string.
func (n NonEmpty) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

// UnmarshalJSON decodes through MakeNonEmpty so decoded values carry the
// same guarantee as constructed ones.
func (n *NonEmpty) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return dErrors.Wrap(dErrors.CodeBadRequest, "decode non-empty string", err)
	}
	parsed, err := MakeNonEmpty(raw)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
