package refine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "inkwell/pkg/domain-errors"
)

// TestMakeBounded_Boundaries validates the range invariant:
// construction succeeds iff Resolve[L]() <= v <= Resolve[U](), both inclusive.
func TestMakeBounded_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"below lower bound", 1, true},
		{"at lower bound", 2, false},
		{"inside range", 3, false},
		{"at upper bound", 5, false},
		{"above upper bound", 6, true},
		{"far below", -100, true},
		{"far above", 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := MakeBounded[Two, Five](tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
				assert.Zero(t, b.Value())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, b.Value())
			}
		})
	}
}

func TestMakeBounded_DegenerateRange(t *testing.T) {
	t.Run("single-value range accepts that value", func(t *testing.T) {
		b, err := MakeBounded[Three, Three](3)
		require.NoError(t, err)
		assert.Equal(t, 3, b.Value())
	})

	t.Run("single-value range rejects neighbors", func(t *testing.T) {
		_, err := MakeBounded[Three, Three](2)
		require.Error(t, err)
		_, err = MakeBounded[Three, Three](4)
		require.Error(t, err)
	})
}

// TestBounded_Idempotence verifies that re-validating an already validated
// payload yields an equivalent value.
func TestBounded_Idempotence(t *testing.T) {
	first, err := MakeBounded[One, Ten](7)
	require.NoError(t, err)

	second, err := MakeBounded[One, Ten](first.Value())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBounded_Accessors(t *testing.T) {
	b, err := MakeBounded[Two, Five](4)
	require.NoError(t, err)

	lower, upper := b.Bounds()
	assert.Equal(t, 2, lower)
	assert.Equal(t, 5, upper)
	assert.Equal(t, "4", b.String())
}

// TestBounded_TagDistinction documents the compile-time invariant: values
// validated against different ranges are different types.
// If this comment becomes false the type parameters were removed.
func TestBounded_TagDistinction(t *testing.T) {
	rating, err := MakeBounded[Two, Five](3)
	require.NoError(t, err)

	// The following would fail to compile:
	// var score Bounded[One, Ten] = rating // type mismatch

	score, err := MakeBounded[One, Ten](rating.Value())
	require.NoError(t, err)
	assert.Equal(t, rating.Value(), score.Value())
}

func TestBounded_JSONRoundTrip(t *testing.T) {
	t.Run("valid value round-trips", func(t *testing.T) {
		b, err := MakeBounded[Two, Five](5)
		require.NoError(t, err)

		data, err := json.Marshal(b)
		require.NoError(t, err)
		assert.Equal(t, "5", string(data))

		var decoded Bounded[Two, Five]
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, b, decoded)
	})

	t.Run("decoding rejects out-of-range payloads", func(t *testing.T) {
		var decoded Bounded[Two, Five]
		err := json.Unmarshal([]byte("9"), &decoded)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("decoding rejects non-numeric payloads", func(t *testing.T) {
		var decoded Bounded[Two, Five]
		err := json.Unmarshal([]byte(`"three"`), &decoded)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}
