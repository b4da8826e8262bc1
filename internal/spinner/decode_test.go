package spinner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleJSON mirrors a typical definitions file: one entry spells the key
// "Name" with different casing than the rest.
const sampleJSON = `[
  {"name": "dots", "characters": ["a", "b", "c"]},
  {"Name": "line", "characters": ["-", "|"]},
  {"name": "slow", "characters": ["x"], "interval": 250}
]`

func TestDecode_Lenient(t *testing.T) {
	t.Parallel()

	t.Run("CaseInsensitiveKeys", func(t *testing.T) {
		t.Parallel()
		defs, err := Decode(strings.NewReader(sampleJSON), MatchLenient)
		require.NoError(t, err)
		require.Len(t, defs, 3)
		assert.Equal(t, "dots", defs[0].Name)
		assert.Equal(t, "line", defs[1].Name)
		assert.Equal(t, 250, defs[2].IntervalMS)
	})

	t.Run("UpperCaseKeys", func(t *testing.T) {
		t.Parallel()
		input := `[{"NAME": "up", "CHARACTERS": ["u"], "INTERVAL": 90}]`
		defs, err := Decode(strings.NewReader(input), MatchLenient)
		require.NoError(t, err)
		require.Len(t, defs, 1)
		assert.Equal(t, "up", defs[0].Name)
		assert.Equal(t, []string{"u"}, defs[0].Characters)
		assert.Equal(t, 90, defs[0].IntervalMS)
	})

	t.Run("UnknownKeysIgnored", func(t *testing.T) {
		t.Parallel()
		input := `[{"name": "x", "characters": ["x"], "author": "someone"}]`
		defs, err := Decode(strings.NewReader(input), MatchLenient)
		require.NoError(t, err)
		require.Len(t, defs, 1)
	})

	t.Run("MissingName", func(t *testing.T) {
		t.Parallel()
		input := `[{"characters": ["x"]}]`
		_, err := Decode(strings.NewReader(input), MatchLenient)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingName)
	})
}

func TestDecode_Strict(t *testing.T) {
	t.Parallel()

	t.Run("ExactCaseAccepted", func(t *testing.T) {
		t.Parallel()
		input := `[{"name": "dots", "characters": ["a"], "interval": 80}]`
		defs, err := Decode(strings.NewReader(input), MatchStrict)
		require.NoError(t, err)
		require.Len(t, defs, 1)
	})

	t.Run("CaseMismatchRejected", func(t *testing.T) {
		t.Parallel()
		_, err := Decode(strings.NewReader(sampleJSON), MatchStrict)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCaseMismatch)

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, 1, decodeErr.Index)
		assert.Equal(t, "Name", decodeErr.Key)
	})

	t.Run("UnknownKeyRejected", func(t *testing.T) {
		t.Parallel()
		input := `[{"name": "x", "characters": ["x"], "author": "someone"}]`
		_, err := Decode(strings.NewReader(input), MatchStrict)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownKey)
	})
}

func TestDecode_AmbiguousKeys(t *testing.T) {
	t.Parallel()

	// "name" and "Name" in one object bind the same field; no matching
	// mode can disambiguate, so both must fail.
	input := `[{"name": "x", "Name": "y", "characters": ["x"]}]`

	for _, mode := range []MatchMode{MatchLenient, MatchStrict} {
		t.Run(mode.String(), func(t *testing.T) {
			t.Parallel()
			_, err := Decode(strings.NewReader(input), mode)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrAmbiguousKey)
			assert.Contains(t, err.Error(), `"name"`)
			assert.Contains(t, err.Error(), `"Name"`)
		})
	}

	// The collision must win regardless of which spelling comes first, in
	// particular in strict mode where the folded key alone would be a case
	// mismatch.
	t.Run("StrictMismatchedKeyFirst", func(t *testing.T) {
		t.Parallel()
		reversed := `[{"Name": "y", "name": "x", "characters": ["x"]}]`
		_, err := Decode(strings.NewReader(reversed), MatchStrict)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAmbiguousKey)
	})
}

func TestDecodeAll_CollectsFindings(t *testing.T) {
	t.Parallel()

	input := `[
	  {"name": "ok", "characters": ["a", "b"]},
	  {"characters": ["x"]},
	  {"name": "dup", "Name": "dup", "characters": ["x"]},
	  {"name": "empty", "characters": []}
	]`

	defs, findings := DecodeAll(strings.NewReader(input), MatchLenient)
	require.Len(t, defs, 1)
	assert.Equal(t, "ok", defs[0].Name)

	require.Len(t, findings, 3)

	var decodeErr *DecodeError
	require.ErrorAs(t, findings[0], &decodeErr)
	assert.Equal(t, 1, decodeErr.Index)
	require.ErrorAs(t, findings[1], &decodeErr)
	assert.Equal(t, 2, decodeErr.Index)
	require.ErrorAs(t, findings[2], &decodeErr)
	assert.Equal(t, 3, decodeErr.Index)
	assert.ErrorIs(t, findings[2], ErrNoCharacters)
}

func TestDecode_MalformedInput(t *testing.T) {
	t.Parallel()

	t.Run("NotAnArray", func(t *testing.T) {
		t.Parallel()
		_, err := Decode(strings.NewReader(`{"name": "x"}`), MatchLenient)
		require.Error(t, err)
	})

	t.Run("ElementNotAnObject", func(t *testing.T) {
		t.Parallel()
		_, err := Decode(strings.NewReader(`["x"]`), MatchLenient)
		require.Error(t, err)
	})

	t.Run("WrongValueType", func(t *testing.T) {
		t.Parallel()
		_, err := Decode(strings.NewReader(`[{"name": "x", "characters": "abc"}]`), MatchLenient)
		require.Error(t, err)
	})
}

func TestParseMatchMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    MatchMode
		wantErr bool
	}{
		{"", MatchLenient, false},
		{"lenient", MatchLenient, false},
		{"strict", MatchStrict, false},
		{"STRICT", MatchStrict, false},
		{" lenient ", MatchLenient, false},
		{"exact", MatchLenient, true},
	}
	for _, tc := range tests {
		got, err := ParseMatchMode(tc.input)
		if tc.wantErr {
			require.Error(t, err, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}
