package spinner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MatchMode controls how JSON object keys are matched to definition fields.
type MatchMode int

const (
	// MatchLenient matches keys case-insensitively, so "Name", "NAME" and
	// "name" all bind the name field. This is the default.
	MatchLenient MatchMode = iota

	// MatchStrict requires exact-case keys and rejects unknown ones.
	MatchStrict
)

func (m MatchMode) String() string {
	if m == MatchStrict {
		return "strict"
	}
	return "lenient"
}

// ParseMatchMode parses a matching mode name from config or flags.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return MatchLenient, nil
	case "strict":
		return MatchStrict, nil
	default:
		return MatchLenient, fmt.Errorf("unknown matching mode %q (want lenient or strict)", s)
	}
}

var (
	// ErrUnknownKey indicates a key that matches no definition field.
	ErrUnknownKey = errors.New("unknown key")

	// ErrAmbiguousKey indicates two keys in one object binding the same
	// field, e.g. "name" and "Name" together. The decoder has no rule to
	// pick one, so decoding fails in every mode.
	ErrAmbiguousKey = errors.New("ambiguous key")

	// ErrCaseMismatch indicates a key that matches a field only under case
	// folding while strict matching is in effect.
	ErrCaseMismatch = errors.New("key case mismatch")
)

// DecodeError describes a single violation found while decoding a
// definitions file. Index is the position of the offending element in the
// top-level array; Key is the JSON key involved, when one is.
type DecodeError struct {
	Index int
	Key   string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("spinner %d: key %q: %v", e.Index, e.Key, e.Err)
	}
	return fmt.Sprintf("spinner %d: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// fieldNames are the canonical JSON keys of a definition, in struct order.
var fieldNames = []string{"name", "characters", "interval"}

// Decode reads a JSON array of spinner definitions from r, applying the
// given key matching mode. It validates every definition and fails on the
// first violation.
func Decode(r io.Reader, mode MatchMode) ([]Spinner, error) {
	all, errs := decodeAll(r, mode)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return all, nil
}

// DecodeAll is like Decode but collects every violation instead of stopping
// at the first, so callers can report them all at once. The returned
// definitions include only the valid elements.
func DecodeAll(r io.Reader, mode MatchMode) ([]Spinner, []error) {
	return decodeAll(r, mode)
}

// DecodeFile reads a definitions file from disk.
func DecodeFile(path string, mode MatchMode) ([]Spinner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spinner file: %w", err)
	}
	defer func() { _ = f.Close() }()

	defs, err := Decode(f, mode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

func decodeAll(r io.Reader, mode MatchMode) ([]Spinner, []error) {
	// The top-level structure is parsed by encoding/json; only the
	// key-to-field binding policy is implemented here, one token at a time.
	var raw []json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, []error{fmt.Errorf("failed to parse spinner definitions: %w", err)}
	}

	var (
		defs []Spinner
		errs []error
	)
	for i, msg := range raw {
		def, elemErrs := decodeElement(i, msg, mode)
		if len(elemErrs) > 0 {
			errs = append(errs, elemErrs...)
			continue
		}
		defs = append(defs, def)
	}
	return defs, errs
}

// keyEntry is one key of an element's object, with the field it resolves
// to under the matching policy and the policy error, if any.
type keyEntry struct {
	key      string
	field    string
	matchErr error
	raw      json.RawMessage
}

// decodeElement binds the keys of one JSON object to Spinner fields under
// the matching policy, then validates the result. Keys are read first and
// bound second, so a collision is detected no matter which spelling comes
// first: two keys binding the same field is ambiguous in every mode and
// outranks a strict-mode case mismatch on either of them.
func decodeElement(index int, msg json.RawMessage, mode MatchMode) (Spinner, []error) {
	var def Spinner

	dec := json.NewDecoder(bytes.NewReader(msg))
	tok, err := dec.Token()
	if err != nil {
		return def, []error{&DecodeError{Index: index, Err: err}}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return def, []error{&DecodeError{Index: index, Err: fmt.Errorf("expected an object, got %v", tok)}}
	}

	var entries []keyEntry
	bindings := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return def, []error{&DecodeError{Index: index, Err: err}}
		}
		key := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return def, []error{&DecodeError{Index: index, Key: key, Err: err}}
		}

		field, matchErr := matchKey(key, mode)
		if field != "" {
			bindings[field]++
		}
		entries = append(entries, keyEntry{key: key, field: field, matchErr: matchErr, raw: raw})
	}

	var errs []error
	// bound maps each canonical field to the key that bound it, so the
	// collision error can name both spellings.
	bound := map[string]string{}

	for _, e := range entries {
		if e.field == "" {
			if !errors.Is(e.matchErr, errSkipKey) {
				errs = append(errs, &DecodeError{Index: index, Key: e.key, Err: e.matchErr})
			}
			continue
		}

		if prev, dup := bound[e.field]; dup {
			errs = append(errs, &DecodeError{
				Index: index,
				Key:   e.key,
				Err:   fmt.Errorf("%w: %q and %q both bind field %q", ErrAmbiguousKey, prev, e.key, e.field),
			})
			continue
		}
		bound[e.field] = e.key

		// A colliding field is reported once, when its second key is
		// reached; any case mismatch on the keys involved is subsumed.
		if bindings[e.field] > 1 {
			continue
		}

		if e.matchErr != nil {
			errs = append(errs, &DecodeError{Index: index, Key: e.key, Err: e.matchErr})
			continue
		}

		if err := decodeField(&def, e.field, e.raw); err != nil {
			errs = append(errs, &DecodeError{Index: index, Key: e.key, Err: err})
		}
	}

	if len(errs) > 0 {
		return def, errs
	}
	if err := def.Validate(); err != nil {
		return def, []error{&DecodeError{Index: index, Err: err}}
	}
	return def, nil
}

// matchKey resolves a JSON key to a canonical field name under the mode's
// policy. A fold-matched key resolves to its field even when strict mode
// rejects it, so the caller can detect collisions with other keys binding
// the same field; the mismatch error accompanies the field in that case.
func matchKey(key string, mode MatchMode) (string, error) {
	for _, field := range fieldNames {
		if key == field {
			return field, nil
		}
	}
	for _, field := range fieldNames {
		if strings.EqualFold(key, field) {
			if mode == MatchStrict {
				return field, fmt.Errorf("%w: got %q, want %q", ErrCaseMismatch, key, field)
			}
			return field, nil
		}
	}
	if mode == MatchStrict {
		return "", ErrUnknownKey
	}
	// Lenient mode ignores keys it cannot bind, the way encoding/json does.
	return "", errSkipKey
}

// errSkipKey is an internal marker: the key binds nothing but is not a
// violation in lenient mode.
var errSkipKey = errors.New("skip key")

func decodeField(def *Spinner, field string, raw json.RawMessage) error {
	switch field {
	case "name":
		return json.Unmarshal(raw, &def.Name)
	case "characters":
		return json.Unmarshal(raw, &def.Characters)
	case "interval":
		return json.Unmarshal(raw, &def.IntervalMS)
	default:
		return nil
	}
}
