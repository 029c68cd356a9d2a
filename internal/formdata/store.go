// Package formdata holds the live data object produced by the rendered form.
//
// The store is replaced wholesale on every change; nothing mutates a stored
// value in place, so a revision bump is enough for consumers to notice.
package formdata

import (
	json "github.com/goccy/go-json"

	"github.com/zhubert/formplay/internal/logger"
)

// Envelope is implemented by change events that carry the new value under a
// data field.
type Envelope interface {
	EnvelopeData() any
}

// Store is the form data owned by the view layer.
type Store struct {
	value    any
	revision uint64
}

// New returns a store holding an empty object.
func New() *Store {
	return &Store{value: map[string]any{}}
}

// Value returns the current value. Treat it as read-only; use Snapshot for a
// copy that can be modified.
func (s *Store) Value() any {
	return s.value
}

// Revision increments on every replacement, including resets.
func (s *Store) Revision() uint64 {
	return s.revision
}

// OnExternalChange replaces the value with the one carried by payload.
// payload may be the value itself or an envelope exposing it under "data".
// A payload that does not look like an envelope, or an envelope with no
// usable data, is stored as-is.
func (s *Store) OnExternalChange(payload any) {
	value, enveloped := extract(payload)
	s.replace(value)
	logger.WithComponent("formdata").Debug("data replaced",
		"revision", s.revision,
		"enveloped", enveloped,
	)
}

// Reset discards all edits and replaces the value with a fresh empty object.
func (s *Store) Reset() {
	s.replace(map[string]any{})
	logger.WithComponent("formdata").Debug("data reset", "revision", s.revision)
}

func (s *Store) replace(v any) {
	s.value = v
	s.revision++
}

// Snapshot returns a deep copy of the current value.
func (s *Store) Snapshot() any {
	return deepCopy(s.value)
}

// JSON encodes the current value. Object keys are sorted.
func (s *Store) JSON(indent bool) (string, error) {
	var (
		b   []byte
		err error
	)
	if indent {
		b, err = json.MarshalIndent(s.value, "", "  ")
	} else {
		b, err = json.Marshal(s.value)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// extract pulls the data value out of an envelope. It never panics: a nil
// pointer hiding behind an Envelope falls back to the raw payload.
func extract(payload any) (value any, enveloped bool) {
	defer func() {
		if r := recover(); r != nil {
			value, enveloped = payload, false
		}
	}()

	switch p := payload.(type) {
	case Envelope:
		if d := p.EnvelopeData(); d != nil {
			return d, true
		}
	case map[string]any:
		if d, ok := p["data"]; ok && d != nil {
			return d, true
		}
	case *map[string]any:
		if p != nil {
			if d, ok := (*p)["data"]; ok && d != nil {
				return d, true
			}
		}
	}
	return payload, false
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepCopy(val)
		}
		return out
	default:
		return v
	}
}
