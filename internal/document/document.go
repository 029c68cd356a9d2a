// Package document turns the raw text of the two editor panes into parsed
// JSON documents.
//
// Each origin (schema, ui-schema) keeps its own text, its last good document
// and its current diagnostic. A failed parse never replaces the last good
// document: the renderer keeps working on it while the user fixes the text.
// The diagnostic is overwritten on every attempt, so it is empty exactly
// when the current text is valid JSON.
package document

import (
	stdjson "encoding/json"
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	perrors "github.com/zhubert/formplay/internal/errors"
)

// Origin identifies which editor a document came from.
type Origin int

const (
	OriginSchema Origin = iota
	OriginUISchema
)

// Origins lists every origin in display order.
var Origins = [...]Origin{OriginSchema, OriginUISchema}

// String returns a human-readable name for the origin
func (o Origin) String() string {
	switch o {
	case OriginSchema:
		return "schema"
	case OriginUISchema:
		return "uischema"
	default:
		return "unknown"
	}
}

// Document is a successfully parsed JSON value.
type Document struct {
	Origin Origin
	Value  any
	// Raw is the exact text that produced Value. Consumers that care about
	// object key order decode it again with an order-preserving model.
	Raw []byte
}

// ParseError is the single failure kind of the parser: the text of one
// origin is not well-formed JSON.
type ParseError struct {
	Origin Origin
	// Offset is the byte offset reported by the decoder, or -1 when unknown.
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	return perrors.SyntaxParseFailure(e.Origin.String(), e.Err).Error()
}

func (e *ParseError) Unwrap() error {
	return perrors.SyntaxParseFailure(e.Origin.String(), e.Err)
}

// Message is the diagnostic shown to the user: the decoder's own message,
// or a string conversion of the failure when the decoder gave none.
func (e *ParseError) Message() string {
	if e.Err == nil {
		return "invalid JSON"
	}
	if msg := e.Err.Error(); msg != "" {
		return msg
	}
	return fmt.Sprintf("%#v", e.Err)
}

// errEmptyInput mirrors the decoder's wording for truncated input so an empty
// pane reads the same as a half-typed one.
var errEmptyInput = errors.New("json: unexpected end of JSON input")

var errInvalid = errors.New("json: invalid JSON")

// Parse strictly decodes text as a single JSON value. Trailing data after the
// top-level value is rejected.
//
// The grammar check runs on encoding/json: goccy accepts leading zeros,
// fractions without digits and raw control characters in strings.
func Parse(text string) (any, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errEmptyInput
	}
	data := []byte(text)
	if !stdjson.Valid(data) {
		var v any
		if err := stdjson.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return nil, errInvalid
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// parseOrigin wraps Parse failures in a ParseError for origin.
func parseOrigin(origin Origin, text string) (Document, *ParseError) {
	v, err := Parse(text)
	if err != nil {
		pe := &ParseError{Origin: origin, Offset: -1, Err: err}
		var syn *json.SyntaxError
		var stdSyn *stdjson.SyntaxError
		switch {
		case errors.As(err, &stdSyn):
			pe.Offset = stdSyn.Offset
		case errors.As(err, &syn):
			pe.Offset = syn.Offset
		}
		return Document{}, pe
	}
	return Document{Origin: origin, Value: v, Raw: []byte(text)}, nil
}
