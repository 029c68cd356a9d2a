// Package render turns a JSON Schema, a JSONForms-style UI schema and a data
// object into an interactive huh form, and reports every data edit back as a
// ChangeMsg.
//
// The package is the playground's rendering collaborator. Callers hand it the
// two parsed documents, the current data and a renderer set, and listen for
// ChangeMsg. They never reach into the form's fields.
//
// Property order follows the schema text: the schema document's raw bytes are
// decoded into an ordered jsonschema.Schema. Controls are laid out by the UI
// schema (VerticalLayout, HorizontalLayout, Group, Control); a missing or
// unusable UI schema falls back to one vertical layout over every property.
package render

import (
	"github.com/zhubert/formplay/internal/document"
)

// Input is everything the form is built from.
type Input struct {
	Schema    document.Document
	UISchema  document.Document
	Data      any
	Renderers *RendererSet
}

// FieldError is one inline validation message.
type FieldError struct {
	// Path is the property name the message belongs to.
	Path    string `json:"instancePath"`
	Message string `json:"message"`
}

// String formats the error the way it is listed under the form.
func (e FieldError) String() string {
	return e.Path + " " + e.Message
}

// ChangeEvent is the envelope carried by a ChangeMsg.
type ChangeEvent struct {
	Data   any          `json:"data"`
	Errors []FieldError `json:"errors"`
}

// EnvelopeData returns the new data value.
func (e ChangeEvent) EnvelopeData() any {
	return e.Data
}

// ChangeMsg is sent whenever the form's data differs from what it last
// reported. Generation identifies the form build that produced it; messages
// from a build that has since been reset are stale.
type ChangeMsg struct {
	Payload    any
	Generation uint64
}
