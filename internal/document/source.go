package document

import (
	"bytes"

	"github.com/zhubert/formplay/internal/logger"
)

// Source is the editable text of one origin together with the model derived
// from it.
type Source struct {
	origin   Origin
	text     string
	doc      Document
	err      string
	attempts int
}

// NewSource creates a source for origin and parses the seed text once.
// A seed that does not parse leaves an empty object as the document so the
// renderer always has something to work with.
func NewSource(origin Origin, seed string) *Source {
	s := &Source{
		origin: origin,
		doc:    Document{Origin: origin, Value: map[string]any{}, Raw: []byte("{}")},
	}
	s.SetText(seed)
	return s
}

// SetText stores the full current text and re-parses it. On success the
// parsed value replaces the document and the error is cleared. On failure
// the document is left untouched and the error is overwritten with the
// parser's diagnostic. Returns true when the document was replaced.
func (s *Source) SetText(text string) bool {
	s.text = text
	s.attempts++

	doc, perr := parseOrigin(s.origin, text)
	if perr != nil {
		s.err = perr.Message()
		logger.WithComponent("document").Debug("parse failed",
			"origin", s.origin.String(),
			"attempt", s.attempts,
			"offset", perr.Offset,
			"error", s.err,
		)
		return false
	}

	s.err = ""
	s.doc = doc
	return true
}

// Origin returns which editor this source belongs to.
func (s *Source) Origin() Origin { return s.origin }

// Text returns the raw editor text, valid or not.
func (s *Source) Text() string { return s.text }

// Document returns the last successfully parsed document.
func (s *Source) Document() Document { return s.doc }

// Err returns the current diagnostic; "" means the text is valid.
func (s *Source) Err() string { return s.err }

// Attempts returns how many parse attempts this source has seen.
func (s *Source) Attempts() int { return s.attempts }

// Workspace holds the schema and ui-schema sources. The two are fully
// independent: a failure in one never touches the other's document or error.
type Workspace struct {
	sources [len(Origins)]*Source
}

// NewWorkspace seeds both sources.
func NewWorkspace(schemaText, uiSchemaText string) *Workspace {
	seeds := [len(Origins)]string{schemaText, uiSchemaText}
	w := &Workspace{}
	for i, origin := range Origins {
		w.sources[i] = NewSource(origin, seeds[i])
	}
	return w
}

// Source returns the source for origin.
func (w *Workspace) Source(origin Origin) *Source {
	return w.sources[origin]
}

// Apply feeds the full text of one editor into its source. It reports
// whether the document the renderer sees has changed; re-parsing text that
// yields the same bytes counts as unchanged.
func (w *Workspace) Apply(origin Origin, text string) bool {
	src := w.Source(origin)
	before := src.Document().Raw
	if !src.SetText(text) {
		return false
	}
	return !bytes.Equal(before, src.Document().Raw)
}

// Document returns the last good document of origin.
func (w *Workspace) Document(origin Origin) Document {
	return w.Source(origin).Document()
}

// Err returns the current diagnostic of origin.
func (w *Workspace) Err(origin Origin) string {
	return w.Source(origin).Err()
}

// Text returns the raw text of origin.
func (w *Workspace) Text(origin Origin) string {
	return w.Source(origin).Text()
}

// Healthy reports whether both sources currently parse.
func (w *Workspace) Healthy() bool {
	for _, src := range w.sources {
		if src.Err() != "" {
			return false
		}
	}
	return true
}
