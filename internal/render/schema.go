package render

import (
	"fmt"
	"strings"
	"unicode"

	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"

	"github.com/zhubert/formplay/internal/document"
)

// Property is one top-level schema property, in schema order.
type Property struct {
	Name     string
	Schema   *jsonschema.Schema
	Required bool
}

// loadSchema decodes the raw schema text into an ordered schema model.
func loadSchema(doc document.Document) (*jsonschema.Schema, error) {
	if len(doc.Raw) == 0 {
		return nil, fmt.Errorf("no schema")
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(doc.Raw, &s); err != nil {
		return nil, fmt.Errorf("schema cannot be rendered: %w", err)
	}
	return &s, nil
}

// properties lists the object properties of s in declaration order.
func properties(s *jsonschema.Schema) []Property {
	if s == nil || s.Properties == nil {
		return nil
	}
	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}

	var props []Property
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		ps := pair.Value
		if ps == nil {
			ps = &jsonschema.Schema{}
		}
		props = append(props, Property{
			Name:     pair.Key,
			Schema:   ps,
			Required: required[pair.Key],
		})
	}
	return props
}

// lookup finds a property by name.
func lookup(props []Property, name string) (Property, bool) {
	for _, p := range props {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// startCase turns a property name into a label: "firstName" and
// "first_name" both become "First Name".
func startCase(name string) string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
			continue
		case unicode.IsUpper(r) && i > 0 && !unicode.IsUpper(runes[i-1]):
			flush()
		case unicode.IsDigit(r) && i > 0 && !unicode.IsDigit(runes[i-1]):
			flush()
		}
		cur = append(cur, r)
	}
	flush()

	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
