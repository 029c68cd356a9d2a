// Package examples provides the schema and ui-schema pairs compiled into the
// binary. One of them seeds the editors at startup.
package examples

import (
	"embed"
	"path"

	perrors "github.com/zhubert/formplay/internal/errors"
)

//go:embed seeds/*.json
var seeds embed.FS

// Default is the example loaded when none is configured.
const Default = "person"

// Example is one seed pair.
type Example struct {
	Name        string
	Description string
	Schema      string
	UISchema    string
}

// catalog lists the examples in display order.
var catalog = []struct {
	name        string
	description string
}{
	{"person", "First name, last name and a required non-negative age"},
	{"contact", "Nested layouts, an enum, a boolean and a multi-line message"},
	{"broken", "A ui-schema with a missing closing brace"},
}

// Names returns the example names in display order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, c := range catalog {
		names[i] = c.name
	}
	return names
}

// All returns every example in display order.
func All() []Example {
	out := make([]Example, 0, len(catalog))
	for _, c := range catalog {
		ex, err := Get(c.name)
		if err != nil {
			continue
		}
		out = append(out, ex)
	}
	return out
}

// Get returns the named example.
func Get(name string) (Example, error) {
	for _, c := range catalog {
		if c.name != name {
			continue
		}
		schema, err := seeds.ReadFile(path.Join("seeds", name+".schema.json"))
		if err != nil {
			return Example{}, perrors.ExampleNotFound(name)
		}
		ui, err := seeds.ReadFile(path.Join("seeds", name+".uischema.json"))
		if err != nil {
			return Example{}, perrors.ExampleNotFound(name)
		}
		return Example{
			Name:        name,
			Description: c.description,
			Schema:      string(schema),
			UISchema:    string(ui),
		}, nil
	}
	return Example{}, perrors.ExampleNotFound(name)
}

// MustGet is Get for names known at compile time.
func MustGet(name string) Example {
	ex, err := Get(name)
	if err != nil {
		panic(err)
	}
	return ex
}
