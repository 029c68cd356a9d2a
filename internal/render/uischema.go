package render

import (
	"fmt"
	"strings"
)

// UI schema element types.
const (
	TypeVerticalLayout   = "VerticalLayout"
	TypeHorizontalLayout = "HorizontalLayout"
	TypeGroup            = "Group"
	TypeControl          = "Control"
	TypeLabel            = "Label"
)

const scopePrefix = "#/properties/"

// Element is one node of a UI schema.
type Element struct {
	Type     string
	Label    string
	Scope    string
	Text     string
	Options  map[string]any
	Elements []*Element
}

// Property returns the property a control's scope points at. Only direct
// properties of the root schema ("#/properties/<name>") are addressable.
func (e *Element) Property() (string, bool) {
	if e == nil || !strings.HasPrefix(e.Scope, scopePrefix) {
		return "", false
	}
	name := strings.TrimPrefix(e.Scope, scopePrefix)
	if name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}

// Option returns a boolean option such as "multi".
func (e *Element) Option(key string) bool {
	if e == nil || e.Options == nil {
		return false
	}
	b, _ := e.Options[key].(bool)
	return b
}

// parseUISchema reads a UI schema from its parsed JSON value. It returns
// false when v is not an element (no usable "type"), in which case the
// caller generates a default layout.
func parseUISchema(v any) (*Element, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	t, _ := m["type"].(string)
	if t == "" {
		return nil, false
	}

	el := &Element{Type: t}
	el.Scope, _ = m["scope"].(string)
	el.Text, _ = m["text"].(string)
	el.Options, _ = m["options"].(map[string]any)
	switch label := m["label"].(type) {
	case string:
		el.Label = label
	case bool:
		// "label": false hides the label; keep it empty.
	}

	if children, ok := m["elements"].([]any); ok {
		for _, c := range children {
			if child, ok := parseUISchema(c); ok {
				el.Elements = append(el.Elements, child)
			}
		}
	}
	return el, true
}

// defaultLayout is the layout used when no UI schema applies: one vertical
// layout with a control for every property in schema order.
func defaultLayout(props []Property) *Element {
	root := &Element{Type: TypeVerticalLayout}
	for _, p := range props {
		root.Elements = append(root.Elements, &Element{
			Type:  TypeControl,
			Scope: scopePrefix + p.Name,
		})
	}
	return root
}

// section is a run of controls rendered as one huh group.
type section struct {
	title    string
	controls []*Element
}

// flatten walks the layout tree and produces the sections huh renders.
// Vertical and horizontal layouts contribute their controls to the
// enclosing section; each Group opens a titled section of its own. Unknown
// element types are reported through notices.
func flatten(root *Element) (sections []section, notices []string) {
	current := &section{}
	closeCurrent := func() {
		if len(current.controls) > 0 {
			sections = append(sections, *current)
		}
		current = &section{}
	}

	var walk func(el *Element)
	walk = func(el *Element) {
		switch el.Type {
		case TypeControl:
			current.controls = append(current.controls, el)
		case TypeVerticalLayout, TypeHorizontalLayout:
			for _, child := range el.Elements {
				walk(child)
			}
		case TypeGroup:
			closeCurrent()
			current.title = el.Label
			for _, child := range el.Elements {
				walk(child)
			}
			closeCurrent()
		case TypeLabel:
			if el.Text != "" {
				notices = append(notices, el.Text)
			}
		default:
			notices = append(notices, fmt.Sprintf("No applicable renderer found for %q", el.Type))
		}
	}
	walk(root)
	closeCurrent()
	return sections, notices
}
