package render

import (
	"fmt"

	huh "charm.land/huh/v2"
)

// NotApplicable is the rank a tester returns for controls it cannot render.
const NotApplicable = -1

// Control is a UI schema control resolved against its schema property.
type Control struct {
	Element  *Element
	Property Property
}

// Title is the control label: the UI schema label, else the schema title,
// else the property name in start case. Required controls are starred.
func (c Control) Title() string {
	title := c.Element.Label
	if title == "" {
		title = c.Property.Schema.Title
	}
	if title == "" {
		title = startCase(c.Property.Name)
	}
	if c.Property.Required {
		title += "*"
	}
	return title
}

func (c Control) placeholder() string {
	if c.Property.Schema.Default == nil {
		return ""
	}
	return fmt.Sprint(c.Property.Schema.Default)
}

// Tester ranks how well a renderer fits a control. The highest rank wins;
// NotApplicable excludes the renderer.
type Tester func(c Control) int

// renderer builds the huh field for a control and binds it to b.
type renderer struct {
	name   string
	tester Tester
	build  func(c Control, b *binding) huh.Field
	kind   bindingKind
}

// RendererSet is the capability set a form is built with. It is chosen once
// at startup and never mutated afterwards.
type RendererSet struct {
	renderers []renderer
}

// Names lists the renderers in the set.
func (s *RendererSet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.renderers))
	for i, r := range s.renderers {
		names[i] = r.name
	}
	return names
}

// find returns the best renderer for c.
func (s *RendererSet) find(c Control) (renderer, bool) {
	if s == nil {
		return renderer{}, false
	}
	best, bestRank := renderer{}, NotApplicable
	for _, r := range s.renderers {
		if rank := r.tester(c); rank > bestRank {
			best, bestRank = r, rank
		}
	}
	return best, bestRank != NotApplicable
}

// DefaultRenderers returns the built-in renderers: text, multi-line text,
// enum choice, boolean, integer and number.
func DefaultRenderers() *RendererSet {
	return &RendererSet{renderers: []renderer{
		{name: "text", tester: isType(1, "string", ""), build: buildText, kind: bindText},
		{name: "multiline", tester: multiline, build: buildMultiline, kind: bindText},
		{name: "enum", tester: hasEnum, build: buildEnum, kind: bindChoice},
		{name: "boolean", tester: isType(2, "boolean"), build: buildBoolean, kind: bindBool},
		{name: "integer", tester: isType(2, "integer"), build: buildNumber, kind: bindNumber},
		{name: "number", tester: isType(2, "number"), build: buildNumber, kind: bindNumber},
	}}
}

func isType(rank int, types ...string) Tester {
	return func(c Control) int {
		t := schemaType(c.Property.Schema)
		for _, want := range types {
			if t == want {
				return rank
			}
		}
		return NotApplicable
	}
}

func multiline(c Control) int {
	if !c.Element.Option("multi") {
		return NotApplicable
	}
	if t := schemaType(c.Property.Schema); t != "string" && t != "" {
		return NotApplicable
	}
	return 3
}

func hasEnum(c Control) int {
	if len(c.Property.Schema.Enum) == 0 {
		return NotApplicable
	}
	return 4
}

func buildText(c Control, b *binding) huh.Field {
	return huh.NewInput().
		Title(c.Title()).
		Description(c.Property.Schema.Description).
		Placeholder(c.placeholder()).
		Value(&b.text)
}

func buildMultiline(c Control, b *binding) huh.Field {
	return huh.NewText().
		Title(c.Title()).
		Description(c.Property.Schema.Description).
		Placeholder(c.placeholder()).
		Lines(3).
		Value(&b.text)
}

func buildNumber(c Control, b *binding) huh.Field {
	placeholder := c.placeholder()
	if placeholder == "" {
		placeholder = schemaType(c.Property.Schema)
	}
	return huh.NewInput().
		Title(c.Title()).
		Description(c.Property.Schema.Description).
		Placeholder(placeholder).
		Value(&b.text)
}

func buildBoolean(c Control, b *binding) huh.Field {
	return huh.NewConfirm().
		Title(c.Title()).
		Description(c.Property.Schema.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&b.flag)
}

func buildEnum(c Control, b *binding) huh.Field {
	opts := make([]huh.Option[string], 0, len(b.order)+1)
	opts = append(opts, huh.NewOption("(none)", ""))
	for _, key := range b.order {
		opts = append(opts, huh.NewOption(key, key))
	}
	return huh.NewSelect[string]().
		Title(c.Title()).
		Description(c.Property.Schema.Description).
		Options(opts...).
		Value(&b.choice)
}
