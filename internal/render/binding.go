package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type bindingKind int

const (
	bindText bindingKind = iota
	bindNumber
	bindBool
	bindChoice
)

// binding holds the widget-side value of one control. huh writes into the
// text, flag and choice fields through pointers.
type binding struct {
	name  string
	kind  bindingKind
	rules validationRules

	text   string
	flag   bool
	choice string

	// Boolean controls have no empty state, so presence is tracked: a
	// boolean is written once it was in the data or the user flipped it.
	present     bool
	initialFlag bool

	// Enum option labels in schema order, and the JSON value each stands for.
	order   []string
	choices map[string]any
}

func newBinding(kind bindingKind, p Property, data map[string]any) *binding {
	b := &binding{
		name:  p.Name,
		kind:  kind,
		rules: collectValidationRules(p),
	}
	v, ok := data[p.Name]

	switch kind {
	case bindText:
		if ok && v != nil {
			if s, isString := v.(string); isString {
				b.text = s
			} else {
				b.text = fmt.Sprint(v)
			}
		}
	case bindNumber:
		if ok && v != nil {
			if f, isNumber := v.(float64); isNumber {
				b.text = formatNumber(f)
			} else {
				b.text = fmt.Sprint(v)
			}
		}
	case bindBool:
		b.present = ok
		b.flag, _ = v.(bool)
		b.initialFlag = b.flag
	case bindChoice:
		b.choices = make(map[string]any, len(p.Schema.Enum))
		for _, e := range p.Schema.Enum {
			key := fmt.Sprint(e)
			if _, dup := b.choices[key]; dup {
				continue
			}
			b.order = append(b.order, key)
			b.choices[key] = e
		}
		if ok && v != nil {
			key := fmt.Sprint(v)
			if _, known := b.choices[key]; known {
				b.choice = key
			}
		}
	}
	return b
}

// value converts the widget state to the JSON value stored in the data.
// present is false when the property should be absent. parseErr is set when
// the text cannot be converted.
func (b *binding) value() (v any, present bool, parseErr string) {
	switch b.kind {
	case bindNumber:
		raw := strings.TrimSpace(b.text)
		if raw == "" {
			return nil, false, ""
		}
		if b.rules.integer {
			if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return float64(i), true, ""
			}
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			if b.rules.integer {
				return nil, false, "must be integer"
			}
			return nil, false, "must be number"
		}
		return f, true, ""
	case bindBool:
		if b.flag != b.initialFlag {
			b.present = true
		}
		return b.flag, b.present, ""
	case bindChoice:
		if b.choice == "" {
			return nil, false, ""
		}
		return b.choices[b.choice], true, ""
	default:
		if b.text == "" {
			return nil, false, ""
		}
		return b.text, true, ""
	}
}

// errors validates the current widget state.
func (b *binding) errors() []string {
	v, present, parseErr := b.value()
	if parseErr != "" {
		return []string{parseErr}
	}
	return b.rules.validate(v, present)
}
