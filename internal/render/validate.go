package render

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/invopop/jsonschema"
)

// validationRules are the constraints a control checks inline.
type validationRules struct {
	required bool
	integer  bool
	minLen   *int
	maxLen   *int
	min      *float64
	max      *float64
	pattern  *regexp.Regexp
}

func collectValidationRules(p Property) validationRules {
	rules := validationRules{
		required: p.Required,
		integer:  p.Schema.Type == "integer",
	}
	if p.Schema.MinLength != nil {
		v := int(*p.Schema.MinLength)
		rules.minLen = &v
	}
	if p.Schema.MaxLength != nil {
		v := int(*p.Schema.MaxLength)
		rules.maxLen = &v
	}
	if v, ok := parseNumber(p.Schema.Minimum.String()); ok {
		rules.min = &v
	}
	if v, ok := parseNumber(p.Schema.Maximum.String()); ok {
		rules.max = &v
	}
	if p.Schema.Pattern != "" {
		if re, err := regexp.Compile(p.Schema.Pattern); err == nil {
			rules.pattern = re
		}
	}
	return rules
}

// validate checks one value. present is false when the property is absent
// from the data.
func (r validationRules) validate(value any, present bool) []string {
	if !present {
		if r.required {
			return []string{"is a required property"}
		}
		return nil
	}

	switch v := value.(type) {
	case string:
		return r.validateString(v)
	case float64:
		return r.validateNumber(v)
	}
	return nil
}

func (r validationRules) validateString(value string) []string {
	var errs []string
	n := utf8.RuneCountInString(value)
	if r.minLen != nil && n < *r.minLen {
		errs = append(errs, fmt.Sprintf("must NOT have fewer than %d characters", *r.minLen))
	}
	if r.maxLen != nil && n > *r.maxLen {
		errs = append(errs, fmt.Sprintf("must NOT have more than %d characters", *r.maxLen))
	}
	if r.pattern != nil && !r.pattern.MatchString(value) {
		errs = append(errs, fmt.Sprintf("must match pattern %q", r.pattern.String()))
	}
	return errs
}

func (r validationRules) validateNumber(value float64) []string {
	var errs []string
	if r.integer && value != math.Trunc(value) {
		errs = append(errs, "must be integer")
	}
	if r.min != nil && value < *r.min {
		errs = append(errs, fmt.Sprintf("must be >= %s", formatNumber(*r.min)))
	}
	if r.max != nil && value > *r.max {
		errs = append(errs, fmt.Sprintf("must be <= %s", formatNumber(*r.max)))
	}
	return errs
}

func parseNumber(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	return v, err == nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// schemaType returns the declared type, or "" for a missing schema.
func schemaType(s *jsonschema.Schema) string {
	if s == nil {
		return ""
	}
	return s.Type
}
