package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zhubert/formplay/internal/examples"
)

func TestListExamples(t *testing.T) {
	var buf bytes.Buffer
	if err := listExamples(&buf); err != nil {
		t.Fatalf("listExamples() error = %v", err)
	}

	out := buf.String()
	for _, name := range examples.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("output missing %q:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "* "+examples.Default) {
		t.Errorf("default example should be marked:\n%s", out)
	}
}

func TestShowExample(t *testing.T) {
	ex := examples.MustGet(examples.Default)

	tests := []struct {
		name    string
		part    string
		want    []string
		wantErr bool
	}{
		{"both", "", []string{"# schema", ex.Schema, "# uischema", ex.UISchema}, false},
		{"schema only", "schema", []string{ex.Schema}, false},
		{"uischema only", "uischema", []string{ex.UISchema}, false},
		{"bad part", "data", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := showExample(&buf, examples.Default, tt.part)
			if (err != nil) != tt.wantErr {
				t.Fatalf("showExample() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output missing %q", w)
				}
			}
		})
	}
}

func TestShowExample_Unknown(t *testing.T) {
	var buf bytes.Buffer
	if err := showExample(&buf, "nope", ""); err == nil {
		t.Error("expected error for unknown example")
	}
}
