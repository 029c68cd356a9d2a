package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunClean_Cancelled(t *testing.T) {
	origSkip := skipConfirm
	defer func() { skipConfirm = origSkip }()
	skipConfirm = false

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := runCleanWithReader(strings.NewReader("n\n"), &out, path); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
	if !strings.Contains(out.String(), "Cancelled.") {
		t.Errorf("output = %q", out.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("config should survive a cancelled clean")
	}
}

func TestRunClean_RemovesConfig(t *testing.T) {
	origSkip := skipConfirm
	defer func() { skipConfirm = origSkip }()
	skipConfirm = false

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := runCleanWithReader(strings.NewReader("yes\n"), &out, path); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("config should be removed")
	}
	if !strings.Contains(out.String(), "Removed saved preferences.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunClean_SkipConfirm(t *testing.T) {
	origSkip := skipConfirm
	defer func() { skipConfirm = origSkip }()
	skipConfirm = true

	var out bytes.Buffer
	if err := runCleanWithReader(strings.NewReader(""), &out, ""); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
	if strings.Contains(out.String(), "Continue?") {
		t.Error("--yes should skip the prompt")
	}
	if !strings.Contains(out.String(), "log file(s)") {
		t.Errorf("output = %q", out.String())
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if got := confirm(strings.NewReader(tt.input), &out); got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
