package ui

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func composeLines(s string) []string {
	lines := strings.Split(stripANSI(s), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		cells  []Cell
		want   []string
	}{
		{
			name:   "side by side",
			width:  10,
			height: 2,
			cells: []Cell{
				{X: 0, Width: 3, View: "abc\nde"},
				{X: 3, Width: 1, View: "|\n|"},
				{X: 4, Width: 6, View: "xyz"},
			},
			want: []string{"abc|xyz", "de |"},
		},
		{
			name:   "clipped to cell width",
			width:  8,
			height: 1,
			cells: []Cell{
				{X: 0, Width: 3, View: "abcdef"},
				{X: 4, Width: 4, View: "123456"},
			},
			want: []string{"abc 1234"},
		},
		{
			name:   "clipped at the screen edge",
			width:  5,
			height: 1,
			cells: []Cell{
				{X: 3, Width: 10, View: "wxyz"},
				{X: 9, Width: 2, View: "gone"},
			},
			want: []string{"   wx"},
		},
		{
			name:   "extra lines dropped",
			width:  3,
			height: 1,
			cells:  []Cell{{X: 0, Width: 3, View: "one\ntwo"}},
			want:   []string{"one"},
		},
		{
			name:   "zero width cell skipped",
			width:  3,
			height: 1,
			cells:  []Cell{{X: 0, Width: 0, View: "abc"}},
			want:   []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := composeLines(Compose(tt.width, tt.height, tt.cells...))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compose() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompose_Empty(t *testing.T) {
	if Compose(0, 5) != "" || Compose(5, 0) != "" {
		t.Error("an empty screen should render nothing")
	}
}
