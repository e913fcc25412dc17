package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/plinth"
	"github.com/gogpu/plinth/style"
)

const testTheme = `
classes:
  panel:
    color: "#336699"
    border_color: rgb(0, 0, 0)
  primary:
    background_color: rgba(255, 255, 255, 0.5)
  warning:
    color: darkorange
`

func TestParseTheme(t *testing.T) {
	classes, err := parseTheme([]byte(testTheme))
	if err != nil {
		t.Fatalf("parseTheme: %v", err)
	}
	if len(classes) != 3 {
		t.Fatalf("got %d classes, want 3", len(classes))
	}

	tests := []struct {
		idx  int
		name string
		slot style.Slot
		want *plinth.Color
	}{
		{0, "panel", style.SlotColor, plinth.Ptr(plinth.RGB(0x33, 0x66, 0x99))},
		{0, "panel", style.SlotBackgroundColor, nil},
		{0, "panel", style.SlotBorderColor, plinth.Ptr(plinth.Black)},
		{1, "primary", style.SlotColor, nil},
		{1, "primary", style.SlotBackgroundColor, plinth.Ptr(plinth.RGBA(255, 255, 255, 128))},
		{2, "warning", style.SlotColor, plinth.Ptr(plinth.RGB(255, 140, 0))},
	}
	for _, tt := range tests {
		c := classes[tt.idx]
		if c.Name != tt.name {
			t.Errorf("class %d = %q, want %q", tt.idx, c.Name, tt.name)
			continue
		}
		got, ok := c.Get(tt.slot)
		switch {
		case tt.want == nil && ok:
			t.Errorf("%s.%v = %v, want absent", tt.name, tt.slot, got)
		case tt.want != nil && !ok:
			t.Errorf("%s.%v absent, want %v", tt.name, tt.slot, *tt.want)
		case tt.want != nil && got != *tt.want:
			t.Errorf("%s.%v = %v, want %v", tt.name, tt.slot, got, *tt.want)
		}
	}
}

func TestParseThemeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "classes: [", "decode theme"},
		{"bad color", "classes:\n  a:\n    color: \"#12345\"\n", `class "a" color`},
		{"bad border", "classes:\n  b:\n    border_color: rgb(1,2)\n", `class "b" border_color`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTheme([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"800", 800, false},
		{"1", 1, false},
		{"4294967295", 4294967295, false},
		{"4294967296", 0, true},
		{"18446744073709551615", 0, true},
		{"0", 0, true},
		{"-1", 0, true},
		{"wide", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseDimension(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDimension(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDimension(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDimensionFlagRejectsOverflow(t *testing.T) {
	width := uint32(800)
	set := dimensionFlag(&width)
	if err := set("4294967296"); err == nil {
		t.Error("expected error for a width beyond 32 bits")
	}
	if width != 800 {
		t.Errorf("rejected value changed width to %d", width)
	}
	if err := set("1024"); err != nil {
		t.Fatalf("set(1024): %v", err)
	}
	if width != 1024 {
		t.Errorf("width = %d, want 1024", width)
	}
}

func TestSceneIsFreshEachFrame(t *testing.T) {
	a := scene(0)
	a[0].ApplyStyleOverride(plinth.Red)
	b := scene(0)
	if b[0].CurrentColor() == plinth.Red {
		t.Error("scene shares shapes between frames")
	}
	if len(b) != 4 {
		t.Errorf("scene has %d shapes, want 4", len(b))
	}
}

func TestRunNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(testTheme), 0o600); err != nil {
		t.Fatal(err)
	}
	err := run(config{width: 64, height: 48, frames: 3, theme: path, noop: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunMissingTheme(t *testing.T) {
	err := run(config{width: 8, height: 8, frames: 1, theme: filepath.Join(t.TempDir(), "nope.yaml"), noop: true})
	if err == nil {
		t.Error("expected error for missing theme")
	}
}
