package colorname

import (
	"testing"

	"github.com/yaklabco/subtext/pkg/subtitle"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		want subtitle.RGB
	}{
		{"Red", 0xFF0000},
		{"red", 0xFF0000},
		{"RED", 0xFF0000},
		{"Black", 0x000000},
		{"White", 0xFFFFFF},
		{"DodgerBlue", 0x1E90FF},
		{"dodgerblue", 0x1E90FF},
		{"YellowGreen", 0x9ACD32},
	}

	for _, tt := range tests {
		if got := Resolve(tt.name); got != tt.want {
			t.Errorf("Resolve(%q) = %06X, want %06X", tt.name, uint32(got), uint32(tt.want))
		}
	}
}

func TestResolve_UnknownIsBlack(t *testing.T) {
	for _, name := range []string{"", "NotAColor", "rgb(1,2,3)", "#FF0000"} {
		if got := Resolve(name); got != 0 {
			t.Errorf("Resolve(%q) = %06X, want 0", name, uint32(got))
		}
	}
}

func TestResolve_DuplicatesAgree(t *testing.T) {
	// Aqua/Cyan and the Gray/Grey spelling pairs are distinct table
	// entries that must resolve to the same value.
	pairs := [][2]string{
		{"Aqua", "Cyan"},
		{"Gray", "Grey"},
		{"DarkSlateGray", "DarkSlateGrey"},
		{"Fuchsia", "Magenta"},
	}
	for _, p := range pairs {
		a, b := Resolve(p[0]), Resolve(p[1])
		if a != b {
			t.Errorf("Resolve(%q) = %06X but Resolve(%q) = %06X", p[0], uint32(a), p[1], uint32(b))
		}
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("Black"); !ok {
		t.Error("Lookup(Black) should be found")
	}
	if _, ok := Lookup("NotAColor"); ok {
		t.Error("Lookup(NotAColor) should not be found")
	}
}

func TestNames_OrderAndSize(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("empty name table")
	}
	// The official section leads the table.
	if names[0] != "Aqua" || names[1] != "Black" {
		t.Errorf("unexpected table head: %v", names[:2])
	}
}
