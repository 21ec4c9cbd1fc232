// Package colorname resolves HTML color names to 24-bit RGB values.
//
// Lookup is a case-insensitive exact match over a fixed, ordered table.
// The table intentionally contains duplicate names ("Aqua"/"Cyan" both
// map to the same value, and a handful of names appear in both the
// official and extended sections); first match wins, so table order is
// significant and the scan is linear rather than map-based.
package colorname

import (
	"strings"

	"github.com/yaklabco/subtext/pkg/subtitle"
)

// Resolve maps a color name to its RGB value. Unknown names resolve to
// black (0) with no error: callers cannot distinguish "explicitly
// black" from "unknown name". That ambiguity is part of the contract.
func Resolve(name string) subtitle.RGB {
	for _, c := range table {
		if strings.EqualFold(name, c.name) {
			return c.value
		}
	}
	return 0
}

// Names returns all color names in table order, duplicates included.
func Names() []string {
	out := make([]string, len(table))
	for i, c := range table {
		out[i] = c.name
	}
	return out
}

// Color is an exported name/value pair, for listings.
type Color struct {
	Name  string
	Value subtitle.RGB
}

// List returns the full color table in order, duplicates included.
func List() []Color {
	out := make([]Color, len(table))
	for i, c := range table {
		out[i] = Color{Name: c.name, Value: c.value}
	}
	return out
}

// Lookup returns the value for a name and whether it was found,
// for callers that do need to tell black from unknown.
func Lookup(name string) (subtitle.RGB, bool) {
	for _, c := range table {
		if strings.EqualFold(name, c.name) {
			return c.value, true
		}
	}
	return 0, false
}
