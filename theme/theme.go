// Package theme defines the site's color palettes. A palette is chosen per
// request and handed to components explicitly; nothing here is global state
// that changes after init.
package theme

import "strings"

// Name identifies a built-in palette.
type Name string

const (
	NameLight Name = "light"
	NameDark  Name = "dark"

	// Default is used when a request carries no usable preference.
	Default = NameLight
)

// Colors holds the hex colors of one palette.
type Colors struct {
	Primary900 string // primary, strong: logo wordmark
	Primary500 string // primary, medium: logo accent
	Background string
	Text       string
}

// Light is the default palette.
var Light = Colors{
	Primary900: "#1E1B4B",
	Primary500: "#6366F1",
	Background: "#FFFFFF",
	Text:       "#111827",
}

// Dark is used when the visitor prefers a dark color scheme.
var Dark = Colors{
	Primary900: "#E0E7FF",
	Primary500: "#818CF8",
	Background: "#0F172A",
	Text:       "#F1F5F9",
}

// Lookup returns the palette registered under name.
func Lookup(name Name) (Colors, bool) {
	switch name {
	case NameLight:
		return Light, true
	case NameDark:
		return Dark, true
	}
	return Colors{}, false
}

// ParseName normalizes s into a known palette name, falling back to Default.
func ParseName(s string) Name {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := Lookup(n); ok {
		return n
	}
	return Default
}

// IsKnown reports whether s names a built-in palette.
func IsKnown(s string) bool {
	_, ok := Lookup(Name(strings.ToLower(strings.TrimSpace(s))))
	return ok
}

// Names lists the built-in palettes in display order.
func Names() []Name {
	return []Name{NameLight, NameDark}
}

// MustLookup is Lookup for names already validated by ParseName.
func MustLookup(name Name) Colors {
	c, ok := Lookup(name)
	if !ok {
		panic("theme: unknown palette " + string(name))
	}
	return c
}
