package theme

import "testing"

func TestParseName(t *testing.T) {
	tests := []struct {
		input string
		want  Name
	}{
		{"light", NameLight},
		{"dark", NameDark},
		{"  DARK ", NameDark},
		{"", Default},
		{"solarized", Default},
	}
	for _, tt := range tests {
		if got := ParseName(tt.input); got != tt.want {
			t.Errorf("ParseName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLookupBuiltins(t *testing.T) {
	for _, name := range Names() {
		c, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", name)
		}
		if c.Primary900 == "" || c.Primary500 == "" {
			t.Errorf("palette %q is missing primary colors: %+v", name, c)
		}
	}
	if _, ok := Lookup("sepia"); ok {
		t.Error("Lookup(sepia) should not succeed")
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown(" Light") {
		t.Error("expected Light to be known")
	}
	if IsKnown("neon") {
		t.Error("expected neon to be unknown")
	}
}

func TestMustLookupPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown palette")
		}
	}()
	MustLookup("neon")
}
