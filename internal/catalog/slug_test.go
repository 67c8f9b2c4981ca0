package catalog

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Floral Notebook", "floral-notebook"},
		{"Lokta Paper  Lampshade", "lokta-paper-lampshade"},
		{"Greeting Card (Pack of 5)", "greeting-card-pack-of-5"},
		{"रू Special!", "special"},
		{"A4_sketch_book", "a4-sketch-book"},
		{"--already--slugged--", "already-slugged"},
		{"", "product"},
		{"!!!", "product"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.expected {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
