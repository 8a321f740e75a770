package box

import "testing"

func TestWeight(t *testing.T) {
	if Weight(true) != Heavy {
		t.Error("Expected covered side to map to Heavy")
	}
	if Weight(false) != Light {
		t.Error("Expected revealed side to map to Light")
	}
}

func TestRuneKnownJunctions(t *testing.T) {
	tests := []struct {
		name                  string
		up, down, left, right Edge
		want                  rune
	}{
		{"light horizontal", None, None, Light, Light, '─'},
		{"heavy horizontal", None, None, Heavy, Heavy, '━'},
		{"light vertical", Light, Light, None, None, '│'},
		{"heavy vertical", Heavy, Heavy, None, None, '┃'},
		{"light top-left corner", None, Light, None, Light, '┌'},
		{"heavy top-left corner", None, Heavy, None, Heavy, '┏'},
		{"heavy bottom-right corner", Heavy, None, Heavy, None, '┛'},
		{"light cross", Light, Light, Light, Light, '┼'},
		{"heavy cross", Heavy, Heavy, Heavy, Heavy, '╋'},
		{"mixed tee", Heavy, Heavy, None, Light, '┠'},
		{"mixed cross", Heavy, Light, Heavy, Light, '╃'},
		{"heavy right light rest", Light, Light, Light, Heavy, '┾'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rune(tt.up, tt.down, tt.left, tt.right); got != tt.want {
				t.Errorf("Rune(%d, %d, %d, %d) = %q, want %q", tt.up, tt.down, tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestRuneUnusedCombinationsAreBlank(t *testing.T) {
	// Dead ends (a single stub) have no box-drawing glyph in the table
	// and must resolve to a blank.
	if got := Rune(Light, None, None, None); got != ' ' {
		t.Errorf("Expected blank for single stub, got %q", got)
	}
	if got := Rune(None, None, None, Heavy); got != ' ' {
		t.Errorf("Expected blank for single stub, got %q", got)
	}
	if got := Rune(None, None, None, None); got != ' ' {
		t.Errorf("Expected blank for empty junction, got %q", got)
	}
}

func TestRuneIsTotal(t *testing.T) {
	edges := []Edge{None, Light, Heavy}
	seen := map[rune]bool{}
	for _, up := range edges {
		for _, down := range edges {
			for _, left := range edges {
				for _, right := range edges {
					seen[Rune(up, down, left, right)] = true
				}
			}
		}
	}
	// 68 distinct glyphs plus the blank fallback
	if len(seen) != 69 {
		t.Errorf("Expected 69 distinct glyphs across the domain, got %d", len(seen))
	}
}
