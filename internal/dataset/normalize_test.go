package dataset

import "testing"

func TestNormalizeGPName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"camel case split", "johnSmith", "John Smith"},
		{"underscores", "jane_doe", "Jane Doe"},
		{"camel and underscore", "maryAnn_lee", "Mary Ann Lee"},
		{"already clean", "Robert Chen", "Robert Chen"},
		{"uppercases tokens", "alice walker", "Alice Walker"},
		{"lowercases tails", "ALICE WALKER", "Alice Walker"},
		{"trims whitespace", "  sam okafor  ", "Sam Okafor"},
		{"single pass boundaries", "aBcD", "A Bc D"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeGPName(tt.raw); got != tt.want {
				t.Errorf("NormalizeGPName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeGPNameMergesVariants(t *testing.T) {
	// Distinct raw spellings of the same identity collapse to one key;
	// downstream rollups treat that as an intentional merge.
	variants := []string{"johnSmith", "john_smith", "JOHN SMITH", "John Smith"}
	for _, v := range variants {
		if got := NormalizeGPName(v); got != "John Smith" {
			t.Errorf("NormalizeGPName(%q) = %q, want %q", v, got, "John Smith")
		}
	}
}
