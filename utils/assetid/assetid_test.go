package assetid

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	id := New()
	if !strings.HasPrefix(id, "reel_") {
		t.Errorf("Expected reel_ prefix, got %q", id)
	}
	if id != strings.ToLower(id) {
		t.Errorf("Expected lowercase id, got %q", id)
	}
	if !IsValid(id) {
		t.Errorf("Expected generated id to be valid, got %q", id)
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := New()
		if _, dup := seen[id]; dup {
			t.Fatalf("Duplicate id generated: %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{New(), true},
		{"", false},
		{"reel_", false},
		{"reel_not-a-ulid", false},
		{"vid_01hx3b9p5cjq8w2e6r4t7y0m1n", false},
		{strings.TrimPrefix(New(), "reel_"), false},
	}

	for _, tc := range cases {
		if got := IsValid(tc.value); got != tc.valid {
			t.Errorf("IsValid(%q) = %v, want %v", tc.value, got, tc.valid)
		}
	}
}

func TestParse(t *testing.T) {
	id := New()
	parsed, err := Parse(id)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", id, err)
	}
	if got := "reel_" + strings.ToLower(parsed.String()); got != id {
		t.Errorf("Round trip mismatch: %q != %q", got, id)
	}
}
