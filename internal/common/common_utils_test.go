package common

import "testing"

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 500); got != "short" {
		t.Errorf("got %q, want unchanged string", got)
	}

	long := ""
	for i := 0; i < 60; i++ {
		long += "0123456789"
	}
	if got := Truncate(long, 500); len([]rune(got)) != 500 {
		t.Errorf("got %d runes, want 500", len([]rune(got)))
	}

	// Multi-byte runes must not be split mid-character.
	if got := Truncate("héllo wörld", 5); got != "héllo" {
		t.Errorf("got %q, want héllo", got)
	}
}
