package model

import "testing"

func TestJoinLower(t *testing.T) {
	got := JoinLower("Reporting Grant", "For WRITERS", "")
	want := "reporting grant for writers "

	if got != want {
		t.Errorf("JoinLower = %q, want %q", got, want)
	}
}

func TestJoinLower_Empty(t *testing.T) {
	if got := JoinLower(); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}
