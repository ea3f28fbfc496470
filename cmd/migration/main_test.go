package main

import (
	"strings"
	"testing"
)

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default 1 step, got %d err=%v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got %d err=%v", got, err)
	}
	if _, err := parseSteps([]string{"0"}); err == nil {
		t.Fatalf("expected error for zero steps")
	}
}

func TestNormalizeDBURL(t *testing.T) {
	t.Run("adds flag by default", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		got := normalizeDBURL("postgres://u:p@localhost:5432/courtside?sslmode=disable")
		if !strings.Contains(got, "disable_prepared_binary_result=yes") {
			t.Fatalf("expected flag in url, got %q", got)
		}
	})

	t.Run("explicit false keeps url", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "false")
		in := "postgres://u:p@localhost:5432/courtside?sslmode=disable"
		if got := normalizeDBURL(in); got != in {
			t.Fatalf("expected url unchanged, got %q", got)
		}
	})
}
