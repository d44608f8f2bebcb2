package tz

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	if got := Load(""); got != time.UTC {
		t.Fatalf("expected UTC for empty name, got %v", got)
	}
	if got := Load("Nowhere/Special"); got != time.UTC {
		t.Fatalf("expected UTC fallback, got %v", got)
	}
	if got := Load("Europe/Paris"); got.String() != "Europe/Paris" {
		t.Fatalf("expected Europe/Paris, got %v", got)
	}
}
