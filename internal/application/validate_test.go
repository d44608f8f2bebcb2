package application

import (
	"errors"
	"strings"
	"testing"

	"eventplanner/internal/domain"
)

func TestNewValidator_NotBlank(t *testing.T) {
	v := newValidator()

	type payload struct {
		Name string `validate:"required,notblank"`
	}

	if err := validateInput(v, payload{Name: "Planning"}); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
	err := validateInput(v, payload{Name: " \t "})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "Name (notblank)") {
		t.Fatalf("expected failing field in message, got %q", err.Error())
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, defaultPageSize},
		{3, 25, 3, 25},
		{2, 500, 2, maxPageSize},
	}
	for _, tt := range tests {
		page, limit := normalizePage(tt.page, tt.limit)
		if page != tt.wantPage || limit != tt.wantLimit {
			t.Fatalf("normalizePage(%d, %d) = %d, %d", tt.page, tt.limit, page, limit)
		}
	}
}
