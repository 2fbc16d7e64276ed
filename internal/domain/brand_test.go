package domain

import (
	"errors"
	"testing"
)

func TestParseBrand(t *testing.T) {
	tests := []struct {
		in      string
		want    Brand
		wantErr bool
	}{
		{"", BrandStandard, false},
		{"standard", BrandStandard, false},
		{"specialist", BrandSpecialist, false},
		{"Specialist", "", true},
		{"acme", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBrand(tt.in, BrandStandard)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("expected ErrInvalidArgument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseBrand(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeError_Is(t *testing.T) {
	err := NewDecodeError("job hit", errors.New("missing _id"))
	if !errors.Is(err, ErrDecode) {
		t.Error("expected errors.Is(err, ErrDecode)")
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Shape != "job hit" {
		t.Errorf("expected DecodeError with shape, got %v", err)
	}
	if got := err.Error(); got != "unexpected search response shape: job hit: missing _id" {
		t.Errorf("Error() = %q", got)
	}
}
