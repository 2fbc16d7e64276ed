package domain

import "fmt"

// Brand is the tenant a request is served for. Brands change which filter
// fields exist and how some of them compile.
type Brand string

// Supported brands.
const (
	// BrandStandard is the general job board.
	BrandStandard Brand = "standard"
	// BrandSpecialist adds product/segment filters and wider job type matching.
	BrandSpecialist Brand = "specialist"
)

// IsValid checks if the brand is one of the supported values.
func (b Brand) IsValid() bool {
	return b == BrandStandard || b == BrandSpecialist
}

// ParseBrand validates a brand name. The empty string resolves to fallback.
func ParseBrand(s string, fallback Brand) (Brand, error) {
	if s == "" {
		return fallback, nil
	}
	b := Brand(s)
	if !b.IsValid() {
		return "", fmt.Errorf("%w: unknown brand %q", ErrInvalidArgument, s)
	}
	return b, nil
}
