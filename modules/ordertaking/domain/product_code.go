package domain

import "regexp"

var (
	widgetPattern = regexp.MustCompile(`^W\d{3}$`)
	gizmoPattern  = regexp.MustCompile(`^G\d{3}$`)
)

// ProductCode is the closed set of recognized product-code families.
// The first character of the raw code selects the family; the rest must
// match the family-specific pattern. Only WidgetCode and GizmoCode
// implement it.
type ProductCode interface {
	Value() string
	isProductCode()
}

// WidgetCode is a product code of the form "W" followed by 3 digits.
// Widgets are ordered by unit count.
type WidgetCode struct {
	value string
}

func NewWidgetCode(field, value string) (WidgetCode, error) {
	v, err := createLike(field, value, widgetPattern)
	if err != nil {
		return WidgetCode{}, err
	}
	return WidgetCode{value: v}, nil
}

func (c WidgetCode) Value() string  { return c.value }
func (c WidgetCode) isProductCode() {}

// GizmoCode is a product code of the form "G" followed by 3 digits.
// Gizmos are ordered by weight.
type GizmoCode struct {
	value string
}

func NewGizmoCode(field, value string) (GizmoCode, error) {
	v, err := createLike(field, value, gizmoPattern)
	if err != nil {
		return GizmoCode{}, err
	}
	return GizmoCode{value: v}, nil
}

func (c GizmoCode) Value() string  { return c.value }
func (c GizmoCode) isProductCode() {}

// NewProductCode classifies a raw code string into its family by the
// first character and validates it against that family's pattern.
func NewProductCode(field, value string) (ProductCode, error) {
	if value == "" {
		return nil, newValidationError(field, "must not be empty")
	}
	switch value[0] {
	case 'W':
		return NewWidgetCode(field, value)
	case 'G':
		return NewGizmoCode(field, value)
	default:
		return nil, newValidationError(field, "format not recognized: %s", value)
	}
}
