package pricing

type VehicleSize string

const (
	SizeSmall  VehicleSize = "small"
	SizeMedium VehicleSize = "medium"
	SizeLarge  VehicleSize = "large"

	// DefaultSize is pre-selected everywhere a size picker appears.
	DefaultSize = SizeSmall
)

func (s VehicleSize) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

func (s VehicleSize) String() string {
	return string(s)
}

// Label is the customer-facing description of the size category.
func (s VehicleSize) Label() string {
	switch s {
	case SizeSmall:
		return "Small Coupe/Sedans"
	case SizeMedium:
		return "Medium SUV/Truck (4-5 Seater)"
	case SizeLarge:
		return "Large Minivan/Van (6-8 Seater)"
	default:
		return string(s)
	}
}

// NormalizeSize maps an empty or unknown size to the default.
func NormalizeSize(s string) VehicleSize {
	size := VehicleSize(s)
	if !size.IsValid() {
		return DefaultSize
	}
	return size
}
