package catalog

import "strings"

// Filter narrows the enriched catalog for customer-facing views. Unavailable
// units are excluded whenever any filter besides "all" is active, matching
// the storefront behavior; size-tier filtering excludes units whose square
// footage fell into a tier gap.
type Filter struct {
	Category string
	SizeTier string
	// AvailableOnly drops unavailable units even in unfiltered views.
	AvailableOnly bool
}

// ParseCategoryFilter maps user-supplied filter text onto a category. A size
// value of "vehicle" also selects the RV bucket. Empty result means "all".
func ParseCategoryFilter(value, sizeValue string) string {
	switch strings.ToLower(value) {
	case "indoor":
		return string(CategoryIndoor)
	case "drive-up", "driveup":
		return string(CategoryDriveUp)
	case "rv", "vehicle", "parking":
		return string(CategoryRV)
	}
	if strings.ToLower(sizeValue) == "vehicle" {
		return string(CategoryRV)
	}
	return ""
}

// ParseSizeFilter maps user-supplied filter text onto a size tier. Empty
// result means "all".
func ParseSizeFilter(value string) string {
	switch strings.ToLower(value) {
	case "small":
		return string(SizeTierSmall)
	case "medium":
		return string(SizeTierMedium)
	case "large":
		return string(SizeTierLarge)
	}
	return ""
}

// Apply returns the units matching the filter, preserving order.
func (f Filter) Apply(units []EnrichedUnit) []EnrichedUnit {
	out := make([]EnrichedUnit, 0, len(units))
	for _, u := range units {
		if f.Category != "" && string(u.Category) != f.Category {
			continue
		}
		if f.SizeTier != "" && string(u.SizeTier) != f.SizeTier {
			continue
		}
		if (f.AvailableOnly || f.Category != "" || f.SizeTier != "") && !u.Available {
			continue
		}
		out = append(out, u)
	}
	return out
}
