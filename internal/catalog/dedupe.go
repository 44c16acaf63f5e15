package catalog

import (
	"strconv"
	"strings"
)

// Dedupe collapses enriched units that represent the same rentable
// configuration. WSS can list one physical configuration several times across
// its two sources with superficial differences, so after enrichment units are
// merged again by semantic key: category, display size, access label, climate
// label, and rate. Colliding units sum their available counts and OR their
// availability. First-seen order is preserved.
func Dedupe(units []EnrichedUnit) []EnrichedUnit {
	merged := make(map[string]EnrichedUnit, len(units))
	order := make([]string, 0, len(units))

	for _, u := range units {
		key := semanticKey(u)
		existing, ok := merged[key]
		if !ok {
			merged[key] = u
			order = append(order, key)
			continue
		}

		sum := intOrZero(existing.AvailableCount) + intOrZero(u.AvailableCount)
		if sum > 0 {
			existing.AvailableCount = &sum
		}
		existing.Available = existing.Available || u.Available
		if existing.Rate == nil {
			existing.Rate = u.Rate
		}
		existing.UnitID = firstNonEmpty(existing.UnitID, u.UnitID)
		existing.RentableObjectID = firstNonEmpty(existing.RentableObjectID, u.RentableObjectID)
		merged[key] = existing
	}

	out := make([]EnrichedUnit, 0, len(order))
	for _, key := range order {
		out = append(out, merged[key])
	}
	return out
}

func semanticKey(u EnrichedUnit) string {
	rate := ""
	if u.Rate != nil {
		rate = strconv.FormatFloat(*u.Rate, 'f', -1, 64)
	}
	return strings.Join([]string{
		string(u.Category),
		firstNonEmpty(u.DisplaySize, u.Size),
		firstNonEmpty(u.AccessLabel, u.Access),
		u.ClimateLabel,
		rate,
	}, "|")
}
