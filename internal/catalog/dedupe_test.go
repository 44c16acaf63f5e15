package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func enrichedForDedupe(id string, count *int, available bool) EnrichedUnit {
	return EnrichedUnit{
		Unit: Unit{
			ID:             id,
			Size:           "10' x 10'",
			Rate:           floatPtr(95),
			Available:      available,
			AvailableCount: count,
		},
		Category:     CategoryDriveUp,
		DisplaySize:  "10' x 10'",
		AccessLabel:  "Drive-Up",
		ClimateLabel: "No Climate",
	}
}

func TestDedupeSumsCountsAndOrsAvailability(t *testing.T) {
	units := []EnrichedUnit{
		enrichedForDedupe("A", intPtr(2), true),
		enrichedForDedupe("B", intPtr(1), false),
	}

	out := Dedupe(units)
	require.Len(t, out, 1)
	require.Equal(t, 3, *out[0].AvailableCount)
	require.True(t, out[0].Available)
	require.Equal(t, "A", out[0].ID, "first-seen unit survives")
}

func TestDedupeKeepsDistinctSemanticKeys(t *testing.T) {
	a := enrichedForDedupe("A", intPtr(1), true)
	b := enrichedForDedupe("B", intPtr(1), true)
	b.Rate = floatPtr(120)

	out := Dedupe([]EnrichedUnit{a, b})
	require.Len(t, out, 2)
}

func TestDedupeZeroSumKeepsExistingCount(t *testing.T) {
	a := enrichedForDedupe("A", intPtr(0), false)
	b := enrichedForDedupe("B", nil, false)

	out := Dedupe([]EnrichedUnit{a, b})
	require.Len(t, out, 1)
	require.Equal(t, 0, *out[0].AvailableCount)
}

func TestDedupeFillsIdentifiers(t *testing.T) {
	a := enrichedForDedupe("A", intPtr(1), true)
	b := enrichedForDedupe("B", intPtr(1), true)
	b.UnitID = "U-7"
	b.RentableObjectID = "9001"

	out := Dedupe([]EnrichedUnit{a, b})
	require.Len(t, out, 1)
	require.Equal(t, "U-7", out[0].UnitID)
	require.Equal(t, "9001", out[0].RentableObjectID)
}
