package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveInURLTemplateWins(t *testing.T) {
	b := MoveInURLBuilder{
		Template: "https://portal.example.com/checkout/{unitId}",
		BaseURL:  "https://portal.example.com",
	}
	got := b.Build(Unit{ID: "A 1", UnitID: "A 1"})
	require.Equal(t, "https://portal.example.com/checkout/A+1", got)
}

func TestMoveInURLBaseAppendsQuery(t *testing.T) {
	b := MoveInURLBuilder{BaseURL: "https://portal.example.com/movein/"}
	got := b.Build(Unit{ID: "A", UnitID: "A", RentableObjectID: "9001"})
	require.True(t, strings.HasPrefix(got, "https://portal.example.com/movein?"), got)
	require.Contains(t, got, "unitID=A")
	require.Contains(t, got, "rentableObjectId=9001")
	require.Contains(t, got, "mode=move-in")
}

func TestMoveInURLBaseWithExistingQueryUsesAmpersand(t *testing.T) {
	b := MoveInURLBuilder{BaseURL: "https://portal.example.com/movein?site=1"}
	got := b.Build(Unit{ID: "A"})
	require.Contains(t, got, "?site=1&")
}

func TestMoveInURLFallsBackToOnSiteForm(t *testing.T) {
	var b MoveInURLBuilder
	got := b.Build(Unit{ID: "A"})
	require.True(t, strings.HasPrefix(got, "/rent/A?"), got)
}

func TestMoveInURLUnitParamPriority(t *testing.T) {
	b := MoveInURLBuilder{BaseURL: "https://portal.example.com"}
	got := b.Build(Unit{ID: "fallback", RentableObjectID: "9001"})
	require.Contains(t, got, "unitID=9001")
}
