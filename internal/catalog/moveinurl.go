package catalog

import (
	"net/url"
	"strings"
)

// MoveInURLBuilder renders the per-unit checkout link. A configured template
// takes priority, then a configured portal base URL with identifying query
// parameters, then the on-site reservation form path.
type MoveInURLBuilder struct {
	// Template is a URL containing a {unitId} placeholder.
	Template string
	// BaseURL is the hosted move-in portal; unit identity is appended as
	// query parameters.
	BaseURL string
}

func (b MoveInURLBuilder) Build(u Unit) string {
	unitParam := firstNonEmpty(u.UnitID, u.RentableObjectID, u.ID)

	query := url.Values{}
	if unitParam != "" {
		query.Set("unitID", unitParam)
	}
	if u.RentableObjectID != "" {
		query.Set("rentableObjectId", u.RentableObjectID)
	}
	query.Set("mode", "move-in")

	if b.Template != "" {
		return strings.ReplaceAll(b.Template, "{unitId}", url.QueryEscape(unitParam))
	}

	if b.BaseURL != "" {
		trimmed := strings.TrimRight(b.BaseURL, "/")
		separator := "?"
		if strings.Contains(trimmed, "?") {
			separator = "&"
		}
		return trimmed + separator + query.Encode()
	}

	return "/rent/" + url.PathEscape(u.ID) + "?" + query.Encode()
}
