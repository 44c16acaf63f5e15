package controllers

import (
	"context"
	"net/http"

	"github.com/storagefront/wss-backend/api/responses"
	"github.com/storagefront/wss-backend/internal/catalog"
	pkgerrors "github.com/storagefront/wss-backend/pkg/errors"
	"github.com/storagefront/wss-backend/pkg/logger"
)

// UnitCatalog is the slice of the catalog service the units endpoints use.
type UnitCatalog interface {
	GetAvailableUnits(ctx context.Context) ([]catalog.EnrichedUnit, error)
}

// ListUnits returns the enriched unit catalog. Optional query parameters
// narrow the result: type (indoor, drive-up, rv), size (small, medium,
// large), and available=true.
func ListUnits(svc UnitCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		units, err := svc.GetAvailableUnits(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := r.URL.Query()
		filter := catalog.Filter{
			Category:      catalog.ParseCategoryFilter(query.Get("type"), query.Get("size")),
			SizeTier:      catalog.ParseSizeFilter(query.Get("size")),
			AvailableOnly: query.Get("available") == "true",
		}
		filtered := filter.Apply(units)

		responses.WriteSuccess(w, map[string]any{
			"units": filtered,
			"total": len(filtered),
		})
	}
}
