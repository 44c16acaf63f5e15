package catalog

import (
	"context"

	pkgerrors "github.com/storagefront/wss-backend/pkg/errors"
	"github.com/storagefront/wss-backend/pkg/logger"
	"github.com/storagefront/wss-backend/pkg/wss"
)

// InventoryFetcher is the slice of the WSS client the catalog needs.
type InventoryFetcher interface {
	FetchInventory(ctx context.Context) (*wss.InventorySnapshot, error)
}

// Service runs the full catalog pipeline: fetch, normalize per source, merge
// by identity, enrich, and semantic-key dedupe. Results are derived fresh on
// every call; there is no cache.
type Service struct {
	client InventoryFetcher
	urls   MoveInURLBuilder
	logger *logger.Logger
}

func NewService(client InventoryFetcher, urls MoveInURLBuilder, logg *logger.Logger) *Service {
	return &Service{client: client, urls: urls, logger: logg}
}

// GetAvailableUnits returns the deduplicated, enriched unit catalog. It
// tolerates one of the two unit-bearing sources failing; when both fail, or
// both succeed but return nothing usable, the result is a NoInventory error.
func (s *Service) GetAvailableUnits(ctx context.Context) ([]EnrichedUnit, error) {
	snap, err := s.client.FetchInventory(ctx)
	if err != nil {
		return nil, err
	}

	var locationUnits, moveInUnits []Unit
	if snap.LocationErr == nil && snap.Location != nil && snap.Location.Location != nil {
		locationUnits = NormalizeLocationUnits(snap.Location.Location.Units)
	}
	if snap.MoveInErr == nil && snap.MoveIn != nil {
		moveInUnits = NormalizeMoveInUnits(snap.MoveIn.AvailableUnits)
	}

	if len(locationUnits) == 0 && len(moveInUnits) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNoInventory, "no units returned from wss")
	}

	if s.logger != nil {
		s.logger.Info(s.logger.WithFields(ctx, map[string]any{
			"movein_units":   len(moveInUnits),
			"location_units": len(locationUnits),
			"images":         len(snap.ImageLinks),
		}), "inventory sources normalized")
	}

	merged := MergeUnits(moveInUnits, locationUnits, snap.ImageLinks)

	enriched := make([]EnrichedUnit, 0, len(merged))
	for _, u := range merged {
		e := Enrich(u)
		e.MoveInURL = s.urls.Build(u)
		enriched = append(enriched, e)
	}

	return Dedupe(enriched), nil
}
