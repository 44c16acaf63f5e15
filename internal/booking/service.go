package booking

import (
	"context"

	"github.com/storagefront/wss-backend/pkg/logger"
	"github.com/storagefront/wss-backend/pkg/wss"
)

// Dispatcher is the slice of the WSS client the booking flows need.
type Dispatcher interface {
	CreateReservation(ctx context.Context, payload any) (map[string]any, error)
	GetMoveInCost(ctx context.Context, q wss.CostQuery) (*wss.CostResponse, error)
	CreateMoveIn(ctx context.Context, payload any) (map[string]any, error)
}

// Service normalizes, validates, and dispatches booking payloads. Concurrent
// submissions for the same unit are not locked here; WSS is the sole arbiter
// of double-booking.
type Service struct {
	client Dispatcher
	logger *logger.Logger
}

func NewService(client Dispatcher, logg *logger.Logger) *Service {
	return &Service{client: client, logger: logg}
}

// CreateReservation places a no-payment hold. The upstream response is passed
// through untouched.
func (s *Service) CreateReservation(ctx context.Context, req ReservationRequest) (map[string]any, error) {
	normalized := NormalizeReservation(req)
	if err := ValidateReservation(normalized); err != nil {
		return nil, err
	}

	s.logSubmission(ctx, "reservation", normalized.UnitAliases)
	return s.client.CreateReservation(ctx, normalized)
}

// GetQuote fetches the pre-checkout cost and resolves it into a Quote.
func (s *Service) GetQuote(ctx context.Context, req CostRequest) (*Quote, error) {
	normalized := NormalizeCost(req)
	if err := ValidateCost(normalized); err != nil {
		return nil, err
	}

	resp, err := s.client.GetMoveInCost(ctx, wss.CostQuery{
		UnitID:             normalized.UnitID,
		UnitIDAlias:        normalized.UnitIDAlias,
		RentableObjectID:   normalized.RentableObjectID,
		InsuranceID:        normalized.InsuranceID,
		TaxExemptNumber:    normalized.TaxExemptNumber,
		MoveInDate:         normalized.MoveInDate,
		ExpectedMoveInDate: normalized.ExpectedMoveInDate,
		PromoCode:          normalized.PromoCode,
	})
	if err != nil {
		return nil, err
	}
	return BuildQuote(resp)
}

// CreateMoveIn submits the paid, finalizing occupancy transaction.
func (s *Service) CreateMoveIn(ctx context.Context, req MoveInRequest) (map[string]any, error) {
	normalized := NormalizeMoveIn(req)
	if err := ValidateMoveIn(normalized); err != nil {
		return nil, err
	}

	s.logSubmission(ctx, "movein", normalized.UnitAliases)
	return s.client.CreateMoveIn(ctx, normalized)
}

func (s *Service) logSubmission(ctx context.Context, kind string, a UnitAliases) {
	if s.logger == nil {
		return
	}
	s.logger.Info(s.logger.WithFields(ctx, map[string]any{
		"kind":         kind,
		"unit_id":      a.UnitID,
		"move_in_date": a.MoveInDate,
	}), "dispatching booking submission")
}
