package controllers

import (
	"context"
	"net/http"

	"github.com/storagefront/wss-backend/api/responses"
	"github.com/storagefront/wss-backend/api/validators"
	"github.com/storagefront/wss-backend/internal/booking"
	pkgerrors "github.com/storagefront/wss-backend/pkg/errors"
	"github.com/storagefront/wss-backend/pkg/logger"
)

// BookingService is the slice of the booking service the write endpoints use.
type BookingService interface {
	CreateReservation(ctx context.Context, req booking.ReservationRequest) (map[string]any, error)
	GetQuote(ctx context.Context, req booking.CostRequest) (*booking.Quote, error)
	CreateMoveIn(ctx context.Context, req booking.MoveInRequest) (map[string]any, error)
}

// CreateReservation places a no-payment hold with WSS.
func CreateReservation(svc BookingService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		var payload booking.ReservationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateReservation(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// MoveInCost returns the pre-checkout quote for a unit and date.
func MoveInCost(svc BookingService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		var payload booking.CostRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.GetQuote(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}

// CreateMoveIn submits the paid occupancy transaction.
func CreateMoveIn(svc BookingService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		var payload booking.MoveInRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateMoveIn(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
