package booking

// WSS has accumulated several aliases for the same logical fields and its
// internal lookups read them inconsistently, so every outbound payload gets
// all aliases populated before transmission. The normalizers here are pure;
// validation happens separately so handlers can report all missing fields at
// once.

// Customer identifies the tenant on reservation and move-in payloads.
type Customer struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PostalCode   string `json:"postalCode" validate:"required"`
}

// Payment carries the card fields required only by the finalizing move-in.
type Payment struct {
	NameOnCard      string `json:"nameOnCard" validate:"required"`
	CardNumber      string `json:"cardNumber" validate:"required"`
	ExpirationMonth string `json:"expirationMonth" validate:"required"`
	ExpirationYear  string `json:"expirationYear" validate:"required"`
	CVV             string `json:"cvv" validate:"required"`
	PostalCode      string `json:"postalCode,omitempty"`
}

// UnitAliases holds every field name WSS accepts for unit identity and
// move-in date. Incoming requests may populate any subset; after
// normalization all aliases carry the resolved value.
type UnitAliases struct {
	UnitID             string `json:"unitId,omitempty"`
	UnitIDAlias        string `json:"unitID,omitempty"`
	RentableObjectID   string `json:"rentableObjectId,omitempty"`
	MoveInDate         string `json:"moveInDate,omitempty"`
	ExpectedMoveInDate string `json:"expectedMoveInDate,omitempty"`
}

// ReservationRequest is the no-payment hold payload.
type ReservationRequest struct {
	UnitAliases
	Customer  Customer `json:"customer"`
	Notes     string   `json:"notes,omitempty"`
	PromoCode string   `json:"promoCode,omitempty"`
}

// CostRequest asks for a pre-checkout quote.
type CostRequest struct {
	UnitAliases
	InsuranceID     string `json:"insuranceId,omitempty"`
	TaxExemptNumber string `json:"taxExemptNumber,omitempty"`
	PromoCode       string `json:"promoCode,omitempty"`
}

// MoveInRequest finalizes occupancy and charges payment.
type MoveInRequest struct {
	UnitAliases
	InsuranceID     string   `json:"insuranceId,omitempty"`
	TaxExemptNumber string   `json:"taxExemptNumber,omitempty"`
	PromoCode       string   `json:"promoCode,omitempty"`
	Customer        Customer `json:"customer"`
	Payment         Payment  `json:"payment"`
	AutoPay         *bool    `json:"autoPay,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// resolveAliases applies the unit-id and date aliasing rules in place. The
// unit id resolves from unitID, then unitId, then rentableObjectId; the date
// from expectedMoveInDate, then moveInDate. The resolved values are written
// back into every alias, including rentableObjectId.
func resolveAliases(a *UnitAliases) {
	unitID := firstNonEmpty(a.UnitIDAlias, a.UnitID, a.RentableObjectID)
	a.UnitID = unitID
	a.UnitIDAlias = unitID
	if a.RentableObjectID == "" {
		a.RentableObjectID = unitID
	}

	date := firstNonEmpty(a.ExpectedMoveInDate, a.MoveInDate)
	a.MoveInDate = date
	a.ExpectedMoveInDate = date
}

// NormalizeReservation returns the reservation payload with all aliases
// populated.
func NormalizeReservation(r ReservationRequest) ReservationRequest {
	resolveAliases(&r.UnitAliases)
	return r
}

// NormalizeCost returns the quote request with aliases populated and the
// tax-exempt number defaulted to the non-exempt marker WSS requires.
func NormalizeCost(c CostRequest) CostRequest {
	resolveAliases(&c.UnitAliases)
	if c.TaxExemptNumber == "" {
		c.TaxExemptNumber = "0"
	}
	return c
}

// NormalizeMoveIn returns the move-in payload with aliases populated and the
// tax-exempt default applied.
func NormalizeMoveIn(m MoveInRequest) MoveInRequest {
	resolveAliases(&m.UnitAliases)
	if m.TaxExemptNumber == "" {
		m.TaxExemptNumber = "0"
	}
	return m
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
