package wss

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString absorbs WSS identifier fields that arrive as either JSON strings
// or bare numbers depending on the endpoint.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier is neither string nor number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// LocationResponse is the catalog-level payload from GET /location/{id}.
// Units here carry the descriptive feature metadata but weaker availability
// signals than the move-in endpoint.
type LocationResponse struct {
	Success  *bool         `json:"success,omitempty"`
	Location *LocationBody `json:"location,omitempty"`
}

type LocationBody struct {
	Units []LocationUnit `json:"units,omitempty"`
}

type LocationUnit struct {
	UnitID           FlexString     `json:"unitId,omitempty"`
	RentableObjectID FlexString     `json:"rentableObjectId,omitempty"`
	UnitSize         string         `json:"unitSize,omitempty"`
	Length           *float64       `json:"length,omitempty"`
	Width            *float64       `json:"width,omitempty"`
	Height           *float64       `json:"height,omitempty"`
	Monthly          *float64       `json:"monthly,omitempty"`
	VacantUnits      *int           `json:"vacantUnits,omitempty"`
	BonusComments    string         `json:"bonusComments,omitempty"`
	SizeDescriptions []string       `json:"sizeDescriptionsField,omitempty"`
	AccessType       string         `json:"accessType,omitempty"`
	Access           string         `json:"access,omitempty"`
	IsInside         *bool          `json:"isInside,omitempty"`
	IsClimate        *bool          `json:"isClimate,omitempty"`
	OrderGrouping    string         `json:"orderGrouping,omitempty"`
	UnitFeature      *UnitFeature   `json:"unitFeature,omitempty"`
	UnitTypeImage    *UnitTypeImage `json:"unitTypeImage,omitempty"`
}

type UnitFeature struct {
	Access    string `json:"access,omitempty"`
	Climate   string `json:"climate,omitempty"`
	Doors     string `json:"doors,omitempty"`
	Elevation string `json:"elevation,omitempty"`
	Floor     string `json:"floor,omitempty"`
	Product   string `json:"product,omitempty"`
}

type UnitTypeImage struct {
	ImageExists *bool  `json:"imageExists,omitempty"`
	MainImage   string `json:"mainImage,omitempty"`
	ThumbImage  string `json:"thumbImage,omitempty"`
}

// MoveInResponse is the live-availability payload from GET /movein/{id}.
type MoveInResponse struct {
	Success        *bool        `json:"success,omitempty"`
	AvailableUnits []MoveInUnit `json:"availableUnits,omitempty"`
}

type MoveInUnit struct {
	RentableObjectID FlexString      `json:"rentableObjectId,omitempty"`
	UnitSize         string          `json:"unitSize,omitempty"`
	Length           *float64        `json:"length,omitempty"`
	Width            *float64        `json:"width,omitempty"`
	Height           *float64        `json:"height,omitempty"`
	Monthly          *float64        `json:"monthly,omitempty"`
	BonusComments    string          `json:"bonusComments,omitempty"`
	SizeDescriptions []string        `json:"sizeDescriptionsField,omitempty"`
	VacantUnits      *int            `json:"vacantUnits,omitempty"`
	OrderGrouping    string          `json:"orderGrouping,omitempty"`
	Units            []MoveInUnitRef `json:"units,omitempty"`
}

type MoveInUnitRef struct {
	UnitID     FlexString `json:"unitId,omitempty"`
	UnitNumber FlexString `json:"unitNumber,omitempty"`
}

type ImagesResponse struct {
	Success    *bool    `json:"success,omitempty"`
	ImageLinks []string `json:"imageLinks,omitempty"`
}

// CostResponse is the loosely-typed quote payload from GET /movein/{id}/cost.
// Totals may be present directly or only derivable from the breakdown.
type CostResponse struct {
	Success       *bool          `json:"success,omitempty"`
	Total         *float64       `json:"total,omitempty"`
	TotalDue      *float64       `json:"totalDue,omitempty"`
	Subtotal      *float64       `json:"subtotal,omitempty"`
	TotalCost     *float64       `json:"totalCost,omitempty"`
	TotalTax      *float64       `json:"totalTax,omitempty"`
	LineItems     []CostLineItem `json:"lineItems,omitempty"`
	CostBreakDown *CostBreakDown `json:"costBreakDown,omitempty"`
}

type CostLineItem struct {
	Description string   `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
}

type CostBreakDown struct {
	DiscountedRent           *float64 `json:"discountedRent,omitempty"`
	DiscountedTaxAmount      *float64 `json:"discountedTaxAmount,omitempty"`
	Fees                     *float64 `json:"fees,omitempty"`
	FeesTax                  *float64 `json:"feesTax,omitempty"`
	Insurance                *float64 `json:"insurance,omitempty"`
	InsuranceTax             *float64 `json:"insuranceTax,omitempty"`
	MoveInDeposit            *float64 `json:"moveInDeposit,omitempty"`
	MoveInDepositTax         *float64 `json:"moveInDepositTax,omitempty"`
	Rent                     *float64 `json:"rent,omitempty"`
	RentTax                  *float64 `json:"rentTax,omitempty"`
	ReservationDepositCredit *float64 `json:"reservationDepositCredit,omitempty"`
	Retail                   *float64 `json:"retail,omitempty"`
	RetailTax                *float64 `json:"retailTax,omitempty"`
}

// CostQuery carries the fully-aliased query parameters for the cost endpoint.
// Callers are expected to have run the payload through booking's normalizer
// first; the client does not re-derive aliases.
type CostQuery struct {
	UnitID             string
	UnitIDAlias        string
	RentableObjectID   string
	InsuranceID        string
	TaxExemptNumber    string
	MoveInDate         string
	ExpectedMoveInDate string
	PromoCode          string
}
