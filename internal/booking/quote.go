package booking

import (
	"github.com/shopspring/decimal"

	pkgerrors "github.com/storagefront/wss-backend/pkg/errors"
	"github.com/storagefront/wss-backend/pkg/wss"
)

// Quote is the resolved pricing summary for a unit and move-in date.
// Upstream totals win when present; otherwise the amounts are computed from
// the cost breakdown. Money math runs on decimals to avoid float drift when
// summing components.
type Quote struct {
	Subtotal  float64         `json:"subtotal"`
	Tax       float64         `json:"tax"`
	Total     float64         `json:"total"`
	LineItems []QuoteLineItem `json:"lineItems,omitempty"`
}

type QuoteLineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// BuildQuote resolves a quote from the loosely-typed WSS cost response.
// A response with no totals, no line items, and no numeric breakdown is a
// NoQuoteData error so callers can distinguish "pricing unavailable" from a
// transport failure.
func BuildQuote(resp *wss.CostResponse) (*Quote, error) {
	if resp == nil || !hasQuoteData(resp) {
		return nil, pkgerrors.New(pkgerrors.CodeNoQuoteData, "wss did not return pricing details for this unit")
	}

	subtotal := breakdownSubtotal(resp.CostBreakDown)
	if resp.Subtotal != nil {
		subtotal = decimal.NewFromFloat(*resp.Subtotal)
	}

	tax := breakdownTax(resp.CostBreakDown)
	if resp.TotalTax != nil {
		tax = decimal.NewFromFloat(*resp.TotalTax)
	}

	var total decimal.Decimal
	switch {
	case resp.TotalDue != nil:
		total = decimal.NewFromFloat(*resp.TotalDue)
	case resp.Total != nil:
		total = decimal.NewFromFloat(*resp.Total)
	case resp.TotalCost != nil:
		total = decimal.NewFromFloat(*resp.TotalCost)
	default:
		total = subtotal.Add(tax)
	}

	q := &Quote{
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
	for _, item := range resp.LineItems {
		if item.Amount == nil {
			continue
		}
		q.LineItems = append(q.LineItems, QuoteLineItem{
			Description: item.Description,
			Amount:      *item.Amount,
		})
	}
	return q, nil
}

func hasQuoteData(resp *wss.CostResponse) bool {
	for _, v := range []*float64{resp.TotalDue, resp.Total, resp.Subtotal, resp.TotalCost} {
		if v != nil {
			return true
		}
	}
	if len(resp.LineItems) > 0 {
		return true
	}
	return breakdownHasNumbers(resp.CostBreakDown)
}

func breakdownHasNumbers(b *wss.CostBreakDown) bool {
	if b == nil {
		return false
	}
	for _, v := range []*float64{
		b.DiscountedRent, b.DiscountedTaxAmount, b.Fees, b.FeesTax,
		b.Insurance, b.InsuranceTax, b.MoveInDeposit, b.MoveInDepositTax,
		b.Rent, b.RentTax, b.ReservationDepositCredit, b.Retail, b.RetailTax,
	} {
		if v != nil {
			return true
		}
	}
	return false
}

// breakdownSubtotal sums the chargeable components: rent, fees, insurance,
// move-in deposit, and retail.
func breakdownSubtotal(b *wss.CostBreakDown) decimal.Decimal {
	if b == nil {
		return decimal.Zero
	}
	return sumAmounts(b.Rent, b.Fees, b.Insurance, b.MoveInDeposit, b.Retail)
}

// breakdownTax sums the per-component tax fields and subtracts any
// discounted-tax credit.
func breakdownTax(b *wss.CostBreakDown) decimal.Decimal {
	if b == nil {
		return decimal.Zero
	}
	tax := sumAmounts(b.RentTax, b.FeesTax, b.InsuranceTax, b.MoveInDepositTax, b.RetailTax)
	if b.DiscountedTaxAmount != nil {
		tax = tax.Sub(decimal.NewFromFloat(*b.DiscountedTaxAmount))
	}
	return tax
}

func sumAmounts(amounts ...*float64) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		if a != nil {
			total = total.Add(decimal.NewFromFloat(*a))
		}
	}
	return total
}
