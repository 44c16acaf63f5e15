package booking

import (
	"testing"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/storagefront/wss-backend/pkg/errors"
	"github.com/storagefront/wss-backend/pkg/wss"
)

func floatPtr(v float64) *float64 { return &v }

func TestQuoteFallbackComputation(t *testing.T) {
	q, err := BuildQuote(&wss.CostResponse{
		CostBreakDown: &wss.CostBreakDown{
			Rent:    floatPtr(100),
			Fees:    floatPtr(10),
			RentTax: floatPtr(8),
		},
	})
	require.NoError(t, err)
	require.Equal(t, float64(110), q.Subtotal)
	require.Equal(t, float64(8), q.Tax)
	require.Equal(t, float64(118), q.Total)
}

func TestQuoteExplicitTotalsWin(t *testing.T) {
	q, err := BuildQuote(&wss.CostResponse{
		Subtotal: floatPtr(90),
		TotalTax: floatPtr(5),
		TotalDue: floatPtr(95),
		CostBreakDown: &wss.CostBreakDown{
			Rent:    floatPtr(100),
			RentTax: floatPtr(8),
		},
	})
	require.NoError(t, err)
	require.Equal(t, float64(90), q.Subtotal)
	require.Equal(t, float64(5), q.Tax)
	require.Equal(t, float64(95), q.Total)
}

func TestQuoteTotalResolutionOrder(t *testing.T) {
	q, err := BuildQuote(&wss.CostResponse{
		Total:     floatPtr(118),
		TotalCost: floatPtr(999),
	})
	require.NoError(t, err)
	require.Equal(t, float64(118), q.Total)

	costOnly, err := BuildQuote(&wss.CostResponse{TotalCost: floatPtr(50)})
	require.NoError(t, err)
	require.Equal(t, float64(50), costOnly.Total)
}

func TestQuoteDiscountedTaxCredit(t *testing.T) {
	q, err := BuildQuote(&wss.CostResponse{
		CostBreakDown: &wss.CostBreakDown{
			Rent:                floatPtr(100),
			RentTax:             floatPtr(10),
			FeesTax:             floatPtr(2),
			DiscountedTaxAmount: floatPtr(3),
		},
	})
	require.NoError(t, err)
	require.Equal(t, float64(9), q.Tax)
}

func TestQuoteDecimalSumAvoidsFloatDrift(t *testing.T) {
	q, err := BuildQuote(&wss.CostResponse{
		CostBreakDown: &wss.CostBreakDown{
			Rent:      floatPtr(0.1),
			Fees:      floatPtr(0.2),
			Insurance: floatPtr(0.3),
		},
	})
	require.NoError(t, err)
	require.Equal(t, 0.6, q.Subtotal)
}

func TestQuoteLineItemsPassThrough(t *testing.T) {
	q, err := BuildQuote(&wss.CostResponse{
		TotalDue: floatPtr(118),
		LineItems: []wss.CostLineItem{
			{Description: "Rent", Amount: floatPtr(100)},
			{Description: "skipped"},
		},
	})
	require.NoError(t, err)
	require.Len(t, q.LineItems, 1)
	require.Equal(t, "Rent", q.LineItems[0].Description)
}

func TestQuoteNoDataIsTypedError(t *testing.T) {
	for _, resp := range []*wss.CostResponse{
		nil,
		{},
		{CostBreakDown: &wss.CostBreakDown{}},
	} {
		_, err := BuildQuote(resp)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		require.Equal(t, pkgerrors.CodeNoQuoteData, typed.Code())
	}
}
