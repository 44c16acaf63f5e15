package booking

import (
	pkgerrors "github.com/storagefront/wss-backend/pkg/errors"
)

// Validation runs against the already-normalized payload so the identity and
// date checks only need to look at one alias. Failures never reach WSS; the
// full missing-field list is attached as error details.

func validateCustomer(c Customer, missing []string) []string {
	checks := []struct {
		field string
		value string
	}{
		{"customer.firstName", c.FirstName},
		{"customer.lastName", c.LastName},
		{"customer.email", c.Email},
		{"customer.phone", c.Phone},
		{"customer.addressLine1", c.AddressLine1},
		{"customer.city", c.City},
		{"customer.state", c.State},
		{"customer.postalCode", c.PostalCode},
	}
	for _, check := range checks {
		if check.value == "" {
			missing = append(missing, check.field)
		}
	}
	return missing
}

func validatePayment(p Payment, missing []string) []string {
	checks := []struct {
		field string
		value string
	}{
		{"payment.nameOnCard", p.NameOnCard},
		{"payment.cardNumber", p.CardNumber},
		{"payment.expirationMonth", p.ExpirationMonth},
		{"payment.expirationYear", p.ExpirationYear},
		{"payment.cvv", p.CVV},
	}
	for _, check := range checks {
		if check.value == "" {
			missing = append(missing, check.field)
		}
	}
	return missing
}

func validateAliases(a UnitAliases, missing []string) []string {
	if a.UnitID == "" {
		missing = append(missing, "unitId")
	}
	if a.MoveInDate == "" {
		missing = append(missing, "moveInDate")
	}
	return missing
}

func missingFieldsError(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "required fields are missing").
		WithDetails(map[string]any{"missing": missing})
}

// ValidateReservation checks unit identity, move-in date, and the customer
// record.
func ValidateReservation(r ReservationRequest) error {
	missing := validateAliases(r.UnitAliases, nil)
	missing = validateCustomer(r.Customer, missing)
	return missingFieldsError(missing)
}

// ValidateCost checks unit identity and move-in date only.
func ValidateCost(c CostRequest) error {
	return missingFieldsError(validateAliases(c.UnitAliases, nil))
}

// ValidateMoveIn checks everything a reservation needs plus the full payment
// card fields.
func ValidateMoveIn(m MoveInRequest) error {
	missing := validateAliases(m.UnitAliases, nil)
	missing = validateCustomer(m.Customer, missing)
	missing = validatePayment(m.Payment, missing)
	return missingFieldsError(missing)
}
