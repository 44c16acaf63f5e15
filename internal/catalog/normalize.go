package catalog

import (
	"fmt"
	"strconv"

	"github.com/storagefront/wss-backend/pkg/wss"
)

// NormalizeMoveInUnits maps raw move-in availability records into canonical
// units. Identity resolves from the nested unit reference first, then the
// rentable-object id, then the unit number; records with none are dropped.
func NormalizeMoveInUnits(raw []wss.MoveInUnit) []Unit {
	units := make([]Unit, 0, len(raw))
	for _, r := range raw {
		var unitID, unitNumber string
		if len(r.Units) > 0 {
			unitID = r.Units[0].UnitID.String()
			unitNumber = r.Units[0].UnitNumber.String()
		}
		rentableObjectID := r.RentableObjectID.String()
		if unitID == "" {
			unitID = rentableObjectID
		}

		id := firstNonEmpty(unitID, rentableObjectID, unitNumber)
		if id == "" {
			continue
		}

		units = append(units, Unit{
			ID:               id,
			UnitID:           unitID,
			RentableObjectID: rentableObjectID,
			UnitNumber:       unitNumber,
			Size:             firstNonEmpty(r.UnitSize, deriveSizeFromDimensions(r.Length, r.Width)),
			Rate:             r.Monthly,
			Description:      r.BonusComments,
			Available:        intOrZero(r.VacantUnits) > 0,
			AvailableCount:   r.VacantUnits,
			SizeDescriptions: r.SizeDescriptions,
			OrderGrouping:    r.OrderGrouping,
		})
	}
	return units
}

// NormalizeLocationUnits maps raw location-catalog records into canonical
// units. These records carry the descriptive feature metadata; identity is
// unit id first, then rentable-object id.
func NormalizeLocationUnits(raw []wss.LocationUnit) []Unit {
	units := make([]Unit, 0, len(raw))
	for _, r := range raw {
		unitID := r.UnitID.String()
		rentableObjectID := r.RentableObjectID.String()
		id := firstNonEmpty(unitID, rentableObjectID)
		if id == "" {
			continue
		}

		var access, climate, doors, floor, elevation, unitType string
		if r.UnitFeature != nil {
			access = r.UnitFeature.Access
			climate = r.UnitFeature.Climate
			doors = r.UnitFeature.Doors
			floor = r.UnitFeature.Floor
			elevation = r.UnitFeature.Elevation
			unitType = r.UnitFeature.Product
		}
		access = firstNonEmpty(access, r.AccessType, r.Access)

		var imageURL string
		if r.UnitTypeImage != nil {
			imageURL = firstNonEmpty(r.UnitTypeImage.MainImage, r.UnitTypeImage.ThumbImage)
		}

		units = append(units, Unit{
			ID:               id,
			UnitID:           unitID,
			RentableObjectID: rentableObjectID,
			Size:             firstNonEmpty(r.UnitSize, deriveSizeFromDimensions(r.Length, r.Width)),
			Rate:             r.Monthly,
			Available:        intOrZero(r.VacantUnits) > 0,
			AvailableCount:   r.VacantUnits,
			Description:      r.BonusComments,
			Type:             unitType,
			Access:           access,
			IsInside:         r.IsInside,
			IsClimate:        r.IsClimate,
			Climate:          climate,
			Doors:            doors,
			Floor:            floor,
			Elevation:        elevation,
			SizeDescriptions: r.SizeDescriptions,
			ImageURL:         imageURL,
			OrderGrouping:    r.OrderGrouping,
		})
	}
	return units
}

// deriveSizeFromDimensions renders "{length}' x {width}'" when both raw
// dimensions are present and non-zero.
func deriveSizeFromDimensions(length, width *float64) string {
	if length == nil || width == nil || *length == 0 || *width == 0 {
		return ""
	}
	return fmt.Sprintf("%s' x %s'", formatDimension(*length), formatDimension(*width))
}

func formatDimension(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
