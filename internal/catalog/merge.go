package catalog

// MergeUnits reconciles the two normalized lists into one unit per id.
// Move-in records seed the map because they carry the freshest availability
// and pricing; location records fill in descriptive fields and win only where
// the move-in side is absent. Output preserves first-seen order across both
// inputs. Units still missing an image receive the first fallback image.
func MergeUnits(moveIn, location []Unit, fallbackImages []string) []Unit {
	byID := make(map[string]Unit, len(moveIn)+len(location))
	order := make([]string, 0, len(moveIn)+len(location))

	for _, u := range moveIn {
		if _, ok := byID[u.ID]; !ok {
			order = append(order, u.ID)
		}
		byID[u.ID] = u
	}

	for _, detail := range location {
		existing, ok := byID[detail.ID]
		if !ok {
			byID[detail.ID] = detail
			order = append(order, detail.ID)
			continue
		}
		byID[detail.ID] = mergeDetail(existing, detail)
	}

	var defaultImage string
	if len(fallbackImages) > 0 {
		defaultImage = fallbackImages[0]
	}

	merged := make([]Unit, 0, len(order))
	for _, id := range order {
		u := byID[id]
		if u.ImageURL == "" {
			u.ImageURL = defaultImage
		}
		merged = append(merged, u)
	}
	return merged
}

// mergeDetail layers a location record under an existing move-in record.
// Volatile fields keep the move-in value whenever it is present; identifiers
// fill from whichever side has them; pure-descriptive fields come from the
// location side since move-in records never carry them.
func mergeDetail(moveIn, detail Unit) Unit {
	merged := detail
	merged.ID = moveIn.ID

	merged.UnitID = firstNonEmpty(moveIn.UnitID, detail.UnitID)
	merged.RentableObjectID = firstNonEmpty(moveIn.RentableObjectID, detail.RentableObjectID)
	merged.UnitNumber = firstNonEmpty(moveIn.UnitNumber, detail.UnitNumber)

	if moveIn.Rate != nil {
		merged.Rate = moveIn.Rate
	}
	merged.Available = moveIn.Available
	if moveIn.AvailableCount != nil {
		merged.AvailableCount = moveIn.AvailableCount
	}
	merged.Description = firstNonEmpty(moveIn.Description, detail.Description)
	merged.Size = firstNonEmpty(moveIn.Size, detail.Size)
	merged.Type = firstNonEmpty(moveIn.Type, detail.Type)
	merged.OrderGrouping = firstNonEmpty(moveIn.OrderGrouping, detail.OrderGrouping)
	if len(moveIn.SizeDescriptions) > 0 {
		merged.SizeDescriptions = moveIn.SizeDescriptions
	}

	return merged
}
