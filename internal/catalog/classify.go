package catalog

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// The classifier infers category, size tier, and display text from free-text
// hints because WSS exposes no clean taxonomy. It is a pure function over the
// merged unit; heuristics here are the most likely piece to need tuning as
// upstream data drifts, so keep them isolated from transport and handlers.

var (
	rvRe              = regexp.MustCompile(`\brv\b|vehicle|parking|boat|trailer`)
	noClimateRe       = regexp.MustCompile(`(?i)no\s*climate`)
	noClimatePrefixRe = regexp.MustCompile(`(?i)^no\s*climate`)
	noElectricRe      = regexp.MustCompile(`no electricity|no electric`)
	electricRe        = regexp.MustCompile(`electric`)
	firstFloorRe      = regexp.MustCompile(`1st\s*floor`)
	streetLevelRe     = regexp.MustCompile(`street\s*level`)
	insideLevelRe     = regexp.MustCompile(`inside\s*level`)
	outsideLevelRe    = regexp.MustCompile(`outside\s*level`)
	numberRe          = regexp.MustCompile(`\d+(\.\d+)?`)
	stripRe           = regexp.MustCompile(`\s|-`)
)

// Enrich classifies one merged unit. Category resolution is ordered: RV and
// vehicle keywords dominate everything, then drive-up access, then indoor
// signals; anything left defaults to drive-up rather than a generic outdoor
// bucket.
func Enrich(u Unit) EnrichedUnit {
	descriptions := strings.Join(u.SizeDescriptions, " ")
	text := strings.ToLower(strings.Join([]string{
		u.Type, u.Description, u.Name, u.Access, u.Climate, descriptions, u.OrderGrouping,
	}, " "))
	accessNormalized := strings.ToLower(stripRe.ReplaceAllString(
		u.Access+" "+u.OrderGrouping+" "+descriptions, ""))

	isRV := rvRe.MatchString(text)
	isDriveUp := strings.Contains(accessNormalized, "drive") ||
		strings.Contains(accessNormalized, "driveup") ||
		strings.Contains(accessNormalized, "drivein")
	isIndoorAccess := strings.Contains(accessNormalized, "hall") ||
		strings.Contains(accessNormalized, "inside") ||
		strings.Contains(accessNormalized, "interior")
	hasInteriorWord := strings.Contains(text, "interior")

	climateFlag := deriveClimateFlag(u)
	isIndoor := isIndoorAccess || hasInteriorWord ||
		(u.IsInside != nil && *u.IsInside) ||
		(!isDriveUp && !isRV && climateFlag != nil && *climateFlag)

	category := CategoryDriveUp
	switch {
	case isRV:
		category = CategoryRV
	case isDriveUp:
		category = CategoryDriveUp
	case isIndoor || hasInteriorWord || isIndoorAccess:
		category = CategoryIndoor
	}

	sqft := parseSqft(u.Size)
	sizeTier := deriveSizeTier(sqft, isRV)

	accessLabel := u.Access
	if accessLabel == "" {
		switch {
		case isDriveUp:
			accessLabel = "Drive-Up"
		case isIndoor:
			accessLabel = "Indoor"
		case isRV:
			accessLabel = "RV / Vehicle"
		default:
			accessLabel = "Outdoor"
		}
	}

	climateLabel := deriveClimateLabel(u, climateFlag)
	climateOn := false
	if climateLabel != "" {
		climateOn = !noClimatePrefixRe.MatchString(climateLabel)
	} else if climateFlag != nil {
		climateOn = *climateFlag
	}

	doorLabel := ""
	if u.Doors != "" {
		doorLabel = formatLabel(u.Doors)
	}
	derivedDoor := inferDoor(u.SizeDescriptions)
	floorLabel := firstNonEmpty(u.Floor, u.Elevation, inferFloor(u.SizeDescriptions))
	electricityLabel := inferElectricity(text)
	useCase := deriveUseCase(sqft)
	displaySize := u.Size

	categoryLabel := "Drive-Up"
	switch category {
	case CategoryIndoor:
		categoryLabel = "Indoor"
	case CategoryRV:
		categoryLabel = "Large Vehicle"
	}

	features := make([]string, 0, 5)
	for _, f := range []string{accessLabel, floorLabel, climateLabel, firstNonEmpty(doorLabel, derivedDoor), electricityLabel} {
		if f != "" {
			features = append(features, f)
		}
	}

	title := categoryLabel + " Unit"
	if sizeTier != "" {
		title = capitalize(string(sizeTier)) + " " + title
	}
	if displaySize != "" {
		title += fmt.Sprintf(" (%s)", displaySize)
	}

	displayDescription := "Drive-up access for fast loading and unloading."
	switch {
	case category == CategoryIndoor && climateOn:
		displayDescription = "Climate-controlled indoor storage for items sensitive to temperature."
	case category == CategoryIndoor:
		displayDescription = "Indoor storage with added protection from the elements."
	case category == CategoryRV:
		displayDescription = "Vehicle-sized space."
	}

	return EnrichedUnit{
		Unit:               u,
		IsIndoor:           isIndoor,
		IsRV:               isRV,
		Category:           category,
		CategoryLabel:      categoryLabel,
		SizeTier:           sizeTier,
		Sqft:               sqft,
		Features:           features,
		AccessLabel:        accessLabel,
		ClimateLabel:       climateLabel,
		ClimateOn:          climateOn,
		DoorLabel:          doorLabel,
		FloorLabel:         floorLabel,
		ElectricityLabel:   electricityLabel,
		UseCase:            useCase,
		DisplayTitle:       title,
		DisplayDescription: displayDescription,
		DisplaySize:        displaySize,
	}
}

// deriveClimateFlag reads the explicit boolean first and only falls back to
// interpreting the free-text descriptor. Absence of both stays undefined; no
// value is assumed.
func deriveClimateFlag(u Unit) *bool {
	if u.IsClimate != nil {
		return u.IsClimate
	}
	if u.Climate != "" {
		v := !noClimateRe.MatchString(u.Climate)
		return &v
	}
	return nil
}

func deriveClimateLabel(u Unit, climateFlag *bool) string {
	if u.Climate != "" {
		return formatLabel(u.Climate)
	}
	if u.IsClimate != nil {
		if *u.IsClimate {
			return "Climate"
		}
		return "No Climate"
	}
	if climateFlag != nil && !*climateFlag {
		return "No Climate"
	}
	return ""
}

// parseSqft reads the first two numeric tokens out of the size string as
// width and length and returns the rounded product.
func parseSqft(size string) *int {
	if size == "" {
		return nil
	}
	numbers := numberRe.FindAllString(size, 2)
	if len(numbers) < 2 {
		return nil
	}
	width, err := strconv.ParseFloat(numbers[0], 64)
	if err != nil {
		return nil
	}
	length, err := strconv.ParseFloat(numbers[1], 64)
	if err != nil {
		return nil
	}
	sqft := int(math.Round(width * length))
	return &sqft
}

// deriveSizeTier maps square footage into filter buckets. RV units are
// always large. The 51-74 and 151-199 gaps intentionally produce no tier;
// such units only appear in unfiltered views.
func deriveSizeTier(sqft *int, isRV bool) SizeTier {
	if isRV {
		return SizeTierLarge
	}
	if sqft == nil || *sqft == 0 {
		return ""
	}
	switch {
	case *sqft <= 50:
		return SizeTierSmall
	case *sqft >= 75 && *sqft <= 150:
		return SizeTierMedium
	case *sqft >= 200:
		return SizeTierLarge
	}
	return ""
}

func deriveUseCase(sqft *int) string {
	if sqft == nil || *sqft == 0 {
		return ""
	}
	switch {
	case *sqft < 70:
		return "Studio or 1 Bedroom Home"
	case *sqft < 100:
		return "1-2 Bedroom Home"
	case *sqft < 150:
		return "2-3 Bedroom Home"
	}
	return "4 Bedroom Home or larger"
}

func inferElectricity(text string) string {
	if noElectricRe.MatchString(text) {
		return "No Electricity"
	}
	if electricRe.MatchString(text) {
		return "Electricity"
	}
	return ""
}

func inferDoor(sizeDescriptions []string) string {
	combined := strings.ToLower(strings.Join(sizeDescriptions, " "))
	if strings.Contains(combined, "rollup") {
		return "Rollup"
	}
	if strings.Contains(combined, "swing") {
		return "Swing"
	}
	return ""
}

func inferFloor(sizeDescriptions []string) string {
	combined := strings.ToLower(strings.Join(sizeDescriptions, " "))
	switch {
	case firstFloorRe.MatchString(combined):
		return "1st Floor"
	case streetLevelRe.MatchString(combined):
		return "Street Level"
	case insideLevelRe.MatchString(combined):
		return "Inside Level"
	case outsideLevelRe.MatchString(combined):
		return "Outside Level"
	}
	return ""
}

func formatLabel(label string) string {
	cleaned := strings.TrimSpace(strings.ReplaceAll(label, "_", " "))
	return capitalize(cleaned)
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
