package catalog

// Category buckets a unit for customer-facing filtering. There is
// deliberately no generic "outdoor" bucket; anything that is not indoor or
// vehicle parking is treated as drive-up.
type Category string

const (
	CategoryIndoor  Category = "indoor"
	CategoryDriveUp Category = "drive-up"
	CategoryRV      Category = "rv"
)

// SizeTier is the coarse size filter bucket. The empty value means the unit
// does not fall into any tier and is only shown in unfiltered views.
type SizeTier string

const (
	SizeTierSmall  SizeTier = "small"
	SizeTierMedium SizeTier = "medium"
	SizeTierLarge  SizeTier = "large"
)

// Unit is the canonical post-normalization shape shared by both WSS source
// endpoints. ID is always non-empty; records that cannot resolve one are
// dropped during normalization.
type Unit struct {
	ID               string   `json:"id"`
	UnitID           string   `json:"unitId,omitempty"`
	RentableObjectID string   `json:"rentableObjectId,omitempty"`
	UnitNumber       string   `json:"unitNumber,omitempty"`
	Name             string   `json:"name,omitempty"`
	Size             string   `json:"size,omitempty"`
	Type             string   `json:"type,omitempty"`
	Access           string   `json:"access,omitempty"`
	IsInside         *bool    `json:"isInside,omitempty"`
	IsClimate        *bool    `json:"isClimate,omitempty"`
	Climate          string   `json:"climate,omitempty"`
	Rate             *float64 `json:"rate,omitempty"`
	Available        bool     `json:"available"`
	AvailableCount   *int     `json:"availableCount,omitempty"`
	Description      string   `json:"description,omitempty"`
	Doors            string   `json:"doors,omitempty"`
	Floor            string   `json:"floor,omitempty"`
	Elevation        string   `json:"elevation,omitempty"`
	SizeDescriptions []string `json:"sizeDescriptions,omitempty"`
	ImageURL         string   `json:"imageUrl,omitempty"`
	OrderGrouping    string   `json:"orderGrouping,omitempty"`
}

// EnrichedUnit carries the classifier's derived presentation fields on top of
// the canonical unit. Nothing here is written back upstream.
type EnrichedUnit struct {
	Unit

	IsIndoor bool `json:"isIndoor"`
	IsRV     bool `json:"isRV"`

	Category      Category `json:"category"`
	CategoryLabel string   `json:"categoryLabel"`
	SizeTier      SizeTier `json:"sizeCategory,omitempty"`
	Sqft          *int     `json:"sqft,omitempty"`

	Features         []string `json:"features"`
	AccessLabel      string   `json:"accessLabel,omitempty"`
	ClimateLabel     string   `json:"climateLabel,omitempty"`
	ClimateOn        bool     `json:"climateBool"`
	DoorLabel        string   `json:"doorLabel,omitempty"`
	FloorLabel       string   `json:"floorLabel,omitempty"`
	ElectricityLabel string   `json:"electricityLabel,omitempty"`
	UseCase          string   `json:"useCase,omitempty"`

	DisplayTitle       string `json:"displayTitle"`
	DisplayDescription string `json:"displayDescription,omitempty"`
	DisplaySize        string `json:"displaySize,omitempty"`

	MoveInURL string `json:"moveInUrl,omitempty"`
}
