package domain

import "time"

type ImageVariantType string

const (
	VariantSquare   ImageVariantType = "SQUARE"
	VariantWide     ImageVariantType = "WIDE"
	VariantPortrait ImageVariantType = "PORTRAIT"
)

type LicenseType string

const (
	LicensePersonal   LicenseType = "personal"
	LicenseCommercial LicenseType = "commercial"
)

type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// VariantDimensions maps each variant type to the pixel size the CDN
// renders it at.
var VariantDimensions = map[ImageVariantType]Dimensions{
	VariantSquare:   {Width: 1200, Height: 1200},
	VariantWide:     {Width: 1920, Height: 1080},
	VariantPortrait: {Width: 1080, Height: 1440},
}

// ImageVariant is a value type, not persisted on its own. An order copies
// the variant it was bought under so later catalog edits cannot change
// the purchase terms.
type ImageVariant struct {
	Type    ImageVariantType `bson:"type" json:"type"`
	License LicenseType      `bson:"license" json:"license"`
	Price   float64          `bson:"price" json:"price"`
}

func (v ImageVariant) Valid() bool {
	if _, ok := VariantDimensions[v.Type]; !ok {
		return false
	}
	if v.License != LicensePersonal && v.License != LicenseCommercial {
		return false
	}
	return v.Price > 0
}

type Product struct {
	ID          string         `bson:"_id,omitempty" json:"id"`
	Name        string         `bson:"name" json:"name"`
	Description string         `bson:"description" json:"description"`
	ImageURL    string         `bson:"image_url" json:"imageUrl"`
	Variants    []ImageVariant `bson:"variants" json:"variants"`
	CreatedAt   time.Time      `bson:"created_at" json:"createdAt"`
}
