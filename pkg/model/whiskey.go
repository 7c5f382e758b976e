package model

// Whiskey is a shared catalog entry. Per-bottle state (ownership, bottle
// size, remaining percent) lives on UserWhiskey.
type Whiskey struct {
	Base
	Name         string   `json:"name"`
	DistilleryID *uint    `json:"distillery_id,omitempty"`
	Region       *string  `json:"region,omitempty"`
	Age          *int     `json:"age,omitempty"`
	Type         *string  `json:"type,omitempty"` // e.g. Single Malt, Bourbon
	ABV          *float64 `json:"abv,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`

	Distillery *Distillery `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"distillery,omitempty"`
}

type WhiskeyPatch struct {
	Name         *string  `json:"name,omitempty"`
	DistilleryID *uint    `json:"distillery_id,omitempty"`
	Region       *string  `json:"region,omitempty"`
	Age          *int     `json:"age,omitempty"`
	Type         *string  `json:"type,omitempty"`
	ABV          *float64 `json:"abv,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`
}

func (p WhiskeyPatch) Apply(whiskey *Whiskey) {
	if p.Name != nil {
		whiskey.Name = *p.Name
	}

	if p.DistilleryID != nil {
		whiskey.DistilleryID = p.DistilleryID
		whiskey.Distillery = nil
	}

	if p.Region != nil {
		whiskey.Region = p.Region
	}

	if p.Age != nil {
		whiskey.Age = p.Age
	}

	if p.Type != nil {
		whiskey.Type = p.Type
	}

	if p.ABV != nil {
		whiskey.ABV = p.ABV
	}

	if p.Price != nil {
		whiskey.Price = p.Price
	}

	if p.Notes != nil {
		whiskey.Notes = p.Notes
	}

	if p.ImageURL != nil {
		whiskey.ImageURL = p.ImageURL
	}
}
