package model

type Distillery struct {
	Base
	Name        string  `gorm:"uniqueIndex" json:"name"`
	Region      *string `json:"region,omitempty"`
	Country     *string `json:"country,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Website     *string `json:"website,omitempty"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	Whiskeys []Whiskey `json:"-"`
}

type DistilleryPatch struct {
	Name        *string `json:"name,omitempty"`
	Region      *string `json:"region,omitempty"`
	Country     *string `json:"country,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Website     *string `json:"website,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (p DistilleryPatch) Apply(distillery *Distillery) {
	if p.Name != nil {
		distillery.Name = *p.Name
	}

	if p.Region != nil {
		distillery.Region = p.Region
	}

	if p.Country != nil {
		distillery.Country = p.Country
	}

	if p.Description != nil {
		distillery.Description = p.Description
	}

	if p.ImageURL != nil {
		distillery.ImageURL = p.ImageURL
	}

	if p.Website != nil {
		distillery.Website = p.Website
	}

	if p.IsActive != nil {
		distillery.IsActive = *p.IsActive
	}
}
