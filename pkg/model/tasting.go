package model

import "time"

type Tasting struct {
	Base
	UserID        uint      `json:"user_id"`
	UserWhiskeyID uint      `json:"user_whiskey_id"`
	TastingDate   time.Time `gorm:"index" json:"tasting_date"`
	Rating        int       `json:"rating"` // 1-10
	ColorNotes    *string   `json:"color_notes,omitempty"`
	NoseNotes     *string   `json:"nose_notes,omitempty"`
	PalateNotes   *string   `json:"palate_notes,omitempty"`
	FinishNotes   *string   `json:"finish_notes,omitempty"`
	WaterNotes    *string   `json:"water_notes,omitempty"`
	PersonalNotes *string   `json:"personal_notes,omitempty"`
	Shared        bool      `json:"shared"`
	Setting       *string   `json:"setting,omitempty"`

	User        *User        `gorm:"foreignKey:UserID" json:"-"`
	UserWhiskey *UserWhiskey `gorm:"foreignKey:UserWhiskeyID" json:"-"`
}

type TastingPatch struct {
	UserWhiskeyID *uint      `json:"user_whiskey_id,omitempty"`
	TastingDate   *time.Time `json:"tasting_date,omitempty"`
	Rating        *int       `json:"rating,omitempty"`
	ColorNotes    *string    `json:"color_notes,omitempty"`
	NoseNotes     *string    `json:"nose_notes,omitempty"`
	PalateNotes   *string    `json:"palate_notes,omitempty"`
	FinishNotes   *string    `json:"finish_notes,omitempty"`
	WaterNotes    *string    `json:"water_notes,omitempty"`
	PersonalNotes *string    `json:"personal_notes,omitempty"`
	Shared        *bool      `json:"shared,omitempty"`
	Setting       *string    `json:"setting,omitempty"`
}

func (p TastingPatch) Apply(tasting *Tasting) {
	if p.UserWhiskeyID != nil {
		tasting.UserWhiskeyID = *p.UserWhiskeyID
		tasting.UserWhiskey = nil
	}

	if p.TastingDate != nil {
		tasting.TastingDate = *p.TastingDate
	}

	if p.Rating != nil {
		tasting.Rating = *p.Rating
	}

	if p.ColorNotes != nil {
		tasting.ColorNotes = p.ColorNotes
	}

	if p.NoseNotes != nil {
		tasting.NoseNotes = p.NoseNotes
	}

	if p.PalateNotes != nil {
		tasting.PalateNotes = p.PalateNotes
	}

	if p.FinishNotes != nil {
		tasting.FinishNotes = p.FinishNotes
	}

	if p.WaterNotes != nil {
		tasting.WaterNotes = p.WaterNotes
	}

	if p.PersonalNotes != nil {
		tasting.PersonalNotes = p.PersonalNotes
	}

	if p.Shared != nil {
		tasting.Shared = *p.Shared
	}

	if p.Setting != nil {
		tasting.Setting = p.Setting
	}
}
