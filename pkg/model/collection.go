package model

import "time"

// UserWhiskey joins a user to a catalog whiskey: one user's copy of the
// bottle. The owner is stamped by the service layer, never by the client.
type UserWhiskey struct {
	Base
	UserID           uint       `json:"user_id"`
	WhiskeyID        uint       `json:"whiskey_id"`
	IsOwned          bool       `gorm:"default:true" json:"is_owned"`
	IsFavorite       bool       `json:"is_favorite"`
	PurchaseDate     *time.Time `json:"purchase_date,omitempty"`
	BottleSizeML     *int       `json:"bottle_size_ml,omitempty"`
	RemainingPercent int        `gorm:"default:100" json:"remaining_percent"` // 0-100

	User    *User    `gorm:"foreignKey:UserID" json:"-"`
	Whiskey *Whiskey `gorm:"foreignKey:WhiskeyID" json:"whiskey,omitempty"`
}

type UserWhiskeyPatch struct {
	WhiskeyID        *uint      `json:"whiskey_id,omitempty"`
	IsOwned          *bool      `json:"is_owned,omitempty"`
	IsFavorite       *bool      `json:"is_favorite,omitempty"`
	PurchaseDate     *time.Time `json:"purchase_date,omitempty"`
	BottleSizeML     *int       `json:"bottle_size_ml,omitempty"`
	RemainingPercent *int       `json:"remaining_percent,omitempty"`
}

func (p UserWhiskeyPatch) Apply(entry *UserWhiskey) {
	if p.WhiskeyID != nil {
		entry.WhiskeyID = *p.WhiskeyID
		entry.Whiskey = nil
	}

	if p.IsOwned != nil {
		entry.IsOwned = *p.IsOwned
	}

	if p.IsFavorite != nil {
		entry.IsFavorite = *p.IsFavorite
	}

	if p.PurchaseDate != nil {
		entry.PurchaseDate = p.PurchaseDate
	}

	if p.BottleSizeML != nil {
		entry.BottleSizeML = p.BottleSizeML
	}

	if p.RemainingPercent != nil {
		entry.RemainingPercent = *p.RemainingPercent
	}
}
