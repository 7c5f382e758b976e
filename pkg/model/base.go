package model

import "time"

// Base replaces gorm.Model for all entities. It deliberately omits
// DeletedAt: deletes in this system are hard deletes.
type Base struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
