package model

import (
	"github.com/google/uuid"
)

type User struct {
	Base
	UUID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()" json:"uuid"`
	Email          string    `gorm:"uniqueIndex" json:"email"`
	FullName       *string   `json:"full_name,omitempty"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	IsSuperuser    bool      `json:"is_superuser"`

	UserWhiskeys []UserWhiskey `json:"-"`
	Tastings     []Tasting     `json:"-"`
}

// UserPatch carries the fields a user update may change. Password is the
// plaintext input; callers must hash it and set HashedPassword on the
// entity themselves - Apply never touches the stored digest.
type UserPatch struct {
	Email       *string `json:"email,omitempty"`
	FullName    *string `json:"full_name,omitempty"`
	Password    *string `json:"password,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
}

func (p UserPatch) Apply(user *User) {
	if p.Email != nil {
		user.Email = *p.Email
	}

	if p.FullName != nil {
		user.FullName = p.FullName
	}

	if p.IsActive != nil {
		user.IsActive = *p.IsActive
	}

	if p.IsSuperuser != nil {
		user.IsSuperuser = *p.IsSuperuser
	}
}
