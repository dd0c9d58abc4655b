package entity

import (
	"gorm.io/gorm"
)

// BusinessProfile holds the public-facing fields of a business user.
// Text fields default to the empty string; File stays NULL until an
// image is uploaded.
type BusinessProfile struct {
	gorm.Model
	UserID       uint    `gorm:"uniqueIndex;not null" json:"userId"`
	User         User    `json:"-"`
	Location     string  `json:"location"`
	Tel          string  `json:"tel"`
	Description  string  `json:"description"`
	WorkingHours string  `json:"workingHours"`
	File         *string `json:"file"`
}

type CustomerProfile struct {
	gorm.Model
	UserID uint    `gorm:"uniqueIndex;not null" json:"userId"`
	User   User    `json:"-"`
	File   *string `json:"file"`
}
