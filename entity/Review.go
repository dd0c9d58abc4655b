package entity

import (
	"gorm.io/gorm"
)

// Review rates a business user. One review per (business, reviewer)
// pair, enforced by the composite unique index.
type Review struct {
	gorm.Model
	BusinessUserID uint `gorm:"not null;uniqueIndex:idx_reviews_business_reviewer" json:"businessUserId"`
	BusinessUser   User `gorm:"foreignKey:BusinessUserID" json:"-"`
	ReviewerID     uint `gorm:"not null;uniqueIndex:idx_reviews_business_reviewer" json:"reviewerId"`
	Reviewer       User `gorm:"foreignKey:ReviewerID" json:"-"`

	Rating      int    `gorm:"not null" json:"rating"`
	Description string `json:"description"`
}
