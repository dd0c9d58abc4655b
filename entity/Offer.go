package entity

import (
	"gorm.io/gorm"
)

type Offer struct {
	gorm.Model
	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`

	BusinessUserID uint `gorm:"index;not null" json:"businessUserId"`
	BusinessUser   User `json:"-"`

	// Tiers die with the offer
	Details []OfferDetail `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE" json:"details"`
}
