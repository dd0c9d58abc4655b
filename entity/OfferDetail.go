package entity

import (
	"gorm.io/gorm"
)

const (
	OfferTypeBasic    = "basic"
	OfferTypeStandard = "standard"
	OfferTypePremium  = "premium"
)

// ValidOfferType reports whether t is one of the three pricing tiers.
func ValidOfferType(t string) bool {
	return t == OfferTypeBasic || t == OfferTypeStandard || t == OfferTypePremium
}

type OfferDetail struct {
	gorm.Model
	OfferID uint  `gorm:"index;not null" json:"offerId"`
	Offer   Offer `json:"-"`

	Title              string      `json:"title"`
	Revisions          int         `gorm:"default:0" json:"revisions"`
	DeliveryTimeInDays int         `json:"delivery_time_in_days"`
	Price              Price       `gorm:"type:decimal(10,2)" json:"price"`
	Features           StringSlice `gorm:"type:text" json:"features"`
	OfferType          string      `gorm:"not null" json:"offer_type"`
}
