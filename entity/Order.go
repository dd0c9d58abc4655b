package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is one of the four order states.
// Only set membership is checked; the API deliberately does not enforce
// a forward-only transition graph.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	CustomerUserID uint `gorm:"index;not null" json:"customerUserId"`
	Customer       User `gorm:"foreignKey:CustomerUserID" json:"-"`
	BusinessUserID uint `gorm:"index;not null" json:"businessUserId"`
	Business       User `gorm:"foreignKey:BusinessUserID" json:"-"`

	// The offer may be deleted later; the order survives with the
	// snapshotted price.
	OfferID       *uint `json:"offerId"`
	OfferDetailID uint  `gorm:"index" json:"offerDetailId"`

	Status     string `gorm:"not null;default:pending" json:"status"`
	TotalPrice Price  `gorm:"type:decimal(10,2)" json:"totalPrice"`
}
