package entity

import (
	"gorm.io/gorm"
)

const (
	UserTypeCustomer = "customer"
	UserTypeBusiness = "business"
)

type User struct {
	gorm.Model
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserType  string `gorm:"not null;default:customer" json:"userType"`
	IsStaff   bool   `gorm:"default:false" json:"-"`

	// Relations, preload only when needed
	BusinessProfile *BusinessProfile `gorm:"foreignKey:UserID" json:"-"`
	CustomerProfile *CustomerProfile `gorm:"foreignKey:UserID" json:"-"`
	Offers          []Offer          `gorm:"foreignKey:BusinessUserID" json:"-"`
	OrdersPlaced    []Order          `gorm:"foreignKey:CustomerUserID" json:"-"`
	OrdersReceived  []Order          `gorm:"foreignKey:BusinessUserID" json:"-"`
	Reviews         []Review         `gorm:"foreignKey:ReviewerID" json:"-"`
}
