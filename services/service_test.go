package services

import (
	"fmt"
	"testing"

	"github.com/LisaMariaKleiner/coderr/entity"
	"github.com/LisaMariaKleiner/coderr/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory database to avoid cross-test
// interference.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.BusinessProfile{}, &entity.CustomerProfile{},
		&entity.Offer{}, &entity.OfferDetail{},
		&entity.Order{},
		&entity.Review{},
	))
	return db
}

func makeUser(t *testing.T, db *gorm.DB, username, userType string) *entity.User {
	t.Helper()
	u := entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		UserType: userType,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func pricePtr(v float64) *entity.Price {
	p := entity.NewPrice(v)
	return &p
}

func detailIn(offerType string, price float64, days int) OfferDetailIn {
	return OfferDetailIn{
		Title:              offerType + " package",
		Revisions:          2,
		DeliveryTimeInDays: days,
		Price:              pricePtr(price),
		Features:           []string{"Logo", "Visitenkarte"},
		OfferType:          offerType,
	}
}

func newOfferService(db *gorm.DB) *OfferService {
	return NewOfferService(db, repository.NewOfferRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewOfferRepository(db),
		repository.NewUserRepository(db))
}

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(db,
		repository.NewReviewRepository(db),
		repository.NewOfferRepository(db),
		repository.NewUserRepository(db))
}

// makeOffer creates a three-tier offer for the given business user.
func makeOffer(t *testing.T, svc *OfferService, businessID uint) *entity.Offer {
	t.Helper()
	offer, err := svc.Create(businessID, entity.UserTypeBusiness, &CreateOfferReq{
		Title:       "Grafikdesign-Paket",
		Description: "Ein umfassendes Grafikdesign-Paket",
		Details: []OfferDetailIn{
			detailIn(entity.OfferTypeBasic, 100, 5),
			detailIn(entity.OfferTypeStandard, 200, 7),
			detailIn(entity.OfferTypePremium, 500, 10),
		},
	})
	require.NoError(t, err)
	return offer
}
