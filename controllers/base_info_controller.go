package controllers

import (
	"math"

	"github.com/LisaMariaKleiner/coderr/pkg/resp"
	"github.com/LisaMariaKleiner/coderr/repository"
	"github.com/gin-gonic/gin"
)

type BaseInfoController struct {
	UserRepo   *repository.UserRepository
	OfferRepo  *repository.OfferRepository
	ReviewRepo *repository.ReviewRepository
}

func NewBaseInfoController(userRepo *repository.UserRepository, offerRepo *repository.OfferRepository, reviewRepo *repository.ReviewRepository) *BaseInfoController {
	return &BaseInfoController{UserRepo: userRepo, OfferRepo: offerRepo, ReviewRepo: reviewRepo}
}

// GET /api/base-info, public platform stats.
func (bc *BaseInfoController) Get(c *gin.Context) {
	reviewCount, err := bc.ReviewRepo.CountReviews()
	if err != nil {
		resp.ServerError(c)
		return
	}
	avg, err := bc.ReviewRepo.AverageRating()
	if err != nil {
		resp.ServerError(c)
		return
	}
	businessCount, err := bc.UserRepo.CountBusinessProfiles()
	if err != nil {
		resp.ServerError(c)
		return
	}
	offerCount, err := bc.OfferRepo.CountOffers()
	if err != nil {
		resp.ServerError(c)
		return
	}

	resp.OK(c, gin.H{
		"review_count":           reviewCount,
		"average_rating":         math.Round(avg*10) / 10,
		"business_profile_count": businessCount,
		"offer_count":            offerCount,
	})
}
