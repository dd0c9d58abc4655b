package services

import (
	"errors"
	"fmt"

	"github.com/LisaMariaKleiner/coderr/entity"
	"github.com/LisaMariaKleiner/coderr/repository"
	"gorm.io/gorm"
)

type ReviewService struct {
	DB        *gorm.DB
	Repo      *repository.ReviewRepository
	OfferRepo *repository.OfferRepository
	UserRepo  *repository.UserRepository
}

func NewReviewService(db *gorm.DB, repo *repository.ReviewRepository, offerRepo *repository.OfferRepository, userRepo *repository.UserRepository) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, OfferRepo: offerRepo, UserRepo: userRepo}
}

type CreateReviewReq struct {
	BusinessUser *uint   `json:"business_user"`
	Rating       *int    `json:"rating"`
	Description  *string `json:"description"`
}

type UpdateReviewReq struct {
	Rating      *int    `json:"rating"`
	Description *string `json:"description"`
}

func validRating(r int) bool { return r >= 1 && r <= 5 }

// Create files a review for a business user. Customers only, one review
// per (business, reviewer) pair, and the business must have published at
// least one offer.
func (s *ReviewService) Create(userID uint, userType string, req *CreateReviewReq) (*entity.Review, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if userType != entity.UserTypeCustomer {
		return nil, fmt.Errorf("only customers can write reviews: %w", ErrForbidden)
	}
	if req.BusinessUser == nil || req.Rating == nil || req.Description == nil {
		return nil, fmt.Errorf("business_user, rating and description are required: %w", ErrValidation)
	}
	if !validRating(*req.Rating) {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", ErrValidation)
	}

	hasOffers, err := s.OfferRepo.BusinessHasOffers(*req.BusinessUser)
	if err != nil {
		return nil, err
	}
	if !hasOffers {
		return nil, fmt.Errorf("no offer found for this business user: %w", ErrValidation)
	}

	exists, err := s.Repo.ExistsForPair(*req.BusinessUser, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("only one review per business profile is allowed: %w", ErrForbidden)
	}

	review := entity.Review{
		BusinessUserID: *req.BusinessUser,
		ReviewerID:     userID,
		Rating:         *req.Rating,
		Description:    *req.Description,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateReview(tx, &review)
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Update patches rating and/or description. Author only.
func (s *ReviewService) Update(userID, reviewID uint, req *UpdateReviewReq) (*entity.Review, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	review, err := s.Repo.GetReview(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review not found: %w", ErrNotFound)
		}
		return nil, err
	}
	if review.ReviewerID != userID {
		return nil, fmt.Errorf("only the reviewer can edit this review: %w", ErrForbidden)
	}
	if req.Rating == nil && req.Description == nil {
		return nil, fmt.Errorf("at least rating or description must be set: %w", ErrValidation)
	}
	if req.Rating != nil {
		if !validRating(*req.Rating) {
			return nil, fmt.Errorf("rating must be between 1 and 5: %w", ErrValidation)
		}
		review.Rating = *req.Rating
	}
	if req.Description != nil {
		review.Description = *req.Description
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.SaveReview(tx, review)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(userID, reviewID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	review, err := s.Repo.GetReview(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("review not found: %w", ErrNotFound)
		}
		return err
	}
	if review.ReviewerID != userID {
		return fmt.Errorf("only the reviewer can delete this review: %w", ErrForbidden)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		_, err := s.Repo.DeleteReview(tx, reviewID)
		return err
	})
}

func (s *ReviewService) List(f repository.ReviewFilter) ([]entity.Review, error) {
	return s.Repo.ListReviews(f)
}
