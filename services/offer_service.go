package services

import (
	"errors"
	"fmt"

	"github.com/LisaMariaKleiner/coderr/entity"
	"github.com/LisaMariaKleiner/coderr/repository"
	"gorm.io/gorm"
)

type OfferService struct {
	DB   *gorm.DB
	Repo *repository.OfferRepository
}

func NewOfferService(db *gorm.DB, repo *repository.OfferRepository) *OfferService {
	return &OfferService{DB: db, Repo: repo}
}

// ----- DTOs from Controller -----

type OfferDetailIn struct {
	ID                 *uint         `json:"id"`
	Title              string        `json:"title"`
	Revisions          int           `json:"revisions"`
	DeliveryTimeInDays int           `json:"delivery_time_in_days"`
	Price              *entity.Price `json:"price"`
	Features           []string      `json:"features"`
	OfferType          string        `json:"offer_type"`
}

type CreateOfferReq struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Image       *string         `json:"image"`
	Details     []OfferDetailIn `json:"details"`
}

type UpdateOfferReq struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Image       *string          `json:"image"`
	Details     *[]OfferDetailIn `json:"details"`
}

// ----- Aggregates -----

type Aggregates struct {
	MinPrice        *entity.Price `json:"min_price"`
	MinDeliveryTime *int          `json:"min_delivery_time"`
}

// ComputeAggregates derives min_price and min_delivery_time over an
// offer's tiers. Both are nil when there are no tiers.
func ComputeAggregates(details []entity.OfferDetail) Aggregates {
	var agg Aggregates
	for i := range details {
		d := details[i]
		if agg.MinPrice == nil || d.Price.LessThan(*agg.MinPrice) {
			p := d.Price
			agg.MinPrice = &p
		}
		if agg.MinDeliveryTime == nil || d.DeliveryTimeInDays < *agg.MinDeliveryTime {
			t := d.DeliveryTimeInDays
			agg.MinDeliveryTime = &t
		}
	}
	return agg
}

// ----- Validation -----

func validateDetailIn(d OfferDetailIn) error {
	if d.OfferType == "" {
		return fmt.Errorf("every offer detail must contain an offer_type: %w", ErrValidation)
	}
	if !entity.ValidOfferType(d.OfferType) {
		return fmt.Errorf("unknown offer_type %q: %w", d.OfferType, ErrValidation)
	}
	if d.Price == nil {
		return fmt.Errorf("every offer detail must contain a price: %w", ErrValidation)
	}
	if !d.Price.IsPositive() {
		return fmt.Errorf("price must be greater than 0: %w", ErrValidation)
	}
	return nil
}

// ----- Create -----

func (s *OfferService) Create(userID uint, userType string, req *CreateOfferReq) (*entity.Offer, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if userType != entity.UserTypeBusiness {
		return nil, fmt.Errorf("only business users can create offers: %w", ErrForbidden)
	}
	if len(req.Details) < 3 {
		return nil, fmt.Errorf("an offer must contain at least 3 details: %w", ErrValidation)
	}
	for _, d := range req.Details {
		if err := validateDetailIn(d); err != nil {
			return nil, err
		}
	}

	offer := entity.Offer{
		Title:          req.Title,
		Description:    req.Description,
		Image:          req.Image,
		IsActive:       true,
		BusinessUserID: userID,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOffer(tx, &offer); err != nil {
			return err
		}
		for _, in := range req.Details {
			d := detailFromIn(offer.ID, in)
			if err := s.Repo.CreateDetail(tx, &d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOffer(offer.ID)
}

func detailFromIn(offerID uint, in OfferDetailIn) entity.OfferDetail {
	return entity.OfferDetail{
		OfferID:            offerID,
		Title:              in.Title,
		Revisions:          in.Revisions,
		DeliveryTimeInDays: in.DeliveryTimeInDays,
		Price:              *in.Price,
		Features:           entity.StringSlice(in.Features),
		OfferType:          in.OfferType,
	}
}

// ----- Reconcile (PUT / PATCH) -----

// Reconcile updates an offer's scalar fields and brings its tier rows in
// line with the payload. Matching runs id-first, then offer_type, else a
// new row is created. On the full-replacement path every existing row
// not matched by any payload item is deleted; the partial path never
// deletes. Two overlapping reconciles of the same offer are
// last-write-wins; there is no optimistic locking.
func (s *OfferService) Reconcile(userID, offerID uint, req *UpdateOfferReq, partial bool) (*entity.Offer, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	offer, err := s.Repo.GetOffer(offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("offer not found: %w", ErrNotFound)
		}
		return nil, err
	}
	if offer.BusinessUserID != userID {
		return nil, fmt.Errorf("only the owner can edit this offer: %w", ErrForbidden)
	}

	if req.Details != nil {
		for _, d := range *req.Details {
			if err := validateDetailIn(d); err != nil {
				return nil, err
			}
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if req.Title != nil {
			offer.Title = *req.Title
		}
		if req.Description != nil {
			offer.Description = *req.Description
		}
		if req.Image != nil {
			offer.Image = req.Image
		}
		if err := s.Repo.SaveOffer(tx, offer); err != nil {
			return err
		}

		if req.Details == nil {
			return nil
		}
		return s.reconcileDetails(tx, offer, *req.Details, partial)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOffer(offerID)
}

func (s *OfferService) reconcileDetails(tx *gorm.DB, offer *entity.Offer, payload []OfferDetailIn, partial bool) error {
	// Two-pass index over the current rows: by id, by tier tag.
	byID := make(map[uint]*entity.OfferDetail, len(offer.Details))
	byType := make(map[string]*entity.OfferDetail, len(offer.Details))
	for i := range offer.Details {
		d := &offer.Details[i]
		byID[d.ID] = d
		byType[d.OfferType] = d
	}

	matched := make(map[uint]bool, len(payload))
	for _, in := range payload {
		var target *entity.OfferDetail
		if in.ID != nil {
			target = byID[*in.ID]
		}
		if target == nil {
			target = byType[in.OfferType]
		}

		if target != nil {
			target.Title = in.Title
			target.Revisions = in.Revisions
			target.DeliveryTimeInDays = in.DeliveryTimeInDays
			target.Price = *in.Price
			target.Features = entity.StringSlice(in.Features)
			target.OfferType = in.OfferType
			if err := s.Repo.SaveDetail(tx, target); err != nil {
				return err
			}
			matched[target.ID] = true
			continue
		}

		d := detailFromIn(offer.ID, in)
		if err := s.Repo.CreateDetail(tx, &d); err != nil {
			return err
		}
	}

	// Full replacement: payload absence means deletion. The partial
	// path leaves unmentioned rows untouched.
	if !partial {
		for id := range byID {
			if !matched[id] {
				if err := s.Repo.DeleteDetail(tx, id); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// ----- Reads -----

func (s *OfferService) Get(offerID uint) (*entity.Offer, error) {
	offer, err := s.Repo.GetOfferWithUser(offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("offer not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return offer, nil
}

func (s *OfferService) GetDetail(detailID uint) (*entity.OfferDetail, error) {
	d, err := s.Repo.GetDetail(detailID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("offer detail not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return d, nil
}

func (s *OfferService) List(f repository.OfferFilter) ([]entity.Offer, int64, error) {
	return s.Repo.ListOffers(f)
}

// ----- Delete -----

func (s *OfferService) Delete(userID, offerID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	offer, err := s.Repo.GetOffer(offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("offer not found: %w", ErrNotFound)
		}
		return err
	}
	if offer.BusinessUserID != userID {
		return fmt.Errorf("only the owner can delete this offer: %w", ErrForbidden)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		_, err := s.Repo.DeleteOffer(tx, offerID)
		return err
	})
}
