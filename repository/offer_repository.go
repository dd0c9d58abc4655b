package repository

import (
	"github.com/LisaMariaKleiner/coderr/entity"
	"gorm.io/gorm"
)

type OfferRepository struct {
	DB *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{DB: db}
}

// ---------------- Offers ----------------

func (r *OfferRepository) CreateOffer(tx *gorm.DB, o *entity.Offer) error {
	return tx.Create(o).Error
}

func (r *OfferRepository) SaveOffer(tx *gorm.DB, o *entity.Offer) error {
	return tx.Save(o).Error
}

// GetOffer loads an offer with its tiers ordered by price.
func (r *OfferRepository) GetOffer(id uint) (*entity.Offer, error) {
	var o entity.Offer
	err := r.DB.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("price")
	}).First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepository) GetOfferWithUser(id uint) (*entity.Offer, error) {
	var o entity.Offer
	err := r.DB.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("price")
	}).Preload("BusinessUser").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// DeleteOffer removes the offer and its detail rows in one transaction.
func (r *OfferRepository) DeleteOffer(tx *gorm.DB, offerID uint) (int64, error) {
	if err := tx.Where("offer_id = ?", offerID).Delete(&entity.OfferDetail{}).Error; err != nil {
		return 0, err
	}
	res := tx.Delete(&entity.Offer{}, offerID)
	return res.RowsAffected, res.Error
}

func (r *OfferRepository) CountOffers() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Offer{}).Count(&count).Error
	return count, err
}

func (r *OfferRepository) BusinessHasOffers(businessUserID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Offer{}).Where("business_user_id = ?", businessUserID).Count(&count).Error
	return count > 0, err
}

// ---------------- Listing ----------------

type OfferFilter struct {
	CreatorID       *uint
	MinPrice        *float64
	MaxDeliveryTime *int
	Search          string
	Ordering        string
	Page            int
	PageSize        int
}

const (
	minPriceExpr    = "(SELECT MIN(price) FROM offer_details WHERE offer_details.offer_id = offers.id AND offer_details.deleted_at IS NULL)"
	minDeliveryExpr = "(SELECT MIN(delivery_time_in_days) FROM offer_details WHERE offer_details.offer_id = offers.id AND offer_details.deleted_at IS NULL)"
)

// ListOffers returns active offers that have at least one tier, plus the
// total matching count for pagination.
func (r *OfferRepository) ListOffers(f OfferFilter) ([]entity.Offer, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 || f.PageSize > 100 {
		f.PageSize = 20
	}

	q := r.DB.Model(&entity.Offer{}).
		Where("is_active = ?", true).
		Where(minPriceExpr + " IS NOT NULL")

	if f.CreatorID != nil {
		q = q.Where("business_user_id = ?", *f.CreatorID)
	}
	if f.MinPrice != nil {
		q = q.Where(minPriceExpr+" >= ?", *f.MinPrice)
	}
	if f.MaxDeliveryTime != nil {
		q = q.Where(minDeliveryExpr+" <= ?", *f.MaxDeliveryTime)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.Ordering {
	case "min_price":
		q = q.Order(minPriceExpr + " ASC")
	case "-min_price":
		q = q.Order(minPriceExpr + " DESC")
	case "created_at":
		q = q.Order("created_at ASC")
	case "-created_at":
		q = q.Order("created_at DESC")
	case "updated_at":
		q = q.Order("updated_at ASC")
	default:
		q = q.Order("updated_at DESC, id ASC")
	}

	var offers []entity.Offer
	err := q.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("price")
	}).Preload("BusinessUser").
		Limit(f.PageSize).Offset((f.Page - 1) * f.PageSize).
		Find(&offers).Error
	return offers, total, err
}

// ---------------- Details ----------------

func (r *OfferRepository) CreateDetail(tx *gorm.DB, d *entity.OfferDetail) error {
	return tx.Create(d).Error
}

func (r *OfferRepository) SaveDetail(tx *gorm.DB, d *entity.OfferDetail) error {
	return tx.Save(d).Error
}

func (r *OfferRepository) DeleteDetail(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.OfferDetail{}, id).Error
}

func (r *OfferRepository) GetDetail(id uint) (*entity.OfferDetail, error) {
	var d entity.OfferDetail
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDetailAny resolves a tier even after a reconcile soft-deleted it.
// Orders keep rendering their denormalized fields from the row the
// snapshot was taken of.
func (r *OfferRepository) GetDetailAny(id uint) (*entity.OfferDetail, error) {
	var d entity.OfferDetail
	if err := r.DB.Unscoped().First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDetailWithOffer resolves a tier together with its offer and the
// offer's business user, as order creation needs all three.
func (r *OfferRepository) GetDetailWithOffer(id uint) (*entity.OfferDetail, error) {
	var d entity.OfferDetail
	if err := r.DB.Preload("Offer.BusinessUser").First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}
