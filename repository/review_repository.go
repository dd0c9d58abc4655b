package repository

import (
	"github.com/LisaMariaKleiner/coderr/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) CreateReview(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}

func (r *ReviewRepository) GetReview(id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) SaveReview(tx *gorm.DB, rev *entity.Review) error {
	return tx.Save(rev).Error
}

// DeleteReview removes the row for real. A soft-deleted review would
// still occupy the (business_user_id, reviewer_id) unique index and
// block the reviewer from ever rating that business again.
func (r *ReviewRepository) DeleteReview(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Unscoped().Delete(&entity.Review{}, id)
	return res.RowsAffected, res.Error
}

// ExistsForPair reports whether the reviewer already rated this business.
func (r *ReviewRepository) ExistsForPair(businessUserID, reviewerID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).
		Where("business_user_id = ? AND reviewer_id = ?", businessUserID, reviewerID).
		Count(&count).Error
	return count > 0, err
}

type ReviewFilter struct {
	BusinessUserID *uint
	ReviewerID     *uint
	Ordering       string
}

func (r *ReviewRepository) ListReviews(f ReviewFilter) ([]entity.Review, error) {
	q := r.DB.Model(&entity.Review{})
	if f.BusinessUserID != nil {
		q = q.Where("business_user_id = ?", *f.BusinessUserID)
	}
	if f.ReviewerID != nil {
		q = q.Where("reviewer_id = ?", *f.ReviewerID)
	}

	switch f.Ordering {
	case "rating":
		q = q.Order("rating ASC")
	case "-rating":
		q = q.Order("rating DESC")
	case "updated_at":
		q = q.Order("updated_at ASC")
	case "-updated_at":
		q = q.Order("updated_at DESC")
	default:
		q = q.Order("created_at DESC")
	}

	var out []entity.Review
	err := q.Find(&out).Error
	return out, err
}

func (r *ReviewRepository) CountReviews() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).Count(&count).Error
	return count, err
}

// AverageRating over all reviews; zero when there are none.
func (r *ReviewRepository) AverageRating() (float64, error) {
	var avg struct{ Avg *float64 }
	err := r.DB.Model(&entity.Review{}).Select("AVG(rating) AS avg").Scan(&avg).Error
	if err != nil || avg.Avg == nil {
		return 0, err
	}
	return *avg.Avg, nil
}
