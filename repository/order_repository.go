package repository

import (
	"github.com/LisaMariaKleiner/coderr/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) SaveOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Save(o).Error
}

func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Delete(&entity.Order{}, orderID)
	return res.RowsAffected, res.Error
}

// ListOrdersForUser returns both sides of the marketplace for one user:
// orders they placed and orders placed with them.
func (r *OrderRepository) ListOrdersForUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("customer_user_id = ? OR business_user_id = ?", userID, userID).
		Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListAllOrders() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) CountByBusinessAndStatus(businessUserID uint, status string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("business_user_id = ? AND status = ?", businessUserID, status).
		Count(&count).Error
	return count, err
}
