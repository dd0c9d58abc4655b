package repository

import (
	"github.com/LisaMariaKleiner/coderr/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(tx *gorm.DB, u *entity.User) error {
	return tx.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UsernameTaken(username string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) EmailTaken(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// GetBusinessUser resolves id only when the user carries the business tag.
func (r *UserRepository) GetBusinessUser(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("id = ? AND user_type = ?", id, entity.UserTypeBusiness).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Save(tx *gorm.DB, u *entity.User) error {
	return tx.Save(u).Error
}

// ---------------- Profiles ----------------

func (r *UserRepository) CreateBusinessProfile(tx *gorm.DB, p *entity.BusinessProfile) error {
	return tx.Create(p).Error
}

func (r *UserRepository) CreateCustomerProfile(tx *gorm.DB, p *entity.CustomerProfile) error {
	return tx.Create(p).Error
}

func (r *UserRepository) GetBusinessProfile(userID uint) (*entity.BusinessProfile, error) {
	var p entity.BusinessProfile
	if err := r.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) GetCustomerProfile(userID uint) (*entity.CustomerProfile, error) {
	var p entity.CustomerProfile
	if err := r.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) SaveBusinessProfile(tx *gorm.DB, p *entity.BusinessProfile) error {
	return tx.Save(p).Error
}

func (r *UserRepository) ListBusinessProfiles() ([]entity.BusinessProfile, error) {
	var out []entity.BusinessProfile
	err := r.DB.Preload("User").Order("id").Find(&out).Error
	return out, err
}

func (r *UserRepository) ListCustomerProfiles() ([]entity.CustomerProfile, error) {
	var out []entity.CustomerProfile
	err := r.DB.Preload("User").Order("id").Find(&out).Error
	return out, err
}

func (r *UserRepository) CountBusinessProfiles() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.BusinessProfile{}).Count(&count).Error
	return count, err
}
