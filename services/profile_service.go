package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/LisaMariaKleiner/coderr/entity"
	"github.com/LisaMariaKleiner/coderr/repository"
	"gorm.io/gorm"
)

type ProfileService struct {
	DB   *gorm.DB
	Repo *repository.UserRepository
}

func NewProfileService(db *gorm.DB, repo *repository.UserRepository) *ProfileService {
	return &ProfileService{DB: db, Repo: repo}
}

// ProfileView is a tagged variant over the two profile shapes. Business
// responses carry the contact/business fields, customer responses omit
// them; this is a capability-based projection, not inheritance.
type ProfileView interface {
	isProfileView()
}

type BusinessProfileView struct {
	User         uint    `json:"user"`
	Username     string  `json:"username"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	File         *string `json:"file"`
	Location     string  `json:"location"`
	Tel          string  `json:"tel"`
	Description  string  `json:"description"`
	WorkingHours string  `json:"working_hours"`
	Type         string  `json:"type"`
	Email        string  `json:"email"`
	CreatedAt    string  `json:"created_at"`
}

type CustomerProfileView struct {
	User       uint    `json:"user"`
	Username   string  `json:"username"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	File       *string `json:"file"`
	UploadedAt string  `json:"uploaded_at"`
	Type       string  `json:"type"`
}

func (BusinessProfileView) isProfileView() {}
func (CustomerProfileView) isProfileView() {}

// TimestampUTC renders YYYY-MM-DDTHH:MM:SSZ without sub-second digits.
func TimestampUTC(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z")
}

func businessView(u *entity.User, p *entity.BusinessProfile) BusinessProfileView {
	v := BusinessProfileView{
		User:      u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Type:      entity.UserTypeBusiness,
		Email:     u.Email,
		CreatedAt: TimestampUTC(u.CreatedAt),
	}
	if p != nil {
		v.File = p.File
		v.Location = p.Location
		v.Tel = p.Tel
		v.Description = p.Description
		v.WorkingHours = p.WorkingHours
	}
	return v
}

func customerView(u *entity.User, p *entity.CustomerProfile) CustomerProfileView {
	v := CustomerProfileView{
		User:      u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Type:      entity.UserTypeCustomer,
	}
	if p != nil {
		v.File = p.File
		if p.File != nil {
			v.UploadedAt = TimestampUTC(p.UpdatedAt)
		}
	}
	return v
}

// Get returns the role-projected profile for a user id. Textual fields
// are never null, file URLs stay null until uploaded.
func (s *ProfileService) Get(userID uint) (ProfileView, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile not found: %w", ErrNotFound)
		}
		return nil, err
	}

	if u.UserType == entity.UserTypeBusiness {
		p, err := s.Repo.GetBusinessProfile(u.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return businessView(u, p), nil
	}

	p, err := s.Repo.GetCustomerProfile(u.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return customerView(u, p), nil
}

type UpdateProfileReq struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Location     string `json:"location"`
	Tel          string `json:"tel"`
	Description  string `json:"description"`
	WorkingHours string `json:"working_hours"`
}

// Update patches a user's own profile. Empty strings are ignored rather
// than written, so a sparse PATCH cannot blank out existing data.
func (s *ProfileService) Update(callerID, userID uint, req *UpdateProfileReq) (ProfileView, error) {
	if callerID == 0 {
		return nil, ErrUnauthenticated
	}
	if callerID != userID {
		return nil, fmt.Errorf("only the owner can edit this profile: %w", ErrForbidden)
	}

	u, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile not found: %w", ErrNotFound)
		}
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if req.FirstName != "" {
			u.FirstName = req.FirstName
		}
		if req.LastName != "" {
			u.LastName = req.LastName
		}
		if req.Email != "" {
			u.Email = req.Email
		}
		if err := s.Repo.Save(tx, u); err != nil {
			return err
		}

		if u.UserType != entity.UserTypeBusiness {
			return nil
		}
		p, err := s.Repo.GetBusinessProfile(u.ID)
		if err != nil {
			return err
		}
		if req.Location != "" {
			p.Location = req.Location
		}
		if req.Tel != "" {
			p.Tel = req.Tel
		}
		if req.Description != "" {
			p.Description = req.Description
		}
		if req.WorkingHours != "" {
			p.WorkingHours = req.WorkingHours
		}
		return s.Repo.SaveBusinessProfile(tx, p)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *ProfileService) ListBusiness() ([]BusinessProfileView, error) {
	profiles, err := s.Repo.ListBusinessProfiles()
	if err != nil {
		return nil, err
	}
	out := make([]BusinessProfileView, 0, len(profiles))
	for i := range profiles {
		p := profiles[i]
		out = append(out, businessView(&p.User, &p))
	}
	return out, nil
}

func (s *ProfileService) ListCustomer() ([]CustomerProfileView, error) {
	profiles, err := s.Repo.ListCustomerProfiles()
	if err != nil {
		return nil, err
	}
	out := make([]CustomerProfileView, 0, len(profiles))
	for i := range profiles {
		p := profiles[i]
		out = append(out, customerView(&p.User, &p))
	}
	return out, nil
}
