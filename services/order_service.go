package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/LisaMariaKleiner/coderr/entity"
	"github.com/LisaMariaKleiner/coderr/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	OfferRepo *repository.OfferRepository
	UserRepo  *repository.UserRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, offerRepo *repository.OfferRepository, userRepo *repository.UserRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, OfferRepo: offerRepo, UserRepo: userRepo}
}

// OrderView is the denormalized order response: the tier fields come
// from re-joining the source OfferDetail, the price from the immutable
// total_price snapshot taken at creation.
type OrderView struct {
	ID                 uint               `json:"id"`
	CustomerUser       uint               `json:"customer_user"`
	BusinessUser       uint               `json:"business_user"`
	Title              string             `json:"title"`
	Revisions          *int               `json:"revisions"`
	DeliveryTimeInDays *int               `json:"delivery_time_in_days"`
	Price              entity.Price       `json:"price"`
	Features           entity.StringSlice `json:"features"`
	OfferType          string             `json:"offer_type"`
	Status             string             `json:"status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (s *OrderService) buildView(o *entity.Order) (OrderView, error) {
	v := OrderView{
		ID:           o.ID,
		CustomerUser: o.CustomerUserID,
		BusinessUser: o.BusinessUserID,
		Price:        o.TotalPrice,
		Features:     entity.StringSlice{},
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
	if o.OfferDetailID != 0 {
		// Unscoped: a reconcile may have soft-deleted the tier, the
		// order still shows the fields it was placed against.
		d, err := s.OfferRepo.GetDetailAny(o.OfferDetailID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return v, nil
			}
			return v, err
		}
		v.Title = d.Title
		rev, days := d.Revisions, d.DeliveryTimeInDays
		v.Revisions = &rev
		v.DeliveryTimeInDays = &days
		v.Features = d.Features
		v.OfferType = d.OfferType
	}
	return v, nil
}

// ----- Create -----

type CreateOrderReq struct {
	OfferDetailID *uint `json:"offer_detail_id"`
}

// CreateFromDetail places an order for one pricing tier. Customer
// callers only; the tier's price is snapshotted into the order.
func (s *OrderService) CreateFromDetail(userID uint, userType string, req *CreateOrderReq) (*OrderView, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if userType != entity.UserTypeCustomer {
		return nil, fmt.Errorf("only customers can create orders: %w", ErrForbidden)
	}
	if req.OfferDetailID == nil || *req.OfferDetailID == 0 {
		return nil, fmt.Errorf("'offer_detail_id' is required: %w", ErrValidation)
	}

	detail, err := s.OfferRepo.GetDetailWithOffer(*req.OfferDetailID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("offer detail not found: %w", ErrNotFound)
		}
		return nil, err
	}

	offerID := detail.OfferID
	order := entity.Order{
		CustomerUserID: userID,
		BusinessUserID: detail.Offer.BusinessUserID,
		OfferID:        &offerID,
		OfferDetailID:  detail.ID,
		Status:         entity.OrderStatusInProgress,
		TotalPrice:     detail.Price,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateOrder(tx, &order)
	})
	if err != nil {
		return nil, err
	}

	view, err := s.buildView(&order)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ----- Status update -----

// UpdateStatus lets the order's business user flip the status. The new
// value only has to be one of the four recognized states; no ordering
// over transitions is enforced.
func (s *OrderService) UpdateStatus(userID, orderID uint, status string) (*OrderView, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order not found: %w", ErrNotFound)
		}
		return nil, err
	}
	if order.BusinessUserID != userID {
		return nil, fmt.Errorf("only the business user can update the status: %w", ErrForbidden)
	}
	if !entity.ValidOrderStatus(status) {
		return nil, fmt.Errorf("invalid status %q: %w", status, ErrValidation)
	}

	order.Status = status
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.SaveOrder(tx, order)
	})
	if err != nil {
		return nil, err
	}

	view, err := s.buildView(order)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ----- Delete (staff only) -----

func (s *OrderService) Delete(userID uint, isStaff bool, orderID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	if !isStaff {
		return fmt.Errorf("only staff can delete orders: %w", ErrForbidden)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.DeleteOrder(tx, orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("order not found: %w", ErrNotFound)
		}
		return nil
	})
}

// ----- Reads -----

func (s *OrderService) ListForCaller(userID uint, isStaff bool) ([]OrderView, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	var (
		orders []entity.Order
		err    error
	)
	if isStaff {
		orders, err = s.Repo.ListAllOrders()
	} else {
		orders, err = s.Repo.ListOrdersForUser(userID)
	}
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		v, err := s.buildView(&orders[i])
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// CountForBusiness counts a business user's orders in the given status.
// 404 when the id is not a business user.
func (s *OrderService) CountForBusiness(businessUserID uint, status string) (int64, error) {
	if _, err := s.UserRepo.GetBusinessUser(businessUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("no business user with this id: %w", ErrNotFound)
		}
		return 0, err
	}
	return s.Repo.CountByBusinessAndStatus(businessUserID, status)
}
