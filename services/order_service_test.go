package services

import (
	"testing"

	"github.com/LisaMariaKleiner/coderr/entity"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderFromDetail(t *testing.T) {
	db := newTestDB(t)
	offerSvc := newOfferService(db)
	svc := newOrderService(db)

	business := makeUser(t, db, "biz", entity.UserTypeBusiness)
	customer := makeUser(t, db, "cust", entity.UserTypeCustomer)
	offer := makeOffer(t, offerSvc, business.ID)

	detailID := offer.Details[1].ID // standard, 200
	view, err := svc.CreateFromDetail(customer.ID, customer.UserType, &CreateOrderReq{OfferDetailID: &detailID})
	require.NoError(t, err)

	require.Equal(t, customer.ID, view.CustomerUser)
	require.Equal(t, business.ID, view.BusinessUser)
	require.Equal(t, entity.OrderStatusInProgress, view.Status)
	require.Equal(t, "200", view.Price.String())
	require.Equal(t, entity.OfferTypeStandard, view.OfferType)
	require.NotNil(t, view.Revisions)
	require.Equal(t, 7, *view.DeliveryTimeInDays)
}

func TestCreateOrderPermissions(t *testing.T) {
	db := newTestDB(t)
	offerSvc := newOfferService(db)
	svc := newOrderService(db)

	business := makeUser(t, db, "biz", entity.UserTypeBusiness)
	offer := makeOffer(t, offerSvc, business.ID)
	detailID := offer.Details[0].ID

	_, err := svc.CreateFromDetail(business.ID, business.UserType, &CreateOrderReq{OfferDetailID: &detailID})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.CreateFromDetail(0, "", &CreateOrderReq{OfferDetailID: &detailID})
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCreateOrderValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	customer := makeUser(t, db, "cust", entity.UserTypeCustomer)

	_, err := svc.CreateFromDetail(customer.ID, customer.UserType, &CreateOrderReq{})
	require.ErrorIs(t, err, ErrValidation)

	missing := uint(9999)
	_, err = svc.CreateFromDetail(customer.ID, customer.UserType, &CreateOrderReq{OfferDetailID: &missing})
	require.ErrorIs(t, err, ErrNotFound)
}

// The snapshot price must survive later edits of the tier.
func TestOrderPriceSnapshotIsImmutable(t *testing.T) {
	db := newTestDB(t)
	offerSvc := newOfferService(db)
	svc := newOrderService(db)

	business := makeUser(t, db, "biz", entity.UserTypeBusiness)
	customer := makeUser(t, db, "cust", entity.UserTypeCustomer)
	offer := makeOffer(t, offerSvc, business.ID)

	detailID := offer.Details[0].ID // basic, 100
	view, err := svc.CreateFromDetail(customer.ID, customer.UserType, &CreateOrderReq{OfferDetailID: &detailID})
	require.NoError(t, err)
	require.Equal(t, "100", view.Price.String())

	// Raise the tier's price after ordering.
	payload := []OfferDetailIn{detailIn(entity.OfferTypeBasic, 999, 5)}
	_, err = offerSvc.Reconcile(business.ID, offer.ID, &UpdateOfferReq{Details: &payload}, true)
	require.NoError(t, err)

	views, err := svc.ListForCaller(customer.ID, false)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, "100", views[0].Price.String())
}

// Dropping the ordered tier in a later full replacement must not blank
// the order's denormalized fields.
func TestOrderViewSurvivesTierRemoval(t *testing.T) {
	db := newTestDB(t)
	offerSvc := newOfferService(db)
	svc := newOrderService(db)

	business := makeUser(t, db, "biz", entity.UserTypeBusiness)
	customer := makeUser(t, db, "cust", entity.UserTypeCustomer)
	offer := makeOffer(t, offerSvc, business.ID)

	detailID := offer.Details[0].ID // basic, 100
	view, err := svc.CreateFromDetail(customer.ID, customer.UserType, &CreateOrderReq{OfferDetailID: &detailID})
	require.NoError(t, err)

	// Full replacement without a basic tier deletes the ordered row.
	payload := []OfferDetailIn{
		detailIn(entity.OfferTypeStandard, 250, 7),
		detailIn(entity.OfferTypePremium, 600, 12),
	}
	updated, err := offerSvc.Reconcile(business.ID, offer.ID, &UpdateOfferReq{Details: &payload}, false)
	require.NoError(t, err)
	require.Len(t, updated.Details, 2)

	views, err := svc.ListForCaller(customer.ID, false)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, view.Title, views[0].Title)
	require.Equal(t, entity.OfferTypeBasic, views[0].OfferType)
	require.NotNil(t, views[0].Revisions)
	require.Equal(t, "100", views[0].Price.String())
}

func TestUpdateOrderStatus(t *testing.T) {
	db := newTestDB(t)
	offerSvc := newOfferService(db)
	svc := newOrderService(db)

	business := makeUser(t, db, "biz", entity.UserTypeBusiness)
	customer := makeUser(t, db, "cust", entity.UserTypeCustomer)
	offer := makeOffer(t, offerSvc, business.ID)

	detailID := offer.Details[0].ID
	view, err := svc.CreateFromDetail(customer.ID, customer.UserType, &CreateOrderReq{OfferDetailID: &detailID})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(business.ID, view.ID, entity.OrderStatusCompleted)
	require.NoError(t, err)
	require.Equal(t, entity.OrderStatusCompleted, updated.Status)

	// Any recognized status is accepted, even going backwards.
	updated, err = svc.UpdateStatus(business.ID, view.ID, entity.OrderStatusPending)
	require.NoError(t, err)
	require.Equal(t, entity.OrderStatusPending, updated.Status)

	_, err = svc.UpdateStatus(business.ID, view.ID, "shipped")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateStatus(customer.ID, view.ID, entity.OrderStatusCompleted)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateStatus(business.ID, 9999, entity.OrderStatusCompleted)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOrderStaffOnly(t *testing.T) {
	db := newTestDB(t)
	offerSvc := newOfferService(db)
	svc := newOrderService(db)

	business := makeUser(t, db, "biz", entity.UserTypeBusiness)
	customer := makeUser(t, db, "cust", entity.UserTypeCustomer)
	staff := makeUser(t, db, "admin", entity.UserTypeCustomer)
	offer := makeOffer(t, offerSvc, business.ID)

	detailID := offer.Details[0].ID
	view, err := svc.CreateFromDetail(customer.ID, customer.UserType, &CreateOrderReq{OfferDetailID: &detailID})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(customer.ID, false, view.ID), ErrForbidden)
	require.ErrorIs(t, svc.Delete(business.ID, false, view.ID), ErrForbidden)

	require.NoError(t, svc.Delete(staff.ID, true, view.ID))
	require.ErrorIs(t, svc.Delete(staff.ID, true, view.ID), ErrNotFound)
}

func TestListOrdersForCaller(t *testing.T) {
	db := newTestDB(t)
	offerSvc := newOfferService(db)
	svc := newOrderService(db)

	business := makeUser(t, db, "biz", entity.UserTypeBusiness)
	customer := makeUser(t, db, "cust", entity.UserTypeCustomer)
	bystander := makeUser(t, db, "nobody", entity.UserTypeCustomer)
	offer := makeOffer(t, offerSvc, business.ID)

	detailID := offer.Details[0].ID
	_, err := svc.CreateFromDetail(customer.ID, customer.UserType, &CreateOrderReq{OfferDetailID: &detailID})
	require.NoError(t, err)

	// Both parties of the order see it.
	views, err := svc.ListForCaller(customer.ID, false)
	require.NoError(t, err)
	require.Len(t, views, 1)

	views, err = svc.ListForCaller(business.ID, false)
	require.NoError(t, err)
	require.Len(t, views, 1)

	views, err = svc.ListForCaller(bystander.ID, false)
	require.NoError(t, err)
	require.Empty(t, views)

	// Staff see everything.
	views, err = svc.ListForCaller(bystander.ID, true)
	require.NoError(t, err)
	require.Len(t, views, 1)
}

func TestCountForBusiness(t *testing.T) {
	db := newTestDB(t)
	offerSvc := newOfferService(db)
	svc := newOrderService(db)

	business := makeUser(t, db, "biz", entity.UserTypeBusiness)
	customer := makeUser(t, db, "cust", entity.UserTypeCustomer)
	other := makeUser(t, db, "cust2", entity.UserTypeCustomer)
	offer := makeOffer(t, offerSvc, business.ID)

	detailID := offer.Details[0].ID
	first, err := svc.CreateFromDetail(customer.ID, customer.UserType, &CreateOrderReq{OfferDetailID: &detailID})
	require.NoError(t, err)
	_, err = svc.CreateFromDetail(other.ID, other.UserType, &CreateOrderReq{OfferDetailID: &detailID})
	require.NoError(t, err)

	count, err := svc.CountForBusiness(business.ID, entity.OrderStatusInProgress)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	_, err = svc.UpdateStatus(business.ID, first.ID, entity.OrderStatusCompleted)
	require.NoError(t, err)

	count, err = svc.CountForBusiness(business.ID, entity.OrderStatusInProgress)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	count, err = svc.CountForBusiness(business.ID, entity.OrderStatusCompleted)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// Customer ids and unknown ids both report not found.
	_, err = svc.CountForBusiness(customer.ID, entity.OrderStatusInProgress)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.CountForBusiness(9999, entity.OrderStatusInProgress)
	require.ErrorIs(t, err, ErrNotFound)
}
