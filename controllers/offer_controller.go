package controllers

import (
	"fmt"
	"strconv"

	"github.com/LisaMariaKleiner/coderr/entity"
	"github.com/LisaMariaKleiner/coderr/pkg/resp"
	"github.com/LisaMariaKleiner/coderr/repository"
	"github.com/LisaMariaKleiner/coderr/services"
	"github.com/LisaMariaKleiner/coderr/utils"
	"github.com/gin-gonic/gin"
)

type OfferController struct {
	Service *services.OfferService
}

func NewOfferController(svc *services.OfferService) *OfferController {
	return &OfferController{Service: svc}
}

// ===== Views =====

// offerDetailView is the full tier representation used by write
// responses and GET /api/offerdetails/:id.
type offerDetailView struct {
	ID                 uint               `json:"id"`
	Title              string             `json:"title"`
	Revisions          int                `json:"revisions"`
	DeliveryTimeInDays int                `json:"delivery_time_in_days"`
	Price              entity.Price       `json:"price"`
	Features           entity.StringSlice `json:"features"`
	OfferType          string             `json:"offer_type"`
}

// detailRefView links a tier instead of embedding it.
type detailRefView struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}

// offerCompactView is returned from create and both update paths.
type offerCompactView struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Image       *string           `json:"image"`
	Description string            `json:"description"`
	Details     []offerDetailView `json:"details"`
}

// offerFullView is the read shape: detail references plus aggregates.
type offerFullView struct {
	ID              uint               `json:"id"`
	User            uint               `json:"user"`
	Title           string             `json:"title"`
	Image           *string            `json:"image"`
	Description     string             `json:"description"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
	Details         []detailRefView    `json:"details"`
	MinPrice        *entity.Price      `json:"min_price"`
	MinDeliveryTime *int               `json:"min_delivery_time"`
	UserDetails     *offerUserDetails  `json:"user_details,omitempty"`
}

type offerUserDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

func detailView(d *entity.OfferDetail) offerDetailView {
	return offerDetailView{
		ID:                 d.ID,
		Title:              d.Title,
		Revisions:          d.Revisions,
		DeliveryTimeInDays: d.DeliveryTimeInDays,
		Price:              d.Price,
		Features:           d.Features,
		OfferType:          d.OfferType,
	}
}

func compactView(o *entity.Offer) offerCompactView {
	v := offerCompactView{
		ID:          o.ID,
		Title:       o.Title,
		Image:       o.Image,
		Description: o.Description,
		Details:     make([]offerDetailView, 0, len(o.Details)),
	}
	for i := range o.Details {
		v.Details = append(v.Details, detailView(&o.Details[i]))
	}
	return v
}

func fullView(o *entity.Offer, withUser bool) offerFullView {
	agg := services.ComputeAggregates(o.Details)
	v := offerFullView{
		ID:              o.ID,
		User:            o.BusinessUserID,
		Title:           o.Title,
		Image:           o.Image,
		Description:     o.Description,
		CreatedAt:       services.TimestampUTC(o.CreatedAt),
		UpdatedAt:       services.TimestampUTC(o.UpdatedAt),
		Details:         make([]detailRefView, 0, len(o.Details)),
		MinPrice:        agg.MinPrice,
		MinDeliveryTime: agg.MinDeliveryTime,
	}
	for i := range o.Details {
		d := o.Details[i]
		v.Details = append(v.Details, detailRefView{ID: d.ID, URL: fmt.Sprintf("/api/offerdetails/%d/", d.ID)})
	}
	if withUser {
		v.UserDetails = &offerUserDetails{
			FirstName: o.BusinessUser.FirstName,
			LastName:  o.BusinessUser.LastName,
			Username:  o.BusinessUser.Username,
		}
	}
	return v
}

// ===== Handlers =====

// GET /api/offers
func (oc *OfferController) List(c *gin.Context) {
	var f repository.OfferFilter

	if v := c.Query("creator_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "creator_id must be a number")
			return
		}
		u := uint(id)
		f.CreatorID = &u
	}
	if v := c.Query("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "min_price must be a number")
			return
		}
		f.MinPrice = &p
	}
	if v := c.Query("max_delivery_time"); v != "" {
		t, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "max_delivery_time must be a number")
			return
		}
		f.MaxDeliveryTime = &t
	}
	f.Search = c.Query("search")
	f.Ordering = c.Query("ordering")
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	offers, total, err := oc.Service.List(f)
	if err != nil {
		resp.Error(c, err)
		return
	}

	results := make([]offerFullView, 0, len(offers))
	for i := range offers {
		results = append(results, fullView(&offers[i], true))
	}
	resp.OK(c, gin.H{"count": total, "results": results})
}

// GET /api/offers/:id
func (oc *OfferController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid offer id")
		return
	}
	offer, err := oc.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, fullView(offer, false))
}

// GET /api/offerdetails/:id
func (oc *OfferController) DetailTier(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid offer detail id")
		return
	}
	d, err := oc.Service.GetDetail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detailView(d))
}

// POST /api/offers (business only)
func (oc *OfferController) Create(c *gin.Context) {
	var req services.CreateOfferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	offer, err := oc.Service.Create(utils.CurrentUserID(c), utils.CurrentUserType(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, compactView(offer))
}

// PUT /api/offers/:id: full replacement, unreferenced tiers are deleted.
func (oc *OfferController) Update(c *gin.Context) {
	oc.reconcile(c, false)
}

// PATCH /api/offers/:id: partial, unmentioned tiers stay.
func (oc *OfferController) PartialUpdate(c *gin.Context) {
	oc.reconcile(c, true)
}

func (oc *OfferController) reconcile(c *gin.Context, partial bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid offer id")
		return
	}
	var req services.UpdateOfferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	offer, err := oc.Service.Reconcile(utils.CurrentUserID(c), uint(id), &req, partial)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, compactView(offer))
}

// DELETE /api/offers/:id (owner only)
func (oc *OfferController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid offer id")
		return
	}
	if err := oc.Service.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
