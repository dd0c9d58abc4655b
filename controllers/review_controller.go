package controllers

import (
	"strconv"

	"github.com/LisaMariaKleiner/coderr/entity"
	"github.com/LisaMariaKleiner/coderr/pkg/resp"
	"github.com/LisaMariaKleiner/coderr/repository"
	"github.com/LisaMariaKleiner/coderr/services"
	"github.com/LisaMariaKleiner/coderr/utils"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Service: svc}
}

type reviewView struct {
	ID           uint   `json:"id"`
	BusinessUser uint   `json:"business_user"`
	Reviewer     uint   `json:"reviewer"`
	Rating       int    `json:"rating"`
	Description  string `json:"description"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func buildReviewView(r *entity.Review) reviewView {
	return reviewView{
		ID:           r.ID,
		BusinessUser: r.BusinessUserID,
		Reviewer:     r.ReviewerID,
		Rating:       r.Rating,
		Description:  r.Description,
		CreatedAt:    services.TimestampUTC(r.CreatedAt),
		UpdatedAt:    services.TimestampUTC(r.UpdatedAt),
	}
}

// GET /api/reviews?business_user_id=&reviewer_id=&ordering=
func (rc *ReviewController) List(c *gin.Context) {
	var f repository.ReviewFilter
	if v := c.Query("business_user_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "business_user_id must be a number")
			return
		}
		u := uint(id)
		f.BusinessUserID = &u
	}
	if v := c.Query("reviewer_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "reviewer_id must be a number")
			return
		}
		u := uint(id)
		f.ReviewerID = &u
	}
	f.Ordering = c.Query("ordering")

	reviews, err := rc.Service.List(f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	out := make([]reviewView, 0, len(reviews))
	for i := range reviews {
		out = append(out, buildReviewView(&reviews[i]))
	}
	resp.OK(c, out)
}

// POST /api/reviews (customer only, one per business profile)
func (rc *ReviewController) Create(c *gin.Context) {
	var req services.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.Service.Create(utils.CurrentUserID(c), utils.CurrentUserType(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, buildReviewView(review))
}

// PATCH /api/reviews/:id (author only)
func (rc *ReviewController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid review id")
		return
	}
	var req services.UpdateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.Service.Update(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, buildReviewView(review))
}

// DELETE /api/reviews/:id (author only)
func (rc *ReviewController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid review id")
		return
	}
	if err := rc.Service.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
