package controllers

import (
	"strconv"

	"github.com/LisaMariaKleiner/coderr/pkg/resp"
	"github.com/LisaMariaKleiner/coderr/services"
	"github.com/LisaMariaKleiner/coderr/utils"
	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Service *services.ProfileService
}

func NewProfileController(svc *services.ProfileService) *ProfileController {
	return &ProfileController{Service: svc}
}

// GET /api/profile/:pk
func (pc *ProfileController) Detail(c *gin.Context) {
	pk, err := strconv.ParseUint(c.Param("pk"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid profile id")
		return
	}
	view, err := pc.Service.Get(uint(pk))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// PATCH /api/profile/:pk (owner only)
func (pc *ProfileController) Update(c *gin.Context) {
	pk, err := strconv.ParseUint(c.Param("pk"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid profile id")
		return
	}
	var req services.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := pc.Service.Update(utils.CurrentUserID(c), uint(pk), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// GET /api/profiles/business
func (pc *ProfileController) ListBusiness(c *gin.Context) {
	views, err := pc.Service.ListBusiness()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, views)
}

// GET /api/profiles/customer
func (pc *ProfileController) ListCustomer(c *gin.Context) {
	views, err := pc.Service.ListCustomer()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, views)
}
