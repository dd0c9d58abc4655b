package controllers

import (
	"strconv"

	"github.com/LisaMariaKleiner/coderr/entity"
	"github.com/LisaMariaKleiner/coderr/pkg/resp"
	"github.com/LisaMariaKleiner/coderr/services"
	"github.com/LisaMariaKleiner/coderr/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// GET /api/orders: caller's orders, both sides; staff sees all.
func (oc *OrderController) List(c *gin.Context) {
	views, err := oc.Service.ListForCaller(utils.CurrentUserID(c), utils.CurrentIsStaff(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, views)
}

// POST /api/orders (customer only)
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := oc.Service.CreateFromDetail(utils.CurrentUserID(c), utils.CurrentUserType(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, view)
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/orders/:id (business user of the order only)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := oc.Service.UpdateStatus(utils.CurrentUserID(c), uint(id), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /api/orders/:id (staff only)
func (oc *OrderController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	if err := oc.Service.Delete(utils.CurrentUserID(c), utils.CurrentIsStaff(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /api/order-count/:business_user_id
func (oc *OrderController) CountInProgress(c *gin.Context) {
	oc.count(c, entity.OrderStatusInProgress, "order_count")
}

// GET /api/completed-order-count/:business_user_id
func (oc *OrderController) CountCompleted(c *gin.Context) {
	oc.count(c, entity.OrderStatusCompleted, "completed_order_count")
}

func (oc *OrderController) count(c *gin.Context, status, key string) {
	id, err := strconv.ParseUint(c.Param("business_user_id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid business user id")
		return
	}
	count, err := oc.Service.CountForBusiness(uint(id), status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{key: count})
}
