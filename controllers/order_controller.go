package controllers

import (
	"fmt"
	"strconv"

	"github.com/amalakkad93/StarcoEat/entity"
	"github.com/amalakkad93/StarcoEat/pkg/normalize"
	"github.com/amalakkad93/StarcoEat/pkg/resp"
	"github.com/amalakkad93/StarcoEat/services"
	"github.com/amalakkad93/StarcoEat/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

func orderID(o entity.Order) uint          { return o.ID }
func orderItemID(it entity.OrderItem) uint { return it.ID }
func menuItemID(m entity.MenuItem) uint    { return m.ID }

// GET /orders/user/:userId
func (oc *OrderController) ListForUser(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	pathID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}
	if uint(pathID) != uid {
		resp.Forbidden(c, "You don't have permission to view these orders.")
		return
	}

	orders, err := oc.Svc.ListForUser(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if len(orders) == 0 {
		c.JSON(404, gin.H{
			"message":  "No orders found for the user.",
			"entities": gin.H{"orders": normalize.Empty[entity.Order]()},
		})
		return
	}
	resp.OK(c, gin.H{
		"entities": gin.H{"orders": normalize.Data(orders, orderID)},
	})
}

type createOrderIn struct {
	Gateway string `json:"gateway"`
}

// POST /orders/create_order
func (oc *OrderController) CreateFromCart(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	// Body is optional; the gateway defaults to Stripe.
	var req createOrderIn
	_ = c.ShouldBindJSON(&req)

	order, err := oc.Svc.CreateFromCart(uid, req.Gateway)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	detail, err := oc.Svc.Detail(uid, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"order":      detail.Order,
		"orderItems": normalize.Data(detail.Items, orderItemID),
		"menuItems":  normalize.Data(detail.MenuItems, menuItemID),
	})
}

// POST /orders/:id/reorder
func (oc *OrderController) Reorder(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.Svc.Reorder(uid, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}

	_, menuItems, err := oc.Svc.Items(uid, order.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message": "Order has been successfully reordered.",
		"entities": gin.H{
			"orders":     normalize.Data([]entity.Order{*order}, orderID),
			"orderItems": normalize.Data(order.Items, orderItemID),
			"menuItems":  normalize.Data(menuItems, menuItemID),
		},
	})
}

// GET /orders/:id/items
func (oc *OrderController) Items(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	items, menuItems, err := oc.Svc.Items(uid, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"entities": gin.H{
			"orderItems": normalize.Data(items, orderItemID),
			"menuItems":  normalize.Data(menuItems, menuItemID),
		},
	})
}

// DELETE /orders/:id — soft delete; the row stays.
func (oc *OrderController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	if err := oc.Svc.SoftDelete(uid, uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message": fmt.Sprintf("Order %d has been successfully marked as deleted.", id),
	})
}

type updateStatusIn struct {
	Status string `json:"status" binding:"required"`
}

// PUT /orders/:id
func (oc *OrderController) Update(c *gin.Context) {
	oc.updateStatus(c)
}

// PUT /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	oc.updateStatus(c)
}

func (oc *OrderController) updateStatus(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req updateStatusIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.UpdateStatus(uid, uint(id), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.Svc.Cancel(uid, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}
