package controllers

import (
	"strconv"

	"github.com/amalakkad93/StarcoEat/entity"
	"github.com/amalakkad93/StarcoEat/pkg/apperr"
	"github.com/amalakkad93/StarcoEat/pkg/normalize"
	"github.com/amalakkad93/StarcoEat/pkg/resp"
	"github.com/amalakkad93/StarcoEat/services"
	"github.com/amalakkad93/StarcoEat/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

func cartItemID(it entity.CartItem) uint { return it.ID }

// GET /cart/current
func (h *CartController) GetCurrent(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	_, items, err := h.Svc.Get(uid)
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			// No cart yet: still hand the frontend its empty store shape.
			c.JSON(404, gin.H{
				"entities": gin.H{"shoppingCartItems": normalize.Empty[entity.CartItem]()},
				"metadata": gin.H{"totalItems": 0},
			})
			return
		}
		resp.Error(c, err)
		return
	}

	normalized := normalize.Data(items, cartItemID)
	resp.OK(c, gin.H{
		"entities": gin.H{"shoppingCartItems": normalized},
		"metadata": gin.H{"totalItems": len(normalized.AllIDs)},
	})
}

type addCartItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// POST /cart/:id/items
// The path id is accepted for URL compatibility; items always go into
// the requester's own cart.
func (h *CartController) AddItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req addCartItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.Add(uid, req.MenuItemID, req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{
		"message": "Item added to cart successfully",
		"entities": gin.H{
			"shoppingCartItems": normalize.Data([]entity.CartItem{*item}, cartItemID),
		},
	})
}

type updateCartItemIn struct {
	Quantity int `json:"quantity" binding:"required"`
}

// PUT /cart/items/:itemId
func (h *CartController) UpdateItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	var req updateCartItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.UpdateQuantity(uid, uint(itemID), req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message": "Item updated successfully",
		"entities": gin.H{
			"shoppingCartItems": normalize.Data([]entity.CartItem{*item}, cartItemID),
		},
	})
}

// DELETE /cart/items/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	item, err := h.Svc.Remove(uid, uint(itemID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message": "Item removed from cart successfully",
		"entities": gin.H{
			"shoppingCartItems": normalize.Data([]entity.CartItem{*item}, cartItemID),
		},
	})
}

// DELETE /cart/current/clear
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := h.Svc.Clear(uid); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message": "Cart cleared successfully",
		"entities": gin.H{
			"shoppingCartItems": normalize.Empty[entity.CartItem](),
		},
	})
}
