package controllers

import (
	"errors"
	"strconv"

	"github.com/amalakkad93/StarcoEat/entity"
	"github.com/amalakkad93/StarcoEat/pkg/normalize"
	"github.com/amalakkad93/StarcoEat/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Read-only restaurant browsing talks to gorm directly; there is no
// workflow behind these endpoints.
type RestaurantController struct{ DB *gorm.DB }

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

func restaurantID(r entity.Restaurant) uint { return r.ID }

// GET /restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	var restaurants []entity.Restaurant
	if err := rc.DB.Order("id ASC").Find(&restaurants).Error; err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{
		"entities": gin.H{"restaurants": normalize.Data(restaurants, restaurantID)},
	})
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	var restaurant entity.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Restaurant not found.")
			return
		}
		resp.ServerError(c)
		return
	}

	var menuItems []entity.MenuItem
	if err := rc.DB.Where("restaurant_id = ?", restaurant.ID).
		Order("id ASC").Find(&menuItems).Error; err != nil {
		resp.ServerError(c)
		return
	}

	resp.OK(c, gin.H{
		"restaurant": restaurant,
		"entities": gin.H{
			"menuItems": normalize.Data(menuItems, menuItemID),
		},
	})
}

// GET /restaurants/:id/menu-items
func (rc *RestaurantController) MenuItems(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	var menuItems []entity.MenuItem
	if err := rc.DB.Where("restaurant_id = ?", id).
		Order("id ASC").Find(&menuItems).Error; err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{
		"entities": gin.H{"menuItems": normalize.Data(menuItems, menuItemID)},
	})
}
