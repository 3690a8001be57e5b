package controllers

import (
	"strconv"

	"github.com/amalakkad93/StarcoEat/entity"
	"github.com/amalakkad93/StarcoEat/pkg/normalize"
	"github.com/amalakkad93/StarcoEat/pkg/resp"
	"github.com/amalakkad93/StarcoEat/repository"
	"github.com/amalakkad93/StarcoEat/utils"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	Repo     *repository.FavoriteRepository
	RestRepo *repository.RestaurantRepository
}

func NewFavoriteController(repo *repository.FavoriteRepository, restRepo *repository.RestaurantRepository) *FavoriteController {
	return &FavoriteController{Repo: repo, RestRepo: restRepo}
}

func favoriteID(f entity.Favorite) uint { return f.ID }

// GET /favorites
func (fc *FavoriteController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	favorites, err := fc.Repo.ListForUser(uid)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{
		"entities": gin.H{"favorites": normalize.Data(favorites, favoriteID)},
	})
}

type createFavoriteIn struct {
	RestaurantID uint `json:"restaurantId" binding:"required"`
}

// POST /favorites
func (fc *FavoriteController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req createFavoriteIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ok, err := fc.RestRepo.Exists(req.RestaurantID)
	if err != nil {
		resp.ServerError(c)
		return
	}
	if !ok {
		resp.NotFound(c, "Restaurant not found.")
		return
	}

	favorite := entity.Favorite{UserID: uid, RestaurantID: req.RestaurantID}
	if err := fc.Repo.Create(&favorite); err != nil {
		// unique (user, restaurant) pair
		resp.BadRequest(c, "Restaurant is already a favorite.")
		return
	}
	resp.Created(c, gin.H{
		"entities": gin.H{"favorites": normalize.Data([]entity.Favorite{favorite}, favoriteID)},
	})
}

// DELETE /favorites/:restaurantId
func (fc *FavoriteController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restaurantID, err := strconv.Atoi(c.Param("restaurantId"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	n, err := fc.Repo.Delete(uid, uint(restaurantID))
	if err != nil {
		resp.ServerError(c)
		return
	}
	if n == 0 {
		resp.NotFound(c, "Favorite not found.")
		return
	}
	resp.OK(c, gin.H{"message": "Favorite removed successfully"})
}
