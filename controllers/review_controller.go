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

type ReviewController struct {
	Repo     *repository.ReviewRepository
	RestRepo *repository.RestaurantRepository
}

func NewReviewController(repo *repository.ReviewRepository, restRepo *repository.RestaurantRepository) *ReviewController {
	return &ReviewController{Repo: repo, RestRepo: restRepo}
}

func reviewID(r entity.Review) uint { return r.ID }

// GET /restaurants/:id/reviews
func (rc *ReviewController) ListForRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	reviews, err := rc.Repo.ListForRestaurant(uint(id))
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{
		"entities": gin.H{"reviews": normalize.Data(reviews, reviewID)},
	})
}

type createReviewIn struct {
	Review string `json:"review" binding:"required"`
	Stars  int    `json:"stars" binding:"required,min=1,max=5"`
}

// POST /restaurants/:id/reviews
func (rc *ReviewController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	ok, err := rc.RestRepo.Exists(uint(id))
	if err != nil {
		resp.ServerError(c)
		return
	}
	if !ok {
		resp.NotFound(c, "Restaurant not found.")
		return
	}

	var req createReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review := entity.Review{
		UserID:       uid,
		RestaurantID: uint(id),
		Review:       req.Review,
		Stars:        req.Stars,
	}
	if err := rc.Repo.Create(&review); err != nil {
		resp.ServerError(c)
		return
	}
	resp.Created(c, gin.H{
		"entities": gin.H{"reviews": normalize.Data([]entity.Review{review}, reviewID)},
	})
}
