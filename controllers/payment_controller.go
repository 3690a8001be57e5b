package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/amalakkad93/StarcoEat/pkg/apperr"
	"github.com/amalakkad93/StarcoEat/services"

	"github.com/gin-gonic/gin"
)

// PaymentController uses the flat {data, error} envelope the payments
// endpoint family has always spoken.
type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

func apiResponse(c *gin.Context, status int, data any, errMsg any) {
	c.JSON(status, gin.H{"data": data, "error": errMsg})
}

func apiError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.Validation:
		apiResponse(c, http.StatusBadRequest, nil, err.Error())
	case apperr.NotFound:
		apiResponse(c, http.StatusNotFound, nil, err.Error())
	default:
		apiResponse(c, http.StatusInternalServerError, nil, "An unexpected error occurred.")
	}
}

// GET /payments
func (h *PaymentController) List(c *gin.Context) {
	payments, err := h.Svc.List()
	if err != nil {
		apiError(c, err)
		return
	}
	apiResponse(c, http.StatusOK, payments, nil)
}

// GET /payments/:id
func (h *PaymentController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apiResponse(c, http.StatusBadRequest, nil, "invalid payment id")
		return
	}
	p, err := h.Svc.Get(uint(id))
	if err != nil {
		apiError(c, err)
		return
	}
	apiResponse(c, http.StatusOK, p, nil)
}

// POST /payments
func (h *PaymentController) Create(c *gin.Context) {
	var req services.CreatePaymentIn
	if err := c.ShouldBindJSON(&req); err != nil {
		apiResponse(c, http.StatusBadRequest, nil, err.Error())
		return
	}
	p, err := h.Svc.Create(&req)
	if err != nil {
		apiError(c, err)
		return
	}
	apiResponse(c, http.StatusCreated, p, nil)
}

// PUT /payments/:id
func (h *PaymentController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apiResponse(c, http.StatusBadRequest, nil, "invalid payment id")
		return
	}
	var req services.UpdatePaymentIn
	if err := c.ShouldBindJSON(&req); err != nil {
		apiResponse(c, http.StatusBadRequest, nil, err.Error())
		return
	}
	p, err := h.Svc.Update(uint(id), &req)
	if err != nil {
		apiError(c, err)
		return
	}
	apiResponse(c, http.StatusOK, p, nil)
}

// DELETE /payments/:id
func (h *PaymentController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apiResponse(c, http.StatusBadRequest, nil, "invalid payment id")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		apiError(c, err)
		return
	}
	apiResponse(c, http.StatusOK, fmt.Sprintf("Deleted payment with id %d", id), nil)
}
