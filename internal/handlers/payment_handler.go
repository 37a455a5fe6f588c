package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/primelab-api/internal/services"
)

func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	secret, err := h.Payments.CreatePaymentIntent(c.Request.Context(), req.Price)
	if errors.Is(err, services.ErrInvalidAmount) {
		badRequest(c, err.Error())
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to create payment intent")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
