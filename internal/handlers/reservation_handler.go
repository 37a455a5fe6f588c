package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/harentsoaR/primelab-api/internal/middleware"
	"github.com/harentsoaR/primelab-api/internal/models"
	"github.com/harentsoaR/primelab-api/internal/repository"
)

// CreateReservation books one slot of a test. The slot is taken first, with a
// guard against going below zero; if the reservation then cannot be stored the
// slot is handed back.
func (h *Handler) CreateReservation(c *gin.Context) {
	var req models.Reservation
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.ID = primitive.NilObjectID
	req.PdfLink = ""
	if req.ReportStatus == "" {
		req.ReportStatus = models.ReportPending
	}
	if req.Email == "" {
		if claims, ok := middleware.ClaimsFrom(c); ok {
			req.Email = claims.Email
		}
	}

	ctx := c.Request.Context()
	updatedTest, err := h.Tests.ReserveSlot(ctx, req.TestID)
	if err != nil {
		h.fail(c, err, "Failed to reserve a slot")
		return
	}

	result, err := h.Reservations.Create(ctx, &req)
	if err != nil {
		if relErr := h.Tests.ReleaseSlot(ctx, req.TestID); relErr != nil {
			h.Logger.Error("slot not released after failed reservation",
				zap.String("test_id", req.TestID),
				zap.Error(relErr),
			)
		}
		h.fail(c, err, "Failed to create reservation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "updatedTest": updatedTest})
}

func (h *Handler) ListReservations(c *gin.Context) {
	reservations, err := h.Reservations.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to retrieve reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// ListUserReservations filters by email and ?status= (default "delivered").
func (h *Handler) ListUserReservations(c *gin.Context) {
	status := c.DefaultQuery("status", models.ReportDelivered)
	reservations, err := h.Reservations.ListByEmail(c.Request.Context(), c.Param("email"), status)
	if err != nil {
		h.fail(c, err, "Failed to retrieve reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// DeleteReservation removes one of the caller's reservations; admins may
// remove any reservation.
func (h *Handler) DeleteReservation(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Forbidden"})
		return
	}

	owner := claims.Email
	user, err := h.Users.FindByEmail(c.Request.Context(), claims.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.fail(c, err, "Failed to verify role")
		return
	}
	if user.IsAdmin() {
		owner = ""
	}

	result, err := h.Reservations.Delete(c.Request.Context(), c.Param("id"), owner)
	if err != nil {
		h.fail(c, err, "Failed to delete reservation")
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateReport attaches the result PDF and moves the report status on.
func (h *Handler) UpdateReport(c *gin.Context) {
	var req models.ReportUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	result, err := h.Reservations.UpdateReport(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err, "Failed to update reservation")
		return
	}
	c.JSON(http.StatusOK, result)
}
