package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harentsoaR/primelab-api/internal/repository"
	"github.com/harentsoaR/primelab-api/internal/services"
	"github.com/harentsoaR/primelab-api/internal/utils"
)

// Handler carries everything the HTTP layer talks to. The repositories share
// one Mongo connection opened at startup.
type Handler struct {
	Users        repository.UserRepository
	Tests        repository.TestRepository
	Banners      repository.BannerRepository
	Reservations repository.ReservationRepository
	Content      repository.ContentRepository
	Stats        repository.StatsRepository

	Payments services.PaymentService
	Tokens   *utils.TokenService
	Logger   *zap.Logger

	// HealthCheck pings the database; nil means always healthy.
	HealthCheck func(ctx context.Context) error
}

func NewHandler(repos *repository.Repositories, payments services.PaymentService, tokens *utils.TokenService, logger *zap.Logger) *Handler {
	return &Handler{
		Users:        repos.Users,
		Tests:        repos.Tests,
		Banners:      repos.Banners,
		Reservations: repos.Reservations,
		Content:      repos.Content,
		Stats:        repos.Stats,
		Payments:     payments,
		Tokens:       tokens,
		Logger:       logger,
	}
}

// fail maps a repository or upstream error onto the response.
func (h *Handler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, repository.ErrSoldOut):
		c.JSON(http.StatusConflict, gin.H{"message": "no slots available"})
	default:
		h.Logger.Error(msg,
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": msg})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "PrimeLab server is running.")
}

func (h *Handler) Health(c *gin.Context) {
	if h.HealthCheck != nil {
		if err := h.HealthCheck(c.Request.Context()); err != nil {
			h.Logger.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
