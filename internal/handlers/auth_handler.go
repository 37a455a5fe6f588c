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
	"github.com/harentsoaR/primelab-api/internal/utils"
)

// IssueToken signs the identity the client already authenticated with its
// identity provider.
func (h *Handler) IssueToken(c *gin.Context) {
	var identity utils.Identity
	if err := c.ShouldBindJSON(&identity); err != nil {
		badRequest(c, "email is required")
		return
	}

	token, err := h.Tokens.Issue(identity)
	if err != nil {
		if errors.Is(err, utils.ErrMissingEmail) {
			badRequest(c, "email is required")
			return
		}
		h.Logger.Error("could not generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// CreateUser stores a user on first sign-in and is a no-op afterwards.
func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		badRequest(c, err.Error())
		return
	}
	// Role and status are admin-controlled, never client-supplied.
	user.ID = primitive.NilObjectID
	user.Role = ""
	user.Status = models.StatusActive

	result, _, err := h.Users.Create(c.Request.Context(), &user)
	if err != nil {
		h.fail(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser answers null for an unknown email.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.Users.FindByEmail(c.Request.Context(), c.Param("email"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	email := c.Param(userKeyParam)
	if !isCaller(c, email) {
		c.JSON(http.StatusForbidden, gin.H{"message": "unauthorized access"})
		return
	}

	var req models.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req == (models.ProfileUpdate{}) {
		badRequest(c, "No update fields provided")
		return
	}

	result, err := h.Users.UpdateProfile(c.Request.Context(), email, req)
	if err != nil {
		h.fail(c, err, "Failed to update user profile")
		return
	}
	c.JSON(http.StatusOK, result)
}

// ApplyUserAction handles PATCH /users/:action/:id.
func (h *Handler) ApplyUserAction(c *gin.Context) {
	action, err := models.ParseAdminAction(c.Param(userKeyParam))
	if err != nil {
		badRequest(c, "Invalid action")
		return
	}

	result, err := h.Users.ApplyAction(c.Request.Context(), c.Param("id"), action)
	if err != nil {
		h.fail(c, err, "Failed to update user")
		return
	}
	h.Logger.Info("admin action applied",
		zap.String("action", action.String()),
		zap.String("user_id", c.Param("id")),
	)
	c.JSON(http.StatusOK, result)
}

// CheckAdmin reports whether :email is an admin. Callers may only ask about themselves.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if !isCaller(c, email) {
		c.JSON(http.StatusForbidden, gin.H{"message": "unauthorized access"})
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.fail(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

// isCaller reports whether email belongs to the authenticated caller.
func isCaller(c *gin.Context, email string) bool {
	claims, ok := middleware.ClaimsFrom(c)
	return ok && claims.Email == email
}
