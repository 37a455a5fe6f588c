package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/primelab-api/internal/models"
	"github.com/harentsoaR/primelab-api/internal/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func (h *Handler) ListTests(c *gin.Context) {
	tests, err := h.Tests.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to retrieve tests")
		return
	}
	c.JSON(http.StatusOK, tests)
}

// PageTests serves /all-tests?page=&size= with 1-based pages.
func (h *Handler) PageTests(c *gin.Context) {
	page := queryInt(c, "page", 1)
	size := queryInt(c, "size", defaultPageSize)
	if size > maxPageSize {
		size = maxPageSize
	}
	// Pages whose skip would overflow lie past any stored test.
	if page-1 > math.MaxInt64/size {
		c.JSON(http.StatusOK, []models.LabTest{})
		return
	}

	tests, err := h.Tests.Page(c.Request.Context(), page, size)
	if err != nil {
		h.fail(c, err, "Failed to retrieve tests")
		return
	}
	c.JSON(http.StatusOK, tests)
}

// queryInt reads a positive integer query parameter, falling back to def.
func queryInt(c *gin.Context, key string, def int64) int64 {
	v, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil || v < 1 {
		return def
	}
	return v
}

func (h *Handler) CountTests(c *gin.Context) {
	count, err := h.Tests.Count(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to count tests")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetTest answers null for an unknown id.
func (h *Handler) GetTest(c *gin.Context) {
	test, err := h.Tests.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to retrieve test")
		return
	}
	c.JSON(http.StatusOK, test)
}

func (h *Handler) CreateTest(c *gin.Context) {
	test, ok := bindTest(c)
	if !ok {
		return
	}
	test.ID = primitive.NilObjectID

	result, err := h.Tests.Create(c.Request.Context(), test)
	if err != nil {
		h.fail(c, err, "Failed to create test")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) UpdateTest(c *gin.Context) {
	test, ok := bindTest(c)
	if !ok {
		return
	}

	result, err := h.Tests.Update(c.Request.Context(), c.Param("id"), test)
	if err != nil {
		h.fail(c, err, "Failed to update test")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteTest(c *gin.Context) {
	result, err := h.Tests.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to delete test")
		return
	}
	c.JSON(http.StatusOK, result)
}

func bindTest(c *gin.Context) (*models.LabTest, bool) {
	var test models.LabTest
	if err := c.ShouldBindJSON(&test); err != nil {
		badRequest(c, "Invalid request body")
		return nil, false
	}
	if test.Slots < 0 {
		badRequest(c, "slots cannot be negative")
		return nil, false
	}
	return &test, true
}
