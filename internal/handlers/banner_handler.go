package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/primelab-api/internal/models"
)

func (h *Handler) ListBanners(c *gin.Context) {
	banners, err := h.Banners.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to retrieve banners")
		return
	}
	c.JSON(http.StatusOK, banners)
}

// CreateBanner stores a banner inactive; use ActivateBanner to show it.
func (h *Handler) CreateBanner(c *gin.Context) {
	banner, ok := bindDocument(c)
	if !ok {
		return
	}
	banner[models.FieldIsActive] = false

	result, err := h.Banners.Create(c.Request.Context(), banner)
	if err != nil {
		h.fail(c, err, "Failed to create banner")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteBanner(c *gin.Context) {
	result, err := h.Banners.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to delete banner")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) ActivateBanner(c *gin.Context) {
	result, err := h.Banners.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to activate banner")
		return
	}
	c.JSON(http.StatusOK, result)
}
