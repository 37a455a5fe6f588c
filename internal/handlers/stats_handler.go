package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const mostBookedLimit = 5

func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.Stats.AdminStats(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to compute admin stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) BookedStats(c *gin.Context) {
	stats, err := h.Stats.BookedStats(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to compute booking stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) MostBookedTests(c *gin.Context) {
	tests, err := h.Stats.MostBookedTests(c.Request.Context(), mostBookedLimit)
	if err != nil {
		h.fail(c, err, "Error retrieving most booked tests")
		return
	}
	c.JSON(http.StatusOK, tests)
}
