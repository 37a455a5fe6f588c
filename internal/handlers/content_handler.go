package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/primelab-api/internal/models"
)

func (h *Handler) ListRecommendations(c *gin.Context) {
	recs, err := h.Content.Recommendations(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to retrieve recommendations")
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.Content.Doctors(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to retrieve doctors")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) CreateFeedback(c *gin.Context) {
	feedback, ok := bindDocument(c)
	if !ok {
		return
	}

	result, err := h.Content.CreateFeedback(c.Request.Context(), feedback)
	if err != nil {
		h.fail(c, err, "Failed to save feedback")
		return
	}
	c.JSON(http.StatusOK, result)
}

// bindDocument reads a JSON object body as-is, minus any client _id.
func bindDocument(c *gin.Context) (models.Document, bool) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil || doc == nil {
		badRequest(c, "Invalid request body")
		return nil, false
	}
	doc.ClearID()
	return doc, true
}
