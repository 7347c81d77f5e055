package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/echoslice/internal/logger"
	"github.com/example/echoslice/internal/queue"
	"github.com/example/echoslice/pkg/models"
)

// ReviewHandler serves review recording and listing.
type ReviewHandler struct {
	service *queue.Service
	log     *logger.Logger
}

func NewReviewHandler(service *queue.Service, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{service: service, log: log}
}

type createReviewRequest struct {
	ClipID int64 `json:"clipId" binding:"required"`
	Score  int   `json:"score"`
}

// Create records a review. Score range is checked before the clip lookup, so
// a bad score on an unknown clip still returns 400.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	review, err := h.service.RecordReview(c.Request.Context(), req.ClipID, req.Score)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// ListToday returns today's reviews, most recent first.
func (h *ReviewHandler) ListToday(c *gin.Context) {
	reviews, err := h.service.ListTodayReviews(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to list today reviews", "error", err)
		writeError(c, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}
