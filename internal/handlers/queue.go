package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/echoslice/internal/logger"
	"github.com/example/echoslice/internal/queue"
	"github.com/example/echoslice/pkg/models"
)

// QueueHandler serves the daily queue endpoints.
type QueueHandler struct {
	service *queue.Service
	log     *logger.Logger
}

func NewQueueHandler(service *queue.Service, log *logger.Logger) *QueueHandler {
	return &QueueHandler{service: service, log: log}
}

// GetToday returns the current UTC day's queue, building it on first access.
func (h *QueueHandler) GetToday(c *gin.Context) {
	items, err := h.service.GetToday(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to get today queue", "error", err)
		writeError(c, err)
		return
	}
	if items == nil {
		items = []models.QueueItem{}
	}
	c.JSON(http.StatusOK, items)
}

// Reroll redraws the new-clip slots of today's queue.
func (h *QueueHandler) Reroll(c *gin.Context) {
	items, err := h.service.RerollToday(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to reroll today queue", "error", err)
		writeError(c, err)
		return
	}
	if items == nil {
		items = []models.QueueItem{}
	}
	c.JSON(http.StatusOK, items)
}
