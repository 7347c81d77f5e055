package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/echoslice/internal/database"
)

// HealthHandler serves liveness probes for the process and the database.
type HealthHandler struct {
	store *database.Store
}

func NewHealthHandler(store *database.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health reports process liveness.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "echoslice-backend"})
}

// DBHealth pings the database.
func (h *HealthHandler) DBHealth(c *gin.Context) {
	if err := h.store.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"db": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"db": "ok", "path": h.store.Path()})
}
