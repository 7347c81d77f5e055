package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/echoslice/internal/database"
	"github.com/example/echoslice/internal/logger"
	"github.com/example/echoslice/pkg/models"
)

// ClipHandler serves clip listing and authoring.
type ClipHandler struct {
	store *database.Store
	log   *logger.Logger
}

func NewClipHandler(store *database.Store, log *logger.Logger) *ClipHandler {
	return &ClipHandler{store: store, log: log}
}

// List returns every clip, newest first.
func (h *ClipHandler) List(c *gin.Context) {
	clips, err := h.store.AllClips(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to list clips", "error", err)
		writeError(c, err)
		return
	}
	if clips == nil {
		clips = []models.Clip{}
	}
	c.JSON(http.StatusOK, clips)
}

type createClipRequest struct {
	VideoID  string `json:"videoId" binding:"required"`
	StartSec int    `json:"startSec"`
	EndSec   int    `json:"endSec" binding:"required"`
	Title    string `json:"title"`
}

// Create inserts a new clip.
func (h *ClipHandler) Create(c *gin.Context) {
	var req createClipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if req.EndSec <= req.StartSec {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "endSec must be greater than startSec"})
		return
	}

	clip := &models.Clip{
		VideoID:  req.VideoID,
		StartSec: req.StartSec,
		EndSec:   req.EndSec,
		Title:    req.Title,
	}
	if err := h.store.CreateClip(c.Request.Context(), clip); err != nil {
		h.log.Errorw("failed to create clip", "error", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, clip)
}
