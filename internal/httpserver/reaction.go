package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reactionsvc "storefront/internal/service/reaction"
)

type reactionHandlers struct {
	reactions *reactionsvc.Service
}

type reactionRequest struct {
	TargetKind string `json:"targetKind" binding:"required"`
	TargetID   string `json:"targetId" binding:"required"`
	Polarity   string `json:"polarity"`
}

func (h *reactionHandlers) react(c *gin.Context) {
	u, _ := currentUser(c)
	var req reactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if _, err := uuid.Parse(req.TargetID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetId must be a UUID"})
		return
	}
	reaction, err := h.reactions.React(c.Request.Context(), u.ID, req.TargetKind, req.TargetID, req.Polarity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reaction)
}

func (h *reactionHandlers) unreact(c *gin.Context) {
	u, _ := currentUser(c)
	var req reactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.reactions.Unreact(c.Request.Context(), u.ID, req.TargetKind, req.TargetID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *reactionHandlers) summary(c *gin.Context) {
	kind := c.Param("kind")
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	viewerID := ""
	if u, ok := currentUser(c); ok {
		viewerID = u.ID
	}
	summary, err := h.reactions.SummaryFor(c.Request.Context(), kind, id, viewerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
