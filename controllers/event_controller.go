package controllers

import (
	"net/http"
	"strconv"

	"github.com/Jgauri24/fitfusion-backend/services"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	Svc *services.EventService
}

func NewEventController(svc *services.EventService) *EventController {
	return &EventController{Svc: svc}
}

func (h *EventController) ListEvents(c *gin.Context) {
	events, err := h.Svc.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventController) JoinEvent(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.Svc.Join(c.Request.Context(), userID, uint(eventID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "joined"})
}

func (h *EventController) LeaveEvent(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.Svc.Leave(c.Request.Context(), userID, uint(eventID)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
