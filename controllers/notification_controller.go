package controllers

import (
	"net/http"

	"github.com/Jgauri24/fitfusion-backend/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Svc *services.NotificationService
}

func NewNotificationController(svc *services.NotificationService) *NotificationController {
	return &NotificationController{Svc: svc}
}

// GetNotifications re-evaluates the rule set on every call; there is no
// stored notification log.
func (h *NotificationController) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Evaluate(c.Request.Context()))
}
