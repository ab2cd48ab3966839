package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Jgauri24/fitfusion-backend/models"
	"github.com/Jgauri24/fitfusion-backend/services"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	GW *services.RecordGateway
}

func NewActivityController(gw *services.RecordGateway) *ActivityController {
	return &ActivityController{GW: gw}
}

type logActivityInput struct {
	ActivityType   string    `json:"activity_type" binding:"required"`
	DurationMins   int       `json:"duration_mins" binding:"required,min=1"`
	CaloriesBurned float64   `json:"calories_burned" binding:"min=0"`
	LoggedAt       time.Time `json:"logged_at"`
}

func (h *ActivityController) LogActivity(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input logActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidActivityType(input.ActivityType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown activity type"})
		return
	}
	if input.LoggedAt.IsZero() {
		input.LoggedAt = time.Now()
	}

	rec := models.ActivityRecord{
		UserID:         userID,
		ActivityType:   input.ActivityType,
		DurationMins:   input.DurationMins,
		CaloriesBurned: input.CaloriesBurned,
		LoggedAt:       input.LoggedAt,
	}
	if err := h.GW.CreateActivity(c.Request.Context(), &rec); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *ActivityController) ListActivities(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := time.Now()
	recs, err := h.GW.ActivitiesInRange(c.Request.Context(), &userID, now.AddDate(0, 0, -7), now)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *ActivityController) DeleteActivity(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.GW.DeleteActivityForOwner(c.Request.Context(), userID, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
