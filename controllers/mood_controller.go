package controllers

import (
	"net/http"
	"time"

	"github.com/Jgauri24/fitfusion-backend/models"
	"github.com/Jgauri24/fitfusion-backend/services"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	GW *services.RecordGateway
}

func NewMoodController(gw *services.RecordGateway) *MoodController {
	return &MoodController{GW: gw}
}

type checkInInput struct {
	MoodScore *int   `json:"mood_score" binding:"required"`
	Note      string `json:"note"`
}

func (h *MoodController) CheckIn(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input checkInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *input.MoodScore < 0 || *input.MoodScore > 4 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mood_score must be between 0 and 4"})
		return
	}

	rec := models.MoodRecord{
		UserID:    userID,
		MoodScore: *input.MoodScore,
		Note:      input.Note,
		CreatedAt: time.Now(),
	}
	if err := h.GW.CreateMood(c.Request.Context(), &rec); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *MoodController) ListCheckIns(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := time.Now()
	recs, err := h.GW.MoodsInRange(c.Request.Context(), &userID, now.AddDate(0, 0, -7), now)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}
