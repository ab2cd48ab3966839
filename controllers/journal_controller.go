package controllers

import (
	"net/http"
	"time"

	"github.com/Jgauri24/fitfusion-backend/models"
	"github.com/Jgauri24/fitfusion-backend/services"

	"github.com/gin-gonic/gin"
)

type JournalController struct {
	GW *services.RecordGateway
}

func NewJournalController(gw *services.RecordGateway) *JournalController {
	return &JournalController{GW: gw}
}

type journalInput struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

func (h *JournalController) CreateEntry(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input journalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := models.JournalRecord{
		UserID:    userID,
		Title:     input.Title,
		Body:      input.Body,
		CreatedAt: time.Now(),
	}
	if err := h.GW.CreateJournal(c.Request.Context(), &rec); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *JournalController) ListEntries(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := time.Now()
	recs, err := h.GW.JournalsInRange(c.Request.Context(), &userID, now.AddDate(0, 0, -30), now)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}
