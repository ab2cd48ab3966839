package controllers

import (
	"net/http"
	"strconv"

	"github.com/Jgauri24/fitfusion-backend/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Svc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Svc: svc}
}

type reportInput struct {
	Category string `json:"category"`
	Body     string `json:"body" binding:"required"`
}

func (h *ReportController) SubmitReport(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input reportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.Svc.Submit(c.Request.Context(), userID, input.Category, input.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *ReportController) RecentReports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	reports, err := h.Svc.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}
