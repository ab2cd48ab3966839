package controllers

import (
	"net/http"

	"github.com/Jgauri24/fitfusion-backend/models"
	"github.com/Jgauri24/fitfusion-backend/services"

	"github.com/gin-gonic/gin"
)

type EnvironmentController struct {
	GW *services.RecordGateway
}

func NewEnvironmentController(gw *services.RecordGateway) *EnvironmentController {
	return &EnvironmentController{GW: gw}
}

type readingInput struct {
	Zone        string  `json:"zone" binding:"required"`
	AQI         int     `json:"aqi" binding:"min=0"`
	NoiseDB     int     `json:"noise_db" binding:"min=0"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity" binding:"min=0,max=100"`
}

func (h *EnvironmentController) IngestReading(c *gin.Context) {
	var input readingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := models.EnvironmentReading{
		Zone:        input.Zone,
		AQI:         input.AQI,
		NoiseDB:     input.NoiseDB,
		Temperature: input.Temperature,
		Humidity:    input.Humidity,
	}
	if err := h.GW.CreateEnvironmentReading(c.Request.Context(), &rec); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// CurrentReadings returns the most recent reading per zone.
func (h *EnvironmentController) CurrentReadings(c *gin.Context) {
	recs, err := h.GW.LatestEnvironmentReadings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}
