package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Jgauri24/fitfusion-backend/models"
	"github.com/Jgauri24/fitfusion-backend/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	GW *services.RecordGateway
}

func NewNutritionController(gw *services.RecordGateway) *NutritionController {
	return &NutritionController{GW: gw}
}

type logMealInput struct {
	MealType string    `json:"meal_type" binding:"required"`
	FoodName string    `json:"food_name"`
	Calories float64   `json:"calories" binding:"min=0"`
	LoggedAt time.Time `json:"logged_at"`
}

func (h *NutritionController) LogMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input logMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidMealType(input.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal type"})
		return
	}
	if input.LoggedAt.IsZero() {
		input.LoggedAt = time.Now()
	}

	rec := models.NutritionRecord{
		UserID:   userID,
		MealType: input.MealType,
		FoodName: input.FoodName,
		Calories: input.Calories,
		LoggedAt: input.LoggedAt,
	}
	if err := h.GW.CreateNutrition(c.Request.Context(), &rec); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *NutritionController) ListMeals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := time.Now()
	recs, err := h.GW.NutritionInRange(c.Request.Context(), &userID, now.AddDate(0, 0, -7), now)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *NutritionController) DeleteMeal(c *gin.Context) {
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

	if err := h.GW.DeleteNutritionForOwner(c.Request.Context(), userID, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
