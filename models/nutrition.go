package models

import (
	"time"

	"gorm.io/gorm"
)

// One Meal entry (breakfast/lunch/…)
type NutritionRecord struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	MealType string    `gorm:"size:20;not null" json:"meal_type"` // "breakfast"|"lunch"|"dinner"|"snack"
	FoodName string    `json:"food_name"`
	Calories float64   `json:"calories"`
	LoggedAt time.Time `gorm:"index;not null" json:"logged_at"`
}

var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

func ValidMealType(t string) bool {
	for _, known := range MealTypes {
		if t == known {
			return true
		}
	}
	return false
}
