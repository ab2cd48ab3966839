package models

import "gorm.io/gorm"

// A catalog entry the mess/canteen menu is built from.
type FoodItem struct {
	gorm.Model
	Name           string `gorm:"uniqueIndex;not null"`
	Category       string
	CaloriesPer100 float64
}
