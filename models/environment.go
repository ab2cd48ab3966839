package models

import (
	"gorm.io/gorm"
)

// A sensor snapshot for one hostel zone. Multiple readings accumulate per
// zone over time; the "current" reading is the most recent one.
type EnvironmentReading struct {
	gorm.Model
	Zone        string  `gorm:"size:40;index;not null" json:"zone"`
	AQI         int     `json:"aqi"`
	NoiseDB     int     `json:"noise_db"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}
