package domain

import (
	"time"
)

type NGOCategory string

const (
	CategoryAir   NGOCategory = "Air"
	CategoryWater NGOCategory = "Water"
	CategoryWaste NGOCategory = "Waste"
	CategoryMulti NGOCategory = "Multi"
)

type NGO struct {
	ID             NGOID
	Name           string
	RegistrationID string
	Category       NGOCategory
	City           string
	State          string
	Verified       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
