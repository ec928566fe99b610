package models

import (
	"time"

	"github.com/google/uuid"
)

// Rarity labels a pilot's tier bracket.
type Rarity string

const (
	RarityLegendary Rarity = "legendary"
	RarityEpic      Rarity = "epic"
	RarityRare      Rarity = "rare"
	RarityCommon    Rarity = "common"
)

// Pilot is a driver catalog entry. Tier runs 1 (best) through 5; rarity and
// the five skill ratings are derived once at creation and never mutated.
type Pilot struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Nationality    string    `json:"nationality"`
	Tier           int       `json:"tier"`
	Rarity         Rarity    `json:"rarity"`
	Pace           int       `json:"pace"`
	TireManagement int       `json:"tire_management"`
	Overtaking     int       `json:"overtaking"`
	Defense        int       `json:"defense"`
	WetSkill       int       `json:"wet_skill"`
	BaseSalary     int64     `json:"base_salary"`
	CreatedAt      time.Time `json:"created_at"`
}
