package pilots

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/DomonziHUN/f1-manager/go/internal/models"
)

// TierConfig describes how a tier scales a pilot's canonical base stats.
type TierConfig struct {
	Rarity           models.Rarity
	StatMultiplier   float64
	SalaryMultiplier float64
}

// TierConfigs maps tier (1 best .. 5 worst) to its scaling config.
var TierConfigs = map[int]TierConfig{
	1: {Rarity: models.RarityLegendary, StatMultiplier: 1.0, SalaryMultiplier: 3.0},
	2: {Rarity: models.RarityEpic, StatMultiplier: 0.85, SalaryMultiplier: 2.0},
	3: {Rarity: models.RarityRare, StatMultiplier: 0.7, SalaryMultiplier: 1.2},
	4: {Rarity: models.RarityCommon, StatMultiplier: 0.55, SalaryMultiplier: 0.7},
	5: {Rarity: models.RarityCommon, StatMultiplier: 0.4, SalaryMultiplier: 0.3},
}

// BaseStats is the canonical tier-1 stat row for a catalog driver.
type BaseStats struct {
	Pace       int
	Tire       int
	Overtaking int
	Defense    int
	Wet        int
	BaseSalary int64
}

// CatalogEntry derives one tier variant of a catalog driver from its base
// stat row. Stats and salary are rounded, not truncated.
func CatalogEntry(name, nationality string, base BaseStats, tier int) (CreatePilotRequest, error) {
	cfg, ok := TierConfigs[tier]
	if !ok {
		return CreatePilotRequest{}, fmt.Errorf("unknown tier %d", tier)
	}

	scale := func(v int) int {
		return int(math.Round(float64(v) * cfg.StatMultiplier))
	}

	return CreatePilotRequest{
		Name:           name,
		Nationality:    nationality,
		Tier:           tier,
		Rarity:         cfg.Rarity,
		Pace:           scale(base.Pace),
		TireManagement: scale(base.Tire),
		Overtaking:     scale(base.Overtaking),
		Defense:        scale(base.Defense),
		WetSkill:       scale(base.Wet),
		BaseSalary:     int64(math.Round(float64(base.BaseSalary) * cfg.SalaryMultiplier)),
	}, nil
}

var aiPilotNames = []string{
	"Alex Storm", "Max Thunder", "Luna Speed", "Rio Flash",
	"Nova Drift", "Zara Boost", "Kai Turbo", "Ace Lightning",
}

// StarterPilot generates one of the two rookie drivers every new team gets.
// Stats land in 45-64.
func StarterPilot(teamName string, index int, rng *rand.Rand) CreatePilotRequest {
	roll := func() int { return 45 + rng.Intn(20) }
	return CreatePilotRequest{
		Name:           fmt.Sprintf("%s Driver #%d", teamName, index),
		Nationality:    "UNK",
		Tier:           1,
		Rarity:         models.RarityCommon,
		Pace:           roll(),
		TireManagement: roll(),
		Overtaking:     roll(),
		Defense:        roll(),
		WetSkill:       roll(),
		BaseSalary:     500000,
	}
}

// AIPilot generates a throwaway driver for an AI opponent. Stats land in
// 40-79.
func AIPilot(rng *rand.Rand) CreatePilotRequest {
	roll := func() int { return 40 + rng.Intn(40) }
	return CreatePilotRequest{
		Name:           aiPilotNames[rng.Intn(len(aiPilotNames))],
		Nationality:    "AI",
		Tier:           1,
		Rarity:         models.RarityCommon,
		Pace:           roll(),
		TireManagement: roll(),
		Overtaking:     roll(),
		Defense:        roll(),
		WetSkill:       roll(),
		BaseSalary:     500000,
	}
}
