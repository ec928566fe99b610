package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DomonziHUN/f1-manager/go/internal/dbconfig"
	"github.com/DomonziHUN/f1-manager/go/internal/pilots"
)

type baseDriver struct {
	Name        string
	Nationality string
	Stats       pilots.BaseStats
}

// Canonical tier-1 stat rows. Every driver is seeded in all five tiers.
var baseDrivers = []baseDriver{
	{"Max Verstappen", "NED", pilots.BaseStats{Pace: 98, Tire: 92, Overtaking: 95, Defense: 94, Wet: 96, BaseSalary: 15000000}},
	{"Lewis Hamilton", "GBR", pilots.BaseStats{Pace: 95, Tire: 98, Overtaking: 96, Defense: 92, Wet: 98, BaseSalary: 14000000}},
	{"Charles Leclerc", "MON", pilots.BaseStats{Pace: 94, Tire: 88, Overtaking: 92, Defense: 89, Wet: 91, BaseSalary: 12000000}},
	{"Lando Norris", "GBR", pilots.BaseStats{Pace: 88, Tire: 92, Overtaking: 85, Defense: 87, Wet: 90, BaseSalary: 8500000}},
	{"Oscar Piastri", "AUS", pilots.BaseStats{Pace: 82, Tire: 78, Overtaking: 80, Defense: 83, Wet: 75, BaseSalary: 3200000}},
	{"George Russell", "GBR", pilots.BaseStats{Pace: 86, Tire: 89, Overtaking: 84, Defense: 88, Wet: 87, BaseSalary: 7000000}},
	{"Carlos Sainz", "ESP", pilots.BaseStats{Pace: 87, Tire: 91, Overtaking: 88, Defense: 90, Wet: 89, BaseSalary: 9000000}},
	{"Fernando Alonso", "ESP", pilots.BaseStats{Pace: 91, Tire: 96, Overtaking: 94, Defense: 95, Wet: 94, BaseSalary: 10000000}},
	{"Sergio Perez", "MEX", pilots.BaseStats{Pace: 84, Tire: 87, Overtaking: 81, Defense: 86, Wet: 83, BaseSalary: 6500000}},
	{"Valtteri Bottas", "FIN", pilots.BaseStats{Pace: 83, Tire: 85, Overtaking: 79, Defense: 82, Wet: 84, BaseSalary: 5000000}},
	{"Alex Albon", "THA", pilots.BaseStats{Pace: 79, Tire: 82, Overtaking: 77, Defense: 85, Wet: 80, BaseSalary: 2500000}},
	{"Yuki Tsunoda", "JPN", pilots.BaseStats{Pace: 76, Tire: 74, Overtaking: 78, Defense: 72, Wet: 76, BaseSalary: 1800000}},
	{"Logan Sargeant", "USA", pilots.BaseStats{Pace: 71, Tire: 69, Overtaking: 68, Defense: 70, Wet: 67, BaseSalary: 1200000}},
	{"Nico Hulkenberg", "GER", pilots.BaseStats{Pace: 80, Tire: 88, Overtaking: 82, Defense: 87, Wet: 85, BaseSalary: 3000000}},
	{"Oliver Bearman", "GBR", pilots.BaseStats{Pace: 68, Tire: 65, Overtaking: 70, Defense: 67, Wet: 64, BaseSalary: 800000}},
	{"Liam Lawson", "NZL", pilots.BaseStats{Pace: 72, Tire: 70, Overtaking: 74, Defense: 69, Wet: 71, BaseSalary: 1000000}},
}

func main() {
	ctx := context.Background()

	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	inserted, skipped, errs := 0, 0, 0
	for _, driver := range baseDrivers {
		for tier := 1; tier <= 5; tier++ {
			entry, err := pilots.CatalogEntry(driver.Name, driver.Nationality, driver.Stats, tier)
			if err != nil {
				fmt.Fprintf(os.Stderr, "derive %s tier %d: %v\n", driver.Name, tier, err)
				errs++
				continue
			}

			tag, err := pool.Exec(ctx, `
            INSERT INTO pilots (
              name, nationality, tier, rarity,
              pace, tire_management, overtaking, defense, wet_skill, base_salary
            ) SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
            WHERE NOT EXISTS (
              SELECT 1 FROM pilots WHERE name = $1 AND tier = $3
            )`,
				entry.Name, entry.Nationality, entry.Tier, string(entry.Rarity),
				entry.Pace, entry.TireManagement, entry.Overtaking, entry.Defense,
				entry.WetSkill, entry.BaseSalary,
			)
			if err != nil {
				fmt.Fprintf(os.Stderr, "insert %s tier %d: %v\n", driver.Name, tier, err)
				errs++
				continue
			}
			if tag.RowsAffected() == 0 {
				skipped++
			} else {
				inserted++
			}
		}
	}

	fmt.Printf("pilots seeded: %d inserted, %d skipped, %d errors\n", inserted, skipped, errs)
	if errs > 0 {
		os.Exit(1)
	}
}
