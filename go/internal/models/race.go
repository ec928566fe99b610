package models

import (
	"time"

	"github.com/google/uuid"
)

// Weather conditions for a race.
type Weather string

const (
	WeatherDry   Weather = "DRY"
	WeatherWet   Weather = "WET"
	WeatherMixed Weather = "MIXED"
)

// Race is a single simulated event between two teams.
type Race struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Track       string     `json:"track"`
	Weather     Weather    `json:"weather"`
	Temperature int        `json:"temperature"`
	Laps        int        `json:"laps"`
	IsActive    bool       `json:"is_active"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

// RaceParticipant is one team's entry: which pilot and car it races with.
type RaceParticipant struct {
	ID      uuid.UUID `json:"id"`
	RaceID  uuid.UUID `json:"race_id"`
	TeamID  uuid.UUID `json:"team_id"`
	PilotID uuid.UUID `json:"pilot_id"`
	CarID   uuid.UUID `json:"car_id"`
}

// RaceResult is one participant's final classification. DNF entries sort
// after all finishers regardless of time.
type RaceResult struct {
	ID        uuid.UUID `json:"id"`
	RaceID    uuid.UUID `json:"race_id"`
	TeamID    uuid.UUID `json:"team_id"`
	PilotID   uuid.UUID `json:"pilot_id"`
	Position  int       `json:"position"`
	TotalTime float64   `json:"total_time"`
	LapTimes  []float64 `json:"lap_times,omitempty"`
	DNF       bool      `json:"dnf"`
	DNFReason *string   `json:"dnf_reason,omitempty"`
}
