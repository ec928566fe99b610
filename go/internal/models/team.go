package models

import (
	"time"

	"github.com/google/uuid"
)

// Team is the single team owned by a user. Budget is the primary currency
// balance used for auction bids.
type Team struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	Budget         int64     `json:"budget"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	CreatedAt      time.Time `json:"created_at"`
}

// Car holds the four car stats used by the race engine.
type Car struct {
	ID          uuid.UUID `json:"id"`
	TeamID      uuid.UUID `json:"team_id"`
	Engine      int       `json:"engine"`
	Aero        int       `json:"aero"`
	Chassis     int       `json:"chassis"`
	Reliability int       `json:"reliability"`
	CreatedAt   time.Time `json:"created_at"`
}

// OwnedPilot links a pilot to a team. At most two links per team may be
// active at once; active pilots are eligible to race.
type OwnedPilot struct {
	ID         uuid.UUID `json:"id"`
	TeamID     uuid.UUID `json:"team_id"`
	PilotID    uuid.UUID `json:"pilot_id"`
	IsActive   bool      `json:"is_active"`
	AcquiredAt time.Time `json:"acquired_at"`

	Pilot *Pilot `json:"pilot,omitempty"`
}
