package race

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/DomonziHUN/f1-manager/go/internal/models"
	"github.com/DomonziHUN/f1-manager/go/internal/team"
)

const defaultLaps = 10

// RaceRepository is the persistence surface the app layer depends on.
type RaceRepository interface {
	CreateRaceWithParticipants(ctx context.Context, race models.Race, entries []Entry) (*models.Race, error)
	GetRace(ctx context.Context, id uuid.UUID) (*models.Race, error)
	GetEntries(ctx context.Context, raceID uuid.UUID) ([]Entry, error)
	SaveOutcomes(ctx context.Context, raceID uuid.UUID, outcomes []Outcome) error
	GetResults(ctx context.Context, raceID uuid.UUID) ([]ResultRow, error)
}

// GridProvider supplies team grid entries and AI opponents.
type GridProvider interface {
	GetTeamByUser(ctx context.Context, userID uuid.UUID) (*models.Team, error)
	GetRaceEntry(ctx context.Context, teamID uuid.UUID) (*team.RaceEntry, error)
	CreateAIOpponent(ctx context.Context) (*team.RaceEntry, error)
}

type App struct {
	repo   RaceRepository
	teams  GridProvider
	engine *Engine
	clock  clockwork.Clock
	laps   int
}

func NewApp(repo RaceRepository, teams GridProvider, engine *Engine, clock clockwork.Clock, laps int) *App {
	if laps <= 0 {
		laps = defaultLaps
	}
	return &App{
		repo:   repo,
		teams:  teams,
		engine: engine,
		clock:  clock,
		laps:   laps,
	}
}

// CreateQuickRace sets up a 1v1 race between the caller's team and either
// the named opponent or a freshly generated AI rival.
func (a *App) CreateQuickRace(ctx context.Context, userID uuid.UUID, opponentTeamID *uuid.UUID) (*models.Race, error) {
	userTeam, err := a.teams.GetTeamByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	userEntry, err := a.teams.GetRaceEntry(ctx, userTeam.ID)
	if err != nil {
		return nil, err
	}

	var opponent *team.RaceEntry
	if opponentTeamID != nil {
		opponent, err = a.teams.GetRaceEntry(ctx, *opponentTeamID)
		if err != nil {
			return nil, ErrOpponentNotFound
		}
	} else {
		opponent, err = a.teams.CreateAIOpponent(ctx)
		if err != nil {
			return nil, err
		}
	}

	race := models.Race{
		Name:        fmt.Sprintf("Quick Race - %s vs %s", userEntry.Team.Name, opponent.Team.Name),
		Track:       a.engine.RandomTrack(),
		Weather:     a.engine.RandomWeather(),
		Temperature: a.engine.RandomTemperature(),
		Laps:        a.laps,
		IsActive:    true,
		StartTime:   a.clock.Now(),
	}

	created, err := a.repo.CreateRaceWithParticipants(ctx, race, []Entry{
		entryFromGrid(userEntry),
		entryFromGrid(opponent),
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("race_id", created.ID.String()).
		Str("track", created.Track).
		Str("weather", string(created.Weather)).
		Msg("quick race created")

	return created, nil
}

// SimulationResult is what simulating a race returns to the caller.
type SimulationResult struct {
	RaceID   uuid.UUID `json:"race_id"`
	Outcomes []Outcome `json:"results"`
}

// SimulateRace runs the full simulation for an active race, stores the
// classification and closes the race.
func (a *App) SimulateRace(ctx context.Context, raceID uuid.UUID) (*SimulationResult, error) {
	race, err := a.repo.GetRace(ctx, raceID)
	if err != nil {
		return nil, err
	}
	if !race.IsActive {
		return nil, ErrRaceFinished
	}

	entries, err := a.repo.GetEntries(ctx, raceID)
	if err != nil {
		return nil, err
	}

	outcomes := a.engine.Simulate(entries, race.Weather, race.Laps)

	if err := a.repo.SaveOutcomes(ctx, raceID, outcomes); err != nil {
		return nil, err
	}

	log.Info().
		Str("race_id", raceID.String()).
		Int("participants", len(outcomes)).
		Msg("race simulated")

	return &SimulationResult{RaceID: raceID, Outcomes: outcomes}, nil
}

// ResultsView is a finished race with its classification.
type ResultsView struct {
	Race    models.Race `json:"race"`
	Results []ResultRow `json:"results"`
}

func (a *App) GetRaceResults(ctx context.Context, raceID uuid.UUID) (*ResultsView, error) {
	race, err := a.repo.GetRace(ctx, raceID)
	if err != nil {
		return nil, err
	}

	results, err := a.repo.GetResults(ctx, raceID)
	if err != nil {
		return nil, err
	}

	return &ResultsView{Race: *race, Results: results}, nil
}

func entryFromGrid(e *team.RaceEntry) Entry {
	return Entry{
		TeamID:  e.Team.ID,
		PilotID: e.Pilot.ID,
		Pilot:   e.Pilot,
		Car:     e.Car,
	}
}
