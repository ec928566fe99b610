package race

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"

	"github.com/DomonziHUN/f1-manager/go/internal/models"
	"github.com/DomonziHUN/f1-manager/go/internal/race/db"
	"github.com/DomonziHUN/f1-manager/go/internal/sqlutil"
)

type Repository struct {
	database *sql.DB
	queries  *db.Queries
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		database: database,
		queries:  db.New(database),
	}
}

// ResultRow is one classified finisher with display names attached.
type ResultRow struct {
	Result    models.RaceResult `json:"result"`
	TeamName  string            `json:"team_name"`
	PilotName string            `json:"pilot_name"`
}

// CreateRaceWithParticipants inserts the race and both grid entries in one
// transaction.
func (r *Repository) CreateRaceWithParticipants(ctx context.Context, race models.Race, entries []Entry) (*models.Race, error) {
	var created *models.Race

	err := sqlutil.Run(ctx, r.database, newTxQueries, func(q *db.Queries) error {
		row, err := q.CreateRace(ctx, db.CreateRaceParams{
			Name:        race.Name,
			Track:       race.Track,
			Weather:     string(race.Weather),
			Temperature: int32(race.Temperature),
			Laps:        int32(race.Laps),
			StartTime:   race.StartTime,
		})
		if err != nil {
			return fmt.Errorf("failed to create race: %w", err)
		}

		for _, entry := range entries {
			if _, err := q.CreateRaceParticipant(ctx, db.CreateRaceParticipantParams{
				RaceID:  row.ID,
				TeamID:  entry.TeamID,
				PilotID: entry.Pilot.ID,
				CarID:   entry.Car.ID,
			}); err != nil {
				return fmt.Errorf("failed to create race participant: %w", err)
			}
		}

		created = dbRaceToModel(row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetRace(ctx context.Context, id uuid.UUID) (*models.Race, error) {
	race, err := r.queries.GetRace(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRaceNotFound
		}
		return nil, fmt.Errorf("failed to get race: %w", err)
	}
	return dbRaceToModel(race), nil
}

// GetEntries loads the race's grid entries with pilot and car stats.
func (r *Repository) GetEntries(ctx context.Context, raceID uuid.UUID) ([]Entry, error) {
	rows, err := r.queries.GetRaceParticipants(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get race participants: %w", err)
	}

	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = Entry{
			TeamID:  row.Team.ID,
			PilotID: row.Pilot.ID,
			Pilot:   *dbPilotToModel(row.Pilot),
			Car:     *dbCarToModel(row.Car),
		}
	}
	return entries, nil
}

// SaveOutcomes persists the classification and closes the race in one
// transaction. A DNF is stored with zero total time.
func (r *Repository) SaveOutcomes(ctx context.Context, raceID uuid.UUID, outcomes []Outcome) error {
	return sqlutil.Run(ctx, r.database, newTxQueries, func(q *db.Queries) error {
		for _, o := range outcomes {
			lapTimes, err := marshalLapTimes(o.LapTimes)
			if err != nil {
				return err
			}

			totalTime := o.TotalTime
			if o.DNF {
				totalTime = 0
			}

			if _, err := q.CreateRaceResult(ctx, db.CreateRaceResultParams{
				RaceID:    raceID,
				TeamID:    o.TeamID,
				PilotID:   o.PilotID,
				Position:  int32(o.Position),
				TotalTime: totalTime,
				LapTimes:  lapTimes,
				Dnf:       o.DNF,
				DnfReason: dnfReason(o),
			}); err != nil {
				return fmt.Errorf("failed to create race result: %w", err)
			}
		}

		if err := q.FinishRace(ctx, raceID); err != nil {
			return fmt.Errorf("failed to finish race: %w", err)
		}
		return nil
	})
}

// GetResults returns the classification ordered by position.
func (r *Repository) GetResults(ctx context.Context, raceID uuid.UUID) ([]ResultRow, error) {
	rows, err := r.queries.GetRaceResults(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get race results: %w", err)
	}

	results := make([]ResultRow, len(rows))
	for i, row := range rows {
		result, err := dbResultToModel(row.RaceResult)
		if err != nil {
			return nil, err
		}
		results[i] = ResultRow{
			Result:    *result,
			TeamName:  row.TeamName,
			PilotName: row.PilotName,
		}
	}
	return results, nil
}

func newTxQueries(tx *sql.Tx) *db.Queries {
	return db.New(tx)
}

func dnfReason(o Outcome) sql.NullString {
	if !o.DNF {
		return sql.NullString{}
	}
	return sqlutil.ToSqlString(&o.DNFReason)
}

func marshalLapTimes(lapTimes []float64) (pqtype.NullRawMessage, error) {
	if lapTimes == nil {
		return pqtype.NullRawMessage{}, nil
	}
	raw, err := json.Marshal(lapTimes)
	if err != nil {
		return pqtype.NullRawMessage{}, fmt.Errorf("failed to marshal lap times: %w", err)
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}, nil
}

func dbRaceToModel(race db.Race) *models.Race {
	return &models.Race{
		ID:          race.ID,
		Name:        race.Name,
		Track:       race.Track,
		Weather:     models.Weather(race.Weather),
		Temperature: int(race.Temperature),
		Laps:        int(race.Laps),
		IsActive:    race.IsActive,
		StartTime:   race.StartTime,
		EndTime:     race.EndTime,
	}
}

func dbResultToModel(result db.RaceResult) (*models.RaceResult, error) {
	model := &models.RaceResult{
		ID:        result.ID,
		RaceID:    result.RaceID,
		TeamID:    result.TeamID,
		PilotID:   result.PilotID,
		Position:  int(result.Position),
		TotalTime: result.TotalTime,
		DNF:       result.Dnf,
		DNFReason: sqlutil.FromSqlStringPtr(result.DnfReason),
	}

	if result.LapTimes.Valid {
		if err := json.Unmarshal(result.LapTimes.RawMessage, &model.LapTimes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal lap times: %w", err)
		}
	}
	return model, nil
}

func dbPilotToModel(dbPilot db.Pilot) *models.Pilot {
	return &models.Pilot{
		ID:             dbPilot.ID,
		Name:           dbPilot.Name,
		Nationality:    dbPilot.Nationality,
		Tier:           int(dbPilot.Tier),
		Rarity:         models.Rarity(dbPilot.Rarity),
		Pace:           int(dbPilot.Pace),
		TireManagement: int(dbPilot.TireManagement),
		Overtaking:     int(dbPilot.Overtaking),
		Defense:        int(dbPilot.Defense),
		WetSkill:       int(dbPilot.WetSkill),
		BaseSalary:     dbPilot.BaseSalary,
		CreatedAt:      dbPilot.CreatedAt,
	}
}

func dbCarToModel(dbCar db.Car) *models.Car {
	return &models.Car{
		ID:          dbCar.ID,
		TeamID:      dbCar.TeamID,
		Engine:      int(dbCar.Engine),
		Aero:        int(dbCar.Aero),
		Chassis:     int(dbCar.Chassis),
		Reliability: int(dbCar.Reliability),
		CreatedAt:   dbCar.CreatedAt,
	}
}
