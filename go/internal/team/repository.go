package team

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/DomonziHUN/f1-manager/go/internal/models"
	"github.com/DomonziHUN/f1-manager/go/internal/pilots"
	"github.com/DomonziHUN/f1-manager/go/internal/sqlutil"
	"github.com/DomonziHUN/f1-manager/go/internal/team/db"
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

// TeamDetail is a team with its car and owned drivers attached.
type TeamDetail struct {
	Team        models.Team         `json:"team"`
	Car         *models.Car         `json:"car,omitempty"`
	OwnedPilots []models.OwnedPilot `json:"owned_pilots"`
}

/// RaceEntry is what a team brings to the grid: the team, its car and the
// first active driver.
type RaceEntry struct {
	Team  models.Team  `json:"team"`
	Car   models.Car   `json:"car"`
	Pilot models.Pilot `json:"pilot"`
}

type CreateTeamBundleRequest struct {
	UserID         uuid.UUID
	Name           string
	Budget         int64
	PrimaryColor   string
	SecondaryColor string
	CarStats       [4]int // engine, aero, chassis, reliability
	StarterPilots  []pilots.CreatePilotRequest
}

type CreateAIOpponentRequest struct {
	UserEmail string
	Username  string
	TeamName  string
	Budget    int64
	CarStats  [4]int
	Pilot     pilots.CreatePilotRequest
}

// CreateTeamBundle creates the team, its car, its starter pilots and their
// ownership links in one transaction. The first starter pilot is active.
func (r *Repository) CreateTeamBundle(ctx context.Context, req CreateTeamBundleRequest) (*TeamDetail, error) {
	var detail *TeamDetail

	err := sqlutil.Run(ctx, r.database, newTxQueries, func(q *db.Queries) error {
		team, err := q.CreateTeam(ctx, db.CreateTeamParams{
			UserID:         req.UserID,
			Name:           req.Name,
			Budget:         req.Budget,
			PrimaryColor:   req.PrimaryColor,
			SecondaryColor: req.SecondaryColor,
		})
		if err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}

		car, err := q.CreateCar(ctx, db.CreateCarParams{
			TeamID:      team.ID,
			Engine:      int32(req.CarStats[0]),
			Aero:        int32(req.CarStats[1]),
			Chassis:     int32(req.CarStats[2]),
			Reliability: int32(req.CarStats[3]),
		})
		if err != nil {
			return fmt.Errorf("failed to create car: %w", err)
		}

		owned := make([]models.OwnedPilot, 0, len(req.StarterPilots))
		for i, starter := range req.StarterPilots {
			pilot, err := q.CreateTeamPilot(ctx, pilotRequestToParams(starter))
			if err != nil {
				return fmt.Errorf("failed to create starter pilot: %w", err)
			}

			link, err := q.CreateOwnedPilot(ctx, db.CreateOwnedPilotParams{
				TeamID:   team.ID,
				PilotID:  pilot.ID,
				IsActive: i == 0,
			})
			if err != nil {
				return fmt.Errorf("failed to link starter pilot: %w", err)
			}

			op := dbOwnedPilotToModel(link)
			op.Pilot = dbPilotToModel(pilot)
			owned = append(owned, *op)
		}

		carModel := dbCarToModel(car)
		detail = &TeamDetail{
			Team:        *dbTeamToModel(team),
			Car:         carModel,
			OwnedPilots: owned,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// CreateAIOpponent creates a throwaway user, team, car and driver for a
// quick race, in one transaction.
func (r *Repository) CreateAIOpponent(ctx context.Context, req CreateAIOpponentRequest) (*RaceEntry, error) {
	var entry *RaceEntry

	err := sqlutil.Run(ctx, r.database, newTxQueries, func(q *db.Queries) error {
		user, err := q.CreateAIUser(ctx, db.CreateAIUserParams{
			Email:    req.UserEmail,
			Username: req.Username,
		})
		if err != nil {
			return fmt.Errorf("failed to create AI user: %w", err)
		}

		team, err := q.CreateTeam(ctx, db.CreateTeamParams{
			UserID:         user.ID,
			Name:           req.TeamName,
			Budget:         req.Budget,
			PrimaryColor:   "#FF0000",
			SecondaryColor: "#000000",
		})
		if err != nil {
			return fmt.Errorf("failed to create AI team: %w", err)
		}

		car, err := q.CreateCar(ctx, db.CreateCarParams{
			TeamID:      team.ID,
			Engine:      int32(req.CarStats[0]),
			Aero:        int32(req.CarStats[1]),
			Chassis:     int32(req.CarStats[2]),
			Reliability: int32(req.CarStats[3]),
		})
		if err != nil {
			return fmt.Errorf("failed to create AI car: %w", err)
		}

		pilot, err := q.CreateTeamPilot(ctx, pilotRequestToParams(req.Pilot))
		if err != nil {
			return fmt.Errorf("failed to create AI pilot: %w", err)
		}

		if _, err := q.CreateOwnedPilot(ctx, db.CreateOwnedPilotParams{
			TeamID:   team.ID,
			PilotID:  pilot.ID,
			IsActive: true,
		}); err != nil {
			return fmt.Errorf("failed to link AI pilot: %w", err)
		}

		entry = &RaceEntry{
			Team:  *dbTeamToModel(team),
			Car:   *dbCarToModel(car),
			Pilot: *dbPilotToModel(pilot),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *Repository) GetTeamByUser(ctx context.Context, userID uuid.UUID) (*models.Team, error) {
	team, err := r.queries.GetTeamByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team by user: %w", err)
	}
	return dbTeamToModel(team), nil
}

func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return dbTeamToModel(team), nil
}

// GetTeamDetail loads a team with its car and owned drivers, newest
// acquisition first.
func (r *Repository) GetTeamDetail(ctx context.Context, userID uuid.UUID) (*TeamDetail, error) {
	team, err := r.GetTeamByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	detail := &TeamDetail{Team: *team}

	car, err := r.queries.GetCarByTeam(ctx, team.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get car: %w", err)
	}
	if err == nil {
		detail.Car = dbCarToModel(car)
	}

	rows, err := r.queries.GetOwnedPilotsByTeam(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owned pilots: %w", err)
	}
	detail.OwnedPilots = make([]models.OwnedPilot, len(rows))
	for i, row := range rows {
		op := dbOwnedPilotToModel(row.OwnedPilot)
		op.Pilot = dbPilotToModel(row.Pilot)
		detail.OwnedPilots[i] = *op
	}
	return detail, nil
}

// CountOwnedPilots returns how many of the given link ids belong to the team.
func (r *Repository) CountOwnedPilots(ctx context.Context, teamID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	count, err := r.queries.CountOwnedPilotsByIDs(ctx, db.CountOwnedPilotsByIDsParams{
		TeamID: teamID,
		Ids:    ids,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count owned pilots: %w", err)
	}
	return count, nil
}

// SetActivePilots deactivates every driver on the team and re-activates the
// selected links, in one transaction.
func (r *Repository) SetActivePilots(ctx context.Context, teamID uuid.UUID, ids []uuid.UUID) error {
	return sqlutil.Run(ctx, r.database, newTxQueries, func(q *db.Queries) error {
		if err := q.DeactivateTeamPilots(ctx, teamID); err != nil {
			return fmt.Errorf("failed to deactivate pilots: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}
		if err := q.ActivateOwnedPilots(ctx, db.ActivateOwnedPilotsParams{
			TeamID: teamID,
			Ids:    ids,
		}); err != nil {
			return fmt.Errorf("failed to activate pilots: %w", err)
		}
		return nil
	})
}

// GetRaceEntry loads what a team needs on the grid: car plus first active
// driver. Returns ErrNoActivePilot when the roster has no active driver.
func (r *Repository) GetRaceEntry(ctx context.Context, teamID uuid.UUID) (*RaceEntry, error) {
	team, err := r.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	car, err := r.queries.GetCarByTeam(ctx, team.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActivePilot
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}

	rows, err := r.queries.GetActiveOwnedPilotsByTeam(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active pilots: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoActivePilot
	}

	return &RaceEntry{
		Team:  *team,
		Car:   *dbCarToModel(car),
		Pilot: *dbPilotToModel(rows[0].Pilot),
	}, nil
}

func newTxQueries(tx *sql.Tx) *db.Queries {
	return db.New(tx)
}

func pilotRequestToParams(p pilots.CreatePilotRequest) db.CreateTeamPilotParams {
	return db.CreateTeamPilotParams{
		Name:           p.Name,
		Nationality:    p.Nationality,
		Tier:           int32(p.Tier),
		Rarity:         string(p.Rarity),
		Pace:           int32(p.Pace),
		TireManagement: int32(p.TireManagement),
		Overtaking:     int32(p.Overtaking),
		Defense:        int32(p.Defense),
		WetSkill:       int32(p.WetSkill),
		BaseSalary:     p.BaseSalary,
	}
}

func dbTeamToModel(dbTeam db.Team) *models.Team {
	return &models.Team{
		ID:             dbTeam.ID,
		UserID:         dbTeam.UserID,
		Name:           dbTeam.Name,
		Budget:         dbTeam.Budget,
		PrimaryColor:   dbTeam.PrimaryColor,
		SecondaryColor: dbTeam.SecondaryColor,
		CreatedAt:      dbTeam.CreatedAt,
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

func dbOwnedPilotToModel(dbOwned db.OwnedPilot) *models.OwnedPilot {
	return &models.OwnedPilot{
		ID:         dbOwned.ID,
		TeamID:     dbOwned.TeamID,
		PilotID:    dbOwned.PilotID,
		IsActive:   dbOwned.IsActive,
		AcquiredAt: dbOwned.AcquiredAt,
	}
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
