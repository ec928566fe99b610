package pilots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/DomonziHUN/f1-manager/go/internal/models"
	"github.com/DomonziHUN/f1-manager/go/internal/pilots/db"
)

// ErrPilotNotFound is returned when no catalog entry matches the lookup.
var ErrPilotNotFound = errors.New("pilot not found")

type Querier interface {
	CreatePilot(ctx context.Context, arg db.CreatePilotParams) (db.Pilot, error)
	GetPilot(ctx context.Context, id uuid.UUID) (db.Pilot, error)
	ListPilots(ctx context.Context) ([]db.Pilot, error)
	GetPilotsByTierExcluding(ctx context.Context, arg db.GetPilotsByTierExcludingParams) ([]db.Pilot, error)
}

type Repository struct {
	queries Querier
}

func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

type CreatePilotRequest struct {
	Name           string        `json:"name"`
	Nationality    string        `json:"nationality"`
	Tier           int           `json:"tier"`
	Rarity         models.Rarity `json:"rarity"`
	Pace           int           `json:"pace"`
	TireManagement int           `json:"tire_management"`
	Overtaking     int           `json:"overtaking"`
	Defense        int           `json:"defense"`
	WetSkill       int           `json:"wet_skill"`
	BaseSalary     int64         `json:"base_salary"`
}

func (r *Repository) CreatePilot(ctx context.Context, req CreatePilotRequest) (*models.Pilot, error) {
	pilot, err := r.queries.CreatePilot(ctx, db.CreatePilotParams{
		Name:           req.Name,
		Nationality:    req.Nationality,
		Tier:           int32(req.Tier),
		Rarity:         string(req.Rarity),
		Pace:           int32(req.Pace),
		TireManagement: int32(req.TireManagement),
		Overtaking:     int32(req.Overtaking),
		Defense:        int32(req.Defense),
		WetSkill:       int32(req.WetSkill),
		BaseSalary:     req.BaseSalary,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pilot: %w", err)
	}

	return dbPilotToModel(pilot), nil
}

func (r *Repository) GetPilot(ctx context.Context, id uuid.UUID) (*models.Pilot, error) {
	pilot, err := r.queries.GetPilot(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPilotNotFound
		}
		return nil, fmt.Errorf("failed to get pilot: %w", err)
	}

	return dbPilotToModel(pilot), nil
}

func (r *Repository) ListPilots(ctx context.Context) ([]models.Pilot, error) {
	rows, err := r.queries.ListPilots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}

	result := make([]models.Pilot, len(rows))
	for i, row := range rows {
		result[i] = *dbPilotToModel(row)
	}
	return result, nil
}

// PilotsByTierExcluding returns the catalog entries of one tier minus the
// already-drawn ids. Used by the auction selector.
func (r *Repository) PilotsByTierExcluding(ctx context.Context, tier int, exclude []uuid.UUID) ([]models.Pilot, error) {
	if exclude == nil {
		exclude = []uuid.UUID{}
	}
	rows, err := r.queries.GetPilotsByTierExcluding(ctx, db.GetPilotsByTierExcludingParams{
		Tier:    int32(tier),
		Exclude: exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get pilots by tier: %w", err)
	}

	result := make([]models.Pilot, len(rows))
	for i, row := range rows {
		result[i] = *dbPilotToModel(row)
	}
	return result, nil
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
