package pilots

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/DomonziHUN/f1-manager/go/internal/models"
)

// PilotsRepository defines what the app layer needs from the repository
type PilotsRepository interface {
	CreatePilot(ctx context.Context, req CreatePilotRequest) (*models.Pilot, error)
	GetPilot(ctx context.Context, id uuid.UUID) (*models.Pilot, error)
	ListPilots(ctx context.Context) ([]models.Pilot, error)
	PilotsByTierExcluding(ctx context.Context, tier int, exclude []uuid.UUID) ([]models.Pilot, error)
}

// App handles driver catalog business logic
type App struct {
	repo PilotsRepository
}

func NewApp(repo PilotsRepository) *App {
	return &App{repo: repo}
}

// CreateCatalogPilot inserts one tier variant of a catalog driver. Used by
// the seeder.
func (a *App) CreateCatalogPilot(ctx context.Context, name, nationality string, base BaseStats, tier int) (*models.Pilot, error) {
	req, err := CatalogEntry(name, nationality, base, tier)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	pilot, err := a.repo.CreatePilot(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog pilot: %w", err)
	}
	return pilot, nil
}

// GetPilot retrieves a catalog entry by ID
func (a *App) GetPilot(ctx context.Context, id uuid.UUID) (*models.Pilot, error) {
	return a.repo.GetPilot(ctx, id)
}

// ListPilots retrieves the full catalog
func (a *App) ListPilots(ctx context.Context) ([]models.Pilot, error) {
	return a.repo.ListPilots(ctx)
}
