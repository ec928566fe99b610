package team

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/DomonziHUN/f1-manager/go/internal/models"
	"github.com/DomonziHUN/f1-manager/go/internal/pilots"
)

const (
	// MaxActivePilots caps how many drivers a team can field at once.
	MaxActivePilots = 2

	starterCarStat = 50
)

var aiTeamNames = []string{
	"Thunder Racing", "Lightning Bolts", "Speed Demons", "Turbo Racers",
	"Velocity Squad", "Nitro Team", "Apex Hunters", "Circuit Masters",
}

// TeamRepository is the persistence surface the app layer depends on.
type TeamRepository interface {
	CreateTeamBundle(ctx context.Context, req CreateTeamBundleRequest) (*TeamDetail, error)
	CreateAIOpponent(ctx context.Context, req CreateAIOpponentRequest) (*RaceEntry, error)
	GetTeamByUser(ctx context.Context, userID uuid.UUID) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetTeamDetail(ctx context.Context, userID uuid.UUID) (*TeamDetail, error)
	CountOwnedPilots(ctx context.Context, teamID uuid.UUID, ids []uuid.UUID) (int64, error)
	SetActivePilots(ctx context.Context, teamID uuid.UUID, ids []uuid.UUID) error
	GetRaceEntry(ctx context.Context, teamID uuid.UUID) (*RaceEntry, error)
}

type App struct {
	repo           TeamRepository
	rng            *rand.Rand
	startingBudget int64
}

func NewApp(repo TeamRepository, rng *rand.Rand, startingBudget int64) *App {
	return &App{
		repo:           repo,
		rng:            rng,
		startingBudget: startingBudget,
	}
}

type CreateTeamRequest struct {
	Name           string `json:"name"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// CreateTeam sets up a new team for the user: starting budget, a car with
// every stat at 50 and two rookie drivers, the first of them active.
func (a *App) CreateTeam(ctx context.Context, userID uuid.UUID, req CreateTeamRequest) (*TeamDetail, error) {
	if err := validateCreateTeamRequest(req); err != nil {
		return nil, err
	}

	if _, err := a.repo.GetTeamByUser(ctx, userID); err == nil {
		return nil, ErrTeamExists
	} else if !errors.Is(err, ErrTeamNotFound) {
		return nil, fmt.Errorf("failed to check existing team: %w", err)
	}

	detail, err := a.repo.CreateTeamBundle(ctx, CreateTeamBundleRequest{
		UserID:         userID,
		Name:           req.Name,
		Budget:         a.startingBudget,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		CarStats:       [4]int{starterCarStat, starterCarStat, starterCarStat, starterCarStat},
		StarterPilots: []pilots.CreatePilotRequest{
			pilots.StarterPilot(req.Name, 1, a.rng),
			pilots.StarterPilot(req.Name, 2, a.rng),
		},
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("team_id", detail.Team.ID.String()).
		Str("user_id", userID.String()).
		Str("name", detail.Team.Name).
		Msg("team created")

	return detail, nil
}

// GetUserTeam returns the caller's team with car and roster.
func (a *App) GetUserTeam(ctx context.Context, userID uuid.UUID) (*TeamDetail, error) {
	return a.repo.GetTeamDetail(ctx, userID)
}

// GetTeamByUser returns just the team row, used by collaborating domains.
func (a *App) GetTeamByUser(ctx context.Context, userID uuid.UUID) (*models.Team, error) {
	return a.repo.GetTeamByUser(ctx, userID)
}

// SetActiveDrivers replaces the team's active driver selection. Every id
// must be an ownership link of the caller's team, at most two of them.
func (a *App) SetActiveDrivers(ctx context.Context, userID uuid.UUID, ownedPilotIDs []uuid.UUID) (*TeamDetail, error) {
	if len(ownedPilotIDs) > MaxActivePilots {
		return nil, ErrTooManyActive
	}

	team, err := a.repo.GetTeamByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	unique := make(map[uuid.UUID]struct{}, len(ownedPilotIDs))
	for _, id := range ownedPilotIDs {
		unique[id] = struct{}{}
	}
	if len(unique) != len(ownedPilotIDs) {
		return nil, ErrInvalidSelection
	}

	owned, err := a.repo.CountOwnedPilots(ctx, team.ID, ownedPilotIDs)
	if err != nil {
		return nil, err
	}
	if owned != int64(len(ownedPilotIDs)) {
		return nil, ErrInvalidSelection
	}

	if err := a.repo.SetActivePilots(ctx, team.ID, ownedPilotIDs); err != nil {
		return nil, err
	}

	return a.repo.GetTeamDetail(ctx, userID)
}

// GetRaceEntry loads a team's grid entry: team, car and first active driver.
func (a *App) GetRaceEntry(ctx context.Context, teamID uuid.UUID) (*RaceEntry, error) {
	return a.repo.GetRaceEntry(ctx, teamID)
}

// CreateAIOpponent spins up a synthetic rival for a quick race. Car stats
// land in 40-79 with reliability 60-89, the driver in 40-79.
func (a *App) CreateAIOpponent(ctx context.Context) (*RaceEntry, error) {
	tag := uuid.New()
	name := fmt.Sprintf("AI %s", aiTeamNames[a.rng.Intn(len(aiTeamNames))])

	entry, err := a.repo.CreateAIOpponent(ctx, CreateAIOpponentRequest{
		UserEmail: fmt.Sprintf("ai-%s@opponents.local", tag),
		Username:  fmt.Sprintf("ai-%s", tag.String()[:8]),
		TeamName:  name,
		Budget:    a.startingBudget,
		CarStats: [4]int{
			40 + a.rng.Intn(40),
			40 + a.rng.Intn(40),
			40 + a.rng.Intn(40),
			60 + a.rng.Intn(30),
		},
		Pilot: pilots.AIPilot(a.rng),
	})
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("team_id", entry.Team.ID.String()).
		Str("name", entry.Team.Name).
		Msg("AI opponent created")

	return entry, nil
}

func validateCreateTeamRequest(req CreateTeamRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("team name is required")
	}
	if req.PrimaryColor == "" || req.SecondaryColor == "" {
		return errors.New("team colors are required")
	}
	return nil
}
