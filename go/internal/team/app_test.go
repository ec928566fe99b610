package team

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/DomonziHUN/f1-manager/go/internal/models"
)

type fakeTeamRepo struct {
	byUser map[uuid.UUID]*models.Team

	lastBundle *CreateTeamBundleRequest
	lastAI     *CreateAIOpponentRequest
	activeSet  []uuid.UUID
	ownedCount int64
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{byUser: make(map[uuid.UUID]*models.Team)}
}

func (r *fakeTeamRepo) CreateTeamBundle(_ context.Context, req CreateTeamBundleRequest) (*TeamDetail, error) {
	r.lastBundle = &req
	team := models.Team{
		ID:             uuid.New(),
		UserID:         req.UserID,
		Name:           req.Name,
		Budget:         req.Budget,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
	}
	r.byUser[req.UserID] = &team

	detail := &TeamDetail{
		Team: team,
		Car: &models.Car{
			TeamID:      team.ID,
			Engine:      req.CarStats[0],
			Aero:        req.CarStats[1],
			Chassis:     req.CarStats[2],
			Reliability: req.CarStats[3],
		},
	}
	for i := range req.StarterPilots {
		detail.OwnedPilots = append(detail.OwnedPilots, models.OwnedPilot{
			ID:       uuid.New(),
			TeamID:   team.ID,
			PilotID:  uuid.New(),
			IsActive: i == 0,
		})
	}
	return detail, nil
}

func (r *fakeTeamRepo) CreateAIOpponent(_ context.Context, req CreateAIOpponentRequest) (*RaceEntry, error) {
	r.lastAI = &req
	return &RaceEntry{
		Team: models.Team{ID: uuid.New(), Name: req.TeamName, Budget: req.Budget},
		Car: models.Car{
			Engine:      req.CarStats[0],
			Aero:        req.CarStats[1],
			Chassis:     req.CarStats[2],
			Reliability: req.CarStats[3],
		},
		Pilot: models.Pilot{Name: req.Pilot.Name, Pace: req.Pilot.Pace},
	}, nil
}

func (r *fakeTeamRepo) GetTeamByUser(_ context.Context, userID uuid.UUID) (*models.Team, error) {
	team, ok := r.byUser[userID]
	if !ok {
		return nil, ErrTeamNotFound
	}
	return team, nil
}

func (r *fakeTeamRepo) GetTeam(_ context.Context, id uuid.UUID) (*models.Team, error) {
	for _, team := range r.byUser {
		if team.ID == id {
			return team, nil
		}
	}
	return nil, ErrTeamNotFound
}

func (r *fakeTeamRepo) GetTeamDetail(ctx context.Context, userID uuid.UUID) (*TeamDetail, error) {
	team, err := r.GetTeamByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &TeamDetail{Team: *team}, nil
}

func (r *fakeTeamRepo) CountOwnedPilots(_ context.Context, _ uuid.UUID, _ []uuid.UUID) (int64, error) {
	return r.ownedCount, nil
}

func (r *fakeTeamRepo) SetActivePilots(_ context.Context, _ uuid.UUID, ids []uuid.UUID) error {
	r.activeSet = ids
	return nil
}

func (r *fakeTeamRepo) GetRaceEntry(_ context.Context, teamID uuid.UUID) (*RaceEntry, error) {
	for _, team := range r.byUser {
		if team.ID == teamID {
			return &RaceEntry{Team: *team}, nil
		}
	}
	return nil, ErrNoActivePilot
}

func newTeamTestApp(repo *fakeTeamRepo) *App {
	return NewApp(repo, rand.New(rand.NewSource(1)), 10_000_000)
}

func TestCreateTeamBundlesStarterPackage(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTeamRepo()
	app := newTeamTestApp(repo)
	userID := uuid.New()

	detail, err := app.CreateTeam(ctx, userID, CreateTeamRequest{
		Name:           "Scuderia Test",
		PrimaryColor:   "#FF0000",
		SecondaryColor: "#FFFFFF",
	})
	require.NoError(t, err)
	require.Equal(t, "Scuderia Test", detail.Team.Name)
	require.Equal(t, int64(10_000_000), detail.Team.Budget)

	bundle := repo.lastBundle
	require.NotNil(t, bundle)
	require.Equal(t, [4]int{50, 50, 50, 50}, bundle.CarStats)
	require.Len(t, bundle.StarterPilots, 2)
	for i, pilot := range bundle.StarterPilots {
		require.Equal(t, fmt.Sprintf("Scuderia Test Driver #%d", i+1), pilot.Name)
		for _, stat := range []int{pilot.Pace, pilot.TireManagement, pilot.Overtaking, pilot.Defense, pilot.WetSkill} {
			require.GreaterOrEqual(t, stat, 45)
			require.LessOrEqual(t, stat, 64)
		}
	}

	// The first rookie starts active.
	require.True(t, detail.OwnedPilots[0].IsActive)
	require.False(t, detail.OwnedPilots[1].IsActive)
}

func TestCreateTeamOnlyOncePerUser(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTeamRepo()
	app := newTeamTestApp(repo)
	userID := uuid.New()

	req := CreateTeamRequest{Name: "Scuderia Test", PrimaryColor: "#FF0000", SecondaryColor: "#FFFFFF"}
	_, err := app.CreateTeam(ctx, userID, req)
	require.NoError(t, err)

	_, err = app.CreateTeam(ctx, userID, req)
	require.ErrorIs(t, err, ErrTeamExists)
}

func TestCreateTeamValidation(t *testing.T) {
	ctx := context.Background()
	app := newTeamTestApp(newFakeTeamRepo())
	userID := uuid.New()

	tests := []struct {
		name string
		req  CreateTeamRequest
	}{
		{name: "blank_name", req: CreateTeamRequest{Name: "  ", PrimaryColor: "#FF0000", SecondaryColor: "#FFFFFF"}},
		{name: "missing_primary_color", req: CreateTeamRequest{Name: "Scuderia Test", SecondaryColor: "#FFFFFF"}},
		{name: "missing_secondary_color", req: CreateTeamRequest{Name: "Scuderia Test", PrimaryColor: "#FF0000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.CreateTeam(ctx, userID, tt.req)
			require.Error(t, err)
		})
	}
}

func TestSetActiveDrivers(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTeamRepo()
	app := newTeamTestApp(repo)
	userID := uuid.New()

	_, err := app.CreateTeam(ctx, userID, CreateTeamRequest{
		Name: "Scuderia Test", PrimaryColor: "#FF0000", SecondaryColor: "#FFFFFF",
	})
	require.NoError(t, err)

	a, b, c := uuid.New(), uuid.New(), uuid.New()

	_, err = app.SetActiveDrivers(ctx, userID, []uuid.UUID{a, b, c})
	require.ErrorIs(t, err, ErrTooManyActive)

	_, err = app.SetActiveDrivers(ctx, userID, []uuid.UUID{a, a})
	require.ErrorIs(t, err, ErrInvalidSelection)

	// Ownership count mismatch: the ids are not links of this team.
	repo.ownedCount = 1
	_, err = app.SetActiveDrivers(ctx, userID, []uuid.UUID{a, b})
	require.ErrorIs(t, err, ErrInvalidSelection)

	repo.ownedCount = 2
	_, err = app.SetActiveDrivers(ctx, userID, []uuid.UUID{a, b})
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{a, b}, repo.activeSet)
}

func TestSetActiveDriversRequiresTeam(t *testing.T) {
	app := newTeamTestApp(newFakeTeamRepo())

	_, err := app.SetActiveDrivers(context.Background(), uuid.New(), []uuid.UUID{uuid.New()})
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestCreateAIOpponent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTeamRepo()
	app := newTeamTestApp(repo)

	entry, err := app.CreateAIOpponent(ctx)
	require.NoError(t, err)

	req := repo.lastAI
	require.NotNil(t, req)
	require.True(t, strings.HasPrefix(req.TeamName, "AI "), "got %q", req.TeamName)
	require.Equal(t, int64(10_000_000), req.Budget)
	require.True(t, strings.HasSuffix(req.UserEmail, "@opponents.local"), "got %q", req.UserEmail)
	require.True(t, strings.HasPrefix(req.Username, "ai-"), "got %q", req.Username)

	for _, stat := range req.CarStats[:3] {
		require.GreaterOrEqual(t, stat, 40)
		require.LessOrEqual(t, stat, 79)
	}
	require.GreaterOrEqual(t, req.CarStats[3], 60)
	require.LessOrEqual(t, req.CarStats[3], 89)

	for _, stat := range []int{req.Pilot.Pace, req.Pilot.TireManagement, req.Pilot.Overtaking, req.Pilot.Defense, req.Pilot.WetSkill} {
		require.GreaterOrEqual(t, stat, 40)
		require.LessOrEqual(t, stat, 79)
	}

	require.Equal(t, req.TeamName, entry.Team.Name)
}
