package main

import (
	"database/sql"
	"math/rand"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/DomonziHUN/f1-manager/go/internal/auction"
	"github.com/DomonziHUN/f1-manager/go/internal/auction/events"
	"github.com/DomonziHUN/f1-manager/go/internal/gateway"
	"github.com/DomonziHUN/f1-manager/go/internal/pilots"
	pilotsdb "github.com/DomonziHUN/f1-manager/go/internal/pilots/db"
	"github.com/DomonziHUN/f1-manager/go/internal/race"
	"github.com/DomonziHUN/f1-manager/go/internal/team"
	"github.com/DomonziHUN/f1-manager/go/internal/users"
	usersdb "github.com/DomonziHUN/f1-manager/go/internal/users/db"
)

type Services struct {
	Users     *users.App
	Pilots    *pilots.App
	Teams     *team.App
	Auctions  *auction.App
	Races     *race.App
	Scheduler *auction.Scheduler
	Handler   *gateway.Handler
}

func setupServices(
	database *sql.DB,
	pool *pgxpool.Pool,
	config *Config,
	tokens *users.TokenIssuer,
	publisher events.Publisher,
	clock clockwork.Clock,
	rng *rand.Rand,
) *Services {
	// Database layer -> Repository layer -> App layer

	// Users
	userQueries := usersdb.New(database)
	userRepo := users.NewRepository(userQueries)
	userApp := users.NewApp(userRepo, tokens, config.Game.StartingCoins)

	// Pilot catalog
	pilotQueries := pilotsdb.New(database)
	pilotRepo := pilots.NewRepository(pilotQueries)
	pilotApp := pilots.NewApp(pilotRepo)

	// Teams
	teamRepo := team.NewRepository(database)
	teamApp := team.NewApp(teamRepo, rng, config.Game.StartingBudget)

	// Auctions
	auctionRepo := auction.NewRepository(pool)
	selector := auction.NewSelector(pilotRepo, rng)
	auctionApp := auction.NewApp(auctionRepo, selector, clock, publisher, auction.Config{
		Window:   config.auctionWindow(),
		LotSize:  config.Game.AuctionLotSize,
		MaxDraws: config.Game.AuctionMaxDraws,
	})
	scheduler := auction.NewScheduler(auctionApp, clock, config.tickInterval())

	// Races
	raceRepo := race.NewRepository(database)
	engine := race.NewEngine(rng)
	raceApp := race.NewApp(raceRepo, teamApp, engine, clock, config.Game.RaceLaps)

	handler := gateway.NewHandler(userApp, teamApp, auctionApp, raceApp)

	return &Services{
		Users:     userApp,
		Pilots:    pilotApp,
		Teams:     teamApp,
		Auctions:  auctionApp,
		Races:     raceApp,
		Scheduler: scheduler,
		Handler:   handler,
	}
}
