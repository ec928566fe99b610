package auction

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/DomonziHUN/f1-manager/go/internal/auction/db"
	"github.com/DomonziHUN/f1-manager/go/internal/auction/events"
	"github.com/DomonziHUN/f1-manager/go/internal/models"
)

// fakeStore is an in-memory Store. InTx hands a fakeTx over the same state
// to the callback; there is no rollback, tests assert on the returned error
// instead.
type fakeStore struct {
	mu        sync.Mutex
	auctions  map[uuid.UUID]*db.Auction
	items     []*db.AuctionPilot
	bids      []db.Bid
	teams     map[uuid.UUID]db.Team
	coins     map[uuid.UUID]int64
	usernames map[uuid.UUID]string
	pilots    map[uuid.UUID]models.Pilot
	owned     []db.CreateOwnedPilotParams
	seq       int64

	getActiveErr error
	activeCalls  chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		auctions:  make(map[uuid.UUID]*db.Auction),
		teams:     make(map[uuid.UUID]db.Team),
		coins:     make(map[uuid.UUID]int64),
		usernames: make(map[uuid.UUID]string),
		pilots:    make(map[uuid.UUID]models.Pilot),
	}
}

func (s *fakeStore) nextTime() time.Time {
	s.seq++
	return time.Unix(s.seq, 0).UTC()
}

func (s *fakeStore) addAuction(start, end time.Time, active bool) db.Auction {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := db.Auction{ID: uuid.New(), StartTime: start, EndTime: end, IsActive: active, CreatedAt: start}
	s.auctions[a.ID] = &a
	return a
}

func (s *fakeStore) addItem(auctionID uuid.UUID, startPrice, startCoins int64) db.AuctionPilot {
	s.mu.Lock()
	defer s.mu.Unlock()
	pilot := models.Pilot{ID: uuid.New(), Name: "Catalog Driver", Tier: 3, BaseSalary: startPrice}
	s.pilots[pilot.ID] = pilot
	item := db.AuctionPilot{
		ID:         uuid.New(),
		AuctionID:  auctionID,
		PilotID:    pilot.ID,
		StartPrice: startPrice,
		StartCoins: startCoins,
		CreatedAt:  s.nextTime(),
	}
	s.items = append(s.items, &item)
	return item
}

func (s *fakeStore) addBidder(name string, coins, budget int64) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID := uuid.New()
	s.usernames[userID] = name
	s.coins[userID] = coins
	s.teams[userID] = db.Team{ID: uuid.New(), UserID: userID, Name: name + "'s team", Budget: budget}
	return userID
}

func (s *fakeStore) addLoneUser(name string, coins int64) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID := uuid.New()
	s.usernames[userID] = name
	s.coins[userID] = coins
	return userID
}

func (s *fakeStore) addBid(auctionPilotID, userID uuid.UUID, amount, coins int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var item *db.AuctionPilot
	for _, it := range s.items {
		if it.ID == auctionPilotID {
			item = it
			break
		}
	}
	s.bids = append(s.bids, db.Bid{
		ID:             int64(len(s.bids) + 1),
		AuctionID:      item.AuctionID,
		AuctionPilotID: auctionPilotID,
		UserID:         userID,
		Amount:         amount,
		Coins:          coins,
		CreatedAt:      s.nextTime(),
	})
}

func (s *fakeStore) item(id uuid.UUID) db.AuctionPilot {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return *it
		}
	}
	return db.AuctionPilot{}
}

func (s *fakeStore) InTx(_ context.Context, fn func(q TxQuerier) error) error {
	return fn(&fakeTx{s: s})
}

func (s *fakeStore) GetActiveAuction(context.Context) (*models.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeCalls != nil {
		select {
		case s.activeCalls <- struct{}{}:
		default:
		}
	}
	if s.getActiveErr != nil {
		return nil, s.getActiveErr
	}
	for _, a := range s.auctions {
		if a.IsActive {
			return dbAuctionToModel(*a), nil
		}
	}
	return nil, ErrNoActiveAuction
}

func (s *fakeStore) GetAuctionLots(_ context.Context, auctionID uuid.UUID) ([]Lot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var lots []Lot
	for _, it := range s.items {
		if it.AuctionID != auctionID {
			continue
		}
		lots = append(lots, Lot{
			AuctionPilot: *dbAuctionPilotToModel(*it),
			Pilot:        s.pilots[it.PilotID],
		})
	}
	return lots, nil
}

func (s *fakeStore) CurrentBid(_ context.Context, auctionPilotID uuid.UUID) (*BidView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.bids) - 1; i >= 0; i-- {
		if s.bids[i].AuctionPilotID == auctionPilotID {
			return &BidView{
				Bid:        *dbBidToModel(s.bids[i]),
				BidderName: s.usernames[s.bids[i].UserID],
			}, nil
		}
	}
	return nil, nil
}

// fakeTx is the transactional view over a fakeStore.
type fakeTx struct {
	s *fakeStore
}

func (t *fakeTx) CreateAuction(_ context.Context, arg db.CreateAuctionParams) (db.Auction, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	a := db.Auction{
		ID:        uuid.New(),
		StartTime: arg.StartTime,
		EndTime:   arg.EndTime,
		IsActive:  true,
		CreatedAt: arg.StartTime,
	}
	t.s.auctions[a.ID] = &a
	return a, nil
}

func (t *fakeTx) GetActiveAuction(context.Context) (db.Auction, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, a := range t.s.auctions {
		if a.IsActive {
			return *a, nil
		}
	}
	return db.Auction{}, pgx.ErrNoRows
}

func (t *fakeTx) GetAuction(_ context.Context, id uuid.UUID) (db.Auction, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if a, ok := t.s.auctions[id]; ok {
		return *a, nil
	}
	return db.Auction{}, pgx.ErrNoRows
}

func (t *fakeTx) DeactivateAuctions(context.Context) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, a := range t.s.auctions {
		a.IsActive = false
	}
	return nil
}

func (t *fakeTx) DeactivateAuction(_ context.Context, id uuid.UUID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if a, ok := t.s.auctions[id]; ok {
		a.IsActive = false
	}
	return nil
}

func (t *fakeTx) CreateAuctionPilot(_ context.Context, arg db.CreateAuctionPilotParams) (db.AuctionPilot, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	item := db.AuctionPilot{
		ID:         uuid.New(),
		AuctionID:  arg.AuctionID,
		PilotID:    arg.PilotID,
		StartPrice: arg.StartPrice,
		StartCoins: arg.StartCoins,
		CreatedAt:  t.s.nextTime(),
	}
	t.s.items = append(t.s.items, &item)
	return item, nil
}

func (t *fakeTx) GetUnsettledAuctionPilotsForUpdate(_ context.Context, auctionID uuid.UUID) ([]db.AuctionPilot, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	var out []db.AuctionPilot
	for _, it := range t.s.items {
		if it.AuctionID == auctionID && it.SettledAt == nil {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (t *fakeTx) GetAuctionPilotWithAuctionForUpdate(_ context.Context, id uuid.UUID) (db.GetAuctionPilotWithAuctionForUpdateRow, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, it := range t.s.items {
		if it.ID == id {
			return db.GetAuctionPilotWithAuctionForUpdateRow{
				AuctionPilot: *it,
				Auction:      *t.s.auctions[it.AuctionID],
			}, nil
		}
	}
	return db.GetAuctionPilotWithAuctionForUpdateRow{}, pgx.ErrNoRows
}

func (t *fakeTx) GetCurrentBid(_ context.Context, auctionPilotID uuid.UUID) (db.Bid, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i := len(t.s.bids) - 1; i >= 0; i-- {
		if t.s.bids[i].AuctionPilotID == auctionPilotID {
			return t.s.bids[i], nil
		}
	}
	return db.Bid{}, pgx.ErrNoRows
}

func (t *fakeTx) CreateBid(_ context.Context, arg db.CreateBidParams) (db.Bid, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	bid := db.Bid{
		ID:             int64(len(t.s.bids) + 1),
		AuctionID:      arg.AuctionID,
		AuctionPilotID: arg.AuctionPilotID,
		UserID:         arg.UserID,
		Amount:         arg.Amount,
		Coins:          arg.Coins,
		CreatedAt:      t.s.nextTime(),
	}
	t.s.bids = append(t.s.bids, bid)
	return bid, nil
}

func (t *fakeTx) MarkAuctionPilotSettled(_ context.Context, id uuid.UUID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, it := range t.s.items {
		if it.ID == id {
			now := t.s.nextTime()
			it.SettledAt = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (t *fakeTx) GetUserCoins(_ context.Context, id uuid.UUID) (int64, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	coins, ok := t.s.coins[id]
	if !ok {
		return 0, pgx.ErrNoRows
	}
	return coins, nil
}

func (t *fakeTx) GetTeamByUser(_ context.Context, userID uuid.UUID) (db.Team, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	team, ok := t.s.teams[userID]
	if !ok {
		return db.Team{}, pgx.ErrNoRows
	}
	return team, nil
}

func (t *fakeTx) DebitUserCoins(_ context.Context, arg db.DebitUserCoinsParams) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.s.coins[arg.ID] -= arg.Coins
	return nil
}

func (t *fakeTx) DebitTeamBudget(_ context.Context, arg db.DebitTeamBudgetParams) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for userID, team := range t.s.teams {
		if team.ID == arg.ID {
			team.Budget -= arg.Budget
			t.s.teams[userID] = team
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (t *fakeTx) CreateOwnedPilot(_ context.Context, arg db.CreateOwnedPilotParams) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, o := range t.s.owned {
		if o.TeamID == arg.TeamID && o.PilotID == arg.PilotID {
			return nil
		}
	}
	t.s.owned = append(t.s.owned, arg)
	return nil
}

// capturePublisher records published events for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *capturePublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) byType(eventType string) []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.Event
	for _, e := range p.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

func newTestApp(store *fakeStore, pool PilotPool, clock clockwork.Clock, cfg Config) (*App, *capturePublisher) {
	pub := &capturePublisher{}
	var selector *Selector
	if pool != nil {
		selector = NewSelector(pool, rand.New(rand.NewSource(1)))
	}
	return NewApp(store, selector, clock, pub, cfg), pub
}

var testBase = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func openAuction(store *fakeStore, clock clockwork.Clock) (db.Auction, db.AuctionPilot) {
	auction := store.addAuction(clock.Now(), clock.Now().Add(20*time.Minute), true)
	item := store.addItem(auction.ID, 1_000_000, 10)
	return auction, item
}

func TestPlaceBidOpeningPrice(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	_, item := openAuction(store, clock)
	alice := store.addBidder("alice", 50, 10_000_000)
	app, _ := newTestApp(store, nil, clock, DefaultConfig())

	_, err := app.PlaceBid(ctx, alice, item.ID, PlaceBidRequest{Amount: 999_999, Coins: 10})
	require.ErrorIs(t, err, ErrBidBelowMinimum)

	_, err = app.PlaceBid(ctx, alice, item.ID, PlaceBidRequest{Amount: 1_000_000, Coins: 9})
	require.ErrorIs(t, err, ErrBidBelowMinimum)

	bid, err := app.PlaceBid(ctx, alice, item.ID, PlaceBidRequest{Amount: 1_000_000, Coins: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1_000_000), bid.Amount)
	require.Equal(t, int64(10), bid.Coins)
	require.Equal(t, alice, bid.UserID)
}

func TestPlaceBidCoinsDominate(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	_, item := openAuction(store, clock)
	bob := store.addBidder("bob", 50, 10_000_000)
	alice := store.addBidder("alice", 50, 10_000_000)
	app, _ := newTestApp(store, nil, clock, DefaultConfig())

	store.addBid(item.ID, bob, 5_000, 3)

	// More money but fewer coins loses.
	_, err := app.PlaceBid(ctx, alice, item.ID, PlaceBidRequest{Amount: 6_000, Coins: 2})
	require.ErrorIs(t, err, ErrBidTooLow)

	// Equal on both axes loses too.
	_, err = app.PlaceBid(ctx, alice, item.ID, PlaceBidRequest{Amount: 5_000, Coins: 3})
	require.ErrorIs(t, err, ErrBidTooLow)

	// A single extra coin wins regardless of amount.
	bid, err := app.PlaceBid(ctx, alice, item.ID, PlaceBidRequest{Amount: 1, Coins: 4})
	require.NoError(t, err)
	require.Equal(t, int64(4), bid.Coins)
}

func TestPlaceBidAmountBreaksCoinTie(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	_, item := openAuction(store, clock)
	bob := store.addBidder("bob", 50, 10_000_000)
	alice := store.addBidder("alice", 50, 10_000_000)
	app, _ := newTestApp(store, nil, clock, DefaultConfig())

	store.addBid(item.ID, bob, 5_000, 3)

	bid, err := app.PlaceBid(ctx, alice, item.ID, PlaceBidRequest{Amount: 5_001, Coins: 3})
	require.NoError(t, err)
	require.Equal(t, int64(5_001), bid.Amount)
}

func TestPlaceBidRejectsSelfOutbid(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	_, item := openAuction(store, clock)
	bob := store.addBidder("bob", 50, 10_000_000)
	app, _ := newTestApp(store, nil, clock, DefaultConfig())

	store.addBid(item.ID, bob, 5_000, 3)

	_, err := app.PlaceBid(ctx, bob, item.ID, PlaceBidRequest{Amount: 6_000, Coins: 4})
	require.ErrorIs(t, err, ErrSelfBid)
}

func TestPlaceBidInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	_, item := openAuction(store, clock)
	app, _ := newTestApp(store, nil, clock, DefaultConfig())

	poor := store.addBidder("poor", 50, 500_000)
	_, err := app.PlaceBid(ctx, poor, item.ID, PlaceBidRequest{Amount: 1_000_000, Coins: 10})
	require.ErrorIs(t, err, ErrInsufficientFunds)

	coinless := store.addBidder("coinless", 5, 10_000_000)
	_, err = app.PlaceBid(ctx, coinless, item.ID, PlaceBidRequest{Amount: 1_000_000, Coins: 10})
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestPlaceBidRequiresTeam(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	_, item := openAuction(store, clock)
	drifter := store.addLoneUser("drifter", 50)
	app, _ := newTestApp(store, nil, clock, DefaultConfig())

	_, err := app.PlaceBid(ctx, drifter, item.ID, PlaceBidRequest{Amount: 1_000_000, Coins: 10})
	require.ErrorIs(t, err, ErrNoTeam)
}

func TestPlaceBidClosedAuction(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	alice := store.addBidder("alice", 50, 10_000_000)
	app, _ := newTestApp(store, nil, clock, DefaultConfig())

	closed := store.addAuction(testBase.Add(-time.Hour), testBase.Add(-40*time.Minute), false)
	closedItem := store.addItem(closed.ID, 1_000_000, 10)

	_, err := app.PlaceBid(ctx, alice, closedItem.ID, PlaceBidRequest{Amount: 1_000_000, Coins: 10})
	require.ErrorIs(t, err, ErrAuctionClosed)
}

func TestPlaceBidExpiredWindow(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	_, item := openAuction(store, clock)
	alice := store.addBidder("alice", 50, 10_000_000)
	app, _ := newTestApp(store, nil, clock, DefaultConfig())

	// Still flagged active but past its end time.
	clock.Advance(21 * time.Minute)

	_, err := app.PlaceBid(ctx, alice, item.ID, PlaceBidRequest{Amount: 1_000_000, Coins: 10})
	require.ErrorIs(t, err, ErrAuctionClosed)
}

func TestPlaceBidUnknownLineItem(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	alice := store.addBidder("alice", 50, 10_000_000)
	app, _ := newTestApp(store, nil, clock, DefaultConfig())

	_, err := app.PlaceBid(ctx, alice, uuid.New(), PlaceBidRequest{Amount: 1_000_000, Coins: 10})
	require.ErrorIs(t, err, ErrAuctionNotFound)
}

func TestPlaceBidRejectsNonPositiveAmounts(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	_, item := openAuction(store, clock)
	alice := store.addBidder("alice", 50, 10_000_000)
	app, _ := newTestApp(store, nil, clock, DefaultConfig())

	_, err := app.PlaceBid(ctx, alice, item.ID, PlaceBidRequest{Amount: 0, Coins: 10})
	require.ErrorIs(t, err, ErrInvalidBid)

	_, err = app.PlaceBid(ctx, alice, item.ID, PlaceBidRequest{Amount: 1_000_000, Coins: -1})
	require.ErrorIs(t, err, ErrInvalidBid)
}

func TestPlaceBidPublishesEvent(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	_, item := openAuction(store, clock)
	alice := store.addBidder("alice", 50, 10_000_000)
	app, pub := newTestApp(store, nil, clock, DefaultConfig())

	_, err := app.PlaceBid(ctx, alice, item.ID, PlaceBidRequest{Amount: 1_000_000, Coins: 10})
	require.NoError(t, err)

	require.Len(t, pub.byType(events.TypeBidPlaced), 1)
}

func TestCreateAuctionReplacesActive(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	pool := catalogPool(5, 1_000_000)
	cfg := Config{Window: 20 * time.Minute, LotSize: 5, MaxDraws: 50}
	app, pub := newTestApp(store, pool, clock, cfg)

	old := store.addAuction(testBase.Add(-30*time.Minute), testBase.Add(-10*time.Minute), true)

	created, err := app.CreateAuction(ctx)
	require.NoError(t, err)
	require.True(t, created.IsActive)
	require.Equal(t, testBase.Add(20*time.Minute), created.EndTime)

	store.mu.Lock()
	require.False(t, store.auctions[old.ID].IsActive)
	var lotItems []db.AuctionPilot
	for _, it := range store.items {
		if it.AuctionID == created.ID {
			lotItems = append(lotItems, *it)
		}
	}
	store.mu.Unlock()

	require.Len(t, lotItems, cfg.LotSize)
	byID := make(map[uuid.UUID]models.Pilot)
	for _, pilot := range pool.pilots {
		byID[pilot.ID] = pilot
	}
	for _, it := range lotItems {
		pilot := byID[it.PilotID]
		require.Equal(t, StartPrice(pilot.BaseSalary, pilot.Tier), it.StartPrice, "pilot %s", pilot.Name)
		require.Equal(t, StartCoins(pilot.Tier), it.StartCoins, "pilot %s", pilot.Name)
	}

	require.Len(t, pub.byType(events.TypeAuctionCreated), 1)
}

func TestFinalizeAuctionNoBids(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	auction, item := openAuction(store, clock)
	app, pub := newTestApp(store, nil, clock, DefaultConfig())

	require.NoError(t, app.FinalizeAuction(ctx, auction.ID))

	require.NotNil(t, store.item(item.ID).SettledAt)
	require.Empty(t, store.owned)
	require.False(t, store.auctions[auction.ID].IsActive)
	require.Len(t, pub.byType(events.TypeAuctionFinalized), 1)
}

func TestFinalizeAuctionTransfersToWinner(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	auction, item := openAuction(store, clock)
	bob := store.addBidder("bob", 50, 10_000_000)
	app, pub := newTestApp(store, nil, clock, DefaultConfig())

	store.addBid(item.ID, bob, 2_000_000, 10)

	require.NoError(t, app.FinalizeAuction(ctx, auction.ID))

	require.Equal(t, int64(40), store.coins[bob])
	require.Equal(t, int64(8_000_000), store.teams[bob].Budget)
	require.Len(t, store.owned, 1)
	require.Equal(t, store.teams[bob].ID, store.owned[0].TeamID)
	require.Equal(t, item.PilotID, store.owned[0].PilotID)
	require.NotNil(t, store.item(item.ID).SettledAt)

	finalized := pub.byType(events.TypeAuctionFinalized)
	require.Len(t, finalized, 1)
	payload := finalized[0].Payload.(events.AuctionFinalizedPayload)
	require.Len(t, payload.Settlements, 1)
	require.NotNil(t, payload.Settlements[0].WinnerUserID)
	require.Equal(t, bob, *payload.Settlements[0].WinnerUserID)
	require.False(t, payload.Settlements[0].Forfeited)
}

func TestFinalizeAuctionForfeitsDrainedWinner(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	auction, _ := openAuction(store, clock)
	first := store.addItem(auction.ID, 1_000_000, 10)
	second := store.addItem(auction.ID, 1_000_000, 10)
	bob := store.addBidder("bob", 50, 10_000_000)
	app, pub := newTestApp(store, nil, clock, DefaultConfig())

	// Both wins together exceed the budget; the earlier line item settles,
	// the later one forfeits.
	store.addBid(first.ID, bob, 6_000_000, 10)
	store.addBid(second.ID, bob, 6_000_000, 10)

	require.NoError(t, app.FinalizeAuction(ctx, auction.ID))

	require.Equal(t, int64(4_000_000), store.teams[bob].Budget)
	require.Equal(t, int64(40), store.coins[bob])
	require.Len(t, store.owned, 1)
	require.Equal(t, first.PilotID, store.owned[0].PilotID)
	require.NotNil(t, store.item(second.ID).SettledAt)

	payload := pub.byType(events.TypeAuctionFinalized)[0].Payload.(events.AuctionFinalizedPayload)
	var forfeited int
	for _, s := range payload.Settlements {
		if s.Forfeited {
			forfeited++
		}
	}
	require.Equal(t, 1, forfeited)
}

func TestFinalizeAuctionIsIdempotent(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	auction, item := openAuction(store, clock)
	bob := store.addBidder("bob", 50, 10_000_000)
	app, _ := newTestApp(store, nil, clock, DefaultConfig())

	store.addBid(item.ID, bob, 2_000_000, 10)

	require.NoError(t, app.FinalizeAuction(ctx, auction.ID))
	require.NoError(t, app.FinalizeAuction(ctx, auction.ID))

	// Settled line items carry a watermark; the retry must not debit twice.
	require.Equal(t, int64(40), store.coins[bob])
	require.Equal(t, int64(8_000_000), store.teams[bob].Budget)
	require.Len(t, store.owned, 1)
}

func TestCheckAndAdvanceCreatesFirstAuction(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	pool := catalogPool(5, 1_000_000)
	app, _ := newTestApp(store, pool, clock, Config{Window: 20 * time.Minute, LotSize: 5, MaxDraws: 50})

	require.NoError(t, app.CheckAndAdvance(ctx))

	active, err := store.GetActiveAuction(ctx)
	require.NoError(t, err)
	require.True(t, active.IsActive)
}

func TestCheckAndAdvanceLeavesRunningAuction(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	auction, _ := openAuction(store, clock)
	app, _ := newTestApp(store, catalogPool(5, 1_000_000), clock, Config{Window: 20 * time.Minute, LotSize: 5, MaxDraws: 50})

	require.NoError(t, app.CheckAndAdvance(ctx))

	store.mu.Lock()
	defer store.mu.Unlock()
	require.Len(t, store.auctions, 1)
	require.True(t, store.auctions[auction.ID].IsActive)
}

func TestCheckAndAdvanceRollsOverExpiredAuction(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	auction, item := openAuction(store, clock)
	bob := store.addBidder("bob", 50, 10_000_000)
	app, _ := newTestApp(store, catalogPool(5, 1_000_000), clock, Config{Window: 20 * time.Minute, LotSize: 5, MaxDraws: 50})

	store.addBid(item.ID, bob, 2_000_000, 10)
	clock.Advance(21 * time.Minute)

	require.NoError(t, app.CheckAndAdvance(ctx))

	store.mu.Lock()
	require.False(t, store.auctions[auction.ID].IsActive)
	require.Len(t, store.auctions, 2)
	store.mu.Unlock()

	require.Len(t, store.owned, 1)

	active, err := store.GetActiveAuction(ctx)
	require.NoError(t, err)
	require.NotEqual(t, auction.ID, active.ID)
}

func TestGetActiveAuctionNone(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testBase)
	app, _ := newTestApp(newFakeStore(), nil, clock, DefaultConfig())

	view, err := app.GetActiveAuction(context.Background())
	require.NoError(t, err)
	require.Nil(t, view)
}

func TestGetActiveAuctionView(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testBase)
	store := newFakeStore()
	_, item := openAuction(store, clock)
	alice := store.addBidder("alice", 50, 10_000_000)
	app, _ := newTestApp(store, nil, clock, DefaultConfig())

	view, err := app.GetActiveAuction(ctx)
	require.NoError(t, err)
	require.NotNil(t, view)
	require.Equal(t, int64(20*60), view.TimeLeftSeconds)
	require.Len(t, view.Lots, 1)

	// Before any bid the view shows the starting price under a placeholder.
	summary := view.Lots[0].CurrentBid
	require.True(t, summary.Placeholder)
	require.Equal(t, PlaceholderBidder, summary.Bidder)
	require.Equal(t, int64(1_000_000), summary.Amount)
	require.Equal(t, int64(10), summary.Coins)

	store.addBid(item.ID, alice, 1_500_000, 12)

	view, err = app.GetActiveAuction(ctx)
	require.NoError(t, err)
	summary = view.Lots[0].CurrentBid
	require.False(t, summary.Placeholder)
	require.Equal(t, "alice", summary.Bidder)
	require.Equal(t, int64(1_500_000), summary.Amount)
	require.Equal(t, int64(12), summary.Coins)

	// The countdown clamps at zero once the window has passed.
	clock.Advance(30 * time.Minute)
	view, err = app.GetActiveAuction(ctx)
	require.NoError(t, err)
	require.Zero(t, view.TimeLeftSeconds)
}
