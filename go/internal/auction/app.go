package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/DomonziHUN/f1-manager/go/internal/auction/db"
	"github.com/DomonziHUN/f1-manager/go/internal/auction/events"
	"github.com/DomonziHUN/f1-manager/go/internal/models"
)

// PlaceholderBidder labels the synthetic opening bid shown before anyone
// has bid on a line item.
const PlaceholderBidder = "starting price"

type Config struct {
	// Window is how long one auction stays open.
	Window time.Duration
	// LotSize is how many pilots go on the block per auction.
	LotSize int
	// MaxDraws bounds the selector's attempts to fill the lot.
	MaxDraws int
}

func DefaultConfig() Config {
	return Config{
		Window:   20 * time.Minute,
		LotSize:  10,
		MaxDraws: 50,
	}
}

// Store is the persistence surface the app layer depends on.
type Store interface {
	InTx(ctx context.Context, fn func(q TxQuerier) error) error
	GetActiveAuction(ctx context.Context) (*models.Auction, error)
	GetAuctionLots(ctx context.Context, auctionID uuid.UUID) ([]Lot, error)
	CurrentBid(ctx context.Context, auctionPilotID uuid.UUID) (*BidView, error)
}

type App struct {
	store     Store
	selector  *Selector
	clock     clockwork.Clock
	publisher events.Publisher
	config    Config
}

func NewApp(store Store, selector *Selector, clock clockwork.Clock, publisher events.Publisher, cfg Config) *App {
	return &App{
		store:     store,
		selector:  selector,
		clock:     clock,
		publisher: publisher,
		config:    cfg,
	}
}

// BidSummary is the current bid of a line item as shown to clients. Before
// the first real bid it carries the starting price under a placeholder
// bidder name.
type BidSummary struct {
	Amount      int64  `json:"amount"`
	Coins       int64  `json:"coins"`
	Bidder      string `json:"bidder"`
	Placeholder bool   `json:"placeholder"`
}

type LotView struct {
	Lot
	CurrentBid BidSummary `json:"current_bid"`
}

type ActiveAuctionView struct {
	Auction         models.Auction `json:"auction"`
	TimeLeftSeconds int64          `json:"time_left_seconds"`
	Lots            []LotView      `json:"lots"`
}

// GetActiveAuction returns the open auction with its lots and current bids,
// or nil when no auction is running.
func (a *App) GetActiveAuction(ctx context.Context) (*ActiveAuctionView, error) {
	auction, err := a.store.GetActiveAuction(ctx)
	if err != nil {
		if errors.Is(err, ErrNoActiveAuction) {
			return nil, nil
		}
		return nil, err
	}

	lots, err := a.store.GetAuctionLots(ctx, auction.ID)
	if err != nil {
		return nil, err
	}

	view := &ActiveAuctionView{
		Auction:         *auction,
		TimeLeftSeconds: remainingSeconds(auction.EndTime, a.clock.Now()),
		Lots:            make([]LotView, len(lots)),
	}

	for i, lot := range lots {
		bid, err := a.store.CurrentBid(ctx, lot.AuctionPilot.ID)
		if err != nil {
			return nil, err
		}

		summary := BidSummary{
			Amount:      lot.AuctionPilot.StartPrice,
			Coins:       lot.AuctionPilot.StartCoins,
			Bidder:      PlaceholderBidder,
			Placeholder: true,
		}
		if bid != nil {
			summary = BidSummary{
				Amount: bid.Bid.Amount,
				Coins:  bid.Bid.Coins,
				Bidder: bid.BidderName,
			}
		}

		view.Lots[i] = LotView{Lot: lot, CurrentBid: summary}
	}

	return view, nil
}

type PlaceBidRequest struct {
	Amount int64 `json:"amount"`
	Coins  int64 `json:"coins"`
}

// PlaceBid appends a bid to a line item. The whole check sequence runs in
// one serializable transaction with the line item row locked, so two
// concurrent bids against the same current bid cannot both win.
func (a *App) PlaceBid(ctx context.Context, userID, auctionPilotID uuid.UUID, req PlaceBidRequest) (*models.Bid, error) {
	if req.Amount <= 0 || req.Coins < 0 {
		return nil, ErrInvalidBid
	}

	var placed db.Bid

	err := a.store.InTx(ctx, func(q TxQuerier) error {
		row, err := q.GetAuctionPilotWithAuctionForUpdate(ctx, auctionPilotID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrAuctionNotFound
			}
			return fmt.Errorf("failed to load line item: %w", err)
		}

		if !row.Auction.IsActive {
			return ErrAuctionClosed
		}
		if a.clock.Now().After(row.Auction.EndTime) {
			return ErrAuctionClosed
		}

		team, err := q.GetTeamByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNoTeam
			}
			return fmt.Errorf("failed to load bidder team: %w", err)
		}

		coins, err := q.GetUserCoins(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load bidder coins: %w", err)
		}
		if team.Budget < req.Amount || coins < req.Coins {
			return ErrInsufficientFunds
		}

		current, err := q.GetCurrentBid(ctx, auctionPilotID)
		switch {
		case err == nil:
			if !beats(req.Coins, req.Amount, current.Coins, current.Amount) {
				return ErrBidTooLow
			}
			if current.UserID == userID {
				return ErrSelfBid
			}
		case errors.Is(err, pgx.ErrNoRows):
			if req.Amount < row.AuctionPilot.StartPrice || req.Coins < row.AuctionPilot.StartCoins {
				return ErrBidBelowMinimum
			}
		default:
			return fmt.Errorf("failed to load current bid: %w", err)
		}

		placed, err = q.CreateBid(ctx, db.CreateBidParams{
			AuctionID:      row.Auction.ID,
			AuctionPilotID: auctionPilotID,
			UserID:         userID,
			Amount:         req.Amount,
			Coins:          req.Coins,
		})
		if err != nil {
			return fmt.Errorf("failed to create bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.publish(ctx, events.NewEvent(events.TypeBidPlaced, placed.AuctionID, events.BidPlacedPayload{
		AuctionPilotID: placed.AuctionPilotID,
		UserID:         placed.UserID,
		Amount:         placed.Amount,
		Coins:          placed.Coins,
	}))

	log.Info().
		Str("auction_pilot_id", auctionPilotID.String()).
		Str("user_id", userID.String()).
		Int64("amount", placed.Amount).
		Int64("coins", placed.Coins).
		Msg("bid placed")

	return dbBidToModel(placed), nil
}

// beats reports whether a new bid strictly outranks the current one.
// Coins dominate; amount only breaks coin ties.
func beats(newCoins, newAmount, curCoins, curAmount int64) bool {
	if newCoins != curCoins {
		return newCoins > curCoins
	}
	return newAmount > curAmount
}

// CreateAuction opens a new bidding window. Any previously active auction
// is deactivated in the same transaction; the partial unique index on
// auctions(is_active) backs the single-active invariant.
func (a *App) CreateAuction(ctx context.Context) (*models.Auction, error) {
	picks, err := a.selector.SelectLot(ctx, a.config.LotSize, a.config.MaxDraws)
	if err != nil {
		return nil, fmt.Errorf("failed to draw auction lot: %w", err)
	}

	var created db.Auction
	pilotIDs := make([]uuid.UUID, len(picks))

	err = a.store.InTx(ctx, func(q TxQuerier) error {
		if err := q.DeactivateAuctions(ctx); err != nil {
			return fmt.Errorf("failed to deactivate auctions: %w", err)
		}

		now := a.clock.Now()
		created, err = q.CreateAuction(ctx, db.CreateAuctionParams{
			StartTime: now,
			EndTime:   now.Add(a.config.Window),
		})
		if err != nil {
			return fmt.Errorf("failed to create auction: %w", err)
		}

		for i, pilot := range picks {
			if _, err := q.CreateAuctionPilot(ctx, db.CreateAuctionPilotParams{
				AuctionID:  created.ID,
				PilotID:    pilot.ID,
				StartPrice: StartPrice(pilot.BaseSalary, pilot.Tier),
				StartCoins: StartCoins(pilot.Tier),
			}); err != nil {
				return fmt.Errorf("failed to create line item: %w", err)
			}
			pilotIDs[i] = pilot.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.publish(ctx, events.NewEvent(events.TypeAuctionCreated, created.ID, events.AuctionCreatedPayload{
		StartTime: created.StartTime,
		EndTime:   created.EndTime,
		PilotIDs:  pilotIDs,
	}))

	log.Info().
		Str("auction_id", created.ID.String()).
		Time("end_time", created.EndTime).
		Int("lot_size", len(picks)).
		Msg("auction created")

	return dbAuctionToModel(created), nil
}

// FinalizeAuction settles a closed auction in one transaction. Each
// unsettled line item either transfers to its last bidder or lapses; a
// winner whose funds no longer cover the bid forfeits the pilot. Settled
// line items carry a watermark so a retried finalize skips them.
func (a *App) FinalizeAuction(ctx context.Context, auctionID uuid.UUID) error {
	var settlements []events.Settlement

	err := a.store.InTx(ctx, func(q TxQuerier) error {
		settlements = settlements[:0]

		items, err := q.GetUnsettledAuctionPilotsForUpdate(ctx, auctionID)
		if err != nil {
			return fmt.Errorf("failed to load unsettled line items: %w", err)
		}

		for _, item := range items {
			settlement, err := a.settleLineItem(ctx, q, item)
			if err != nil {
				return err
			}
			settlements = append(settlements, settlement)
		}

		if err := q.DeactivateAuction(ctx, auctionID); err != nil {
			return fmt.Errorf("failed to deactivate auction: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.publish(ctx, events.NewEvent(events.TypeAuctionFinalized, auctionID, events.AuctionFinalizedPayload{
		Settlements: settlements,
	}))

	log.Info().
		Str("auction_id", auctionID.String()).
		Int("settled", len(settlements)).
		Msg("auction finalized")

	return nil
}

func (a *App) settleLineItem(ctx context.Context, q TxQuerier, item db.AuctionPilot) (events.Settlement, error) {
	settlement := events.Settlement{
		AuctionPilotID: item.ID,
		PilotID:        item.PilotID,
	}

	bid, err := q.GetCurrentBid(ctx, item.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Nobody bid; the pilot stays in the catalog.
			if err := q.MarkAuctionPilotSettled(ctx, item.ID); err != nil {
				return settlement, fmt.Errorf("failed to settle line item: %w", err)
			}
			return settlement, nil
		}
		return settlement, fmt.Errorf("failed to load winning bid: %w", err)
	}

	settlement.Amount = bid.Amount
	settlement.Coins = bid.Coins

	forfeit := func(reason string) (events.Settlement, error) {
		log.Warn().
			Str("auction_pilot_id", item.ID.String()).
			Str("user_id", bid.UserID.String()).
			Str("reason", reason).
			Msg("winning bid forfeited")
		settlement.Forfeited = true
		if err := q.MarkAuctionPilotSettled(ctx, item.ID); err != nil {
			return settlement, fmt.Errorf("failed to settle line item: %w", err)
		}
		return settlement, nil
	}

	team, err := q.GetTeamByUser(ctx, bid.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return forfeit("winner has no team")
		}
		return settlement, fmt.Errorf("failed to load winner team: %w", err)
	}

	coins, err := q.GetUserCoins(ctx, bid.UserID)
	if err != nil {
		return settlement, fmt.Errorf("failed to load winner coins: %w", err)
	}

	// Funds may have been drained by other settlements since the bid was
	// placed, so re-check before debiting.
	if coins < bid.Coins || team.Budget < bid.Amount {
		return forfeit("insufficient funds at settlement")
	}

	if err := q.DebitUserCoins(ctx, db.DebitUserCoinsParams{ID: bid.UserID, Coins: bid.Coins}); err != nil {
		return settlement, fmt.Errorf("failed to debit coins: %w", err)
	}
	if err := q.DebitTeamBudget(ctx, db.DebitTeamBudgetParams{ID: team.ID, Budget: bid.Amount}); err != nil {
		return settlement, fmt.Errorf("failed to debit budget: %w", err)
	}
	if err := q.CreateOwnedPilot(ctx, db.CreateOwnedPilotParams{TeamID: team.ID, PilotID: item.PilotID}); err != nil {
		return settlement, fmt.Errorf("failed to create owned pilot: %w", err)
	}
	if err := q.MarkAuctionPilotSettled(ctx, item.ID); err != nil {
		return settlement, fmt.Errorf("failed to settle line item: %w", err)
	}

	winner := bid.UserID
	settlement.WinnerUserID = &winner
	return settlement, nil
}

// CheckAndAdvance is one scheduler tick: ensure an auction is running,
// finalizing and replacing it once its window has passed.
func (a *App) CheckAndAdvance(ctx context.Context) error {
	active, err := a.store.GetActiveAuction(ctx)
	if err != nil {
		if errors.Is(err, ErrNoActiveAuction) {
			_, err := a.CreateAuction(ctx)
			return err
		}
		return err
	}

	now := a.clock.Now()
	if now.After(active.EndTime) {
		if err := a.FinalizeAuction(ctx, active.ID); err != nil {
			return err
		}
		_, err := a.CreateAuction(ctx)
		return err
	}

	log.Debug().
		Str("auction_id", active.ID.String()).
		Int64("seconds_left", remainingSeconds(active.EndTime, now)).
		Msg("auction still running")
	return nil
}

func (a *App) publish(ctx context.Context, event events.Event) {
	if err := a.publisher.Publish(ctx, event); err != nil {
		log.Error().
			Err(err).
			Str("event_type", event.Type).
			Msg("failed to publish auction event")
	}
}

func remainingSeconds(end, now time.Time) int64 {
	left := end.Sub(now)
	if left < 0 {
		return 0
	}
	return int64(left.Seconds())
}
