package auction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DomonziHUN/f1-manager/go/internal/auction/db"
	"github.com/DomonziHUN/f1-manager/go/internal/models"
	"github.com/DomonziHUN/f1-manager/go/internal/sqlutil"
)

// TxQuerier is the transactional query surface the app layer runs its
// bidding and settlement logic against.
type TxQuerier interface {
	CreateAuction(ctx context.Context, arg db.CreateAuctionParams) (db.Auction, error)
	GetActiveAuction(ctx context.Context) (db.Auction, error)
	GetAuction(ctx context.Context, id uuid.UUID) (db.Auction, error)
	DeactivateAuctions(ctx context.Context) error
	DeactivateAuction(ctx context.Context, id uuid.UUID) error
	CreateAuctionPilot(ctx context.Context, arg db.CreateAuctionPilotParams) (db.AuctionPilot, error)
	GetUnsettledAuctionPilotsForUpdate(ctx context.Context, auctionID uuid.UUID) ([]db.AuctionPilot, error)
	GetAuctionPilotWithAuctionForUpdate(ctx context.Context, id uuid.UUID) (db.GetAuctionPilotWithAuctionForUpdateRow, error)
	GetCurrentBid(ctx context.Context, auctionPilotID uuid.UUID) (db.Bid, error)
	CreateBid(ctx context.Context, arg db.CreateBidParams) (db.Bid, error)
	MarkAuctionPilotSettled(ctx context.Context, id uuid.UUID) error
	GetUserCoins(ctx context.Context, id uuid.UUID) (int64, error)
	GetTeamByUser(ctx context.Context, userID uuid.UUID) (db.Team, error)
	DebitUserCoins(ctx context.Context, arg db.DebitUserCoinsParams) error
	DebitTeamBudget(ctx context.Context, arg db.DebitTeamBudgetParams) error
	CreateOwnedPilot(ctx context.Context, arg db.CreateOwnedPilotParams) error
}

// Lot is a line item joined with its pilot.
type Lot struct {
	AuctionPilot models.AuctionPilot `json:"auction_pilot"`
	Pilot        models.Pilot        `json:"pilot"`
}

// BidView is the current bid joined with the bidder's username.
type BidView struct {
	Bid        models.Bid `json:"bid"`
	BidderName string     `json:"bidder_name"`
}

type Repository struct {
	pool    *pgxpool.Pool
	queries *db.Queries
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool:    pool,
		queries: db.New(pool),
	}
}

// InTx runs fn in a serializable transaction. Concurrent bids on the same
// line item serialize instead of interleaving their read-check-insert
// sequences.
func (r *Repository) InTx(ctx context.Context, fn func(q TxQuerier) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.Serializable}
	return sqlutil.RunPgx(ctx, r.pool, opts, func(tx pgx.Tx) *db.Queries {
		return db.New(tx)
	}, func(q *db.Queries) error {
		return fn(q)
	})
}

func (r *Repository) GetActiveAuction(ctx context.Context) (*models.Auction, error) {
	auction, err := r.queries.GetActiveAuction(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActiveAuction
		}
		return nil, fmt.Errorf("failed to get active auction: %w", err)
	}
	return dbAuctionToModel(auction), nil
}

// GetAuctionLots returns the auction's line items with their pilots, in
// insertion order.
func (r *Repository) GetAuctionLots(ctx context.Context, auctionID uuid.UUID) ([]Lot, error) {
	rows, err := r.queries.GetAuctionPilotsWithPilots(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get auction lots: %w", err)
	}

	lots := make([]Lot, len(rows))
	for i, row := range rows {
		lots[i] = Lot{
			AuctionPilot: *dbAuctionPilotToModel(row.AuctionPilot),
			Pilot:        *dbPilotToModel(row.Pilot),
		}
	}
	return lots, nil
}

// CurrentBid returns the line item's current bid with the bidder's name,
// or nil when nobody has bid yet.
func (r *Repository) CurrentBid(ctx context.Context, auctionPilotID uuid.UUID) (*BidView, error) {
	row, err := r.queries.GetCurrentBidWithBidder(ctx, auctionPilotID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current bid: %w", err)
	}
	return &BidView{
		Bid:        *dbBidToModel(row.Bid),
		BidderName: row.BidderName,
	}, nil
}

func dbAuctionToModel(a db.Auction) *models.Auction {
	return &models.Auction{
		ID:        a.ID,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}
}

func dbAuctionPilotToModel(ap db.AuctionPilot) *models.AuctionPilot {
	return &models.AuctionPilot{
		ID:         ap.ID,
		AuctionID:  ap.AuctionID,
		PilotID:    ap.PilotID,
		StartPrice: ap.StartPrice,
		StartCoins: ap.StartCoins,
		SettledAt:  ap.SettledAt,
		CreatedAt:  ap.CreatedAt,
	}
}

func dbBidToModel(b db.Bid) *models.Bid {
	return &models.Bid{
		ID:             b.ID,
		AuctionID:      b.AuctionID,
		AuctionPilotID: b.AuctionPilotID,
		UserID:         b.UserID,
		Amount:         b.Amount,
		Coins:          b.Coins,
		CreatedAt:      b.CreatedAt,
	}
}

func dbPilotToModel(p db.Pilot) *models.Pilot {
	return &models.Pilot{
		ID:             p.ID,
		Name:           p.Name,
		Nationality:    p.Nationality,
		Tier:           int(p.Tier),
		Rarity:         models.Rarity(p.Rarity),
		Pace:           int(p.Pace),
		TireManagement: int(p.TireManagement),
		Overtaking:     int(p.Overtaking),
		Defense:        int(p.Defense),
		WetSkill:       int(p.WetSkill),
		BaseSalary:     p.BaseSalary,
		CreatedAt:      p.CreatedAt,
	}
}
