package models

import (
	"time"

	"github.com/google/uuid"
)

// Auction is one 20-minute bidding window. Auctions are never deleted; at
// most one has IsActive set at any instant.
type Auction struct {
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AuctionPilot is one line item: a pilot offered within one auction, with
// its tier-derived starting price and coin cost. SettledAt is the
// finalization watermark; a retried finalize skips settled line items.
type AuctionPilot struct {
	ID         uuid.UUID  `json:"id"`
	AuctionID  uuid.UUID  `json:"auction_id"`
	PilotID    uuid.UUID  `json:"pilot_id"`
	StartPrice int64      `json:"start_price"`
	StartCoins int64      `json:"start_coins"`
	SettledAt  *time.Time `json:"settled_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Bid is an append-only bid row. The current bid for a line item is the
// most recent row by created_at, ties broken by the serial id.
type Bid struct {
	ID             int64     `json:"id"`
	AuctionID      uuid.UUID `json:"auction_id"`
	AuctionPilotID uuid.UUID `json:"auction_pilot_id"`
	UserID         uuid.UUID `json:"user_id"`
	Amount         int64     `json:"amount"`
	Coins          int64     `json:"coins"`
	CreatedAt      time.Time `json:"created_at"`
}
