package events

import (
	"time"

	"github.com/google/uuid"
)

// Event types published on the auction stream.
const (
	TypeAuctionCreated   = "AuctionCreated"
	TypeBidPlaced        = "BidPlaced"
	TypeAuctionFinalized = "AuctionFinalized"
)

// Event is one auction-domain event. Payload is type-specific.
type Event struct {
	ID        uuid.UUID   `json:"id"`
	Type      string      `json:"type"`
	AuctionID uuid.UUID   `json:"auction_id"`
	Payload   interface{} `json:"payload"`
}

// AuctionCreatedPayload announces a new bidding window and its lot.
type AuctionCreatedPayload struct {
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`
	PilotIDs  []uuid.UUID `json:"pilot_ids"`
}

// BidPlacedPayload announces a new current bid on a line item.
type BidPlacedPayload struct {
	AuctionPilotID uuid.UUID `json:"auction_pilot_id"`
	UserID         uuid.UUID `json:"user_id"`
	Amount         int64     `json:"amount"`
	Coins          int64     `json:"coins"`
}

// Settlement is one line item's outcome inside AuctionFinalizedPayload.
type Settlement struct {
	AuctionPilotID uuid.UUID  `json:"auction_pilot_id"`
	PilotID        uuid.UUID  `json:"pilot_id"`
	WinnerUserID   *uuid.UUID `json:"winner_user_id,omitempty"`
	Amount         int64      `json:"amount"`
	Coins          int64      `json:"coins"`
	Forfeited      bool       `json:"forfeited"`
}

// AuctionFinalizedPayload announces the settlement of a closed auction.
type AuctionFinalizedPayload struct {
	Settlements []Settlement `json:"settlements"`
}

// NewEvent stamps a fresh event id onto the given type and payload.
func NewEvent(eventType string, auctionID uuid.UUID, payload interface{}) Event {
	return Event{
		ID:        uuid.New(),
		Type:      eventType,
		AuctionID: auctionID,
		Payload:   payload,
	}
}
