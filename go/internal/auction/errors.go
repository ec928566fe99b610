package auction

import "errors"

var (
	// ErrNoActiveAuction is returned when no auction is currently open.
	ErrNoActiveAuction = errors.New("no active auction")
	// ErrAuctionNotFound is returned when the auction or line item does not
	// exist.
	ErrAuctionNotFound = errors.New("auction not found")
	// ErrAuctionClosed is returned when bidding on an inactive or expired
	// auction.
	ErrAuctionClosed = errors.New("auction is closed")
	// ErrNoTeam is returned when the bidder has not created a team yet.
	ErrNoTeam = errors.New("bidder has no team")
	// ErrInsufficientFunds is returned when the bidder's budget or coin
	// balance cannot cover the bid.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrBidTooLow is returned when the bid does not strictly beat the
	// current bid.
	ErrBidTooLow = errors.New("bid does not beat current bid")
	// ErrSelfBid is returned when the bidder already holds the current bid.
	ErrSelfBid = errors.New("bidder already holds the current bid")
	// ErrBidBelowMinimum is returned when a first bid is under the line
	// item's starting price or coin cost.
	ErrBidBelowMinimum = errors.New("bid below starting price")
	// ErrInvalidBid is returned when amount or coins are out of range.
	ErrInvalidBid = errors.New("invalid bid")
)
