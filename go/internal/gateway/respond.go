package gateway

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DomonziHUN/f1-manager/go/internal/auction"
	"github.com/DomonziHUN/f1-manager/go/internal/race"
	"github.com/DomonziHUN/f1-manager/go/internal/team"
	"github.com/DomonziHUN/f1-manager/go/internal/users"
)

// statusFor maps domain errors to HTTP status codes. Unknown errors are
// internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, users.ErrInvalidCredentials),
		errors.Is(err, users.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, users.ErrUserExists),
		errors.Is(err, team.ErrTeamExists):
		return http.StatusConflict
	case errors.Is(err, users.ErrUserNotFound),
		errors.Is(err, team.ErrTeamNotFound),
		errors.Is(err, auction.ErrAuctionNotFound),
		errors.Is(err, race.ErrRaceNotFound),
		errors.Is(err, race.ErrOpponentNotFound):
		return http.StatusNotFound
	case errors.Is(err, auction.ErrAuctionClosed),
		errors.Is(err, auction.ErrNoActiveAuction),
		errors.Is(err, auction.ErrNoTeam),
		errors.Is(err, auction.ErrInsufficientFunds),
		errors.Is(err, auction.ErrBidTooLow),
		errors.Is(err, auction.ErrSelfBid),
		errors.Is(err, auction.ErrBidBelowMinimum),
		errors.Is(err, auction.ErrInvalidBid),
		errors.Is(err, team.ErrTooManyActive),
		errors.Is(err, team.ErrInvalidSelection),
		errors.Is(err, team.ErrNoActivePilot),
		errors.Is(err, race.ErrRaceFinished):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	c.JSON(status, gin.H{"error": message})
}
