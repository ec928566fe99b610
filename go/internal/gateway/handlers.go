package gateway

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DomonziHUN/f1-manager/go/internal/auction"
	"github.com/DomonziHUN/f1-manager/go/internal/models"
	"github.com/DomonziHUN/f1-manager/go/internal/race"
	"github.com/DomonziHUN/f1-manager/go/internal/team"
	"github.com/DomonziHUN/f1-manager/go/internal/users"
)

type AuthService interface {
	Register(ctx context.Context, req users.RegisterRequest) (*users.AuthResponse, error)
	Login(ctx context.Context, req users.LoginRequest) (*users.AuthResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	VerifySession(token string) (uuid.UUID, error)
}

type TeamService interface {
	CreateTeam(ctx context.Context, userID uuid.UUID, req team.CreateTeamRequest) (*team.TeamDetail, error)
	GetUserTeam(ctx context.Context, userID uuid.UUID) (*team.TeamDetail, error)
	SetActiveDrivers(ctx context.Context, userID uuid.UUID, ownedPilotIDs []uuid.UUID) (*team.TeamDetail, error)
}

type AuctionService interface {
	GetActiveAuction(ctx context.Context) (*auction.ActiveAuctionView, error)
	PlaceBid(ctx context.Context, userID, auctionPilotID uuid.UUID, req auction.PlaceBidRequest) (*models.Bid, error)
	CreateAuction(ctx context.Context) (*models.Auction, error)
}

type RaceService interface {
	CreateQuickRace(ctx context.Context, userID uuid.UUID, opponentTeamID *uuid.UUID) (*models.Race, error)
	SimulateRace(ctx context.Context, raceID uuid.UUID) (*race.SimulationResult, error)
	GetRaceResults(ctx context.Context, raceID uuid.UUID) (*race.ResultsView, error)
}

type Handler struct {
	auth     AuthService
	teams    TeamService
	auctions AuctionService
	races    RaceService
}

func NewHandler(auth AuthService, teams TeamService, auctions AuctionService, races RaceService) *Handler {
	return &Handler{
		auth:     auth,
		teams:    teams,
		auctions: auctions,
		races:    races,
	}
}

// Register handles POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var req users.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req users.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me handles GET /auth/me
func (h *Handler) Me(c *gin.Context) {
	user, err := h.auth.GetUser(c.Request.Context(), sessionUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateTeam handles POST /team
func (h *Handler) CreateTeam(c *gin.Context) {
	var req team.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	detail, err := h.teams.CreateTeam(c.Request.Context(), sessionUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// GetTeam handles GET /team
func (h *Handler) GetTeam(c *gin.Context) {
	detail, err := h.teams.GetUserTeam(c.Request.Context(), sessionUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

type setActiveDriversRequest struct {
	OwnedPilotIDs []uuid.UUID `json:"owned_pilot_ids"`
}

// SetActiveDrivers handles PUT /team/active-drivers
func (h *Handler) SetActiveDrivers(c *gin.Context) {
	var req setActiveDriversRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	detail, err := h.teams.SetActiveDrivers(c.Request.Context(), sessionUserID(c), req.OwnedPilotIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetActiveAuction handles GET /auction/active. With no auction running the
// body is JSON null.
func (h *Handler) GetActiveAuction(c *gin.Context) {
	view, err := h.auctions.GetActiveAuction(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PlaceBid handles POST /auction/bid/:auctionPilotId
func (h *Handler) PlaceBid(c *gin.Context) {
	auctionPilotID, err := uuid.Parse(c.Param("auctionPilotId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid auction pilot id"})
		return
	}

	var req auction.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	bid, err := h.auctions.PlaceBid(c.Request.Context(), sessionUserID(c), auctionPilotID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bid)
}

// CreateAuction handles POST /auction/create, a manual lifecycle trigger.
func (h *Handler) CreateAuction(c *gin.Context) {
	created, err := h.auctions.CreateAuction(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type quickRaceRequest struct {
	OpponentTeamID *uuid.UUID `json:"opponent_team_id"`
}

// QuickRace handles POST /race/quick
func (h *Handler) QuickRace(c *gin.Context) {
	var req quickRaceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	created, err := h.races.CreateQuickRace(c.Request.Context(), sessionUserID(c), req.OpponentTeamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// SimulateRace handles POST /race/:raceId/simulate
func (h *Handler) SimulateRace(c *gin.Context) {
	raceID, err := uuid.Parse(c.Param("raceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid race id"})
		return
	}

	result, err := h.races.SimulateRace(c.Request.Context(), raceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RaceResults handles GET /race/:raceId/results
func (h *Handler) RaceResults(c *gin.Context) {
	raceID, err := uuid.Parse(c.Param("raceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid race id"})
		return
	}

	view, err := h.races.GetRaceResults(c.Request.Context(), raceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Health handles GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
