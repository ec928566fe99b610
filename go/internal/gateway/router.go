package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// NewRouter wires all HTTP routes. The live feed manager may be nil when
// NATS is not configured; the websocket endpoint then responds 503.
func NewRouter(h *Handler, sessions SessionVerifier, live *ConnectionManager) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger())

	router.GET("/health", h.Health)

	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", AuthRequired(sessions), h.Me)
	}

	teams := router.Group("/team", AuthRequired(sessions))
	{
		teams.POST("", h.CreateTeam)
		teams.GET("", h.GetTeam)
		teams.PUT("/active-drivers", h.SetActiveDrivers)
	}

	auctions := router.Group("/auction")
	{
		auctions.GET("/active", AuthRequired(sessions), h.GetActiveAuction)
		auctions.POST("/bid/:auctionPilotId", AuthRequired(sessions), h.PlaceBid)
		auctions.POST("/create", AuthRequired(sessions), h.CreateAuction)
		auctions.GET("/live", func(c *gin.Context) {
			if live == nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "live feed not available"})
				return
			}
			if err := live.UpgradeConnection(c.Writer, c.Request); err != nil {
				log.Error().Err(err).Msg("failed to upgrade live feed connection")
			}
		})
	}

	races := router.Group("/race", AuthRequired(sessions))
	{
		races.POST("/quick", h.QuickRace)
		races.POST("/:raceId/simulate", h.SimulateRace)
		races.GET("/:raceId/results", h.RaceResults)
	}

	return router
}
