// Package v1 implements the /api/v1 REST endpoints of the GM service.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/handlers/http/middleware"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/calculator"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/campaign"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/encounter"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	EncounterService encounter.Service
	CampaignService  campaign.Service
	Calculator       calculator.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EncounterService == nil {
		vb.RequiredField("EncounterService")
	}
	if c.CampaignService == nil {
		vb.RequiredField("CampaignService")
	}
	if c.Calculator == nil {
		vb.RequiredField("Calculator")
	}

	return vb.Build()
}

// Handler serves encounters, campaigns and the calculator over HTTP.
type Handler struct {
	encounters encounter.Service
	campaigns  campaign.Service
	calc       calculator.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		encounters: cfg.EncounterService,
		campaigns:  cfg.CampaignService,
		calc:       cfg.Calculator,
	}, nil
}

// RegisterRoutes mounts every endpoint on group. The group must run the
// Owner middleware.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	enc := group.Group("/encounters")
	enc.GET("", h.ListEncounters)
	enc.POST("", h.CreateEncounters)
	enc.POST("/accomplishments", h.CreateAccomplishment)

	enc.GET("/draft", h.GetDraft)
	enc.PUT("/draft", h.ReplaceDraft)
	enc.PATCH("/draft", h.UpdateDraft)
	enc.DELETE("/draft", h.ClearDraft)
	enc.POST("/draft/promote", h.PromoteDraft)

	enc.GET("/:id", h.GetEncounter)
	enc.PATCH("/:id", h.UpdateEncounter)
	enc.DELETE("/:id", h.DeleteEncounter)
	enc.DELETE("/:id/session", h.UnlinkSession)
	enc.POST("/:id/recalculate", h.Recalculate)

	calc := group.Group("/calculator")
	calc.POST("/xp", h.CalculateXP)
	calc.GET("/severity", h.Severity)
	calc.POST("/treasure", h.CalculateTreasure)
	calc.GET("/expected-treasure", h.ExpectedTreasure)

	camp := group.Group("/campaigns")
	camp.GET("", h.ListCampaigns)
	camp.POST("", h.CreateCampaign)
	camp.GET("/:id", h.GetCampaign)
	camp.DELETE("/:id", h.DeleteCampaign)
	camp.POST("/:id/sessions", h.CreateSession)
	camp.DELETE("/:id/sessions/:session_id", h.DeleteSession)
	camp.GET("/:id/stats", h.GetStats)
}

// bindJSON decodes the request body and reports malformed JSON as
// InvalidArgument.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		middleware.WriteError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return false
	}
	return true
}

// bindQuery decodes query parameters into dst.
func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		middleware.WriteError(c, errors.InvalidArgumentf("invalid query: %v", err))
		return false
	}
	return true
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
