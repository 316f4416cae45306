package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/handlers/http/middleware"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/campaign"
)

// CreateCampaignRequest is the body of POST /campaigns.
type CreateCampaignRequest struct {
	Name           string                           `json:"name"`
	Description    string                           `json:"description"`
	PartySize      int                              `json:"party_size"`
	Initialization *entities.CampaignInitialization `json:"initialization"`
}

// CreateCampaignResponse returns the campaign and, when it was initialized,
// its starting session and rewards.
type CreateCampaignResponse struct {
	Campaign         *entities.Campaign  `json:"campaign"`
	InitialSession   *entities.Session   `json:"initial_session,omitempty"`
	InitialEncounter *entities.Encounter `json:"initial_encounter,omitempty"`
}

// CampaignResponse is a campaign with its sessions in play order.
type CampaignResponse struct {
	Campaign *entities.Campaign  `json:"campaign"`
	Sessions []*entities.Session `json:"sessions"`
}

// CampaignsResponse wraps a list of campaigns.
type CampaignsResponse struct {
	Campaigns []*entities.Campaign `json:"campaigns"`
}

// DeleteCampaignResponse counts what a campaign delete removed.
type DeleteCampaignResponse struct {
	DeletedSessions   int `json:"deleted_sessions"`
	DeletedEncounters int `json:"deleted_encounters"`
}

// CreateSessionRequest is the body of POST /campaigns/:id/sessions.
type CreateSessionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SessionResponse wraps a session.
type SessionResponse struct {
	Session *entities.Session `json:"session"`
}

// DeleteSessionResponse counts the encounters removed with a session.
type DeleteSessionResponse struct {
	DeletedEncounters int `json:"deleted_encounters"`
}

// ListCampaigns handles GET /campaigns
func (h *Handler) ListCampaigns(c *gin.Context) {
	out, err := h.campaigns.ListCampaigns(c.Request.Context(), &campaign.ListCampaignsInput{
		OwnerID: middleware.OwnerID(c),
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, CampaignsResponse{Campaigns: out.Campaigns})
}

// CreateCampaign handles POST /campaigns
func (h *Handler) CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.campaigns.CreateCampaign(c.Request.Context(), &campaign.CreateCampaignInput{
		OwnerID:        middleware.OwnerID(c),
		Name:           req.Name,
		Description:    req.Description,
		PartySize:      req.PartySize,
		Initialization: req.Initialization,
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateCampaignResponse{
		Campaign:         out.Campaign,
		InitialSession:   out.InitialSession,
		InitialEncounter: out.InitialEncounter,
	})
}

// GetCampaign handles GET /campaigns/:id
func (h *Handler) GetCampaign(c *gin.Context) {
	out, err := h.campaigns.GetCampaign(c.Request.Context(), &campaign.GetCampaignInput{
		OwnerID:    middleware.OwnerID(c),
		CampaignID: c.Param("id"),
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, CampaignResponse{Campaign: out.Campaign, Sessions: out.Sessions})
}

// DeleteCampaign handles DELETE /campaigns/:id
func (h *Handler) DeleteCampaign(c *gin.Context) {
	out, err := h.campaigns.DeleteCampaign(c.Request.Context(), &campaign.DeleteCampaignInput{
		OwnerID:    middleware.OwnerID(c),
		CampaignID: c.Param("id"),
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteCampaignResponse{
		DeletedSessions:   out.DeletedSessions,
		DeletedEncounters: out.DeletedEncounters,
	})
}

// CreateSession handles POST /campaigns/:id/sessions
func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.campaigns.CreateSession(c.Request.Context(), &campaign.CreateSessionInput{
		OwnerID:     middleware.OwnerID(c),
		CampaignID:  c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Session: out.Session})
}

// DeleteSession handles DELETE /campaigns/:id/sessions/:session_id
func (h *Handler) DeleteSession(c *gin.Context) {
	out, err := h.campaigns.DeleteSession(c.Request.Context(), &campaign.DeleteSessionInput{
		OwnerID:    middleware.OwnerID(c),
		CampaignID: c.Param("id"),
		SessionID:  c.Param("session_id"),
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteSessionResponse{DeletedEncounters: out.DeletedEncounters})
}

// GetStats handles GET /campaigns/:id/stats
func (h *Handler) GetStats(c *gin.Context) {
	out, err := h.campaigns.GetStats(c.Request.Context(), &campaign.GetStatsInput{
		OwnerID:    middleware.OwnerID(c),
		CampaignID: c.Param("id"),
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Stats)
}
