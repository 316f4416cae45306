package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/handlers/http/middleware"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/encounter"
)

// EncounterResponse wraps a single encounter.
type EncounterResponse struct {
	Encounter *entities.Encounter `json:"encounter"`
}

// EncountersResponse wraps a list of encounters.
type EncountersResponse struct {
	Encounters []*entities.Encounter `json:"encounters"`
}

// CreateEncountersRequest is the body of a batch insert.
type CreateEncountersRequest struct {
	Encounters []*entities.Encounter `json:"encounters"`
}

// ListEncountersQuery filters GET /encounters.
type ListEncountersQuery struct {
	Name      string `form:"name"`
	Status    *int   `form:"status"`
	SessionID string `form:"session_id"`
	Kind      string `form:"kind"`
}

// PatchEncounterRequest is a partial edit. Absent fields are left alone.
type PatchEncounterRequest struct {
	Name             *string                   `json:"name"`
	Description      *string                   `json:"description"`
	SessionID        *string                   `json:"session_id"`
	Status           *entities.EncounterStatus `json:"status"`
	Kind             *entities.KindEnvelope    `json:"kind"`
	PartyLevel       *int                      `json:"party_level"`
	PartySize        *int                      `json:"party_size"`
	TreasureItems    *[]string                 `json:"treasure_items"`
	TreasureCurrency *entities.Currency        `json:"treasure_currency"`
	ExtraExperience  *int                      `json:"extra_experience"`

	TotalExperienceOverride      *int     `json:"total_experience_override"`
	ClearTotalExperienceOverride bool     `json:"clear_total_experience_override"`
	TotalItemsValueOverride      *float64 `json:"total_items_value_override"`
	ClearTotalItemsValueOverride bool     `json:"clear_total_items_value_override"`
}

func (r *PatchEncounterRequest) toPatch() encounter.Patch {
	p := encounter.Patch{
		Name:                         r.Name,
		Description:                  r.Description,
		SessionID:                    r.SessionID,
		Status:                       r.Status,
		PartyLevel:                   r.PartyLevel,
		PartySize:                    r.PartySize,
		TreasureItems:                r.TreasureItems,
		TreasureCurrency:             r.TreasureCurrency,
		ExtraExperience:              r.ExtraExperience,
		TotalExperienceOverride:      r.TotalExperienceOverride,
		ClearTotalExperienceOverride: r.ClearTotalExperienceOverride,
		TotalItemsValueOverride:      r.TotalItemsValueOverride,
		ClearTotalItemsValueOverride: r.ClearTotalItemsValueOverride,
	}
	if r.Kind != nil {
		p.Kind = r.Kind.Value
	}
	return p
}

// CreateAccomplishmentRequest records a narrative reward.
type CreateAccomplishmentRequest struct {
	SessionID   string `json:"session_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Size is minor, moderate or major.
	Size       string `json:"size"`
	Experience *int   `json:"experience"`
}

// ListEncounters handles GET /encounters
func (h *Handler) ListEncounters(c *gin.Context) {
	var q ListEncountersQuery
	if !bindQuery(c, &q) {
		return
	}

	filter := entities.EncounterFilter{
		Name:      q.Name,
		SessionID: q.SessionID,
		Kind:      entities.KindType(q.Kind),
	}
	if q.Status != nil {
		status := entities.EncounterStatus(*q.Status)
		filter.Status = &status
	}

	out, err := h.encounters.ListEncounters(c.Request.Context(), &encounter.ListEncountersInput{
		OwnerID: middleware.OwnerID(c),
		Filter:  filter,
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, EncountersResponse{Encounters: out.Encounters})
}

// CreateEncounters handles POST /encounters
func (h *Handler) CreateEncounters(c *gin.Context) {
	var req CreateEncountersRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.encounters.CreateEncounters(c.Request.Context(), &encounter.CreateEncountersInput{
		OwnerID:    middleware.OwnerID(c),
		Encounters: req.Encounters,
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, EncountersResponse{Encounters: out.Encounters})
}

// GetEncounter handles GET /encounters/:id
func (h *Handler) GetEncounter(c *gin.Context) {
	out, err := h.encounters.GetEncounter(c.Request.Context(), &encounter.GetEncounterInput{
		OwnerID: middleware.OwnerID(c),
		ID:      c.Param("id"),
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, EncounterResponse{Encounter: out.Encounter})
}

// UpdateEncounter handles PATCH /encounters/:id
func (h *Handler) UpdateEncounter(c *gin.Context) {
	var req PatchEncounterRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.encounters.UpdateEncounter(c.Request.Context(), &encounter.UpdateEncounterInput{
		OwnerID: middleware.OwnerID(c),
		ID:      c.Param("id"),
		Patch:   req.toPatch(),
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, EncounterResponse{Encounter: out.Encounter})
}

// DeleteEncounter handles DELETE /encounters/:id
func (h *Handler) DeleteEncounter(c *gin.Context) {
	_, err := h.encounters.DeleteEncounter(c.Request.Context(), &encounter.DeleteEncounterInput{
		OwnerID: middleware.OwnerID(c),
		ID:      c.Param("id"),
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	noContent(c)
}

// UnlinkSession handles DELETE /encounters/:id/session
func (h *Handler) UnlinkSession(c *gin.Context) {
	out, err := h.encounters.UnlinkSession(c.Request.Context(), &encounter.UnlinkSessionInput{
		OwnerID: middleware.OwnerID(c),
		ID:      c.Param("id"),
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, EncounterResponse{Encounter: out.Encounter})
}

// Recalculate handles POST /encounters/:id/recalculate
func (h *Handler) Recalculate(c *gin.Context) {
	out, err := h.encounters.Recalculate(c.Request.Context(), &encounter.RecalculateInput{
		OwnerID: middleware.OwnerID(c),
		ID:      c.Param("id"),
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, EncounterResponse{Encounter: out.Encounter})
}

// CreateAccomplishment handles POST /encounters/accomplishments
func (h *Handler) CreateAccomplishment(c *gin.Context) {
	var req CreateAccomplishmentRequest
	if !bindJSON(c, &req) {
		return
	}

	size := engine.AccomplishmentMinor
	if req.Size != "" {
		parsed, ok := engine.ParseAccomplishmentSize(req.Size)
		if !ok {
			middleware.WriteError(c, errors.InvalidArgumentf("unknown accomplishment size %q", req.Size))
			return
		}
		size = parsed
	}

	out, err := h.encounters.CreateAccomplishment(c.Request.Context(), &encounter.CreateAccomplishmentInput{
		OwnerID:     middleware.OwnerID(c),
		SessionID:   req.SessionID,
		Name:        req.Name,
		Description: req.Description,
		Size:        size,
		Experience:  req.Experience,
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, EncounterResponse{Encounter: out.Encounter})
}
