package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/handlers/http/middleware"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/encounter"
)

// DraftResponse wraps the owner's draft.
type DraftResponse struct {
	Draft *entities.Encounter `json:"draft"`
	// Created is set when GET found the slot empty and made a new draft.
	Created bool `json:"created,omitempty"`
	// ReplacedID is the id of the draft a PUT discarded.
	ReplacedID string `json:"replaced_id,omitempty"`
}

// PromoteDraftRequest optionally pins the draft being saved.
type PromoteDraftRequest struct {
	DraftID string `json:"draft_id"`
}

// GetDraft handles GET /encounters/draft
func (h *Handler) GetDraft(c *gin.Context) {
	out, err := h.encounters.GetDraft(c.Request.Context(), &encounter.GetDraftInput{
		OwnerID: middleware.OwnerID(c),
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, DraftResponse{Draft: out.Draft, Created: out.Created})
}

// ReplaceDraft handles PUT /encounters/draft. An empty body starts a blank
// draft.
func (h *Handler) ReplaceDraft(c *gin.Context) {
	draft := &entities.Encounter{}
	if c.Request.ContentLength != 0 && !bindJSON(c, draft) {
		return
	}

	out, err := h.encounters.ReplaceDraft(c.Request.Context(), &encounter.ReplaceDraftInput{
		OwnerID: middleware.OwnerID(c),
		Draft:   draft,
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, DraftResponse{Draft: out.Draft, ReplacedID: out.ReplacedID})
}

// UpdateDraft handles PATCH /encounters/draft
func (h *Handler) UpdateDraft(c *gin.Context) {
	var req PatchEncounterRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.encounters.UpdateDraft(c.Request.Context(), &encounter.UpdateDraftInput{
		OwnerID: middleware.OwnerID(c),
		Patch:   req.toPatch(),
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, DraftResponse{Draft: out.Draft})
}

// ClearDraft handles DELETE /encounters/draft
func (h *Handler) ClearDraft(c *gin.Context) {
	_, err := h.encounters.ClearDraft(c.Request.Context(), &encounter.ClearDraftInput{
		OwnerID: middleware.OwnerID(c),
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	noContent(c)
}

// PromoteDraft handles POST /encounters/draft/promote
func (h *Handler) PromoteDraft(c *gin.Context) {
	var req PromoteDraftRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	out, err := h.encounters.PromoteDraft(c.Request.Context(), &encounter.PromoteDraftInput{
		OwnerID: middleware.OwnerID(c),
		DraftID: req.DraftID,
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, EncounterResponse{Encounter: out.Encounter})
}
