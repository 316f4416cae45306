package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/handlers/http/middleware"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/calculator"
)

// CalculateXPRequest is an ad hoc combat roster.
type CalculateXPRequest struct {
	Enemies    []entities.EncounterEnemy `json:"enemies"`
	Hazards    []string                  `json:"hazards"`
	PartyLevel int                       `json:"party_level"`
	PartySize  int                       `json:"party_size"`
}

// CalculateXPResponse reports the award for a roster.
type CalculateXPResponse struct {
	Raw                  int               `json:"raw"`
	Total                int               `json:"total"`
	Difficulty           engine.Difficulty `json:"difficulty"`
	DifficultyName       string            `json:"difficulty_name"`
	Computable           bool              `json:"computable"`
	UnresolvedReferences []string          `json:"unresolved_references,omitempty"`
}

// SeverityQuery selects the party size for GET /calculator/severity.
// Difficulty is an optional tier name such as "severe".
type SeverityQuery struct {
	PartySize  int    `form:"party_size"`
	Difficulty string `form:"difficulty"`
}

// SeverityRange is one difficulty band. End is omitted for the last band.
type SeverityRange struct {
	Difficulty engine.Difficulty `json:"difficulty"`
	Name       string            `json:"name"`
	Start      int               `json:"start"`
	End        *int              `json:"end,omitempty"`
}

// SeverityResponse lists the difficulty bands for a party size.
type SeverityResponse struct {
	PartySize int             `json:"party_size"`
	Ranges    []SeverityRange `json:"ranges"`
}

// CalculateTreasureRequest is an ad hoc treasure bundle.
type CalculateTreasureRequest struct {
	Items    []string          `json:"items"`
	Currency entities.Currency `json:"currency"`
}

// CalculateTreasureResponse reports the value of a bundle in gold.
type CalculateTreasureResponse struct {
	ItemsValue           float64  `json:"items_value"`
	CurrencyValue        float64  `json:"currency_value"`
	Total                float64  `json:"total"`
	UnresolvedReferences []string `json:"unresolved_references,omitempty"`
}

// ExpectedTreasureQuery selects the campaign totals for interpolation.
type ExpectedTreasureQuery struct {
	TotalXP   int `form:"total_xp"`
	PartySize int `form:"party_size"`
}

// ExpectedTreasureResponse is the interpolated treasure for a campaign.
type ExpectedTreasureResponse struct {
	Level               int     `json:"level"`
	ExperienceThisLevel int     `json:"experience_this_level"`
	ExpectedStart       float64 `json:"expected_total_treasure_start_of_level"`
	ExpectedEnd         float64 `json:"expected_total_treasure_end_of_level"`
	Expected            float64 `json:"expected_total_treasure"`
}

// CalculateXP handles POST /calculator/xp
func (h *Handler) CalculateXP(c *gin.Context) {
	var req CalculateXPRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.calc.CalculateXP(c.Request.Context(), &calculator.CalculateXPInput{
		Enemies:    req.Enemies,
		Hazards:    req.Hazards,
		PartyLevel: req.PartyLevel,
		PartySize:  req.PartySize,
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, CalculateXPResponse{
		Raw:                  out.Result.Raw,
		Total:                out.Result.Total,
		Difficulty:           out.Result.Difficulty,
		DifficultyName:       out.Result.Difficulty.String(),
		Computable:           out.Result.Computable,
		UnresolvedReferences: out.Unresolved,
	})
}

// Severity handles GET /calculator/severity
func (h *Handler) Severity(c *gin.Context) {
	q := SeverityQuery{PartySize: engine.ReferencePartySize}
	if !bindQuery(c, &q) {
		return
	}

	input := &calculator.SeverityInput{PartySize: q.PartySize}
	if q.Difficulty != "" {
		d, err := engine.ParseDifficulty(q.Difficulty)
		if err != nil {
			middleware.WriteError(c, errors.InvalidArgument(err.Error()).WithMeta("difficulty", q.Difficulty))
			return
		}
		input.Difficulty = &d
	}

	out, err := h.calc.Severity(c.Request.Context(), input)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	resp := SeverityResponse{PartySize: q.PartySize, Ranges: make([]SeverityRange, 0, len(out.Ranges))}
	for _, r := range out.Ranges {
		row := SeverityRange{Difficulty: r.Difficulty, Name: r.Difficulty.String(), Start: r.Start}
		if !r.IsUnbounded() {
			end := r.End
			row.End = &end
		}
		resp.Ranges = append(resp.Ranges, row)
	}

	c.JSON(http.StatusOK, resp)
}

// CalculateTreasure handles POST /calculator/treasure
func (h *Handler) CalculateTreasure(c *gin.Context) {
	var req CalculateTreasureRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.calc.CalculateTreasure(c.Request.Context(), &calculator.CalculateTreasureInput{
		Items:    req.Items,
		Currency: req.Currency,
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, CalculateTreasureResponse{
		ItemsValue:           out.ItemsValue,
		CurrencyValue:        out.CurrencyValue,
		Total:                out.Total,
		UnresolvedReferences: out.Unresolved,
	})
}

// ExpectedTreasure handles GET /calculator/expected-treasure
func (h *Handler) ExpectedTreasure(c *gin.Context) {
	q := ExpectedTreasureQuery{PartySize: engine.ReferencePartySize}
	if !bindQuery(c, &q) {
		return
	}

	out, err := h.calc.ExpectedTreasure(c.Request.Context(), &calculator.ExpectedTreasureInput{
		TotalExperience: q.TotalXP,
		PartySize:       q.PartySize,
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	p := out.Progress
	c.JSON(http.StatusOK, ExpectedTreasureResponse{
		Level:               p.Level,
		ExperienceThisLevel: p.ExperienceThisLevel,
		ExpectedStart:       p.ExpectedStart,
		ExpectedEnd:         p.ExpectedEnd,
		Expected:            p.Expected,
	})
}
