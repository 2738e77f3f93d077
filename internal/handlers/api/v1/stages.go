package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arx-Game/arxii-sub002/internal/errors"
	chargensvc "github.com/Arx-Game/arxii-sub002/internal/services/chargen"
)

// UpdateOriginRequest is the body for PUT /drafts/:id/origin
type UpdateOriginRequest struct {
	HomelandID string `json:"homeland_id"`
}

// UpdateOrigin selects the draft's homeland
func (h *Handler) UpdateOrigin(c *gin.Context) {
	var req UpdateOriginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RenderJSON(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.chargenService.UpdateOrigin(c.Request.Context(), &chargensvc.UpdateOriginInput{
		DraftID:    c.Param("id"),
		HomelandID: req.HomelandID,
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": output.Draft})
}

// UpdateHeritageRequest is the body for PUT /drafts/:id/heritage
type UpdateHeritageRequest struct {
	BeginningID     string `json:"beginning_id"`
	SpeciesOptionID string `json:"species_option_id"`
}

// UpdateHeritage selects the draft's beginning and species option
func (h *Handler) UpdateHeritage(c *gin.Context) {
	var req UpdateHeritageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RenderJSON(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.chargenService.UpdateHeritage(c.Request.Context(), &chargensvc.UpdateHeritageInput{
		DraftID:         c.Param("id"),
		BeginningID:     req.BeginningID,
		SpeciesOptionID: req.SpeciesOptionID,
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": output.Draft})
}

// UpdateLineageRequest is the body for PUT /drafts/:id/lineage
type UpdateLineageRequest struct {
	FamilyID string `json:"family_id"`
	IsOrphan bool   `json:"is_orphan"`
}

// UpdateLineage selects a family or declares the character an orphan
func (h *Handler) UpdateLineage(c *gin.Context) {
	var req UpdateLineageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RenderJSON(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.chargenService.UpdateLineage(c.Request.Context(), &chargensvc.UpdateLineageInput{
		DraftID:  c.Param("id"),
		FamilyID: req.FamilyID,
		IsOrphan: req.IsOrphan,
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": output.Draft})
}

// DrawTarot pulls a card in the naming ritual and derives a surname
func (h *Handler) DrawTarot(c *gin.Context) {
	output, err := h.chargenService.DrawTarot(c.Request.Context(), &chargensvc.DrawTarotInput{
		DraftID: c.Param("id"),
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft":    output.Draft,
		"card":     output.Card,
		"reversed": output.Reversed,
		"surname":  output.Surname,
	})
}

// UpdateDistinctionsRequest is the body for PUT /drafts/:id/distinctions
type UpdateDistinctionsRequest struct {
	DistinctionIDs []string `json:"distinction_ids"`
}

// UpdateDistinctions records the draft's chosen distinctions
func (h *Handler) UpdateDistinctions(c *gin.Context) {
	var req UpdateDistinctionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RenderJSON(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.chargenService.UpdateDistinctions(c.Request.Context(), &chargensvc.UpdateDistinctionsInput{
		DraftID:        c.Param("id"),
		DistinctionIDs: req.DistinctionIDs,
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": output.Draft})
}

// UpdatePathSkillsRequest is the body for PUT /drafts/:id/path-skills
type UpdatePathSkillsRequest struct {
	PathID   string   `json:"path_id"`
	SkillIDs []string `json:"skill_ids"`
}

// UpdatePathSkills selects the draft's life path and skills
func (h *Handler) UpdatePathSkills(c *gin.Context) {
	var req UpdatePathSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RenderJSON(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.chargenService.UpdatePathSkills(c.Request.Context(), &chargensvc.UpdatePathSkillsInput{
		DraftID:  c.Param("id"),
		PathID:   req.PathID,
		SkillIDs: req.SkillIDs,
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": output.Draft})
}

// UpdateAttributesRequest is the body for PUT /drafts/:id/attributes.
// Stat values are on the stored 10-unit scale.
type UpdateAttributesRequest struct {
	Stats map[string]int32 `json:"stats"`
}

// UpdateAttributes assigns stat values and returns the attribute budget
func (h *Handler) UpdateAttributes(c *gin.Context) {
	var req UpdateAttributesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RenderJSON(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.chargenService.UpdateAttributes(c.Request.Context(), &chargensvc.UpdateAttributesInput{
		DraftID: c.Param("id"),
		Stats:   req.Stats,
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft":            output.Draft,
		"points_spent":     output.PointsSpent,
		"points_remaining": output.PointsRemaining,
	})
}

// TechniqueRequest is one technique within a gift
type TechniqueRequest struct {
	Name           string   `json:"name"`
	StyleID        string   `json:"style_id"`
	EffectTypeID   string   `json:"effect_type_id"`
	RestrictionIDs []string `json:"restriction_ids"`
	Level          int32    `json:"level"`
}

// GiftRequest is one gift being authored
type GiftRequest struct {
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	ResonanceIDs []string           `json:"resonance_ids"`
	Techniques   []TechniqueRequest `json:"techniques"`
}

// AnimaRitualRequest is one anima ritual
type AnimaRitualRequest struct {
	StatName       string `json:"stat_name"`
	SkillID        string `json:"skill_id"`
	Specialization string `json:"specialization"`
	ResonanceID    string `json:"resonance_id"`
	Description    string `json:"description"`
}

// UpdateMagicRequest is the body for PUT /drafts/:id/magic. Empty gift
// and ritual lists decline magic entirely.
type UpdateMagicRequest struct {
	Gifts        []GiftRequest        `json:"gifts"`
	AnimaRituals []AnimaRitualRequest `json:"anima_rituals"`
}

// UpdateMagic authors the draft's gifts, techniques, and anima rituals
func (h *Handler) UpdateMagic(c *gin.Context) {
	var req UpdateMagicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RenderJSON(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	gifts := make([]chargensvc.GiftInput, 0, len(req.Gifts))
	for _, g := range req.Gifts {
		techniques := make([]chargensvc.TechniqueInput, 0, len(g.Techniques))
		for _, t := range g.Techniques {
			techniques = append(techniques, chargensvc.TechniqueInput{
				Name:           t.Name,
				StyleID:        t.StyleID,
				EffectTypeID:   t.EffectTypeID,
				RestrictionIDs: t.RestrictionIDs,
				Level:          t.Level,
			})
		}
		gifts = append(gifts, chargensvc.GiftInput{
			Name:         g.Name,
			Description:  g.Description,
			ResonanceIDs: g.ResonanceIDs,
			Techniques:   techniques,
		})
	}

	rituals := make([]chargensvc.AnimaRitualInput, 0, len(req.AnimaRituals))
	for _, r := range req.AnimaRituals {
		rituals = append(rituals, chargensvc.AnimaRitualInput{
			StatName:       r.StatName,
			SkillID:        r.SkillID,
			Specialization: r.Specialization,
			ResonanceID:    r.ResonanceID,
			Description:    r.Description,
		})
	}

	output, err := h.chargenService.UpdateMagic(c.Request.Context(), &chargensvc.UpdateMagicInput{
		DraftID:      c.Param("id"),
		Gifts:        gifts,
		AnimaRituals: rituals,
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": output.Draft})
}

// UpdateAppearanceRequest is the body for PUT /drafts/:id/appearance
type UpdateAppearanceRequest struct {
	Age         int32  `json:"age"`
	Height      string `json:"height"`
	Build       string `json:"build"`
	Description string `json:"description"`
}

// UpdateAppearance records the draft's physical description
func (h *Handler) UpdateAppearance(c *gin.Context) {
	var req UpdateAppearanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RenderJSON(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.chargenService.UpdateAppearance(c.Request.Context(), &chargensvc.UpdateAppearanceInput{
		DraftID:     c.Param("id"),
		Age:         req.Age,
		Height:      req.Height,
		Build:       req.Build,
		Description: req.Description,
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": output.Draft})
}

// UpdateIdentityRequest is the body for PUT /drafts/:id/identity. The
// surname is never accepted here; it comes from family or tarot.
type UpdateIdentityRequest struct {
	FirstName   string `json:"first_name"`
	Gender      string `json:"gender"`
	Description string `json:"description"`
	Personality string `json:"personality"`
}

// UpdateIdentity records the draft's name and persona
func (h *Handler) UpdateIdentity(c *gin.Context) {
	var req UpdateIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RenderJSON(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.chargenService.UpdateIdentity(c.Request.Context(), &chargensvc.UpdateIdentityInput{
		DraftID:     c.Param("id"),
		FirstName:   req.FirstName,
		Gender:      req.Gender,
		Description: req.Description,
		Personality: req.Personality,
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": output.Draft})
}

// UpdateFinalTouchesRequest is the body for PUT /drafts/:id/final-touches
type UpdateFinalTouchesRequest struct {
	Background string `json:"background"`
	Goals      string `json:"goals"`
}

// UpdateFinalTouches records the draft's background and goals
func (h *Handler) UpdateFinalTouches(c *gin.Context) {
	var req UpdateFinalTouchesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RenderJSON(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.chargenService.UpdateFinalTouches(c.Request.Context(), &chargensvc.UpdateFinalTouchesInput{
		DraftID:    c.Param("id"),
		Background: req.Background,
		Goals:      req.Goals,
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": output.Draft})
}
