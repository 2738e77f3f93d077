package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arx-Game/arxii-sub002/internal/errors"
	chargensvc "github.com/Arx-Game/arxii-sub002/internal/services/chargen"
)

// CreateDraftRequest is the body for POST /drafts
type CreateDraftRequest struct {
	PlayerID string `json:"player_id"`
}

// CreateDraft starts a new character draft for a player
func (h *Handler) CreateDraft(c *gin.Context) {
	var req CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RenderJSON(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}
	if req.PlayerID == "" {
		errors.RenderJSON(c, errors.InvalidArgument("player_id is required"))
		return
	}

	output, err := h.chargenService.CreateDraft(c.Request.Context(), &chargensvc.CreateDraftInput{
		PlayerID: req.PlayerID,
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"draft": output.Draft})
}

// GetDraft returns a draft by ID
func (h *Handler) GetDraft(c *gin.Context) {
	output, err := h.chargenService.GetDraft(c.Request.Context(), &chargensvc.GetDraftInput{
		DraftID: c.Param("id"),
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": output.Draft})
}

// GetDraftByPlayer returns the active draft for a player
func (h *Handler) GetDraftByPlayer(c *gin.Context) {
	output, err := h.chargenService.GetDraftByPlayer(c.Request.Context(), &chargensvc.GetDraftByPlayerInput{
		PlayerID: c.Param("player_id"),
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": output.Draft})
}

// DeleteDraft abandons a draft
func (h *Handler) DeleteDraft(c *gin.Context) {
	output, err := h.chargenService.DeleteDraft(c.Request.Context(), &chargensvc.DeleteDraftInput{
		DraftID: c.Param("id"),
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": output.Message})
}

// EnterStageRequest is the body for POST /drafts/:id/stage
type EnterStageRequest struct {
	Stage string `json:"stage"`
}

// EnterStage moves the draft to a stage, redirecting to the first
// unmet prerequisite when the requested stage is not yet reachable
func (h *Handler) EnterStage(c *gin.Context) {
	var req EnterStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RenderJSON(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.chargenService.EnterStage(c.Request.Context(), &chargensvc.EnterStageInput{
		DraftID: c.Param("id"),
		Stage:   req.Stage,
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft":      output.Draft,
		"stage":      output.Stage,
		"redirected": output.Redirected,
	})
}

// GetStageState returns the full stage graph picture for a draft
func (h *Handler) GetStageState(c *gin.Context) {
	output, err := h.chargenService.GetStageState(c.Request.Context(), &chargensvc.GetStageStateInput{
		DraftID: c.Param("id"),
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft":                 output.Draft,
		"stages":                output.Stages,
		"naming_ritual_visible": output.NamingRitualVisible,
		"is_complete":           output.IsComplete,
		"incomplete_stages":     output.IncompleteStages,
		"stat_bonuses":          output.StatBonuses,
	})
}

// SubmitDraft finalizes a complete draft into an application
func (h *Handler) SubmitDraft(c *gin.Context) {
	output, err := h.chargenService.SubmitDraft(c.Request.Context(), &chargensvc.SubmitDraftInput{
		DraftID: c.Param("id"),
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"application": output.Application})
}

// GetApplication returns a submitted application by ID
func (h *Handler) GetApplication(c *gin.Context) {
	output, err := h.chargenService.GetApplication(c.Request.Context(), &chargensvc.GetApplicationInput{
		ApplicationID: c.Param("id"),
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": output.Application})
}

// ListApplications returns all applications submitted by a player
func (h *Handler) ListApplications(c *gin.Context) {
	output, err := h.chargenService.ListApplications(c.Request.Context(), &chargensvc.ListApplicationsInput{
		PlayerID: c.Param("player_id"),
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": output.Applications})
}
