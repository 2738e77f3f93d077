// Package v1 exposes the character creation service over HTTP.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Arx-Game/arxii-sub002/internal/errors"
	chargensvc "github.com/Arx-Game/arxii-sub002/internal/services/chargen"
)

// HandlerConfig holds dependencies for the character creation handler
type HandlerConfig struct {
	CharGenService chargensvc.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.CharGenService == nil {
		return errors.InvalidArgument("character creation service is required")
	}
	return nil
}

// Handler serves the character creation REST API
type Handler struct {
	chargenService chargensvc.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		chargenService: cfg.CharGenService,
	}, nil
}

// RegisterRoutes mounts all character creation endpoints on the group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	drafts := rg.Group("/drafts")
	{
		drafts.POST("", h.CreateDraft)
		drafts.GET("/:id", h.GetDraft)
		drafts.DELETE("/:id", h.DeleteDraft)

		drafts.POST("/:id/stage", h.EnterStage)
		drafts.GET("/:id/stages", h.GetStageState)

		drafts.PUT("/:id/origin", h.UpdateOrigin)
		drafts.PUT("/:id/heritage", h.UpdateHeritage)
		drafts.PUT("/:id/lineage", h.UpdateLineage)
		drafts.POST("/:id/tarot", h.DrawTarot)
		drafts.PUT("/:id/distinctions", h.UpdateDistinctions)
		drafts.PUT("/:id/path-skills", h.UpdatePathSkills)
		drafts.PUT("/:id/attributes", h.UpdateAttributes)
		drafts.PUT("/:id/magic", h.UpdateMagic)
		drafts.PUT("/:id/appearance", h.UpdateAppearance)
		drafts.PUT("/:id/identity", h.UpdateIdentity)
		drafts.PUT("/:id/final-touches", h.UpdateFinalTouches)

		drafts.POST("/:id/submit", h.SubmitDraft)
	}

	players := rg.Group("/players")
	{
		players.GET("/:player_id/draft", h.GetDraftByPlayer)
		players.GET("/:player_id/applications", h.ListApplications)
	}

	rg.GET("/applications/:id", h.GetApplication)
}
