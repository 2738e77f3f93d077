package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arx-Game/arxii-sub002/internal/clients/lore"
	"github.com/Arx-Game/arxii-sub002/internal/engine"
	"github.com/Arx-Game/arxii-sub002/internal/errors"
)

// CatalogHandlerConfig holds dependencies for the catalog handler
type CatalogHandlerConfig struct {
	LoreClient lore.Client
	Engine     engine.Engine
}

// Validate ensures all required dependencies are present
func (c *CatalogHandlerConfig) Validate() error {
	if c.LoreClient == nil {
		return errors.InvalidArgument("lore client is required")
	}
	if c.Engine == nil {
		return errors.InvalidArgument("engine is required")
	}
	return nil
}

// CatalogHandler passes lore reference data through to the UI so the
// client never talks to the lore service directly
type CatalogHandler struct {
	loreClient lore.Client
	engine     engine.Engine
}

// NewCatalogHandler creates a new catalog handler with the given configuration
func NewCatalogHandler(cfg *CatalogHandlerConfig) (*CatalogHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CatalogHandler{
		loreClient: cfg.LoreClient,
		engine:     cfg.Engine,
	}, nil
}

// RegisterRoutes mounts the catalog endpoints on the group
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	{
		catalog.GET("/homelands", h.ListHomelands)
		catalog.GET("/homelands/:id/beginnings", h.ListBeginnings)
		catalog.GET("/homelands/:id/families", h.ListHomelandFamilies)
		catalog.GET("/species-options", h.ListSpeciesOptions)
		catalog.GET("/families", h.ListFamilies)
		catalog.GET("/resonances", h.ListResonances)
		catalog.GET("/tarot-cards", h.ListTarotCards)
		catalog.GET("/tier-thresholds", h.ListTierThresholds)
		catalog.GET("/point-budget", h.GetPointBudget)
		catalog.GET("/naming-ritual", h.GetNamingRitual)
	}
}

// ListHomelands returns every selectable homeland
func (h *CatalogHandler) ListHomelands(c *gin.Context) {
	homelands, err := h.loreClient.ListHomelands(c.Request.Context())
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"homelands": homelands})
}

// ListBeginnings returns the origin-stories offered in a homeland
func (h *CatalogHandler) ListBeginnings(c *gin.Context) {
	beginnings, err := h.loreClient.ListBeginnings(c.Request.Context(), c.Param("id"))
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"beginnings": beginnings})
}

// ListSpeciesOptions returns every species option variant
func (h *CatalogHandler) ListSpeciesOptions(c *gin.Context) {
	options, err := h.loreClient.ListSpeciesOptions(c.Request.Context())
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"species_options": options})
}

// ListFamilies returns every joinable family
func (h *CatalogHandler) ListFamilies(c *gin.Context) {
	families, err := h.loreClient.ListFamilies(c.Request.Context())
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"families": families})
}

// ListHomelandFamilies returns the families joinable from one homeland
func (h *CatalogHandler) ListHomelandFamilies(c *gin.Context) {
	families, err := h.loreClient.ListFamilies(c.Request.Context())
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	filtered, err := h.engine.FilterFamilies(c.Request.Context(), &engine.FilterFamiliesInput{
		HomelandID: c.Param("id"),
		Families:   families,
	})
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"families": filtered.Families})
}

// ListResonances returns the resonance catalog
func (h *CatalogHandler) ListResonances(c *gin.Context) {
	resonances, err := h.loreClient.ListResonances(c.Request.Context())
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"resonances": resonances})
}

// ListTarotCards returns the full tarot deck
func (h *CatalogHandler) ListTarotCards(c *gin.Context) {
	cards, err := h.loreClient.ListTarotCards(c.Request.Context())
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tarot_cards": cards})
}

// ListTierThresholds returns the power-to-tier mapping
func (h *CatalogHandler) ListTierThresholds(c *gin.Context) {
	thresholds, err := h.loreClient.ListTierThresholds(c.Request.Context())
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tier_thresholds": thresholds})
}

// GetPointBudget returns the point budget currently in force
func (h *CatalogHandler) GetPointBudget(c *gin.Context) {
	budget, err := h.loreClient.GetActivePointBudget(c.Request.Context())
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"point_budget": budget})
}

// GetNamingRitual returns the flavor text around the tarot draw
func (h *CatalogHandler) GetNamingRitual(c *gin.Context) {
	config, err := h.loreClient.GetNamingRitualConfig(c.Request.Context())
	if err != nil {
		errors.RenderJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"naming_ritual": config})
}
