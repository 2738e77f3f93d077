// Package lore is the client for the lore reference-data service. All
// character-creation catalogs (homelands, beginnings, species, families,
// magic components, tarot deck, point budgets) live there; this service
// never stores reference data of its own.
package lore

//go:generate mockgen -destination=mock/mock_client.go -package=loremock github.com/Arx-Game/arxii-sub002/internal/clients/lore Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
	"github.com/Arx-Game/arxii-sub002/internal/errors"
)

// Client defines the interface for lore-service interactions
type Client interface {
	// ListHomelands returns every selectable homeland
	ListHomelands(ctx context.Context) ([]chargen.Homeland, error)

	// GetHomeland fetches one homeland by ID
	GetHomeland(ctx context.Context, id string) (*chargen.Homeland, error)

	// ListBeginnings returns the origin-stories offered in a homeland.
	// An empty homelandID returns the full catalog.
	ListBeginnings(ctx context.Context, homelandID string) ([]chargen.Beginning, error)

	// GetBeginning fetches one origin-story by ID
	GetBeginning(ctx context.Context, id string) (*chargen.Beginning, error)

	// ListSpeciesOptions returns every species option variant
	ListSpeciesOptions(ctx context.Context) ([]chargen.SpeciesOption, error)

	// GetSpeciesOption fetches one species option by ID
	GetSpeciesOption(ctx context.Context, id string) (*chargen.SpeciesOption, error)

	// ListFamilies returns every joinable family
	ListFamilies(ctx context.Context) ([]chargen.Family, error)

	// GetFamily fetches one family by ID
	GetFamily(ctx context.Context, id string) (*chargen.Family, error)

	// ListResonances returns the resonance catalog
	ListResonances(ctx context.Context) ([]chargen.Resonance, error)

	// GetResonance fetches one resonance by ID
	GetResonance(ctx context.Context, id string) (*chargen.Resonance, error)

	// GetEffectType fetches one technique effect type by ID
	GetEffectType(ctx context.Context, id string) (*chargen.EffectType, error)

	// GetRestriction fetches one technique restriction by ID
	GetRestriction(ctx context.Context, id string) (*chargen.Restriction, error)

	// GetTechniqueStyle fetches one technique style by ID
	GetTechniqueStyle(ctx context.Context, id string) (*chargen.TechniqueStyle, error)

	// ListTarotCards returns the full tarot deck
	ListTarotCards(ctx context.Context) ([]chargen.TarotCard, error)

	// GetTarotCard fetches one card by ID
	GetTarotCard(ctx context.Context, id string) (*chargen.TarotCard, error)

	// ListTierThresholds returns the power-to-tier mapping in ascending
	// MaxPower order
	ListTierThresholds(ctx context.Context) ([]chargen.TierThreshold, error)

	// GetActivePointBudget returns the point budget currently in force
	GetActivePointBudget(ctx context.Context) (*chargen.PointBudget, error)

	// GetNamingRitualConfig returns the flavor text around the tarot draw
	GetNamingRitualConfig(ctx context.Context) (*chargen.NamingRitualConfig, error)
}

// Config contains configuration options for the lore client.
type Config struct {
	// BaseURL of the lore service API
	BaseURL string
	// HTTPClient overrides the default client; mainly for tests
	HTTPClient *http.Client
	// HTTPTimeout for API requests (optional, defaults to 15 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for catalog responses (optional, defaults to 5 minutes)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		return errors.InvalidArgument("base URL is required")
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 15 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	return nil
}

type cacheEntry struct {
	body      []byte
	expiresAt time.Time
}

type client struct {
	baseURL    string
	httpClient *http.Client
	cacheTTL   time.Duration

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

// New creates a new lore client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		cacheTTL:   cfg.CacheTTL,
		cache:      make(map[string]cacheEntry),
	}, nil
}

// get fetches a lore API path and decodes the JSON body into out.
// Responses are cached per path; reference data changes rarely enough
// that a short TTL keeps stage loads off the lore service.
func (c *client) get(ctx context.Context, path string, out interface{}) error {
	if body := c.cached(path); body != nil {
		return json.Unmarshal(body, out)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to build lore request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("lore service unreachable: %s", path))
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.NotFoundf("lore resource not found: %s", path)
	case resp.StatusCode != http.StatusOK:
		return errors.Unavailablef("lore service returned %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read lore response")
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal,
			fmt.Sprintf("failed to decode lore response: %s", path))
	}

	c.store(path, body)
	return nil
}

func (c *client) cached(path string) []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.cache[path]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil
	}
	return entry.body
}

func (c *client) store(path string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[path] = cacheEntry{body: body, expiresAt: time.Now().Add(c.cacheTTL)}
}

func (c *client) ListHomelands(ctx context.Context) ([]chargen.Homeland, error) {
	var out []chargen.Homeland
	if err := c.get(ctx, "/homelands", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetHomeland(ctx context.Context, id string) (*chargen.Homeland, error) {
	if id == "" {
		return nil, errors.InvalidArgument("homeland ID is required")
	}
	var out chargen.Homeland
	if err := c.get(ctx, "/homelands/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) ListBeginnings(ctx context.Context, homelandID string) ([]chargen.Beginning, error) {
	var out []chargen.Beginning
	if err := c.get(ctx, "/beginnings", &out); err != nil {
		return nil, err
	}
	if homelandID == "" {
		return out, nil
	}

	filtered := make([]chargen.Beginning, 0, len(out))
	for _, b := range out {
		for _, hid := range b.HomelandIDs {
			if hid == homelandID {
				filtered = append(filtered, b)
				break
			}
		}
	}
	return filtered, nil
}

func (c *client) GetBeginning(ctx context.Context, id string) (*chargen.Beginning, error) {
	if id == "" {
		return nil, errors.InvalidArgument("beginning ID is required")
	}
	var out chargen.Beginning
	if err := c.get(ctx, "/beginnings/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) ListSpeciesOptions(ctx context.Context) ([]chargen.SpeciesOption, error) {
	var out []chargen.SpeciesOption
	if err := c.get(ctx, "/species-options", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetSpeciesOption(ctx context.Context, id string) (*chargen.SpeciesOption, error) {
	if id == "" {
		return nil, errors.InvalidArgument("species option ID is required")
	}
	var out chargen.SpeciesOption
	if err := c.get(ctx, "/species-options/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) ListFamilies(ctx context.Context) ([]chargen.Family, error) {
	var out []chargen.Family
	if err := c.get(ctx, "/families", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetFamily(ctx context.Context, id string) (*chargen.Family, error) {
	if id == "" {
		return nil, errors.InvalidArgument("family ID is required")
	}
	var out chargen.Family
	if err := c.get(ctx, "/families/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) ListResonances(ctx context.Context) ([]chargen.Resonance, error) {
	var out []chargen.Resonance
	if err := c.get(ctx, "/resonances", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetResonance(ctx context.Context, id string) (*chargen.Resonance, error) {
	if id == "" {
		return nil, errors.InvalidArgument("resonance ID is required")
	}
	var out chargen.Resonance
	if err := c.get(ctx, "/resonances/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GetEffectType(ctx context.Context, id string) (*chargen.EffectType, error) {
	if id == "" {
		return nil, errors.InvalidArgument("effect type ID is required")
	}
	var out chargen.EffectType
	if err := c.get(ctx, "/effect-types/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GetRestriction(ctx context.Context, id string) (*chargen.Restriction, error) {
	if id == "" {
		return nil, errors.InvalidArgument("restriction ID is required")
	}
	var out chargen.Restriction
	if err := c.get(ctx, "/restrictions/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GetTechniqueStyle(ctx context.Context, id string) (*chargen.TechniqueStyle, error) {
	if id == "" {
		return nil, errors.InvalidArgument("technique style ID is required")
	}
	var out chargen.TechniqueStyle
	if err := c.get(ctx, "/technique-styles/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) ListTarotCards(ctx context.Context) ([]chargen.TarotCard, error) {
	var out []chargen.TarotCard
	if err := c.get(ctx, "/tarot-cards", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetTarotCard(ctx context.Context, id string) (*chargen.TarotCard, error) {
	if id == "" {
		return nil, errors.InvalidArgument("tarot card ID is required")
	}
	var out chargen.TarotCard
	if err := c.get(ctx, "/tarot-cards/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) ListTierThresholds(ctx context.Context) ([]chargen.TierThreshold, error) {
	var out []chargen.TierThreshold
	if err := c.get(ctx, "/tier-thresholds", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetActivePointBudget(ctx context.Context) (*chargen.PointBudget, error) {
	var out chargen.PointBudget
	if err := c.get(ctx, "/point-budgets/active", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GetNamingRitualConfig(ctx context.Context) (*chargen.NamingRitualConfig, error) {
	var out chargen.NamingRitualConfig
	if err := c.get(ctx, "/naming-ritual", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
