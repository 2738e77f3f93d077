// Package chargen holds the character-creation entities.
// NOTE: These are data-only structs. All derivation (budgets, affinities,
// technique power, stage completion) is done by the engine, not here.
package chargen

// Homeland is a region a character may begin in. It gates which
// beginnings, species options, and families are available.
type Homeland struct {
	ID          string
	Name        string
	Description string
}

// Beginning is an origin-story option offered within one or more
// homelands. Its cost is paid from the creation-point budget.
type Beginning struct {
	ID               string
	Name             string
	Description      string
	HomelandIDs      []string
	Cost             int32
	FamilyKnown      bool
	AllowedSpeciesID []string
}

// Species is a playable species. Per-homeland variants live in
// SpeciesOption; the base record only carries shared flavor.
type Species struct {
	ID          string
	Name        string
	Description string
}

// SpeciesOption is a species as offered in specific homelands, with its
// own cost and stat bonuses.
type SpeciesOption struct {
	ID          string
	SpeciesID   string
	Name        string
	HomelandIDs []string
	Cost        int32
	StatBonuses map[string]int32
}

// Family is a lineage a character may be born into.
type Family struct {
	ID          string
	HomelandID  string
	Name        string
	Surname     string
	Description string
	StatBonuses map[string]int32
}

// Resonance is a magical thematic concept. Every resonance carries an
// inherent default affinity.
type Resonance struct {
	ID              string
	Name            string
	Description     string
	DefaultAffinity string
}

// EffectType describes what a technique does and contributes the base
// portion of its computed power.
type EffectType struct {
	ID              string
	Name            string
	Description     string
	BasePower       int32
	HasPowerScaling bool
}

// Restriction is a drawback attached to a technique in exchange for a
// power bonus. It is only compatible with the effect types it lists.
type Restriction struct {
	ID                   string
	Name                 string
	Description          string
	PowerBonus           int32
	AllowedEffectTypeIDs []string
}

// TechniqueStyle is the manner in which a technique manifests.
type TechniqueStyle struct {
	ID          string
	Name        string
	Description string
}

// TarotCard is one card of the naming-ritual deck. Drawing it upright
// or reversed assigns the matching surname.
type TarotCard struct {
	ID              string
	Name            string
	SurnameUpright  string
	SurnameReversed string
}

// TierThreshold maps a computed power ceiling to a technique tier.
// Thresholds are reference data, ordered by ascending MaxPower; a power
// above every threshold falls into the tier after the last.
type TierThreshold struct {
	Tier     int32
	MaxPower int32
}

// PointBudget is the creation-point allotment record.
type PointBudget struct {
	ID             string
	StartingPoints int32
	Active         bool
}

// NamingRitualConfig carries the flavor text shown around the tarot
// draw. Purely presentational; the engine only needs the deck.
type NamingRitualConfig struct {
	Title        string
	Introduction string
	DrawPrompt   string
}
