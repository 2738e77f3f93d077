package engine

import (
	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
)

// StageInfo describes one stage of the creation sequence as it stands
// for a particular draft snapshot.
type StageInfo struct {
	ID        string
	Reachable bool
	Complete  bool
	Current   bool
}

// EvaluateStagesInput contains the draft snapshot and the reference
// data the stage rules depend on.
type EvaluateStagesInput struct {
	Draft *chargen.CharacterDraft
	// Beginning is the draft's selected origin-story, nil when none is
	// selected yet.
	Beginning *chargen.Beginning
}

// EvaluateStagesOutput contains the evaluated stage list
type EvaluateStagesOutput struct {
	Stages []StageInfo
	// NamingRitualVisible reports whether the tarot-draw sub-section
	// renders within the Lineage stage.
	NamingRitualVisible bool
}

// ResolveStageInput contains a stage entry request
type ResolveStageInput struct {
	Draft     *chargen.CharacterDraft
	Beginning *chargen.Beginning
	Requested string
}

// ResolveStageOutput contains the stage the caller may actually enter.
// Redirected is true when prerequisites were unmet and Stage is the
// first unmet prerequisite instead of the requested stage.
type ResolveStageOutput struct {
	Stage      string
	Redirected bool
}

// FilterSpeciesOptionsInput contains the candidate options to filter
type FilterSpeciesOptionsInput struct {
	Beginning  *chargen.Beginning
	HomelandID string
	Options    []chargen.SpeciesOption
}

// FilterSpeciesOptionsOutput contains the options permitted under the
// beginning and available in the homeland
type FilterSpeciesOptionsOutput struct {
	Options []chargen.SpeciesOption
}

// FilterFamiliesInput contains the candidate families to filter
type FilterFamiliesInput struct {
	HomelandID string
	Families   []chargen.Family
}

// FilterFamiliesOutput contains the families available in the homeland
type FilterFamiliesOutput struct {
	Families []chargen.Family
}

// CalculateCreationPointsInput contains the budget record and the
// currently active costed selections. Nil selections contribute zero.
type CalculateCreationPointsInput struct {
	Budget        *chargen.PointBudget
	Beginning     *chargen.Beginning
	SpeciesOption *chargen.SpeciesOption
}

// CalculateCreationPointsOutput contains the recomputed point economy.
// Remaining may be negative; that is a soft signal, not an error.
type CalculateCreationPointsOutput struct {
	Spent     int32
	Remaining int32
}

// CalculateAttributePointsInput contains the stat map on the stored
// 10-unit scale
type CalculateAttributePointsInput struct {
	Stats map[string]int32
}

// CalculateAttributePointsOutput contains the attribute point economy.
// Remaining may be negative; that is a soft signal, not an error.
type CalculateAttributePointsOutput struct {
	Spent     int32
	Remaining int32
}

// AggregateStatBonusesInput contains the contributing selections.
// Nil contributors are skipped.
type AggregateStatBonusesInput struct {
	SpeciesOption *chargen.SpeciesOption
	Family        *chargen.Family
}

// AggregateStatBonusesOutput contains the effective per-stat bonuses.
// Bonuses holds every summed entry including zero totals; Display holds
// only the nonzero ones.
type AggregateStatBonusesOutput struct {
	Bonuses map[string]int32
	Display map[string]int32
}

// DeriveAffinityInput contains the gift's resonances in selection order
type DeriveAffinityInput struct {
	Resonances []chargen.Resonance
}

// DeriveAffinityOutput contains the derived affinity. TieBroken is true
// when two resonances disagreed and the primary resonance rule decided.
type DeriveAffinityOutput struct {
	Affinity  string
	TieBroken bool
}

// CalculateTechniquePowerInput contains a technique's components
type CalculateTechniquePowerInput struct {
	EffectType   *chargen.EffectType
	Restrictions []chargen.Restriction
	Level        int32
	Thresholds   []chargen.TierThreshold
}

// CalculateTechniquePowerOutput contains the computed power and tier
type CalculateTechniquePowerOutput struct {
	Power int32
	Tier  int32
}

// DeriveSurnameInput contains a tarot draw and an optional first name
type DeriveSurnameInput struct {
	Card      *chargen.TarotCard
	Reversed  bool
	FirstName string
}

// DeriveSurnameOutput contains the derived surname and, when a first
// name was provided, the full-name preview.
type DeriveSurnameOutput struct {
	Surname  string
	FullName string
}

// ValidateDraftInput contains the draft to validate
type ValidateDraftInput struct {
	Draft     *chargen.CharacterDraft
	Beginning *chargen.Beginning
}

// ValidateDraftOutput contains the recomputed completion state
type ValidateDraftOutput struct {
	StageCompletion  map[string]bool
	IsComplete       bool
	IncompleteStages []string
}
