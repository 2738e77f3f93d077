// Package engine defines the character-creation rules engine
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/Arx-Game/arxii-sub002/internal/engine Engine

import (
	"context"

	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
)

// Engine provides the character-creation progression and computation
// rules. Every operation is a synchronous, pure transformation of its
// input; reference data is passed in by the caller, never fetched here.
type Engine interface {
	// Stage graph
	EvaluateStages(ctx context.Context, input *EvaluateStagesInput) (*EvaluateStagesOutput, error)
	ResolveStage(ctx context.Context, input *ResolveStageInput) (*ResolveStageOutput, error)
	FilterSpeciesOptions(
		ctx context.Context,
		input *FilterSpeciesOptionsInput,
	) (*FilterSpeciesOptionsOutput, error)
	FilterFamilies(ctx context.Context, input *FilterFamiliesInput) (*FilterFamiliesOutput, error)

	// Budget ledger
	CalculateCreationPoints(
		ctx context.Context,
		input *CalculateCreationPointsInput,
	) (*CalculateCreationPointsOutput, error)
	CalculateAttributePoints(
		ctx context.Context,
		input *CalculateAttributePointsInput,
	) (*CalculateAttributePointsOutput, error)

	// Derived values
	AggregateStatBonuses(
		ctx context.Context,
		input *AggregateStatBonusesInput,
	) (*AggregateStatBonusesOutput, error)
	DeriveAffinity(ctx context.Context, input *DeriveAffinityInput) (*DeriveAffinityOutput, error)
	CalculateTechniquePower(
		ctx context.Context,
		input *CalculateTechniquePowerInput,
	) (*CalculateTechniquePowerOutput, error)
	DeriveSurname(ctx context.Context, input *DeriveSurnameInput) (*DeriveSurnameOutput, error)

	// Completion tracking
	ValidateDraft(ctx context.Context, input *ValidateDraftInput) (*ValidateDraftOutput, error)

	// Utility methods
	Stages() []string
	TierForPower(power int32, thresholds []chargen.TierThreshold) int32
	FullNamePreview(firstName, surname string) string
}
