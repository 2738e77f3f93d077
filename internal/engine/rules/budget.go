package rules

import (
	"context"

	"github.com/Arx-Game/arxii-sub002/internal/engine"
	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
	"github.com/Arx-Game/arxii-sub002/internal/errors"
)

// CalculateCreationPoints recomputes the creation-point economy from
// the currently active costed selections. The spend is always the sum
// of the active costs, never an accumulation, so re-selecting a cheaper
// option refunds the difference. Remaining may go negative; the
// completion tracker decides what that means.
func (a *Adapter) CalculateCreationPoints(
	_ context.Context,
	input *engine.CalculateCreationPointsInput,
) (*engine.CalculateCreationPointsOutput, error) {
	if input == nil || input.Budget == nil {
		return nil, errors.InvalidArgument("point budget is required")
	}

	var spent int32
	if input.Beginning != nil {
		spent += input.Beginning.Cost
	}
	if input.SpeciesOption != nil {
		spent += input.SpeciesOption.Cost
	}

	return &engine.CalculateCreationPointsOutput{
		Spent:     spent,
		Remaining: input.Budget.StartingPoints - spent,
	}, nil
}

// CalculateAttributePoints computes the attribute-point economy from
// the stat map. Spend per stat is the stored value divided by 10 using
// integer division, so a stored 25 spends 2 points, not 2.5. The
// computation is pure and idempotent.
func (a *Adapter) CalculateAttributePoints(
	_ context.Context,
	input *engine.CalculateAttributePointsInput,
) (*engine.CalculateAttributePointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var spent int32
	for _, name := range chargen.StatNames {
		spent += input.Stats[name] / chargen.StatUnitScale
	}

	return &engine.CalculateAttributePointsOutput{
		Spent:     spent,
		Remaining: chargen.StartingAttributeBudget - spent,
	}, nil
}
