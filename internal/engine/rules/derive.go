package rules

import (
	"context"
	"fmt"
	"strings"

	"github.com/Arx-Game/arxii-sub002/internal/engine"
	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
	"github.com/Arx-Game/arxii-sub002/internal/errors"
)

// AggregateStatBonuses sums the stat deltas of every contributing
// selection. A zero delta is still summed (it is data, not absence);
// only the Display map drops entries that total zero.
func (a *Adapter) AggregateStatBonuses(
	_ context.Context,
	input *engine.AggregateStatBonusesInput,
) (*engine.AggregateStatBonusesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	bonuses := make(map[string]int32)
	addBonuses := func(contrib map[string]int32) {
		for stat, delta := range contrib {
			bonuses[stat] += delta
		}
	}

	if input.SpeciesOption != nil {
		addBonuses(input.SpeciesOption.StatBonuses)
	}
	if input.Family != nil {
		addBonuses(input.Family.StatBonuses)
	}

	display := make(map[string]int32, len(bonuses))
	for stat, total := range bonuses {
		if total != 0 {
			display[stat] = total
		}
	}

	return &engine.AggregateStatBonusesOutput{
		Bonuses: bonuses,
		Display: display,
	}, nil
}

// DeriveAffinity derives a gift's affinity from its 1-2 resonances.
// One resonance yields its default affinity; two agreeing resonances
// yield the shared affinity. When two resonances disagree, the primary
// resonance rule applies: the first-selected resonance wins. The rule
// is deterministic in the selection order the player made, so repeated
// calls with the same input always agree.
func (a *Adapter) DeriveAffinity(
	_ context.Context,
	input *engine.DeriveAffinityInput,
) (*engine.DeriveAffinityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	switch len(input.Resonances) {
	case 1:
		return &engine.DeriveAffinityOutput{
			Affinity: input.Resonances[0].DefaultAffinity,
		}, nil
	case 2:
		first := input.Resonances[0].DefaultAffinity
		second := input.Resonances[1].DefaultAffinity
		return &engine.DeriveAffinityOutput{
			Affinity:  first,
			TieBroken: first != second,
		}, nil
	default:
		return nil, errors.InvalidArgumentf(
			"a gift requires 1 or 2 resonances, got %d", len(input.Resonances))
	}
}

// CalculateTechniquePower computes a technique's power and tier.
// Restrictions are validated first: attaching one whose allowed effect
// types exclude the technique's effect type is rejected before any
// arithmetic runs. Power is the effect type's base power plus the sum
// of restriction bonuses; when the effect type scales with level, only
// the bonus portion is multiplied by level - base power is never
// rescaled.
func (a *Adapter) CalculateTechniquePower(
	_ context.Context,
	input *engine.CalculateTechniquePowerInput,
) (*engine.CalculateTechniquePowerOutput, error) {
	if input == nil || input.EffectType == nil {
		return nil, errors.InvalidArgument("effect type is required")
	}
	if input.Level < 1 {
		return nil, errors.InvalidArgumentf("technique level must be at least 1, got %d", input.Level)
	}

	var bonus int32
	for _, restriction := range input.Restrictions {
		if !containsID(restriction.AllowedEffectTypeIDs, input.EffectType.ID) {
			return nil, errors.InvalidArgumentf(
				"restriction %s does not support effect type %s",
				restriction.ID, input.EffectType.ID).
				WithMeta("restriction_id", restriction.ID).
				WithMeta("effect_type_id", input.EffectType.ID)
		}
		bonus += restriction.PowerBonus
	}

	if input.EffectType.HasPowerScaling {
		bonus *= input.Level
	}
	power := input.EffectType.BasePower + bonus

	return &engine.CalculateTechniquePowerOutput{
		Power: power,
		Tier:  a.TierForPower(power, input.Thresholds),
	}, nil
}

// TierForPower brackets a computed power into a tier using the ordered
// reference thresholds. Power above every threshold falls into the
// tier after the last; with no thresholds everything is tier 1.
func (a *Adapter) TierForPower(power int32, thresholds []chargen.TierThreshold) int32 {
	if len(thresholds) == 0 {
		return 1
	}
	for _, t := range thresholds {
		if power <= t.MaxPower {
			return t.Tier
		}
	}
	return thresholds[len(thresholds)-1].Tier + 1
}

// DeriveSurname resolves the naming-ritual surname from a tarot draw:
// the card's upright surname, or the reversed one when the card was
// drawn reversed.
func (a *Adapter) DeriveSurname(
	_ context.Context,
	input *engine.DeriveSurnameInput,
) (*engine.DeriveSurnameOutput, error) {
	if input == nil || input.Card == nil {
		return nil, errors.InvalidArgument("tarot card is required")
	}

	surname := input.Card.SurnameUpright
	if input.Reversed {
		surname = input.Card.SurnameReversed
	}

	out := &engine.DeriveSurnameOutput{Surname: surname}
	if input.FirstName != "" {
		out.FullName = fmt.Sprintf("%s %s", input.FirstName, surname)
	}
	return out, nil
}

// FullNamePreview joins a first name and surname, tolerating either
// being unset.
func (a *Adapter) FullNamePreview(firstName, surname string) string {
	return strings.TrimSpace(firstName + " " + surname)
}
