package chargen

import (
	"context"
	"strings"

	"github.com/Arx-Game/arxii-sub002/internal/engine"
	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
	"github.com/Arx-Game/arxii-sub002/internal/errors"
	chargensvc "github.com/Arx-Game/arxii-sub002/internal/services/chargen"
)

// UpdateMagic replaces the draft's gifts and anima rituals. Every
// derived value is computed here: each gift's affinity from its
// resonances, and each technique's power and tier from its components.
// Empty lists decline magic, which is a valid end state.
func (o *Orchestrator) UpdateMagic(ctx context.Context, input *chargensvc.UpdateMagicInput) (*chargensvc.UpdateMagicOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	d, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	var thresholds []chargen.TierThreshold
	if hasTechniques(input.Gifts) {
		thresholds, err = o.loreClient.ListTierThresholds(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch tier thresholds")
		}
	}

	gifts := make([]chargen.DraftGift, 0, len(input.Gifts))
	for i := range input.Gifts {
		gift, err := o.buildGift(ctx, &input.Gifts[i], thresholds)
		if err != nil {
			return nil, err
		}
		gifts = append(gifts, *gift)
	}

	rituals := make([]chargen.DraftAnimaRitual, 0, len(input.AnimaRituals))
	for i := range input.AnimaRituals {
		ritual, err := o.buildRitual(ctx, &input.AnimaRituals[i])
		if err != nil {
			return nil, err
		}
		rituals = append(rituals, *ritual)
	}

	d.Gifts = gifts
	d.AnimaRituals = rituals

	if _, err := o.refreshDerived(ctx, d); err != nil {
		return nil, err
	}
	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &chargensvc.UpdateMagicOutput{Draft: d}, nil
}

func (o *Orchestrator) buildGift(ctx context.Context, input *chargensvc.GiftInput, thresholds []chargen.TierThreshold) (*chargen.DraftGift, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("gift name is required")
	}
	if len(input.ResonanceIDs) < 1 || len(input.ResonanceIDs) > 2 {
		return nil, errors.InvalidArgumentf("gift %s must have one or two resonances", input.Name)
	}

	// Resonances stay in selection order; the first one breaks affinity
	// ties.
	resonances := make([]chargen.Resonance, 0, len(input.ResonanceIDs))
	for _, id := range input.ResonanceIDs {
		res, err := o.loreClient.GetResonance(ctx, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch resonance")
		}
		resonances = append(resonances, *res)
	}

	affinity, err := o.engine.DeriveAffinity(ctx, &engine.DeriveAffinityInput{
		Resonances: resonances,
	})
	if err != nil {
		return nil, err
	}

	techniques := make([]chargen.DraftTechnique, 0, len(input.Techniques))
	for i := range input.Techniques {
		technique, err := o.buildTechnique(ctx, &input.Techniques[i], thresholds)
		if err != nil {
			return nil, err
		}
		techniques = append(techniques, *technique)
	}

	return &chargen.DraftGift{
		Name:         input.Name,
		Description:  input.Description,
		ResonanceIDs: input.ResonanceIDs,
		Affinity:     affinity.Affinity,
		Techniques:   techniques,
	}, nil
}

func (o *Orchestrator) buildTechnique(ctx context.Context, input *chargensvc.TechniqueInput, thresholds []chargen.TierThreshold) (*chargen.DraftTechnique, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("technique name is required")
	}
	if input.StyleID == "" {
		return nil, errors.InvalidArgumentf("technique %s requires a style", input.Name)
	}
	if input.EffectTypeID == "" {
		return nil, errors.InvalidArgumentf("technique %s requires an effect type", input.Name)
	}

	if _, err := o.loreClient.GetTechniqueStyle(ctx, input.StyleID); err != nil {
		return nil, errors.Wrap(err, "failed to fetch technique style")
	}

	effectType, err := o.loreClient.GetEffectType(ctx, input.EffectTypeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch effect type")
	}

	restrictions := make([]chargen.Restriction, 0, len(input.RestrictionIDs))
	for _, id := range input.RestrictionIDs {
		restriction, err := o.loreClient.GetRestriction(ctx, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch restriction")
		}
		restrictions = append(restrictions, *restriction)
	}

	power, err := o.engine.CalculateTechniquePower(ctx, &engine.CalculateTechniquePowerInput{
		EffectType:   effectType,
		Restrictions: restrictions,
		Level:        input.Level,
		Thresholds:   thresholds,
	})
	if err != nil {
		return nil, err
	}

	return &chargen.DraftTechnique{
		Name:           input.Name,
		StyleID:        input.StyleID,
		EffectTypeID:   input.EffectTypeID,
		RestrictionIDs: input.RestrictionIDs,
		Level:          input.Level,
		Power:          power.Power,
		Tier:           power.Tier,
	}, nil
}

func (o *Orchestrator) buildRitual(ctx context.Context, input *chargensvc.AnimaRitualInput) (*chargen.DraftAnimaRitual, error) {
	if !validStatName(input.StatName) {
		return nil, errors.InvalidArgumentf("unknown stat: %s", input.StatName)
	}
	if input.SkillID == "" {
		return nil, errors.InvalidArgument("ritual skill is required")
	}
	if input.ResonanceID == "" {
		return nil, errors.InvalidArgument("ritual resonance is required")
	}

	if _, err := o.loreClient.GetResonance(ctx, input.ResonanceID); err != nil {
		return nil, errors.Wrap(err, "failed to fetch resonance")
	}

	return &chargen.DraftAnimaRitual{
		StatName:       input.StatName,
		SkillID:        input.SkillID,
		Specialization: input.Specialization,
		ResonanceID:    input.ResonanceID,
		Description:    input.Description,
	}, nil
}

func hasTechniques(gifts []chargensvc.GiftInput) bool {
	for i := range gifts {
		if len(gifts[i].Techniques) > 0 {
			return true
		}
	}
	return false
}
