package rules

import (
	"context"

	"github.com/Arx-Game/arxii-sub002/internal/engine"
	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
	"github.com/Arx-Game/arxii-sub002/internal/errors"
)

// stageOrder is the fixed creation sequence. Reachability is evaluated
// against it in order-of-dependency: Heritage needs a homeland, Lineage
// needs a homeland and a beginning, and everything after Lineage shares
// Lineage's prerequisites.
var stageOrder = []string{
	chargen.StageOrigin,
	chargen.StageHeritage,
	chargen.StageLineage,
	chargen.StageDistinctions,
	chargen.StagePathSkills,
	chargen.StageAttributes,
	chargen.StageMagic,
	chargen.StageAppearance,
	chargen.StageIdentity,
	chargen.StageFinalTouches,
	chargen.StageReview,
}

// Stages returns the ordered stage identifiers
func (a *Adapter) Stages() []string {
	out := make([]string, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// firstUnmetPrerequisite returns the earliest stage whose selection is
// still missing for the given target, or empty when the target is
// reachable.
func firstUnmetPrerequisite(draft *chargen.CharacterDraft, target string) string {
	switch target {
	case chargen.StageOrigin:
		return ""
	case chargen.StageHeritage:
		if draft.HomelandID == "" {
			return chargen.StageOrigin
		}
		return ""
	default:
		if draft.HomelandID == "" {
			return chargen.StageOrigin
		}
		if draft.BeginningID == "" {
			return chargen.StageHeritage
		}
		return ""
	}
}

// namingRitualVisible reports whether the tarot-draw sub-section of the
// Lineage stage renders. It shows for an unknown-origins beginning and
// for a draft explicitly marked orphan, and never while a family is
// selected.
func namingRitualVisible(draft *chargen.CharacterDraft, beginning *chargen.Beginning) bool {
	if draft.HasFamily() {
		return false
	}
	if draft.IsOrphan {
		return true
	}
	return beginning != nil && !beginning.FamilyKnown
}

// EvaluateStages computes reachability, completion, and the current
// marker for every stage of the given snapshot.
func (a *Adapter) EvaluateStages(
	ctx context.Context,
	input *engine.EvaluateStagesInput,
) (*engine.EvaluateStagesOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}

	validated, err := a.ValidateDraft(ctx, &engine.ValidateDraftInput{
		Draft:     input.Draft,
		Beginning: input.Beginning,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate draft")
	}

	stages := make([]engine.StageInfo, 0, len(stageOrder))
	for _, id := range stageOrder {
		stages = append(stages, engine.StageInfo{
			ID:        id,
			Reachable: firstUnmetPrerequisite(input.Draft, id) == "",
			Complete:  validated.StageCompletion[id],
			Current:   input.Draft.CurrentStage == id,
		})
	}

	return &engine.EvaluateStagesOutput{
		Stages:              stages,
		NamingRitualVisible: namingRitualVisible(input.Draft, input.Beginning),
	}, nil
}

// ResolveStage decides which stage a caller may actually enter. An
// unreachable request redirects to the first unmet prerequisite stage;
// that is a control-flow outcome, not an error.
func (a *Adapter) ResolveStage(
	_ context.Context,
	input *engine.ResolveStageInput,
) (*engine.ResolveStageOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}
	if !validStage(input.Requested) {
		return nil, errors.InvalidArgumentf("unknown stage: %s", input.Requested)
	}

	if unmet := firstUnmetPrerequisite(input.Draft, input.Requested); unmet != "" {
		return &engine.ResolveStageOutput{Stage: unmet, Redirected: true}, nil
	}

	return &engine.ResolveStageOutput{Stage: input.Requested}, nil
}

// FilterSpeciesOptions narrows candidate species options to those the
// selected beginning allows and the homeland offers.
func (a *Adapter) FilterSpeciesOptions(
	_ context.Context,
	input *engine.FilterSpeciesOptionsInput,
) (*engine.FilterSpeciesOptionsOutput, error) {
	if input == nil || input.Beginning == nil {
		return nil, errors.InvalidArgument("beginning is required")
	}

	allowed := make(map[string]bool, len(input.Beginning.AllowedSpeciesID))
	for _, id := range input.Beginning.AllowedSpeciesID {
		allowed[id] = true
	}

	options := make([]chargen.SpeciesOption, 0, len(input.Options))
	for _, opt := range input.Options {
		if !allowed[opt.SpeciesID] {
			continue
		}
		if input.HomelandID != "" && !containsID(opt.HomelandIDs, input.HomelandID) {
			continue
		}
		options = append(options, opt)
	}

	return &engine.FilterSpeciesOptionsOutput{Options: options}, nil
}

// FilterFamilies narrows candidate families to the given homeland.
func (a *Adapter) FilterFamilies(
	_ context.Context,
	input *engine.FilterFamiliesInput,
) (*engine.FilterFamiliesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	families := make([]chargen.Family, 0, len(input.Families))
	for _, f := range input.Families {
		if input.HomelandID == "" || f.HomelandID == input.HomelandID {
			families = append(families, f)
		}
	}

	return &engine.FilterFamiliesOutput{Families: families}, nil
}

func validStage(stage string) bool {
	for _, id := range stageOrder {
		if id == stage {
			return true
		}
	}
	return false
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
