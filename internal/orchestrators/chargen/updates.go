package chargen

import (
	"context"
	"math/rand/v2"

	"github.com/Arx-Game/arxii-sub002/internal/engine"
	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
	"github.com/Arx-Game/arxii-sub002/internal/errors"
	chargensvc "github.com/Arx-Game/arxii-sub002/internal/services/chargen"
)

// UpdateOrigin selects the draft's homeland. Changing homeland
// invalidates every downstream selection that the new homeland does
// not offer: the beginning (and with it the species option), and the
// family.
func (o *Orchestrator) UpdateOrigin(ctx context.Context, input *chargensvc.UpdateOriginInput) (*chargensvc.UpdateOriginOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}
	if input.HomelandID == "" {
		return nil, errors.InvalidArgument("homeland ID is required")
	}

	d, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	if _, err := o.loreClient.GetHomeland(ctx, input.HomelandID); err != nil {
		return nil, errors.Wrap(err, "failed to fetch homeland")
	}

	if d.HomelandID != input.HomelandID {
		d.HomelandID = input.HomelandID
		if err := o.invalidateForHomeland(ctx, d); err != nil {
			return nil, err
		}
	}

	if _, err := o.refreshDerived(ctx, d); err != nil {
		return nil, err
	}
	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &chargensvc.UpdateOriginOutput{Draft: d}, nil
}

// invalidateForHomeland clears selections the draft's new homeland
// does not offer.
func (o *Orchestrator) invalidateForHomeland(ctx context.Context, d *chargen.CharacterDraft) error {
	if d.BeginningID != "" {
		beginning, err := o.loreClient.GetBeginning(ctx, d.BeginningID)
		if err != nil {
			return errors.Wrap(err, "failed to fetch beginning")
		}
		if !containsID(beginning.HomelandIDs, d.HomelandID) {
			d.BeginningID = ""
			// Species options are scoped to the beginning
			d.SpeciesOptionID = ""
		}
	}

	if d.SpeciesOptionID != "" {
		option, err := o.loreClient.GetSpeciesOption(ctx, d.SpeciesOptionID)
		if err != nil {
			return errors.Wrap(err, "failed to fetch species option")
		}
		if !containsID(option.HomelandIDs, d.HomelandID) {
			d.SpeciesOptionID = ""
		}
	}

	if d.FamilyID != "" {
		family, err := o.loreClient.GetFamily(ctx, d.FamilyID)
		if err != nil {
			return errors.Wrap(err, "failed to fetch family")
		}
		if family.HomelandID != d.HomelandID {
			d.FamilyID = ""
			d.Identity.Surname = ""
		}
	}

	return nil
}

// UpdateHeritage selects the draft's beginning and species option. The
// two selections may arrive together or in separate calls, but a
// species option always requires a beginning to validate against.
func (o *Orchestrator) UpdateHeritage(ctx context.Context, input *chargensvc.UpdateHeritageInput) (*chargensvc.UpdateHeritageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}
	if input.BeginningID == "" && input.SpeciesOptionID == "" {
		return nil, errors.InvalidArgument("beginning ID or species option ID is required")
	}

	d, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if d.HomelandID == "" {
		return nil, errors.FailedPrecondition("select a homeland before heritage")
	}

	if input.BeginningID != "" {
		beginning, err := o.loreClient.GetBeginning(ctx, input.BeginningID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch beginning")
		}
		if !containsID(beginning.HomelandIDs, d.HomelandID) {
			return nil, errors.InvalidArgumentf("beginning %s is not offered in homeland %s",
				input.BeginningID, d.HomelandID)
		}
		if d.BeginningID != input.BeginningID {
			d.BeginningID = input.BeginningID

			// The old species option survives the switch only if the
			// new beginning still permits it
			if d.SpeciesOptionID != "" {
				option, err := o.loreClient.GetSpeciesOption(ctx, d.SpeciesOptionID)
				if err != nil {
					return nil, errors.Wrap(err, "failed to fetch species option")
				}
				filtered, err := o.engine.FilterSpeciesOptions(ctx, &engine.FilterSpeciesOptionsInput{
					Beginning:  beginning,
					HomelandID: d.HomelandID,
					Options:    []chargen.SpeciesOption{*option},
				})
				if err != nil {
					return nil, err
				}
				if len(filtered.Options) == 0 {
					d.SpeciesOptionID = ""
				}
			}

			if beginning.FamilyKnown {
				// The naming ritual is gone unless the draft is orphan
				if !d.IsOrphan {
					d.TarotDraw = nil
				}
			} else if d.FamilyID != "" {
				// A family cannot be kept under unknown origins
				d.FamilyID = ""
			}
			if err := o.syncSurname(ctx, d); err != nil {
				return nil, err
			}
		}
	}

	if input.SpeciesOptionID != "" {
		if d.BeginningID == "" {
			return nil, errors.FailedPrecondition("select a beginning before a species option")
		}
		beginning, err := o.loreClient.GetBeginning(ctx, d.BeginningID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch beginning")
		}
		option, err := o.loreClient.GetSpeciesOption(ctx, input.SpeciesOptionID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch species option")
		}

		filtered, err := o.engine.FilterSpeciesOptions(ctx, &engine.FilterSpeciesOptionsInput{
			Beginning:  beginning,
			HomelandID: d.HomelandID,
			Options:    []chargen.SpeciesOption{*option},
		})
		if err != nil {
			return nil, err
		}
		if len(filtered.Options) == 0 {
			return nil, errors.InvalidArgumentf("species option %s is not available for this draft",
				input.SpeciesOptionID)
		}
		d.SpeciesOptionID = input.SpeciesOptionID
	}

	if _, err := o.refreshDerived(ctx, d); err != nil {
		return nil, err
	}
	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &chargensvc.UpdateHeritageOutput{Draft: d}, nil
}

// UpdateLineage records the draft's lineage choice: a family, orphan
// status, or a reset of both. Family and orphan are mutually
// exclusive; selecting one clears the other.
func (o *Orchestrator) UpdateLineage(ctx context.Context, input *chargensvc.UpdateLineageInput) (*chargensvc.UpdateLineageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}
	if input.FamilyID != "" && input.IsOrphan {
		return nil, errors.InvalidArgument("a draft cannot both join a family and be an orphan")
	}

	d, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if d.HomelandID == "" || d.BeginningID == "" {
		return nil, errors.FailedPrecondition("complete origin and heritage before lineage")
	}

	switch {
	case input.FamilyID != "":
		family, err := o.loreClient.GetFamily(ctx, input.FamilyID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch family")
		}
		if family.HomelandID != d.HomelandID {
			return nil, errors.InvalidArgumentf("family %s does not reside in homeland %s",
				input.FamilyID, d.HomelandID)
		}
		d.SetFamily(input.FamilyID)
		d.Identity.Surname = family.Surname

	case input.IsOrphan:
		d.SetOrphan()
		if err := o.syncSurname(ctx, d); err != nil {
			return nil, err
		}

	default:
		// Reset the stage entirely
		d.FamilyID = ""
		d.IsOrphan = false
		d.TarotDraw = nil
		d.Identity.Surname = ""
	}

	if _, err := o.refreshDerived(ctx, d); err != nil {
		return nil, err
	}
	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &chargensvc.UpdateLineageOutput{Draft: d}, nil
}

// DrawTarot performs the naming-ritual card pull: a random card from
// the deck, upright or reversed, whose face assigns the character's
// surname. Only drafts the ritual is visible for may draw.
func (o *Orchestrator) DrawTarot(ctx context.Context, input *chargensvc.DrawTarotInput) (*chargensvc.DrawTarotOutput, error) {
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

	beginning, err := o.refreshDerived(ctx, d)
	if err != nil {
		return nil, err
	}

	evaluated, err := o.engine.EvaluateStages(ctx, &engine.EvaluateStagesInput{
		Draft:     d,
		Beginning: beginning,
	})
	if err != nil {
		return nil, err
	}
	if !evaluated.NamingRitualVisible {
		return nil, errors.FailedPrecondition("the naming ritual is not available for this draft")
	}

	deck, err := o.loreClient.ListTarotCards(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch tarot deck")
	}
	if len(deck) == 0 {
		return nil, errors.Internal("tarot deck is empty")
	}

	card := deck[rand.IntN(len(deck))]
	reversed := rand.IntN(2) == 1

	derived, err := o.engine.DeriveSurname(ctx, &engine.DeriveSurnameInput{
		Card:      &card,
		Reversed:  reversed,
		FirstName: d.Identity.FirstName,
	})
	if err != nil {
		return nil, err
	}

	d.TarotDraw = &chargen.TarotDraw{CardID: card.ID, Reversed: reversed}
	d.Identity.Surname = derived.Surname

	if _, err := o.refreshDerived(ctx, d); err != nil {
		return nil, err
	}
	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &chargensvc.DrawTarotOutput{
		Draft:    d,
		Card:     &card,
		Reversed: reversed,
		Surname:  derived.Surname,
	}, nil
}

// UpdateDistinctions sets the draft's chosen distinctions
func (o *Orchestrator) UpdateDistinctions(ctx context.Context, input *chargensvc.UpdateDistinctionsInput) (*chargensvc.UpdateDistinctionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	seen := make(map[string]bool, len(input.DistinctionIDs))
	for _, id := range input.DistinctionIDs {
		if id == "" {
			return nil, errors.InvalidArgument("distinction IDs cannot be empty")
		}
		if seen[id] {
			return nil, errors.InvalidArgumentf("duplicate distinction: %s", id)
		}
		seen[id] = true
	}

	d, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	d.Distinctions = input.DistinctionIDs

	if _, err := o.refreshDerived(ctx, d); err != nil {
		return nil, err
	}
	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &chargensvc.UpdateDistinctionsOutput{Draft: d}, nil
}

// UpdatePathSkills sets the draft's path and skill selections
func (o *Orchestrator) UpdatePathSkills(ctx context.Context, input *chargensvc.UpdatePathSkillsInput) (*chargensvc.UpdatePathSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}
	if input.PathID == "" {
		return nil, errors.InvalidArgument("path ID is required")
	}

	d, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	// A path switch drops skills picked for the old path
	if d.PathSkills.PathID != "" && d.PathSkills.PathID != input.PathID {
		d.PathSkills.SkillIDs = nil
	}
	d.PathSkills.PathID = input.PathID
	if input.SkillIDs != nil {
		d.PathSkills.SkillIDs = input.SkillIDs
	}

	if _, err := o.refreshDerived(ctx, d); err != nil {
		return nil, err
	}
	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &chargensvc.UpdatePathSkillsOutput{Draft: d}, nil
}

// UpdateAttributes merges stat assignments into the draft. Values are
// on the stored 10-unit scale and must stay within the allowed band;
// overspending the attribute budget is permitted and surfaces as an
// incomplete stage rather than an error.
func (o *Orchestrator) UpdateAttributes(ctx context.Context, input *chargensvc.UpdateAttributesInput) (*chargensvc.UpdateAttributesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}
	if len(input.Stats) == 0 {
		return nil, errors.InvalidArgument("stats are required")
	}

	vb := errors.NewValidationBuilder()
	for name, value := range input.Stats {
		if !validStatName(name) {
			vb.InvalidField(name, "unknown stat")
			continue
		}
		errors.ValidateRange(name, int(value), chargen.StatFloor, chargen.StatCeiling, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	d, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	if d.Stats == nil {
		d.Stats = make(map[string]int32, len(chargen.StatNames))
	}
	for name, value := range input.Stats {
		d.Stats[name] = value
	}

	points, err := o.engine.CalculateAttributePoints(ctx, &engine.CalculateAttributePointsInput{
		Stats: d.Stats,
	})
	if err != nil {
		return nil, err
	}

	if _, err := o.refreshDerived(ctx, d); err != nil {
		return nil, err
	}
	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &chargensvc.UpdateAttributesOutput{
		Draft:           d,
		PointsSpent:     points.Spent,
		PointsRemaining: points.Remaining,
	}, nil
}

// UpdateAppearance sets the draft's physical description
func (o *Orchestrator) UpdateAppearance(ctx context.Context, input *chargensvc.UpdateAppearanceInput) (*chargensvc.UpdateAppearanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}
	if input.Age < 0 {
		return nil, errors.InvalidArgument("age cannot be negative")
	}

	d, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	d.Age = input.Age
	d.Appearance = chargen.AppearanceInfo{
		Height:      input.Height,
		Build:       input.Build,
		Description: input.Description,
	}

	if _, err := o.refreshDerived(ctx, d); err != nil {
		return nil, err
	}
	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &chargensvc.UpdateAppearanceOutput{Draft: d}, nil
}

// UpdateIdentity sets the draft's name and presentation. The surname
// is never taken from input; it stays derived from the family or the
// tarot draw.
func (o *Orchestrator) UpdateIdentity(ctx context.Context, input *chargensvc.UpdateIdentityInput) (*chargensvc.UpdateIdentityOutput, error) {
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

	d.Identity.FirstName = input.FirstName
	d.Identity.Description = input.Description
	d.Identity.Personality = input.Personality
	d.Gender = input.Gender

	if err := o.syncSurname(ctx, d); err != nil {
		return nil, err
	}

	if _, err := o.refreshDerived(ctx, d); err != nil {
		return nil, err
	}
	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &chargensvc.UpdateIdentityOutput{Draft: d}, nil
}

// UpdateFinalTouches sets the closing free-text sections
func (o *Orchestrator) UpdateFinalTouches(ctx context.Context, input *chargensvc.UpdateFinalTouchesInput) (*chargensvc.UpdateFinalTouchesOutput, error) {
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

	d.FinalTouches = chargen.FinalTouchesInfo{
		Background: input.Background,
		Goals:      input.Goals,
	}

	if _, err := o.refreshDerived(ctx, d); err != nil {
		return nil, err
	}
	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &chargensvc.UpdateFinalTouchesOutput{Draft: d}, nil
}

// syncSurname recomputes the derived surname from the draft's current
// surname source.
func (o *Orchestrator) syncSurname(ctx context.Context, d *chargen.CharacterDraft) error {
	switch {
	case d.HasFamily():
		family, err := o.loreClient.GetFamily(ctx, d.FamilyID)
		if err != nil {
			return errors.Wrap(err, "failed to fetch family")
		}
		d.Identity.Surname = family.Surname

	case d.TarotDraw != nil && d.TarotDraw.CardID != "":
		card, err := o.loreClient.GetTarotCard(ctx, d.TarotDraw.CardID)
		if err != nil {
			return errors.Wrap(err, "failed to fetch tarot card")
		}
		derived, err := o.engine.DeriveSurname(ctx, &engine.DeriveSurnameInput{
			Card:      card,
			Reversed:  d.TarotDraw.Reversed,
			FirstName: d.Identity.FirstName,
		})
		if err != nil {
			return err
		}
		d.Identity.Surname = derived.Surname

	default:
		d.Identity.Surname = ""
	}
	return nil
}

func validStatName(name string) bool {
	return containsID(chargen.StatNames, name)
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
