// Package chargen implements the character creation orchestrator
package chargen

import (
	"context"
	"log/slog"

	"github.com/Arx-Game/arxii-sub002/internal/clients/lore"
	"github.com/Arx-Game/arxii-sub002/internal/engine"
	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
	"github.com/Arx-Game/arxii-sub002/internal/errors"
	"github.com/Arx-Game/arxii-sub002/internal/pkg/clock"
	"github.com/Arx-Game/arxii-sub002/internal/pkg/idgen"
	applicationrepo "github.com/Arx-Game/arxii-sub002/internal/repositories/application"
	draftrepo "github.com/Arx-Game/arxii-sub002/internal/repositories/draft"
	chargensvc "github.com/Arx-Game/arxii-sub002/internal/services/chargen"
)

const draftLifetime = 30 * 24 * 60 * 60 // seconds

// Config holds the dependencies for the chargen orchestrator
type Config struct {
	DraftRepo       draftrepo.Repository
	ApplicationRepo applicationrepo.Repository
	Engine          engine.Engine
	LoreClient      lore.Client
	IDGenerator     idgen.Generator
	Clock           clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}
	if c.ApplicationRepo == nil {
		vb.RequiredField("ApplicationRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.LoreClient == nil {
		vb.RequiredField("LoreClient")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements the chargen.Service interface
type Orchestrator struct {
	draftRepo       draftrepo.Repository
	applicationRepo applicationrepo.Repository
	engine          engine.Engine
	loreClient      lore.Client
	idGenerator     idgen.Generator
	clock           clock.Clock
}

// New creates a new chargen orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		draftRepo:       cfg.DraftRepo,
		applicationRepo: cfg.ApplicationRepo,
		engine:          cfg.Engine,
		loreClient:      cfg.LoreClient,
		idGenerator:     cfg.IDGenerator,
		clock:           cfg.Clock,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ chargensvc.Service = (*Orchestrator)(nil)

// Draft lifecycle methods

// CreateDraft creates a new character draft for a player. A player
// keeps at most one draft; creating a new one replaces any existing
// draft.
func (o *Orchestrator) CreateDraft(ctx context.Context, input *chargensvc.CreateDraftInput) (*chargensvc.CreateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now().Unix()

	stats := make(map[string]int32, len(chargen.StatNames))
	for _, name := range chargen.StatNames {
		stats[name] = chargen.StatFloor
	}

	d := &chargen.CharacterDraft{
		ID:           o.idGenerator.Generate(),
		PlayerID:     input.PlayerID,
		CurrentStage: chargen.StageOrigin,
		Stats:        stats,
		CreatedAt:    now,
		UpdatedAt:    now,
		ExpiresAt:    now + draftLifetime,
	}

	if _, err := o.refreshDerived(ctx, d); err != nil {
		return nil, err
	}

	if _, err := o.draftRepo.Create(ctx, draftrepo.CreateInput{Draft: d}); err != nil {
		return nil, errors.Wrap(err, "failed to create draft")
	}

	slog.InfoContext(ctx, "created character draft",
		"draft_id", d.ID,
		"player_id", d.PlayerID,
	)

	return &chargensvc.CreateDraftOutput{Draft: d}, nil
}

// GetDraft retrieves a character draft by ID
func (o *Orchestrator) GetDraft(ctx context.Context, input *chargensvc.GetDraftInput) (*chargensvc.GetDraftOutput, error) {
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

	return &chargensvc.GetDraftOutput{Draft: d}, nil
}

// GetDraftByPlayer retrieves a player's single draft
func (o *Orchestrator) GetDraftByPlayer(ctx context.Context, input *chargensvc.GetDraftByPlayerInput) (*chargensvc.GetDraftByPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.draftRepo.GetByPlayerID(ctx, draftrepo.GetByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get draft")
	}

	return &chargensvc.GetDraftByPlayerOutput{Draft: out.Draft}, nil
}

// DeleteDraft deletes a character draft
func (o *Orchestrator) DeleteDraft(ctx context.Context, input *chargensvc.DeleteDraftInput) (*chargensvc.DeleteDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	if _, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{ID: input.DraftID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete draft")
	}

	return &chargensvc.DeleteDraftOutput{Message: "draft deleted"}, nil
}

// Stage navigation methods

// EnterStage resolves a stage entry request. When the requested stage
// has unmet prerequisites the caller is redirected to the first unmet
// prerequisite stage instead of getting an error.
func (o *Orchestrator) EnterStage(ctx context.Context, input *chargensvc.EnterStageInput) (*chargensvc.EnterStageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}
	if input.Stage == "" {
		return nil, errors.InvalidArgument("stage is required")
	}

	d, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	resolved, err := o.engine.ResolveStage(ctx, &engine.ResolveStageInput{
		Draft:     d,
		Requested: input.Stage,
	})
	if err != nil {
		return nil, err
	}

	d.CurrentStage = resolved.Stage
	if _, err := o.refreshDerived(ctx, d); err != nil {
		return nil, err
	}
	if err := o.saveDraft(ctx, d); err != nil {
		return nil, err
	}

	return &chargensvc.EnterStageOutput{
		Draft:      d,
		Stage:      resolved.Stage,
		Redirected: resolved.Redirected,
	}, nil
}

// GetStageState returns the full stage picture for a draft: per-stage
// reachability and completion, the naming-ritual visibility, and the
// aggregate submit gate.
func (o *Orchestrator) GetStageState(ctx context.Context, input *chargensvc.GetStageStateInput) (*chargensvc.GetStageStateOutput, error) {
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

	validated, err := o.engine.ValidateDraft(ctx, &engine.ValidateDraftInput{
		Draft:     d,
		Beginning: beginning,
	})
	if err != nil {
		return nil, err
	}

	bonuses, err := o.statBonuses(ctx, d)
	if err != nil {
		return nil, err
	}

	return &chargensvc.GetStageStateOutput{
		Draft:               d,
		Stages:              evaluated.Stages,
		NamingRitualVisible: evaluated.NamingRitualVisible,
		IsComplete:          validated.IsComplete,
		IncompleteStages:    validated.IncompleteStages,
		StatBonuses:         bonuses,
	}, nil
}

// Submission methods

// SubmitDraft converts a complete draft into a pending character
// application and deletes the draft. Completion is recomputed from
// scratch here; a stale stored completion map cannot sneak a draft
// through the gate.
func (o *Orchestrator) SubmitDraft(ctx context.Context, input *chargensvc.SubmitDraftInput) (*chargensvc.SubmitDraftOutput, error) {
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

	validated, err := o.engine.ValidateDraft(ctx, &engine.ValidateDraftInput{
		Draft:     d,
		Beginning: beginning,
	})
	if err != nil {
		return nil, err
	}
	if !validated.IsComplete {
		return nil, errors.FailedPrecondition("draft is not complete").
			WithMeta("incomplete_stages", validated.IncompleteStages)
	}

	bonuses, err := o.statBonuses(ctx, d)
	if err != nil {
		return nil, err
	}

	app := &chargen.CharacterApplication{
		ID:              o.idGenerator.Generate(),
		PlayerID:        d.PlayerID,
		Status:          chargen.ApplicationStatusPending,
		CharacterName:   o.engine.FullNamePreview(d.Identity.FirstName, d.Identity.Surname),
		HomelandID:      d.HomelandID,
		BeginningID:     d.BeginningID,
		SpeciesOptionID: d.SpeciesOptionID,
		FamilyID:        d.FamilyID,
		IsOrphan:        d.IsOrphan,
		Gender:          d.Gender,
		Age:             d.Age,
		Stats:           d.Stats,
		StatBonuses:     bonuses,
		Identity:        d.Identity,
		Distinctions:    d.Distinctions,
		PathSkills:      d.PathSkills,
		Appearance:      d.Appearance,
		FinalTouches:    d.FinalTouches,
		Gifts:           d.Gifts,
		AnimaRituals:    d.AnimaRituals,
		TarotDraw:       d.TarotDraw,
		PointsSpent:     d.PointsSpent,
		PointsRemaining: d.PointsRemaining,
		SubmittedAt:     o.clock.Now().Unix(),
	}

	if _, err := o.applicationRepo.Create(ctx, applicationrepo.CreateInput{Application: app}); err != nil {
		return nil, errors.Wrap(err, "failed to store application")
	}

	if _, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{ID: d.ID}); err != nil {
		// The application exists; losing the draft cleanup is the
		// lesser failure. Surface it in logs only.
		slog.WarnContext(ctx, "failed to delete submitted draft",
			"draft_id", d.ID,
			"error", err,
		)
	}

	slog.InfoContext(ctx, "submitted character application",
		"application_id", app.ID,
		"player_id", app.PlayerID,
	)

	return &chargensvc.SubmitDraftOutput{Application: app}, nil
}

// GetApplication retrieves a submitted application by ID
func (o *Orchestrator) GetApplication(ctx context.Context, input *chargensvc.GetApplicationInput) (*chargensvc.GetApplicationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ApplicationID == "" {
		return nil, errors.InvalidArgument("application ID is required")
	}

	out, err := o.applicationRepo.Get(ctx, applicationrepo.GetInput{ID: input.ApplicationID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get application")
	}

	return &chargensvc.GetApplicationOutput{Application: out.Application}, nil
}

// ListApplications lists every application a player has submitted
func (o *Orchestrator) ListApplications(ctx context.Context, input *chargensvc.ListApplicationsInput) (*chargensvc.ListApplicationsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.applicationRepo.ListByPlayerID(ctx, applicationrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	return &chargensvc.ListApplicationsOutput{Applications: out.Applications}, nil
}

// Shared helpers

func (o *Orchestrator) getDraft(ctx context.Context, id string) (*chargen.CharacterDraft, error) {
	out, err := o.draftRepo.Get(ctx, draftrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get draft")
	}
	return out.Draft, nil
}

func (o *Orchestrator) saveDraft(ctx context.Context, d *chargen.CharacterDraft) error {
	if _, err := o.draftRepo.Update(ctx, draftrepo.UpdateInput{Draft: d}); err != nil {
		return errors.Wrap(err, "failed to update draft")
	}
	return nil
}

// refreshDerived recomputes everything the draft stores but never
// owns: the creation-point ledger and the per-stage completion map.
// Called after every mutation so derived state is never stale. Returns
// the draft's beginning for callers that need it.
func (o *Orchestrator) refreshDerived(ctx context.Context, d *chargen.CharacterDraft) (*chargen.Beginning, error) {
	var beginning *chargen.Beginning
	if d.BeginningID != "" {
		b, err := o.loreClient.GetBeginning(ctx, d.BeginningID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch beginning")
		}
		beginning = b
	}

	var speciesOption *chargen.SpeciesOption
	if d.SpeciesOptionID != "" {
		so, err := o.loreClient.GetSpeciesOption(ctx, d.SpeciesOptionID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch species option")
		}
		speciesOption = so
	}

	budget, err := o.loreClient.GetActivePointBudget(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch point budget")
	}

	points, err := o.engine.CalculateCreationPoints(ctx, &engine.CalculateCreationPointsInput{
		Budget:        budget,
		Beginning:     beginning,
		SpeciesOption: speciesOption,
	})
	if err != nil {
		return nil, err
	}
	d.PointsSpent = points.Spent
	d.PointsRemaining = points.Remaining

	validated, err := o.engine.ValidateDraft(ctx, &engine.ValidateDraftInput{
		Draft:     d,
		Beginning: beginning,
	})
	if err != nil {
		return nil, err
	}
	d.StageCompletion = validated.StageCompletion

	// Every write extends the draft's life by the full window
	now := o.clock.Now().Unix()
	d.UpdatedAt = now
	d.ExpiresAt = now + draftLifetime
	return beginning, nil
}

// statBonuses aggregates the effective stat deltas of the draft's
// species option and family selections.
func (o *Orchestrator) statBonuses(ctx context.Context, d *chargen.CharacterDraft) (map[string]int32, error) {
	var speciesOption *chargen.SpeciesOption
	if d.SpeciesOptionID != "" {
		so, err := o.loreClient.GetSpeciesOption(ctx, d.SpeciesOptionID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch species option")
		}
		speciesOption = so
	}

	var family *chargen.Family
	if d.FamilyID != "" {
		f, err := o.loreClient.GetFamily(ctx, d.FamilyID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch family")
		}
		family = f
	}

	aggregated, err := o.engine.AggregateStatBonuses(ctx, &engine.AggregateStatBonusesInput{
		SpeciesOption: speciesOption,
		Family:        family,
	})
	if err != nil {
		return nil, err
	}
	return aggregated.Bonuses, nil
}
