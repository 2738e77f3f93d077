// Package chargen defines the interface for character creation operations
package chargen

//go:generate mockgen -destination=mock/mock_service.go -package=chargenmock github.com/Arx-Game/arxii-sub002/internal/services/chargen Service

import (
	"context"

	"github.com/Arx-Game/arxii-sub002/internal/engine"
	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
)

// Service defines the interface for character creation operations
type Service interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	GetDraftByPlayer(ctx context.Context, input *GetDraftByPlayerInput) (*GetDraftByPlayerOutput, error)
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error)

	// Stage navigation
	EnterStage(ctx context.Context, input *EnterStageInput) (*EnterStageOutput, error)
	GetStageState(ctx context.Context, input *GetStageStateInput) (*GetStageStateOutput, error)

	// Stage-scoped updates
	UpdateOrigin(ctx context.Context, input *UpdateOriginInput) (*UpdateOriginOutput, error)
	UpdateHeritage(ctx context.Context, input *UpdateHeritageInput) (*UpdateHeritageOutput, error)
	UpdateLineage(ctx context.Context, input *UpdateLineageInput) (*UpdateLineageOutput, error)
	DrawTarot(ctx context.Context, input *DrawTarotInput) (*DrawTarotOutput, error)
	UpdateDistinctions(ctx context.Context, input *UpdateDistinctionsInput) (*UpdateDistinctionsOutput, error)
	UpdatePathSkills(ctx context.Context, input *UpdatePathSkillsInput) (*UpdatePathSkillsOutput, error)
	UpdateAttributes(ctx context.Context, input *UpdateAttributesInput) (*UpdateAttributesOutput, error)
	UpdateMagic(ctx context.Context, input *UpdateMagicInput) (*UpdateMagicOutput, error)
	UpdateAppearance(ctx context.Context, input *UpdateAppearanceInput) (*UpdateAppearanceOutput, error)
	UpdateIdentity(ctx context.Context, input *UpdateIdentityInput) (*UpdateIdentityOutput, error)
	UpdateFinalTouches(ctx context.Context, input *UpdateFinalTouchesInput) (*UpdateFinalTouchesOutput, error)

	// Submission
	SubmitDraft(ctx context.Context, input *SubmitDraftInput) (*SubmitDraftOutput, error)
	GetApplication(ctx context.Context, input *GetApplicationInput) (*GetApplicationOutput, error)
	ListApplications(ctx context.Context, input *ListApplicationsInput) (*ListApplicationsOutput, error)
}

// Draft lifecycle types

// CreateDraftInput defines the request for creating a draft
type CreateDraftInput struct {
	PlayerID string
}

// CreateDraftOutput defines the response for creating a draft
type CreateDraftOutput struct {
	Draft *chargen.CharacterDraft
}

// GetDraftInput defines the request for getting a draft
type GetDraftInput struct {
	DraftID string
}

// GetDraftOutput defines the response for getting a draft
type GetDraftOutput struct {
	Draft *chargen.CharacterDraft
}

// GetDraftByPlayerInput defines the request for getting a player's draft
type GetDraftByPlayerInput struct {
	PlayerID string
}

// GetDraftByPlayerOutput defines the response for getting a player's draft
type GetDraftByPlayerOutput struct {
	Draft *chargen.CharacterDraft
}

// DeleteDraftInput defines the request for deleting a draft
type DeleteDraftInput struct {
	DraftID string
}

// DeleteDraftOutput defines the response for deleting a draft
type DeleteDraftOutput struct {
	Message string
}

// Stage navigation types

// EnterStageInput defines the request for entering a stage
type EnterStageInput struct {
	DraftID string
	Stage   string
}

// EnterStageOutput defines the response for entering a stage. When the
// requested stage's prerequisites are unmet, Stage holds the first
// unmet prerequisite and Redirected is true.
type EnterStageOutput struct {
	Draft      *chargen.CharacterDraft
	Stage      string
	Redirected bool
}

// GetStageStateInput defines the request for the full stage picture
type GetStageStateInput struct {
	DraftID string
}

// GetStageStateOutput defines the response for the full stage picture.
// StatBonuses carries the effective species and family stat deltas.
type GetStageStateOutput struct {
	Draft               *chargen.CharacterDraft
	Stages              []engine.StageInfo
	NamingRitualVisible bool
	IsComplete          bool
	IncompleteStages    []string
	StatBonuses         map[string]int32
}

// Stage update types

// UpdateOriginInput defines the request for selecting a homeland
type UpdateOriginInput struct {
	DraftID    string
	HomelandID string
}

// UpdateOriginOutput defines the response for selecting a homeland
type UpdateOriginOutput struct {
	Draft *chargen.CharacterDraft
}

// UpdateHeritageInput defines the request for the Heritage stage. Both
// selections are optional so the stage can be filled in two steps, but
// a species option requires its beginning to already be chosen.
type UpdateHeritageInput struct {
	DraftID         string
	BeginningID     string
	SpeciesOptionID string
}

// UpdateHeritageOutput defines the response for the Heritage stage
type UpdateHeritageOutput struct {
	Draft *chargen.CharacterDraft
}

// UpdateLineageInput defines the request for the Lineage stage. Exactly
// one of FamilyID or IsOrphan may be given; selecting a family clears
// the orphan flag and any tarot draw, and vice versa.
type UpdateLineageInput struct {
	DraftID  string
	FamilyID string
	IsOrphan bool
}

// UpdateLineageOutput defines the response for the Lineage stage
type UpdateLineageOutput struct {
	Draft *chargen.CharacterDraft
}

// DrawTarotInput defines the request for the naming-ritual card pull
type DrawTarotInput struct {
	DraftID string
}

// DrawTarotOutput defines the response for the naming-ritual card pull
type DrawTarotOutput struct {
	Draft    *chargen.CharacterDraft
	Card     *chargen.TarotCard
	Reversed bool
	Surname  string
}

// UpdateDistinctionsInput defines the request for the Distinctions stage
type UpdateDistinctionsInput struct {
	DraftID        string
	DistinctionIDs []string
}

// UpdateDistinctionsOutput defines the response for the Distinctions stage
type UpdateDistinctionsOutput struct {
	Draft *chargen.CharacterDraft
}

// UpdatePathSkillsInput defines the request for the Path & Skills stage
type UpdatePathSkillsInput struct {
	DraftID  string
	PathID   string
	SkillIDs []string
}

// UpdatePathSkillsOutput defines the response for the Path & Skills stage
type UpdatePathSkillsOutput struct {
	Draft *chargen.CharacterDraft
}

// UpdateAttributesInput defines the request for the Attributes stage.
// Stats are on the stored 10-unit scale.
type UpdateAttributesInput struct {
	DraftID string
	Stats   map[string]int32
}

// UpdateAttributesOutput defines the response for the Attributes stage
type UpdateAttributesOutput struct {
	Draft           *chargen.CharacterDraft
	PointsSpent     int32
	PointsRemaining int32
}

// GiftInput defines one gift being authored in the Magic stage
type GiftInput struct {
	Name         string
	Description  string
	ResonanceIDs []string
	Techniques   []TechniqueInput
}

// TechniqueInput defines one technique within a gift
type TechniqueInput struct {
	Name           string
	StyleID        string
	EffectTypeID   string
	RestrictionIDs []string
	Level          int32
}

// AnimaRitualInput defines one anima ritual
type AnimaRitualInput struct {
	StatName       string
	SkillID        string
	Specialization string
	ResonanceID    string
	Description    string
}

// UpdateMagicInput defines the request for the Magic stage. Empty gift
// and ritual lists decline magic entirely.
type UpdateMagicInput struct {
	DraftID      string
	Gifts        []GiftInput
	AnimaRituals []AnimaRitualInput
}

// UpdateMagicOutput defines the response for the Magic stage, with the
// derived affinities, powers, and tiers filled in on the draft.
type UpdateMagicOutput struct {
	Draft *chargen.CharacterDraft
}

// UpdateAppearanceInput defines the request for the Appearance stage
type UpdateAppearanceInput struct {
	DraftID     string
	Age         int32
	Height      string
	Build       string
	Description string
}

// UpdateAppearanceOutput defines the response for the Appearance stage
type UpdateAppearanceOutput struct {
	Draft *chargen.CharacterDraft
}

// UpdateIdentityInput defines the request for the Identity stage
type UpdateIdentityInput struct {
	DraftID     string
	FirstName   string
	Gender      string
	Description string
	Personality string
}

// UpdateIdentityOutput defines the response for the Identity stage
type UpdateIdentityOutput struct {
	Draft *chargen.CharacterDraft
}

// UpdateFinalTouchesInput defines the request for the Final Touches stage
type UpdateFinalTouchesInput struct {
	DraftID    string
	Background string
	Goals      string
}

// UpdateFinalTouchesOutput defines the response for the Final Touches stage
type UpdateFinalTouchesOutput struct {
	Draft *chargen.CharacterDraft
}

// Submission types

// SubmitDraftInput defines the request for submitting a complete draft
type SubmitDraftInput struct {
	DraftID string
}

// SubmitDraftOutput defines the response for submitting a draft
type SubmitDraftOutput struct {
	Application *chargen.CharacterApplication
}

// GetApplicationInput defines the request for getting an application
type GetApplicationInput struct {
	ApplicationID string
}

// GetApplicationOutput defines the response for getting an application
type GetApplicationOutput struct {
	Application *chargen.CharacterApplication
}

// ListApplicationsInput defines the request for listing a player's applications
type ListApplicationsInput struct {
	PlayerID string
}

// ListApplicationsOutput defines the response for listing a player's applications
type ListApplicationsOutput struct {
	Applications []*chargen.CharacterApplication
}
