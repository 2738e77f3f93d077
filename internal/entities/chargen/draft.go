package chargen

// CharacterDraft represents one in-progress character. It is the root
// aggregate every engine operation computes over; mutation happens only
// through stage-scoped orchestrator operations.
type CharacterDraft struct {
	ID       string
	PlayerID string

	CurrentStage string

	// Primary selections. Nullable references are empty strings.
	HomelandID      string
	BeginningID     string
	SpeciesOptionID string
	FamilyID        string
	IsOrphan        bool

	Gender string
	Age    int32

	// Stats are stored on the 10-unit scale, keyed by stat name.
	Stats map[string]int32

	// Stage payloads, one typed shape per stage.
	Identity     IdentityInfo
	Distinctions []string
	PathSkills   PathSkillsInfo
	Appearance   AppearanceInfo
	FinalTouches FinalTouchesInfo
	Gifts        []DraftGift
	AnimaRituals []DraftAnimaRitual
	TarotDraw    *TarotDraw

	// Computed by the engine after every update; never set directly.
	StageCompletion map[string]bool
	PointsSpent     int32
	PointsRemaining int32

	ExpiresAt int64
	CreatedAt int64
	UpdatedAt int64
}

// IdentityInfo holds the name and presentation choices.
type IdentityInfo struct {
	FirstName string
	// Surname is derived: the selected family's surname, or the tarot
	// draw's result when the draft has no family.
	Surname     string
	Description string
	Personality string
}

// PathSkillsInfo holds the chosen path and its skills.
type PathSkillsInfo struct {
	PathID   string
	SkillIDs []string
}

// AppearanceInfo holds the physical description choices.
type AppearanceInfo struct {
	Height      string
	Build       string
	Description string
}

// FinalTouchesInfo holds the closing free-text sections.
type FinalTouchesInfo struct {
	Background string
	Goals      string
}

// DraftGift is a player-authored magical signature: one or two
// resonances plus the techniques built on them. Affinity is derived
// from the resonances, never entered.
type DraftGift struct {
	Name         string
	ResonanceIDs []string
	Description  string
	Affinity     string
	Techniques   []DraftTechnique
}

// DraftTechnique is a single designed ability within a gift. Power and
// tier are computed from its components.
type DraftTechnique struct {
	Name           string
	StyleID        string
	EffectTypeID   string
	RestrictionIDs []string
	Level          int32
	Power          int32
	Tier           int32
}

// DraftAnimaRitual is a stat + skill + resonance triple with flavor
// text. No numeric derivation, but all three references are required
// for the ritual to count as complete.
type DraftAnimaRitual struct {
	StatName       string
	SkillID        string
	Specialization string
	ResonanceID    string
	Description    string
}

// TarotDraw records the naming-ritual card pull.
type TarotDraw struct {
	CardID   string
	Reversed bool
}

// SetFamily selects a family, clearing the orphan flag and any tarot
// draw. Family and orphan are mutually exclusive.
func (d *CharacterDraft) SetFamily(familyID string) {
	d.FamilyID = familyID
	d.IsOrphan = false
	d.TarotDraw = nil
}

// SetOrphan marks the draft as orphaned, clearing any selected family.
func (d *CharacterDraft) SetOrphan() {
	d.IsOrphan = true
	d.FamilyID = ""
}

// HasFamily reports whether a family is currently selected.
func (d *CharacterDraft) HasFamily() bool {
	return d.FamilyID != ""
}

// StageComplete reports the computed completion flag for a stage.
func (d *CharacterDraft) StageComplete(stage string) bool {
	if d.StageCompletion == nil {
		return false
	}
	return d.StageCompletion[stage]
}

// CharacterApplication is the record produced by submitting a complete
// draft. The review workflow (claim, approve, deny) operates on these
// downstream; this service only creates them.
type CharacterApplication struct {
	ID       string
	PlayerID string
	Status   string

	// CharacterName is the full display name frozen at submission
	CharacterName string

	HomelandID      string
	BeginningID     string
	SpeciesOptionID string
	FamilyID        string
	IsOrphan        bool

	Gender string
	Age    int32
	Stats  map[string]int32

	// StatBonuses are the effective species and family deltas frozen
	// at submission
	StatBonuses map[string]int32

	Identity     IdentityInfo
	Distinctions []string
	PathSkills   PathSkillsInfo
	Appearance   AppearanceInfo
	FinalTouches FinalTouchesInfo
	Gifts        []DraftGift
	AnimaRituals []DraftAnimaRitual
	TarotDraw    *TarotDraw

	PointsSpent     int32
	PointsRemaining int32

	SubmittedAt int64
}
