package chargen

// Stage identifiers, in creation order
const (
	StageOrigin       = "STAGE_ORIGIN"
	StageHeritage     = "STAGE_HERITAGE"
	StageLineage      = "STAGE_LINEAGE"
	StageDistinctions = "STAGE_DISTINCTIONS"
	StagePathSkills   = "STAGE_PATH_SKILLS"
	StageAttributes   = "STAGE_ATTRIBUTES"
	StageMagic        = "STAGE_MAGIC"
	StageAppearance   = "STAGE_APPEARANCE"
	StageIdentity     = "STAGE_IDENTITY"
	StageFinalTouches = "STAGE_FINAL_TOUCHES"
	StageReview       = "STAGE_REVIEW"
)

// Affinity constants - the three root magical alignments
const (
	AffinityElysian = "AFFINITY_ELYSIAN"
	AffinityAbyssal = "AFFINITY_ABYSSAL"
	AffinityPrimal  = "AFFINITY_PRIMAL"
)

// Stat constants - the nine attributes every character carries
const (
	StatStrength   = "strength"
	StatDexterity  = "dexterity"
	StatStamina    = "stamina"
	StatCharm      = "charm"
	StatCommand    = "command"
	StatComposure  = "composure"
	StatIntellect  = "intellect"
	StatPerception = "perception"
	StatWits       = "wits"
)

// StatNames lists the nine stats in display order
var StatNames = []string{
	StatStrength,
	StatDexterity,
	StatStamina,
	StatCharm,
	StatCommand,
	StatComposure,
	StatIntellect,
	StatPerception,
	StatWits,
}

// Attribute economy. Stats are stored on a 10-unit scale (displayed
// divided by 10), so the nominal 1-5 range is 10-50 in storage. Spend
// for a stat is its stored value divided by 10, floored.
const (
	StatUnitScale = 10
	StatFloor     = 20 // default of 2 on the display scale
	StatCeiling   = 50

	// BonusAttributePoints on top of the cost of every stat at its floor:
	// 9 stats at 2 each, plus 3 free.
	BonusAttributePoints    = 3
	StartingAttributeBudget = 9*(StatFloor/StatUnitScale) + BonusAttributePoints
)

// Application status constants
const (
	ApplicationStatusPending = "APPLICATION_STATUS_PENDING"
)
