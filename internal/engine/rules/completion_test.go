package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Arx-Game/arxii-sub002/internal/engine"
	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
)

type CompletionTestSuite struct {
	suite.Suite
	adapter *Adapter
	ctx     context.Context
}

func TestCompletionSuite(t *testing.T) {
	suite.Run(t, new(CompletionTestSuite))
}

func (s *CompletionTestSuite) SetupTest() {
	s.adapter = NewAdapter()
	s.ctx = context.Background()
}

// completeDraft builds a draft that satisfies every stage predicate,
// using a selected family as the surname source.
func completeDraft() *chargen.CharacterDraft {
	stats := make(map[string]int32, len(chargen.StatNames))
	for _, name := range chargen.StatNames {
		stats[name] = chargen.StatFloor
	}
	stats[chargen.StatStrength] = 30

	return &chargen.CharacterDraft{
		ID:              "draft_1",
		PlayerID:        "player_1",
		HomelandID:      "hl_arx",
		BeginningID:     "beg_noble",
		SpeciesOptionID: "so_human_arx",
		FamilyID:        "fam_velenosa",
		Gender:          "female",
		Age:             24,
		Stats:           stats,
		Distinctions:    []string{"dist_scarred"},
		PathSkills: chargen.PathSkillsInfo{
			PathID:   "path_soldier",
			SkillIDs: []string{"skill_blades"},
		},
		Identity:     chargen.IdentityInfo{FirstName: "Aurelia"},
		Appearance:   chargen.AppearanceInfo{Description: "Tall, with a soldier's bearing."},
		FinalTouches: chargen.FinalTouchesInfo{Background: "Border levy.", Goals: "Earn a command."},
		PointsRemaining: 60,
	}
}

func (s *CompletionTestSuite) validate(draft *chargen.CharacterDraft, beginning *chargen.Beginning) *engine.ValidateDraftOutput {
	out, err := s.adapter.ValidateDraft(s.ctx, &engine.ValidateDraftInput{
		Draft:     draft,
		Beginning: beginning,
	})
	s.Require().NoError(err)
	return out
}

func (s *CompletionTestSuite) TestCompleteDraftPassesEveryStage() {
	out := s.validate(completeDraft(), &chargen.Beginning{ID: "beg_noble", FamilyKnown: true})

	s.True(out.IsComplete)
	s.Empty(out.IncompleteStages)
	for _, stage := range s.adapter.Stages() {
		s.True(out.StageCompletion[stage], "stage %s", stage)
	}
}

func (s *CompletionTestSuite) TestClearingEarlierFieldFlipsStageAndGate() {
	beginning := &chargen.Beginning{ID: "beg_noble", FamilyKnown: true}

	testCases := []struct {
		name      string
		mutate    func(d *chargen.CharacterDraft)
		wantStage string
	}{
		{
			name:      "clearing homeland fails origin",
			mutate:    func(d *chargen.CharacterDraft) { d.HomelandID = "" },
			wantStage: chargen.StageOrigin,
		},
		{
			name:      "clearing beginning fails heritage",
			mutate:    func(d *chargen.CharacterDraft) { d.BeginningID = "" },
			wantStage: chargen.StageHeritage,
		},
		{
			name:      "overdrawn creation points fail heritage",
			mutate:    func(d *chargen.CharacterDraft) { d.PointsRemaining = -5 },
			wantStage: chargen.StageHeritage,
		},
		{
			name:      "clearing family fails lineage",
			mutate:    func(d *chargen.CharacterDraft) { d.FamilyID = "" },
			wantStage: chargen.StageLineage,
		},
		{
			name:      "clearing distinctions fails distinctions",
			mutate:    func(d *chargen.CharacterDraft) { d.Distinctions = nil },
			wantStage: chargen.StageDistinctions,
		},
		{
			name:      "clearing skills fails path and skills",
			mutate:    func(d *chargen.CharacterDraft) { d.PathSkills.SkillIDs = nil },
			wantStage: chargen.StagePathSkills,
		},
		{
			name:      "stat below floor fails attributes",
			mutate:    func(d *chargen.CharacterDraft) { d.Stats[chargen.StatWits] = 10 },
			wantStage: chargen.StageAttributes,
		},
		{
			name: "overspent attributes fail attributes",
			mutate: func(d *chargen.CharacterDraft) {
				d.Stats[chargen.StatStrength] = chargen.StatCeiling
				d.Stats[chargen.StatWits] = 40
			},
			wantStage: chargen.StageAttributes,
		},
		{
			name:      "clearing age fails appearance",
			mutate:    func(d *chargen.CharacterDraft) { d.Age = 0 },
			wantStage: chargen.StageAppearance,
		},
		{
			name:      "clearing first name fails identity",
			mutate:    func(d *chargen.CharacterDraft) { d.Identity.FirstName = "  " },
			wantStage: chargen.StageIdentity,
		},
		{
			name:      "clearing goals fails final touches",
			mutate:    func(d *chargen.CharacterDraft) { d.FinalTouches.Goals = "" },
			wantStage: chargen.StageFinalTouches,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			draft := completeDraft()
			tc.mutate(draft)

			out := s.validate(draft, beginning)

			s.False(out.StageCompletion[tc.wantStage])
			s.False(out.StageCompletion[chargen.StageReview], "review gate must drop with %s", tc.wantStage)
			s.False(out.IsComplete)
			s.Contains(out.IncompleteStages, tc.wantStage)
		})
	}
}

func (s *CompletionTestSuite) TestReviewGateNeverSticky() {
	// A stored completion map claiming everything is done must not
	// leak into the recomputed result.
	draft := completeDraft()
	draft.HomelandID = ""
	draft.StageCompletion = map[string]bool{}
	for _, stage := range s.adapter.Stages() {
		draft.StageCompletion[stage] = true
	}

	out := s.validate(draft, &chargen.Beginning{ID: "beg_noble", FamilyKnown: true})

	s.False(out.StageCompletion[chargen.StageOrigin])
	s.False(out.StageCompletion[chargen.StageReview])
	s.False(out.IsComplete)
}

func (s *CompletionTestSuite) TestLineageViaTarotDraw() {
	foundling := &chargen.Beginning{ID: "beg_foundling", FamilyKnown: false}

	draft := completeDraft()
	draft.BeginningID = foundling.ID
	draft.FamilyID = ""
	draft.TarotDraw = &chargen.TarotDraw{CardID: "tarot_tower", Reversed: false}

	out := s.validate(draft, foundling)

	s.True(out.StageCompletion[chargen.StageLineage])
	s.True(out.StageCompletion[chargen.StageIdentity], "tarot draw supplies the surname source")
	s.True(out.IsComplete)
}

func (s *CompletionTestSuite) TestLineageIncompleteWithoutDraw() {
	foundling := &chargen.Beginning{ID: "beg_foundling", FamilyKnown: false}

	draft := completeDraft()
	draft.BeginningID = foundling.ID
	draft.FamilyID = ""
	draft.TarotDraw = nil

	out := s.validate(draft, foundling)

	s.False(out.StageCompletion[chargen.StageLineage])
	s.False(out.StageCompletion[chargen.StageIdentity])
}

func (s *CompletionTestSuite) TestMagicDeclinable() {
	draft := completeDraft()
	draft.Gifts = nil
	draft.AnimaRituals = nil

	out := s.validate(draft, &chargen.Beginning{ID: "beg_noble", FamilyKnown: true})

	s.True(out.StageCompletion[chargen.StageMagic])
}

func (s *CompletionTestSuite) TestMagicStructuralChecks() {
	beginning := &chargen.Beginning{ID: "beg_noble", FamilyKnown: true}

	testCases := []struct {
		name   string
		mutate func(d *chargen.CharacterDraft)
		want   bool
	}{
		{
			name: "well formed gift passes",
			mutate: func(d *chargen.CharacterDraft) {
				d.Gifts = []chargen.DraftGift{{
					Name:         "Emberward",
					ResonanceIDs: []string{"res_flame"},
					Affinity:     chargen.AffinityPrimal,
					Techniques: []chargen.DraftTechnique{{
						Name: "Cinder Veil", StyleID: "style_ward",
						EffectTypeID: "et_ward", Level: 2,
					}},
				}}
			},
			want: true,
		},
		{
			name: "gift without affinity fails",
			mutate: func(d *chargen.CharacterDraft) {
				d.Gifts = []chargen.DraftGift{{
					Name: "Emberward", ResonanceIDs: []string{"res_flame"},
				}}
			},
			want: false,
		},
		{
			name: "gift with three resonances fails",
			mutate: func(d *chargen.CharacterDraft) {
				d.Gifts = []chargen.DraftGift{{
					Name:         "Emberward",
					ResonanceIDs: []string{"res_a", "res_b", "res_c"},
					Affinity:     chargen.AffinityPrimal,
				}}
			},
			want: false,
		},
		{
			name: "technique without level fails",
			mutate: func(d *chargen.CharacterDraft) {
				d.Gifts = []chargen.DraftGift{{
					Name:         "Emberward",
					ResonanceIDs: []string{"res_flame"},
					Affinity:     chargen.AffinityPrimal,
					Techniques: []chargen.DraftTechnique{{
						Name: "Cinder Veil", StyleID: "style_ward", EffectTypeID: "et_ward",
					}},
				}}
			},
			want: false,
		},
		{
			name: "ritual missing resonance fails",
			mutate: func(d *chargen.CharacterDraft) {
				d.AnimaRituals = []chargen.DraftAnimaRitual{{
					StatName: chargen.StatComposure, SkillID: "skill_meditation",
				}}
			},
			want: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			draft := completeDraft()
			tc.mutate(draft)

			out := s.validate(draft, beginning)
			s.Equal(tc.want, out.StageCompletion[chargen.StageMagic])
		})
	}
}
