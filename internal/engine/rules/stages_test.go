package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Arx-Game/arxii-sub002/internal/engine"
	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
	"github.com/Arx-Game/arxii-sub002/internal/errors"
)

type StagesTestSuite struct {
	suite.Suite
	adapter *Adapter
	ctx     context.Context
}

func TestStagesSuite(t *testing.T) {
	suite.Run(t, new(StagesTestSuite))
}

func (s *StagesTestSuite) SetupTest() {
	s.adapter = NewAdapter()
	s.ctx = context.Background()
}

func (s *StagesTestSuite) TestStagesOrder() {
	stages := s.adapter.Stages()

	s.Len(stages, 11)
	s.Equal(chargen.StageOrigin, stages[0])
	s.Equal(chargen.StageHeritage, stages[1])
	s.Equal(chargen.StageLineage, stages[2])
	s.Equal(chargen.StageReview, stages[10])
}

func (s *StagesTestSuite) TestReachability() {
	testCases := []struct {
		name          string
		draft         *chargen.CharacterDraft
		wantReachable map[string]bool
	}{
		{
			name:  "fresh draft only reaches origin",
			draft: &chargen.CharacterDraft{ID: "draft_1"},
			wantReachable: map[string]bool{
				chargen.StageOrigin:   true,
				chargen.StageHeritage: false,
				chargen.StageLineage:  false,
				chargen.StageMagic:    false,
			},
		},
		{
			name:  "homeland opens heritage only",
			draft: &chargen.CharacterDraft{ID: "draft_1", HomelandID: "hl_arx"},
			wantReachable: map[string]bool{
				chargen.StageOrigin:   true,
				chargen.StageHeritage: true,
				chargen.StageLineage:  false,
				chargen.StageReview:   false,
			},
		},
		{
			name: "homeland and beginning open everything",
			draft: &chargen.CharacterDraft{
				ID: "draft_1", HomelandID: "hl_arx", BeginningID: "beg_street",
			},
			wantReachable: map[string]bool{
				chargen.StageLineage:    true,
				chargen.StageAttributes: true,
				chargen.StageReview:     true,
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.adapter.EvaluateStages(s.ctx, &engine.EvaluateStagesInput{
				Draft: tc.draft,
			})
			s.Require().NoError(err)

			byID := make(map[string]engine.StageInfo, len(out.Stages))
			for _, st := range out.Stages {
				byID[st.ID] = st
			}
			for stage, want := range tc.wantReachable {
				s.Equal(want, byID[stage].Reachable, "stage %s", stage)
			}
		})
	}
}

func (s *StagesTestSuite) TestNamingRitualVisibility() {
	known := &chargen.Beginning{ID: "beg_noble", FamilyKnown: true}
	unknown := &chargen.Beginning{ID: "beg_foundling", FamilyKnown: false}

	testCases := []struct {
		name      string
		draft     *chargen.CharacterDraft
		beginning *chargen.Beginning
		want      bool
	}{
		{
			name:      "unknown-origins beginning shows the ritual",
			draft:     &chargen.CharacterDraft{HomelandID: "hl_arx", BeginningID: unknown.ID},
			beginning: unknown,
			want:      true,
		},
		{
			name: "orphan shows the ritual even under a family-known beginning",
			draft: &chargen.CharacterDraft{
				HomelandID: "hl_arx", BeginningID: known.ID, IsOrphan: true,
			},
			beginning: known,
			want:      true,
		},
		{
			name: "selected family hides the ritual",
			draft: &chargen.CharacterDraft{
				HomelandID: "hl_arx", BeginningID: known.ID, FamilyID: "fam_velenosa",
			},
			beginning: known,
			want:      false,
		},
		{
			name:      "family-known beginning without orphan flag hides the ritual",
			draft:     &chargen.CharacterDraft{HomelandID: "hl_arx", BeginningID: known.ID},
			beginning: known,
			want:      false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.adapter.EvaluateStages(s.ctx, &engine.EvaluateStagesInput{
				Draft:     tc.draft,
				Beginning: tc.beginning,
			})
			s.Require().NoError(err)
			s.Equal(tc.want, out.NamingRitualVisible)
		})
	}
}

func (s *StagesTestSuite) TestResolveStage() {
	testCases := []struct {
		name           string
		draft          *chargen.CharacterDraft
		requested      string
		wantStage      string
		wantRedirected bool
	}{
		{
			name:      "reachable stage enters directly",
			draft:     &chargen.CharacterDraft{HomelandID: "hl_arx"},
			requested: chargen.StageHeritage,
			wantStage: chargen.StageHeritage,
		},
		{
			name:           "missing homeland redirects to origin",
			draft:          &chargen.CharacterDraft{},
			requested:      chargen.StageLineage,
			wantStage:      chargen.StageOrigin,
			wantRedirected: true,
		},
		{
			name:           "missing beginning redirects to heritage",
			draft:          &chargen.CharacterDraft{HomelandID: "hl_arx"},
			requested:      chargen.StageMagic,
			wantStage:      chargen.StageHeritage,
			wantRedirected: true,
		},
		{
			name:      "origin is always enterable",
			draft:     &chargen.CharacterDraft{},
			requested: chargen.StageOrigin,
			wantStage: chargen.StageOrigin,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.adapter.ResolveStage(s.ctx, &engine.ResolveStageInput{
				Draft:     tc.draft,
				Requested: tc.requested,
			})
			s.Require().NoError(err)
			s.Equal(tc.wantStage, out.Stage)
			s.Equal(tc.wantRedirected, out.Redirected)
		})
	}
}

func (s *StagesTestSuite) TestResolveStageRejectsUnknown() {
	_, err := s.adapter.ResolveStage(s.ctx, &engine.ResolveStageInput{
		Draft:     &chargen.CharacterDraft{},
		Requested: "STAGE_BOGUS",
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *StagesTestSuite) TestFilterSpeciesOptions() {
	beginning := &chargen.Beginning{
		ID:               "beg_street",
		AllowedSpeciesID: []string{"sp_human", "sp_sylvan"},
	}
	options := []chargen.SpeciesOption{
		{ID: "so_human_arx", SpeciesID: "sp_human", HomelandIDs: []string{"hl_arx", "hl_reach"}},
		{ID: "so_sylvan_reach", SpeciesID: "sp_sylvan", HomelandIDs: []string{"hl_reach"}},
		{ID: "so_draconic_arx", SpeciesID: "sp_draconic", HomelandIDs: []string{"hl_arx"}},
	}

	out, err := s.adapter.FilterSpeciesOptions(s.ctx, &engine.FilterSpeciesOptionsInput{
		Beginning:  beginning,
		HomelandID: "hl_arx",
		Options:    options,
	})
	s.Require().NoError(err)

	// Draconic is not allowed by the beginning; the sylvan option is
	// not offered in this homeland.
	s.Require().Len(out.Options, 1)
	s.Equal("so_human_arx", out.Options[0].ID)
}

func (s *StagesTestSuite) TestFilterFamilies() {
	families := []chargen.Family{
		{ID: "fam_velenosa", HomelandID: "hl_arx"},
		{ID: "fam_reachwood", HomelandID: "hl_reach"},
	}

	out, err := s.adapter.FilterFamilies(s.ctx, &engine.FilterFamiliesInput{
		HomelandID: "hl_arx",
		Families:   families,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Families, 1)
	s.Equal("fam_velenosa", out.Families[0].ID)
}
