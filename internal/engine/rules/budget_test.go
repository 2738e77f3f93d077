package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Arx-Game/arxii-sub002/internal/engine"
	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
	"github.com/Arx-Game/arxii-sub002/internal/errors"
)

type BudgetTestSuite struct {
	suite.Suite
	adapter *Adapter
	ctx     context.Context
}

func TestBudgetSuite(t *testing.T) {
	suite.Run(t, new(BudgetTestSuite))
}

func (s *BudgetTestSuite) SetupTest() {
	s.adapter = NewAdapter()
	s.ctx = context.Background()
}

func (s *BudgetTestSuite) TestCreationPoints() {
	budget := &chargen.PointBudget{StartingPoints: 100, Active: true}

	testCases := []struct {
		name          string
		beginning     *chargen.Beginning
		speciesOption *chargen.SpeciesOption
		wantSpent     int32
		wantRemaining int32
	}{
		{
			name:          "no selections",
			wantSpent:     0,
			wantRemaining: 100,
		},
		{
			name:          "free beginning with costed species option",
			beginning:     &chargen.Beginning{ID: "beg_street", Cost: 0},
			speciesOption: &chargen.SpeciesOption{ID: "so_sylvan", Cost: 20},
			wantSpent:     20,
			wantRemaining: 80,
		},
		{
			name:          "both costed",
			beginning:     &chargen.Beginning{ID: "beg_noble", Cost: 30},
			speciesOption: &chargen.SpeciesOption{ID: "so_sylvan", Cost: 20},
			wantSpent:     50,
			wantRemaining: 50,
		},
		{
			name:          "overspend surfaces negative remaining",
			beginning:     &chargen.Beginning{ID: "beg_noble", Cost: 80},
			speciesOption: &chargen.SpeciesOption{ID: "so_draconic", Cost: 40},
			wantSpent:     120,
			wantRemaining: -20,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.adapter.CalculateCreationPoints(s.ctx, &engine.CalculateCreationPointsInput{
				Budget:        budget,
				Beginning:     tc.beginning,
				SpeciesOption: tc.speciesOption,
			})
			s.Require().NoError(err)
			s.Equal(tc.wantSpent, out.Spent)
			s.Equal(tc.wantRemaining, out.Remaining)
		})
	}
}

func (s *BudgetTestSuite) TestCreationPointsReselectionRefunds() {
	budget := &chargen.PointBudget{StartingPoints: 100, Active: true}
	beginning := &chargen.Beginning{ID: "beg_street", Cost: 0}

	costed, err := s.adapter.CalculateCreationPoints(s.ctx, &engine.CalculateCreationPointsInput{
		Budget:        budget,
		Beginning:     beginning,
		SpeciesOption: &chargen.SpeciesOption{ID: "so_sylvan", Cost: 20},
	})
	s.Require().NoError(err)
	s.Equal(int32(80), costed.Remaining)

	// Switching to a free option must return to the full budget, not
	// subtract the old cost again.
	free, err := s.adapter.CalculateCreationPoints(s.ctx, &engine.CalculateCreationPointsInput{
		Budget:        budget,
		Beginning:     beginning,
		SpeciesOption: &chargen.SpeciesOption{ID: "so_human", Cost: 0},
	})
	s.Require().NoError(err)
	s.Equal(int32(100), free.Remaining)
}

func (s *BudgetTestSuite) TestCreationPointsRequiresBudget() {
	_, err := s.adapter.CalculateCreationPoints(s.ctx, &engine.CalculateCreationPointsInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func defaultStats() map[string]int32 {
	stats := make(map[string]int32, len(chargen.StatNames))
	for _, name := range chargen.StatNames {
		stats[name] = chargen.StatFloor
	}
	return stats
}

func (s *BudgetTestSuite) TestAttributePoints() {
	testCases := []struct {
		name          string
		mutate        func(map[string]int32)
		wantSpent     int32
		wantRemaining int32
	}{
		{
			name:          "all stats at floor",
			mutate:        func(map[string]int32) {},
			wantSpent:     18,
			wantRemaining: 3,
		},
		{
			name: "strength raised to 40",
			mutate: func(stats map[string]int32) {
				stats[chargen.StatStrength] = 40
			},
			wantSpent:     20,
			wantRemaining: 1,
		},
		{
			name: "overspend surfaces negative free points",
			mutate: func(stats map[string]int32) {
				stats[chargen.StatStrength] = 50
				stats[chargen.StatWits] = 40
			},
			wantSpent:     23,
			wantRemaining: -2,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			stats := defaultStats()
			tc.mutate(stats)

			out, err := s.adapter.CalculateAttributePoints(s.ctx, &engine.CalculateAttributePointsInput{
				Stats: stats,
			})
			s.Require().NoError(err)
			s.Equal(tc.wantSpent, out.Spent)
			s.Equal(tc.wantRemaining, out.Remaining)
		})
	}
}

func (s *BudgetTestSuite) TestAttributePointsFloorSemantics() {
	// A stored value of 25 spends 2 points, not 2.5 rounded up.
	stats := defaultStats()
	stats[chargen.StatDexterity] = 25

	out, err := s.adapter.CalculateAttributePoints(s.ctx, &engine.CalculateAttributePointsInput{
		Stats: stats,
	})
	s.Require().NoError(err)
	s.Equal(int32(18), out.Spent)
	s.Equal(int32(3), out.Remaining)
}

func (s *BudgetTestSuite) TestAttributePointsIdempotent() {
	stats := defaultStats()
	stats[chargen.StatIntellect] = 35

	first, err := s.adapter.CalculateAttributePoints(s.ctx, &engine.CalculateAttributePointsInput{
		Stats: stats,
	})
	s.Require().NoError(err)

	second, err := s.adapter.CalculateAttributePoints(s.ctx, &engine.CalculateAttributePointsInput{
		Stats: stats,
	})
	s.Require().NoError(err)
	s.Equal(first, second)
}
