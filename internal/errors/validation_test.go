package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Arx-Game/arxii-sub002/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderEmpty() {
	vb := errors.NewValidationBuilder()
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestBuilderCollectsFields() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("playerID").
		InvalidField("age", "must be positive")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	fields, ok := meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Contains(fields, "playerID")
	s.Assert().Contains(fields, "age")
}

func (s *ValidationTestSuite) TestValidateRequired() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("homelandID", "", vb)
	errors.ValidateRequired("beginningID", "   ", vb)
	errors.ValidateRequired("firstName", "Aurelia", vb)

	err := vb.Build()
	s.Require().Error(err)

	var verr *errors.Error
	s.Require().True(errors.As(err, &verr))
	fields := verr.Meta["validation_errors"].(map[string][]string)
	s.Assert().Len(fields, 2)
	s.Assert().NotContains(fields, "firstName")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("strength", 60, 10, 50, vb)
	errors.ValidateRange("wits", 30, 10, 50, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "strength")
	s.Assert().NotContains(err.Error(), "wits")
}
