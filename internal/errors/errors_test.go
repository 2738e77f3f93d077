package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Arx-Game/arxii-sub002/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "draft not found",
			expected: "NOT_FOUND: draft not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "draft is not complete",
			expected: "FAILED_PRECONDITION: draft is not complete",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("draft not found").
		WithMeta("draft_id", "draft_123").
		WithMeta("player_id", "player_456")

	s.Assert().Equal("draft_123", err.Meta["draft_id"])
	s.Assert().Equal("player_456", err.Meta["player_id"])
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFound("homeland not found").WithMeta("homeland_id", "hl_arx")
	wrapped := errors.Wrap(base, "failed to validate origin")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("failed to validate origin", wrapped.Message)
	s.Assert().Equal("hl_arx", wrapped.Meta["homeland_id"])
	s.Assert().ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	plain := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(plain, "failed to reach lore service")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().ErrorIs(wrapped, plain)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "ignored"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	plain := fmt.Errorf("no rows")
	wrapped := errors.WrapWithCode(plain, errors.CodeNotFound, "application not found")

	s.Assert().True(errors.IsNotFound(wrapped))
	s.Assert().Equal("application not found", errors.GetMessage(wrapped))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("boom")))
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgument("bad")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code   errors.Code
		status int
	}{
		{errors.CodeOK, http.StatusOK},
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeAlreadyExists, http.StatusConflict},
		{errors.CodeFailedPrecondition, http.StatusPreconditionFailed},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.CodeUnavailable, http.StatusServiceUnavailable},
		{errors.Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Assert().Equal(tc.status, tc.code.HTTPStatus(), "code %s", tc.code)
	}
}
