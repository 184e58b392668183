package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-deck/internal/errors"
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
		err      *errors.Error
		code     errors.Code
		expected string
	}{
		{
			name:     "invalid argument",
			err:      errors.InvalidArgument("scope is required"),
			code:     errors.CodeInvalidArgument,
			expected: "INVALID_ARGUMENT: scope is required",
		},
		{
			name:     "slot out of range",
			err:      errors.SlotOutOfRange(20, 20),
			code:     errors.CodeOutOfRange,
			expected: "OUT_OF_RANGE: slot 20 is outside the 20 slot deck",
		},
		{
			name:     "slot locked",
			err:      errors.SlotLocked(1, "subclass"),
			code:     errors.CodeFailedPrecondition,
			expected: "FAILED_PRECONDITION: slot 1 (subclass) is locked",
		},
		{
			name:     "card not found",
			err:      errors.CardNotFound("class-necromancer"),
			code:     errors.CodeNotFound,
			expected: "NOT_FOUND: card class-necromancer not found",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error())
			s.Equal(tc.code, errors.GetCode(tc.err))
		})
	}
}

func (s *ErrorsTestSuite) TestSlotMeta() {
	err := errors.SlotLocked(3, "heritage-2")

	s.Equal(3, err.Meta["slot"])
	s.Equal("heritage-2", errors.GetMeta(err)["label"])
	s.Equal("sheet_1", errors.GetMeta(errors.SheetNotFound("sheet_1"))["sheet_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	s.Run("plain error becomes internal", func() {
		baseErr := fmt.Errorf("connection refused")
		wrapped := errors.Wrap(baseErr, "failed to save focused cards")

		s.Equal(errors.CodeInternal, wrapped.Code)
		s.Equal("failed to save focused cards", wrapped.Message)
		s.Equal(baseErr, wrapped.Unwrap())
	})

	s.Run("structured error keeps code and meta", func() {
		wrapped := errors.Wrapf(errors.SheetNotFound("sheet_1"), "failed to load sheet %s", "sheet_1")

		s.True(errors.IsNotFound(wrapped))
		s.Equal("sheet_1", wrapped.Meta["sheet_id"])
		s.Equal("NOT_FOUND: failed to load sheet sheet_1: NOT_FOUND: sheet sheet_1 not found", wrapped.Error())
	})

	s.Run("nil stays nil", func() {
		s.Nil(errors.Wrap(nil, "nothing"))
		s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
	})
}

func (s *ErrorsTestSuite) TestIsMatchesByCode() {
	err := fmt.Errorf("outer: %w", errors.SheetNotFound("sheet_1"))

	s.True(stderrors.Is(err, errors.NotFound("anything")))
	s.False(stderrors.Is(err, errors.Unavailable("anything")))
	s.True(errors.IsNotFound(err))
	s.False(errors.IsNotFound(nil))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("boom")))
	s.Equal(errors.CodeAlreadyExists, errors.GetCode(errors.AlreadyExistsf("sheet %s", "a")))
}

func (s *ErrorsTestSuite) TestExitCode() {
	s.Equal(0, errors.CodeOK.ExitCode())
	s.Equal(2, errors.CodeInvalidArgument.ExitCode())
	s.Equal(2, errors.CodeOutOfRange.ExitCode())
	s.Equal(3, errors.CodeNotFound.ExitCode())
	s.Equal(4, errors.CodeUnavailable.ExitCode())
	s.Equal(5, errors.CodeAlreadyExists.ExitCode())
	s.Equal(5, errors.CodeFailedPrecondition.ExitCode())
	s.Equal(1, errors.CodeInternal.ExitCode())
}
