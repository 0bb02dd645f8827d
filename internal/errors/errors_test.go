package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/phnks/webfg-app-sub004/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "plain",
			err:      errors.NotFoundf("action %s not found", "act-hit"),
			expected: "NOT_FOUND: action act-hit not found",
		},
		{
			name:     "wrapped",
			err:      errors.Wrap(errors.InvalidArgument("unknown mode"), "failed to resolve ARMOUR"),
			expected: "INVALID_ARGUMENT: failed to resolve ARMOUR: INVALID_ARGUMENT: unknown mode",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error())
		})
	}
}

func (s *ErrorsTestSuite) TestWrapKeepsCodeAndMeta() {
	base := errors.NotFound("character not found").WithMeta("character_id", "char-brakka")

	wrapped := errors.Wrapf(base, "failed to load %s", "char-brakka")
	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("char-brakka", wrapped.Meta["character_id"])
	s.True(errors.Is(wrapped, base))

	wrapped.WithMeta("attribute", "ARMOUR")
	s.NotContains(base.Meta, "attribute")
}

func (s *ErrorsTestSuite) TestWrapForeignError() {
	wrapped := errors.Wrap(fmt.Errorf("dial tcp: connection refused"), "failed to get items")
	s.Equal(errors.CodeInternal, wrapped.Code)
	s.True(errors.IsInternal(wrapped))

	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	err := errors.WrapWithCode(fmt.Errorf("yaml: line 3: did not find expected key"),
		errors.CodeInvalidArgument, "failed to parse records")
	s.True(errors.IsInvalidArgument(err))
	s.Equal("failed to parse records", errors.GetMessage(err))
}

func (s *ErrorsTestSuite) TestGetCode() {
	testCases := []struct {
		name     string
		err      error
		expected errors.Code
	}{
		{name: "nil", err: nil, expected: errors.CodeOK},
		{name: "classified", err: errors.Unavailable("redis down"), expected: errors.CodeUnavailable},
		{name: "foreign", err: fmt.Errorf("boom"), expected: errors.CodeInternal},
		{name: "canceled", err: fmt.Errorf("read: %w", context.Canceled), expected: errors.CodeCanceled},
		{name: "deadline", err: context.DeadlineExceeded, expected: errors.CodeDeadlineExceeded},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, errors.GetCode(tc.err))
		})
	}
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	s.Run("carries code message and meta", func() {
		err := errors.NotFound("object item-door not found").WithMeta("object_id", "item-door")

		st, ok := status.FromError(errors.ToGRPCError(err))
		s.Require().True(ok)
		s.Equal(codes.NotFound, st.Code())
		s.Equal("object item-door not found", st.Message())

		s.Require().Len(st.Details(), 1)
		info, ok := st.Details()[0].(*errdetails.ErrorInfo)
		s.Require().True(ok)
		s.Equal("NOT_FOUND", info.GetReason())
		s.Equal(errors.ErrorDomain, info.GetDomain())
		s.Equal("item-door", info.GetMetadata()["object_id"])
	})

	s.Run("foreign error is internal", func() {
		st := status.Convert(errors.ToGRPCError(fmt.Errorf("boom")))
		s.Equal(codes.Internal, st.Code())
	})

	s.Run("status passes through", func() {
		in := status.Error(codes.Unavailable, "draining")
		s.Equal(in, errors.ToGRPCError(in))
	})

	s.Run("nil", func() {
		s.NoError(errors.ToGRPCError(nil))
	})
}

func (s *ErrorsTestSuite) TestRoundTrip() {
	testCases := []errors.Code{
		errors.CodeInvalidArgument,
		errors.CodeNotFound,
		errors.CodeFailedPrecondition,
		errors.CodeInternal,
		errors.CodeUnavailable,
		errors.CodeCanceled,
	}

	for _, code := range testCases {
		s.Run(string(code), func() {
			in := errors.New(code, "something happened").WithMeta("action_id", "act-hit")

			out := errors.FromGRPCError(errors.ToGRPCError(in))
			s.Equal(code, errors.GetCode(out))
			s.Equal("something happened", errors.GetMessage(out))
			s.Equal("act-hit", errors.GetMeta(out)["action_id"])
		})
	}
}

func (s *ErrorsTestSuite) TestFromGRPCErrorUnknownCode() {
	err := errors.FromGRPCError(status.Error(codes.DataLoss, "corrupt"))
	s.True(errors.IsInternal(err))

	plain := fmt.Errorf("not a status")
	s.Equal(plain, errors.FromGRPCError(plain))
}

func (s *ErrorsTestSuite) TestGRPCCode() {
	s.Equal(codes.InvalidArgument, errors.CodeInvalidArgument.GRPCCode())
	s.Equal(codes.Unknown, errors.Code("SOMETHING_ELSE").GRPCCode())
}
