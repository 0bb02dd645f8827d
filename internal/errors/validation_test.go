package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/phnks/webfg-app-sub004/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuildWithoutProblems() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", "char-brakka", vb)
	s.False(vb.HasErrors())
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestBuildOrdersFields() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("source_character_id", "  ", vb)
	errors.ValidateRequired("action_id", "", vb)
	vb.InvalidField("mode", "stowed is not a mode")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("validation failed: action_id: is required; mode: is invalid: stowed is not a mode; "+
		"source_character_id: is required", errors.GetMessage(err))

	meta := errors.GetMeta(err)
	s.Equal("is required", meta["field.action_id"])
	s.Equal("is required", meta["field.source_character_id"])
}

func (s *ValidationTestSuite) TestFieldCollectsMessages() {
	vb := errors.NewValidationBuilder().
		Field("attribute", "is required").
		Fieldf("attribute", "must be one of %d known names", 27)

	s.Equal("is required, must be one of 27 known names", errors.GetMeta(vb.Build())["field.attribute"])
}

func (s *ValidationTestSuite) TestValidateExactlyOne() {
	testCases := []struct {
		name    string
		fields  map[string]string
		message string
	}{
		{
			name:   "one set",
			fields: map[string]string{"target_character_id": "char-goblin", "target_object_id": ""},
		},
		{
			name:    "none set",
			fields:  map[string]string{"target_character_id": "", "target_object_id": ""},
			message: "one of target_character_id, target_object_id is required",
		},
		{
			name:    "both set",
			fields:  map[string]string{"target_object_id": "item-door", "target_character_id": "char-goblin"},
			message: "only one of target_character_id, target_object_id may be set",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateExactlyOne("target", tc.fields, vb)

			if tc.message == "" {
				s.NoError(vb.Build())
				return
			}
			s.Equal(tc.message, errors.GetMeta(vb.Build())["field.target"])
		})
	}
}
