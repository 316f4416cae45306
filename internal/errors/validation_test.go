package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("owner_id", "is invalid")
	ve.AddFieldErrorf("party_size", "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "owner_id: is invalid")
	s.Assert().Contains(ve.Error(), "party_size: must be at least 1")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationErrorOrdersFields() {
	ve := errors.NewValidationError()
	ve.AddFieldError("party_size", "cannot be negative")
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("kind", "unsupported encounter kind")

	s.Assert().Equal(
		"validation failed: kind: unsupported encounter kind; name: is required; party_size: cannot be negative",
		ve.Error(),
	)
	s.Assert().Nil(errors.NewValidationError().ToError())
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("party_level", "must be between %d and %d", 1, 20).
		RequiredField("owner_id").
		InvalidField("status", "not a valid status")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateMinLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMinLength("session_id", "s1", 8, vb)
	errors.ValidateMinLength("name", "Goblin ambush", 3, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["session_id"][0], "must be at least 8 characters")
	s.Assert().NotContains(validationErrors, "name")
}

func (s *ValidationTestSuite) TestValidateMaxLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", "a very long encounter name indeed", 20, vb)
	errors.ValidateMaxLength("status", "ABC", 5, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["name"][0], "must be no more than 20 characters")
	s.Assert().NotContains(validationErrors, "status")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("party_level", 25, 1, 20, vb)
	errors.ValidateRange("creature_level", 15, -1, 25, vb)
	errors.ValidateRange("party_size", 0, 1, 100, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["party_level"][0], "must be between 1 and 20")
	s.Assert().Contains(validationErrors["party_size"][0], "must be between 1 and 100")
	s.Assert().NotContains(validationErrors, "creature_level")
}

func (s *ValidationTestSuite) TestValidateMaxLengthCountsCharacters() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", "Drachenhöhle", 12, vb)

	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateMinAndNonNegative() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("cache_size", 0, 1, vb)
	errors.ValidateMin("party_size", 4, 1, vb)
	errors.ValidateNonNegative("gold", -0.5, vb)
	errors.ValidateNonNegative("experience", 0, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Equal([]string{"must be at least 1"}, validationErrors["cache_size"])
	s.Assert().Equal([]string{"cannot be negative"}, validationErrors["gold"])
	s.Assert().NotContains(validationErrors, "party_size")
	s.Assert().NotContains(validationErrors, "experience")
}

func (s *ValidationTestSuite) TestValidateMax() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMax("party_size", 1001, 1000, vb)
	errors.ValidateMax("party_level", 20, 100, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Equal([]string{"must be at most 1000"}, validationErrors["party_size"])
	s.Assert().NotContains(validationErrors, "party_level")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedKinds := []string{"accomplishment", "combat", "subsystem"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("kind", "dungeon", allowedKinds, vb)
	errors.ValidateEnum("filter_kind", "combat", allowedKinds, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["kind"][0], "must be one of: accomplishment, combat, subsystem")
	s.Assert().NotContains(validationErrors, "filter_kind")
}

func (s *ValidationTestSuite) TestComplexValidation() {
	type EncounterInput struct {
		Name       string
		Kind       string
		PartyLevel int
		Enemies    map[string]int
	}

	input := EncounterInput{
		Name:       "",
		Kind:       "dungeon",
		PartyLevel: 25,
		Enemies: map[string]int{
			"goblin-warrior": -1,
			"orc-brute":      2,
			"ancient-dragon": 40,
		},
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateEnum("kind", input.Kind, []string{"accomplishment", "combat", "subsystem"}, vb)
	errors.ValidateRange("party_level", input.PartyLevel, 1, 20, vb)
	for id, level := range input.Enemies {
		errors.ValidateRange(id, level, -1, 25, vb)
	}

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "name")
	s.Assert().Contains(validationErrors, "kind")
	s.Assert().Contains(validationErrors, "party_level")
	s.Assert().Contains(validationErrors, "ancient-dragon")
	s.Assert().NotContains(validationErrors, "orc-brute")
}
