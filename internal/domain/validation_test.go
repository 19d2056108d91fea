package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGameSubmission() Submission {
	return Submission{
		"title":         "Catan",
		"description":   "trade game",
		"minPlayers":    float64(3),
		"maxPlayers":    float64(4),
		"playTime":      float64(90),
		"ageRange":      "10+",
		"difficulty":    "medium",
		"publisher":     "Kosmos",
		"yearPublished": float64(1995),
		"category":      "strategy",
		"price":         float64(45),
	}
}

func validUserSubmission() Submission {
	return Submission{
		"username":               "meeple",
		"email":                  "meeple@example.com",
		"firstName":              "Mia",
		"lastName":               "Eple",
		"favoriteGameCategories": []any{"strategy", "party"},
		"ownedGamesCount":        float64(12),
	}
}

func TestGameKind_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		mutate        func(Submission)
		expectedField string
		expectedMsg   string
		expectMissing []string
	}{
		{
			name:   "valid submission",
			mutate: func(Submission) {},
		},
		{
			name:          "min players zero counts as missing",
			mutate:        func(s Submission) { s["minPlayers"] = float64(0) },
			expectMissing: []string{"minPlayers"},
		},
		{
			name:          "negative min players",
			mutate:        func(s Submission) { s["minPlayers"] = float64(-1) },
			expectedField: "minPlayers",
			expectedMsg:   "minPlayers must be a number greater than 0",
		},
		{
			name:          "min players as text",
			mutate:        func(s Submission) { s["minPlayers"] = "three" },
			expectedField: "minPlayers",
			expectedMsg:   "minPlayers must be a number greater than 0",
		},
		{
			name:          "max below min",
			mutate:        func(s Submission) { s["minPlayers"] = float64(5) },
			expectedField: "maxPlayers",
			expectedMsg:   "maxPlayers must be a number greater than or equal to minPlayers",
		},
		{
			name: "max equal to min",
			mutate: func(s Submission) {
				s["minPlayers"] = float64(2)
				s["maxPlayers"] = float64(2)
			},
		},
		{
			name:          "negative price",
			mutate:        func(s Submission) { s["price"] = float64(-0.5) },
			expectedField: "price",
			expectedMsg:   "price must be a number greater than or equal to 0",
		},
		{
			name:          "price as text",
			mutate:        func(s Submission) { s["price"] = "45" },
			expectedField: "price",
			expectedMsg:   "price must be a number greater than or equal to 0",
		},
		{
			name: "first failing rule wins",
			mutate: func(s Submission) {
				s["minPlayers"] = float64(-2)
				s["price"] = float64(-1)
			},
			expectedField: "minPlayers",
			expectedMsg:   "minPlayers must be a number greater than 0",
		},
		{
			name: "all missing fields reported together",
			mutate: func(s Submission) {
				delete(s, "title")
				s["publisher"] = ""
				s["category"] = nil
			},
			expectMissing: []string{"title", "publisher", "category"},
		},
		{
			name: "presence is checked before rules",
			mutate: func(s Submission) {
				delete(s, "description")
				s["minPlayers"] = float64(-3)
			},
			expectMissing: []string{"description"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sub := validGameSubmission()
			tc.mutate(sub)

			err := GameKind.Validate(sub)

			if tc.expectedMsg == "" && tc.expectMissing == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "error should wrap ErrValidation")

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "error should be a *ValidationError")

			if tc.expectMissing != nil {
				assert.Equal(t, MessageMissingFields, verr.Message)
				assert.Equal(t, tc.expectMissing, verr.MissingFields)
				return
			}
			assert.Equal(t, tc.expectedField, verr.Field)
			assert.Equal(t, tc.expectedMsg, verr.Message)
			assert.Empty(t, verr.MissingFields)
		})
	}
}

func TestGameKind_ValidateMaxBelowMinAlwaysRejected(t *testing.T) {
	t.Parallel()

	for min := 2; min <= 10; min++ {
		for max := 1; max < min; max++ {
			sub := validGameSubmission()
			sub["minPlayers"] = float64(min)
			sub["maxPlayers"] = float64(max)

			err := GameKind.Validate(sub)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr, "min=%d max=%d", min, max)
			assert.Equal(t, "maxPlayers", verr.Field)
		}
	}
}

func TestUserKind_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		mutate        func(Submission)
		expectedField string
		expectedMsg   string
		expectMissing []string
	}{
		{
			name:   "valid submission",
			mutate: func(Submission) {},
		},
		{
			name:   "empty category list is allowed",
			mutate: func(s Submission) { s["favoriteGameCategories"] = []any{} },
		},
		{
			name:          "zero owned games counts as missing",
			mutate:        func(s Submission) { s["ownedGamesCount"] = float64(0) },
			expectMissing: []string{"ownedGamesCount"},
		},
		{
			name:          "negative owned games",
			mutate:        func(s Submission) { s["ownedGamesCount"] = float64(-4) },
			expectedField: "ownedGamesCount",
			expectedMsg:   "ownedGamesCount must be a number greater than or equal to 0",
		},
		{
			name:          "owned games as text",
			mutate:        func(s Submission) { s["ownedGamesCount"] = "4" },
			expectedField: "ownedGamesCount",
			expectedMsg:   "ownedGamesCount must be a number greater than or equal to 0",
		},
		{
			name:          "categories not a list",
			mutate:        func(s Submission) { s["favoriteGameCategories"] = "strategy" },
			expectedField: "favoriteGameCategories",
			expectedMsg:   "favoriteGameCategories must be an array",
		},
		{
			name:          "email without at sign",
			mutate:        func(s Submission) { s["email"] = "meeple.example.com" },
			expectedField: "email",
			expectedMsg:   "Invalid email format",
		},
		{
			name:          "email without domain dot",
			mutate:        func(s Submission) { s["email"] = "meeple@example" },
			expectedField: "email",
			expectedMsg:   "Invalid email format",
		},
		{
			name:          "email with whitespace",
			mutate:        func(s Submission) { s["email"] = "mee ple@example.com" },
			expectedField: "email",
			expectedMsg:   "Invalid email format",
		},
		{
			name:          "email not a string",
			mutate:        func(s Submission) { s["email"] = float64(42) },
			expectedField: "email",
			expectedMsg:   "Invalid email format",
		},
		{
			name: "missing fields listed in declaration order",
			mutate: func(s Submission) {
				delete(s, "lastName")
				delete(s, "username")
			},
			expectMissing: []string{"username", "lastName"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sub := validUserSubmission()
			tc.mutate(sub)

			err := UserKind.Validate(sub)

			if tc.expectedMsg == "" && tc.expectMissing == nil {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, ErrValidation)
			if tc.expectMissing != nil {
				assert.Equal(t, tc.expectMissing, verr.MissingFields)
				return
			}
			assert.Equal(t, tc.expectedField, verr.Field)
			assert.Equal(t, tc.expectedMsg, verr.Message)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	missing := newMissingFieldsError([]string{"title", "price"})
	assert.Equal(t, "Missing required fields: title, price", missing.Error())

	single := NewValidationError("price", "price must be a number greater than or equal to 0", nil)
	assert.Equal(t, "price must be a number greater than or equal to 0", single.Error())
	assert.ErrorIs(t, single, ErrValidation)
}

func TestKind_Titles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Game", GameKind.Title())
	assert.Equal(t, "Games", GameKind.PluralTitle())
	assert.Equal(t, "User", UserKind.Title())
	assert.Equal(t, "Users", UserKind.PluralTitle())
}
