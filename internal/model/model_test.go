package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONOmitsPasswordHash(t *testing.T) {
	user := User{
		ID:              7,
		Username:        "ana",
		Email:           "ana@example.com",
		PasswordHash:    "$argon2id$secret",
		ProfileImageURL: "https://cdn.example.com/a.png",
		RegisteredAt:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.NotContains(t, string(raw), "argon2id")
	assert.ElementsMatch(t,
		[]string{"id", "username", "email", "profile_image_url", "registered_at"},
		keys(fields),
	)
}

func TestUserRecipe_JSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(UserRecipe{ID: 1, Steps: "mix", CreatedAt: time.Now()})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.ElementsMatch(t,
		[]string{"id", "title", "description", "ingredients", "steps", "createdAt"},
		keys(fields),
	)
}

func TestRegisterUserPayload_Validate(t *testing.T) {
	badURL := "not a url"

	tests := []struct {
		name    string
		payload RegisterUserPayload
		wantErr bool
	}{
		{"valid", RegisterUserPayload{Username: "ana", Email: "ana@example.com", Password: "pw"}, false},
		{"missing username", RegisterUserPayload{Email: "ana@example.com", Password: "pw"}, true},
		{"missing password", RegisterUserPayload{Username: "ana", Email: "ana@example.com"}, true},
		{"invalid email", RegisterUserPayload{Username: "ana", Email: "ana", Password: "pw"}, true},
		{"invalid image url", RegisterUserPayload{Username: "ana", Email: "ana@example.com", Password: "pw", ProfileImageURL: &badURL}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateRecipePayload_Validate(t *testing.T) {
	valid := CreateRecipePayload{Title: "Soup", Description: "Warm", Ingredients: "water", Steps: "boil", CreatedBy: 1}
	assert.NoError(t, valid.Validate())

	missingAuthor := valid
	missingAuthor.CreatedBy = 0
	assert.Error(t, missingAuthor.Validate())

	missingSteps := valid
	missingSteps.Steps = ""
	assert.Error(t, missingSteps.Validate())
}

func TestAddFavoritePayload_Validate(t *testing.T) {
	assert.NoError(t, (&AddFavoritePayload{UserID: 1, RecipeID: 2}).Validate())
	assert.Error(t, (&AddFavoritePayload{UserID: 1}).Validate())
	assert.Error(t, (&AddFavoritePayload{RecipeID: 2}).Validate())
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
