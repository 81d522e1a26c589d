package services

import (
	"encoding/json"
	"testing"

	"github.com/anilkaliya/LifeOs/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityEntry_MarshalFlattensVariant(t *testing.T) {
	entry := ActivityEntry{
		Type: TypeMeal,
		Date: "2024-01-05",
		Meal: &models.Meal{MealName: "Dal", Calories: 420, Date: "2024-01-05"},
	}

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Equal(t, "meal", fields["type"])
	assert.Equal(t, "2024-01-05", fields["date"])
	assert.Equal(t, "Dal", fields["mealName"])
	assert.Equal(t, float64(420), fields["calories"])
}

func TestActivityEntry_EachTypeCarriesItsTag(t *testing.T) {
	entries := []ActivityEntry{
		{Type: TypeWorkout, Date: "2024-01-01", Workout: &models.Workout{Name: "Run", Date: "2024-01-01"}},
		{Type: TypeLearning, Date: "2024-01-01", Learning: &models.LearningSession{Topic: "Go", DurationMinutes: 25, Date: "2024-01-01"}},
		{Type: TypeSkinCare, Date: "2024-01-01", SkinCare: &models.SkinCareLog{Date: "2024-01-01", Sunscreen: true}},
	}

	for _, e := range entries {
		raw, err := json.Marshal(e)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(raw, &fields))
		assert.Equal(t, string(e.Type), fields["type"])
	}
}

func TestActivityEntry_UnknownTypeErrors(t *testing.T) {
	_, err := json.Marshal(ActivityEntry{Type: "nap", Date: "2024-01-01"})
	assert.Error(t, err)
}
