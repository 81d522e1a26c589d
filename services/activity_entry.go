package services

import (
	"encoding/json"
	"fmt"

	"github.com/anilkaliya/LifeOs/models"
)

type LogType string

const (
	TypeMeal     LogType = "meal"
	TypeWorkout  LogType = "workout"
	TypeLearning LogType = "learning"
	TypeSkinCare LogType = "skincare"
)

// ActivityEntry is one row of the combined feed: a tagged union over the
// four log types. Exactly the variant named by Type is non-nil; Date is the
// normalized calendar-day string copied from the source row.
type ActivityEntry struct {
	Type     LogType
	Date     string
	Meal     *models.Meal
	Workout  *models.Workout
	Learning *models.LearningSession
	SkinCare *models.SkinCareLog
}

// MarshalJSON flattens the variant's own fields and splices in the
// discriminant and normalized date, the shape the client's feed table
// expects.
func (e ActivityEntry) MarshalJSON() ([]byte, error) {
	var src any
	switch e.Type {
	case TypeMeal:
		src = e.Meal
	case TypeWorkout:
		src = e.Workout
	case TypeLearning:
		src = e.Learning
	case TypeSkinCare:
		src = e.SkinCare
	default:
		return nil, fmt.Errorf("unknown activity type %q", e.Type)
	}

	raw, err := json.Marshal(src)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	typeTag, err := json.Marshal(e.Type)
	if err != nil {
		return nil, err
	}
	dateTag, err := json.Marshal(e.Date)
	if err != nil {
		return nil, err
	}
	fields["type"] = typeTag
	fields["date"] = dateTag

	return json.Marshal(fields)
}
