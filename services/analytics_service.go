package services

import (
	"context"
	"sort"
	"strings"

	"github.com/anilkaliya/LifeOs/models"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

// RangeQuery is an inclusive [Start, End] calendar-day window plus an
// optional case-insensitive substring filter over the free-text fields.
// Callers validate the bounds ("2006-01-02", Start <= End) before querying.
type RangeQuery struct {
	Start  string
	End    string
	Search string
}

type Totals struct {
	Calories        int `json:"calories"`
	Workouts        int `json:"workouts"`
	LearningMinutes int `json:"learningMinutes"`
	SkincareDays    int `json:"skincareDays"`
}

// DailyBucket is the per-day aggregate behind the charts. Buckets carry
// only calorie/learning/workout signals; skincare never contributes here.
type DailyBucket struct {
	Date            string `json:"date"`
	Calories        int    `json:"calories"`
	LearningMinutes int    `json:"learningMinutes"`
	WorkoutCount    int    `json:"workoutCount"`
}

type Overview struct {
	Totals    Totals          `json:"totals"`
	ChartData []DailyBucket   `json:"chartData"`
	Logs      []ActivityEntry `json:"logs"`
}

// Overview runs the range filter over the four log collections and folds
// the results into totals, a per-day series, and the combined activity
// feed. Any query failing fails the whole call; no partial totals.
func (s *AnalyticsService) Overview(ctx context.Context, userID uint, q RangeQuery) (*Overview, error) {
	var meals []models.Meal
	if err := s.inRange(ctx, userID, q, "meal_name ILIKE ? OR description ILIKE ?").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	var workouts []models.Workout
	if err := s.inRange(ctx, userID, q, "name ILIKE ? OR notes ILIKE ?").
		Find(&workouts).Error; err != nil {
		return nil, err
	}

	var sessions []models.LearningSession
	if err := s.inRange(ctx, userID, q, "topic ILIKE ?").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	var skincare []models.SkinCareLog
	if err := s.inRange(ctx, userID, q, "custom_routine ILIKE ?").
		Find(&skincare).Error; err != nil {
		return nil, err
	}

	return aggregate(meals, workouts, sessions, skincare), nil
}

// inRange builds the shared user + closed-interval filter, adding the
// per-collection text condition when a search term is present. BETWEEN on
// the date column keeps both boundary days in.
func (s *AnalyticsService) inRange(ctx context.Context, userID uint, q RangeQuery, textCond string) *gorm.DB {
	tx := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, q.Start, q.End)
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		args := make([]interface{}, strings.Count(textCond, "?"))
		for i := range args {
			args[i] = pattern
		}
		tx = tx.Where(textCond, args...)
	}
	return tx.Order("date ASC")
}

// aggregate folds the filtered collections into the analytics payload.
// Pure: no I/O, identical output for identical input order.
func aggregate(meals []models.Meal, workouts []models.Workout, sessions []models.LearningSession, skincare []models.SkinCareLog) *Overview {
	out := &Overview{
		ChartData: []DailyBucket{},
		Logs:      []ActivityEntry{},
	}

	buckets := map[string]*DailyBucket{}
	touch := func(date string) *DailyBucket {
		b, ok := buckets[date]
		if !ok {
			b = &DailyBucket{Date: date}
			buckets[date] = b
		}
		return b
	}

	for i := range meals {
		m := &meals[i]
		out.Totals.Calories += m.Calories
		touch(m.Date).Calories += m.Calories
		out.Logs = append(out.Logs, ActivityEntry{Type: TypeMeal, Date: m.Date, Meal: m})
	}

	for i := range workouts {
		w := &workouts[i]
		out.Totals.Workouts++
		touch(w.Date).WorkoutCount++
		out.Logs = append(out.Logs, ActivityEntry{Type: TypeWorkout, Date: w.Date, Workout: w})
	}

	for i := range sessions {
		ls := &sessions[i]
		out.Totals.LearningMinutes += ls.DurationMinutes
		touch(ls.Date).LearningMinutes += ls.DurationMinutes
		out.Logs = append(out.Logs, ActivityEntry{Type: TypeLearning, Date: ls.Date, Learning: ls})
	}

	// Skincare counts days, not flags: a row with everything false/empty
	// contributes nothing, any number of set flags contributes one.
	for i := range skincare {
		sc := &skincare[i]
		if sc.Detan || sc.Oiling || sc.Sunscreen || sc.CustomRoutine != "" {
			out.Totals.SkincareDays++
		}
		out.Logs = append(out.Logs, ActivityEntry{Type: TypeSkinCare, Date: sc.Date, SkinCare: sc})
	}

	for _, b := range buckets {
		out.ChartData = append(out.ChartData, *b)
	}
	// ISO dates sort correctly as strings.
	sort.Slice(out.ChartData, func(i, j int) bool {
		return out.ChartData[i].Date < out.ChartData[j].Date
	})

	// Descending by date only; stable sort keeps the meal→workout→
	// learning→skincare merge order within a day.
	sort.SliceStable(out.Logs, func(i, j int) bool {
		return out.Logs[i].Date > out.Logs[j].Date
	})

	return out
}
