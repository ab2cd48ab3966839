package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/Jgauri24/fitfusion-backend/models"
	"github.com/Jgauri24/fitfusion-backend/utils"
)

// Trailing window length in calendar days. Index 0 is the oldest day,
// index windowDays-1 is today.
const windowDays = 7

// Mood value reported for a day with zero check-ins. Zero would drag trend
// lines downward; "no data" is neutral, not awful.
const neutralMood = 2

// DailyBucket is one calendar-day slot of aggregated totals. Buckets are
// derived fresh on every call and never persisted.
type DailyBucket struct {
	DayIndex      int     `json:"day_index"`
	TotalMinutes  int     `json:"total_minutes"`
	TotalCalories float64 `json:"total_calories"`
	AvgMood       float64 `json:"avg_mood"`
	Count         int     `json:"count"`
}

// AnalyticsStore is the slice of the gateway the aggregator reads from.
type AnalyticsStore interface {
	ActivitiesInRange(ctx context.Context, userID *uint, from, to time.Time) ([]models.ActivityRecord, error)
	NutritionInRange(ctx context.Context, userID *uint, from, to time.Time) ([]models.NutritionRecord, error)
	MoodsInRange(ctx context.Context, userID *uint, from, to time.Time) ([]models.MoodRecord, error)
	AllUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	CountActiveUsersSince(ctx context.Context, since time.Time) (int64, error)
	CountActivities(ctx context.Context, from, to time.Time) (int64, error)
}

type AnalyticsService struct {
	store AnalyticsStore
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// ---------- bucketing core ----------

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayIndexFor places a record into the trailing window: windowDays-1 for
// today down to 0 for the oldest day. Records outside [0, windowDays) are
// discarded by the callers; that defends against clock skew and
// late-arriving data.
func dayIndexFor(loggedAt, now time.Time) int {
	daysAgo := int(dayStart(now).Sub(dayStart(loggedAt)).Hours() / 24)
	return (windowDays - 1) - daysAgo
}

func windowRange(now time.Time, days int) (time.Time, time.Time, error) {
	if days <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: window must be positive, got %d days", utils.ErrValidation, days)
	}
	from := dayStart(now).AddDate(0, 0, -(days - 1))
	return from, now, nil
}

// BucketWellness folds raw records into the fixed 7-slot window. Bucketing
// is lossless over in-window records and non-overlapping, so the bucket sums
// always equal the matching record totals. AvgMood is the per-day mean of
// that day's check-ins; days without any report the neutral default.
func BucketWellness(activities []models.ActivityRecord, moods []models.MoodRecord, now time.Time) [windowDays]DailyBucket {
	var buckets [windowDays]DailyBucket
	var moodSums, moodCounts [windowDays]int
	for i := range buckets {
		buckets[i].DayIndex = i
	}
	for _, rec := range activities {
		idx := dayIndexFor(rec.LoggedAt, now)
		if idx < 0 || idx >= windowDays {
			continue
		}
		buckets[idx].TotalMinutes += rec.DurationMins
		buckets[idx].TotalCalories += rec.CaloriesBurned
		buckets[idx].Count++
	}
	for _, rec := range moods {
		idx := dayIndexFor(rec.CreatedAt, now)
		if idx < 0 || idx >= windowDays {
			continue
		}
		moodSums[idx] += rec.MoodScore
		moodCounts[idx]++
		buckets[idx].Count++
	}
	for i := range buckets {
		if moodCounts[i] == 0 {
			buckets[i].AvgMood = neutralMood
			continue
		}
		buckets[i].AvgMood = float64(moodSums[i]) / float64(moodCounts[i])
	}
	return buckets
}

func dailyMinutes(buckets [windowDays]DailyBucket) [windowDays]int {
	var mins [windowDays]int
	for i, b := range buckets {
		mins[i] = b.TotalMinutes
	}
	return mins
}

// moodTrend rounds the per-day means onto the 0–4 integer scale the mood
// endpoint exposes.
func moodTrend(buckets [windowDays]DailyBucket) [windowDays]int {
	var trend [windowDays]int
	for i, b := range buckets {
		trend[i] = int(math.Round(b.AvgMood))
	}
	return trend
}

// ---------- per-user reads ----------

type WeeklyActivityResponse struct {
	DailyMinutes     [windowDays]int         `json:"daily_minutes"`
	Streak           int                     `json:"streak"`
	ConsistencyScore int                     `json:"consistency_score"`
	RecentActivities []models.ActivityRecord `json:"recent_activities"`
}

func (s *AnalyticsService) WeeklyActivity(ctx context.Context, userID uint) (*WeeklyActivityResponse, error) {
	return s.weeklyActivityAt(ctx, userID, time.Now())
}

func (s *AnalyticsService) weeklyActivityAt(ctx context.Context, userID uint, now time.Time) (*WeeklyActivityResponse, error) {
	from, to, err := windowRange(now, windowDays)
	if err != nil {
		return nil, err
	}
	records, err := s.store.ActivitiesInRange(ctx, &userID, from, to)
	if err != nil {
		return nil, err
	}

	mins := dailyMinutes(BucketWellness(records, nil, now))
	streak := ActivityStreak(mins)

	recent := make([]models.ActivityRecord, len(records))
	copy(recent, records)
	sort.Slice(recent, func(i, j int) bool { return recent[i].LoggedAt.After(recent[j].LoggedAt) })
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return &WeeklyActivityResponse{
		DailyMinutes:     mins,
		Streak:           streak,
		ConsistencyScore: ConsistencyScore(streak),
		RecentActivities: recent,
	}, nil
}

type MoodTrendResponse struct {
	WeeklyTrend [windowDays]int `json:"weekly_trend"`
}

func (s *AnalyticsService) MoodTrend(ctx context.Context, userID uint) (*MoodTrendResponse, error) {
	return s.moodTrendAt(ctx, userID, time.Now())
}

func (s *AnalyticsService) moodTrendAt(ctx context.Context, userID uint, now time.Time) (*MoodTrendResponse, error) {
	from, to, err := windowRange(now, windowDays)
	if err != nil {
		return nil, err
	}
	records, err := s.store.MoodsInRange(ctx, &userID, from, to)
	if err != nil {
		return nil, err
	}
	return &MoodTrendResponse{WeeklyTrend: moodTrend(BucketWellness(nil, records, now))}, nil
}

// ---------- dashboard (population-wide) ----------

// StatValue marks whether a dashboard figure was computed from records or
// simulated because no backing data dimension exists yet. Tests key off the
// flag to know which fields are deterministic.
type StatValue struct {
	Value     float64 `json:"value"`
	Simulated bool    `json:"simulated"`
}

type MealBreakdown struct {
	MealType    string  `json:"meal_type"`
	Count       int     `json:"count"`
	AvgCalories float64 `json:"avg_calories"`
}

type HostelStat struct {
	Hostel string    `json:"hostel"`
	Score  StatValue `json:"score"`
}

type DashboardStats struct {
	TotalUsers          int64           `json:"total_users"`
	ActiveToday         int64           `json:"active_today"`
	AvgCalories         float64         `json:"avg_calories"`
	TotalActivities     int64           `json:"total_activities"`
	WeeklyActivityTrend [windowDays]int `json:"weekly_activity_trend"`
	NutritionByMeal     []MealBreakdown `json:"nutrition_by_meal"`
	HostelComparison    []HostelStat    `json:"hostel_comparison"`
}

// DashboardStats recomputes every figure from current store contents. Each
// sub-aggregate is best-effort: a failed read leaves its field zero-filled
// instead of failing the whole response.
func (s *AnalyticsService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	return s.dashboardStatsAt(ctx, time.Now())
}

func (s *AnalyticsService) dashboardStatsAt(ctx context.Context, now time.Time) (*DashboardStats, error) {
	out := &DashboardStats{
		NutritionByMeal:  []MealBreakdown{},
		HostelComparison: []HostelStat{},
	}
	from, to, err := windowRange(now, windowDays)
	if err != nil {
		return nil, err
	}

	if n, err := s.store.CountUsers(ctx); err != nil {
		log.Printf("dashboard: user count unavailable: %v", err)
	} else {
		out.TotalUsers = n
	}

	if n, err := s.store.CountActiveUsersSince(ctx, dayStart(now)); err != nil {
		log.Printf("dashboard: active-today count unavailable: %v", err)
	} else {
		out.ActiveToday = n
	}

	if n, err := s.store.CountActivities(ctx, time.Time{}, now); err != nil {
		log.Printf("dashboard: activity count unavailable: %v", err)
	} else {
		out.TotalActivities = n
	}

	if activities, err := s.store.ActivitiesInRange(ctx, nil, from, to); err != nil {
		log.Printf("dashboard: weekly trend unavailable: %v", err)
	} else {
		out.WeeklyActivityTrend = dailyMinutes(BucketWellness(activities, nil, now))
	}

	if meals, err := s.store.NutritionInRange(ctx, nil, from, to); err != nil {
		log.Printf("dashboard: nutrition breakdown unavailable: %v", err)
	} else {
		out.NutritionByMeal = mealBreakdown(meals)
		out.AvgCalories = avgCalories(meals)
	}

	if users, err := s.store.AllUsers(ctx); err != nil {
		log.Printf("dashboard: hostel comparison unavailable: %v", err)
	} else {
		out.HostelComparison = simulatedHostelComparison(users)
	}

	return out, nil
}

// avgCalories is the mean calories per nutrition record over the window.
func avgCalories(meals []models.NutritionRecord) float64 {
	if len(meals) == 0 {
		return 0
	}
	var sum float64
	for _, m := range meals {
		sum += m.Calories
	}
	return round2(sum / float64(len(meals)))
}

// mealBreakdown groups by meal type. The group count is the denominator for
// the mean, not the raw multiplied record count.
func mealBreakdown(meals []models.NutritionRecord) []MealBreakdown {
	type acc struct {
		count int
		sum   float64
	}
	groups := map[string]*acc{}
	for _, m := range meals {
		a := groups[m.MealType]
		if a == nil {
			a = &acc{}
			groups[m.MealType] = a
		}
		a.count++
		a.sum += m.Calories
	}

	out := make([]MealBreakdown, 0, len(groups))
	for _, mealType := range models.MealTypes {
		a := groups[mealType]
		if a == nil {
			continue
		}
		out = append(out, MealBreakdown{
			MealType:    mealType,
			Count:       a.count,
			AvgCalories: round2(a.sum / float64(a.count)),
		})
	}
	return out
}

// simulatedHostelComparison stands in for per-hostel wellness until hostel
// occupancy is a real data dimension. Scores are derived from the hostel
// name so repeated reads stay stable, and every value is flagged Simulated.
func simulatedHostelComparison(users []models.User) []HostelStat {
	seen := map[string]bool{}
	hostels := []string{}
	for _, u := range users {
		if u.Hostel == "" || seen[u.Hostel] {
			continue
		}
		seen[u.Hostel] = true
		hostels = append(hostels, u.Hostel)
	}
	sort.Strings(hostels)

	out := make([]HostelStat, 0, len(hostels))
	for _, h := range hostels {
		var sum int
		for _, c := range h {
			sum += int(c)
		}
		score := 50 + float64(sum%41) // 50..90
		out = append(out, HostelStat{Hostel: h, Score: StatValue{Value: score, Simulated: true}})
	}
	return out
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
