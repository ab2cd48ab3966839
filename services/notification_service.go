package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/Jgauri24/fitfusion-backend/models"

	"github.com/google/uuid"
)

// NotificationThresholds collects every rule cutoff in one injected struct
// instead of constants scattered across the rules.
type NotificationThresholds struct {
	BurnoutMoodCeiling int     // mood score at or below this counts toward burnout
	BurnoutMinCheckins int     // low check-ins per user needed to flag
	ActivityDropRatio  float64 // warn when current < ratio * prior
	AQIWarnLevel       int     // warn when a zone's latest AQI exceeds this
}

func DefaultThresholds() NotificationThresholds {
	return NotificationThresholds{
		BurnoutMoodCeiling: 1,
		BurnoutMinCheckins: 2,
		ActivityDropRatio:  0.8,
		AQIWarnLevel:       150,
	}
}

// NotificationStore is the slice of the gateway the evaluator reads from.
type NotificationStore interface {
	MoodsInRange(ctx context.Context, userID *uint, from, to time.Time) ([]models.MoodRecord, error)
	CountActivities(ctx context.Context, from, to time.Time) (int64, error)
	CountNutrition(ctx context.Context, from, to time.Time) (int64, error)
	CountMoods(ctx context.Context, from, to time.Time) (int64, error)
	LatestEnvironmentReadings(ctx context.Context) ([]models.EnvironmentReading, error)
	CountActiveUsersSince(ctx context.Context, since time.Time) (int64, error)
	CountFoodCatalog(ctx context.Context) (int64, error)
}

// NotificationService evaluates a stateless rule set on every call. Nothing
// is persisted: the result is regenerated per read, ordered by priority.
type NotificationService struct {
	store NotificationStore
	th    NotificationThresholds
}

func NewNotificationService(store NotificationStore, th NotificationThresholds) *NotificationService {
	return &NotificationService{store: store, th: th}
}

func (s *NotificationService) Evaluate(ctx context.Context) []models.Notification {
	return s.evaluateAt(ctx, time.Now())
}

// evaluateAt runs each rule independently: a rule that fails to read its
// inputs logs and contributes nothing, and empty data short-circuits to "no
// alert" rather than dividing by zero.
func (s *NotificationService) evaluateAt(ctx context.Context, now time.Time) []models.Notification {
	out := []models.Notification{}

	if n := s.burnoutRule(ctx, now); n != nil {
		out = append(out, *n)
	}
	if n := s.activityDropRule(ctx, now); n != nil {
		out = append(out, *n)
	}
	if n := s.environmentRule(ctx, now); n != nil {
		out = append(out, *n)
	}
	out = append(out, s.statusRules(ctx, now)...)

	return out
}

// burnoutRule flags when any user checked in with a low mood repeatedly
// within the trailing week.
func (s *NotificationService) burnoutRule(ctx context.Context, now time.Time) *models.Notification {
	moods, err := s.store.MoodsInRange(ctx, nil, now.AddDate(0, 0, -7), now)
	if err != nil {
		log.Printf("notifications: burnout rule skipped: %v", err)
		return nil
	}

	lowPerUser := map[uint]int{}
	for _, m := range moods {
		if m.MoodScore <= s.th.BurnoutMoodCeiling {
			lowPerUser[m.UserID]++
		}
	}
	atRisk := 0
	for _, c := range lowPerUser {
		if c >= s.th.BurnoutMinCheckins {
			atRisk++
		}
	}
	if atRisk == 0 {
		return nil
	}

	return newNotification(models.NotificationAlert, "Burnout risk detected",
		fmt.Sprintf("%d user(s) reported repeated low moods in the last 7 days", atRisk), now)
}

// activityDropRule compares equal-length, non-overlapping weekly windows.
// A zero prior week never fires, whatever the current week looks like.
func (s *NotificationService) activityDropRule(ctx context.Context, now time.Time) *models.Notification {
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	current, err := s.store.CountActivities(ctx, weekAgo, now)
	if err != nil {
		log.Printf("notifications: activity drop rule skipped: %v", err)
		return nil
	}
	prior, err := s.store.CountActivities(ctx, twoWeeksAgo, weekAgo)
	if err != nil {
		log.Printf("notifications: activity drop rule skipped: %v", err)
		return nil
	}

	if prior <= 0 || float64(current) >= s.th.ActivityDropRatio*float64(prior) {
		return nil
	}

	dropPct := int(math.Round((1 - float64(current)/float64(prior)) * 100))
	return newNotification(models.NotificationWarning, "Activity drop",
		fmt.Sprintf("Logged activity fell %d%% compared to the previous week", dropPct), now)
}

// environmentRule checks the latest reading per zone and names the worst one.
func (s *NotificationService) environmentRule(ctx context.Context, now time.Time) *models.Notification {
	readings, err := s.store.LatestEnvironmentReadings(ctx)
	if err != nil {
		log.Printf("notifications: environment rule skipped: %v", err)
		return nil
	}

	worstZone := ""
	worstAQI := s.th.AQIWarnLevel
	for _, r := range readings {
		if r.AQI > worstAQI {
			worstAQI = r.AQI
			worstZone = r.Zone
		}
	}
	if worstZone == "" {
		return nil
	}

	return newNotification(models.NotificationWarning, "Air quality spike",
		fmt.Sprintf("Zone %s is at AQI %d — consider indoor activities", worstZone, worstAQI), now)
}

// statusRules are always emitted and only report raw counts.
func (s *NotificationService) statusRules(ctx context.Context, now time.Time) []models.Notification {
	out := []models.Notification{}

	foods, err := s.store.CountFoodCatalog(ctx)
	if err != nil {
		log.Printf("notifications: food catalog status skipped: %v", err)
	} else {
		out = append(out, *newNotification(models.NotificationInfo, "Food catalog",
			fmt.Sprintf("%d food items available in the catalog", foods), now))
	}

	active, err := s.store.CountActiveUsersSince(ctx, dayStart(now))
	if err != nil {
		log.Printf("notifications: active user status skipped: %v", err)
	} else {
		out = append(out, *newNotification(models.NotificationSuccess, "Active today",
			fmt.Sprintf("%d user(s) logged activity today", active), now))
	}

	total, err := s.totalLoggedRecords(ctx, now)
	if err != nil {
		log.Printf("notifications: record total status skipped: %v", err)
	} else {
		out = append(out, *newNotification(models.NotificationInfo, "Logged records",
			fmt.Sprintf("%d records logged across all stores", total), now))
	}

	return out
}

func (s *NotificationService) totalLoggedRecords(ctx context.Context, now time.Time) (int64, error) {
	activities, err := s.store.CountActivities(ctx, time.Time{}, now)
	if err != nil {
		return 0, err
	}
	meals, err := s.store.CountNutrition(ctx, time.Time{}, now)
	if err != nil {
		return 0, err
	}
	moods, err := s.store.CountMoods(ctx, time.Time{}, now)
	if err != nil {
		return 0, err
	}
	return activities + meals + moods, nil
}

func newNotification(typ, title, message string, now time.Time) *models.Notification {
	return &models.Notification{
		ID:          uuid.NewString(),
		Type:        typ,
		Title:       title,
		Message:     message,
		GeneratedAt: now,
		Read:        false,
	}
}
