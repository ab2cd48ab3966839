package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/Jgauri24/fitfusion-backend/models"
)

// SeederConfig is read from the environment so the generator can be tuned
// (or disabled outright) without touching the request-handling code.
type SeederConfig struct {
	Enabled      bool
	Interval     time.Duration
	SampleMinPct float64
	SampleMaxPct float64
	Zones        []string
}

func LoadSeederConfig() SeederConfig {
	return SeederConfig{
		Enabled:      envBool("SEEDER_ENABLED", true),
		Interval:     time.Duration(envInt("SEEDER_INTERVAL_MINUTES", 30)) * time.Minute,
		SampleMinPct: envFloat("SEEDER_SAMPLE_MIN_PCT", 5),
		SampleMaxPct: envFloat("SEEDER_SAMPLE_MAX_PCT", 15),
		Zones:        []string{"hostel-a", "hostel-b", "hostel-c", "mess", "gym"},
	}
}

// SeederStore is the write slice of the gateway the generator uses. Each
// insert is atomic within its own store; there is no transaction across the
// two stores.
type SeederStore interface {
	AllUsers(ctx context.Context) ([]models.User, error)
	InsertActivities(ctx context.Context, recs []models.ActivityRecord) error
	InsertNutrition(ctx context.Context, recs []models.NutritionRecord) error
	InsertMoods(ctx context.Context, recs []models.MoodRecord) error
	InsertEnvironmentReadings(ctx context.Context, recs []models.EnvironmentReading) error
}

// SeederService periodically writes plausible synthetic records so derived
// metrics stay non-trivial between real user actions.
type SeederService struct {
	store SeederStore
	cfg   SeederConfig
	rng   *rand.Rand
}

func NewSeederService(store SeederStore, cfg SeederConfig) *SeederService {
	return &SeederService{
		store: store,
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start launches the generator loop: one run immediately, then one per
// interval until the context is cancelled.
func (s *SeederService) Start(ctx context.Context) {
	if !s.cfg.Enabled {
		log.Println("seeder: disabled by config")
		return
	}
	go s.loop(ctx)
}

func (s *SeederService) loop(ctx context.Context) {
	s.runOnce(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("seeder: stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce logs and skips a failed run. There is no mid-interval retry and no
// error ever escapes to kill the loop; the next tick runs independently.
func (s *SeederService) runOnce(ctx context.Context) {
	if err := s.seed(ctx, time.Now()); err != nil {
		log.Printf("seeder: run skipped: %v", err)
	}
}

func (s *SeederService) seed(ctx context.Context, now time.Time) error {
	users, err := s.store.AllUsers(ctx)
	if err != nil {
		return fmt.Errorf("sampling users: %w", err)
	}

	if len(users) > 0 {
		sampled := s.sampleUsers(users)

		var meals []models.NutritionRecord
		var activities []models.ActivityRecord
		var moods []models.MoodRecord
		for _, u := range sampled {
			n := 1 + s.rng.Intn(3)
			for i := 0; i < n; i++ {
				meals = append(meals, s.randomNutrition(u.ID, now))
			}
			if s.rng.Float64() < 0.6 {
				activities = append(activities, s.randomActivity(u.ID, now))
			}
			if s.rng.Float64() < 0.3 {
				moods = append(moods, s.randomMood(u.ID, now))
			}
		}

		// Writes are per-store; a failure here leaves whatever already
		// landed, which downstream reads treat as "no activity", not
		// corruption.
		if err := s.store.InsertNutrition(ctx, meals); err != nil {
			return fmt.Errorf("nutrition batch: %w", err)
		}
		if err := s.store.InsertActivities(ctx, activities); err != nil {
			return fmt.Errorf("activity batch: %w", err)
		}
		if err := s.store.InsertMoods(ctx, moods); err != nil {
			return fmt.Errorf("mood batch: %w", err)
		}
	}

	if err := s.store.InsertEnvironmentReadings(ctx, s.randomEnvironment(now)); err != nil {
		return fmt.Errorf("environment batch: %w", err)
	}
	return nil
}

// sampleUsers draws a fresh rate in [min,max]% each run and picks that share
// of users uniformly without replacement, at least one.
func (s *SeederService) sampleUsers(users []models.User) []models.User {
	rate := s.cfg.SampleMinPct + s.rng.Float64()*(s.cfg.SampleMaxPct-s.cfg.SampleMinPct)
	n := int(float64(len(users)) * rate / 100)
	if n < 1 {
		n = 1
	}
	if n > len(users) {
		n = len(users)
	}

	shuffled := make([]models.User, len(users))
	copy(shuffled, users)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

func (s *SeederService) recentTimestamp(now time.Time) time.Time {
	return now.Add(-time.Duration(s.rng.Intn(121)) * time.Minute)
}

var seedFoods = []string{"dal rice", "veg thali", "oats", "fruit bowl", "paneer wrap", "sandwich", "idli sambar"}

func (s *SeederService) randomNutrition(userID uint, now time.Time) models.NutritionRecord {
	return models.NutritionRecord{
		UserID:   userID,
		MealType: models.MealTypes[s.rng.Intn(len(models.MealTypes))],
		FoodName: seedFoods[s.rng.Intn(len(seedFoods))],
		Calories: 50 + s.rng.Float64()*550,
		LoggedAt: s.recentTimestamp(now),
	}
}

func (s *SeederService) randomActivity(userID uint, now time.Time) models.ActivityRecord {
	return models.ActivityRecord{
		UserID:         userID,
		ActivityType:   models.ActivityTypes[s.rng.Intn(len(models.ActivityTypes))],
		DurationMins:   15 + s.rng.Intn(76), // 15..90
		CaloriesBurned: 50 + s.rng.Float64()*550,
		LoggedAt:       s.recentTimestamp(now),
	}
}

var seedMoodNotes = []string{"feeling fine", "long day", "good workout", "tired after classes", "pretty relaxed"}

func (s *SeederService) randomMood(userID uint, now time.Time) models.MoodRecord {
	return models.MoodRecord{
		UserID:    userID,
		MoodScore: s.rng.Intn(5),
		Note:      seedMoodNotes[s.rng.Intn(len(seedMoodNotes))],
		CreatedAt: s.recentTimestamp(now),
	}
}

func (s *SeederService) randomEnvironment(now time.Time) []models.EnvironmentReading {
	readings := make([]models.EnvironmentReading, 0, len(s.cfg.Zones))
	for _, zone := range s.cfg.Zones {
		readings = append(readings, models.EnvironmentReading{
			Zone:        zone,
			AQI:         30 + s.rng.Intn(170),
			NoiseDB:     35 + s.rng.Intn(50),
			Temperature: 18 + s.rng.Float64()*16,
			Humidity:    30 + s.rng.Float64()*55,
		})
	}
	return readings
}

// ---------- env helpers ----------

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using default", key, v)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("config: invalid %s=%q, using default", key, v)
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		log.Printf("config: invalid %s=%q, using default", key, v)
		return fallback
	}
	return f
}
