package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/Jgauri24/fitfusion-backend/models"

	"gorm.io/gorm"
)

var seedNow = time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

type stubSeederStore struct {
	users []models.User

	activities []models.ActivityRecord
	nutrition  []models.NutritionRecord
	moods      []models.MoodRecord
	readings   []models.EnvironmentReading

	usersErr     error
	nutritionErr error
	moodsErr     error
}

func (s *stubSeederStore) AllUsers(context.Context) ([]models.User, error) {
	if s.usersErr != nil {
		return nil, s.usersErr
	}
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *stubSeederStore) InsertActivities(_ context.Context, recs []models.ActivityRecord) error {
	s.activities = append(s.activities, recs...)
	return nil
}

func (s *stubSeederStore) InsertNutrition(_ context.Context, recs []models.NutritionRecord) error {
	if s.nutritionErr != nil {
		return s.nutritionErr
	}
	s.nutrition = append(s.nutrition, recs...)
	return nil
}

func (s *stubSeederStore) InsertMoods(_ context.Context, recs []models.MoodRecord) error {
	if s.moodsErr != nil {
		return s.moodsErr
	}
	s.moods = append(s.moods, recs...)
	return nil
}

func (s *stubSeederStore) InsertEnvironmentReadings(_ context.Context, recs []models.EnvironmentReading) error {
	s.readings = append(s.readings, recs...)
	return nil
}

func testSeederConfig() SeederConfig {
	return SeederConfig{
		Enabled:      true,
		Interval:     30 * time.Minute,
		SampleMinPct: 5,
		SampleMaxPct: 15,
		Zones:        []string{"hostel-a", "hostel-b"},
	}
}

func newTestSeeder(store SeederStore, seed int64) *SeederService {
	s := NewSeederService(store, testSeederConfig())
	s.rng = rand.New(rand.NewSource(seed))
	return s
}

func manyUsers(n int) []models.User {
	users := make([]models.User, n)
	for i := range users {
		users[i] = models.User{Model: gorm.Model{ID: uint(i + 1)}, Email: "u@test"}
	}
	return users
}

func TestSeedSampleSizeWithinBounds(t *testing.T) {
	store := &stubSeederStore{users: manyUsers(200)}
	seeder := newTestSeeder(store, 1)

	for run := 0; run < 20; run++ {
		sampled := seeder.sampleUsers(store.users)
		// 5–15% of 200 users is 10 to 30.
		if len(sampled) < 10 || len(sampled) > 30 {
			t.Fatalf("run %d sampled %d users, want within [10,30]", run, len(sampled))
		}
		seen := map[uint]bool{}
		for _, u := range sampled {
			if seen[u.ID] {
				t.Fatalf("user %d sampled twice in one run", u.ID)
			}
			seen[u.ID] = true
		}
	}
}

func TestSeedSamplesAtLeastOneUser(t *testing.T) {
	store := &stubSeederStore{users: manyUsers(3)}
	seeder := newTestSeeder(store, 2)

	if got := len(seeder.sampleUsers(store.users)); got < 1 {
		t.Fatalf("tiny populations must still sample one user, got %d", got)
	}
}

func TestSeedWritesBoundedPlausibleValues(t *testing.T) {
	store := &stubSeederStore{users: manyUsers(100)}
	seeder := newTestSeeder(store, 3)

	if err := seeder.seed(context.Background(), seedNow); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if len(store.nutrition) == 0 {
		t.Fatalf("every sampled user gets at least one nutrition record")
	}
	for _, rec := range store.nutrition {
		if rec.Calories < 50 || rec.Calories > 600 {
			t.Fatalf("nutrition calories %v outside [50,600]", rec.Calories)
		}
		assertRecentTimestamp(t, rec.LoggedAt)
		if !models.ValidMealType(rec.MealType) {
			t.Fatalf("unknown meal type %q", rec.MealType)
		}
	}
	for _, rec := range store.activities {
		if rec.DurationMins < 15 || rec.DurationMins > 90 {
			t.Fatalf("activity duration %d outside [15,90]", rec.DurationMins)
		}
		if rec.CaloriesBurned < 50 || rec.CaloriesBurned > 600 {
			t.Fatalf("activity calories %v outside [50,600]", rec.CaloriesBurned)
		}
		assertRecentTimestamp(t, rec.LoggedAt)
		if !models.ValidActivityType(rec.ActivityType) {
			t.Fatalf("unknown activity type %q", rec.ActivityType)
		}
	}
	for _, rec := range store.moods {
		if rec.MoodScore < 0 || rec.MoodScore > 4 {
			t.Fatalf("mood score %d outside [0,4]", rec.MoodScore)
		}
	}
}

func assertRecentTimestamp(t *testing.T, ts time.Time) {
	t.Helper()
	if ts.After(seedNow) || ts.Before(seedNow.Add(-120*time.Minute)) {
		t.Fatalf("timestamp %v outside the last 120 minutes", ts)
	}
}

func TestSeedAlwaysWritesOneReadingPerZone(t *testing.T) {
	store := &stubSeederStore{} // no users at all
	seeder := newTestSeeder(store, 4)

	if err := seeder.seed(context.Background(), seedNow); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if len(store.readings) != 2 {
		t.Fatalf("expected one reading per zone, got %d", len(store.readings))
	}
	zones := map[string]bool{}
	for _, r := range store.readings {
		zones[r.Zone] = true
	}
	if !zones["hostel-a"] || !zones["hostel-b"] {
		t.Fatalf("missing zone coverage: %v", zones)
	}
}

func TestSeedReturnsErrorButKeepsPartialBatches(t *testing.T) {
	store := &stubSeederStore{
		users:    manyUsers(50),
		moodsErr: errors.New("document store down"),
	}
	seeder := newTestSeeder(store, 5)

	err := seeder.seed(context.Background(), seedNow)
	if err == nil {
		t.Fatalf("expected the failed batch to surface")
	}
	// Relational batches written before the document-store failure stay: the
	// two stores are not transactional with each other.
	if len(store.nutrition) == 0 {
		t.Fatalf("nutrition batch should have landed before the mood failure")
	}
}

// runOnce must swallow the error so the scheduling loop survives.
func TestRunOnceDoesNotPanicOnFailure(t *testing.T) {
	store := &stubSeederStore{usersErr: errors.New("relational store down")}
	seeder := newTestSeeder(store, 6)

	seeder.runOnce(context.Background())
}

func TestStartRespectsDisabledFlag(t *testing.T) {
	store := &stubSeederStore{users: manyUsers(10)}
	cfg := testSeederConfig()
	cfg.Enabled = false
	seeder := NewSeederService(store, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	seeder.Start(ctx)

	time.Sleep(20 * time.Millisecond)
	if len(store.nutrition) != 0 || len(store.readings) != 0 {
		t.Fatalf("disabled seeder must not write")
	}
}
