package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Jgauri24/fitfusion-backend/models"
	"github.com/Jgauri24/fitfusion-backend/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

const (
	moodCollection    = "moods"
	journalCollection = "journals"
)

// RecordGateway is the single access path to both backing stores: the
// relational store (activity, nutrition, environment, users, events) and the
// document store (mood check-ins, journals). It carries no business logic —
// reads filter by user and time range, writes insert what they are given.
// Range filters are half-open [from, to) on the record's logged/created time.
type RecordGateway struct {
	db   *gorm.DB
	docs *mongo.Database
}

func NewRecordGateway(db *gorm.DB, docs *mongo.Database) *RecordGateway {
	return &RecordGateway{db: db, docs: docs}
}

// storeErr maps backend failures onto the shared taxonomy. Connectivity
// failures become ErrStoreUnavailable; callers decide whether to retry.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return utils.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || mongo.IsDuplicateKeyError(err) ||
		strings.Contains(err.Error(), "duplicate key") {
		return utils.ErrConflict
	}
	return fmt.Errorf("%w: %v", utils.ErrStoreUnavailable, err)
}

// ---------- relational reads ----------

func (g *RecordGateway) ActivitiesInRange(ctx context.Context, userID *uint, from, to time.Time) ([]models.ActivityRecord, error) {
	q := g.db.WithContext(ctx).Where("logged_at >= ? AND logged_at < ?", from, to)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	var recs []models.ActivityRecord
	if err := q.Order("logged_at ASC").Find(&recs).Error; err != nil {
		return nil, storeErr(err)
	}
	return recs, nil
}

func (g *RecordGateway) NutritionInRange(ctx context.Context, userID *uint, from, to time.Time) ([]models.NutritionRecord, error) {
	q := g.db.WithContext(ctx).Where("logged_at >= ? AND logged_at < ?", from, to)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	var recs []models.NutritionRecord
	if err := q.Order("logged_at ASC").Find(&recs).Error; err != nil {
		return nil, storeErr(err)
	}
	return recs, nil
}

// LatestEnvironmentReadings returns the most recent reading per zone.
func (g *RecordGateway) LatestEnvironmentReadings(ctx context.Context) ([]models.EnvironmentReading, error) {
	var all []models.EnvironmentReading
	if err := g.db.WithContext(ctx).Order("created_at DESC").Find(&all).Error; err != nil {
		return nil, storeErr(err)
	}
	seen := map[string]bool{}
	latest := make([]models.EnvironmentReading, 0, len(all))
	for _, r := range all {
		if seen[r.Zone] {
			continue
		}
		seen[r.Zone] = true
		latest = append(latest, r)
	}
	return latest, nil
}

func (g *RecordGateway) AllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := g.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

func (g *RecordGateway) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := g.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

func (g *RecordGateway) CountFoodCatalog(ctx context.Context) (int64, error) {
	var n int64
	if err := g.db.WithContext(ctx).Model(&models.FoodItem{}).Count(&n).Error; err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

func (g *RecordGateway) CountActivities(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := g.db.WithContext(ctx).Model(&models.ActivityRecord{}).
		Where("logged_at >= ? AND logged_at < ?", from, to).
		Count(&n).Error
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

func (g *RecordGateway) CountNutrition(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := g.db.WithContext(ctx).Model(&models.NutritionRecord{}).
		Where("logged_at >= ? AND logged_at < ?", from, to).
		Count(&n).Error
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

// CountActiveUsersSince counts distinct users with at least one activity
// record logged at or after the given instant.
func (g *RecordGateway) CountActiveUsersSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := g.db.WithContext(ctx).Model(&models.ActivityRecord{}).
		Where("logged_at >= ?", since).
		Distinct("user_id").
		Count(&n).Error
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

// ---------- document reads ----------

func (g *RecordGateway) MoodsInRange(ctx context.Context, userID *uint, from, to time.Time) ([]models.MoodRecord, error) {
	filter := bson.M{"created_at": bson.M{"$gte": from, "$lt": to}}
	if userID != nil {
		filter["user_id"] = *userID
	}
	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := g.docs.Collection(moodCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	var recs []models.MoodRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, storeErr(err)
	}
	return recs, nil
}

func (g *RecordGateway) JournalsInRange(ctx context.Context, userID *uint, from, to time.Time) ([]models.JournalRecord, error) {
	filter := bson.M{"created_at": bson.M{"$gte": from, "$lt": to}}
	if userID != nil {
		filter["user_id"] = *userID
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := g.docs.Collection(journalCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	var recs []models.JournalRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, storeErr(err)
	}
	return recs, nil
}

func (g *RecordGateway) CountMoods(ctx context.Context, from, to time.Time) (int64, error) {
	n, err := g.docs.Collection(moodCollection).CountDocuments(ctx,
		bson.M{"created_at": bson.M{"$gte": from, "$lt": to}})
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

// ---------- bulk writes (generator path; atomic within one store) ----------

func (g *RecordGateway) InsertActivities(ctx context.Context, recs []models.ActivityRecord) error {
	if len(recs) == 0 {
		return nil
	}
	return storeErr(g.db.WithContext(ctx).Create(&recs).Error)
}

func (g *RecordGateway) InsertNutrition(ctx context.Context, recs []models.NutritionRecord) error {
	if len(recs) == 0 {
		return nil
	}
	return storeErr(g.db.WithContext(ctx).Create(&recs).Error)
}

func (g *RecordGateway) InsertEnvironmentReadings(ctx context.Context, recs []models.EnvironmentReading) error {
	if len(recs) == 0 {
		return nil
	}
	return storeErr(g.db.WithContext(ctx).Create(&recs).Error)
}

func (g *RecordGateway) InsertMoods(ctx context.Context, recs []models.MoodRecord) error {
	if len(recs) == 0 {
		return nil
	}
	docs := make([]interface{}, len(recs))
	for i := range recs {
		docs[i] = recs[i]
	}
	_, err := g.docs.Collection(moodCollection).InsertMany(ctx, docs)
	return storeErr(err)
}

// ---------- single-record writes (request path) ----------

func (g *RecordGateway) CreateActivity(ctx context.Context, rec *models.ActivityRecord) error {
	return storeErr(g.db.WithContext(ctx).Create(rec).Error)
}

func (g *RecordGateway) CreateNutrition(ctx context.Context, rec *models.NutritionRecord) error {
	return storeErr(g.db.WithContext(ctx).Create(rec).Error)
}

func (g *RecordGateway) CreateEnvironmentReading(ctx context.Context, rec *models.EnvironmentReading) error {
	return storeErr(g.db.WithContext(ctx).Create(rec).Error)
}

func (g *RecordGateway) CreateMood(ctx context.Context, rec *models.MoodRecord) error {
	_, err := g.docs.Collection(moodCollection).InsertOne(ctx, rec)
	return storeErr(err)
}

func (g *RecordGateway) CreateJournal(ctx context.Context, rec *models.JournalRecord) error {
	_, err := g.docs.Collection(journalCollection).InsertOne(ctx, rec)
	return storeErr(err)
}

// ---------- owner deletes ----------

func (g *RecordGateway) DeleteActivityForOwner(ctx context.Context, userID, id uint) error {
	res := g.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.ActivityRecord{})
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (g *RecordGateway) DeleteNutritionForOwner(ctx context.Context, userID, id uint) error {
	res := g.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.NutritionRecord{})
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// ---------- events ----------

func (g *RecordGateway) FindEvent(ctx context.Context, id uint) (*models.WellnessEvent, error) {
	var ev models.WellnessEvent
	if err := g.db.WithContext(ctx).First(&ev, id).Error; err != nil {
		return nil, storeErr(err)
	}
	return &ev, nil
}

func (g *RecordGateway) ListEvents(ctx context.Context) ([]models.WellnessEvent, error) {
	var evs []models.WellnessEvent
	if err := g.db.WithContext(ctx).Order("starts_at ASC").Find(&evs).Error; err != nil {
		return nil, storeErr(err)
	}
	return evs, nil
}

func (g *RecordGateway) CountParticipants(ctx context.Context, eventID uint) (int64, error) {
	var n int64
	err := g.db.WithContext(ctx).Model(&models.EventParticipation{}).
		Where("event_id = ?", eventID).
		Count(&n).Error
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

// CreateParticipation relies on the store's unique (user_id, event_id) index
// to serialize concurrent joins; the violation surfaces as ErrConflict.
func (g *RecordGateway) CreateParticipation(ctx context.Context, p *models.EventParticipation) error {
	return storeErr(g.db.WithContext(ctx).Create(p).Error)
}

func (g *RecordGateway) DeleteParticipation(ctx context.Context, userID, eventID uint) error {
	res := g.db.WithContext(ctx).Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&models.EventParticipation{})
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// ---------- reports ----------

func (g *RecordGateway) CreateReport(ctx context.Context, r *models.Report) error {
	return storeErr(g.db.WithContext(ctx).Create(r).Error)
}

func (g *RecordGateway) RecentReports(ctx context.Context, limit int) ([]models.Report, error) {
	var reports []models.Report
	if err := g.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&reports).Error; err != nil {
		return nil, storeErr(err)
	}
	return reports, nil
}
