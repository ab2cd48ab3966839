package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Jgauri24/fitfusion-backend/models"
	"github.com/Jgauri24/fitfusion-backend/utils"

	"gorm.io/gorm"
)

type stubEventStore struct {
	event        *models.WellnessEvent
	participants map[uint]map[uint]bool // eventID -> userID set
}

func newStubEventStore(capacity int) *stubEventStore {
	return &stubEventStore{
		event:        &models.WellnessEvent{Model: gorm.Model{ID: 1}, Title: "Morning yoga", Capacity: capacity},
		participants: map[uint]map[uint]bool{},
	}
}

func (s *stubEventStore) FindEvent(_ context.Context, id uint) (*models.WellnessEvent, error) {
	if s.event == nil || s.event.ID != id {
		return nil, utils.ErrNotFound
	}
	return s.event, nil
}

func (s *stubEventStore) ListEvents(context.Context) ([]models.WellnessEvent, error) {
	if s.event == nil {
		return nil, nil
	}
	return []models.WellnessEvent{*s.event}, nil
}

func (s *stubEventStore) CountParticipants(_ context.Context, eventID uint) (int64, error) {
	return int64(len(s.participants[eventID])), nil
}

// Mirrors the store's unique (user_id, event_id) index.
func (s *stubEventStore) CreateParticipation(_ context.Context, p *models.EventParticipation) error {
	set := s.participants[p.EventID]
	if set == nil {
		set = map[uint]bool{}
		s.participants[p.EventID] = set
	}
	if set[p.UserID] {
		return utils.ErrConflict
	}
	set[p.UserID] = true
	return nil
}

func (s *stubEventStore) DeleteParticipation(_ context.Context, userID, eventID uint) error {
	if !s.participants[eventID][userID] {
		return utils.ErrNotFound
	}
	delete(s.participants[eventID], userID)
	return nil
}

func TestJoinEvent(t *testing.T) {
	store := newStubEventStore(10)
	svc := NewEventService(store)

	if err := svc.Join(context.Background(), 7, 1); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	if n, _ := store.CountParticipants(context.Background(), 1); n != 1 {
		t.Fatalf("participant count = %d, want 1", n)
	}
}

func TestJoinEventDuplicateIsConflict(t *testing.T) {
	store := newStubEventStore(10)
	svc := NewEventService(store)

	if err := svc.Join(context.Background(), 7, 1); err != nil {
		t.Fatalf("first join failed: %v", err)
	}

	err := svc.Join(context.Background(), 7, 1)
	if !errors.Is(err, utils.ErrConflict) {
		t.Fatalf("duplicate join = %v, want ErrConflict", err)
	}
	if n, _ := store.CountParticipants(context.Background(), 1); n != 1 {
		t.Fatalf("duplicate join changed participant count to %d", n)
	}
}

func TestJoinEventCapacityEnforced(t *testing.T) {
	store := newStubEventStore(1)
	svc := NewEventService(store)

	if err := svc.Join(context.Background(), 1, 1); err != nil {
		t.Fatalf("join within capacity failed: %v", err)
	}

	err := svc.Join(context.Background(), 2, 1)
	if !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("full event join = %v, want ErrValidation", err)
	}
}

func TestJoinMissingEventIsNotFound(t *testing.T) {
	svc := NewEventService(newStubEventStore(5))

	if err := svc.Join(context.Background(), 1, 99); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("missing event join = %v, want ErrNotFound", err)
	}
}

func TestLeaveEvent(t *testing.T) {
	store := newStubEventStore(5)
	svc := NewEventService(store)

	if err := svc.Join(context.Background(), 3, 1); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if err := svc.Leave(context.Background(), 3, 1); err != nil {
		t.Fatalf("leave failed: %v", err)
	}
	if err := svc.Leave(context.Background(), 3, 1); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("second leave = %v, want ErrNotFound", err)
	}
}

func TestListEventsIncludesCounts(t *testing.T) {
	store := newStubEventStore(5)
	svc := NewEventService(store)

	_ = svc.Join(context.Background(), 1, 1)
	_ = svc.Join(context.Background(), 2, 1)

	events, err := svc.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(events) != 1 || events[0].Participants != 2 {
		t.Fatalf("expected one event with 2 participants, got %+v", events)
	}
}
