package services

import (
	"context"
	"fmt"

	"github.com/Jgauri24/fitfusion-backend/models"
	"github.com/Jgauri24/fitfusion-backend/utils"
)

type EventStore interface {
	FindEvent(ctx context.Context, id uint) (*models.WellnessEvent, error)
	ListEvents(ctx context.Context) ([]models.WellnessEvent, error)
	CountParticipants(ctx context.Context, eventID uint) (int64, error)
	CreateParticipation(ctx context.Context, p *models.EventParticipation) error
	DeleteParticipation(ctx context.Context, userID, eventID uint) error
}

type EventService struct {
	store EventStore
}

func NewEventService(store EventStore) *EventService {
	return &EventService{store: store}
}

type EventWithCount struct {
	models.WellnessEvent
	Participants int64 `json:"participants"`
}

func (s *EventService) ListEvents(ctx context.Context) ([]EventWithCount, error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EventWithCount, 0, len(events))
	for _, ev := range events {
		count, err := s.store.CountParticipants(ctx, ev.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, EventWithCount{WellnessEvent: ev, Participants: count})
	}
	return out, nil
}

// Join enforces existence and capacity; the duplicate (userID, eventID) case
// surfaces as ErrConflict from the store's unique index, which also
// serializes concurrent joins.
func (s *EventService) Join(ctx context.Context, userID, eventID uint) error {
	ev, err := s.store.FindEvent(ctx, eventID)
	if err != nil {
		return err
	}

	count, err := s.store.CountParticipants(ctx, eventID)
	if err != nil {
		return err
	}
	if ev.Capacity > 0 && count >= int64(ev.Capacity) {
		return fmt.Errorf("%w: event is at capacity", utils.ErrValidation)
	}

	return s.store.CreateParticipation(ctx, &models.EventParticipation{UserID: userID, EventID: eventID})
}

func (s *EventService) Leave(ctx context.Context, userID, eventID uint) error {
	return s.store.DeleteParticipation(ctx, userID, eventID)
}
