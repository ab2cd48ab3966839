package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Jgauri24/fitfusion-backend/models"
	"github.com/Jgauri24/fitfusion-backend/utils"
)

type stubReportStore struct {
	reports []models.Report
}

func (s *stubReportStore) CreateReport(_ context.Context, r *models.Report) error {
	s.reports = append(s.reports, *r)
	return nil
}

func (s *stubReportStore) RecentReports(_ context.Context, limit int) ([]models.Report, error) {
	if limit > len(s.reports) {
		limit = len(s.reports)
	}
	out := make([]models.Report, 0, limit)
	for i := len(s.reports) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.reports[i])
	}
	return out, nil
}

func TestSubmitReportAppends(t *testing.T) {
	store := &stubReportStore{}
	svc := NewReportService(store)

	report, err := svc.Submit(context.Background(), 1, "noise", "  gym music too loud at night  ")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if report.Body != "gym music too loud at night" {
		t.Fatalf("body not trimmed: %q", report.Body)
	}
	if len(store.reports) != 1 {
		t.Fatalf("expected one stored report, got %d", len(store.reports))
	}
}

func TestSubmitReportRejectsEmptyBody(t *testing.T) {
	svc := NewReportService(&stubReportStore{})

	if _, err := svc.Submit(context.Background(), 1, "noise", "   "); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("blank body = %v, want ErrValidation", err)
	}
}

func TestRecentReportsDefaultsLimit(t *testing.T) {
	store := &stubReportStore{}
	svc := NewReportService(store)
	for i := 0; i < 30; i++ {
		if _, err := svc.Submit(context.Background(), uint(i+1), "general", "entry"); err != nil {
			t.Fatalf("submit %d failed: %v", i, err)
		}
	}

	reports, err := svc.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(reports) != defaultReportLimit {
		t.Fatalf("expected default limit %d, got %d", defaultReportLimit, len(reports))
	}
}
