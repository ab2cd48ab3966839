package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jgauri24/fitfusion-backend/models"
	"github.com/Jgauri24/fitfusion-backend/utils"
)

const defaultReportLimit = 20

type ReportStore interface {
	CreateReport(ctx context.Context, r *models.Report) error
	RecentReports(ctx context.Context, limit int) ([]models.Report, error)
}

// ReportService keeps user reports in an append-only store behind the
// gateway rather than a process-wide in-memory list.
type ReportService struct {
	store ReportStore
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

func (s *ReportService) Submit(ctx context.Context, userID uint, category, body string) (*models.Report, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: report body must not be empty", utils.ErrValidation)
	}
	report := &models.Report{UserID: userID, Category: strings.TrimSpace(category), Body: strings.TrimSpace(body)}
	if err := s.store.CreateReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) Recent(ctx context.Context, limit int) ([]models.Report, error) {
	if limit <= 0 {
		limit = defaultReportLimit
	}
	return s.store.RecentReports(ctx, limit)
}
