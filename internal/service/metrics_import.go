package service

import (
	"context"

	"go.uber.org/zap"

	"foundersight/internal/importer"
	"foundersight/internal/models"
	"foundersight/internal/repository"
)

// ImportSummary is the aggregate result of one upload.
type ImportSummary struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

type MetricsImportService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

// Import runs the per-row best-effort loop: each row is independently
// validated, coerced, and inserted. Invalid rows and insert failures
// count as failures without aborting the rest. There is no transaction
// and no rollback.
func (s *MetricsImportService) Import(ctx context.Context, startupID string, rows []importer.Row) ImportSummary {
	var sum ImportSummary
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			sum.Failed++
			continue
		}
		coerced, err := row.Coerce()
		if err != nil {
			sum.Failed++
			continue
		}
		item := &models.Metric{
			StartupID:   startupID,
			Revenue:     coerced.Revenue,
			Expenses:    coerced.Expenses,
			BurnRate:    coerced.BurnRate,
			Runway:      coerced.Runway,
			PeriodStart: coerced.PeriodStart,
			PeriodEnd:   coerced.PeriodEnd,
		}
		if err := s.Repo.InsertMetric(ctx, item); err != nil {
			sum.Failed++
			if s.Logger != nil {
				s.Logger.Warn("metric insert failed", zap.String("startup_id", startupID), zap.Error(err))
			}
			continue
		}
		sum.Succeeded++
	}
	return sum
}
