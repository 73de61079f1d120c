package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"foundersight/internal/models"
	"foundersight/internal/repository"
)

// AlertSweepService flags startups whose latest metric reports a runway
// at or below the configured threshold. One unread alert per startup
// and type at a time.
type AlertSweepService struct {
	Repo                    repository.Repository
	Logger                  *zap.Logger
	RunwayThresholdMonths   int
	CriticalThresholdMonths int
}

func (s *AlertSweepService) Sweep(ctx context.Context) error {
	startups, err := s.Repo.ListAllStartups(ctx)
	if err != nil {
		return err
	}

	for _, startup := range startups {
		latest, err := s.Repo.LatestMetric(ctx, startup.ID)
		if err != nil {
			if s.Logger != nil {
				s.Logger.Warn("latest metric read failed", zap.String("startup_id", startup.ID), zap.Error(err))
			}
			continue
		}
		if latest == nil || latest.Runway > s.RunwayThresholdMonths {
			continue
		}

		exists, err := s.Repo.HasUnreadAlert(ctx, startup.ID, models.AlertTypeRunwayLow)
		if err != nil || exists {
			continue
		}

		severity := models.AlertSeverityHigh
		if latest.Runway <= s.CriticalThresholdMonths {
			severity = models.AlertSeverityCritical
		}
		item := &models.Alert{
			StartupID: startup.ID,
			Type:      models.AlertTypeRunwayLow,
			Severity:  severity,
			Message:   fmt.Sprintf("Runway down to %d months. Review burn rate and funding options.", latest.Runway),
		}
		if err := s.Repo.InsertAlert(ctx, item); err != nil {
			if s.Logger != nil {
				s.Logger.Warn("alert insert failed", zap.String("startup_id", startup.ID), zap.Error(err))
			}
			continue
		}
		if s.Logger != nil {
			s.Logger.Info("runway alert created",
				zap.String("startup_id", startup.ID),
				zap.Int("runway", latest.Runway),
				zap.String("severity", severity))
		}
	}
	return nil
}
