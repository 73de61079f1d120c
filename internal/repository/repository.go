package repository

import (
	"context"

	"foundersight/internal/models"
)

// Repository is the owner-scoped entity store. Reads and writes that
// take an ownerID only see rows belonging to that identity; child
// entities are reached through their startup, which is ownership
// checked by the service layer first.
type Repository interface {
	// Startups, newest first.
	ListStartups(ctx context.Context, ownerID string) ([]models.Startup, error)
	GetStartupByID(ctx context.Context, ownerID, startupID string) (*models.Startup, error)
	CreateStartup(ctx context.Context, item *models.Startup) error

	// Metrics, newest period first.
	ListMetrics(ctx context.Context, startupID string, limit int) ([]models.Metric, error)
	LatestMetric(ctx context.Context, startupID string) (*models.Metric, error)
	CountMetrics(ctx context.Context, startupID string) (int64, error)
	InsertMetric(ctx context.Context, item *models.Metric) error

	// Predictions, newest first.
	ListPredictions(ctx context.Context, startupID string, limit int) ([]models.Prediction, error)
	InsertPrediction(ctx context.Context, item *models.Prediction) error

	// Team members, oldest first.
	ListTeamMembers(ctx context.Context, startupID string) ([]models.TeamMember, error)
	InsertTeamMember(ctx context.Context, item *models.TeamMember) error

	// Alerts, newest first.
	ListAlerts(ctx context.Context, startupID string, limit int) ([]models.Alert, error)
	InsertAlert(ctx context.Context, item *models.Alert) error
	HasUnreadAlert(ctx context.Context, startupID, alertType string) (bool, error)

	// Playbooks (best-effort persistence).
	InsertPlaybook(ctx context.Context, item *models.Playbook) error
	LatestPlaybook(ctx context.Context, startupID string) (*models.Playbook, error)

	// Alert sweep support: every startup across all owners.
	ListAllStartups(ctx context.Context) ([]models.Startup, error)
}
