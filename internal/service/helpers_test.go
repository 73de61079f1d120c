package service

import (
	"context"

	"foundersight/internal/llm"
	"foundersight/internal/models"
)

// stubRepo implements repository.Repository with overridable behavior
// per method. Unset methods return zero values.
type stubRepo struct {
	listStartups     func(ctx context.Context, ownerID string) ([]models.Startup, error)
	getStartup       func(ctx context.Context, ownerID, startupID string) (*models.Startup, error)
	createStartup    func(ctx context.Context, item *models.Startup) error
	listMetrics      func(ctx context.Context, startupID string, limit int) ([]models.Metric, error)
	latestMetric     func(ctx context.Context, startupID string) (*models.Metric, error)
	countMetrics     func(ctx context.Context, startupID string) (int64, error)
	insertMetric     func(ctx context.Context, item *models.Metric) error
	listPredictions  func(ctx context.Context, startupID string, limit int) ([]models.Prediction, error)
	insertPrediction func(ctx context.Context, item *models.Prediction) error
	listTeamMembers  func(ctx context.Context, startupID string) ([]models.TeamMember, error)
	insertTeamMember func(ctx context.Context, item *models.TeamMember) error
	listAlerts       func(ctx context.Context, startupID string, limit int) ([]models.Alert, error)
	insertAlert      func(ctx context.Context, item *models.Alert) error
	hasUnreadAlert   func(ctx context.Context, startupID, alertType string) (bool, error)
	insertPlaybook   func(ctx context.Context, item *models.Playbook) error
	latestPlaybook   func(ctx context.Context, startupID string) (*models.Playbook, error)
	listAllStartups  func(ctx context.Context) ([]models.Startup, error)
}

func (s *stubRepo) ListStartups(ctx context.Context, ownerID string) ([]models.Startup, error) {
	if s.listStartups != nil {
		return s.listStartups(ctx, ownerID)
	}
	return nil, nil
}

func (s *stubRepo) GetStartupByID(ctx context.Context, ownerID, startupID string) (*models.Startup, error) {
	if s.getStartup != nil {
		return s.getStartup(ctx, ownerID, startupID)
	}
	return nil, nil
}

func (s *stubRepo) CreateStartup(ctx context.Context, item *models.Startup) error {
	if s.createStartup != nil {
		return s.createStartup(ctx, item)
	}
	return nil
}

func (s *stubRepo) ListMetrics(ctx context.Context, startupID string, limit int) ([]models.Metric, error) {
	if s.listMetrics != nil {
		return s.listMetrics(ctx, startupID, limit)
	}
	return nil, nil
}

func (s *stubRepo) LatestMetric(ctx context.Context, startupID string) (*models.Metric, error) {
	if s.latestMetric != nil {
		return s.latestMetric(ctx, startupID)
	}
	return nil, nil
}

func (s *stubRepo) CountMetrics(ctx context.Context, startupID string) (int64, error) {
	if s.countMetrics != nil {
		return s.countMetrics(ctx, startupID)
	}
	return 0, nil
}

func (s *stubRepo) InsertMetric(ctx context.Context, item *models.Metric) error {
	if s.insertMetric != nil {
		return s.insertMetric(ctx, item)
	}
	return nil
}

func (s *stubRepo) ListPredictions(ctx context.Context, startupID string, limit int) ([]models.Prediction, error) {
	if s.listPredictions != nil {
		return s.listPredictions(ctx, startupID, limit)
	}
	return nil, nil
}

func (s *stubRepo) InsertPrediction(ctx context.Context, item *models.Prediction) error {
	if s.insertPrediction != nil {
		return s.insertPrediction(ctx, item)
	}
	return nil
}

func (s *stubRepo) ListTeamMembers(ctx context.Context, startupID string) ([]models.TeamMember, error) {
	if s.listTeamMembers != nil {
		return s.listTeamMembers(ctx, startupID)
	}
	return nil, nil
}

func (s *stubRepo) InsertTeamMember(ctx context.Context, item *models.TeamMember) error {
	if s.insertTeamMember != nil {
		return s.insertTeamMember(ctx, item)
	}
	return nil
}

func (s *stubRepo) ListAlerts(ctx context.Context, startupID string, limit int) ([]models.Alert, error) {
	if s.listAlerts != nil {
		return s.listAlerts(ctx, startupID, limit)
	}
	return nil, nil
}

func (s *stubRepo) InsertAlert(ctx context.Context, item *models.Alert) error {
	if s.insertAlert != nil {
		return s.insertAlert(ctx, item)
	}
	return nil
}

func (s *stubRepo) HasUnreadAlert(ctx context.Context, startupID, alertType string) (bool, error) {
	if s.hasUnreadAlert != nil {
		return s.hasUnreadAlert(ctx, startupID, alertType)
	}
	return false, nil
}

func (s *stubRepo) InsertPlaybook(ctx context.Context, item *models.Playbook) error {
	if s.insertPlaybook != nil {
		return s.insertPlaybook(ctx, item)
	}
	return nil
}

func (s *stubRepo) LatestPlaybook(ctx context.Context, startupID string) (*models.Playbook, error) {
	if s.latestPlaybook != nil {
		return s.latestPlaybook(ctx, startupID)
	}
	return nil, nil
}

func (s *stubRepo) ListAllStartups(ctx context.Context) ([]models.Startup, error) {
	if s.listAllStartups != nil {
		return s.listAllStartups(ctx)
	}
	return nil, nil
}

// fakeLLM records the last request and returns a canned reply.
type fakeLLM struct {
	reply string
	err   error
	calls int
	last  llm.CompletionRequest
}

func (f *fakeLLM) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
