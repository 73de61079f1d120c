package gormrepository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foundersight/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > 1000 {
		return 1000
	}
	return limit
}

// --- startups ---------------------------------------------------------------

func (s *Store) ListStartups(ctx context.Context, ownerID string) ([]models.Startup, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Startup
	if err := s.db.WithContext(ctx).
		Model(&models.Startup{}).
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetStartupByID(ctx context.Context, ownerID, startupID string) (*models.Startup, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Startup
	err := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", startupID, ownerID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateStartup(ctx context.Context, item *models.Startup) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListAllStartups(ctx context.Context) ([]models.Startup, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Startup
	if err := s.db.WithContext(ctx).
		Model(&models.Startup{}).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- metrics ----------------------------------------------------------------

func (s *Store) ListMetrics(ctx context.Context, startupID string, limit int) ([]models.Metric, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Model(&models.Metric{}).
		Where("startup_id = ?", startupID).
		Order("period_start desc")
	if limit > 0 {
		query = query.Limit(normalizeLimit(limit, 200))
	}
	var items []models.Metric
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) LatestMetric(ctx context.Context, startupID string) (*models.Metric, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Metric
	err := s.db.WithContext(ctx).
		Where("startup_id = ?", startupID).
		Order("period_start desc").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CountMetrics(ctx context.Context, startupID string) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Metric{}).
		Where("startup_id = ?", startupID).
		Count(&count).Error
	return count, err
}

func (s *Store) InsertMetric(ctx context.Context, item *models.Metric) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

// --- predictions ------------------------------------------------------------

func (s *Store) ListPredictions(ctx context.Context, startupID string, limit int) ([]models.Prediction, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	limit = normalizeLimit(limit, 10)
	var items []models.Prediction
	if err := s.db.WithContext(ctx).
		Model(&models.Prediction{}).
		Where("startup_id = ?", startupID).
		Order("created_at desc").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertPrediction(ctx context.Context, item *models.Prediction) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

// --- team members -----------------------------------------------------------

func (s *Store) ListTeamMembers(ctx context.Context, startupID string) ([]models.TeamMember, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.TeamMember
	if err := s.db.WithContext(ctx).
		Model(&models.TeamMember{}).
		Where("startup_id = ?", startupID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertTeamMember(ctx context.Context, item *models.TeamMember) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

// --- alerts -----------------------------------------------------------------

func (s *Store) ListAlerts(ctx context.Context, startupID string, limit int) ([]models.Alert, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	limit = normalizeLimit(limit, 50)
	var items []models.Alert
	if err := s.db.WithContext(ctx).
		Model(&models.Alert{}).
		Where("startup_id = ?", startupID).
		Order("created_at desc").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertAlert(ctx context.Context, item *models.Alert) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) HasUnreadAlert(ctx context.Context, startupID, alertType string) (bool, error) {
	if s == nil || s.db == nil {
		return false, nil
	}
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Alert{}).
		Where("startup_id = ? AND type = ? AND is_read = ?", startupID, alertType, false).
		Count(&count).Error
	return count > 0, err
}

// --- playbooks --------------------------------------------------------------

func (s *Store) InsertPlaybook(ctx context.Context, item *models.Playbook) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) LatestPlaybook(ctx context.Context, startupID string) (*models.Playbook, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Playbook
	err := s.db.WithContext(ctx).
		Where("startup_id = ?", startupID).
		Order("created_at desc").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
