package service

import (
	"context"
	"errors"
	"testing"

	"foundersight/internal/importer"
	"foundersight/internal/models"
)

func TestImportCountsPerRow(t *testing.T) {
	var inserted []*models.Metric
	repo := &stubRepo{
		insertMetric: func(ctx context.Context, item *models.Metric) error {
			inserted = append(inserted, item)
			return nil
		},
	}
	svc := &MetricsImportService{Repo: repo}

	rows := []importer.Row{
		{Revenue: "1000", Expenses: "800", BurnRate: "200", Runway: "10", PeriodStart: "2025-01-01", PeriodEnd: "2025-01-31"},
		{Revenue: "1100", Expenses: "850", BurnRate: "210", Runway: "", PeriodStart: "2025-02-01", PeriodEnd: "2025-02-28"},
		{Revenue: "1200", Expenses: "900", BurnRate: "220", Runway: "9", PeriodStart: "2025-03-01", PeriodEnd: "2025-03-31"},
	}
	sum := svc.Import(context.Background(), "s1", rows)
	if sum.Succeeded != 2 || sum.Failed != 1 {
		t.Fatalf("summary = %+v, want 2 succeeded 1 failed", sum)
	}
	if len(inserted) != 2 {
		t.Fatalf("inserted %d rows, want 2", len(inserted))
	}
	if inserted[0].StartupID != "s1" {
		t.Fatalf("startup_id = %q", inserted[0].StartupID)
	}
	if inserted[0].Runway != 10 {
		t.Fatalf("runway = %d, want 10", inserted[0].Runway)
	}
}

func TestImportInsertFailureDoesNotAbort(t *testing.T) {
	calls := 0
	repo := &stubRepo{
		insertMetric: func(ctx context.Context, item *models.Metric) error {
			calls++
			if calls == 1 {
				return errors.New("constraint violation")
			}
			return nil
		},
	}
	svc := &MetricsImportService{Repo: repo}

	rows := []importer.Row{
		{Revenue: "1", Expenses: "1", BurnRate: "1", Runway: "1", PeriodStart: "2025-01-01", PeriodEnd: "2025-01-31"},
		{Revenue: "2", Expenses: "2", BurnRate: "2", Runway: "2", PeriodStart: "2025-02-01", PeriodEnd: "2025-02-28"},
	}
	sum := svc.Import(context.Background(), "s1", rows)
	if sum.Succeeded != 1 || sum.Failed != 1 {
		t.Fatalf("summary = %+v, want 1 succeeded 1 failed", sum)
	}
	if calls != 2 {
		t.Fatalf("insert calls = %d, want 2", calls)
	}
}

func TestImportBadDateFailsRow(t *testing.T) {
	repo := &stubRepo{}
	svc := &MetricsImportService{Repo: repo}

	rows := []importer.Row{
		{Revenue: "1", Expenses: "1", BurnRate: "1", Runway: "1", PeriodStart: "January 2025", PeriodEnd: "2025-01-31"},
	}
	sum := svc.Import(context.Background(), "s1", rows)
	if sum.Succeeded != 0 || sum.Failed != 1 {
		t.Fatalf("summary = %+v, want 0 succeeded 1 failed", sum)
	}
}
