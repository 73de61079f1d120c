package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"foundersight/internal/apperr"
	"foundersight/internal/config"
	"foundersight/internal/llm"
	"foundersight/internal/models"
)

func testPredictionService(repo *stubRepo, client *fakeLLM) *PredictionService {
	return &PredictionService{
		Repo:   repo,
		LLM:    client,
		Model:  "gpt-4o-mini",
		Budget: config.CompletionBudget{Temperature: 0.3, MaxTokens: 500},
	}
}

func TestPredictionGenerateRequiresMetrics(t *testing.T) {
	repo := &stubRepo{
		countMetrics: func(ctx context.Context, startupID string) (int64, error) {
			return 0, nil
		},
	}
	client := &fakeLLM{reply: "{}"}
	svc := testPredictionService(repo, client)

	_, err := svc.Generate(context.Background(), "s1", CurrentMetrics{}, StartupData{})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("upstream should not be called without metrics, got %d calls", client.calls)
	}
}

func TestPredictionGeneratePersistsParsedOutput(t *testing.T) {
	var inserted *models.Prediction
	repo := &stubRepo{
		countMetrics: func(ctx context.Context, startupID string) (int64, error) {
			return 3, nil
		},
		listMetrics: func(ctx context.Context, startupID string, limit int) ([]models.Metric, error) {
			if limit != 12 {
				t.Fatalf("historical limit = %d, want 12", limit)
			}
			return []models.Metric{
				{Revenue: decimal.NewFromInt(1000), Expenses: decimal.NewFromInt(800), BurnRate: decimal.NewFromInt(200)},
			}, nil
		},
		insertPrediction: func(ctx context.Context, item *models.Prediction) error {
			inserted = item
			return nil
		},
	}
	client := &fakeLLM{reply: `{"profit_loss":12000,"growth_rate":0.05,"failure_probability":0.25,"cashflow":-3000,"runway_months":9,"reasoning":"steady growth"}`}
	svc := testPredictionService(repo, client)

	item, err := svc.Generate(context.Background(), "s1",
		CurrentMetrics{Revenue: 1000, Expenses: 800, BurnRate: 200, Runway: 5},
		StartupData{Sector: "saas", Stage: "mvp", TeamExperience: 4})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if inserted == nil {
		t.Fatal("prediction was not persisted")
	}
	if item.RunwayMonths != 9 {
		t.Fatalf("runway_months = %d, want 9", item.RunwayMonths)
	}
	if item.GrowthRate != 0.05 || item.FailureProbability != 0.25 {
		t.Fatalf("unexpected rates: growth=%v failure=%v", item.GrowthRate, item.FailureProbability)
	}
	if !item.ProfitLoss.Equal(decimal.NewFromInt(12000)) {
		t.Fatalf("profit_loss = %s, want 12000", item.ProfitLoss)
	}

	if client.last.System != "You are a startup financial analyst. Always respond with valid JSON only." {
		t.Fatalf("unexpected system prompt: %q", client.last.System)
	}
	if !strings.Contains(client.last.User, "- Runway: 5 months") {
		t.Fatalf("prompt missing current runway:\n%s", client.last.User)
	}
	if !strings.Contains(client.last.User, "- Team Experience: 4 years") {
		t.Fatalf("prompt missing team experience:\n%s", client.last.User)
	}

	var input map[string]json.RawMessage
	if err := json.Unmarshal(item.InputData, &input); err != nil {
		t.Fatalf("input_data not json: %v", err)
	}
	for _, key := range []string{"current_metrics", "startup_data", "historical_metrics"} {
		if _, ok := input[key]; !ok {
			t.Fatalf("input_data missing %q", key)
		}
	}
	var output map[string]any
	if err := json.Unmarshal(item.OutputData, &output); err != nil {
		t.Fatalf("output_data not json: %v", err)
	}
	if output["reasoning"] != "steady growth" {
		t.Fatalf("reasoning = %v", output["reasoning"])
	}
	if output["model_used"] != "gpt-4o-mini" {
		t.Fatalf("model_used = %v", output["model_used"])
	}
}

func TestPredictionGenerateMissingRunwayFallsBackToInput(t *testing.T) {
	repo := &stubRepo{
		countMetrics: func(ctx context.Context, startupID string) (int64, error) {
			return 1, nil
		},
	}
	client := &fakeLLM{reply: `{"profit_loss":0,"growth_rate":0,"failure_probability":0.9,"cashflow":0,"reasoning":"no runway field"}`}
	svc := testPredictionService(repo, client)

	item, err := svc.Generate(context.Background(), "s1", CurrentMetrics{Runway: 7}, StartupData{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if item.RunwayMonths != 7 {
		t.Fatalf("runway_months = %d, want input runway 7", item.RunwayMonths)
	}
}

func TestPredictionGenerateParseFailure(t *testing.T) {
	inserts := 0
	repo := &stubRepo{
		countMetrics: func(ctx context.Context, startupID string) (int64, error) {
			return 1, nil
		},
		insertPrediction: func(ctx context.Context, item *models.Prediction) error {
			inserts++
			return nil
		},
	}
	client := &fakeLLM{reply: "Sure! Here is my analysis: the startup looks healthy."}
	svc := testPredictionService(repo, client)

	_, err := svc.Generate(context.Background(), "s1", CurrentMetrics{}, StartupData{})
	if apperr.KindOf(err) != apperr.KindUpstreamFormat {
		t.Fatalf("expected upstream format error, got %v", err)
	}
	if inserts != 0 {
		t.Fatalf("no prediction should persist on parse failure, got %d inserts", inserts)
	}
}

func TestPredictionGenerateNullReply(t *testing.T) {
	inserts := 0
	repo := &stubRepo{
		countMetrics: func(ctx context.Context, startupID string) (int64, error) {
			return 1, nil
		},
		insertPrediction: func(ctx context.Context, item *models.Prediction) error {
			inserts++
			return nil
		},
	}
	client := &fakeLLM{reply: "null"}
	svc := testPredictionService(repo, client)

	_, err := svc.Generate(context.Background(), "s1", CurrentMetrics{}, StartupData{})
	if apperr.KindOf(err) != apperr.KindUpstreamFormat {
		t.Fatalf("expected upstream format error for null reply, got %v", err)
	}
	if inserts != 0 {
		t.Fatalf("no prediction should persist for a null reply, got %d inserts", inserts)
	}
}

func TestPredictionGenerateFractionalRunwayRounds(t *testing.T) {
	repo := &stubRepo{
		countMetrics: func(ctx context.Context, startupID string) (int64, error) {
			return 1, nil
		},
	}
	client := &fakeLLM{reply: `{"profit_loss":0,"growth_rate":0,"failure_probability":0.5,"cashflow":0,"runway_months":9.9,"reasoning":"tight"}`}
	svc := testPredictionService(repo, client)

	item, err := svc.Generate(context.Background(), "s1", CurrentMetrics{Runway: 4}, StartupData{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if item.RunwayMonths != 10 {
		t.Fatalf("runway_months = %d, want 10 (9.9 rounded)", item.RunwayMonths)
	}
}

func TestPredictionGenerateMissingAPIKey(t *testing.T) {
	repo := &stubRepo{
		countMetrics: func(ctx context.Context, startupID string) (int64, error) {
			return 1, nil
		},
	}
	client := &fakeLLM{err: llm.ErrMissingAPIKey}
	svc := testPredictionService(repo, client)

	_, err := svc.Generate(context.Background(), "s1", CurrentMetrics{}, StartupData{})
	if apperr.KindOf(err) != apperr.KindUpstream {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if apperr.Message(err) != "AI API key not configured" {
		t.Fatalf("message = %q", apperr.Message(err))
	}
}

func TestPredictionGenerateUpstreamFailure(t *testing.T) {
	repo := &stubRepo{
		countMetrics: func(ctx context.Context, startupID string) (int64, error) {
			return 1, nil
		},
	}
	client := &fakeLLM{err: errors.New("503 from upstream")}
	svc := testPredictionService(repo, client)

	_, err := svc.Generate(context.Background(), "s1", CurrentMetrics{}, StartupData{})
	if apperr.KindOf(err) != apperr.KindUpstream {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestPredictionPromptWithoutHistory(t *testing.T) {
	got := buildPredictionPrompt(CurrentMetrics{Revenue: 100}, StartupData{Sector: "fintech", Stage: "idea"}, nil)
	if !strings.Contains(got, "No historical data available") {
		t.Fatalf("prompt missing empty-history marker:\n%s", got)
	}
	if !strings.Contains(got, `"runway_months"`) {
		t.Fatalf("prompt missing output contract:\n%s", got)
	}
}
