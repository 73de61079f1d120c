package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"foundersight/internal/apperr"
	"foundersight/internal/config"
	"foundersight/internal/llm"
	"foundersight/internal/models"
	"foundersight/internal/repository"
)

const predictionSystemPrompt = "You are a startup financial analyst. Always respond with valid JSON only."

// historicalContextLimit caps how many past metrics are embedded in the
// analysis prompt.
const historicalContextLimit = 12

// historicalSnapshotLimit caps how many of those are persisted in the
// prediction's input_data snapshot.
const historicalSnapshotLimit = 3

type PredictionService struct {
	Repo   repository.Repository
	LLM    llm.Client
	Model  string
	Budget config.CompletionBudget
	Logger *zap.Logger
}

// predictionOutput is the strict six-field JSON contract expected from
// the upstream model. Pointer fields distinguish missing from zero.
type predictionOutput struct {
	ProfitLoss         *float64 `json:"profit_loss"`
	GrowthRate         *float64 `json:"growth_rate"`
	FailureProbability *float64 `json:"failure_probability"`
	Cashflow           *float64 `json:"cashflow"`
	RunwayMonths       *float64 `json:"runway_months"`
	Reasoning          string   `json:"reasoning"`
}

// Generate runs the prediction proxy flow: historical fetch, prompt,
// upstream call, strict parse, persist. Persistence only happens after
// a successful parse; any earlier failure leaves no prediction row.
func (s *PredictionService) Generate(ctx context.Context, startupID string, current CurrentMetrics, profile StartupData) (*models.Prediction, error) {
	count, err := s.Repo.CountMetrics(ctx, startupID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if count == 0 {
		return nil, apperr.Validation("add metrics first")
	}

	// Historical context is best-effort; a read failure degrades to
	// "no historical data" rather than failing the request.
	historical, err := s.Repo.ListMetrics(ctx, startupID, historicalContextLimit)
	if err != nil {
		historical = nil
		if s.Logger != nil {
			s.Logger.Warn("historical metrics unavailable", zap.String("startup_id", startupID), zap.Error(err))
		}
	}

	prompt := buildPredictionPrompt(current, profile, historical)

	content, err := s.LLM.Complete(ctx, llm.CompletionRequest{
		System:      predictionSystemPrompt,
		User:        prompt,
		Temperature: s.Budget.Temperature,
		MaxTokens:   s.Budget.MaxTokens,
	})
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			return nil, apperr.Upstream("AI API key not configured", err)
		}
		return nil, apperr.Upstream("prediction service unavailable", err)
	}

	// "null", bare values and arrays all unmarshal cleanly into the
	// pointer struct; only an object is an acceptable reply.
	if !strings.HasPrefix(strings.TrimSpace(content), "{") {
		return nil, apperr.UpstreamFormat("failed to parse AI prediction response", nil)
	}
	var out predictionOutput
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, apperr.UpstreamFormat("failed to parse AI prediction response", err)
	}

	snapshot := historical
	if len(snapshot) > historicalSnapshotLimit {
		snapshot = snapshot[:historicalSnapshotLimit]
	}
	inputData, err := json.Marshal(map[string]any{
		"current_metrics":    current,
		"startup_data":       profile,
		"historical_metrics": snapshot,
	})
	if err != nil {
		return nil, apperr.Store(err)
	}
	outputData, err := json.Marshal(map[string]any{
		"reasoning":    out.Reasoning,
		"model_used":   s.Model,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, apperr.Store(err)
	}

	item := &models.Prediction{
		StartupID:          startupID,
		InputData:          datatypes.JSON(inputData),
		OutputData:         datatypes.JSON(outputData),
		ProfitLoss:         decimal.NewFromFloat(floatOrZero(out.ProfitLoss)),
		GrowthRate:         floatOrZero(out.GrowthRate),
		FailureProbability: floatOrZero(out.FailureProbability),
		Cashflow:           decimal.NewFromFloat(floatOrZero(out.Cashflow)),
		RunwayMonths:       runwayOrDefault(out.RunwayMonths, current.Runway),
	}
	if err := s.Repo.InsertPrediction(ctx, item); err != nil {
		return nil, apperr.Store(err)
	}
	return item, nil
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Missing runway_months falls back to the input runway, not zero.
// Fractional months round to the nearest whole month.
func runwayOrDefault(v *float64, inputRunway int) int {
	if v == nil {
		return inputRunway
	}
	return int(math.Round(*v))
}

func buildPredictionPrompt(current CurrentMetrics, profile StartupData, historical []models.Metric) string {
	var b strings.Builder
	b.WriteString("You are an expert startup financial analyst. Analyze this startup data and provide predictions:\n\n")
	b.WriteString("CURRENT METRICS:\n")
	fmt.Fprintf(&b, "- Revenue: $%s\n", fmtAmount(current.Revenue))
	fmt.Fprintf(&b, "- Expenses: $%s\n", fmtAmount(current.Expenses))
	fmt.Fprintf(&b, "- Burn Rate: $%s/month\n", fmtAmount(current.BurnRate))
	fmt.Fprintf(&b, "- Runway: %d months\n\n", current.Runway)
	b.WriteString("STARTUP PROFILE:\n")
	fmt.Fprintf(&b, "- Sector: %s\n", profile.Sector)
	fmt.Fprintf(&b, "- Stage: %s\n", profile.Stage)
	fmt.Fprintf(&b, "- Team Experience: %d years\n\n", profile.TeamExperience)
	b.WriteString("HISTORICAL DATA:\n")
	if len(historical) == 0 {
		b.WriteString("No historical data available\n")
	} else {
		for _, m := range historical {
			fmt.Fprintf(&b, "%s: Revenue $%s, Expenses $%s, Burn $%s\n",
				m.PeriodStart.Format("2006-01-02"), m.Revenue.String(), m.Expenses.String(), m.BurnRate.String())
		}
	}
	b.WriteString(`
Please provide ONLY a JSON response with these exact fields:
{
  "profit_loss": <predicted profit/loss next 12 months>,
  "growth_rate": <predicted monthly growth rate as decimal (0.05 = 5%)>,
  "failure_probability": <probability of failure 0-1>,
  "cashflow": <predicted net cashflow next 12 months>,
  "runway_months": <predicted runway in months>,
  "reasoning": <brief explanation of your analysis>
}

Base your predictions on startup industry benchmarks, growth patterns, and the death zone risks common in startup lifecycle.
`)
	return b.String()
}
