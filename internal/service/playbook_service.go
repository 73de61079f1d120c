package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"foundersight/internal/apperr"
	"foundersight/internal/cache"
	"foundersight/internal/config"
	"foundersight/internal/llm"
	"foundersight/internal/models"
	"foundersight/internal/repository"
)

const playbookSystemPrompt = "You are an expert startup advisor. Create detailed, actionable growth playbooks specific to each startup's situation."

const playbookVersion = 1

type PlaybookService struct {
	Repo   repository.Repository
	LLM    llm.Client
	Budget config.CompletionBudget
	// Cache is optional; nil disables latest-playbook caching.
	Cache    cache.Store
	CacheTTL time.Duration
	Logger   *zap.Logger
}

type PlaybookRequest struct {
	CurrentStage   string
	Sector         string
	CurrentMetrics *CurrentMetrics
	PredictionData *PredictionData
}

type PlaybookMetadata struct {
	StartupID   string    `json:"startup_id"`
	Stage       string    `json:"stage"`
	Sector      string    `json:"sector"`
	GeneratedAt time.Time `json:"generated_at"`
	Version     int       `json:"version"`
}

type PlaybookResult struct {
	Playbook string           `json:"playbook"`
	Metadata PlaybookMetadata `json:"metadata"`
}

// Generate builds the long-form prompt and returns the raw markdown
// reply. Any non-empty textual response is accepted. The playbooks row
// and cache write are best-effort and never fail the request.
func (s *PlaybookService) Generate(ctx context.Context, startupID string, req PlaybookRequest) (*PlaybookResult, error) {
	prompt := buildPlaybookPrompt(req)

	content, err := s.LLM.Complete(ctx, llm.CompletionRequest{
		System:      playbookSystemPrompt,
		User:        prompt,
		Temperature: s.Budget.Temperature,
		MaxTokens:   s.Budget.MaxTokens,
	})
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			return nil, apperr.Upstream("AI API key not configured", err)
		}
		return nil, apperr.Upstream("playbook service unavailable", err)
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperr.UpstreamFormat("empty playbook response", nil)
	}

	result := &PlaybookResult{
		Playbook: content,
		Metadata: PlaybookMetadata{
			StartupID:   startupID,
			Stage:       req.CurrentStage,
			Sector:      req.Sector,
			GeneratedAt: time.Now().UTC(),
			Version:     playbookVersion,
		},
	}

	item := &models.Playbook{
		StartupID: startupID,
		Stage:     req.CurrentStage,
		Sector:    req.Sector,
		Content:   content,
		Version:   playbookVersion,
	}
	if err := s.Repo.InsertPlaybook(ctx, item); err != nil && s.Logger != nil {
		s.Logger.Warn("playbook persist failed", zap.String("startup_id", startupID), zap.Error(err))
	}
	s.cacheLatest(ctx, startupID, result)

	return result, nil
}

// Latest serves the most recent playbook from cache when possible,
// falling back to the store.
func (s *PlaybookService) Latest(ctx context.Context, startupID string) (*PlaybookResult, error) {
	if s.Cache != nil {
		if raw, found, err := s.Cache.Get(ctx, playbookCacheKey(startupID)); err == nil && found {
			var cached PlaybookResult
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	item, err := s.Repo.LatestPlaybook(ctx, startupID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if item == nil {
		return nil, apperr.NotFound("no playbook generated yet")
	}
	return &PlaybookResult{
		Playbook: item.Content,
		Metadata: PlaybookMetadata{
			StartupID:   item.StartupID,
			Stage:       item.Stage,
			Sector:      item.Sector,
			GeneratedAt: item.CreatedAt,
			Version:     item.Version,
		},
	}, nil
}

func (s *PlaybookService) cacheLatest(ctx context.Context, startupID string, result *PlaybookResult) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, playbookCacheKey(startupID), raw, s.CacheTTL); err != nil && s.Logger != nil {
		s.Logger.Debug("playbook cache write failed", zap.Error(err))
	}
}

func playbookCacheKey(startupID string) string {
	return "playbook:latest:" + startupID
}

func buildPlaybookPrompt(req PlaybookRequest) string {
	var b strings.Builder
	b.WriteString("You are a world-class startup advisor with experience helping companies scale from idea to IPO.\n")
	b.WriteString("Create a personalized AI Growth Playbook for this startup:\n\n")
	b.WriteString("STARTUP PROFILE:\n")
	fmt.Fprintf(&b, "- Stage: %s\n", req.CurrentStage)
	fmt.Fprintf(&b, "- Sector: %s\n", req.Sector)
	if m := req.CurrentMetrics; m != nil {
		fmt.Fprintf(&b, "- Current Revenue: $%s\n", fmtAmount(m.Revenue))
		fmt.Fprintf(&b, "- Current Burn Rate: $%s/month\n", fmtAmount(m.BurnRate))
		fmt.Fprintf(&b, "- Runway: %d months\n", m.Runway)
	}
	if p := req.PredictionData; p != nil {
		fmt.Fprintf(&b, "- Predicted Failure Risk: %.1f%%\n", p.FailureProbability*100)
		fmt.Fprintf(&b, "- Predicted Growth Rate: %.1f%%/month\n", p.GrowthRate*100)
	}
	b.WriteString(`
Create a comprehensive growth playbook with the following structure:

1. CURRENT SITUATION ANALYSIS
2. TOP 3 IMMEDIATE PRIORITIES (next 30 days)
3. GROWTH STRATEGIES BY STAGE
4. DEATH ZONE PREVENTION
5. FUNDING READINESS
6. KEY METRICS TO TRACK
7. ACTION PLAN WITH TIMELINES (Month-by-month, step-by-step, e.g. "Month 1-2: Double down on LinkedIn outbound...", "Month 3: Hire 1 growth marketer...")
8. RECOMMENDATION ENGINE: Suggest actions based on what similar startups did at this stage (use case studies, Crunchbase-style datasets, and synthetic bootstrapped data)
9. SCENARIO SIMULATION: For each key metric (burn, CAC, revenue), provide a "What if?" analysis (e.g., "What happens if you cut burn by 20%?", "What if you increase CAC by 10%?")
10. CONTINUOUS UPDATES: Explain how the playbook will refresh every week/month based on new input data and market signals (funding rounds, competitor benchmarks, etc.)

Focus on:
- Specific, actionable advice for their stage and sector
- Death zone risks and how to avoid them
- Realistic growth targets and milestones
- Resource optimization strategies
- Investor readiness and positioning
- Learning from similar startups
- Scenario-based recommendations

Provide the response in well-formatted markdown with clear sections and bullet points.
Be specific to their industry and stage - avoid generic advice.
`)
	return b.String()
}
