package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"foundersight/internal/apperr"
	"foundersight/internal/config"
	"foundersight/internal/models"
)

// memCache is an in-process cache.Store for tests.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (m *memCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.entries[key]
	return b, ok, nil
}

func (m *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *memCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func testPlaybookService(repo *stubRepo, client *fakeLLM) *PlaybookService {
	return &PlaybookService{
		Repo:   repo,
		LLM:    client,
		Budget: config.CompletionBudget{Temperature: 0.7, MaxTokens: 2000},
	}
}

func TestPlaybookGenerateReturnsContent(t *testing.T) {
	var saved *models.Playbook
	repo := &stubRepo{
		insertPlaybook: func(ctx context.Context, item *models.Playbook) error {
			saved = item
			return nil
		},
	}
	client := &fakeLLM{reply: "# Growth Playbook\n\n## Current Situation\n..."}
	svc := testPlaybookService(repo, client)

	result, err := svc.Generate(context.Background(), "s1", PlaybookRequest{
		CurrentStage:   "mvp",
		Sector:         "saas",
		CurrentMetrics: &CurrentMetrics{Revenue: 5000, BurnRate: 2000, Runway: 8},
		PredictionData: &PredictionData{FailureProbability: 0.3, GrowthRate: 0.04},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Playbook != client.reply {
		t.Fatalf("playbook content mismatch")
	}
	if result.Metadata.Stage != "mvp" || result.Metadata.Sector != "saas" || result.Metadata.Version != 1 {
		t.Fatalf("unexpected metadata: %+v", result.Metadata)
	}
	if saved == nil || saved.Content != client.reply {
		t.Fatal("playbook row was not persisted")
	}

	if !strings.Contains(client.last.User, "- Predicted Failure Risk: 30.0%") {
		t.Fatalf("prompt missing failure risk:\n%s", client.last.User)
	}
	if !strings.Contains(client.last.User, "4. DEATH ZONE PREVENTION") {
		t.Fatalf("prompt missing playbook outline:\n%s", client.last.User)
	}
}

func TestPlaybookGeneratePersistFailureIsNonFatal(t *testing.T) {
	repo := &stubRepo{
		insertPlaybook: func(ctx context.Context, item *models.Playbook) error {
			return errors.New("db down")
		},
	}
	client := &fakeLLM{reply: "some playbook"}
	svc := testPlaybookService(repo, client)

	if _, err := svc.Generate(context.Background(), "s1", PlaybookRequest{CurrentStage: "idea", Sector: "other"}); err != nil {
		t.Fatalf("persist failure should not fail generation: %v", err)
	}
}

func TestPlaybookGenerateEmptyReply(t *testing.T) {
	client := &fakeLLM{reply: "   \n"}
	svc := testPlaybookService(&stubRepo{}, client)

	_, err := svc.Generate(context.Background(), "s1", PlaybookRequest{})
	if apperr.KindOf(err) != apperr.KindUpstreamFormat {
		t.Fatalf("expected upstream format error, got %v", err)
	}
}

func TestPlaybookLatestFromStore(t *testing.T) {
	repo := &stubRepo{
		latestPlaybook: func(ctx context.Context, startupID string) (*models.Playbook, error) {
			return &models.Playbook{
				StartupID: startupID,
				Stage:     "growth",
				Sector:    "fintech",
				Content:   "stored playbook",
				Version:   1,
			}, nil
		},
	}
	svc := testPlaybookService(repo, &fakeLLM{})

	result, err := svc.Latest(context.Background(), "s1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if result.Playbook != "stored playbook" || result.Metadata.Stage != "growth" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestPlaybookLatestNotFound(t *testing.T) {
	svc := testPlaybookService(&stubRepo{}, &fakeLLM{})

	_, err := svc.Latest(context.Background(), "s1")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if apperr.Message(err) != "no playbook generated yet" {
		t.Fatalf("message = %q", apperr.Message(err))
	}
}

func TestPlaybookLatestServedFromCache(t *testing.T) {
	storeReads := 0
	repo := &stubRepo{
		latestPlaybook: func(ctx context.Context, startupID string) (*models.Playbook, error) {
			storeReads++
			return nil, nil
		},
	}
	client := &fakeLLM{reply: "cached playbook"}
	svc := testPlaybookService(repo, client)
	svc.Cache = newMemCache()
	svc.CacheTTL = time.Minute

	if _, err := svc.Generate(context.Background(), "s1", PlaybookRequest{CurrentStage: "mvp", Sector: "saas"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	result, err := svc.Latest(context.Background(), "s1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if result.Playbook != "cached playbook" {
		t.Fatalf("playbook = %q", result.Playbook)
	}
	if storeReads != 0 {
		t.Fatalf("cache hit should skip the store, got %d reads", storeReads)
	}
}
