package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/sleep-bot/internal/content"
	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/internal/llm"
)

type mockSummaryLLM struct {
	got *domain.InsightsContext
	err error
}

func (m *mockSummaryLLM) GenerateSummary(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMSummaryOutput, error) {
	m.got = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return &domain.LLMSummaryOutput{Summary: "Solid week."}, nil
}

func newInsightsFixture(client llm.SummaryLLM) (*MockSleepRecordRepository, *MockAchievementRepository, *MockUserRepository, InsightsService) {
	records := NewMockSleepRecordRepository()
	achievements := NewMockAchievementRepository()
	users := NewMockUserRepository()
	picker := content.NewPicker(content.NewMemoryStore(), nil)
	svc := NewInsightsService(
		NewReportService(records, users),
		NewAdviceService(records, users, &content.Library{}, picker),
		achievements,
		client,
	)
	return records, achievements, users, svc
}

func TestInsightsService_Generate(t *testing.T) {
	client := &mockSummaryLLM{}
	records, achievements, users, svc := newInsightsFixture(client)
	userID := users.AddUser("UTC")
	ctx := context.Background()

	records.AddRecords(userID, "2024-01-01", repeatNight(8, "23:00", "07:00")...)
	achievements.Grant(ctx, userID, domain.BadgeSleepyExpert)

	resp, err := svc.Generate(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Insights.Summary != "Solid week." {
		t.Errorf("unexpected summary %q", resp.Insights.Summary)
	}
	if client.got.Weekly.Nights != 7 || client.got.Monthly.Nights != 8 {
		t.Errorf("unexpected report sizes %d/%d", client.got.Weekly.Nights, client.got.Monthly.Nights)
	}
	if client.got.Advice == nil || client.got.Advice.Kind != domain.AdviceStable {
		t.Errorf("expected stable advice in context, got %+v", client.got.Advice)
	}
	if len(resp.Context.Achievements) != 1 || resp.Context.Achievements[0] != domain.BadgeSleepyExpert {
		t.Errorf("unexpected achievements %v", resp.Context.Achievements)
	}
}

func TestInsightsService_Unavailable(t *testing.T) {
	var client *llm.OpenAIClient
	records, _, users, svc := newInsightsFixture(client)
	userID := users.AddUser("UTC")
	records.AddRecords(userID, "2024-01-01", repeatNight(3, "23:00", "07:00")...)

	_, err := svc.Generate(context.Background(), userID)
	if !errors.Is(err, domain.ErrLLMUnavailable) {
		t.Errorf("expected ErrLLMUnavailable, got %v", err)
	}
}

func TestInsightsService_NoData(t *testing.T) {
	_, _, users, svc := newInsightsFixture(&mockSummaryLLM{})
	userID := users.AddUser("UTC")

	_, err := svc.Generate(context.Background(), userID)
	if !errors.Is(err, domain.ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}
