package service

import (
	"context"
	"errors"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/internal/llm"
	"github.com/blaisecz/sleep-bot/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// InsightsService narrates a user's reports, advice and achievements.
type InsightsService interface {
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	reports         ReportService
	advice          AdviceService
	achievementRepo repository.AchievementRepository
	llmClient       llm.SummaryLLM
}

func NewInsightsService(
	reports ReportService,
	advice AdviceService,
	achievementRepo repository.AchievementRepository,
	llmClient llm.SummaryLLM,
) InsightsService {
	return &insightsService{
		reports:         reports,
		advice:          advice,
		achievementRepo: achievementRepo,
		llmClient:       llmClient,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	weekly, err := s.reports.Build(ctx, userID, domain.ReportWeekly)
	if err != nil {
		return nil, err
	}
	monthly, err := s.reports.Build(ctx, userID, domain.ReportMonthly)
	if err != nil {
		return nil, err
	}

	advice, err := s.advice.PersonalAdvice(ctx, userID)
	if err != nil {
		return nil, err
	}

	granted, err := s.achievementRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(granted))
	for i, a := range granted {
		names[i] = a.Name
	}

	insightsCtx := domain.InsightsContext{
		Weekly:       weekly,
		Monthly:      monthly,
		Advice:       advice,
		Achievements: names,
	}

	output, err := s.llmClient.GenerateSummary(ctx, &insightsCtx)
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			return nil, domain.ErrLLMUnavailable
		}
		return nil, err
	}

	resp := &domain.InsightsResponse{
		Context:  insightsCtx,
		Insights: *output,
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		resp.TraceID = sc.TraceID().String()
	}
	return resp, nil
}
