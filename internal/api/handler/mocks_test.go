package handler

import (
	"context"
	"net/http"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/internal/langfuse"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// withUserID sets the chi {userId} URL param on the request.
func withUserID(req *http.Request, userID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", userID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockSleepRecordService is a mock implementation of SleepRecordService
type MockSleepRecordService struct {
	logFunc   func(ctx context.Context, userID uuid.UUID, req *domain.LogSleepRequest) (*domain.LogSleepResponse, error)
	listFunc  func(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
	todayFunc func(ctx context.Context, userID uuid.UUID) (*domain.TodayResponse, error)
}

func (m *MockSleepRecordService) Log(ctx context.Context, userID uuid.UUID, req *domain.LogSleepRequest) (*domain.LogSleepResponse, error) {
	if m.logFunc != nil {
		return m.logFunc(ctx, userID, req)
	}
	record := domain.SleepRecord{UserID: userID, Date: "2024-01-16", SleepTime: req.SleepTime, WakeTime: req.WakeTime}
	return &domain.LogSleepResponse{Record: record.ToResponse(), NewAchievements: []string{}}, nil
}

func (m *MockSleepRecordService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SleepRecordListResponse{Data: []domain.SleepRecordResponse{}}, nil
}

func (m *MockSleepRecordService) Today(ctx context.Context, userID uuid.UUID) (*domain.TodayResponse, error) {
	if m.todayFunc != nil {
		return m.todayFunc(ctx, userID)
	}
	return &domain.TodayResponse{Date: "2024-01-16"}, nil
}

// MockAchievementService is a mock implementation of AchievementService
type MockAchievementService struct {
	evaluateFunc func(ctx context.Context, userID uuid.UUID) ([]string, error)
	listFunc     func(ctx context.Context, userID uuid.UUID) (*domain.AchievementListResponse, error)
}

func (m *MockAchievementService) Evaluate(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if m.evaluateFunc != nil {
		return m.evaluateFunc(ctx, userID)
	}
	return []string{}, nil
}

func (m *MockAchievementService) List(ctx context.Context, userID uuid.UUID) (*domain.AchievementListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return &domain.AchievementListResponse{Data: []domain.AchievementResponse{}}, nil
}

// MockAdviceService is a mock implementation of AdviceService
type MockAdviceService struct {
	adviceFunc   func(ctx context.Context, userID uuid.UUID) (*domain.Advice, error)
	tipFunc      func(ctx context.Context, userID uuid.UUID) (*domain.TipResponse, error)
	exerciseFunc func(ctx context.Context, userID uuid.UUID) (*domain.TipResponse, error)
}

func (m *MockAdviceService) PersonalAdvice(ctx context.Context, userID uuid.UUID) (*domain.Advice, error) {
	if m.adviceFunc != nil {
		return m.adviceFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockAdviceService) Tip(ctx context.Context, userID uuid.UUID) (*domain.TipResponse, error) {
	if m.tipFunc != nil {
		return m.tipFunc(ctx, userID)
	}
	return &domain.TipResponse{Source: domain.TipSourceGeneral, Text: "Keep the room cool"}, nil
}

func (m *MockAdviceService) Exercise(ctx context.Context, userID uuid.UUID) (*domain.TipResponse, error) {
	if m.exerciseFunc != nil {
		return m.exerciseFunc(ctx, userID)
	}
	return &domain.TipResponse{Source: domain.TipSourceGeneral, Text: "Box breathing"}, nil
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	buildFunc func(ctx context.Context, userID uuid.UUID, period domain.ReportPeriod) (*domain.Report, error)
}

func (m *MockReportService) Build(ctx context.Context, userID uuid.UUID, period domain.ReportPeriod) (*domain.Report, error) {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, userID, period)
	}
	if _, err := period.Nights(); err != nil {
		return nil, err
	}
	return &domain.Report{Period: period, Points: []domain.ReportPoint{}}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.InsightsResponse{Insights: domain.LLMSummaryOutput{Summary: "Solid week."}}, nil
}

// MockScorer records feedback scores
type MockScorer struct {
	scores []langfuse.ScoreInput
	err    error
}

func (m *MockScorer) IsEnabled() bool { return true }

func (m *MockScorer) Score(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return m.err
}
