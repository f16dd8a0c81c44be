package service

import (
	"context"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/internal/metrics"
	"github.com/blaisecz/sleep-bot/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AchievementService grants and lists badges.
type AchievementService interface {
	// Evaluate grants every badge the user's records now earn and returns the new ones.
	Evaluate(ctx context.Context, userID uuid.UUID) ([]string, error)
	// List returns the user's badges, oldest first.
	List(ctx context.Context, userID uuid.UUID) (*domain.AchievementListResponse, error)
}

type achievementService struct {
	recordRepo      repository.SleepRecordRepository
	achievementRepo repository.AchievementRepository
	userRepo        repository.UserRepository
	locks           *UserLocks
}

// NewAchievementService creates a new AchievementService.
func NewAchievementService(
	recordRepo repository.SleepRecordRepository,
	achievementRepo repository.AchievementRepository,
	userRepo repository.UserRepository,
	locks *UserLocks,
) AchievementService {
	return &achievementService{
		recordRepo:      recordRepo,
		achievementRepo: achievementRepo,
		userRepo:        userRepo,
		locks:           locks,
	}
}

func (s *achievementService) Evaluate(ctx context.Context, userID uuid.UUID) ([]string, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	return grantNewAchievements(ctx, s.recordRepo, s.achievementRepo, userID)
}

func (s *achievementService) List(ctx context.Context, userID uuid.UUID) (*domain.AchievementListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	achievements, err := s.achievementRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := &domain.AchievementListResponse{
		Data: make([]domain.AchievementResponse, len(achievements)),
	}
	for i := range achievements {
		response.Data[i] = achievements[i].ToResponse()
	}
	return response, nil
}

// grantNewAchievements reads the user's records and badges, runs the engine
// and persists what it returns. The caller holds the user's lock.
func grantNewAchievements(
	ctx context.Context,
	recordRepo repository.SleepRecordRepository,
	achievementRepo repository.AchievementRepository,
	userID uuid.UUID,
) ([]string, error) {
	tracer := otel.Tracer("sleep-bot/achievements")
	ctx, span := tracer.Start(ctx, "Achievements.Evaluate",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	records, err := recordRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	granted, err := achievementRepo.ListNames(ctx, userID)
	if err != nil {
		return nil, err
	}

	earned, err := EvaluateAchievements(records, granted)
	if err != nil {
		return nil, err
	}

	for _, name := range earned {
		inserted, err := achievementRepo.Grant(ctx, userID, name)
		if err != nil {
			return nil, err
		}
		if inserted {
			metrics.AchievementsGranted.WithLabelValues(name).Inc()
		}
	}

	span.SetAttributes(
		attribute.Int("records.count", len(records)),
		attribute.StringSlice("achievements.new", earned),
	)
	return earned, nil
}
