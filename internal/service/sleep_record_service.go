package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/internal/metrics"
	"github.com/blaisecz/sleep-bot/internal/repository"
	"github.com/blaisecz/sleep-bot/pkg/clock"
	"github.com/blaisecz/sleep-bot/pkg/pagination"
	"github.com/google/uuid"
)

type SleepRecordService interface {
	// Log stores the night for the request's date (today in the user's
	// timezone by default), replacing any earlier record for that date, and
	// grants the badges the new history earns.
	Log(ctx context.Context, userID uuid.UUID, req *domain.LogSleepRequest) (*domain.LogSleepResponse, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
	// Today reports whether the user already logged a night for their current date.
	Today(ctx context.Context, userID uuid.UUID) (*domain.TodayResponse, error)
}

type sleepRecordService struct {
	repo            repository.SleepRecordRepository
	achievementRepo repository.AchievementRepository
	userRepo        repository.UserRepository
	locks           *UserLocks
	now             func() time.Time
}

func NewSleepRecordService(
	repo repository.SleepRecordRepository,
	achievementRepo repository.AchievementRepository,
	userRepo repository.UserRepository,
	locks *UserLocks,
) SleepRecordService {
	return &sleepRecordService{
		repo:            repo,
		achievementRepo: achievementRepo,
		userRepo:        userRepo,
		locks:           locks,
		now:             time.Now,
	}
}

func (s *sleepRecordService) Log(ctx context.Context, userID uuid.UUID, req *domain.LogSleepRequest) (*domain.LogSleepResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	sleep, err := clock.Parse(req.SleepTime)
	if err != nil {
		return nil, &domain.TimeFieldError{Field: "sleep_time", Err: err}
	}
	wake, err := clock.Parse(req.WakeTime)
	if err != nil {
		return nil, &domain.TimeFieldError{Field: "wake_time", Err: err}
	}

	date := s.localDate(user)
	if req.Date != nil && *req.Date != "" {
		if _, err := time.Parse(domain.DateLayout, *req.Date); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		date = *req.Date
	}

	record := &domain.SleepRecord{
		UserID:    userID,
		Date:      date,
		SleepTime: sleep.String(),
		WakeTime:  wake.String(),
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	replaced, err := s.repo.Upsert(ctx, record)
	if err != nil {
		return nil, err
	}
	metrics.SleepRecordsLogged.WithLabelValues(strconv.FormatBool(replaced)).Inc()

	earned, err := grantNewAchievements(ctx, s.repo, s.achievementRepo, userID)
	if err != nil {
		return nil, err
	}

	return &domain.LogSleepResponse{
		Record:          record.ToResponse(),
		Replaced:        replaced,
		NewAchievements: earned,
	}, nil
}

func (s *sleepRecordService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	// Check if user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit

	// Trim to actual limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.SleepRecordListResponse{
		Data: make([]domain.SleepRecordResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range records {
		response.Data[i] = records[i].ToResponse()
	}

	if hasMore && len(records) > 0 {
		cursor := &pagination.Cursor{Date: records[len(records)-1].Date}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *sleepRecordService) Today(ctx context.Context, userID uuid.UUID) (*domain.TodayResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	date := s.localDate(user)
	record, err := s.repo.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	response := &domain.TodayResponse{Date: date, Logged: record != nil}
	if record != nil {
		r := record.ToResponse()
		response.Record = &r
	}
	return response, nil
}

// localDate is the current calendar date in the user's timezone.
func (s *sleepRecordService) localDate(user *domain.User) string {
	return s.now().In(user.Location()).Format(domain.DateLayout)
}
