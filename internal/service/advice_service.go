package service

import (
	"context"

	"github.com/blaisecz/sleep-bot/internal/content"
	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/internal/metrics"
	"github.com/blaisecz/sleep-bot/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AdviceService serves personal advice, general tips and exercises.
type AdviceService interface {
	// PersonalAdvice returns nil when the user has fewer than seven records.
	PersonalAdvice(ctx context.Context, userID uuid.UUID) (*domain.Advice, error)
	// Tip returns personal advice when available, otherwise a general tip
	// different from the one last sent to the user.
	Tip(ctx context.Context, userID uuid.UUID) (*domain.TipResponse, error)
	// Exercise returns a relaxation exercise different from the last one sent.
	Exercise(ctx context.Context, userID uuid.UUID) (*domain.TipResponse, error)
}

type adviceService struct {
	recordRepo repository.SleepRecordRepository
	userRepo   repository.UserRepository
	library    *content.Library
	picker     *content.Picker
}

func NewAdviceService(
	recordRepo repository.SleepRecordRepository,
	userRepo repository.UserRepository,
	library *content.Library,
	picker *content.Picker,
) AdviceService {
	return &adviceService{
		recordRepo: recordRepo,
		userRepo:   userRepo,
		library:    library,
		picker:     picker,
	}
}

func (s *adviceService) PersonalAdvice(ctx context.Context, userID uuid.UUID) (*domain.Advice, error) {
	tracer := otel.Tracer("sleep-bot/advice")
	ctx, span := tracer.Start(ctx, "Advice.Personal",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.recordRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	advice, err := AnalyzeAdvice(records)
	if err != nil {
		return nil, err
	}
	if advice != nil {
		span.SetAttributes(attribute.String("advice.kind", string(advice.Kind)))
		metrics.AdviceServed.WithLabelValues(string(advice.Kind)).Inc()
	}
	return advice, nil
}

func (s *adviceService) Tip(ctx context.Context, userID uuid.UUID) (*domain.TipResponse, error) {
	advice, err := s.PersonalAdvice(ctx, userID)
	if err != nil {
		return nil, err
	}
	if advice != nil {
		return &domain.TipResponse{Source: domain.TipSourcePersonal, Text: advice.Message}, nil
	}
	return s.pick(ctx, "tip:"+userID.String(), s.library.Tips)
}

func (s *adviceService) Exercise(ctx context.Context, userID uuid.UUID) (*domain.TipResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.pick(ctx, "exercise:"+userID.String(), s.library.Exercises)
}

func (s *adviceService) pick(ctx context.Context, key string, items []string) (*domain.TipResponse, error) {
	text, ok, err := s.picker.Pick(ctx, key, items)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNoContent
	}
	return &domain.TipResponse{Source: domain.TipSourceGeneral, Text: text}, nil
}
