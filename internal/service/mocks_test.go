package service

import (
	"context"
	"sort"
	"time"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/pkg/pagination"
	"github.com/google/uuid"
)

// MockSleepRecordRepository is a mock implementation of SleepRecordRepository
type MockSleepRecordRepository struct {
	records map[uuid.UUID]map[string]*domain.SleepRecord
	err     error
}

func NewMockSleepRecordRepository() *MockSleepRecordRepository {
	return &MockSleepRecordRepository{
		records: make(map[uuid.UUID]map[string]*domain.SleepRecord),
	}
}

func (m *MockSleepRecordRepository) Upsert(ctx context.Context, record *domain.SleepRecord) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	byDate, ok := m.records[record.UserID]
	if !ok {
		byDate = make(map[string]*domain.SleepRecord)
		m.records[record.UserID] = byDate
	}

	now := time.Now()
	existing, replaced := byDate[record.Date]
	if replaced {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	} else {
		record.ID = uuid.New()
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	stored := *record
	byDate[record.Date] = &stored
	return replaced, nil
}

func (m *MockSleepRecordRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]domain.SleepRecord, 0, len(m.records[userID]))
	for _, r := range m.records[userID] {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *MockSleepRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error) {
	all, err := m.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var before string
	if filter.Cursor != "" {
		c, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, err
		}
		before = c.Date
	}

	var result []domain.SleepRecord
	for i := len(all) - 1; i >= 0; i-- {
		r := all[i]
		if filter.From != "" && r.Date < filter.From {
			continue
		}
		if filter.To != "" && r.Date > filter.To {
			continue
		}
		if before != "" && r.Date >= before {
			continue
		}
		result = append(result, r)
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	if len(result) > limit+1 {
		result = result[:limit+1]
	}
	return result, nil
}

func (m *MockSleepRecordRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.records[userID][date]
	if !ok {
		return nil, nil
	}
	out := *r
	return &out, nil
}

// AddRecords stores records for consecutive dates starting at start.
func (m *MockSleepRecordRepository) AddRecords(userID uuid.UUID, start string, times ...[2]string) {
	day, _ := time.Parse(domain.DateLayout, start)
	for _, t := range times {
		m.Upsert(context.Background(), &domain.SleepRecord{
			UserID:    userID,
			Date:      day.Format(domain.DateLayout),
			SleepTime: t[0],
			WakeTime:  t[1],
		})
		day = day.AddDate(0, 0, 1)
	}
}

func (m *MockSleepRecordRepository) SetError(err error) {
	m.err = err
}

// MockAchievementRepository is a mock implementation of AchievementRepository
type MockAchievementRepository struct {
	granted map[uuid.UUID][]domain.Achievement
	err     error
}

func NewMockAchievementRepository() *MockAchievementRepository {
	return &MockAchievementRepository{
		granted: make(map[uuid.UUID][]domain.Achievement),
	}
}

func (m *MockAchievementRepository) ListNames(ctx context.Context, userID uuid.UUID) (domain.AchievementSet, error) {
	if m.err != nil {
		return nil, m.err
	}
	set := domain.NewAchievementSet()
	for _, a := range m.granted[userID] {
		set.Add(a.Name)
	}
	return set, nil
}

func (m *MockAchievementRepository) List(ctx context.Context, userID uuid.UUID) ([]domain.Achievement, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.Achievement(nil), m.granted[userID]...), nil
}

func (m *MockAchievementRepository) Grant(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, a := range m.granted[userID] {
		if a.Name == name {
			return false, nil
		}
	}
	m.granted[userID] = append(m.granted[userID], domain.Achievement{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		GrantedAt: time.Now(),
	})
	return true, nil
}

func (m *MockAchievementRepository) Names(userID uuid.UUID) []string {
	var names []string
	for _, a := range m.granted[userID] {
		names = append(names, a.Name)
	}
	return names
}

func (m *MockAchievementRepository) SetError(err error) {
	m.err = err
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]uuid.UUID, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	return ids, nil
}

// AddUser registers a user with the given timezone and returns its ID.
func (m *MockUserRepository) AddUser(timezone string) uuid.UUID {
	id := uuid.New()
	m.users[id] = &domain.User{ID: id, Timezone: timezone}
	return id
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}
