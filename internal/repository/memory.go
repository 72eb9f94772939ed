package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// memoryTable keeps rows in insertion order. Rows are copied in and out so callers
// never share memory with the table.
type memoryTable[T any] struct {
	mu    sync.RWMutex
	rows  []*T
	id    func(*T) *string
	clone func(T) T
}

func newMemoryTable[T any](id func(*T) *string) *memoryTable[T] {
	return &memoryTable[T]{
		id:    id,
		clone: func(v T) T { return v },
	}
}

func (m *memoryTable[T]) insert(row *T, conflicts func(existing, row *T) bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id := m.id(row); *id == "" {
		*id = uuid.NewString()
	}

	for _, existing := range m.rows {
		if *m.id(existing) == *m.id(row) || (conflicts != nil && conflicts(existing, row)) {
			return ErrAlreadyExists
		}
	}

	stored := m.clone(*row)
	m.rows = append(m.rows, &stored)
	return nil
}

func (m *memoryTable[T]) find(match func(*T) bool) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, row := range m.rows {
		if match(row) {
			res := m.clone(*row)
			return &res, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryTable[T]) get(id string) (*T, error) {
	return m.find(func(row *T) bool { return *m.id(row) == id })
}

func (m *memoryTable[T]) filter(match func(*T) bool) []*T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]*T, 0, len(m.rows))
	for _, row := range m.rows {
		if match == nil || match(row) {
			c := m.clone(*row)
			res = append(res, &c)
		}
	}
	return res
}

func (m *memoryTable[T]) update(id string, fn func(*T)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, row := range m.rows {
		if *m.id(row) == id {
			fn(row)
			return nil
		}
	}
	return ErrNotFound
}

// replace swaps the stored row that has row's id. Conflicts are checked against
// every other row.
func (m *memoryTable[T]) replace(row *T, conflicts func(existing, row *T) bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, existing := range m.rows {
		if *m.id(existing) == *m.id(row) {
			idx = i
			continue
		}
		if conflicts != nil && conflicts(existing, row) {
			return ErrAlreadyExists
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	stored := m.clone(*row)
	m.rows[idx] = &stored
	return nil
}

func (m *memoryTable[T]) remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, row := range m.rows {
		if *m.id(row) == id {
			m.rows = slices.Delete(m.rows, i, i+1)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memoryTable[T]) clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows = nil
}

func (m *memoryTable[T]) count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.rows)
}

type memoryUserRepository struct {
	table *memoryTable[User]
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		table: newMemoryTable(func(u *User) *string { return &u.ID }),
	}
}

func sameEmail(existing, row *User) bool {
	return existing.Email == row.Email
}

func (r *memoryUserRepository) Create(_ context.Context, user *User) error {
	return r.table.insert(user, sameEmail)
}

func (r *memoryUserRepository) Get(_ context.Context, id string) (*User, error) {
	return r.table.get(id)
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	return r.table.find(func(u *User) bool { return u.Email == email })
}

func (r *memoryUserRepository) List(_ context.Context) ([]*User, error) {
	return r.table.filter(nil), nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *User) error {
	return r.table.replace(user, sameEmail)
}

func (r *memoryUserRepository) Delete(_ context.Context, id string) error {
	return r.table.remove(id)
}

func (r *memoryUserRepository) DeleteAll(_ context.Context) error {
	r.table.clear()
	return nil
}

func (r *memoryUserRepository) Count(_ context.Context) (int, error) {
	return r.table.count(), nil
}

type memoryTeamRepository struct {
	table *memoryTable[Team]
}

func NewMemoryTeamRepository() TeamRepository {
	table := newMemoryTable(func(t *Team) *string { return &t.ID })
	table.clone = func(t Team) Team {
		t.Members = slices.Clone(t.Members)
		if t.Members == nil {
			t.Members = []string{}
		}
		return t
	}
	return &memoryTeamRepository{table: table}
}

func sameTeamName(existing, row *Team) bool {
	return existing.Name == row.Name
}

func (r *memoryTeamRepository) Create(_ context.Context, team *Team) error {
	return r.table.insert(team, sameTeamName)
}

func (r *memoryTeamRepository) Get(_ context.Context, id string) (*Team, error) {
	return r.table.get(id)
}

func (r *memoryTeamRepository) List(_ context.Context) ([]*Team, error) {
	return r.table.filter(nil), nil
}

func (r *memoryTeamRepository) SetMembers(_ context.Context, id string, members []string) error {
	return r.table.update(id, func(t *Team) {
		t.Members = slices.Clone(members)
	})
}

func (r *memoryTeamRepository) SetTotalPoints(_ context.Context, id string, points int) error {
	return r.table.update(id, func(t *Team) {
		t.TotalPoints = points
	})
}

func (r *memoryTeamRepository) Update(_ context.Context, team *Team) error {
	return r.table.replace(team, sameTeamName)
}

func (r *memoryTeamRepository) Delete(_ context.Context, id string) error {
	return r.table.remove(id)
}

func (r *memoryTeamRepository) DeleteAll(_ context.Context) error {
	r.table.clear()
	return nil
}

func (r *memoryTeamRepository) Count(_ context.Context) (int, error) {
	return r.table.count(), nil
}

type memoryActivityRepository struct {
	table *memoryTable[Activity]
}

func NewMemoryActivityRepository() ActivityRepository {
	return &memoryActivityRepository{
		table: newMemoryTable(func(a *Activity) *string { return &a.ID }),
	}
}

func (r *memoryActivityRepository) Create(_ context.Context, activity *Activity) error {
	return r.table.insert(activity, nil)
}

func (r *memoryActivityRepository) Get(_ context.Context, id string) (*Activity, error) {
	return r.table.get(id)
}

func (r *memoryActivityRepository) List(_ context.Context) ([]*Activity, error) {
	return newestFirst(r.table.filter(nil)), nil
}

func (r *memoryActivityRepository) ListByUser(_ context.Context, email string) ([]*Activity, error) {
	return newestFirst(r.table.filter(func(a *Activity) bool { return a.UserEmail == email })), nil
}

func (r *memoryActivityRepository) Update(_ context.Context, activity *Activity) error {
	return r.table.replace(activity, nil)
}

func (r *memoryActivityRepository) Delete(_ context.Context, id string) error {
	return r.table.remove(id)
}

func (r *memoryActivityRepository) DeleteAll(_ context.Context) error {
	r.table.clear()
	return nil
}

func (r *memoryActivityRepository) Count(_ context.Context) (int, error) {
	return r.table.count(), nil
}

func newestFirst(activities []*Activity) []*Activity {
	slices.SortStableFunc(activities, func(a, b *Activity) int {
		return b.Date.Compare(a.Date)
	})
	return activities
}

type memoryLeaderboardRepository struct {
	table *memoryTable[LeaderboardEntry]
}

func NewMemoryLeaderboardRepository() LeaderboardRepository {
	return &memoryLeaderboardRepository{
		table: newMemoryTable(func(e *LeaderboardEntry) *string { return &e.ID }),
	}
}

func (r *memoryLeaderboardRepository) Create(_ context.Context, entry *LeaderboardEntry) error {
	return r.table.insert(entry, nil)
}

func (r *memoryLeaderboardRepository) Get(_ context.Context, id string) (*LeaderboardEntry, error) {
	return r.table.get(id)
}

func (r *memoryLeaderboardRepository) List(_ context.Context) ([]*LeaderboardEntry, error) {
	entries := r.table.filter(nil)
	slices.SortStableFunc(entries, func(a, b *LeaderboardEntry) int {
		return a.Rank - b.Rank
	})
	return entries, nil
}

func (r *memoryLeaderboardRepository) Top(ctx context.Context, limit int) ([]*LeaderboardEntry, error) {
	entries, _ := r.List(ctx)
	if limit < len(entries) {
		entries = entries[:max(limit, 0)]
	}
	return entries, nil
}

func (r *memoryLeaderboardRepository) Update(_ context.Context, entry *LeaderboardEntry) error {
	return r.table.replace(entry, nil)
}

func (r *memoryLeaderboardRepository) Delete(_ context.Context, id string) error {
	return r.table.remove(id)
}

func (r *memoryLeaderboardRepository) DeleteAll(_ context.Context) error {
	r.table.clear()
	return nil
}

func (r *memoryLeaderboardRepository) Count(_ context.Context) (int, error) {
	return r.table.count(), nil
}

type memoryWorkoutRepository struct {
	table *memoryTable[Workout]
}

func NewMemoryWorkoutRepository() WorkoutRepository {
	return &memoryWorkoutRepository{
		table: newMemoryTable(func(w *Workout) *string { return &w.ID }),
	}
}

func (r *memoryWorkoutRepository) Create(_ context.Context, workout *Workout) error {
	return r.table.insert(workout, nil)
}

func (r *memoryWorkoutRepository) Get(_ context.Context, id string) (*Workout, error) {
	return r.table.get(id)
}

func (r *memoryWorkoutRepository) List(_ context.Context) ([]*Workout, error) {
	return r.table.filter(nil), nil
}

func (r *memoryWorkoutRepository) ListByCategory(_ context.Context, category string) ([]*Workout, error) {
	return r.table.filter(func(w *Workout) bool { return w.Category == category }), nil
}

func (r *memoryWorkoutRepository) ListByDifficulty(_ context.Context, difficulty string) ([]*Workout, error) {
	return r.table.filter(func(w *Workout) bool { return w.Difficulty == difficulty }), nil
}

func (r *memoryWorkoutRepository) Update(_ context.Context, workout *Workout) error {
	return r.table.replace(workout, nil)
}

func (r *memoryWorkoutRepository) Delete(_ context.Context, id string) error {
	return r.table.remove(id)
}

func (r *memoryWorkoutRepository) DeleteAll(_ context.Context) error {
	r.table.clear()
	return nil
}

func (r *memoryWorkoutRepository) Count(_ context.Context) (int, error) {
	return r.table.count(), nil
}
