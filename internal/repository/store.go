package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Store bundles one repository per entity type
type Store struct {
	Users       UserRepository
	Teams       TeamRepository
	Activities  ActivityRepository
	Leaderboard LeaderboardRepository
	Workouts    WorkoutRepository
}

func NewPgxStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Users:       NewPgxUserRepository(pool),
		Teams:       NewPgxTeamRepository(pool),
		Activities:  NewPgxActivityRepository(pool),
		Leaderboard: NewPgxLeaderboardRepository(pool),
		Workouts:    NewPgxWorkoutRepository(pool),
	}
}

func NewMemoryStore() *Store {
	return &Store{
		Users:       NewMemoryUserRepository(),
		Teams:       NewMemoryTeamRepository(),
		Activities:  NewMemoryActivityRepository(),
		Leaderboard: NewMemoryLeaderboardRepository(),
		Workouts:    NewMemoryWorkoutRepository(),
	}
}
