package model

// SeedSummary reports what a populate run left in the store
type SeedSummary struct {
	Users              int            `json:"users"`
	Teams              int            `json:"teams"`
	Activities         int            `json:"activities"`
	LeaderboardEntries int            `json:"leaderboard_entries"`
	Workouts           int            `json:"workouts"`
	TeamPoints         map[string]int `json:"team_points"`
}
