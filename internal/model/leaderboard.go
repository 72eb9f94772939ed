package model

// LeaderboardEntry is a derived snapshot; it goes stale until the leaderboard is recomputed.
type LeaderboardEntry struct {
	ID              string `json:"id"`
	UserEmail       string `json:"user_email" validate:"required,email"`
	UserName        string `json:"user_name"`
	Team            string `json:"team"`
	TotalCalories   int    `json:"total_calories" validate:"gte=0"`
	TotalActivities int    `json:"total_activities" validate:"gte=0"`
	Rank            int    `json:"rank" validate:"gte=0"`
}
