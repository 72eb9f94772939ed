package service

import (
	"github.com/yakoovad/octofit-tracker/internal/model"
	"github.com/yakoovad/octofit-tracker/internal/repository"
)

func toModelUser(u *repository.User) *model.User {
	return &model.User{ID: u.ID, Name: u.Name, Email: u.Email, Team: u.Team}
}

func toModelTeam(t *repository.Team) *model.Team {
	members := t.Members
	if members == nil {
		members = []string{}
	}
	return &model.Team{ID: t.ID, Name: t.Name, Members: members, TotalPoints: t.TotalPoints}
}

func toModelActivity(a *repository.Activity) *model.Activity {
	return &model.Activity{
		ID:           a.ID,
		UserEmail:    a.UserEmail,
		ActivityType: a.ActivityType,
		Duration:     a.Duration,
		Calories:     a.Calories,
		Date:         a.Date,
	}
}

func toModelEntry(e *repository.LeaderboardEntry) *model.LeaderboardEntry {
	return &model.LeaderboardEntry{
		ID:              e.ID,
		UserEmail:       e.UserEmail,
		UserName:        e.UserName,
		Team:            e.Team,
		TotalCalories:   e.TotalCalories,
		TotalActivities: e.TotalActivities,
		Rank:            e.Rank,
	}
}

func toModelWorkout(w *repository.Workout) *model.Workout {
	return &model.Workout{
		ID:                 w.ID,
		Name:               w.Name,
		Category:           w.Category,
		Description:        w.Description,
		Difficulty:         w.Difficulty,
		Duration:           w.Duration,
		CaloriesPerSession: w.CaloriesPerSession,
	}
}

func mapAll[R, M any](rows []*R, conv func(*R) *M) []*M {
	res := make([]*M, 0, len(rows))
	for _, row := range rows {
		res = append(res, conv(row))
	}
	return res
}
