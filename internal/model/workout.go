package model

type Workout struct {
	ID                 string `json:"id"`
	Name               string `json:"name" validate:"required"`
	Category           string `json:"category" validate:"required"`
	Description        string `json:"description"`
	Difficulty         string `json:"difficulty" validate:"required"`
	Duration           int    `json:"duration" validate:"gt=0"`
	CaloriesPerSession int    `json:"calories_per_session" validate:"gte=0"`
}
