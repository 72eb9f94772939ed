package model

type Team struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Members     []string `json:"members"`
	TotalPoints int      `json:"total_points"`
}
