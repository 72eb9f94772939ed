package model

import "time"

type Activity struct {
	ID           string    `json:"id"`
	UserEmail    string    `json:"user_email" validate:"required,email"`
	ActivityType string    `json:"activity_type" validate:"required"`
	Duration     int       `json:"duration" validate:"gt=0"`
	Calories     int       `json:"calories" validate:"gte=0"`
	Date         time.Time `json:"date"`
}
