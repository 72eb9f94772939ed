package service

import "github.com/yakoovad/octofit-tracker/internal/repository"

type seedUser struct {
	name  string
	email string
}

type seedTeam struct {
	name    string
	members []seedUser
}

// ActivityType is a catalog entry used to generate demo activities
type ActivityType struct {
	Name              string
	CaloriesPerMinute int
}

var seedTeams = []seedTeam{
	{
		name: "Team Marvel",
		members: []seedUser{
			{name: "Iron Man", email: "tony.stark@marvel.com"},
			{name: "Captain America", email: "steve.rogers@marvel.com"},
			{name: "Thor", email: "thor.odinson@marvel.com"},
			{name: "Black Widow", email: "natasha.romanoff@marvel.com"},
			{name: "Hulk", email: "bruce.banner@marvel.com"},
			{name: "Spider-Man", email: "peter.parker@marvel.com"},
		},
	},
	{
		name: "Team DC",
		members: []seedUser{
			{name: "Batman", email: "bruce.wayne@dc.com"},
			{name: "Superman", email: "clark.kent@dc.com"},
			{name: "Wonder Woman", email: "diana.prince@dc.com"},
			{name: "The Flash", email: "barry.allen@dc.com"},
			{name: "Aquaman", email: "arthur.curry@dc.com"},
			{name: "Green Lantern", email: "hal.jordan@dc.com"},
		},
	},
}

var ActivityTypes = []ActivityType{
	{Name: "Running", CaloriesPerMinute: 10},
	{Name: "Swimming", CaloriesPerMinute: 12},
	{Name: "Cycling", CaloriesPerMinute: 8},
	{Name: "Weightlifting", CaloriesPerMinute: 6},
	{Name: "Yoga", CaloriesPerMinute: 4},
	{Name: "Boxing", CaloriesPerMinute: 11},
}

const (
	minActivitiesPerUser = 5
	maxActivitiesPerUser = 10
	minDurationMinutes   = 20
	maxDurationMinutes   = 90
	maxDaysAgo           = 30
)

var seedWorkouts = []repository.Workout{
	{
		Name:               "Super Soldier Cardio",
		Category:           "Cardio",
		Description:        "High-intensity cardio workout inspired by Captain America training",
		Difficulty:         "Hard",
		Duration:           45,
		CaloriesPerSession: 450,
	},
	{
		Name:               "Asgardian Strength Training",
		Category:           "Strength",
		Description:        "Heavy weightlifting routine worthy of the God of Thunder",
		Difficulty:         "Hard",
		Duration:           60,
		CaloriesPerSession: 360,
	},
	{
		Name:               "Web-Slinger Flexibility",
		Category:           "Flexibility",
		Description:        "Dynamic stretching and mobility exercises",
		Difficulty:         "Medium",
		Duration:           30,
		CaloriesPerSession: 120,
	},
	{
		Name:               "Bat-Training Combat",
		Category:           "Martial Arts",
		Description:        "Intensive combat training and boxing drills",
		Difficulty:         "Hard",
		Duration:           50,
		CaloriesPerSession: 550,
	},
	{
		Name:               "Kryptonian Power Workout",
		Category:           "Full Body",
		Description:        "Complete body workout combining strength and cardio",
		Difficulty:         "Hard",
		Duration:           55,
		CaloriesPerSession: 500,
	},
	{
		Name:               "Amazonian Warrior Training",
		Category:           "Strength",
		Description:        "Functional strength training with warrior spirit",
		Difficulty:         "Medium",
		Duration:           40,
		CaloriesPerSession: 320,
	},
	{
		Name:               "Speed Force Sprint",
		Category:           "Cardio",
		Description:        "Sprint intervals and speed training",
		Difficulty:         "Hard",
		Duration:           35,
		CaloriesPerSession: 400,
	},
	{
		Name:               "Atlantean Swimming",
		Category:           "Swimming",
		Description:        "Aquatic endurance and strength training",
		Difficulty:         "Medium",
		Duration:           45,
		CaloriesPerSession: 540,
	},
	{
		Name:               "Willpower Yoga",
		Category:           "Yoga",
		Description:        "Mind and body alignment through yoga practice",
		Difficulty:         "Easy",
		Duration:           30,
		CaloriesPerSession: 120,
	},
	{
		Name:               "Arc Reactor Core",
		Category:           "Core",
		Description:        "Core strengthening exercises for stability",
		Difficulty:         "Medium",
		Duration:           25,
		CaloriesPerSession: 150,
	},
}
