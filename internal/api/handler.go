package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yakoovad/octofit-tracker/internal/auth"
	"github.com/yakoovad/octofit-tracker/internal/service"
	"go.uber.org/zap"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)

type Handler struct {
	user        *service.UserService
	team        *service.TeamService
	activity    *service.ActivityService
	leaderboard *service.LeaderboardService
	workout     *service.WorkoutService
	seed        *service.SeedService

	healthChecker HealthChecker

	topDefault int
	topMax     int

	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		topDefault: defaultTopLimit,
		topMax:     maxTopLimit,
		logger:     logger,
	}
}

func (h *Handler) WithHealthChecker(c HealthChecker) *Handler {
	h.healthChecker = c
	return h
}

func (h *Handler) WithUserService(user *service.UserService) *Handler {
	h.user = user
	return h
}

func (h *Handler) WithTeamService(team *service.TeamService) *Handler {
	h.team = team
	return h
}

func (h *Handler) WithActivityService(activity *service.ActivityService) *Handler {
	h.activity = activity
	return h
}

func (h *Handler) WithLeaderboardService(leaderboard *service.LeaderboardService) *Handler {
	h.leaderboard = leaderboard
	return h
}

func (h *Handler) WithWorkoutService(workout *service.WorkoutService) *Handler {
	h.workout = workout
	return h
}

func (h *Handler) WithSeedService(seed *service.SeedService) *Handler {
	h.seed = seed
	return h
}

// WithTopLimits sets the default and maximum limit of GET /leaderboard/top.
func (h *Handler) WithTopLimits(defaultLimit, maxLimit int) *Handler {
	h.topDefault = defaultLimit
	h.topMax = maxLimit
	return h
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewValidator()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(ZapLoggerMiddleware(h.logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	if h.healthChecker != nil {
		e.GET("/health", h.healthChecker.HealthCheck())
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/users", h.ListUsers)
	e.POST("/users", h.CreateUser)
	e.GET("/users/by_email", h.GetUserByEmail)
	e.GET("/users/:id", h.GetUser)
	e.PUT("/users/:id", h.ReplaceUser)
	e.PATCH("/users/:id", h.PatchUser)
	e.DELETE("/users/:id", h.DeleteUser)

	e.GET("/teams", h.ListTeams)
	e.POST("/teams", h.CreateTeam)
	e.GET("/teams/:id", h.GetTeam)
	e.PUT("/teams/:id", h.ReplaceTeam)
	e.PATCH("/teams/:id", h.PatchTeam)
	e.DELETE("/teams/:id", h.DeleteTeam)
	e.POST("/teams/:id/add_member", h.AddTeamMember)

	e.GET("/activities", h.ListActivities)
	e.POST("/activities", h.CreateActivity)
	e.GET("/activities/by_user", h.ListUserActivities)
	e.GET("/activities/:id", h.GetActivity)
	e.PUT("/activities/:id", h.ReplaceActivity)
	e.PATCH("/activities/:id", h.PatchActivity)
	e.DELETE("/activities/:id", h.DeleteActivity)

	e.GET("/leaderboard", h.ListLeaderboard)
	e.GET("/leaderboard/top", h.TopLeaderboard)
	e.GET("/leaderboard/:id", h.GetLeaderboardEntry)
	e.PUT("/leaderboard/:id", h.ReplaceLeaderboardEntry)
	e.PATCH("/leaderboard/:id", h.PatchLeaderboardEntry)
	e.DELETE("/leaderboard/:id", h.DeleteLeaderboardEntry)

	e.GET("/workouts", h.ListWorkouts)
	e.POST("/workouts", h.CreateWorkout)
	e.GET("/workouts/by_category", h.ListWorkoutsByCategory)
	e.GET("/workouts/by_difficulty", h.ListWorkoutsByDifficulty)
	e.GET("/workouts/:id", h.GetWorkout)
	e.PUT("/workouts/:id", h.ReplaceWorkout)
	e.PATCH("/workouts/:id", h.PatchWorkout)
	e.DELETE("/workouts/:id", h.DeleteWorkout)

	adminOnly := AuthMiddleware(auth.TokenTypeAdmin)

	e.POST("/leaderboard/recompute", h.RecomputeLeaderboard, adminOnly)
	e.POST("/admin/populate", h.Populate, adminOnly)
}

func transportError(e echo.Context, err *service.Error) error {
	response := struct {
		Error *service.Error `json:"error"`
	}{Error: err}

	switch err.Code {
	case service.ErrorCodeNotFound:
		return e.JSON(http.StatusNotFound, response)
	case service.ErrorCodeUserExists, service.ErrorCodeTeamExists:
		return e.JSON(http.StatusBadRequest, response)
	case service.ErrorCodeInvalidBody:
		return e.JSON(http.StatusBadRequest, response)
	case service.ErrorCodeUnauthorized:
		return e.JSON(http.StatusUnauthorized, response)
	case service.ErrorCodeForbidden:
		return e.JSON(http.StatusForbidden, response)
	default:
		return e.JSON(http.StatusInternalServerError, response)
	}
}
