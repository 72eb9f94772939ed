package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/yakoovad/octofit-tracker/internal/db"
)

type Workout struct {
	ID                 string `db:"id"`
	Name               string `db:"name"`
	Category           string `db:"category"`
	Description        string `db:"description"`
	Difficulty         string `db:"difficulty"`
	Duration           int    `db:"duration"`
	CaloriesPerSession int    `db:"calories_per_session"`
}

type WorkoutRepository interface {
	Create(ctx context.Context, workout *Workout) error
	Get(ctx context.Context, id string) (*Workout, error)
	List(ctx context.Context) ([]*Workout, error)
	ListByCategory(ctx context.Context, category string) ([]*Workout, error)
	ListByDifficulty(ctx context.Context, difficulty string) ([]*Workout, error)
	Update(ctx context.Context, workout *Workout) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

var workoutColumns = []string{"id", "name", "category", "description", "difficulty", "duration", "calories_per_session"}

type pgxWorkoutRepository struct {
	pool *pgxpool.Pool
}

func NewPgxWorkoutRepository(pool *pgxpool.Pool) WorkoutRepository {
	return &pgxWorkoutRepository{pool: pool}
}

func (p *pgxWorkoutRepository) Create(ctx context.Context, workout *Workout) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}

	q := psql.Insert(
		im.Into("workouts", workoutColumns...),
		im.Values(
			psql.Arg(workout.ID),
			psql.Arg(workout.Name),
			psql.Arg(workout.Category),
			psql.Arg(workout.Description),
			psql.Arg(workout.Difficulty),
			psql.Arg(workout.Duration),
			psql.Arg(workout.CaloriesPerSession),
		),
	)

	_, err := exec(ctx, e, q)
	return err
}

func (p *pgxWorkoutRepository) Get(ctx context.Context, id string) (*Workout, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(columns(workoutColumns...)...),
		sm.From("workouts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	return queryOne[Workout](ctx, e, q)
}

func (p *pgxWorkoutRepository) List(ctx context.Context) ([]*Workout, error) {
	return p.listWhere(ctx, "", "")
}

func (p *pgxWorkoutRepository) ListByCategory(ctx context.Context, category string) ([]*Workout, error) {
	return p.listWhere(ctx, "category", category)
}

func (p *pgxWorkoutRepository) ListByDifficulty(ctx context.Context, difficulty string) ([]*Workout, error) {
	return p.listWhere(ctx, "difficulty", difficulty)
}

// listWhere filters by equality on field; an empty field lists everything
func (p *pgxWorkoutRepository) listWhere(ctx context.Context, field, value string) ([]*Workout, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(columns(workoutColumns...)...),
		sm.From("workouts"),
		sm.OrderBy("seq"),
	)
	if field != "" {
		q.Apply(sm.Where(psql.Quote(field).EQ(psql.Arg(value))))
	}

	return queryAll[Workout](ctx, e, q)
}

func (p *pgxWorkoutRepository) Update(ctx context.Context, workout *Workout) error {
	return updateByID(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "workouts", workout.ID,
		um.SetCol("name").ToArg(workout.Name),
		um.SetCol("category").ToArg(workout.Category),
		um.SetCol("description").ToArg(workout.Description),
		um.SetCol("difficulty").ToArg(workout.Difficulty),
		um.SetCol("duration").ToArg(workout.Duration),
		um.SetCol("calories_per_session").ToArg(workout.CaloriesPerSession),
	)
}

func (p *pgxWorkoutRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "workouts", id)
}

func (p *pgxWorkoutRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "workouts")
}

func (p *pgxWorkoutRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "workouts")
}
