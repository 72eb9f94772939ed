package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/yakoovad/octofit-tracker/internal/db"
)

type Activity struct {
	ID           string    `db:"id"`
	UserEmail    string    `db:"user_email"`
	ActivityType string    `db:"activity_type"`
	Duration     int       `db:"duration"`
	Calories     int       `db:"calories"`
	Date         time.Time `db:"date"`
}

// ActivityRepository lists activities newest first
type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error
	Get(ctx context.Context, id string) (*Activity, error)
	List(ctx context.Context) ([]*Activity, error)
	ListByUser(ctx context.Context, email string) ([]*Activity, error)
	Update(ctx context.Context, activity *Activity) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

var activityColumns = []string{"id", "user_email", "activity_type", "duration", "calories", "date"}

type pgxActivityRepository struct {
	pool *pgxpool.Pool
}

func NewPgxActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &pgxActivityRepository{pool: pool}
}

func (p *pgxActivityRepository) Create(ctx context.Context, activity *Activity) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}

	q := psql.Insert(
		im.Into("activities", activityColumns...),
		im.Values(
			psql.Arg(activity.ID),
			psql.Arg(activity.UserEmail),
			psql.Arg(activity.ActivityType),
			psql.Arg(activity.Duration),
			psql.Arg(activity.Calories),
			psql.Arg(activity.Date),
		),
	)

	_, err := exec(ctx, e, q)
	return err
}

func (p *pgxActivityRepository) Get(ctx context.Context, id string) (*Activity, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(columns(activityColumns...)...),
		sm.From("activities"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	return queryOne[Activity](ctx, e, q)
}

func (p *pgxActivityRepository) List(ctx context.Context) ([]*Activity, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(columns(activityColumns...)...),
		sm.From("activities"),
		sm.OrderBy("date").Desc(),
		sm.OrderBy("seq"),
	)

	return queryAll[Activity](ctx, e, q)
}

func (p *pgxActivityRepository) ListByUser(ctx context.Context, email string) ([]*Activity, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(columns(activityColumns...)...),
		sm.From("activities"),
		sm.Where(psql.Quote("user_email").EQ(psql.Arg(email))),
		sm.OrderBy("date").Desc(),
		sm.OrderBy("seq"),
	)

	return queryAll[Activity](ctx, e, q)
}

func (p *pgxActivityRepository) Update(ctx context.Context, activity *Activity) error {
	return updateByID(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "activities", activity.ID,
		um.SetCol("user_email").ToArg(activity.UserEmail),
		um.SetCol("activity_type").ToArg(activity.ActivityType),
		um.SetCol("duration").ToArg(activity.Duration),
		um.SetCol("calories").ToArg(activity.Calories),
		um.SetCol("date").ToArg(activity.Date),
	)
}

func (p *pgxActivityRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "activities", id)
}

func (p *pgxActivityRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "activities")
}

func (p *pgxActivityRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "activities")
}
