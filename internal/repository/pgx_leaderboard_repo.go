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

type LeaderboardEntry struct {
	ID              string `db:"id"`
	UserEmail       string `db:"user_email"`
	UserName        string `db:"user_name"`
	Team            string `db:"team"`
	TotalCalories   int    `db:"total_calories"`
	TotalActivities int    `db:"total_activities"`
	Rank            int    `db:"rank"`
}

// LeaderboardRepository lists entries by rank
type LeaderboardRepository interface {
	Create(ctx context.Context, entry *LeaderboardEntry) error
	Get(ctx context.Context, id string) (*LeaderboardEntry, error)
	List(ctx context.Context) ([]*LeaderboardEntry, error)
	Top(ctx context.Context, limit int) ([]*LeaderboardEntry, error)
	Update(ctx context.Context, entry *LeaderboardEntry) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

var leaderboardColumns = []string{"id", "user_email", "user_name", "team", "total_calories", "total_activities", "rank"}

type pgxLeaderboardRepository struct {
	pool *pgxpool.Pool
}

func NewPgxLeaderboardRepository(pool *pgxpool.Pool) LeaderboardRepository {
	return &pgxLeaderboardRepository{pool: pool}
}

func (p *pgxLeaderboardRepository) Create(ctx context.Context, entry *LeaderboardEntry) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	q := psql.Insert(
		im.Into("leaderboard", leaderboardColumns...),
		im.Values(
			psql.Arg(entry.ID),
			psql.Arg(entry.UserEmail),
			psql.Arg(entry.UserName),
			psql.Arg(entry.Team),
			psql.Arg(entry.TotalCalories),
			psql.Arg(entry.TotalActivities),
			psql.Arg(entry.Rank),
		),
	)

	_, err := exec(ctx, e, q)
	return err
}

func (p *pgxLeaderboardRepository) Get(ctx context.Context, id string) (*LeaderboardEntry, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(columns(leaderboardColumns...)...),
		sm.From("leaderboard"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	return queryOne[LeaderboardEntry](ctx, e, q)
}

func (p *pgxLeaderboardRepository) List(ctx context.Context) ([]*LeaderboardEntry, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(columns(leaderboardColumns...)...),
		sm.From("leaderboard"),
		sm.OrderBy("rank"),
		sm.OrderBy("seq"),
	)

	return queryAll[LeaderboardEntry](ctx, e, q)
}

func (p *pgxLeaderboardRepository) Top(ctx context.Context, limit int) ([]*LeaderboardEntry, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(columns(leaderboardColumns...)...),
		sm.From("leaderboard"),
		sm.OrderBy("rank"),
		sm.OrderBy("seq"),
		sm.Limit(int64(limit)),
	)

	return queryAll[LeaderboardEntry](ctx, e, q)
}

func (p *pgxLeaderboardRepository) Update(ctx context.Context, entry *LeaderboardEntry) error {
	return updateByID(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "leaderboard", entry.ID,
		um.SetCol("user_email").ToArg(entry.UserEmail),
		um.SetCol("user_name").ToArg(entry.UserName),
		um.SetCol("team").ToArg(entry.Team),
		um.SetCol("total_calories").ToArg(entry.TotalCalories),
		um.SetCol("total_activities").ToArg(entry.TotalActivities),
		um.SetCol("rank").ToArg(entry.Rank),
	)
}

func (p *pgxLeaderboardRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "leaderboard", id)
}

func (p *pgxLeaderboardRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "leaderboard")
}

func (p *pgxLeaderboardRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "leaderboard")
}
