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

type Team struct {
	ID          string   `db:"id"`
	Name        string   `db:"name"`
	Members     []string `db:"members"`
	TotalPoints int      `db:"total_points"`
}

type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	Get(ctx context.Context, id string) (*Team, error)
	List(ctx context.Context) ([]*Team, error)
	SetMembers(ctx context.Context, id string, members []string) error
	SetTotalPoints(ctx context.Context, id string, points int) error
	Update(ctx context.Context, team *Team) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

var teamColumns = []string{"id", "name", "members", "total_points"}

type pgxTeamRepository struct {
	pool *pgxpool.Pool
}

func NewPgxTeamRepository(pool *pgxpool.Pool) TeamRepository {
	return &pgxTeamRepository{pool: pool}
}

func (p *pgxTeamRepository) Create(ctx context.Context, team *Team) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	if team.Members == nil {
		team.Members = []string{}
	}

	q := psql.Insert(
		im.Into("teams", teamColumns...),
		im.Values(psql.Arg(team.ID), psql.Arg(team.Name), psql.Arg(team.Members), psql.Arg(team.TotalPoints)),
	)

	_, err := exec(ctx, e, q)
	return err
}

func (p *pgxTeamRepository) Get(ctx context.Context, id string) (*Team, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(columns(teamColumns...)...),
		sm.From("teams"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	return queryOne[Team](ctx, e, q)
}

func (p *pgxTeamRepository) List(ctx context.Context) ([]*Team, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(columns(teamColumns...)...),
		sm.From("teams"),
		sm.OrderBy("seq"),
	)

	return queryAll[Team](ctx, e, q)
}

func (p *pgxTeamRepository) SetMembers(ctx context.Context, id string, members []string) error {
	if members == nil {
		members = []string{}
	}
	return updateByID(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "teams", id, um.SetCol("members").ToArg(members))
}

func (p *pgxTeamRepository) SetTotalPoints(ctx context.Context, id string, points int) error {
	return updateByID(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "teams", id, um.SetCol("total_points").ToArg(points))
}

func (p *pgxTeamRepository) Update(ctx context.Context, team *Team) error {
	if team.Members == nil {
		team.Members = []string{}
	}
	return updateByID(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "teams", team.ID,
		um.SetCol("name").ToArg(team.Name),
		um.SetCol("members").ToArg(team.Members),
		um.SetCol("total_points").ToArg(team.TotalPoints),
	)
}

func (p *pgxTeamRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "teams", id)
}

func (p *pgxTeamRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "teams")
}

func (p *pgxTeamRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "teams")
}
