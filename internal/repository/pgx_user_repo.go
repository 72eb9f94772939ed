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

type User struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Team  string `db:"team"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Get(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

var userColumns = []string{"id", "name", "email", "team"}

type pgxUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgxUserRepository(pool *pgxpool.Pool) UserRepository {
	return &pgxUserRepository{pool: pool}
}

// Create inserts the user and sets user.ID when it is empty
func (p *pgxUserRepository) Create(ctx context.Context, user *User) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	q := psql.Insert(
		im.Into("users", userColumns...),
		im.Values(psql.Arg(user.ID), psql.Arg(user.Name), psql.Arg(user.Email), psql.Arg(user.Team)),
	)

	_, err := exec(ctx, e, q)
	return err
}

func (p *pgxUserRepository) Get(ctx context.Context, id string) (*User, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(columns(userColumns...)...),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	return queryOne[User](ctx, e, q)
}

func (p *pgxUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(columns(userColumns...)...),
		sm.From("users"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)

	return queryOne[User](ctx, e, q)
}

func (p *pgxUserRepository) List(ctx context.Context) ([]*User, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(columns(userColumns...)...),
		sm.From("users"),
		sm.OrderBy("seq"),
	)

	return queryAll[User](ctx, e, q)
}

// Update overwrites every column of the user with user.ID
func (p *pgxUserRepository) Update(ctx context.Context, user *User) error {
	return updateByID(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "users", user.ID,
		um.SetCol("name").ToArg(user.Name),
		um.SetCol("email").ToArg(user.Email),
		um.SetCol("team").ToArg(user.Team),
	)
}

func (p *pgxUserRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "users", id)
}

func (p *pgxUserRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "users")
}

func (p *pgxUserRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, db.GetPgxExecutorFromContext(ctx, p.pool), "users")
}
