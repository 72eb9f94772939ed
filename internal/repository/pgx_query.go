package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/yakoovad/octofit-tracker/internal/db"
)

type builder interface {
	Build(ctx context.Context) (string, []any, error)
}

func columns(names ...string) []any {
	res := make([]any, 0, len(names))
	for _, name := range names {
		res = append(res, name)
	}
	return res
}

func queryAll[T any](ctx context.Context, e db.Executor, q builder) ([]*T, error) {
	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, translatePgError(err)
	}

	res, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, translatePgError(err)
	}
	return res, nil
}

func queryOne[T any](ctx context.Context, e db.Executor, q builder) (*T, error) {
	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, translatePgError(err)
	}

	res, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, translatePgError(err)
	}
	return res, nil
}

func exec(ctx context.Context, e db.Executor, q builder) (int64, error) {
	sql, args, err := q.Build(ctx)
	if err != nil {
		return 0, err
	}

	tag, err := e.Exec(ctx, sql, args...)
	if err != nil {
		return 0, translatePgError(err)
	}
	return tag.RowsAffected(), nil
}

func byID(id string) bob.Expression {
	return psql.Quote("id").EQ(psql.Arg(id))
}

// updateByID applies sets to the row with id and reports ErrNotFound when no row matched
func updateByID(ctx context.Context, e db.Executor, table, id string, sets ...bob.Mod[*dialect.UpdateQuery]) error {
	mods := make([]bob.Mod[*dialect.UpdateQuery], 0, len(sets)+2)
	mods = append(mods, um.Table(table))
	mods = append(mods, sets...)
	mods = append(mods, um.Where(byID(id)))

	affected, err := exec(ctx, e, psql.Update(mods...))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, e db.Executor, table, id string) error {
	affected, err := exec(ctx, e, psql.Delete(dm.From(table), dm.Where(byID(id))))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteAll(ctx context.Context, e db.Executor, table string) error {
	_, err := exec(ctx, e, psql.Delete(dm.From(table)))
	return err
}

func count(ctx context.Context, e db.Executor, table string) (int, error) {
	sql, args, err := psql.Select(
		sm.Columns("count(*)"),
		sm.From(table),
	).Build(ctx)
	if err != nil {
		return 0, err
	}

	var n int
	if err = e.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
