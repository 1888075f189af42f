package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT 0") }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDBPanicsWithoutFns(t *testing.T) {
	db := &FakeDB{}
	ctx := context.Background()
	require.Panics(t, func() { _, _ = db.Exec(ctx, "DELETE FROM menu") })
	require.Panics(t, func() { _, _ = db.Query(ctx, "SELECT id FROM menu") })
	require.Panics(t, func() { db.QueryRow(ctx, "SELECT id FROM menu WHERE id = $1", 1) })
	require.Panics(t, func() { _ = db.Ping(ctx) })
	require.NotPanics(t, db.Close)
}

func TestFakeDBDelegates(t *testing.T) {
	ctx := context.Background()
	var calls []string
	db := &FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			calls = append(calls, "exec")
			require.Equal(t, []any{7}, args)
			return pgconn.NewCommandTag("DELETE 1"), nil
		},
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			calls = append(calls, "query")
			return emptyRows{}, nil
		},
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			calls = append(calls, "row")
			return emptyRows{}
		},
		PingFn:  func(context.Context) error { calls = append(calls, "ping"); return errors.New("down") },
		CloseFn: func() { calls = append(calls, "close") },
	}

	tag, err := db.Exec(ctx, "DELETE FROM menu WHERE id = $1", 7)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())

	rows, err := db.Query(ctx, "SELECT id FROM menu")
	require.NoError(t, err)
	require.False(t, rows.Next())

	require.NoError(t, db.QueryRow(ctx, "SELECT 1").Scan())
	require.EqualError(t, db.Ping(ctx), "down")
	db.Close()

	require.Equal(t, []string{"exec", "query", "row", "ping", "close"}, calls)
}
