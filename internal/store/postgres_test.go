package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"taste-of-aloha/internal/database"
	"taste-of-aloha/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

func fillDest(dest []any, m model.MenuItem) {
	*dest[0].(*int) = m.ID
	*dest[1].(*string) = m.Name
	*dest[2].(*string) = m.Description
	*dest[3].(*decimal.Decimal) = m.Price
	*dest[4].(**string) = m.Image
	*dest[5].(*string) = m.Category
	*dest[6].(*bool) = m.IsAvailable
	*dest[7].(*time.Time) = m.CreatedAt
}

// fakeRow 實作 pgx.Row
type fakeRow struct {
	scanErr error
	item    model.MenuItem
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if len(dest) != 8 {
		panic("fakeRow.Scan: unexpected dest count")
	}
	fillDest(dest, r.item)
	return nil
}

// fakeRows 實作 pgx.Rows
type fakeRows struct {
	data    []model.MenuItem
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	fillDest(dest, r.data[r.idx])
	r.idx++
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

/* ---------- 完整測試 ---------- */

func sampleItem() model.MenuItem {
	img := "https://example.com/musubi.png"
	return model.MenuItem{
		ID:          7,
		Name:        "Spam Musubi",
		Description: "Hawaiian classic",
		Price:       decimal.RequireFromString("4.99"),
		Image:       &img,
		Category:    model.DefaultCategory,
		IsAvailable: true,
		CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPostgresMenuStoreList(t *testing.T) {
	ctx := context.Background()
	sample := sampleItem()

	t.Run("ok", func(t *testing.T) {
		rows := &fakeRows{data: []model.MenuItem{sample, sample}}
		var gotArgs []any
		s := NewPostgresMenuStore(&database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "ORDER BY created_at DESC")
				gotArgs = args
				return rows, nil
			},
		})
		list, err := s.List(ctx, model.SnackCategory)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, []any{model.SnackCategory}, gotArgs)
		require.True(t, rows.closed)
	})

	t.Run("empty is non-nil", func(t *testing.T) {
		s := NewPostgresMenuStore(&database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return &fakeRows{}, nil },
		})
		list, err := s.List(ctx, "")
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Empty(t, list)
	})

	t.Run("query err", func(t *testing.T) {
		s := NewPostgresMenuStore(&database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("db down") },
		})
		_, err := s.List(ctx, "")
		require.ErrorContains(t, err, "db down")
	})

	t.Run("scan err", func(t *testing.T) {
		s := NewPostgresMenuStore(&database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeRows{data: []model.MenuItem{sample}, scanErr: errors.New("scan")}, nil
			},
		})
		_, err := s.List(ctx, "")
		require.Error(t, err)
	})

	t.Run("rows err", func(t *testing.T) {
		s := NewPostgresMenuStore(&database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeRows{err: errors.New("conn reset")}, nil
			},
		})
		_, err := s.List(ctx, "")
		require.ErrorContains(t, err, "conn reset")
	})
}

func TestPostgresMenuStoreGet(t *testing.T) {
	ctx := context.Background()
	sample := sampleItem()

	t.Run("ok", func(t *testing.T) {
		s := NewPostgresMenuStore(&database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{7, ""}, args)
				return &fakeRow{item: sample}
			},
		})
		got, err := s.Get(ctx, 7, "")
		require.NoError(t, err)
		require.Equal(t, sample, *got)
	})

	t.Run("no rows is not found", func(t *testing.T) {
		s := NewPostgresMenuStore(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeRow{scanErr: pgx.ErrNoRows} },
		})
		_, err := s.Get(ctx, 999, "")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other error propagates", func(t *testing.T) {
		s := NewPostgresMenuStore(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeRow{scanErr: errors.New("timeout")} },
		})
		_, err := s.Get(ctx, 1, "")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestPostgresMenuStoreCreate(t *testing.T) {
	ctx := context.Background()
	sample := sampleItem()

	t.Run("ok", func(t *testing.T) {
		var gotArgs []any
		s := NewPostgresMenuStore(&database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "INSERT INTO menu")
				gotArgs = args
				return &fakeRow{item: sample}
			},
		})
		in := sample
		in.ID = 0
		got, err := s.Create(ctx, in)
		require.NoError(t, err)
		require.Equal(t, 7, got.ID)
		require.Len(t, gotArgs, 6)
		require.Equal(t, "Spam Musubi", gotArgs[0])
		require.Equal(t, true, gotArgs[5])
	})

	t.Run("err", func(t *testing.T) {
		s := NewPostgresMenuStore(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeRow{scanErr: errors.New("constraint")} },
		})
		_, err := s.Create(ctx, sample)
		require.ErrorContains(t, err, "CreateMenuItem")
	})
}

func TestPostgresMenuStoreUpdate(t *testing.T) {
	ctx := context.Background()
	sample := sampleItem()

	t.Run("ok passes nil for omitted fields", func(t *testing.T) {
		name := "Updated Musubi"
		var gotArgs []any
		s := NewPostgresMenuStore(&database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "COALESCE")
				gotArgs = args
				m := sample
				m.Name = name
				return &fakeRow{item: m}
			},
		})
		got, err := s.Update(ctx, 7, "", model.MenuItemPatch{Name: &name})
		require.NoError(t, err)
		require.Equal(t, name, got.Name)
		require.Len(t, gotArgs, 8)
		require.Equal(t, &name, gotArgs[0])
		require.Nil(t, gotArgs[1])
		require.Nil(t, gotArgs[2])
		require.Equal(t, 7, gotArgs[6])
	})

	t.Run("missing is not found", func(t *testing.T) {
		s := NewPostgresMenuStore(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeRow{scanErr: pgx.ErrNoRows} },
		})
		_, err := s.Update(ctx, 999, "", model.MenuItemPatch{})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostgresMenuStoreDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		s := NewPostgresMenuStore(&database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{1, model.SnackCategory}, args)
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		})
		require.NoError(t, s.Delete(ctx, 1, model.SnackCategory))
	})

	t.Run("zero rows is not found", func(t *testing.T) {
		s := NewPostgresMenuStore(&database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		})
		require.ErrorIs(t, s.Delete(ctx, 1, ""), ErrNotFound)
	})

	t.Run("exec err", func(t *testing.T) {
		s := NewPostgresMenuStore(&database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("fail delete")
			},
		})
		err := s.Delete(ctx, 1, "")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestPostgresMenuStoreDeleteByName(t *testing.T) {
	ctx := context.Background()
	s := NewPostgresMenuStore(&database.FakeDB{
		ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			require.Equal(t, []any{"Garlic Shrimp"}, args)
			return pgconn.NewCommandTag("DELETE 2"), nil
		},
	})
	n, err := s.DeleteByName(ctx, "Garlic Shrimp")
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	s = NewPostgresMenuStore(&database.FakeDB{
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("x")
		},
	})
	_, err = s.DeleteByName(ctx, "x")
	require.Error(t, err)
}
