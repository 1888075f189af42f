package store

import (
	"context"
	"errors"
	"fmt"

	"taste-of-aloha/internal/database"
	"taste-of-aloha/internal/model"

	"github.com/jackc/pgx/v5"
)

const menuColumns = `id, name, description, price, image, category, is_available, created_at`

// PostgresMenuStore 以 pgx 存取 menu 資料表
type PostgresMenuStore struct {
	db database.DB
}

func NewPostgresMenuStore(db database.DB) *PostgresMenuStore {
	return &PostgresMenuStore{db: db}
}

func (s *PostgresMenuStore) List(ctx context.Context, category string) ([]model.MenuItem, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+menuColumns+`
		 FROM menu
		 WHERE ($1::text = '' OR category = $1)
		 ORDER BY created_at DESC, id DESC`,
		category,
	)
	if err != nil {
		return nil, fmt.Errorf("ListMenuItems: %w", err)
	}
	defer rows.Close()

	items := make([]model.MenuItem, 0)
	for rows.Next() {
		var m model.MenuItem
		if err := scanMenuItem(rows, &m); err != nil {
			return nil, fmt.Errorf("ListMenuItems: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListMenuItems: %w", err)
	}
	return items, nil
}

func (s *PostgresMenuStore) Get(ctx context.Context, id int, category string) (*model.MenuItem, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+menuColumns+`
		 FROM menu
		 WHERE id = $1 AND ($2::text = '' OR category = $2)`,
		id, category,
	)
	m := &model.MenuItem{}
	if err := scanMenuItem(row, m); err != nil {
		return nil, fmt.Errorf("GetMenuItem: %w", translate(err))
	}
	return m, nil
}

func (s *PostgresMenuStore) Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO menu (name, description, price, image, category, is_available)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+menuColumns,
		item.Name,
		item.Description,
		item.Price,
		item.Image,
		item.Category,
		item.IsAvailable,
	)
	m := &model.MenuItem{}
	if err := scanMenuItem(row, m); err != nil {
		return nil, fmt.Errorf("CreateMenuItem: %w", err)
	}
	return m, nil
}

// Update 以 COALESCE 合併部分欄位，NULL 參數代表保留原值
func (s *PostgresMenuStore) Update(ctx context.Context, id int, category string, p model.MenuItemPatch) (*model.MenuItem, error) {
	row := s.db.QueryRow(ctx,
		`UPDATE menu SET
		     name = COALESCE($1, name),
		     description = COALESCE($2, description),
		     price = COALESCE($3, price),
		     image = COALESCE($4, image),
		     category = COALESCE($5, category),
		     is_available = COALESCE($6, is_available)
		 WHERE id = $7 AND ($8::text = '' OR category = $8)
		 RETURNING `+menuColumns,
		p.Name,
		p.Description,
		p.Price,
		p.Image,
		p.Category,
		p.IsAvailable,
		id,
		category,
	)
	m := &model.MenuItem{}
	if err := scanMenuItem(row, m); err != nil {
		return nil, fmt.Errorf("UpdateMenuItem: %w", translate(err))
	}
	return m, nil
}

func (s *PostgresMenuStore) Delete(ctx context.Context, id int, category string) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM menu WHERE id = $1 AND ($2::text = '' OR category = $2)`,
		id, category,
	)
	if err != nil {
		return fmt.Errorf("DeleteMenuItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteMenuItem: %w", ErrNotFound)
	}
	return nil
}

func (s *PostgresMenuStore) DeleteByName(ctx context.Context, name string) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM menu WHERE name = $1`, name)
	if err != nil {
		return 0, fmt.Errorf("DeleteMenuItemsByName: %w", err)
	}
	return tag.RowsAffected(), nil
}

func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// internal helper
func scanMenuItem(row pgx.Row, m *model.MenuItem) error {
	return row.Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&m.Price,
		&m.Image,
		&m.Category,
		&m.IsAvailable,
		&m.CreatedAt,
	)
}
