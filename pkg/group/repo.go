package group

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (*Group, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, title, slug, description FROM groups WHERE slug=$1", slug)
	return scanGroup(row)
}

func (r *Repo) GetById(ctx context.Context, id int64) (*Group, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, title, slug, description FROM groups WHERE id=$1", id)
	return scanGroup(row)
}

func scanGroup(row *sql.Row) (*Group, error) {
	g := new(Group)
	if err := row.Scan(&g.Id, &g.Title, &g.Slug, &g.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("group/repo: row scan failed: %w", err)
	}
	return g, nil
}

// GetAll lists groups for the post form's choices.
func (r *Repo) GetAll(ctx context.Context) ([]*Group, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, title, slug, description FROM groups ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("group/repo: failed getting groups: %w", err)
	}
	defer rows.Close()

	groups := []*Group{}
	for rows.Next() {
		g := new(Group)
		if err := rows.Scan(&g.Id, &g.Title, &g.Slug, &g.Description); err != nil {
			return nil, fmt.Errorf("group/repo: could not scan row: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// Groups are created out of band: by seed data and tests.
func (r *Repo) Add(ctx context.Context, g *Group) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO groups(title, slug, description) VALUES($1, $2, $3) RETURNING id",
		g.Title, g.Slug, g.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("group/repo: group wasn't added: %w", err)
	}
	return id, nil
}

// Delete removes the group, posts referencing it keep living with no group.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM groups WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("group/repo: delete failed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("group/repo: delete failed: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
