package follow

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrSelfFollow = errors.New("follow/repo: user can't follow themselves")

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Add creates the edge in one statement. An existing edge is not an error,
// created reports whether a new row appeared.
func (r *Repo) Add(ctx context.Context, userId, authorId int64) (bool, error) {
	if userId == authorId {
		return false, ErrSelfFollow
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO follows(user_id, author_id) VALUES($1, $2) ON CONFLICT (user_id, author_id) DO NOTHING",
		userId, authorId)
	if err != nil {
		return false, fmt.Errorf("follow/repo: follow wasn't added: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("follow/repo: follow wasn't added: %w", err)
	}
	return n > 0, nil
}

// Delete removes the edge if present. Removing a missing edge is a no-op.
func (r *Repo) Delete(ctx context.Context, userId, authorId int64) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM follows WHERE user_id=$1 AND author_id=$2", userId, authorId); err != nil {
		return fmt.Errorf("follow/repo: delete failed: %w", err)
	}
	return nil
}

func (r *Repo) Exists(ctx context.Context, userId, authorId int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM follows WHERE user_id=$1 AND author_id=$2)",
		userId, authorId).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("follow/repo: exists check failed: %w", err)
	}
	return exists, nil
}
