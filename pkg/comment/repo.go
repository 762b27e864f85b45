package comment

import (
	"context"
	"database/sql"
	"fmt"

	"yatube/pkg/user"
)

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Add stores the comment and fills its id and creation time.
func (r *Repo) Add(ctx context.Context, c *Comment) error {
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO comments(post_id, author_id, text) VALUES($1, $2, $3) RETURNING id, created",
		c.PostId, c.Author.Id, c.Text).Scan(&c.Id, &c.Created)
	if err != nil {
		return fmt.Errorf("comment/repo: comment wasn't added: %w", err)
	}
	return nil
}

// GetByPost returns the post's comments in insertion order.
func (r *Repo) GetByPost(ctx context.Context, postId int64) ([]*Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.post_id, c.text, c.created, u.id, u.username
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id=$1
		ORDER BY c.id`, postId)
	if err != nil {
		return nil, fmt.Errorf("comment/repo: failed getting comments of post %d: %w", postId, err)
	}
	defer rows.Close()

	comments := []*Comment{}
	for rows.Next() {
		c := &Comment{Author: new(user.User)}
		if err := rows.Scan(&c.Id, &c.PostId, &c.Text, &c.Created, &c.Author.Id, &c.Author.Username); err != nil {
			return nil, fmt.Errorf("comment/repo: could not scan row: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
