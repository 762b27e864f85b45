package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"yatube/pkg/group"
	"yatube/pkg/user"
)

const selectPosts = `
	SELECT p.id, p.text, p.pub_date, p.image,
		u.id, u.username,
		g.id, g.title, g.slug, g.description
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id`

type Repo struct {
	db *sql.DB
}

func NewPostRepo(db *sql.DB) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns one window of the feed, newest first.
func (r *Repo) List(ctx context.Context, f Filter, limit, offset int) ([]*Post, error) {
	where, args := f.where()
	args = append(args, limit, offset)
	q := selectPosts + where +
		" ORDER BY p.pub_date DESC, p.id DESC" +
		" LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("post/repo: failed listing posts: %w", err)
	}
	defer rows.Close()

	posts := []*Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *Repo) Count(ctx context.Context, f Filter) (int, error) {
	where, args := f.where()
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM posts p"+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("post/repo: count failed: %w", err)
	}
	return n, nil
}

// GetById loads the post together with its author and group.
func (r *Repo) GetById(ctx context.Context, id int64) (*Post, error) {
	row := r.db.QueryRowContext(ctx, selectPosts+" WHERE p.id=$1", id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Add stores a new post and fills its id and publication date.
func (r *Repo) Add(ctx context.Context, p *Post) (int64, error) {
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO posts(text, author_id, group_id, image) VALUES($1, $2, $3, $4) RETURNING id, pub_date",
		p.Text, p.Author.Id, groupID(p), p.Image).Scan(&p.Id, &p.PubDate)
	if err != nil {
		return 0, fmt.Errorf("post/repo: post wasn't added: %w", err)
	}
	return p.Id, nil
}

// Update saves editable fields. pub_date is set once on insert and never touched here.
func (r *Repo) Update(ctx context.Context, p *Post) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE posts SET text=$1, author_id=$2, group_id=$3, image=$4 WHERE id=$5",
		p.Text, p.Author.Id, groupID(p), p.Image, p.Id)
	if err != nil {
		return fmt.Errorf("post/repo: update failed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("post/repo: update failed: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("post/repo: delete failed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("post/repo: delete failed: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (f Filter) where() (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	if f.GroupID != 0 {
		args = append(args, f.GroupID)
		conds = append(conds, "p.group_id=$"+strconv.Itoa(len(args)))
	}
	if f.AuthorID != 0 {
		args = append(args, f.AuthorID)
		conds = append(conds, "p.author_id=$"+strconv.Itoa(len(args)))
	}
	if f.FollowerID != 0 {
		args = append(args, f.FollowerID)
		conds = append(conds, "p.author_id IN (SELECT author_id FROM follows WHERE user_id=$"+strconv.Itoa(len(args))+")")
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row scanner) (*Post, error) {
	var (
		p      = &Post{Author: new(user.User)}
		gId    sql.NullInt64
		gTitle sql.NullString
		gSlug  sql.NullString
		gDesc  sql.NullString
	)
	err := row.Scan(&p.Id, &p.Text, &p.PubDate, &p.Image,
		&p.Author.Id, &p.Author.Username,
		&gId, &gTitle, &gSlug, &gDesc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("post/repo: could not scan row: %w", err)
	}
	if gId.Valid {
		p.Group = &group.Group{Id: gId.Int64, Title: gTitle.String, Slug: gSlug.String, Description: gDesc.String}
	}
	return p, nil
}

func groupID(p *Post) interface{} {
	if p.Group == nil {
		return nil
	}
	return p.Group.Id
}
