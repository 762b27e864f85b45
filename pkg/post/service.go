package post

import (
	"context"
	"fmt"

	"yatube/pkg/comment"
	"yatube/pkg/user"
)

// Outcome tells the handler how a write ended when nothing went wrong
// with the storage itself.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeForbidden
	OutcomeInvalid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeForbidden:
		return "forbidden"
	case OutcomeInvalid:
		return "invalid"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

type (
	IPostWriter interface {
		Add(context.Context, *Post) (int64, error)
		Update(context.Context, *Post) error
	}

	ICommentWriter interface {
		Add(context.Context, *comment.Comment) error
	}

	IMediaStorage interface {
		Save(ctx context.Context, filename string, data []byte) (string, error)
	}

	Service struct {
		Posts    IPostWriter
		Groups   IGroupGetter
		Comments ICommentWriter
		Media    IMediaStorage
	}
)

func NewService(posts IPostWriter, groups IGroupGetter, comments ICommentWriter, media IMediaStorage) *Service {
	return &Service{
		Posts:    posts,
		Groups:   groups,
		Comments: comments,
		Media:    media,
	}
}

// Create stores a new post written by author.
func (s *Service) Create(ctx context.Context, author *user.User, form *PostForm) (*Post, Outcome, error) {
	ok, err := form.Valid(ctx, s.Groups)
	if err != nil {
		return nil, OutcomeOK, fmt.Errorf("post/service: validation failed: %w", err)
	}
	if !ok {
		return nil, OutcomeInvalid, nil
	}

	p := &Post{Text: form.Text, Author: author, Group: form.group}
	if form.Image != nil {
		if p.Image, err = s.Media.Save(ctx, form.Image.Filename, form.Image.Data); err != nil {
			return nil, OutcomeOK, fmt.Errorf("post/service: %w", err)
		}
	}

	if _, err := s.Posts.Add(ctx, p); err != nil {
		return nil, OutcomeOK, err
	}
	return p, OutcomeOK, nil
}

// Edit applies the form to p. Only the author may edit, and the author is
// written back as editor on every save.
func (s *Service) Edit(ctx context.Context, editor *user.User, p *Post, form *PostForm) (Outcome, error) {
	if p.Author == nil || p.Author.Id != editor.Id {
		return OutcomeForbidden, nil
	}

	ok, err := form.Valid(ctx, s.Groups)
	if err != nil {
		return OutcomeOK, fmt.Errorf("post/service: validation failed: %w", err)
	}
	if !ok {
		return OutcomeInvalid, nil
	}

	updated := *p
	updated.Text = form.Text
	updated.Group = form.group
	updated.Author = editor
	switch {
	case form.Image != nil:
		if updated.Image, err = s.Media.Save(ctx, form.Image.Filename, form.Image.Data); err != nil {
			return OutcomeOK, fmt.Errorf("post/service: %w", err)
		}
	case form.ClearImage:
		updated.Image = ""
	}

	if err := s.Posts.Update(ctx, &updated); err != nil {
		return OutcomeOK, err
	}
	*p = updated
	return OutcomeOK, nil
}

// Comment adds author's comment to p. An invalid form stores nothing.
func (s *Service) Comment(ctx context.Context, author *user.User, p *Post, form *CommentForm) (*comment.Comment, Outcome, error) {
	if !form.Valid() {
		return nil, OutcomeInvalid, nil
	}
	c := &comment.Comment{PostId: p.Id, Author: author, Text: form.Text}
	if err := s.Comments.Add(ctx, c); err != nil {
		return nil, OutcomeOK, err
	}
	return c, OutcomeOK, nil
}

