package main

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/jaswdr/faker"

	"yatube/pkg/comment"
	. "yatube/pkg/common"
	"yatube/pkg/group"
	"yatube/pkg/post"
	"yatube/pkg/user"
)

var (
	f             = faker.New()
	onePassForAll = HashPass("sdfsdfsdf", RandStringRunes(8)) // salt must have len of 8
)

type (
	IUserRepo interface {
		Add(context.Context, *user.User) (int64, error)
		GetAll(context.Context) ([]*user.User, error)
	}

	IGroupRepo interface {
		Add(context.Context, *group.Group) (int64, error)
		GetAll(context.Context) ([]*group.Group, error)
	}

	IPostRepo interface {
		Add(context.Context, *post.Post) (int64, error)
	}

	ICommentRepo interface {
		Add(context.Context, *comment.Comment) error
	}

	IFollowRepo interface {
		Add(ctx context.Context, userId, authorId int64) (bool, error)
	}
)

func createAuthors(ctx context.Context, userRepo IUserRepo) ([]*user.User, error) {
	// User for experiments (not random)
	pike := &user.User{Username: "pike", Password: onePassForAll}
	id, err := userRepo.Add(ctx, pike)
	if err != nil {
		return nil, fmt.Errorf("seed: can't create default user: %w", err)
	}
	pike.Id = id

	authors := []*user.User{pike}
	for i := 1; i <= 5; i++ {
		u := &user.User{
			Username: strings.ToLower(f.Person().FirstName()) + strconv.Itoa(i),
			Password: onePassForAll,
		}
		if u.Id, err = userRepo.Add(ctx, u); err != nil {
			return nil, fmt.Errorf("seed: can't add user: %w", err)
		}
		authors = append(authors, u)
	}
	return authors, nil
}

func createGroups(ctx context.Context, groupRepo IGroupRepo) ([]*group.Group, error) {
	groups := []*group.Group{}
	for i, title := range []string{"Programming", "Music", "Travel"} {
		g := &group.Group{
			Title:       title,
			Slug:        strings.ToLower(title) + "-" + strconv.Itoa(i+1),
			Description: f.Lorem().Sentence(8),
		}
		id, err := groupRepo.Add(ctx, g)
		if err != nil {
			return nil, fmt.Errorf("seed: can't add group: %w", err)
		}
		g.Id = id
		groups = append(groups, g)
	}
	return groups, nil
}

// seed fills an empty database with fake authors and groups, then adds
// a batch of posts with comments on every run.
func seed(ctx context.Context, userRepo IUserRepo, groupRepo IGroupRepo,
	postRepo IPostRepo, commentRepo ICommentRepo, followRepo IFollowRepo) error {
	authors, err := userRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: can't get all authors: %w", err)
	}
	if len(authors) == 0 {
		if authors, err = createAuthors(ctx, userRepo); err != nil {
			return err
		}
		// pike follows everybody so /follow/ is not empty
		for _, a := range authors[1:] {
			if _, err := followRepo.Add(ctx, authors[0].Id, a.Id); err != nil {
				return fmt.Errorf("seed: can't add follow: %w", err)
			}
		}
	}

	groups, err := groupRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: can't get all groups: %w", err)
	}
	if len(groups) == 0 {
		if groups, err = createGroups(ctx, groupRepo); err != nil {
			return err
		}
	}

	for i := 0; i < 15; i++ {
		p := genPost(authors, groups)
		if p.Id, err = postRepo.Add(ctx, p); err != nil {
			return fmt.Errorf("seed: can't add post: %w", err)
		}
		for _, c := range genComments(p.Id, authors) {
			if err := commentRepo.Add(ctx, c); err != nil {
				return fmt.Errorf("seed: can't add comment: %w", err)
			}
		}
	}
	return nil
}

func genText() string {
	return f.Lorem().Paragraph(rand.Intn(3) + 2)
}

func genPost(users []*user.User, groups []*group.Group) *post.Post {
	p := &post.Post{
		Author: randUser(users),
		Text:   genText(),
	}
	// Roughly a third of posts stay outside of any group.
	if n := rand.Intn(len(groups) + 2); n < len(groups) {
		p.Group = groups[n]
	}
	return p
}

func genComments(postId int64, users []*user.User) []*comment.Comment {
	n := rand.Intn(4)
	comments := []*comment.Comment{}
	for i := 0; i < n; i++ {
		comments = append(comments, &comment.Comment{
			PostId: postId,
			Author: randUser(users),
			Text:   f.Lorem().Sentence(rand.Intn(10) + 3),
		})
	}
	return comments
}

func randUser(users []*user.User) *user.User {
	return users[rand.Intn(len(users))]
}
