package post

import (
	"errors"
	"time"

	"yatube/pkg/group"
	"yatube/pkg/user"
)

type Post struct {
	Id      int64        `json:"id"`
	Text    string       `json:"text"`
	PubDate time.Time    `json:"pub_date"`
	Author  *user.User   `json:"author"`
	Group   *group.Group `json:"group,omitempty"`

	// Image is a media path like "posts/cat.png", empty when there is none.
	Image string `json:"image,omitempty"`
}

var ErrNotFound = errors.New("post/repo: post not found")

// Filter narrows a feed. Zero fields are ignored.
type Filter struct {
	GroupID    int64
	AuthorID   int64
	FollowerID int64
}
