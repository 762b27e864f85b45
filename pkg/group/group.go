package group

import "errors"

type Group struct {
	Id          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

var ErrNotFound = errors.New("group/repo: group not found")
