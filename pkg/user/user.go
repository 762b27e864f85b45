package user

import "errors"

type User struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Password []byte `json:"-"`
}

var (
	ErrNotFound    = errors.New("user/repo: user not found")
	ErrBadPassword = errors.New("user/repo: password is invalid")
)
