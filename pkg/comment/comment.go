package comment

import (
	"time"

	"yatube/pkg/user"
)

type Comment struct {
	Id      int64      `json:"id"`
	PostId  int64      `json:"post_id"`
	Author  *user.User `json:"author"`
	Text    string     `json:"text"`
	Created time.Time  `json:"created"`
}
