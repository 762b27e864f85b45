package follow

// Follow is a directed subscription edge: UserId reads AuthorId.
type Follow struct {
	Id       int64 `json:"id"`
	UserId   int64 `json:"user_id"`
	AuthorId int64 `json:"author_id"`
}
