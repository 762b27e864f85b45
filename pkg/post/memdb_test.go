package post

import (
	"context"
	"sort"
	"sync"
	"time"

	"yatube/pkg/comment"
	"yatube/pkg/group"
	"yatube/pkg/media"
	"yatube/pkg/user"
)

// memDB keeps the relational model in memory, with the same delete
// rules as the SQL schema.
type memDB struct {
	mu       sync.Mutex
	lastID   int64
	clock    time.Time
	users    []*user.User
	groups   []*group.Group
	posts    []Post
	comments []*comment.Comment
	follows  map[[2]int64]bool
	media    map[string][]byte
}

func newMemDB() *memDB {
	return &memDB{
		clock:   time.Date(2022, 9, 1, 12, 0, 0, 0, time.UTC),
		follows: map[[2]int64]bool{},
		media:   map[string][]byte{},
	}
}

func (db *memDB) id() int64 {
	db.lastID++
	return db.lastID
}

func (db *memDB) tick() time.Time {
	db.clock = db.clock.Add(time.Minute)
	return db.clock
}

func (db *memDB) addUser(name string) *user.User {
	db.mu.Lock()
	defer db.mu.Unlock()
	u := &user.User{Id: db.id(), Username: name}
	db.users = append(db.users, u)
	return u
}

func (db *memDB) addGroup(title, slug string) *group.Group {
	db.mu.Lock()
	defer db.mu.Unlock()
	g := &group.Group{Id: db.id(), Title: title, Slug: slug}
	db.groups = append(db.groups, g)
	return g
}

func (db *memDB) addPost(text string, author *user.User, g *group.Group) *Post {
	p := &Post{Text: text, Author: author, Group: g}
	memPosts{db}.Add(context.Background(), p)
	return p
}

// deleteGroup nullifies the group of its posts.
func (db *memDB) deleteGroup(id int64) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, g := range db.groups {
		if g.Id == id {
			db.groups = append(db.groups[:i], db.groups[i+1:]...)
			break
		}
	}
	for i := range db.posts {
		if db.posts[i].Group != nil && db.posts[i].Group.Id == id {
			db.posts[i].Group = nil
		}
	}
}

func (db *memDB) follow(u, author *user.User) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.follows[[2]int64{u.Id, author.Id}] = true
}

func (db *memDB) post(id int64) *Post {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, p := range db.posts {
		if p.Id == id {
			cp := p
			return &cp
		}
	}
	return nil
}

func (db *memDB) postCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.posts)
}

func (db *memDB) commentsOf(postId int64) []*comment.Comment {
	db.mu.Lock()
	defer db.mu.Unlock()
	var res []*comment.Comment
	for _, c := range db.comments {
		if c.PostId == postId {
			res = append(res, c)
		}
	}
	return res
}

type memPosts struct{ *memDB }

func (m memPosts) match(p Post, f Filter) bool {
	if f.GroupID != 0 && (p.Group == nil || p.Group.Id != f.GroupID) {
		return false
	}
	if f.AuthorID != 0 && p.Author.Id != f.AuthorID {
		return false
	}
	if f.FollowerID != 0 && !m.follows[[2]int64{f.FollowerID, p.Author.Id}] {
		return false
	}
	return true
}

func (m memPosts) List(_ context.Context, f Filter, limit, offset int) ([]*Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []*Post
	for _, p := range m.posts {
		if m.match(p, f) {
			cp := p
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].PubDate.Equal(res[j].PubDate) {
			return res[i].Id > res[j].Id
		}
		return res[i].PubDate.After(res[j].PubDate)
	})
	if offset > len(res) {
		return []*Post{}, nil
	}
	res = res[offset:]
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (m memPosts) Count(_ context.Context, f Filter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.posts {
		if m.match(p, f) {
			n++
		}
	}
	return n, nil
}

func (m memPosts) GetById(_ context.Context, id int64) (*Post, error) {
	if p := m.post(id); p != nil {
		return p, nil
	}
	return nil, ErrNotFound
}

func (m memPosts) Add(_ context.Context, p *Post) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.Id = m.id()
	p.PubDate = m.tick()
	m.posts = append(m.posts, *p)
	return p.Id, nil
}

func (m memPosts) Update(_ context.Context, p *Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.posts {
		if m.posts[i].Id == p.Id {
			pubDate := m.posts[i].PubDate
			m.posts[i] = *p
			m.posts[i].PubDate = pubDate
			return nil
		}
	}
	return ErrNotFound
}

type memGroups struct{ *memDB }

func (m memGroups) GetBySlug(_ context.Context, slug string) (*group.Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.groups {
		if g.Slug == slug {
			return g, nil
		}
	}
	return nil, group.ErrNotFound
}

func (m memGroups) GetById(_ context.Context, id int64) (*group.Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.groups {
		if g.Id == id {
			return g, nil
		}
	}
	return nil, group.ErrNotFound
}

func (m memGroups) GetAll(context.Context) ([]*group.Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*group.Group{}, m.groups...), nil
}

type memUsers struct{ *memDB }

func (m memUsers) GetByUsername(_ context.Context, name string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == name {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

type memComments struct{ *memDB }

func (m memComments) Add(_ context.Context, c *comment.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.Id = m.id()
	c.Created = m.tick()
	m.comments = append(m.comments, c)
	return nil
}

func (m memComments) GetByPost(_ context.Context, postId int64) ([]*comment.Comment, error) {
	return m.commentsOf(postId), nil
}

type memFollows struct{ *memDB }

func (m memFollows) Exists(_ context.Context, userId, authorId int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.follows[[2]int64{userId, authorId}], nil
}

type memMedia struct{ *memDB }

func (m memMedia) Save(_ context.Context, filename string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name := media.UploadDir + "/" + filename
	m.media[name] = data
	return name, nil
}
