package post

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"yatube/pkg/comment"
	. "yatube/pkg/common"
	"yatube/pkg/group"
	"yatube/pkg/logger"
	"yatube/pkg/paginator"
	"yatube/pkg/render"
	"yatube/pkg/sessions"
	"yatube/pkg/user"
)

type (
	IPostRepo interface {
		List(ctx context.Context, f Filter, limit, offset int) ([]*Post, error)
		Count(context.Context, Filter) (int, error)
		GetById(context.Context, int64) (*Post, error)
	}

	IGroupRepo interface {
		GetBySlug(context.Context, string) (*group.Group, error)
		GetAll(context.Context) ([]*group.Group, error)
	}

	IUserRepo interface {
		GetByUsername(context.Context, string) (*user.User, error)
	}

	ICommentRepo interface {
		GetByPost(context.Context, int64) ([]*comment.Comment, error)
	}

	IFollowRepo interface {
		Exists(ctx context.Context, userId, authorId int64) (bool, error)
	}

	IRenderer interface {
		HTML(w http.ResponseWriter, r *http.Request, status int, name string, data interface{})
		NotFound(http.ResponseWriter, *http.Request)
		ServerError(http.ResponseWriter, *http.Request)
	}

	PostHandler struct {
		Posts          IPostRepo
		Groups         IGroupRepo
		Users          IUserRepo
		Comments       ICommentRepo
		Follows        IFollowRepo
		Service        *Service
		Render         IRenderer
		MaxUploadBytes int64
	}
)

func NewPostHandler(posts IPostRepo, groups IGroupRepo, users IUserRepo, comments ICommentRepo,
	follows IFollowRepo, service *Service, rn IRenderer, maxUploadBytes int64) *PostHandler {
	return &PostHandler{
		Posts:          posts,
		Groups:         groups,
		Users:          users,
		Comments:       comments,
		Follows:        follows,
		Service:        service,
		Render:         rn,
		MaxUploadBytes: maxUploadBytes,
	}
}

type pageData struct {
	Viewer    *user.User
	Page      *paginator.Page
	Posts     []*Post
	Group     *group.Group
	Author    *user.User
	PostCount int
	Following bool
	Post      *Post
	Comments  []*comment.Comment
	Form      interface{}
	Groups    []*group.Group
	IsEdit    bool
}

func (ph *PostHandler) feed(ctx context.Context, f Filter, rawPage string) (*paginator.Page, []*Post, error) {
	total, err := ph.Posts.Count(ctx, f)
	if err != nil {
		return nil, nil, err
	}
	page := paginator.New(total, rawPage)
	posts, err := ph.Posts.List(ctx, f, page.Limit(), page.Offset())
	if err != nil {
		return nil, nil, err
	}
	return page, posts, nil
}

// Index is the home feed. The router puts the page cache in front of it.
func (ph *PostHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, posts, err := ph.feed(r.Context(), Filter{}, r.URL.Query().Get("page"))
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load the feed: %v", err)
		ph.Render.ServerError(w, r)
		return
	}
	ph.Render.HTML(w, r, http.StatusOK, "index.html", pageData{
		Viewer: render.Viewer(r),
		Page:   page,
		Posts:  posts,
	})
}

func (ph *PostHandler) GroupPosts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	g, err := ph.Groups.GetBySlug(r.Context(), slug)
	if errors.Is(err, group.ErrNotFound) {
		ph.Render.NotFound(w, r)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load group %s: %v", slug, err)
		ph.Render.ServerError(w, r)
		return
	}

	page, posts, err := ph.feed(r.Context(), Filter{GroupID: g.Id}, r.URL.Query().Get("page"))
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load posts of group %s: %v", slug, err)
		ph.Render.ServerError(w, r)
		return
	}
	ph.Render.HTML(w, r, http.StatusOK, "group_list.html", pageData{
		Viewer: render.Viewer(r),
		Page:   page,
		Posts:  posts,
		Group:  g,
	})
}

func (ph *PostHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	author, err := ph.Users.GetByUsername(r.Context(), username)
	if errors.Is(err, user.ErrNotFound) {
		ph.Render.NotFound(w, r)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load user `%s`: %v", username, err)
		ph.Render.ServerError(w, r)
		return
	}

	page, posts, err := ph.feed(r.Context(), Filter{AuthorID: author.Id}, r.URL.Query().Get("page"))
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load user `%s` posts: %v", username, err)
		ph.Render.ServerError(w, r)
		return
	}

	data := pageData{
		Viewer:    render.Viewer(r),
		Page:      page,
		Posts:     posts,
		Author:    author,
		PostCount: page.Total,
	}
	if data.Viewer != nil {
		data.Following, err = ph.Follows.Exists(r.Context(), data.Viewer.Id, author.Id)
		if err != nil {
			logger.Log(r.Context()).Errorf("can't check follow %d -> %d: %v", data.Viewer.Id, author.Id, err)
			ph.Render.ServerError(w, r)
			return
		}
	}
	ph.Render.HTML(w, r, http.StatusOK, "profile.html", data)
}

// loadPost resolves {post_id}, answering 404 or 500 itself when it can't.
func (ph *PostHandler) loadPost(w http.ResponseWriter, r *http.Request) (*Post, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["post_id"], 10, 64)
	if err != nil {
		ph.Render.NotFound(w, r)
		return nil, false
	}
	p, err := ph.Posts.GetById(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		ph.Render.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't get post with id %d: %v", id, err)
		ph.Render.ServerError(w, r)
		return nil, false
	}
	return p, true
}

func (ph *PostHandler) Detail(w http.ResponseWriter, r *http.Request) {
	p, ok := ph.loadPost(w, r)
	if !ok {
		return
	}

	count, err := ph.Posts.Count(r.Context(), Filter{AuthorID: p.Author.Id})
	if err != nil {
		logger.Log(r.Context()).Errorf("can't count posts of author %d: %v", p.Author.Id, err)
		ph.Render.ServerError(w, r)
		return
	}
	comments, err := ph.Comments.GetByPost(r.Context(), p.Id)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load comments of post %d: %v", p.Id, err)
		ph.Render.ServerError(w, r)
		return
	}

	ph.Render.HTML(w, r, http.StatusOK, "post_detail.html", pageData{
		Viewer:    render.Viewer(r),
		Post:      p,
		PostCount: count,
		Comments:  comments,
		Form:      &CommentForm{},
	})
}

func (ph *PostHandler) renderForm(w http.ResponseWriter, r *http.Request, form *PostForm, isEdit bool) {
	groups, err := ph.Groups.GetAll(r.Context())
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load groups: %v", err)
		ph.Render.ServerError(w, r)
		return
	}
	ph.Render.HTML(w, r, http.StatusOK, "create_post.html", pageData{
		Viewer: render.Viewer(r),
		Form:   form,
		Groups: groups,
		IsEdit: isEdit,
	})
}

func (ph *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	author, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		Redirect(w, r, LoginURL(r.URL.RequestURI()))
		return
	}

	if r.Method != http.MethodPost {
		ph.renderForm(w, r, &PostForm{}, false)
		return
	}

	form, err := ParsePostForm(w, r, ph.MaxUploadBytes)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't parse post form: %v", err)
		ph.Render.ServerError(w, r)
		return
	}
	_, outcome, err := ph.Service.Create(r.Context(), author, form)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't add post: %v", err)
		ph.Render.ServerError(w, r)
		return
	}
	if outcome == OutcomeInvalid {
		ph.renderForm(w, r, form, false)
		return
	}

	Redirect(w, r, ProfileURL(author.Username))
}

func (ph *PostHandler) Edit(w http.ResponseWriter, r *http.Request) {
	editor, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		Redirect(w, r, LoginURL(r.URL.RequestURI()))
		return
	}
	p, ok := ph.loadPost(w, r)
	if !ok {
		return
	}
	if p.Author.Id != editor.Id {
		Redirect(w, r, PostURL(p.Id))
		return
	}

	if r.Method != http.MethodPost {
		form := &PostForm{Text: p.Text, CurrentImage: p.Image}
		if p.Group != nil {
			form.GroupID = p.Group.Id
		}
		ph.renderForm(w, r, form, true)
		return
	}

	form, err := ParsePostForm(w, r, ph.MaxUploadBytes)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't parse post form: %v", err)
		ph.Render.ServerError(w, r)
		return
	}
	form.CurrentImage = p.Image

	outcome, err := ph.Service.Edit(r.Context(), editor, p, form)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't update post %d: %v", p.Id, err)
		ph.Render.ServerError(w, r)
		return
	}
	switch outcome {
	case OutcomeInvalid:
		ph.renderForm(w, r, form, true)
	default:
		Redirect(w, r, PostURL(p.Id))
	}
}

// AddComment never renders: valid or not, the visitor goes back to the post.
func (ph *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	commenter, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		Redirect(w, r, LoginURL(r.URL.RequestURI()))
		return
	}
	p, ok := ph.loadPost(w, r)
	if !ok {
		return
	}

	form, err := ParseCommentForm(r)
	if err != nil {
		logger.Log(r.Context()).Debugf("can't parse comment form: %v", err)
		Redirect(w, r, PostURL(p.Id))
		return
	}
	_, outcome, err := ph.Service.Comment(r.Context(), commenter, p, form)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't add comment to post %d: %v", p.Id, err)
		ph.Render.ServerError(w, r)
		return
	}
	if outcome == OutcomeInvalid {
		logger.Log(r.Context()).Debugf("comment to post %d dropped: %v", p.Id, form.Errors)
	}

	Redirect(w, r, PostURL(p.Id))
}

func (ph *PostHandler) FollowIndex(w http.ResponseWriter, r *http.Request) {
	viewer, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		Redirect(w, r, LoginURL(r.URL.RequestURI()))
		return
	}

	page, posts, err := ph.feed(r.Context(), Filter{FollowerID: viewer.Id}, r.URL.Query().Get("page"))
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load follow feed of user %d: %v", viewer.Id, err)
		ph.Render.ServerError(w, r)
		return
	}
	ph.Render.HTML(w, r, http.StatusOK, "follow.html", pageData{
		Viewer: viewer,
		Page:   page,
		Posts:  posts,
	})
}
