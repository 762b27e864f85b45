package follow

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	. "yatube/pkg/common"
	"yatube/pkg/logger"
	"yatube/pkg/sessions"
	"yatube/pkg/user"
)

type (
	IUserRepo interface {
		GetByUsername(context.Context, string) (*user.User, error)
	}

	IFollowRepo interface {
		Add(ctx context.Context, userId, authorId int64) (bool, error)
		Delete(ctx context.Context, userId, authorId int64) error
	}

	IRenderer interface {
		NotFound(http.ResponseWriter, *http.Request)
		ServerError(http.ResponseWriter, *http.Request)
	}

	FollowHandler struct {
		Users   IUserRepo
		Follows IFollowRepo
		Render  IRenderer
	}
)

func NewFollowHandler(users IUserRepo, follows IFollowRepo, rn IRenderer) *FollowHandler {
	return &FollowHandler{
		Users:   users,
		Follows: follows,
		Render:  rn,
	}
}

// target resolves {username} for an authenticated visitor.
func (fh *FollowHandler) target(w http.ResponseWriter, r *http.Request) (*user.User, *user.User, bool) {
	viewer, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		Redirect(w, r, LoginURL(r.URL.RequestURI()))
		return nil, nil, false
	}

	username := mux.Vars(r)["username"]
	author, err := fh.Users.GetByUsername(r.Context(), username)
	if errors.Is(err, user.ErrNotFound) {
		fh.Render.NotFound(w, r)
		return nil, nil, false
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load user `%s`: %v", username, err)
		fh.Render.ServerError(w, r)
		return nil, nil, false
	}
	return viewer, author, true
}

// ProfileFollow subscribes the visitor to the author. Following yourself
// or following twice changes nothing.
func (fh *FollowHandler) ProfileFollow(w http.ResponseWriter, r *http.Request) {
	viewer, author, ok := fh.target(w, r)
	if !ok {
		return
	}

	if viewer.Id != author.Id {
		created, err := fh.Follows.Add(r.Context(), viewer.Id, author.Id)
		if err != nil {
			logger.Log(r.Context()).Errorf("can't follow %d -> %d: %v", viewer.Id, author.Id, err)
			fh.Render.ServerError(w, r)
			return
		}
		if !created {
			logger.Log(r.Context()).Debugf("user %d already follows %d", viewer.Id, author.Id)
		}
	}

	Redirect(w, r, ProfileURL(author.Username))
}

func (fh *FollowHandler) ProfileUnfollow(w http.ResponseWriter, r *http.Request) {
	viewer, author, ok := fh.target(w, r)
	if !ok {
		return
	}

	if err := fh.Follows.Delete(r.Context(), viewer.Id, author.Id); err != nil {
		logger.Log(r.Context()).Errorf("can't unfollow %d -> %d: %v", viewer.Id, author.Id, err)
		fh.Render.ServerError(w, r)
		return
	}

	Redirect(w, r, ProfileURL(author.Username))
}
