package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"yatube/pkg/common"
	"yatube/pkg/logger"
	"yatube/pkg/sessions"
	"yatube/pkg/user"
)

type (
	IUserRepo interface {
		GetById(context.Context, int64) (*user.User, error)
	}
	ISessionManager interface {
		UserFromToken(context.Context, string) (*user.User, error)
	}
	Auth struct {
		UserRepo       IUserRepo
		SessionManager ISessionManager
	}
)

func NewAuthMiddleware(sm ISessionManager, ur IUserRepo) *Auth {
	return &Auth{
		UserRepo:       ur,
		SessionManager: sm,
	}
}

// Middleware puts the session user into the request context.
// Requests with a missing or broken session continue anonymously.
func (auth Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if c, err := r.Cookie(sessions.CookieName); err == nil && c.Value != "" {
			token = c.Value
		}
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		userFromToken, err := auth.SessionManager.UserFromToken(r.Context(), token)
		if err != nil {
			logger.Log(r.Context()).Debugf("auth: session rejected: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		repoCtx, repoCtxCancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer repoCtxCancel()
		u, err := auth.UserRepo.GetById(repoCtx, userFromToken.Id)
		if err != nil {
			if !errors.Is(err, user.ErrNotFound) {
				logger.Log(r.Context()).Errorf("auth: can't get the user from repo: %v", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(sessions.WithUser(r.Context(), u)))
	})
}

// LoginRequired sends anonymous visitors to the login page with a way back.
func LoginRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := sessions.GetAuthUser(r.Context()); err != nil {
			common.Redirect(w, r, common.LoginURL(r.URL.RequestURI()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
