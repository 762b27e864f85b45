package api

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"yatube/pkg/common"
	"yatube/pkg/logger"
	"yatube/pkg/sessions"
	"yatube/pkg/user"
)

type (
	UserRepo interface {
		UserExists(context.Context, string) bool
		GetByUsernameAndPass(context.Context, string, string) (*user.User, error)
		Add(context.Context, *user.User) (int64, error)
	}

	SessionManager interface {
		CreateToken(context.Context, *user.User) (string, error)
		CleanupUserSessions(ctx context.Context, userId int64) error
		Destroy(ctx context.Context, token string) error
		TTL() time.Duration
	}

	Renderer interface {
		HTML(w http.ResponseWriter, r *http.Request, status int, name string, data interface{})
		ServerError(http.ResponseWriter, *http.Request)
	}

	UserHandler struct {
		Repo           UserRepo
		SessionManager SessionManager
		Render         Renderer
	}

	SignupForm struct {
		Username  string `validate:"required,max=150,username"`
		Password1 string `validate:"required,min=8"`
		Password2 string `validate:"required,eqfield=Password1"`
	}

	authPage struct {
		Viewer   *user.User
		Error    string
		Next     string
		Username string
	}
)

const (
	msgBadCredentials = "Please enter a correct username and password."
	msgUserExists     = "A user with that username already exists."
)

var (
	usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)
	validate   = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	return v
}

func NewUserHandler(r UserRepo, sm SessionManager, rn Renderer) *UserHandler {
	return &UserHandler{
		Repo:           r,
		SessionManager: sm,
		Render:         rn,
	}
}

func (uh *UserHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	page := authPage{Next: r.URL.Query().Get("next")}
	if r.Method != http.MethodPost {
		uh.Render.HTML(w, r, http.StatusOK, "login.html", page)
		return
	}

	if err := r.ParseForm(); err != nil {
		logger.Log(r.Context()).Debugf("can't parse login form: %v", err)
	}
	page.Username = r.PostForm.Get("username")
	if next := r.PostForm.Get("next"); next != "" {
		page.Next = next
	}

	u, err := uh.Repo.GetByUsernameAndPass(r.Context(), page.Username, r.PostForm.Get("password"))
	if errors.Is(err, user.ErrNotFound) || errors.Is(err, user.ErrBadPassword) {
		logger.Log(r.Context()).Infof("failed login for `%s`: %v", page.Username, err)
		page.Error = msgBadCredentials
		uh.Render.HTML(w, r, http.StatusOK, "login.html", page)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't get the user by username `%s` and password: %v", page.Username, err)
		uh.Render.ServerError(w, r)
		return
	}

	// Remove expired user sessions if there are any
	if err := uh.SessionManager.CleanupUserSessions(r.Context(), u.Id); err != nil {
		logger.Log(r.Context()).Errorf("user/handlers: can't cleanup sessions for user `%s`, %v", u.Username, err)
		uh.Render.ServerError(w, r)
		return
	}

	if !uh.startSession(w, r, u) {
		return
	}
	common.Redirect(w, r, common.SafeNext(page.Next))
}

func (uh *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		uh.Render.HTML(w, r, http.StatusOK, "signup.html", authPage{})
		return
	}

	if err := r.ParseForm(); err != nil {
		logger.Log(r.Context()).Debugf("can't parse signup form: %v", err)
	}
	form := SignupForm{
		Username:  r.PostForm.Get("username"),
		Password1: r.PostForm.Get("password1"),
		Password2: r.PostForm.Get("password2"),
	}
	page := authPage{Username: form.Username}

	if err := validate.Struct(form); err != nil {
		page.Error = signupError(err)
		uh.Render.HTML(w, r, http.StatusOK, "signup.html", page)
		return
	}

	// Check if user already exists
	if uh.Repo.UserExists(r.Context(), form.Username) {
		logger.Log(r.Context()).Infof("user `%s` already exists", form.Username)
		page.Error = msgUserExists
		uh.Render.HTML(w, r, http.StatusOK, "signup.html", page)
		return
	}

	salt := common.RandStringRunes(8)
	u := &user.User{
		Username: form.Username,
		Password: common.HashPass(form.Password1, salt),
		// Id is handled below
	}
	id, err := uh.Repo.Add(r.Context(), u)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't add user `%s`: %v", form.Username, err)
		uh.Render.ServerError(w, r)
		return
	}
	u.Id = id

	if !uh.startSession(w, r, u) {
		return
	}
	common.Redirect(w, r, "/")
}

func (uh *UserHandler) LogOut(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessions.CookieName); err == nil {
		if err := uh.SessionManager.Destroy(r.Context(), c.Value); err != nil {
			logger.Log(r.Context()).Errorf("can't destroy session: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessions.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	common.Redirect(w, r, "/")
}

func (uh *UserHandler) startSession(w http.ResponseWriter, r *http.Request, u *user.User) bool {
	token, err := uh.SessionManager.CreateToken(r.Context(), u)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't create JWT token from user: %v", err)
		uh.Render.ServerError(w, r)
		return false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessions.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(uh.SessionManager.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return true
}

func signupError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid form."
	}
	fe := verrs[0]
	switch fe.Field() + "." + fe.Tag() {
	case "Username.required", "Password1.required", "Password2.required":
		return "This field is required."
	case "Username.max":
		return "Ensure the username has at most 150 characters."
	case "Username.username":
		return "Enter a valid username. It may contain only letters, numbers, and @/./+/-/_ characters."
	case "Password1.min":
		return "This password is too short. It must contain at least 8 characters."
	case "Password2.eqfield":
		return "The two password fields didn't match."
	}
	return "Invalid form."
}
