package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"yatube/pkg/follow"
	"yatube/pkg/media"
	"yatube/pkg/middleware"
	"yatube/pkg/pagecache"
	"yatube/pkg/post"
	"yatube/pkg/render"
	"yatube/pkg/user/api"
)

type Handlers struct {
	Posts   *post.PostHandler
	Follows *follow.FollowHandler
	Users   *api.UserHandler
	Media   *media.MediaHandler
	Render  *render.Renderer
	Cache   *pagecache.Cache
	Auth    *middleware.Auth
	Log     *middleware.LoggingMiddleware
}

// New registers every route. Tracing, logging and auth wrap the whole
// router so unmatched paths still get a request id and a viewer.
func New(h Handlers) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(h.Render.NotFound)
	r.Use(middleware.Metrics)

	login := func(f http.HandlerFunc) http.Handler {
		return middleware.LoginRequired(f)
	}

	// Posts
	r.Handle("/", h.Cache.Middleware(http.HandlerFunc(h.Posts.Index))).Methods("GET")
	r.HandleFunc("/group/{slug}/", h.Posts.GroupPosts).Methods("GET")
	r.HandleFunc("/profile/{username}/", h.Posts.Profile).Methods("GET")
	r.HandleFunc("/posts/{post_id:[0-9]+}/", h.Posts.Detail).Methods("GET")
	r.Handle("/create/", login(h.Posts.Create)).Methods("GET", "POST")
	r.Handle("/posts/{post_id:[0-9]+}/edit/", login(h.Posts.Edit)).Methods("GET", "POST")
	r.Handle("/posts/{post_id:[0-9]+}/comment/", login(h.Posts.AddComment)).Methods("POST")

	// Follows
	r.Handle("/follow/", login(h.Posts.FollowIndex)).Methods("GET")
	r.Handle("/profile/{username}/follow/", login(h.Follows.ProfileFollow)).Methods("GET", "POST")
	r.Handle("/profile/{username}/unfollow/", login(h.Follows.ProfileUnfollow)).Methods("GET", "POST")

	// User
	r.HandleFunc("/auth/login/", h.Users.LogIn).Methods("GET", "POST")
	r.HandleFunc("/auth/signup/", h.Users.SignUp).Methods("GET", "POST")
	r.HandleFunc("/auth/logout/", h.Users.LogOut).Methods("GET", "POST")

	r.HandleFunc("/media/{path:.+}", h.Media.Serve).Methods("GET", "HEAD")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	var handler http.Handler = r
	handler = h.Auth.Middleware(handler)
	handler = h.Log.AccessLog(handler)
	handler = h.Log.SetupLogging(handler)
	handler = h.Log.SetupTracing(handler)
	return handler
}
