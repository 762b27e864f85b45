package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"
	"unicode/utf8"

	"yatube/pkg/logger"
	"yatube/pkg/sessions"
	"yatube/pkg/user"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{
	"index.html",
	"follow.html",
	"group_list.html",
	"profile.html",
	"post_detail.html",
	"create_post.html",
	"login.html",
	"signup.html",
	"404.html",
	"500.html",
}

var funcs = template.FuncMap{
	"media": func(name string) string { return "/media/" + name },
	"date":  func(t time.Time) string { return t.Format("02 Jan 2006 15:04") },
	"truncate": func(s string, n int) string {
		if utf8.RuneCountInString(s) <= n {
			return s
		}
		return string([]rune(s)[:n]) + "…"
	},
}

type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the shared layout.
func New() (*Renderer, error) {
	rn := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("render: can't parse %s: %w", name, err)
		}
		rn.pages[name] = t
	}
	return rn, nil
}

// HTML executes the page into a buffer first, so a template failure
// turns into a clean 500 instead of a half written page.
func (rn *Renderer) HTML(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	t, ok := rn.pages[name]
	if !ok {
		logger.Log(r.Context()).Errorf("render: unknown template %s", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		logger.Log(r.Context()).Errorf("render: can't execute %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

type errorPage struct {
	Viewer *user.User
	Path   string
}

func (rn *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	rn.HTML(w, r, http.StatusNotFound, "404.html", errorPage{Viewer: Viewer(r), Path: r.URL.Path})
}

func (rn *Renderer) ServerError(w http.ResponseWriter, r *http.Request) {
	rn.HTML(w, r, http.StatusInternalServerError, "500.html", errorPage{Viewer: Viewer(r), Path: r.URL.Path})
}

// Viewer is the authenticated visitor or nil.
func Viewer(r *http.Request) *user.User {
	u, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		return nil
	}
	return u
}
