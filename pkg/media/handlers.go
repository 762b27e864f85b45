package media

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/gorilla/mux"

	"yatube/pkg/logger"
)

type (
	IStorage interface {
		Open(name string) (io.ReadCloser, error)
	}

	IRenderer interface {
		NotFound(http.ResponseWriter, *http.Request)
		ServerError(http.ResponseWriter, *http.Request)
	}

	MediaHandler struct {
		Storage IStorage
		Render  IRenderer
	}
)

func NewMediaHandler(s IStorage, rn IRenderer) *MediaHandler {
	return &MediaHandler{Storage: s, Render: rn}
}

// Serve streams /media/{path} from the storage.
func (mh *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := path.Clean(mux.Vars(r)["path"])

	rc, err := mh.Storage.Open(name)
	if errors.Is(err, ErrNotFound) {
		mh.Render.NotFound(w, r)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("media: can't open %s: %v", name, err)
		mh.Render.ServerError(w, r)
		return
	}
	defer rc.Close()

	ctype := mime.TypeByExtension(path.Ext(name))
	if ctype == "" {
		ctype = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if _, err := io.Copy(w, rc); err != nil {
		logger.Log(r.Context()).Errorf("media: streaming %s interrupted: %v", name, err)
	}
}
