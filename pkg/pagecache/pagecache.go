package pagecache

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"yatube/pkg/logger"
	"yatube/pkg/sessions"
)

var (
	hits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yatube_page_cache_hits_total",
		Help: "Pages served from the page cache.",
	})
	misses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yatube_page_cache_misses_total",
		Help: "Pages rendered because the page cache had no entry.",
	})
)

// Cache serves whole rendered responses for a fixed TTL. Entries are never
// invalidated by writes, only by expiry or Clear.
type Cache struct {
	store Store
	ttl   time.Duration
}

type entry struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

func New(store Store, ttl time.Duration) *Cache {
	return &Cache{store: store, ttl: ttl}
}

func (c *Cache) Clear() error {
	return c.store.Clear()
}

// Key identifies a page by method, path with query and viewer,
// so a cached page never carries another visitor's navigation.
func Key(r *http.Request) string {
	viewer := "anon"
	if u, err := sessions.GetAuthUser(r.Context()); err == nil {
		viewer = "user:" + strconv.FormatInt(u.Id, 10)
	}
	return r.Method + " " + r.URL.RequestURI() + " " + viewer
}

func (c *Cache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := Key(r)
		raw, ok, err := c.store.Get(key)
		if err != nil {
			logger.Log(r.Context()).Errorf("pagecache: can't read %q: %v", key, err)
		}
		if ok {
			var e entry
			err := json.Unmarshal(raw, &e)
			if err == nil {
				hits.Inc()
				w.Header().Set("Content-Type", e.ContentType)
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(e.Body)
				return
			}
			logger.Log(r.Context()).Errorf("pagecache: broken entry %q: %v", key, err)
		}

		misses.Inc()
		rec := &recorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		if rec.status != http.StatusOK {
			return
		}

		val, err := json.Marshal(entry{ContentType: w.Header().Get("Content-Type"), Body: rec.buf.Bytes()})
		if err != nil {
			logger.Log(r.Context()).Errorf("pagecache: can't encode %q: %v", key, err)
			return
		}
		if err := c.store.Set(key, val, c.ttl); err != nil {
			logger.Log(r.Context()).Errorf("pagecache: can't store %q: %v", key, err)
		}
	})
}

// recorder passes the response through while keeping a copy of the body.
type recorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (r *recorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *recorder) Write(b []byte) (int, error) {
	if r.status == http.StatusOK {
		r.buf.Write(b)
	}
	return r.ResponseWriter.Write(b)
}
