package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gomodule/redigo/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"yatube/pkg/comment"
	"yatube/pkg/config"
	"yatube/pkg/database"
	"yatube/pkg/follow"
	"yatube/pkg/group"
	"yatube/pkg/logger"
	"yatube/pkg/media"
	"yatube/pkg/middleware"
	"yatube/pkg/pagecache"
	"yatube/pkg/post"
	"yatube/pkg/render"
	"yatube/pkg/router"
	"yatube/pkg/sessions"
	"yatube/pkg/user"
	"yatube/pkg/user/api"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("main:", err)
	}
	zl := logger.Run(cfg.LogLevel)
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		zl.Fatalf("main: unable to reach PostgreSQL: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(ctx, db); err != nil {
		zl.Fatalf("main: %v", err)
	}

	redisPool := &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(cfg.RedisAddr)
		},
	}
	defer redisPool.Close()

	mongoCtx, mongoCtxCancel := context.WithTimeout(ctx, 3*time.Second)
	defer mongoCtxCancel()
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		zl.Fatalf("main: can't connect to MongoDB, %v", err)
	}
	if err := mongoClient.Ping(mongoCtx, nil); err != nil {
		zl.Fatalf("main: unable to connect to MongoDB, %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			zl.Errorf("main: failed disconnecting from MongoDB, %v", err)
		}
	}()

	bucket, err := media.NewGridFSBucket(mongoClient.Database(cfg.MongoDB))
	if err != nil {
		zl.Fatalf("main: %v", err)
	}
	mediaStorage := media.NewStorage(bucket)

	var store pagecache.Store = pagecache.NewRedisStore(redisPool)
	if cfg.PageCacheStore == "memory" {
		store = pagecache.NewMemoryStore()
	}
	cache := pagecache.New(store, cfg.PageCacheTTL)

	rn, err := render.New()
	if err != nil {
		zl.Fatalf("main: %v", err)
	}

	usersRepo := user.NewUserRepo(db)
	groupsRepo := group.NewRepo(db)
	postsRepo := post.NewPostRepo(db)
	commentsRepo := comment.NewRepo(db)
	followsRepo := follow.NewRepo(db)
	sessionManager := sessions.NewSessionManager(cfg.SecretKey, redisPool, cfg.SessionTTL)

	if cfg.Seed {
		// Generate fake content to have better UI experience
		if err := seed(ctx, usersRepo, groupsRepo, postsRepo, commentsRepo, followsRepo); err != nil {
			zl.Fatalf("main: %v", err)
		}
		if err := cache.Clear(); err != nil {
			zl.Warnf("main: can't clear page cache after seeding: %v", err)
		}
	}

	service := post.NewService(postsRepo, groupsRepo, commentsRepo, mediaStorage)
	handler := router.New(router.Handlers{
		Posts: post.NewPostHandler(postsRepo, groupsRepo, usersRepo, commentsRepo, followsRepo,
			service, rn, cfg.MaxUploadBytes),
		Follows: follow.NewFollowHandler(usersRepo, followsRepo, rn),
		Users:   api.NewUserHandler(usersRepo, sessionManager, rn),
		Media:   media.NewMediaHandler(mediaStorage, rn),
		Render:  rn,
		Cache:   cache,
		Auth:    middleware.NewAuthMiddleware(sessionManager, usersRepo),
		Log:     middleware.NewLoggingMiddleware(zl),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zl.Errorf("main: shutdown failed: %v", err)
		}
	}()

	zl.Infof("Serving at http://localhost%s/", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Fatalf("main: %v", err)
	}
}
