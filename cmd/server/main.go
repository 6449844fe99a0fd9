package main

import (
	"context"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/yatube-dev/yatube/config"
	"github.com/yatube-dev/yatube/internal/api"
	"github.com/yatube-dev/yatube/internal/api/handler"
	"github.com/yatube-dev/yatube/internal/cache"
	"github.com/yatube-dev/yatube/internal/media"
	"github.com/yatube-dev/yatube/internal/model"
	"github.com/yatube-dev/yatube/internal/repository"
	"github.com/yatube-dev/yatube/internal/service"
	"github.com/yatube-dev/yatube/pkg/database"
	"github.com/yatube-dev/yatube/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.Init(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	useSentry := cfg.Sentry.DSN != ""
	if useSentry {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			zl.Fatal("init sentry", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		zl.Fatal("init database", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{},
	); err != nil {
		zl.Fatal("migrate", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		zl.Fatal("connect redis", zap.Error(err))
	}
	defer rdb.Close()

	postRepo := repository.NewPostRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	userRepo := repository.NewUserRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)

	store := media.NewStore(cfg.Media.Root)
	posts := service.NewPostService(db, postRepo, groupRepo, userRepo, commentRepo, store)
	comments := service.NewCommentService(commentRepo, postRepo)
	rels := service.NewRelationshipService(followRepo, postRepo, userRepo)
	auth := service.NewAuthService(userRepo, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)

	pageCache := cache.NewPageCache(rdb, cfg.Cache.IndexTTL)

	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(api.Options{
		Handler:   handler.New(posts, comments, rels, auth, zl),
		Auth:      auth,
		PageCache: pageCache,
		Logger:    zl,
		MediaRoot: cfg.Media.Root,
		UseSentry: useSentry,
	})

	zl.Info("server starting", zap.String("addr", cfg.Server.Addr))
	if err := router.Run(cfg.Server.Addr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
