package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	_ "github.com/nexospark/website-api/docs"
	"github.com/nexospark/website-api/internal/api"
	"github.com/nexospark/website-api/internal/core/service"
	"github.com/nexospark/website-api/internal/infrastructure/config"
	"github.com/nexospark/website-api/internal/infrastructure/db/mongo"
	"github.com/nexospark/website-api/internal/infrastructure/db/redis"
	"github.com/nexospark/website-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           NexoSpark Website API
// @version         1.0
// @description     REST backend for the NexoSpark marketing site.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	users := mongo.NewUserRepository(db)
	blogs := mongo.NewBlogRepository(db)
	courses := mongo.NewCourseRepository(db)
	products := mongo.NewProductRepository(db)
	offerings := mongo.NewServiceRepository(db)
	applications := mongo.NewApplicationRepository(db)

	type indexer interface {
		EnsureIndexes(ctx context.Context) error
	}
	for _, repo := range []indexer{users, blogs, courses, products, offerings, applications} {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	// The cache is optional. A Redis outage at boot degrades reads to
	// MongoDB instead of keeping the API down.
	var rdb *goredis.Client
	var cache service.ContentCache
	if c, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, content cache disabled")
	} else {
		rdb = c
		cache = redis.NewContentCache(rdb, cfg.CacheTTL)
		defer rdb.Close()
	}

	svc := api.Services{
		Auth:         service.NewAuthService(users, cfg.JWTSecret, cfg.JWTTTL, log),
		Blogs:        service.NewBlogService(blogs, log),
		Catalog:      service.NewCatalogService(courses, products, offerings, cache, log),
		Applications: service.NewApplicationService(applications, log),
	}

	e := api.NewRouter(svc, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
