package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkwell/internal/blog/cache"
	"inkwell/internal/blog/handler"
	"inkwell/internal/blog/metrics"
	"inkwell/internal/blog/service"
	"inkwell/internal/blog/source"
	"inkwell/internal/blog/watch"
	"inkwell/internal/platform/config"
	"inkwell/internal/platform/httpserver"
	"inkwell/internal/platform/logger"
	httptransport "inkwell/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	local := source.NewLocal(cfg.ContentDir)

	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
	}
	if cfg.RemoteContentURL != "" {
		opts = append(opts, service.WithRemote(source.NewGitHub(cfg.RemoteContentURL)))
	}

	redisCache, err := cache.NewRedis(cfg.RedisURL, cfg.ContentCacheTTL)
	if err != nil {
		log.Error("redis cache unavailable", "error", err)
		os.Exit(1)
	}
	if redisCache != nil {
		defer redisCache.Close()
		opts = append(opts, service.WithCache(redisCache))
	} else {
		opts = append(opts, service.WithCache(cache.NewMemory(cfg.ContentCacheTTL)))
	}

	blog := service.New(local, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := blog.Reload(ctx); err != nil {
		log.Error("initial catalog load failed", "error", err)
		os.Exit(1)
	}
	go blog.Warm(ctx)

	if cfg.WatchContent {
		watcher, err := watch.New(cfg.ContentDir, blog, watch.WithLogger(log))
		if err != nil {
			log.Error("content watcher setup failed", "error", err)
			os.Exit(1)
		}
		if err := watcher.Start(ctx); err != nil {
			log.Error("content watcher start failed", "error", err)
			os.Exit(1)
		}
		defer watcher.Close()
	}

	router := httptransport.NewRouter(handler.New(blog, log))
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting inkwell", "addr", cfg.Addr,
		"remote", cfg.RemoteContentURL != "", "watch", cfg.WatchContent)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
