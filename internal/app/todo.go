package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/charliemarlow/APIProjects/internal/cache"
	"github.com/charliemarlow/APIProjects/internal/config"
	"github.com/charliemarlow/APIProjects/internal/handlers"
	"github.com/charliemarlow/APIProjects/internal/repo"
	"github.com/charliemarlow/APIProjects/internal/service"
	"github.com/charliemarlow/APIProjects/internal/snapshot"
)

// TodoApp is the assembled todo API: registry seeded from the snapshot,
// routes registered under /api/v1, search cache attached when Redis is
// configured.
type TodoApp struct {
	cfg    config.Config
	redis  *redis.Client
	router *gin.Engine
}

// NewTodo builds the todo application. Redis is optional: without it the
// search path skips caching entirely.
func NewTodo(cfg config.Config) (*TodoApp, error) {
	a := &TodoApp{cfg: cfg}

	todoRepo := repo.NewMemTodoRepo()
	if err := snapshot.LoadTodoFromFiles(todoRepo, cfg.Todo.ListsPath); err != nil {
		return nil, fmt.Errorf("load todo snapshot: %w", err)
	}

	var searchCache *cache.SearchCache
	if cfg.Redis.Enabled() {
		rdb, err := newRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.redis = rdb
		searchCache = cache.NewSearchCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}

	a.router = newRouter(cfg, "Todo API", "todo")
	api := a.router.Group("/api/v1")
	h := handlers.NewTodoHandler(service.NewTodoService(todoRepo, searchCache))
	registerTodoRoutes(api, h)

	return a, nil
}

// Router returns the gin engine.
func (a *TodoApp) Router() *gin.Engine {
	return a.router
}

// Close releases the Redis connection if one was opened.
func (a *TodoApp) Close(ctx context.Context) error {
	_ = ctx
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
