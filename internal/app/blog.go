package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/charliemarlow/APIProjects/internal/config"
	"github.com/charliemarlow/APIProjects/internal/handlers"
	"github.com/charliemarlow/APIProjects/internal/repo"
	"github.com/charliemarlow/APIProjects/internal/service"
	"github.com/charliemarlow/APIProjects/internal/snapshot"
)

// BlogApp is the assembled blog API: registry seeded from the snapshot,
// routes registered under /blogr/api/v1.
type BlogApp struct {
	cfg    config.Config
	router *gin.Engine
}

// NewBlog builds the blog application and seeds it from the configured
// snapshot files.
func NewBlog(cfg config.Config) (*BlogApp, error) {
	blogRepo := repo.NewMemBlogRepo()
	if err := snapshot.LoadBlogFromFiles(blogRepo, cfg.Blog.UsersPath, cfg.Blog.PostsPath); err != nil {
		return nil, fmt.Errorf("load blog snapshot: %w", err)
	}

	router := newRouter(cfg, "Blogr API", "blog")
	api := router.Group("/blogr/api/v1")
	h := handlers.NewBlogHandler(service.NewBlogService(blogRepo))
	registerBlogRoutes(api, h)

	return &BlogApp{cfg: cfg, router: router}, nil
}

// Router returns the gin engine.
func (a *BlogApp) Router() *gin.Engine {
	return a.router
}

// Close releases resources. The blog app holds none beyond process memory.
func (a *BlogApp) Close(ctx context.Context) error {
	_ = ctx
	return nil
}
