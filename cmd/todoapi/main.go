// @title           Todo API
// @version         1.0
// @description     Todo-list API over an in-memory graph seeded from a JSON snapshot.
// @BasePath        /api/v1
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/charliemarlow/APIProjects/internal/app"
	"github.com/charliemarlow/APIProjects/internal/config"

	_ "github.com/charliemarlow/APIProjects/docs/todo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", "err", err)
	}
	log.Info("config loaded, seeding todo data", "lists", cfg.Todo.ListsPath,
		"cache", cfg.Redis.Enabled())

	application, err := app.NewTodo(cfg)
	if err != nil {
		log.Fatal("app init", "err", err)
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	go func() {
		log.Info("todo API listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("shutdown", "err", err)
	}
	if err := application.Close(ctx); err != nil {
		log.Fatal("close", "err", err)
	}
}
