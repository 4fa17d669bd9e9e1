package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	"todo-app/config"
	"todo-app/pkg/adapter/controller"
	"todo-app/pkg/adapter/restapi"
	"todo-app/pkg/infrastructure/datastore"
	"todo-app/pkg/infrastructure/logger"
	"todo-app/pkg/infrastructure/router"
	"todo-app/pkg/infrastructure/server"
	"todo-app/pkg/registry"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})
	if err := config.Validate(config.ValidateOption{Database: true}); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := logger.New(config.C.Log.Level)
	defer func() { _ = l.Sync() }()

	pool := newDBClient(ctx)
	ctrl := newController(pool)

	e := router.New(restapi.New(ctrl), router.Options{
		Logger: l,
	})

	err := server.Run(
		ctx,
		e,
		":"+config.C.Server.Address,
		time.Duration(config.C.Server.ShutdownTimeoutSeconds)*time.Second,
		l,
		func() error { pool.Close(); return nil },
	)
	if err != nil {
		l.Fatalw("server stopped with error", "err", err)
	}
	l.Info("shutdown complete")
}

func newDBClient(ctx context.Context) *pgxpool.Pool {
	pool, err := datastore.NewClient(ctx)
	if err != nil {
		log.Fatalf("Failed to open db connection: %v", err)
	}
	return pool
}

func newController(pool *pgxpool.Pool) controller.Controller {
	r := registry.New(pool)
	return r.NewController()
}
