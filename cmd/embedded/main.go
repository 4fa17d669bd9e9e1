package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	"todo-app/config"
	"todo-app/pkg/adapter/restapi"
	"todo-app/pkg/infrastructure/datastore"
	"todo-app/pkg/infrastructure/logger"
	"todo-app/pkg/infrastructure/router"
	"todo-app/pkg/infrastructure/server"
	"todo-app/pkg/registry"
)

// The embedded variant keeps todos in a SQLite file (DATABASE_URL is its path)
// and serves the front-end assets from STATIC_DIR.
func main() {
	config.ReadConfig(config.ReadConfigOption{})
	if err := config.Validate(config.ValidateOption{Database: true, StaticDir: true}); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := logger.New(config.C.Log.Level)
	defer func() { _ = l.Sync() }()

	db, err := datastore.NewSQLite(config.C.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open db: %v", err)
	}
	ctrl := registry.NewEmbedded(db).NewController()

	e := router.New(restapi.New(ctrl), router.Options{
		Logger:    l,
		StaticDir: config.C.Static.Dir,
	})

	err = server.Run(
		ctx,
		e,
		":"+config.C.Server.Address,
		time.Duration(config.C.Server.ShutdownTimeoutSeconds)*time.Second,
		l,
		func() error { return datastore.CloseSQLite(db) },
	)
	if err != nil {
		l.Fatalw("server stopped with error", "err", err)
	}
	l.Info("shutdown complete")
}
