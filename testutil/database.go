package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"todo-app/pkg/infrastructure/datastore"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

// NewSQLiteDBClient opens a fresh file-backed database under t.TempDir().
func NewSQLiteDBClient(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := datastore.NewSQLite(filepath.Join(t.TempDir(), "todos.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = datastore.CloseSQLite(db)
	})
	return db
}

// NewPostgresDBClient connects to the configured database, or skips when DATABASE_URL is not set.
// Read the config first.
func NewPostgresDBClient(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := datastore.NewDSN()
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping postgres test")
	}

	pool, err := datastore.NewClientWithDSN(context.Background(), dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// DropTodo drops all the data from todos and restarts the identity.
func DropTodo(t *testing.T, pool *pgxpool.Pool) {
	ctx := context.Background()
	_, err := pool.Exec(ctx, `TRUNCATE todos RESTART IDENTITY`)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}

// DropSQLiteTodo drops all the data from todos in the embedded database.
func DropSQLiteTodo(t *testing.T, db *gorm.DB) {
	if err := db.Exec(`DELETE FROM todos`).Error; err != nil {
		t.Error(err)
		t.FailNow()
	}
}
