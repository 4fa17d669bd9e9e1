package e2e

import (
	"net/http/httptest"
	"testing"
	"todo-app/pkg/adapter/restapi"
	"todo-app/pkg/infrastructure/router"
	"todo-app/pkg/registry"
	"todo-app/testutil"

	"github.com/gavv/httpexpect/v2"
)

// Engine selects the store behind the server under test.
type Engine string

// Engines
const (
	SQLite   Engine = "sqlite"
	Postgres Engine = "postgres"
)

// SetupOption is an option of Setup
type SetupOption struct {
	Engine Engine
}

// Setup starts the HTTP API over a fresh store and returns an expectation client and its base URL.
// Postgres setups are skipped when DATABASE_URL is not configured for the e2e environment.
func Setup(t *testing.T, option SetupOption) (*httpexpect.Expect, string, func()) {
	t.Helper()

	var reg registry.Registry
	switch option.Engine {
	case Postgres:
		testutil.ReadConfigE2E()
		pool := testutil.NewPostgresDBClient(t)
		testutil.DropTodo(t, pool)
		reg = registry.New(pool)
	default:
		reg = registry.NewEmbedded(testutil.NewSQLiteDBClient(t))
	}

	srv := httptest.NewServer(router.New(restapi.New(reg.NewController()), router.Options{}))

	return httpexpect.Default(t, srv.URL), srv.URL, srv.Close
}
