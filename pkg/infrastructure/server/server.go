package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Closer releases a resource owned by the process, such as a database handle.
type Closer func() error

// Run serves e on address until ctx is done, then shuts the server down and
// runs closers in order. Every failure is returned, none is dropped.
func Run(
	ctx context.Context,
	e *echo.Echo,
	address string,
	shutdownTimeout time.Duration,
	logger *zap.SugaredLogger,
	closers ...Closer,
) error {
	var result *multierror.Error

	serveErr := make(chan error, 1)
	go func() {
		logger.Infow("server started", "address", address)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serveErr:
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("serve: %w", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		result = multierror.Append(result, fmt.Errorf("shutdown: %w", err))
	}

	for _, c := range closers {
		if err := c(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}
