package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Tk21111/color_server/api"
	"github.com/Tk21111/color_server/color"
	"github.com/Tk21111/color_server/config"
	"github.com/Tk21111/color_server/internal/logx"
	"github.com/Tk21111/color_server/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func Handler(src color.Source) http.Handler {
	h := middleware.Chain(api.Routes(src),
		middleware.RequestID,
		middleware.Logging,
		middleware.NoCache,
	)
	return otelhttp.NewHandler(h, "color-server")
}

func New(cfg config.ServerConfig, src color.Source) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           Handler(src),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Run binds srv.Addr and serves until ctx is cancelled, then drains in-flight requests.
// A bind failure is returned immediately.
func Run(ctx context.Context, srv *http.Server) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	return Serve(ctx, srv, ln)
}

func Serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		logx.L.Info("server listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logx.L.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logx.L.Info("server stopped")
	return nil
}
