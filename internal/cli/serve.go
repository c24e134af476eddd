package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/yatube/internal/handler"
	"github.com/msomdec/yatube/internal/service"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Addr()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()
			slog.Info("database ready", "path", a.cfg.DatabasePath)

			svc := handler.Services{
				Auth:         service.NewAuthService(db.Users(), a.cfg.JWTSecret, a.cfg.BcryptCost),
				Listing:      service.NewListingService(db.Posts(), db.Groups(), db.Users()),
				Posts:        service.NewPostService(db.Posts(), db.Groups()),
				CookieSecure: a.cfg.CookieSecure,
			}
			if n := a.cfg.LoginRatePerMinute; n > 0 {
				svc.LoginLimiter = service.NewRateLimiter(float64(n)/60, n)
				defer svc.LoginLimiter.Stop()
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           handler.New(svc),
				ReadHeaderTimeout: 10 * time.Second,
				IdleTimeout:       120 * time.Second,
				MaxHeaderBytes:    1 << 20, // 1MB
			}
			return runServer(ctx, srv, a.cfg.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config port)")
	return cmd
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		slog.Info("server stopped")
		return nil
	})

	return g.Wait()
}
