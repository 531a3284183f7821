package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/cesargomez89/mixmemory/internal/httpapp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve next-track queries and the network snapshot over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetString("port")
	if port == "" {
		port = cfg.Port
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	httpapp.NewHandler(db, log).RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
