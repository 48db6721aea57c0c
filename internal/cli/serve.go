package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/diegoclair/weekly-signup/internal/config"
	"github.com/diegoclair/weekly-signup/internal/domain/bucket"
	"github.com/diegoclair/weekly-signup/internal/domain/contract"
	"github.com/diegoclair/weekly-signup/internal/domain/service"
	"github.com/diegoclair/weekly-signup/internal/handlers"
	"github.com/diegoclair/weekly-signup/internal/metrics"
	"github.com/diegoclair/weekly-signup/internal/pause"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), config.Load())
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	repo, closeStore, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeStore()

	metricsHandler, err := metrics.InitMeterProvider(ctx, "weekly-signup")
	if err != nil {
		log.Printf("Warning: metrics disabled: %v", err)
	} else if err := metrics.InitMetrics(ctx); err != nil {
		log.Printf("Warning: failed to create metric instruments: %v", err)
	}

	var slackClient contract.SlackClient
	if cfg.SlackEnabled() {
		slackClient = slack.New(cfg.SlackBotToken)
	}

	resolver := bucket.NewResolver(loc, cfg.CutoffHour, nil)
	svc := service.NewInstance(repo, resolver, pause.NewFileSource(cfg.PauseFile), slackClient, service.SummaryConfig{
		ChannelID: cfg.SlackChannelID,
		Time:      cfg.SummaryTime,
		Days:      cfg.SummaryDays,
	})

	if svc.Scheduler != nil {
		svc.Scheduler.Start()
		defer svc.Scheduler.Stop()
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.LogRequests(newMux(handlers.New(svc.Signup), metricsHandler, cfg.StaticDir)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening on port %s", cfg.Port)
		log.Printf("Current bucket: %s", resolver.Current().Display)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newMux(handler *handlers.SignupHandler, metricsHandler http.Handler, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/signup", handler.HandleSignup)
	mux.HandleFunc("/health", handlers.HandleHealth)
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	return mux
}
