package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "vitals_monitor/docs"
	"vitals_monitor/internal/config"
	"vitals_monitor/internal/handlers"
	"vitals_monitor/internal/logger"
	"vitals_monitor/internal/repository"
	"vitals_monitor/internal/repository/db"
	"vitals_monitor/internal/server"
	"vitals_monitor/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title        Vitals Monitor API
// @version      1.0
// @description  Synthetic ECG, pulse and HRV feed with a recording event log.
// @host         localhost:8080
// @BasePath     /
func main() {
	configPath := flag.String("config", "", "path to config file (default configs/config.yml)")
	flag.Parse()

	// load config.yml, .env and VITALS_* overrides
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.GetWithFormat(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// open DB
	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DB.Path)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, log.Named("recorder"), service.RecorderOptions{
		Rand:       service.NewRand(cfg.Recorder.Seed),
		Tick:       cfg.Recorder.Tick,
		WindowSize: cfg.Recorder.Window,
		AutoStart:  cfg.Recorder.AutoStart,
		Retention:  cfg.DB.Retention,
	})
	apiHandler := handlers.NewHandler(services, log.Named("http")).WithStreamInterval(cfg.Stream.Interval)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start recorder; recorderDone closes once its ticker is gone
	recorderDone := make(chan struct{})
	go func() {
		defer close(recorderDone)
		services.Recorder.Run(ctx)
	}()

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("server started", "port", cfg.Port, "db", cfg.DB.Path, "tick", cfg.Recorder.Tick.String())

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
	<-recorderDone
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
// The HTTP server drains first so no request can restart recording once the
// recorder is being torn down.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}

	// stop background goroutines
	cancel()
}
