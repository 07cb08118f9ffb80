package web_server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dna_analyzer_go/analysis"
	"dna_analyzer_go/config"
	"dna_analyzer_go/history"
	"dna_analyzer_go/logger"
	"dna_analyzer_go/scheduler"
	"dna_analyzer_go/server"
	"dna_analyzer_go/tools/dir_watcher"
)

// Run serves the analysis API until interrupted, optionally feeding the same
// history from the folder watcher.
func Run(args []string) {

	fs := flag.NewFlagSet("serve", flag.ExitOnError) // Isolated flag set specifically for "serve" subcommand

	port := fs.Int("port", 0, "Port to listen on (default $DNA_PORT or 8080)")
	watch := fs.Bool("watch", false, "Also watch $DNA_WATCH_DIR for new sequence files")

	err := fs.Parse(args) // Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}

	if len(fs.Args()) > 0 { // If unparsed arguments remain:
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args()) // Flag the error and report it
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
		if err := cfg.Validate(); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	log.Info().Str("version", config.Main_version).Msg("Starting DNA analyzer")

	store := history.NewStore(cfg.HistorySize)

	sched := scheduler.New(log)
	if *watch {
		if _, err := dir_watcher.Start(cfg, log, store, sched); err != nil {
			log.Fatal().Err(err).Msg("Failed to start watcher")
		}
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(server.Config{
		Log:            log,
		History:        store,
		Analyzer:       analysis.Analyzer{MaxLength: cfg.MaxSequenceLength},
		Port:           cfg.Port,
		DevMode:        cfg.DevMode,
		HistoryView:    cfg.HistoryView,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Bool("watch", *watch).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
