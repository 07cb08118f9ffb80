package dir_watcher

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"dna_analyzer_go/analysis"
	"dna_analyzer_go/config"
	"dna_analyzer_go/history"
	"dna_analyzer_go/logger"
	"dna_analyzer_go/scheduler"
	"dna_analyzer_go/watcher"
)

// Start creates the watch directory if needed, primes a watcher on it and
// schedules it. Results go to store when it is not nil.
func Start(cfg *config.Config, log zerolog.Logger, store *history.Store, sched *scheduler.Scheduler) (*watcher.Watcher, error) {
	if err := os.MkdirAll(cfg.WatchDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create watch directory: %w", err)
	}

	w, err := watcher.New(watcher.Options{
		Dir:        cfg.WatchDir,
		Extensions: cfg.WatchExtensions,
		MaxBytes:   cfg.MaxUploadBytes,
		Analyzer:   analysis.Analyzer{MaxLength: cfg.MaxSequenceLength},
		History:    store,
		Log:        log,
	})
	if err != nil {
		return nil, err
	}
	if err := w.Prime(); err != nil {
		return nil, fmt.Errorf("failed to read watch directory: %w", err)
	}
	if err := sched.AddJob(cfg.WatchInterval, w); err != nil {
		return nil, fmt.Errorf("failed to schedule watcher: %w", err)
	}
	return w, nil
}

// Run watches a folder for new sequence files until interrupted.
func Run(args []string) {

	fs := flag.NewFlagSet("watch", flag.ExitOnError) // Isolated flag set specifically for "watch" subcommand

	dir := fs.String("dir", "", "Folder to watch (default $DNA_WATCH_DIR or ./lab_exports)")
	interval := fs.String("interval", "", "Poll schedule, e.g. \"@every 2s\" (default $DNA_WATCH_INTERVAL)")
	ext := fs.String("ext", "", "Comma separated extensions to pick up (default $DNA_WATCH_EXTENSIONS)")

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
	if err := applyFlags(cfg, *dir, *interval, *ext); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	store := history.NewStore(cfg.HistorySize)
	sched := scheduler.New(log)

	if _, err := Start(cfg, log, store, sched); err != nil {
		log.Fatal().Err(err).Msg("Failed to start watcher")
	}
	sched.Start()

	log.Info().
		Str("dir", cfg.WatchDir).
		Str("interval", cfg.WatchInterval).
		Strs("extensions", cfg.WatchExtensions).
		Msg("Watching for new DNA files. Press Ctrl+C to stop.")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
	log.Info().Int("analyzed", store.Len()).Msg("Watcher stopped")
}

// applyFlags overrides environment settings with non-empty flag values
func applyFlags(cfg *config.Config, dir, interval, ext string) error {
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("failed to resolve watch directory path: %w", err)
		}
		cfg.WatchDir = abs
	}
	if interval != "" {
		cfg.WatchInterval = interval
	}
	if ext != "" {
		cfg.WatchExtensions = config.ParseExtensions(ext)
	}
	return cfg.Validate()
}
