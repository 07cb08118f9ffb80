// Package watcher polls a directory for newly created sequence files and
// analyzes each one once.
package watcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"dna_analyzer_go/analysis"
	"dna_analyzer_go/history"
	common "dna_analyzer_go/utils"
)

// Options configures a Watcher.
type Options struct {
	Dir        string
	Extensions []string // e.g. ".txt", ".csv"; matched case-insensitively
	MaxBytes   int64
	Analyzer   analysis.Analyzer
	History    *history.Store // optional
	Log        zerolog.Logger
}

// Outcome describes what happened to one file during a scan.
type Outcome struct {
	Path   string
	Result *analysis.Result
	Err    error
}

// Watcher implements scheduler.Job. Files present on the first run are
// treated as already seen; only files created afterwards are processed.
type Watcher struct {
	opts Options
	log  zerolog.Logger

	mu      sync.Mutex
	seen    map[string]bool
	primed  bool
	results chan Outcome
}

// New validates opts and returns a Watcher.
func New(opts Options) (*Watcher, error) {
	if opts.Dir == "" {
		return nil, errors.New("watch directory is required")
	}
	if len(opts.Extensions) == 0 {
		return nil, errors.New("at least one extension is required")
	}
	exts := make([]string, len(opts.Extensions))
	for i, e := range opts.Extensions {
		exts[i] = strings.ToLower(e)
	}
	opts.Extensions = exts

	return &Watcher{
		opts: opts,
		log:  opts.Log.With().Str("component", "watcher").Str("dir", opts.Dir).Logger(),
		seen: make(map[string]bool),
	}, nil
}

// Name implements scheduler.Job.
func (w *Watcher) Name() string { return "dir_watch" }

// Run implements scheduler.Job.
func (w *Watcher) Run() error {
	_, err := w.Scan()
	return err
}

// Outcomes returns a channel that receives every processed file. It must be
// called before the first scan that should be observed; a full buffer
// drops outcomes.
func (w *Watcher) Outcomes(buffer int) <-chan Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.results == nil {
		w.results = make(chan Outcome, buffer)
	}
	return w.results
}

// Prime marks every matching file currently in the directory as seen.
func (w *Watcher) Prime() error {
	names, err := w.list()
	if err != nil {
		return err
	}
	w.mu.Lock()
	for _, n := range names {
		w.seen[n] = true
	}
	w.primed = true
	w.mu.Unlock()
	w.log.Info().Int("existing", len(names)).Msg("Watching folder for new DNA files")
	return nil
}

// Scan processes files that appeared since the previous scan. The first
// call only primes the seen set.
func (w *Watcher) Scan() ([]Outcome, error) {
	w.mu.Lock()
	primed := w.primed
	w.mu.Unlock()
	if !primed {
		return nil, w.Prime()
	}

	names, err := w.list()
	if err != nil {
		return nil, err
	}

	var outcomes []Outcome
	for _, name := range names {
		path := filepath.Join(w.opts.Dir, name)
		if info, err := os.Stat(path); err == nil && info.Size() == 0 {
			continue // still being written; retry next scan
		}
		if !w.claim(name) {
			continue
		}

		w.log.Info().Str("file", name).Msg("New file detected")
		out := w.process(path)
		outcomes = append(outcomes, out)
		w.publish(out)
	}
	return outcomes, nil
}

// claim marks name as seen and reports whether this call was the first to do so.
func (w *Watcher) claim(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.seen[name] {
		return false
	}
	w.seen[name] = true
	return true
}

func (w *Watcher) process(path string) Outcome {
	name := filepath.Base(path)
	out := Outcome{Path: path}

	if _, err := common.CheckFileReady(path, w.opts.MaxBytes); err != nil {
		out.Err = err
		w.log.Error().Err(err).Str("file", name).Msg("Could not read file")
		return out
	}
	raw, err := common.ReadSequenceFile(path, w.opts.MaxBytes)
	if err != nil {
		out.Err = err
		w.log.Error().Err(err).Str("file", name).Msg("Could not read file")
		return out
	}

	res, err := w.opts.Analyzer.Process(raw)
	if err != nil {
		out.Err = fmt.Errorf("%s: %w", name, err)
		w.log.Warn().Err(err).Str("file", name).Msg("Invalid DNA sequence in file")
		return out
	}
	out.Result = res

	if w.opts.History != nil {
		w.opts.History.Add(history.WatchSource(name), res)
	}
	w.log.Info().
		Str("file", name).
		Int("length", res.Length).
		Float64("gc_content", res.GCContent).
		Str("protein", res.Protein).
		Msg("Done processing")
	return out
}

func (w *Watcher) publish(out Outcome) {
	w.mu.Lock()
	ch := w.results
	w.mu.Unlock()
	if ch == nil {
		return
	}
	select {
	case ch <- out:
	default:
	}
}

// list returns matching regular file names, sorted.
func (w *Watcher) list() ([]string, error) {
	entries, err := os.ReadDir(w.opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read watch directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !w.accepts(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (w *Watcher) accepts(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range w.opts.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
