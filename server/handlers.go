package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"dna_analyzer_go/analysis"
	"dna_analyzer_go/config"
	"dna_analyzer_go/history"
	common "dna_analyzer_go/utils"
)

type analyzeRequest struct {
	Sequence string `json:"sequence"`
}

// HistoryResponse is the body of GET /api/history
type HistoryResponse struct {
	Count   int             `json:"count" msgpack:"count"`
	Total   int             `json:"total" msgpack:"total"`
	Entries []history.Entry `json:"entries" msgpack:"entries"`
}

// AboutResponse is the body of GET /api/about
type AboutResponse struct {
	Name        string            `json:"name" msgpack:"name"`
	Description string            `json:"description" msgpack:"description"`
	Versions    map[string]string `json:"versions" msgpack:"versions"`
}

// SystemResponse is the body of GET /api/system
type SystemResponse struct {
	Hostname       string  `json:"hostname" msgpack:"hostname"`
	Platform       string  `json:"platform" msgpack:"platform"`
	UptimeSeconds  uint64  `json:"uptime_seconds" msgpack:"uptime_seconds"`
	CPUPercent     float64 `json:"cpu_percent" msgpack:"cpu_percent"`
	MemoryPercent  float64 `json:"memory_percent" msgpack:"memory_percent"`
	MemoryUsedMB   float64 `json:"memory_used_mb" msgpack:"memory_used_mb"`
	Goroutines     int     `json:"goroutines" msgpack:"goroutines"`
	HistoryEntries int     `json:"history_entries" msgpack:"history_entries"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": config.Main_version,
	})
}

// handleAnalyze analyzes a manually entered sequence, sent either as JSON
// {"sequence": "..."} or as the form field "sequence".
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	var raw string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, r, fmt.Errorf("%w: invalid JSON body: %v", analysis.ErrSourceUnavailable, err))
			return
		}
		raw = req.Sequence
	} else {
		if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			s.writeError(w, r, fmt.Errorf("%w: invalid form body: %v", analysis.ErrSourceUnavailable, err))
			return
		}
		raw = r.PostForm.Get("sequence")
	}

	s.analyzeAndStore(w, r, history.SourceManual, raw)
}

// handleUpload analyzes the multipart file field "file".
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+64<<10) // room for multipart framing

	if err := r.ParseMultipartForm(1 << 20); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: invalid upload: %v", analysis.ErrSourceUnavailable, err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: no file uploaded: %v", analysis.ErrSourceUnavailable, err))
		return
	}
	defer file.Close()

	raw, err := common.ReadSequence(file, s.maxUploadBytes)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.analyzeAndStore(w, r, header.Filename, raw)
}

func (s *Server) analyzeAndStore(w http.ResponseWriter, r *http.Request, source, raw string) {
	res, err := s.analyzer.Process(raw)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	entry := s.history.Add(source, res)

	s.log.Info().
		Str("source", source).
		Str("id", entry.ID).
		Int("length", res.Length).
		Float64("gc_content", res.GCContent).
		Msg("Sequence analyzed")

	s.writeResponse(w, r, http.StatusOK, entry)
}

// handleHistory lists recent analyses, newest first
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := s.historyView
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.writeResponse(w, r, http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_limit",
				Message: "limit must be a positive integer",
			})
			return
		}
		limit = n
	}

	entries := s.history.Recent(limit)
	s.writeResponse(w, r, http.StatusOK, HistoryResponse{
		Count:   len(entries),
		Total:   s.history.Len(),
		Entries: entries,
	})
}

func (s *Server) handleHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entry, ok := s.history.Get(id)
	if !ok {
		s.writeResponse(w, r, http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "No analysis with that id.",
		})
		return
	}
	s.writeResponse(w, r, http.StatusOK, entry)
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, r, http.StatusOK, AboutResponse{
		Name:        "dna_analyzer",
		Description: "Length, GC content, translation and reverse complement for DNA sequences. Results are kept in memory only.",
		Versions:    config.Versions(),
	})
}

// handleSystem reports host resource usage
func (s *Server) handleSystem(w http.ResponseWriter, r *http.Request) {
	resp := SystemResponse{
		Goroutines:     runtime.NumGoroutine(),
		HistoryEntries: s.history.Len(),
	}

	if info, err := host.Info(); err == nil {
		resp.Hostname = info.Hostname
		resp.Platform = info.Platform + " " + info.PlatformVersion
		resp.UptimeSeconds = info.Uptime
	} else {
		s.log.Debug().Err(err).Msg("Failed to read host info")
	}
	if pct, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(pct) > 0 {
		resp.CPUPercent = pct[0]
	} else if err != nil {
		s.log.Debug().Err(err).Msg("Failed to read CPU usage")
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		resp.MemoryPercent = vm.UsedPercent
		resp.MemoryUsedMB = float64(vm.Used) / 1024.0 / 1024.0
	} else {
		s.log.Debug().Err(err).Msg("Failed to read memory usage")
	}

	s.writeResponse(w, r, http.StatusOK, resp)
}
