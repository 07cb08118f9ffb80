package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"dna_analyzer_go/analysis"
)

const contentTypeMsgpack = "application/msgpack"

// ErrorResponse is the body of every non-2xx API reply.
type ErrorResponse struct {
	Error   string `json:"error" msgpack:"error"`
	Message string `json:"message" msgpack:"message"`
	Detail  string `json:"detail,omitempty" msgpack:"detail,omitempty"`
}

// errorFor maps an error onto a status code and a user facing body.
func errorFor(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, analysis.ErrEmptySequence):
		return http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "empty_sequence",
			Message: "Please enter a DNA sequence.",
		}
	case errors.Is(err, analysis.ErrInvalidSymbol):
		return http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "invalid_sequence",
			Message: "Invalid DNA sequence. Use only A, T, G, and C.",
			Detail:  err.Error(),
		}
	case errors.Is(err, analysis.ErrSequenceTooLong):
		return http.StatusRequestEntityTooLarge, ErrorResponse{
			Error:   "sequence_too_long",
			Message: "Sequence is too long to analyze.",
			Detail:  err.Error(),
		}
	case errors.Is(err, analysis.ErrSourceUnavailable):
		return http.StatusBadRequest, ErrorResponse{
			Error:   "source_unavailable",
			Message: "Could not read the submitted sequence.",
			Detail:  err.Error(),
		}
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Analysis failed.",
		}
	}
}

func wantsMsgpack(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), contentTypeMsgpack)
}

// writeResponse writes data as msgpack when the client asks for it and as
// JSON otherwise
func (s *Server) writeResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if wantsMsgpack(r) {
		body, err := msgpack.Marshal(data)
		if err != nil {
			s.log.Error().Err(err).Msg("Failed to encode msgpack response")
			http.Error(w, "encoding failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentTypeMsgpack)
		w.WriteHeader(status)
		if _, err := w.Write(body); err != nil {
			s.log.Debug().Err(err).Msg("Failed to write response")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError logs err and replies with the mapped status and body
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorFor(err)
	ev := s.log.Warn()
	if status >= http.StatusInternalServerError {
		ev = s.log.Error()
	}
	ev.Err(err).Str("kind", body.Error).Str("path", r.URL.Path).Msg("Request rejected")
	s.writeResponse(w, r, status, body)
}
