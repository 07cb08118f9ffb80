package server

import (
	"context"
	"net/http"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const streamWriteTimeout = 5 * time.Second

// handleStream upgrades to a websocket and pushes every new history entry
// as a JSON message until the client goes away.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: s.devMode,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("Websocket upgrade failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream closed")

	entries, cancel := s.history.Subscribe(16)
	defer cancel()

	// Reads are not expected; CloseRead handles control frames and
	// cancels ctx when the peer disconnects.
	ctx := conn.CloseRead(r.Context())
	s.log.Debug().Msg("Stream client connected")

	for {
		select {
		case <-ctx.Done():
			s.log.Debug().Msg("Stream client disconnected")
			return
		case entry, ok := <-entries:
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
			writeCtx, done := context.WithTimeout(ctx, streamWriteTimeout)
			err := wsjson.Write(writeCtx, conn, entry)
			done()
			if err != nil {
				s.log.Debug().Err(err).Msg("Stream write failed")
				return
			}
		}
	}
}
