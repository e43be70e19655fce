package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/book-reader/internal/book"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// positionRequest is the incoming WebSocket message format.
type positionRequest struct {
	Type string `json:"type"` // "visible" or "click"
	ID   string `json:"id"`
}

// positionResponse is the outgoing WebSocket message format.
type positionResponse struct {
	Type      string `json:"type"` // "session", "position" or "error"
	SessionID string `json:"session_id"`
	ActiveID  string `json:"active_id,omitempty"`
	ChapterID string `json:"chapter_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// handlePosition tracks one reader's position. Every connection has its own
// tracker; nothing outlives the connection.
func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade")
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	log := s.log.WithField("session_id", sessionID)

	tracker := book.NewTracker(s.book.Headings, s.book.Chapters)
	defer tracker.Close()

	send := func(resp positionResponse) {
		resp.SessionID = sessionID
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(resp); err != nil {
			log.WithError(err).Debug("websocket write")
		}
	}
	tracker.OnChange(func(p book.Position) {
		send(positionResponse{Type: "position", ActiveID: p.ActiveID, ChapterID: p.ChapterID})
	})

	send(positionResponse{Type: "session"})
	log.Debug("reader connected")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("websocket read")
			}
			log.Debug("reader disconnected")
			return
		}

		var req positionRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			send(positionResponse{Type: "error", Error: "invalid message format"})
			continue
		}
		if req.ID == "" {
			send(positionResponse{Type: "error", Error: "id is required"})
			continue
		}

		switch req.Type {
		case "visible":
			s.report(tracker.Report, req.ID, send)
		case "click":
			s.report(tracker.Click, req.ID, send)
		default:
			send(positionResponse{Type: "error", Error: "unknown message type: " + req.Type})
		}
	}
}

// report feeds id to the tracker. Unknown ids are answered with an error;
// a repeat of the current id changes nothing and gets no reply.
func (s *Server) report(fn func(string) bool, id string, send func(positionResponse)) {
	if _, ok := s.book.Heading(id); !ok {
		send(positionResponse{Type: "error", Error: "unknown heading: " + id})
		return
	}
	fn(id)
}
