package site

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/summa-explorer/summa/internal/search"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeWait = 10 * time.Second

// liveRequest is the incoming WebSocket message format.
type liveRequest struct {
	Query string      `json:"query"`
	Limit int         `json:"limit,omitempty"`
	Mode  search.Mode `json:"mode,omitempty"`
}

// liveResponse is the outgoing WebSocket message format.
type liveResponse struct {
	Type  string      `json:"type"` // "results" or "error"
	Query string      `json:"query"`
	Mode  search.Mode `json:"mode,omitempty"`
	Hits  []hitView   `json:"hits"`
	Error string      `json:"error,omitempty"`
}

// handleLiveSearch answers every message on the connection with the results
// for its query, in order.
func (s *Site) handleLiveSearch(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("site: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	// The request deadline applies to the upgrade, not to the connection.
	ctx := context.WithoutCancel(r.Context())

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("site: websocket read: %v", err)
			}
			return
		}

		var req liveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.send(conn, liveResponse{Type: "error", Error: "invalid message format"})
			continue
		}

		page := s.runSearch(ctx, search.Request{Query: req.Query, Limit: req.Limit, Mode: req.Mode})
		if page.Error != "" {
			s.send(conn, liveResponse{Type: "error", Query: page.Query, Error: page.Error})
			continue
		}
		s.send(conn, liveResponse{
			Type:  "results",
			Query: page.Query,
			Mode:  page.Mode,
			Hits:  page.Hits,
		})
	}
}

func (s *Site) send(conn *websocket.Conn, resp liveResponse) {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("site: websocket write: %v", err)
	}
}
