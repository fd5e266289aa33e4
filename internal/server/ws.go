package server

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // same-origin chat widget plus local dev
	},
}

// handleWebSocket runs a chat session over one WebSocket connection. Each
// incoming JSON message is a turn; the conversation ID is pinned to the
// connection after the first turn so follow-ups resolve against the same
// stored context.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	var conversationID string
	for {
		var req chatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", "error", err)
			}
			return
		}
		if req.ConversationID == "" {
			req.ConversationID = conversationID
		}

		resp, err := s.runTurn(r, req)
		if err != nil {
			s.logger.Error("websocket turn failed", "error", err)
			return
		}
		conversationID = resp.ConversationID

		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Warn("websocket write failed", "error", err)
			return
		}
	}
}
