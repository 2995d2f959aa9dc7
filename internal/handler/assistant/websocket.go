// Package assistant carries the live command channel: the client sends
// whole commands over a websocket and receives parsed results and
// suggestions on the same connection.
package assistant

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/taskmind/backend/internal/model/profile"
	suggestModel "github.com/taskmind/backend/internal/model/suggest"
	nlpservice "github.com/taskmind/backend/internal/service/nlp"
	suggestservice "github.com/taskmind/backend/internal/service/suggest"
)

// Handler upgrades assistant connections and dispatches inbound frames.
type Handler struct {
	nlpSvc   *nlpservice.Service
	engine   *suggestservice.Engine
	profiles profile.Store
	upgrader websocket.Upgrader
}

// New creates the websocket assistant handler.
func New(nlpSvc *nlpservice.Service, engine *suggestservice.Engine, profiles profile.Store) *Handler {
	return &Handler{
		nlpSvc:   nlpSvc,
		engine:   engine,
		profiles: profiles,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the assistant websocket route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/assistant/ws", h.handleWebSocket)
}

type inboundMessage struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

type commandMessage struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

type suggestMessage struct {
	UserID  string               `json:"userId"`
	Context suggestModel.Context `json:"context,omitempty"`
	Count   int                  `json:"count,omitempty"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	log.Printf("[ws] assistant session %s opened", sessionID)
	h.send(conn, outgoingMessage{Type: "ready", SessionID: sessionID, Timestamp: now()})

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] session %s read error: %v", sessionID, err)
			}
			return
		}

		switch msg.Type {
		case "command":
			h.handleCommand(r, conn, sessionID, msg.Data)
		case "suggest":
			h.handleSuggest(conn, sessionID, msg.Data)
		default:
			h.send(conn, outgoingMessage{
				Type:      "error",
				SessionID: sessionID,
				Error:     "unsupported message type: " + msg.Type,
				Timestamp: now(),
			})
		}
	}
}

func (h *Handler) handleCommand(r *http.Request, conn *websocket.Conn, sessionID string, raw json.RawMessage) {
	var cmd commandMessage
	if err := json.Unmarshal(raw, &cmd); err != nil || cmd.Text == "" {
		h.send(conn, outgoingMessage{
			Type:      "error",
			SessionID: sessionID,
			Error:     "command requires a text field",
			Timestamp: now(),
		})
		return
	}

	result := h.nlpSvc.ParseCommand(r.Context(), cmd.Text)
	if cmd.UserID != "" {
		h.profiles.AppendHistory(cmd.UserID, cmd.Text, result.Action)
	}
	h.send(conn, outgoingMessage{Type: "result", SessionID: sessionID, Data: result, Timestamp: now()})
}

func (h *Handler) handleSuggest(conn *websocket.Conn, sessionID string, raw json.RawMessage) {
	var req suggestMessage
	if err := json.Unmarshal(raw, &req); err != nil || req.UserID == "" {
		h.send(conn, outgoingMessage{
			Type:      "error",
			SessionID: sessionID,
			Error:     "suggest requires a userId field",
			Timestamp: now(),
		})
		return
	}

	suggestions := h.engine.SuggestTasks(req.UserID, req.Context, req.Count)
	h.send(conn, outgoingMessage{
		Type:      "suggestions",
		SessionID: sessionID,
		Data:      map[string]any{"suggestions": suggestions},
		Timestamp: now(),
	})
}

func (h *Handler) send(conn *websocket.Conn, msg outgoingMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[ws] write failed: %v", err)
	}
}

func now() int64 {
	return time.Now().UnixMilli()
}
