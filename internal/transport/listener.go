package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lox/guandan/internal/protocol"
	"github.com/lox/guandan/internal/room"
)

var upgrader = websocket.Upgrader{
	// Matches the teacher's buffer sizing; profiling on the original poker
	// server found read/write syscalls dominating at the default 1024.
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Registry resolves the room a Connect names, creating one if the room ID
// is empty or unknown. Satisfied by internal/registry.
type Registry interface {
	JoinOrCreate(roomID string) *room.Room
}

// Handler is the HTTP entry point for inbound websocket connections: one
// per room server, mounted at the room endpoint.
type Handler struct {
	registry Registry
	logger   zerolog.Logger
}

// NewHandler builds a Handler that places each upgraded connection into a
// room resolved through registry.
func NewHandler(registry Registry, logger zerolog.Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger.With().Str("component", "transport").Logger(),
	}
}

// ServeHTTP upgrades the request, reads the mandatory first Connect frame,
// resolves the target room, and starts the connection's read/write pumps.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	conn := newConn(ws, h.logger)

	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	msgType, payload, err := ws.ReadMessage()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read connect message")
		_ = ws.Close()
		return
	}
	if msgType != websocket.BinaryMessage {
		h.logger.Error().Msg("connect message must be binary")
		_ = ws.Close()
		return
	}

	kind, err := protocol.PeekKind(payload)
	if err != nil || kind != protocol.KindConnect {
		h.logger.Error().Msg("first message was not a connect request")
		_ = ws.Close()
		return
	}
	var connectMsg protocol.Connect
	if err := protocol.Unmarshal(payload, &connectMsg); err != nil {
		h.logger.Error().Err(err).Msg("invalid connect payload")
		_ = ws.Close()
		return
	}

	target := h.registry.JoinOrCreate(connectMsg.RoomID)
	conn.room = target

	go conn.writePump()
	go conn.readPump()

	if connectMsg.Token != "" {
		target.Reconnect(conn, connectMsg.Token)
		return
	}
	target.Join(conn, connectMsg.Name)
}
