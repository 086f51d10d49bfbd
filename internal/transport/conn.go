package transport

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lox/guandan/internal/protocol"
	"github.com/lox/guandan/internal/room"
)

const (
	// writeWait is the time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// pongWait is the time allowed to read the next pong from the peer.
	pongWait = 60 * time.Second
	// pingPeriod sends a ping this often; must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// maxMessageSize bounds a single inbound frame.
	maxMessageSize = 8192
)

// Conn wraps one websocket connection and implements room.Session: Send
// marshals a protocol message and best-effort delivers it through a
// buffered channel drained by writePump, matching the teacher's
// Connection.SendMessage contract (never blocks the caller, closes the
// connection instead of backing up).
type Conn struct {
	ws     *websocket.Conn
	room   *room.Room
	send   chan []byte
	logger zerolog.Logger

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func newConn(ws *websocket.Conn, logger zerolog.Logger) *Conn {
	ctx, cancel := context.WithCancel(context.Background())
	return &Conn{
		ws:     ws,
		send:   make(chan []byte, 64),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Send implements room.Session.
func (c *Conn) Send(v interface{}) error {
	data, err := protocol.Marshal(v)
	if err != nil {
		return err
	}
	select {
	case c.send <- data:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn().Msg("send buffer full, closing connection")
		_ = c.Close()
		return websocket.ErrCloseSent
	}
}

// Close tears down the connection and tells its room the seat dropped.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.ws.Close()
		if c.room != nil {
			c.room.Disconnect(c)
		}
	})
	return err
}

func (c *Conn) readPump() {
	defer func() { _ = c.Close() }()

	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		msgType, payload, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error().Err(err).Msg("websocket read error")
			}
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		c.dispatch(payload)
	}
}

func (c *Conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.BinaryMessage, data); err != nil {
				c.logger.Error().Err(err).Msg("websocket write error")
				return
			}

		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// dispatch decodes an inbound frame and forwards it to the bound room.
// A malformed or unrecognized frame is dropped rather than closing the
// connection, matching spec's protocol-error handling: the client learns
// nothing changed, and can retry with a well-formed message.
func (c *Conn) dispatch(payload []byte) {
	kind, err := protocol.PeekKind(payload)
	if err != nil {
		return
	}
	msg, err := protocol.New(kind)
	if err != nil {
		return
	}
	if err := protocol.Unmarshal(payload, msg); err != nil {
		return
	}
	if c.room == nil {
		return
	}

	switch m := msg.(type) {
	case *protocol.Reconnect:
		c.room.Reconnect(c, m.Token)
	case *protocol.Ready:
		c.room.Ready(c)
	case *protocol.Start:
		c.room.Start(c)
	case *protocol.SwitchSeat:
		c.room.SwitchSeat(c, m.Target)
	case *protocol.SetMode:
		c.room.SetMode(c, m.Mode)
	case *protocol.Chat:
		c.room.Chat(c, m.Text)
	case *protocol.ForceEnd:
		c.room.ForceEnd(c)
	case *protocol.PlayCards:
		c.room.Play(c, m.CardIDs)
	case *protocol.PassTurn:
		c.room.Pass(c)
	case *protocol.PayTribute:
		c.room.PayTribute(c, m.CardID)
	case *protocol.ReturnTribute:
		c.room.ReturnTribute(c, m.ToSeat, m.CardID)
	}
}
