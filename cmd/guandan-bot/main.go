package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/guandan/internal/bot"
	"github.com/lox/guandan/internal/deck"
	"github.com/lox/guandan/internal/protocol"
	"github.com/lox/guandan/internal/rules"
)

// Client drives one seat over the websocket protocol using a bot.Strategy,
// reconstructing just enough of internal/game's state (current hand, the
// trick's last play) from wire messages to decide each turn.
type Client struct {
	conn     *websocket.Conn
	strategy bot.Strategy
	name     string
	logger   *log.Logger

	seat     int
	level    deck.Rank
	hand     []deck.Card
	lastPlay *rules.Classification
}

// NewClient builds a Client for the given strategy, with a randomly
// numbered "guandan-bot-N" name.
func NewClient(strategy bot.Strategy, logger *log.Logger) *Client {
	return &Client{
		strategy: strategy,
		name:     fmt.Sprintf("guandan-bot-%d", rand.Intn(10000)),
		logger:   logger,
		level:    deck.Two,
	}
}

// Connect dials serverURL and sends the initial Connect frame.
func (c *Client) Connect(serverURL string) error {
	u, err := url.Parse(serverURL)
	if err != nil {
		return err
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return err
	}
	c.conn = conn

	return c.send(&protocol.Connect{Type: "connect", Name: c.name})
}

// Run reads and handles messages until the connection closes.
func (c *Client) Run() error {
	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			return err
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		if err := c.handle(data); err != nil {
			c.logger.Error("failed to handle message", "bot", c.name, "err", err)
		}
	}
}

// Close tears down the connection.
func (c *Client) Close() {
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (c *Client) send(v interface{}) error {
	data, err := protocol.Marshal(v)
	if err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.BinaryMessage, data)
}

func (c *Client) handle(data []byte) error {
	kind, err := protocol.PeekKind(data)
	if err != nil {
		return err
	}
	msg, err := protocol.New(kind)
	if err != nil {
		return err
	}
	if err := protocol.Unmarshal(data, msg); err != nil {
		return err
	}

	switch m := msg.(type) {
	case *protocol.Welcome:
		c.seat = m.Seat
		c.logger.Info("joined room", "bot", c.name, "room", m.RoomID, "seat", m.Seat)
		return c.send(&protocol.Ready{Type: "ready"})

	case *protocol.DealStarted:
		c.level = parseRank(m.Level)
		c.hand = parseCards(m.Hand)
		c.lastPlay = nil
		c.logger.Info("deal started", "bot", c.name, "level", m.Level, "hand_size", len(c.hand))
		return nil

	case *protocol.Event:
		return c.handleEvent(m)

	case *protocol.TurnRequest:
		return c.takeTurn()

	case *protocol.ErrorMsg:
		c.logger.Warn("server rejected action", "bot", c.name, "code", m.Code, "message", m.Message)
		return nil
	}
	return nil
}

func (c *Client) handleEvent(ev *protocol.Event) error {
	switch ev.Kind {
	case protocol.EventHandPlayed:
		cards := parseCards(ev.Cards)
		if ev.Seat == c.seat {
			c.hand = removeCards(c.hand, cards)
		}
		class, err := rules.Classify(cards, c.level)
		if err != nil {
			return err
		}
		c.lastPlay = &class
	case protocol.EventTrickEnded:
		c.lastPlay = nil
	}
	return nil
}

// takeTurn asks the strategy to decide and sends the resulting play or
// pass back to the room.
func (c *Client) takeTurn() error {
	decision := c.strategy.Decide(c.hand, c.level, c.lastPlay)
	if decision.Pass {
		return c.send(&protocol.PassTurn{Type: "pass_turn"})
	}

	ids := make([]string, len(decision.Cards))
	for i, card := range decision.Cards {
		ids[i] = string(card.ID)
	}
	return c.send(&protocol.PlayCards{Type: "play_cards", CardIDs: ids})
}

func parseCards(ids []string) []deck.Card {
	cards := make([]deck.Card, 0, len(ids))
	for _, id := range ids {
		var suit, rank, copy int
		if _, err := fmt.Sscanf(id, "%d-%d-%d", &suit, &rank, &copy); err != nil {
			continue
		}
		cards = append(cards, deck.NewCard(deck.Suit(suit), deck.Rank(rank), copy))
	}
	return cards
}

func removeCards(hand, played []deck.Card) []deck.Card {
	playedSet := make(map[deck.ID]bool, len(played))
	for _, c := range played {
		playedSet[c.ID] = true
	}
	out := make([]deck.Card, 0, len(hand))
	for _, c := range hand {
		if !playedSet[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

func parseRank(s string) deck.Rank {
	switch s {
	case "2":
		return deck.Two
	case "3":
		return deck.Three
	case "4":
		return deck.Four
	case "5":
		return deck.Five
	case "6":
		return deck.Six
	case "7":
		return deck.Seven
	case "8":
		return deck.Eight
	case "9":
		return deck.Nine
	case "T":
		return deck.Ten
	case "J":
		return deck.Jack
	case "Q":
		return deck.Queen
	case "K":
		return deck.King
	case "A":
		return deck.Ace
	default:
		return deck.Two
	}
}

func main() {
	var (
		serverURL = flag.String("server", "ws://localhost:8080/ws", "WebSocket server URL")
		count     = flag.Int("count", 1, "Number of bots to run")
		debug     = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	rand.Seed(time.Now().UnixNano())

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	var clients []*Client
	for i := 0; i < *count; i++ {
		c := NewClient(bot.Heuristic{}, logger)
		if err := c.Connect(*serverURL); err != nil {
			logger.Fatal("failed to connect", "index", i, "err", err)
		}
		clients = append(clients, c)

		go func(c *Client) {
			if err := c.Run(); err != nil {
				logger.Info("bot disconnected", "bot", c.name, "err", err)
			}
		}(c)

		logger.Info("bot connected", "index", i+1, "bot", c.name)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt

	logger.Info("shutting down bots")
	for _, c := range clients {
		c.Close()
	}
}
