package protocol

import (
	"bytes"
	"errors"
	"sync"

	"github.com/tinylib/msgp/msgp"
)

// ErrUnknownMessageType is returned by Marshal/Unmarshal for a Go type with
// no registered Kind, or by New for an unrecognized Kind byte.
var ErrUnknownMessageType = errors.New("protocol: unknown message type")

// encoder is implemented by every message type in this package.
type encoder interface {
	EncodeMsg(*msgp.Writer) error
}

type decoder interface {
	DecodeMsg(*msgp.Reader) error
}

var bufferPool = sync.Pool{
	New: func() interface{} { return &bytes.Buffer{} },
}

// Marshal serializes a message to msgpack, prefixed with its one-byte Kind
// so a reader can dispatch to the right struct before decoding.
func Marshal(v interface{}) ([]byte, error) {
	kind, err := kindOf(v)
	if err != nil {
		return nil, err
	}
	enc, ok := v.(encoder)
	if !ok {
		return nil, ErrUnknownMessageType
	}

	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	buf.WriteByte(byte(kind))
	writer := msgp.NewWriter(buf)
	if err := enc.EncodeMsg(writer); err != nil {
		return nil, err
	}
	if err := writer.Flush(); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Unmarshal decodes msgpack-encoded data (including its Kind prefix) into
// v, which must be a pointer to the struct matching data's Kind byte.
func Unmarshal(data []byte, v interface{}) error {
	if len(data) < 1 {
		return errors.New("protocol: empty message")
	}
	dec, ok := v.(decoder)
	if !ok {
		return ErrUnknownMessageType
	}
	reader := msgp.NewReader(bytes.NewReader(data[1:]))
	return dec.DecodeMsg(reader)
}

// PeekKind reads the one-byte Kind prefix without decoding the payload.
func PeekKind(data []byte) (Kind, error) {
	if len(data) < 1 {
		return 0, errors.New("protocol: empty message")
	}
	return Kind(data[0]), nil
}

// New constructs a zero-valued message for the given Kind, for callers that
// decode by Kind before knowing the concrete type.
func New(kind Kind) (interface{}, error) {
	switch kind {
	case KindConnect:
		return &Connect{}, nil
	case KindReconnect:
		return &Reconnect{}, nil
	case KindReady:
		return &Ready{}, nil
	case KindPlayCards:
		return &PlayCards{}, nil
	case KindPassTurn:
		return &PassTurn{}, nil
	case KindPayTribute:
		return &PayTribute{}, nil
	case KindReturnTribute:
		return &ReturnTribute{}, nil
	case KindStart:
		return &Start{}, nil
	case KindSwitchSeat:
		return &SwitchSeat{}, nil
	case KindSetMode:
		return &SetMode{}, nil
	case KindChat:
		return &Chat{}, nil
	case KindForceEnd:
		return &ForceEnd{}, nil
	case KindWelcome:
		return &Welcome{}, nil
	case KindSeatUpdate:
		return &SeatUpdate{}, nil
	case KindDealStarted:
		return &DealStarted{}, nil
	case KindTurnRequest:
		return &TurnRequest{}, nil
	case KindEvent:
		return &Event{}, nil
	case KindErrorMsg:
		return &ErrorMsg{}, nil
	case KindRoomState:
		return &RoomState{}, nil
	case KindGameState:
		return &GameState{}, nil
	case KindGameOver:
		return &GameOver{}, nil
	case KindMatchOver:
		return &MatchOver{}, nil
	case KindChatMessage:
		return &ChatMessage{}, nil
	default:
		return nil, ErrUnknownMessageType
	}
}

func kindOf(v interface{}) (Kind, error) {
	switch v.(type) {
	case *Connect:
		return KindConnect, nil
	case *Reconnect:
		return KindReconnect, nil
	case *Ready:
		return KindReady, nil
	case *PlayCards:
		return KindPlayCards, nil
	case *PassTurn:
		return KindPassTurn, nil
	case *PayTribute:
		return KindPayTribute, nil
	case *ReturnTribute:
		return KindReturnTribute, nil
	case *Start:
		return KindStart, nil
	case *SwitchSeat:
		return KindSwitchSeat, nil
	case *SetMode:
		return KindSetMode, nil
	case *Chat:
		return KindChat, nil
	case *ForceEnd:
		return KindForceEnd, nil
	case *Welcome:
		return KindWelcome, nil
	case *SeatUpdate:
		return KindSeatUpdate, nil
	case *DealStarted:
		return KindDealStarted, nil
	case *TurnRequest:
		return KindTurnRequest, nil
	case *Event:
		return KindEvent, nil
	case *ErrorMsg:
		return KindErrorMsg, nil
	case *RoomState:
		return KindRoomState, nil
	case *GameState:
		return KindGameState, nil
	case *GameOver:
		return KindGameOver, nil
	case *MatchOver:
		return KindMatchOver, nil
	case *ChatMessage:
		return KindChatMessage, nil
	default:
		return 0, ErrUnknownMessageType
	}
}
