package room

import "github.com/lox/guandan/internal/protocol"

// Constructors for the outbound protocol messages the room sends; kept
// separate from the operations that trigger them so each stays a
// one-line Send call.

func newWelcomeMsg(roomID string, seat int, token string) *protocol.Welcome {
	return &protocol.Welcome{Type: "welcome", RoomID: roomID, Seat: seat, Token: token}
}

func newErrorMsg(code, message string) *protocol.ErrorMsg {
	return &protocol.ErrorMsg{Type: "error", Code: code, Message: message}
}

func newChatMessage(sender, text string, seat int, now int64) *protocol.ChatMessage {
	return &protocol.ChatMessage{Type: "chat_message", Sender: sender, Text: text, Seat: seat, Time: now}
}
