// Package transport carries protocol messages over a websocket connection,
// implementing internal/room's Session interface. Framing and the
// ping/pong keepalive are grounded on the teacher's internal/server
// Connection/readPump/writePump pair, generalized from JSON frames to
// protocol's Kind-prefixed msgpack frames.
package transport
