// Package room implements the per-table actor that owns a four-seat
// Guandan table: session binding, ready/start, seat switching, and
// dispatching inbound play to the deal engine and match controller it
// owns. All mutation happens on one goroutine per room, grounded on the
// teacher's BotPool.Run() register/unregister actor loop, generalized from
// a free-agent bot pool to a fixed four-seat table.
package room
