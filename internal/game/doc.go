// Package game implements the per-deal state machine (C3): dealing,
// tribute, return-tribute, the playing phase's turn protocol, and scoring
// for a single Guandan deal. A Deal is built by the match controller
// (match.NextDeal) and held by the room that plays it; it surfaces events,
// game-end included, through its EventBus rather than holding a back
// pointer to either.
package game
