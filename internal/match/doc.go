// Package match implements the match controller (C4): the level-up table,
// active-team tracking, consecutive-win-at-14 termination, and deal
// chaining across a sequence of game.Deal instances. A Match owns no
// transport or room state; it is driven entirely by its owner calling
// NextDeal/ApplyResult in response to a game.Deal reaching its Score phase.
package match
