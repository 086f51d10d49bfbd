package room

// Seat holds one of the table's four fixed positions. Identity (Name,
// Token) persists across a dropped connection; Session is nil while the
// seat is empty or disconnected.
type Seat struct {
	Name    string
	Token   string
	Session Session
	Ready   bool
	IsBot   bool

	// Connected is false for an empty seat or one whose occupant dropped
	// mid-match; the seat is still considered present by the deal engine
	// while a match is active (spec's disconnect semantics forbid bot
	// substitution for a disconnected human).
	Connected bool
}

// occupied reports whether the seat has ever been claimed (by a human or a
// bot), regardless of current connection state.
func (s *Seat) occupied() bool {
	return s.Name != ""
}

// empty reports whether the seat is free to claim: never occupied, or
// cleared by a pre-match disconnect.
func (s *Seat) empty() bool {
	return !s.occupied()
}

func (s *Seat) clear() {
	*s = Seat{}
}
