package game

// Result summarizes a concluded deal for the match controller: the
// finishing order (winner first) and whether the winning team swept 1st
// and 2nd place, which the match controller's level-up table keys off of.
type Result struct {
	Finish     []Seat
	DoubleDown bool
}

// Result returns the deal's outcome. It is only meaningful once Phase is
// Score.
func (d *Deal) Result() Result {
	doubleDown := len(d.finished) == 4 && d.finished[0].Team() == d.finished[1].Team()
	return Result{
		Finish:     d.Finished(),
		DoubleDown: doubleDown,
	}
}
