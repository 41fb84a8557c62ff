package tablebase

// WDL classifies a position for the side to move using the five-valued
// syzygy scale. Cursed wins and blessed losses are wins/losses that the
// fifty-move rule may turn into draws.
type WDL int

const (
	WDLLoss        WDL = -2
	WDLBlessedLoss WDL = -1
	WDLDraw        WDL = 0
	WDLCursedWin   WDL = 1
	WDLWin         WDL = 2
)

func (wdl WDL) String() string {
	switch wdl {
	case WDLLoss:
		return "loss"
	case WDLBlessedLoss:
		return "blessed-loss"
	case WDLDraw:
		return "draw"
	case WDLCursedWin:
		return "cursed-win"
	case WDLWin:
		return "win"
	}
	return "unknown"
}

// Result is the outcome of one probe. Known is false when the position is
// outside coverage; WDL and DTZ are only meaningful when Known is true.
// DTZ is the distance to the next zeroing move, signed like WDL.
type Result struct {
	Known bool
	WDL   WDL
	DTZ   int
}

// Prober answers exact endgame questions for a position given by its FEN.
// Out-of-coverage positions report a not-Known Result, never an error.
type Prober interface {
	Probe(fen string) Result
	MaxPieces() int
	Available() bool
}
