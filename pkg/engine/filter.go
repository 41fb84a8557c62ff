package engine

import (
	dragon "github.com/dylhunn/dragontoothmg"

	"github.com/akorenev/caprice/pkg/common"
)

// promotionLetter maps the Promotion option to the piece letter a UCI
// promotion move carries, or 0 when any promotion is acceptable.
func promotionLetter(option string) byte {
	switch option {
	case "", "none", "random":
		return 0
	case "knight":
		return 'n'
	}
	return option[0]
}

// filterPromotions drops promotions to pieces other than the constrained
// one. Non-promotion moves always survive, so the list can only become
// empty if it already was.
func filterPromotions(ml []dragon.Move, letter byte) []dragon.Move {
	if letter == 0 {
		return ml
	}
	var result = ml[:0]
	for _, move := range ml {
		var smove = move.String()
		if len(smove) == 4 || smove[4] == letter {
			result = append(result, move)
		}
	}
	return result
}

// selectCandidates narrows the sorted legal move list according to the
// configured filter. Every branch that cannot deliver (missing last move,
// illegal proposed move, empty subset, no tablebase coverage) falls back
// to the unfiltered list, so the result is never empty while ml is not.
func (e *Engine) selectCandidates(b *dragon.Board, ml []dragon.Move, lastMove string) []dragon.Move {
	switch filter := e.Options.Filter; filter {
	case "", "none":
		return ml
	case "first":
		return ml[:1]
	case "last":
		return ml[len(ml)-1:]
	case "mirror":
		if lastMove != "" {
			if move, ok := common.FindMove(ml, mirrorMove(lastMove)); ok {
				return []dragon.Move{move}
			}
		}
		return ml
	case "rotate":
		if lastMove != "" {
			if move, ok := common.FindMove(ml, rotateMove(lastMove)); ok {
				return []dragon.Move{move}
			}
		}
		return ml
	case "syzygy":
		if candidates, ok := e.tablebaseCandidates(b, ml); ok {
			return candidates
		}
		return ml
	default:
		// Any other single letter selects moves of that piece.
		if len(filter) != 1 {
			return ml
		}
		var subset []dragon.Move
		for _, move := range ml {
			if common.PieceSymbolAt(b, uint8(move.From())) == filter[0] {
				subset = append(subset, move)
			}
		}
		if len(subset) == 0 {
			return ml
		}
		return subset
	}
}

// mirrorMove reflects a UCI move across the horizontal axis between the
// fourth and fifth ranks: rank' = 9 - rank, file and promotion suffix
// unchanged. Applying it twice returns the original move.
func mirrorMove(smove string) string {
	if len(smove) < 4 {
		return smove
	}
	var b = []byte(smove)
	b[1] = '1' + '8' - b[1]
	b[3] = '1' + '8' - b[3]
	return string(b)
}

// rotateMove reflects a UCI move through the board center: file' =
// 'i' - file and rank' = 9 - rank on both endpoints. Also an involution.
func rotateMove(smove string) string {
	if len(smove) < 4 {
		return smove
	}
	var b = []byte(smove)
	b[0] = 'a' + 'h' - b[0]
	b[1] = '1' + '8' - b[1]
	b[2] = 'a' + 'h' - b[2]
	b[3] = '1' + '8' - b[3]
	return string(b)
}
