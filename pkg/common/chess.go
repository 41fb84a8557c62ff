package common

import (
	"sort"
	"strings"

	dragon "github.com/dylhunn/dragontoothmg"
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SortMoves orders moves by their UCI text ("a2a3" < "a2a4" < "b1a3" ...).
// This is the canonical order every candidate list starts from.
func SortMoves(ml []dragon.Move) {
	sort.Slice(ml, func(i, j int) bool {
		return ml[i].String() < ml[j].String()
	})
}

func MoveStrings(ml []dragon.Move) []string {
	var result = make([]string, len(ml))
	for i := range ml {
		result[i] = ml[i].String()
	}
	return result
}

// FindMove resolves a UCI move string against a legal move list.
func FindMove(ml []dragon.Move, smove string) (dragon.Move, bool) {
	for i := range ml {
		if ml[i].String() == smove {
			return ml[i], true
		}
	}
	return 0, false
}

func IsPromotion(m dragon.Move) bool {
	return m.Promote() != dragon.Nothing
}

// PieceSymbolAt returns the FEN symbol of the piece on the given square
// (0..63, a1=0), uppercase for white, or 0 for an empty square.
func PieceSymbolAt(b *dragon.Board, sq uint8) byte {
	var bit = uint64(1) << sq
	var symbols = [...]struct {
		bb     uint64
		symbol byte
	}{
		{b.White.Pawns, 'P'},
		{b.White.Knights, 'N'},
		{b.White.Bishops, 'B'},
		{b.White.Rooks, 'R'},
		{b.White.Queens, 'Q'},
		{b.White.Kings, 'K'},
		{b.Black.Pawns, 'p'},
		{b.Black.Knights, 'n'},
		{b.Black.Bishops, 'b'},
		{b.Black.Rooks, 'r'},
		{b.Black.Queens, 'q'},
		{b.Black.Kings, 'k'},
	}
	for _, item := range symbols {
		if item.bb&bit != 0 {
			return item.symbol
		}
	}
	return 0
}

// Diagram renders the board as text, rank 8 first, for the "print" command.
func Diagram(b *dragon.Board) string {
	var sb = &strings.Builder{}
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			var symbol = PieceSymbolAt(b, uint8(rank*8+file))
			if symbol == 0 {
				symbol = '.'
			}
			sb.WriteByte(symbol)
		}
		if rank > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// CountPieces returns the number of men in the piece-placement field of a FEN.
func CountPieces(fen string) int {
	var board = fen
	if i := strings.IndexByte(fen, ' '); i >= 0 {
		board = fen[:i]
	}
	var count = 0
	for _, ch := range board {
		if strings.ContainsRune("pnbrqkPNBRQK", ch) {
			count++
		}
	}
	return count
}
