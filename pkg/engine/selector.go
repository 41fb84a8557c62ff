package engine

import (
	"crypto/sha1"
	"encoding/binary"

	dragon "github.com/dylhunn/dragontoothmg"
)

// chooseMove picks the final move from a non-empty candidate list. A
// singleton bypasses both modes. Deterministic mode derives the index
// from the position text alone, so replaying the same position with the
// same seed always yields the same move.
func (e *Engine) chooseMove(candidates []dragon.Move, fen string) dragon.Move {
	if len(candidates) == 1 {
		return candidates[0]
	}
	if e.Options.Deterministic {
		return candidates[chooseIndex(fen, e.Options.Seed, len(candidates))]
	}
	return candidates[e.rnd.Intn(len(candidates))]
}

// chooseIndex hashes the position text (plus " "+seed when a seed is set)
// with SHA-1 and reduces the first four digest bytes, read little-endian,
// modulo n.
func chooseIndex(positionText, seed string, n int) int {
	var text = positionText
	if seed != "" {
		text += " " + seed
	}
	var digest = sha1.Sum([]byte(text))
	return int(binary.LittleEndian.Uint32(digest[:4]) % uint32(n))
}
