package engine

import (
	"sort"

	dragon "github.com/dylhunn/dragontoothmg"

	"github.com/akorenev/caprice/pkg/common"
	"github.com/akorenev/caprice/pkg/tablebase"
)

const scoreInfinity = 1 << 20

// wdlScale folds WDL and DTZ into one ordered integer: raw = wdlScale*wdl
// - dtz. DTZ magnitudes must stay below wdlScale or the classification
// order would invert, so leaf evaluation clamps them.
const wdlScale = 1000

// tablebaseCandidates runs the syzygy filter: a bounded-depth search with
// the tablebase as its leaf evaluator. ok is false when the root position
// is outside coverage or no line reaches exact knowledge; the caller then
// falls back to the unfiltered list.
func (e *Engine) tablebaseCandidates(b *dragon.Board, ml []dragon.Move) ([]dragon.Move, bool) {
	if e.tb == nil || !e.tb.Available() {
		return nil, false
	}
	var rootProbe = e.tb.Probe(b.ToFen())
	if !rootProbe.Known {
		e.debugf("syzygy: root position not covered")
		return nil, false
	}
	e.debugf("syzygy: root wdl=%v", rootProbe.WDL)

	var s = &searcher{
		tb:            e.tb,
		cache:         e.cache,
		orderingDepth: e.Options.OrderingDepth,
		debugf:        e.debugf,
	}
	var depth = common.Max(1, e.Options.Depth)
	var best, ok = s.searchRoot(b, ml, depth)
	if !ok || len(best) == 0 {
		return nil, false
	}
	return best, true
}

type searcher struct {
	tb            tablebase.Prober
	cache         *probeCache
	orderingDepth int
	debugf        func(format string, args ...interface{})
}

// searchRoot scores every candidate and keeps all moves tying the best
// score. Root children are searched with the full window so a tie found
// late is never pruned away.
func (s *searcher) searchRoot(b *dragon.Board, ml []dragon.Move, depth int) ([]dragon.Move, bool) {
	var best []dragon.Move
	var bestScore int
	var found bool
	for i := range ml {
		var move = ml[i]
		var unapply = b.Apply(move)
		var score, _, ok = s.search(b, depth-1, 1, -scoreInfinity, scoreInfinity, false, false)
		unapply()
		if !ok {
			s.debugf("syzygy: move=%v not covered", move.String())
			continue
		}
		s.debugf("syzygy: move=%v score=%v", move.String(), score)
		if !found || score > bestScore {
			found = true
			bestScore = score
			best = append(best[:0], move)
		} else if score == bestScore {
			best = append(best, move)
		}
	}
	return best, found
}

// search is alpha-beta over the shared board with make/unmake pairs on
// every path. maximizing reports whether the side to move here is the
// root side; scores are always from the root side's point of view.
// ok=false propagates "no exact knowledge reachable" for this subtree
// without failing siblings.
func (s *searcher) search(b *dragon.Board, depth, ply, alpha, beta int, maximizing, wantBest bool) (score int, best []dragon.Move, ok bool) {
	var ml = b.GenerateLegalMoves()
	if len(ml) == 0 {
		score, ok = s.leaf(b, ply, maximizing, true)
		return score, nil, ok
	}
	if depth <= 0 {
		score, ok = s.leaf(b, ply, maximizing, false)
		return score, nil, ok
	}
	common.SortMoves(ml)
	if depth > s.orderingDepth {
		if _, hint, hintOK := s.search(b, depth-1, ply, -scoreInfinity, scoreInfinity, maximizing, true); hintOK {
			orderByHint(ml, hint)
		}
	}

	var found bool
	var bestScore int
	for i := range ml {
		var move = ml[i]
		var unapply = b.Apply(move)
		var childScore, _, childOK = s.search(b, depth-1, ply+1, alpha, beta, !maximizing, false)
		unapply()
		if !childOK {
			// Coverage can be partial along some lines; a dead end is
			// skipped, not treated as a value.
			continue
		}
		if !found || better(childScore, bestScore, maximizing) {
			found = true
			bestScore = childScore
			if wantBest {
				best = append(best[:0], move)
			}
		} else if wantBest && childScore == bestScore {
			best = append(best, move)
		}
		if maximizing {
			alpha = common.Max(alpha, bestScore)
			// Strict comparison: a sibling tying the boundary must still
			// be visited so the best set stays complete.
			if bestScore > beta {
				break
			}
		} else {
			beta = common.Min(beta, bestScore)
			if bestScore < alpha {
				break
			}
		}
	}
	if !found {
		return 0, nil, false
	}
	return bestScore, best, true
}

func better(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

// leaf computes the raw tablebase score of the current position and caches
// it by FEN. Terminal positions classify exactly from the rules (mate is a
// loss for the mover, stalemate a draw) with DTZ 0. The returned score is
// the raw value oriented to the root side minus plies from the root, so
// quicker wins and slower losses win ties.
func (s *searcher) leaf(b *dragon.Board, ply int, maximizing, terminal bool) (int, bool) {
	var fen = b.ToFen()
	var raw, found = s.cache.Get(fen)
	if !found {
		var wdl tablebase.WDL
		var dtz int
		if terminal {
			if b.OurKingInCheck() {
				wdl = tablebase.WDLLoss
			} else {
				wdl = tablebase.WDLDraw
			}
		} else {
			var res = s.tb.Probe(fen)
			if !res.Known {
				return 0, false
			}
			wdl = res.WDL
			dtz = res.DTZ
			if dtz >= wdlScale || dtz <= -wdlScale {
				s.debugf("syzygy: dtz=%v exceeds fold bound, clamping", dtz)
				dtz = common.Max(common.Min(dtz, wdlScale-1), 1-wdlScale)
			}
		}
		raw = wdlScale*int(wdl) - dtz
		s.cache.Put(fen, raw)
	}
	var score = raw
	if !maximizing {
		score = -score
	}
	return score - ply, true
}

// orderByHint stable-partitions a previous best set to the front of the
// move list. Ordering only; correctness never depends on it.
func orderByHint(ml []dragon.Move, hint []dragon.Move) {
	if len(hint) == 0 {
		return
	}
	var hinted = make(map[dragon.Move]bool, len(hint))
	for _, move := range hint {
		hinted[move] = true
	}
	sort.SliceStable(ml, func(i, j int) bool {
		return hinted[ml[i]] && !hinted[ml[j]]
	})
}
