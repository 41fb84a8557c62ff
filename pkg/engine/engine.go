package engine

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	dragon "github.com/dylhunn/dragontoothmg"

	"github.com/akorenev/caprice/pkg/common"
	"github.com/akorenev/caprice/pkg/tablebase"
)

// Options is the engine configuration bound to the UCI options. The
// protocol loop owns its lifecycle; each SelectMove call reads it as a
// snapshot and never mutates it.
type Options struct {
	Debug         bool
	Deterministic bool
	Filter        string
	Promotion     string
	Seed          string
	TablebaseURL  string
	Depth         int
	OrderingDepth int
}

func NewOptions() Options {
	return Options{
		Promotion: "random",
		Depth:     1,
		// Above any usable depth: the ordering hint is opt-in.
		OrderingDepth: 64,
	}
}

type Engine struct {
	Options Options
	logger  *log.Logger
	tb      tablebase.Prober
	tbURL   string
	cache   *probeCache
	rnd     *rand.Rand
}

func NewEngine(logger *log.Logger) *Engine {
	return &Engine{
		Options: NewOptions(),
		logger:  logger,
	}
}

// Prepare brings lazily-built state in line with the current options. It
// is cheap when nothing changed and safe to call before every request.
func (e *Engine) Prepare() {
	if e.cache == nil {
		e.cache = newProbeCache()
	}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.Options.TablebaseURL != e.tbURL {
		e.tbURL = e.Options.TablebaseURL
		e.tb = nil
		if e.tbURL != "" {
			var client, err = tablebase.NewClient(e.tbURL, e.logger)
			if err != nil {
				// Fatal for the syzygy filter only: the engine keeps
				// playing without exact knowledge.
				e.logger.Println(err)
			} else {
				e.tb = client
			}
		}
	}
}

// Clear resets per-game state on ucinewgame. Cached probe scores are exact
// and position-keyed, so this is the only moment they are ever dropped.
func (e *Engine) Clear() {
	if e.cache != nil {
		e.cache.Clear()
	}
}

// SelectMove picks one legal move for the side to move: legal moves are
// sorted into canonical order, narrowed by the promotion constraint and
// the configured filter, and the selector picks from what remains. ok is
// false only when the position has no legal moves at all.
func (e *Engine) SelectMove(b *dragon.Board, lastMove string) (smove string, ok bool) {
	e.Prepare()

	var ml = b.GenerateLegalMoves()
	if len(ml) == 0 {
		return "", false
	}
	common.SortMoves(ml)
	ml = filterPromotions(ml, promotionLetter(e.Options.Promotion))

	var candidates = e.selectCandidates(b, ml, lastMove)
	if len(candidates) < len(ml) {
		e.debugf("filtered moves=%v", common.MoveStrings(candidates))
	}

	var move = e.chooseMove(candidates, b.ToFen())
	return move.String(), true
}

func (e *Engine) debugf(format string, args ...interface{}) {
	if e.Options.Debug {
		fmt.Printf("info string "+format+"\n", args...)
	}
}
