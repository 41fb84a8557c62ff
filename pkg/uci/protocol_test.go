package uci

import (
	"strings"
	"testing"

	dragon "github.com/dylhunn/dragontoothmg"

	"github.com/akorenev/caprice/pkg/common"
)

type stubEngine struct {
	prepares int
	clears   int
	moves    []string
	lastSeen string
}

func (e *stubEngine) Prepare() { e.prepares++ }
func (e *stubEngine) Clear()   { e.clears++ }

func (e *stubEngine) SelectMove(b *dragon.Board, lastMove string) (string, bool) {
	e.lastSeen = lastMove
	if len(e.moves) == 0 {
		return "", false
	}
	var smove = e.moves[0]
	e.moves = e.moves[1:]
	return smove, true
}

func testProtocol(eng Engine, options ...Option) (*Protocol, *strings.Builder) {
	var uci = New("Caprice", "Test", "dev", eng, options)
	var out = &strings.Builder{}
	uci.output = out
	return uci, out
}

func TestPositionStartposWithMoves(t *testing.T) {
	var eng = &stubEngine{}
	var uci, _ = testProtocol(eng)

	if err := uci.Handle("position startpos moves e2e4 e7e5"); err != nil {
		t.Fatal(err)
	}
	if uci.lastMove != "e7e5" {
		t.Errorf("lastMove = %v", uci.lastMove)
	}
	if fen, want := uci.board.ToFen(), applied(t, "e2e4", "e7e5"); fen != want {
		t.Errorf("fen = %v, want %v", fen, want)
	}
}

// applied builds the position reached from the start by the given moves.
func applied(t *testing.T, smoves ...string) string {
	t.Helper()
	var b = dragon.ParseFen(common.InitialPositionFen)
	for _, smove := range smoves {
		var move, ok = common.FindMove(b.GenerateLegalMoves(), smove)
		if !ok {
			t.Fatalf("illegal move %v", smove)
		}
		b.Apply(move)
	}
	return b.ToFen()
}

func TestPositionFen(t *testing.T) {
	var eng = &stubEngine{}
	var uci, _ = testProtocol(eng)

	const fen = "7k/8/8/8/8/8/8/KR6 w - - 0 1"
	if err := uci.Handle("position fen " + fen); err != nil {
		t.Fatal(err)
	}
	if got := uci.board.ToFen(); got != fen {
		t.Errorf("fen = %v", got)
	}
	if uci.lastMove != "" {
		t.Errorf("lastMove = %v", uci.lastMove)
	}
}

func TestPositionFenWithMoves(t *testing.T) {
	var eng = &stubEngine{}
	var uci, _ = testProtocol(eng)

	var cmd = "position fen " + common.InitialPositionFen + " moves d2d4"
	if err := uci.Handle(cmd); err != nil {
		t.Fatal(err)
	}
	if uci.lastMove != "d2d4" {
		t.Errorf("lastMove = %v", uci.lastMove)
	}
}

func TestPositionRejectsIllegalMove(t *testing.T) {
	var eng = &stubEngine{}
	var uci, _ = testProtocol(eng)

	if err := uci.Handle("position startpos moves e2e5"); err == nil {
		t.Error("expected an error for an illegal move")
	}
}

func TestGoPlaysChosenMove(t *testing.T) {
	var eng = &stubEngine{moves: []string{"e2e4"}}
	var uci, out = testProtocol(eng)

	if err := uci.Handle("position startpos"); err != nil {
		t.Fatal(err)
	}
	if err := uci.Handle("go movetime 1000"); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "bestmove e2e4\n" {
		t.Errorf("output = %q", got)
	}
	// The move is played on the protocol's board and remembered.
	if uci.lastMove != "e2e4" {
		t.Errorf("lastMove = %v", uci.lastMove)
	}
	if fen, want := uci.board.ToFen(), applied(t, "e2e4"); fen != want {
		t.Errorf("fen = %v, want %v", fen, want)
	}
}

func TestGoPassesLastMoveToEngine(t *testing.T) {
	var eng = &stubEngine{moves: []string{"e7e5"}}
	var uci, _ = testProtocol(eng)

	if err := uci.Handle("position startpos moves e2e4"); err != nil {
		t.Fatal(err)
	}
	if err := uci.Handle("go"); err != nil {
		t.Fatal(err)
	}
	if eng.lastSeen != "e2e4" {
		t.Errorf("engine saw last move %v", eng.lastSeen)
	}
}

func TestGoWithoutMoves(t *testing.T) {
	var eng = &stubEngine{}
	var uci, out = testProtocol(eng)

	if err := uci.Handle("go"); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "bestmove (none)\n" {
		t.Errorf("output = %q", got)
	}
}

func TestGoRejectsIllegalEngineMove(t *testing.T) {
	var eng = &stubEngine{moves: []string{"e2e5"}}
	var uci, out = testProtocol(eng)

	if err := uci.Handle("go"); err == nil {
		t.Error("expected an error for an illegal engine move")
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestUciNewGameResets(t *testing.T) {
	var eng = &stubEngine{moves: []string{"e2e4"}}
	var uci, _ = testProtocol(eng)

	if err := uci.Handle("position startpos"); err != nil {
		t.Fatal(err)
	}
	if err := uci.Handle("go"); err != nil {
		t.Fatal(err)
	}
	if err := uci.Handle("ucinewgame"); err != nil {
		t.Fatal(err)
	}
	if fen := uci.board.ToFen(); fen != common.InitialPositionFen {
		t.Errorf("fen = %v", fen)
	}
	if uci.lastMove != "" {
		t.Errorf("lastMove = %v", uci.lastMove)
	}
	if eng.clears != 1 {
		t.Errorf("engine cleared %v times", eng.clears)
	}
}

func TestIsReady(t *testing.T) {
	var eng = &stubEngine{}
	var uci, out = testProtocol(eng)

	if err := uci.Handle("isready"); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "readyok\n" {
		t.Errorf("output = %q", got)
	}
	if eng.prepares != 1 {
		t.Errorf("engine prepared %v times", eng.prepares)
	}
}

func TestUciCommandListsOptions(t *testing.T) {
	var debug = false
	var eng = &stubEngine{}
	var uci, out = testProtocol(eng, &BoolOption{Name: "Debug", Value: &debug})

	if err := uci.Handle("uci"); err != nil {
		t.Fatal(err)
	}
	var lines = strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	var want = []string{
		"id name Caprice dev",
		"id author Test",
		"option name Debug type check default false",
		"uciok",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %v lines: %q", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %v = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSetOption(t *testing.T) {
	var debug = false
	var eng = &stubEngine{}
	var uci, _ = testProtocol(eng, &BoolOption{Name: "Debug", Value: &debug})

	if err := uci.Handle("setoption name debug value true"); err != nil {
		t.Fatal(err)
	}
	if !debug {
		t.Error("option not applied")
	}
	if err := uci.Handle("setoption name Missing value 1"); err == nil {
		t.Error("expected an error for an unknown option")
	}
	if err := uci.Handle("setoption name Debug"); err == nil {
		t.Error("expected an error for missing arguments")
	}
}

func TestUnknownCommand(t *testing.T) {
	var eng = &stubEngine{}
	var uci, _ = testProtocol(eng)

	if err := uci.Handle("perft 5"); err == nil {
		t.Error("expected an error for an unknown command")
	}
}

func TestStopIsNoop(t *testing.T) {
	var eng = &stubEngine{}
	var uci, out = testProtocol(eng)

	if err := uci.Handle("stop"); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}
