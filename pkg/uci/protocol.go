package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	dragon "github.com/dylhunn/dragontoothmg"

	"github.com/akorenev/caprice/pkg/common"
)

type Engine interface {
	Prepare()
	Clear()
	SelectMove(b *dragon.Board, lastMove string) (smove string, ok bool)
}

// Protocol is a synchronous UCI loop: one command is fully handled before
// the next is read. It owns the current board and delegates the actual
// move choice to the engine.
type Protocol struct {
	name     string
	author   string
	version  string
	options  []Option
	engine   Engine
	board    dragon.Board
	lastMove string
	output   io.Writer
}

func New(name, author, version string, engine Engine, options []Option) *Protocol {
	return &Protocol{
		name:    name,
		author:  author,
		version: version,
		engine:  engine,
		options: options,
		board:   dragon.ParseFen(common.InitialPositionFen),
		output:  os.Stdout,
	}
}

func (uci *Protocol) Run(logger *log.Logger) {
	var scanner = bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return
		}
		if commandLine == "" {
			continue
		}
		var err = uci.Handle(commandLine)
		if err != nil {
			logger.Println(err)
		}
	}
}

func (uci *Protocol) Handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "stop":
		h = uci.stopCommand
	case "print":
		h = uci.printCommand
	}

	if h == nil {
		return fmt.Errorf("command not found: %v", commandName)
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Fprintf(uci.output, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.output, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.output, option.UciString())
	}
	fmt.Fprintln(uci.output, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], fields[3]
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return errors.New("unhandled option")
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	uci.engine.Prepare()
	fmt.Fprintln(uci.output, "readyok")
	return nil
}

func (uci *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("invalid position arguments")
	}
	var fen string
	var movesIndex = findIndexString(fields, "moves")
	var token = fields[0]
	if token == "startpos" {
		fen = common.InitialPositionFen
	} else if token == "fen" {
		if movesIndex == -1 {
			fen = strings.Join(fields[1:], " ")
		} else {
			fen = strings.Join(fields[1:movesIndex], " ")
		}
	} else {
		return errors.New("unknown position command")
	}
	var board = dragon.ParseFen(fen)
	var lastMove = ""
	if movesIndex >= 0 && movesIndex+1 < len(fields) {
		for _, smove := range fields[movesIndex+1:] {
			var move, ok = common.FindMove(board.GenerateLegalMoves(), smove)
			if !ok {
				return fmt.Errorf("illegal move %v", smove)
			}
			board.Apply(move)
			lastMove = smove
		}
	}
	uci.board = board
	uci.lastMove = lastMove
	return nil
}

// goCommand answers with exactly one move. Search arguments (depth, time,
// nodes) are accepted and ignored: the engine has no clock to manage. The
// chosen move is played on the protocol's own board, so consecutive "go"
// commands continue the game the way the original engine did.
func (uci *Protocol) goCommand(fields []string) error {
	var smove, ok = uci.engine.SelectMove(&uci.board, uci.lastMove)
	if !ok {
		fmt.Fprintln(uci.output, "bestmove (none)")
		return nil
	}
	var move, found = common.FindMove(uci.board.GenerateLegalMoves(), smove)
	if !found {
		return fmt.Errorf("engine returned illegal move %v", smove)
	}
	uci.board.Apply(move)
	uci.lastMove = smove
	fmt.Fprintf(uci.output, "bestmove %v\n", smove)
	return nil
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	uci.board = dragon.ParseFen(common.InitialPositionFen)
	uci.lastMove = ""
	uci.engine.Clear()
	return nil
}

func (uci *Protocol) stopCommand(fields []string) error {
	// Nothing runs in the background, so there is nothing to stop.
	return nil
}

// printCommand is a non-standard helper carried over from the original
// engine: it dumps the current board as a diagram.
func (uci *Protocol) printCommand(fields []string) error {
	fmt.Fprintln(uci.output, common.Diagram(&uci.board))
	return nil
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
