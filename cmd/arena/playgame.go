package main

import (
	"fmt"

	dragon "github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"

	"github.com/akorenev/caprice/pkg/common"
	"github.com/akorenev/caprice/pkg/engine"
)

type gameInfo struct {
	gameNumber     int
	engineAIsWhite bool
}

type gameResult struct {
	gameInfo
	outcome chess.Outcome
	method  chess.Method
	plies   int
	pgn     string
}

// playGame runs one game between the two engines. The engines move on a
// dragontoothmg board; the same moves are replayed into a notnil/chess
// game, which adjudicates the result (mate, stalemate, repetition,
// insufficient material) and renders the PGN.
func playGame(engineA, engineB *engine.Engine, maxPlies int, info gameInfo) (gameResult, error) {
	engineA.Clear()
	engineB.Clear()

	var game = chess.NewGame()
	var notation = chess.UCINotation{}
	var board = dragon.ParseFen(common.InitialPositionFen)
	var lastMove = ""
	var plies = 0

	for game.Outcome() == chess.NoOutcome {
		if plies >= maxPlies {
			if err := game.Draw(chess.DrawOffer); err != nil {
				return gameResult{}, err
			}
			break
		}
		var eng = engineB
		if board.Wtomove == info.engineAIsWhite {
			eng = engineA
		}
		var smove, ok = eng.SelectMove(&board, lastMove)
		if !ok {
			return gameResult{}, fmt.Errorf("game %v: no move in a position the game considers live", info.gameNumber)
		}
		var move, found = common.FindMove(board.GenerateLegalMoves(), smove)
		if !found {
			return gameResult{}, fmt.Errorf("game %v: illegal move %v", info.gameNumber, smove)
		}
		var parsed, err = notation.Decode(game.Position(), smove)
		if err != nil {
			return gameResult{}, fmt.Errorf("game %v: %w", info.gameNumber, err)
		}
		if err := game.Move(parsed); err != nil {
			return gameResult{}, fmt.Errorf("game %v: %w", info.gameNumber, err)
		}
		board.Apply(move)
		lastMove = smove
		plies++
	}

	return gameResult{
		gameInfo: info,
		outcome:  game.Outcome(),
		method:   game.Method(),
		plies:    plies,
		pgn:      game.String(),
	}, nil
}

func (res *gameResult) pointsA() float64 {
	switch res.outcome {
	case chess.WhiteWon:
		if res.engineAIsWhite {
			return 1
		}
		return 0
	case chess.BlackWon:
		if res.engineAIsWhite {
			return 0
		}
		return 1
	}
	return 0.5
}
