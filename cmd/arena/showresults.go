package main

import (
	"fmt"
	"log"
	"os"
)

func showResults(config Config, gameResults <-chan gameResult) error {
	var pgnFile *os.File
	if config.PGNPath != "" {
		var err error
		pgnFile, err = os.Create(config.PGNPath)
		if err != nil {
			return err
		}
		defer pgnFile.Close()
	}

	var played = 0
	var pointsA = 0.0
	for res := range gameResults {
		played++
		pointsA += res.pointsA()
		log.Printf("game %v: %v by %v in %v plies",
			res.gameNumber, res.outcome, res.method, res.plies)
		if pgnFile != nil {
			fmt.Fprintln(pgnFile, res.pgn)
			fmt.Fprintln(pgnFile)
		}
	}
	log.Printf("engine A %.1f - %.1f engine B (%v games)",
		pointsA, float64(played)-pointsA, played)
	return nil
}
