package main

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

type arena struct {
	config Config
}

func (a *arena) Run(ctx context.Context) error {
	log.Println("arena started")
	defer log.Println("arena finished")

	log.Println("NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"concurrency", a.config.Concurrency)

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		for i := 0; i < a.config.Games; i++ {
			var info = gameInfo{
				gameNumber:     i + 1,
				engineAIsWhite: i%2 == 0,
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameInfos <- info:
			}
		}
		return nil
	})

	g.Go(func() error {
		return showResults(a.config, gameResults)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < a.config.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	return g.Wait()
}

func (a *arena) playGames(
	ctx context.Context,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engineA = newEngine(a.config.FilterA)
	var engineB = newEngine(a.config.FilterB)
	for info := range gameInfos {
		if a.config.Deterministic {
			// Per-game seeds keep individual games reproducible without
			// making every game of the match identical.
			engineA.Options.Seed = fmt.Sprintf("a%v", info.gameNumber)
			engineB.Options.Seed = fmt.Sprintf("b%v", info.gameNumber)
		}
		var res, err = playGame(engineA, engineB, a.config.MaxPlies, info)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
