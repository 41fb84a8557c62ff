package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/akorenev/caprice/pkg/engine"
)

// Config describes one self-play match between two engine setups. Engine A
// and B differ only in their filter; everything else is shared.
type Config struct {
	Games         int
	Concurrency   int
	FilterA       string
	FilterB       string
	Deterministic bool
	TablebaseURL  string
	Depth         int
	MaxPlies      int
	PGNPath       string
}

var config Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	flag.IntVar(&config.Games, "games", 20, "Number of games")
	flag.IntVar(&config.Concurrency, "concurrency", 4, "Number of games played at once")
	flag.StringVar(&config.FilterA, "filterA", "", "Move filter for engine A")
	flag.StringVar(&config.FilterB, "filterB", "", "Move filter for engine B")
	flag.BoolVar(&config.Deterministic, "deterministic", false, "Hash-derived move choice with a per-game seed")
	flag.StringVar(&config.TablebaseURL, "tablebase", "", "Tablebase service URL for the syzygy filter")
	flag.IntVar(&config.Depth, "depth", 1, "Tablebase search depth")
	flag.IntVar(&config.MaxPlies, "maxplies", 400, "Adjudicate a draw after this many plies")
	flag.StringVar(&config.PGNPath, "pgn", "", "Write finished games to this PGN file")
	flag.Parse()

	log.Printf("%+v", config)

	var a = &arena{config: config}
	return a.Run(context.Background())
}

func newEngine(filter string) *engine.Engine {
	var logger = log.New(os.Stderr, "", log.LstdFlags)
	var eng = engine.NewEngine(logger)
	eng.Options.Filter = filter
	eng.Options.Deterministic = config.Deterministic
	eng.Options.TablebaseURL = config.TablebaseURL
	eng.Options.Depth = config.Depth
	eng.Prepare()
	return eng
}
