package main

import (
	"log"
	"os"
	"runtime"

	"github.com/akorenev/caprice/pkg/engine"
	"github.com/akorenev/caprice/pkg/uci"
)

const (
	name   = "Caprice"
	author = "Alexei Korenev"
)

var versionName = "dev"

func main() {
	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
	)

	var eng = engine.NewEngine(logger)

	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.BoolOption{Name: "Debug", Value: &eng.Options.Debug},
			&uci.BoolOption{Name: "Deterministic", Value: &eng.Options.Deterministic},
			&uci.StringOption{Name: "Filter", Value: &eng.Options.Filter},
			&uci.ComboOption{Name: "Promotion", Value: &eng.Options.Promotion,
				Vars: []string{"random", "knight", "bishop", "rook", "queen"}},
			&uci.StringOption{Name: "Seed", Value: &eng.Options.Seed},
			&uci.StringOption{Name: "TablebaseURL", Value: &eng.Options.TablebaseURL},
			&uci.IntOption{Name: "Depth", Min: 1, Max: 8, Value: &eng.Options.Depth},
			&uci.IntOption{Name: "OrderingDepth", Min: 1, Max: 64, Value: &eng.Options.OrderingDepth},
		},
	)
	protocol.Run(logger)
}
