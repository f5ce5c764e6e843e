package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rocketscienceinc/pokegrid-backend/internal/entity"
	"github.com/rocketscienceinc/pokegrid-backend/internal/gridgame"
	"github.com/rocketscienceinc/pokegrid-backend/internal/repository"
)

func main() {
	seed := flag.Int64("seed", 42, "grid seed")
	overwrite := flag.Bool("allow-overwrite", false, "let filled cells be answered again")
	flag.Parse()

	generator := gridgame.NewGenerator(entity.LoadCatalog(), entity.DefaultRegistry())

	grid, err := generator.Generate(seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate grid: %v\n", err)
		os.Exit(1)
	}

	game := newConsole(os.Stdin, os.Stdout, grid, repository.NewMemoryPickCounter(), gridgame.Submitter{AllowOverwrite: *overwrite})
	if err = game.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
