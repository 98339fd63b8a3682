package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/seitarof/gen-shape/internal/cli"
	"github.com/seitarof/gen-shape/internal/diag"
	"github.com/seitarof/gen-shape/internal/generator"
	"github.com/seitarof/gen-shape/internal/logger"
	"github.com/seitarof/gen-shape/internal/matcher"
	"github.com/seitarof/gen-shape/internal/parser"
	"github.com/seitarof/gen-shape/internal/resolver"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "gen-shape:", err)
		return 2
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return 0
	}

	log := logger.NewLogger(&logger.Config{Level: cfg.Level(), Output: os.Stderr})

	p := parser.New()
	m := matcher.NewKindMatcher()
	r := resolver.New()
	f := generator.NewGoimportsFormatter()
	w := generator.NewFileWriter()
	g := generator.New(f, w)
	d := diag.NewPrinter(os.Stderr, cfg.NoColor)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := cli.NewRunner(p, m, r, g, log, d)
	if err := runner.Run(ctx, cfg); err != nil {
		var verr *cli.ValidationError
		if !errors.As(err, &verr) {
			log.Error("generation failed", "err", err)
		}
		return 1
	}
	return 0
}
