package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/wildfire"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("wildfire", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML scenario file")
	seed := fs.Int64("seed", 0, "seed override (0 keeps the configured seed)")
	every := fs.Int("every", 10, "print metrics every N steps (0 prints only the summary)")
	verbose := fs.Bool("v", false, "debug logging")
	var overrides core.KVList
	fs.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	kv, err := overrides.Map()
	if err != nil {
		return err
	}
	if *configPath != "" {
		kv["config"] = *configPath
	}
	if *seed != 0 {
		kv["seed"] = strconv.FormatInt(*seed, 10)
	}
	cfg, err := wildfire.FromMap(kv)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	sim, err := wildfire.New(cfg, wildfire.WithLogger(logger))
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Simulating %dx%d for %d steps (seed %d, run %s, %d exogenous ignitions)\n",
		cfg.Size, cfg.Size, cfg.Steps, sim.Seed(), sim.RunID(), len(sim.Schedule()))

	start := time.Now()
	if err := sim.Run(ctx); err != nil {
		return err
	}
	elapsed := time.Since(start)

	series := sim.MetricsSeries()
	if *every > 0 {
		for _, m := range series {
			if m.Step%*every != 0 && m.Step != len(series)-1 {
				continue
			}
			printStep(stdout, m)
		}
	}

	final := series[len(series)-1]
	peak := final
	for _, m := range series {
		if m.BurningCells > peak.BurningCells {
			peak = m
		}
	}
	fmt.Fprintf(stdout, "\nFinished in %s: %s m² affected (%s cells), peak %s burning at step %d\n",
		elapsed.Round(time.Millisecond), humanize.Commaf(final.AffectedArea),
		humanize.Comma(int64(final.AffectedCells)), humanize.Comma(int64(peak.BurningCells)), peak.Step)
	if len(final.Hotspots) > 0 {
		fmt.Fprintln(stdout, "Final hotspots:")
		for i, h := range final.Hotspots {
			fmt.Fprintf(stdout, "%2d) (%d,%d) %.0f°C %s %s\n", i+1, h.Row, h.Col, h.Temperature, h.State, h.Risk)
		}
	}
	return nil
}

func printStep(w io.Writer, m wildfire.StepMetrics) {
	centre := "-"
	if m.HasFire {
		centre = fmt.Sprintf("(%.1f,%.1f)", m.CentroidRow, m.CentroidCol)
	}
	fmt.Fprintf(w, "step %4d burning=%-6s ash=%-6s area=%s m² spread=%+.0f centre=%s max=%.0f°C hotspots=%d\n",
		m.Step, humanize.Comma(int64(m.BurningCells)), humanize.Comma(int64(m.AshCells)),
		humanize.Commaf(m.AffectedArea), m.SpreadRate, centre, m.MaxTemperature, len(m.Hotspots))
}
