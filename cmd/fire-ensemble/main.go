package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/wildfire"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("fire-ensemble", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML scenario file")
	runs := fs.Int("runs", 32, "number of independently seeded runs")
	baseSeed := fs.Int64("seed", 1, "seed of the first run; later runs use consecutive seeds")
	workers := fs.Int("workers", runtime.NumCPU(), "parallel runs")
	top := fs.Int("top", 5, "list the N runs with the largest burned area")
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
	cfg, err := wildfire.FromMap(kv)
	if err != nil {
		return err
	}

	seeds := wildfire.Seeds(*baseSeed, *runs)
	fmt.Fprintf(stdout, "Running %d simulations (%d workers, %dx%d, %d steps)\n",
		len(seeds), *workers, cfg.Size, cfg.Size, cfg.Steps)

	start := time.Now()
	res, err := wildfire.RunEnsemble(ctx, cfg, seeds, *workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(stdout, "Mean affected area %s m² (elapsed %s)\n",
		humanize.Commaf(res.MeanAffectedArea), elapsed.Round(time.Millisecond))

	ranked := append([]wildfire.EnsembleRun(nil), res.Runs...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Final.AffectedArea > ranked[j].Final.AffectedArea
	})
	if len(ranked) > 0 && *top > 0 {
		fmt.Fprintf(stdout, "\nTop %d runs:\n", min(*top, len(ranked)))
		for i := 0; i < len(ranked) && i < *top; i++ {
			r := ranked[i]
			fmt.Fprintf(stdout, "%2d) seed=%d run=%s area=%s m² burning=%d ash=%d\n",
				i+1, r.Seed, r.RunID, humanize.Commaf(r.Final.AffectedArea), r.Final.BurningCells, r.Final.AshCells)
		}
	}

	fmt.Fprintln(stdout, "\nBurn probability:")
	printProbabilityMap(stdout, res)
	return nil
}

// printProbabilityMap renders the burn probability as a character ramp.
func printProbabilityMap(w io.Writer, res wildfire.EnsembleResult) {
	const ramp = " .:-=+*#%@"
	g := res.BurnProbability
	var b strings.Builder
	for r := 0; r < g.H; r++ {
		b.Reset()
		for c := 0; c < g.W; c++ {
			idx := int(g.At(r, c) * float64(len(ramp)-1))
			b.WriteByte(ramp[idx])
		}
		fmt.Fprintln(w, b.String())
	}
}
