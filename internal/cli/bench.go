package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ehrlich-b/twisty/internal/cube"
	"github.com/ehrlich-b/twisty/internal/kociemba/search"
	"github.com/ehrlich-b/twisty/internal/kociemba/tables"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the solver against random cubes",
	Long: `Bench solves a batch of uniformly random cubes and reports the
solve-length distribution and wall-clock time, standing in for the
pruning-table tuning benchmarks this project's predecessor ran
separately. Cubes are solved concurrently up to --workers at a time.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		log := logger(cfg)

		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetInt64("seed")

		tbl, err := tables.Open(cfg.TableDir, tables.WithLogger(log))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error opening tables:", err)
			os.Exit(1)
		}
		defer tbl.Close()

		rng := rand.New(rand.NewSource(seed))
		cubes := make([]cube.Cube, count)
		for i := range cubes {
			cubes[i] = cube.Random(rng)
		}

		results := make([]int, count)
		start := time.Now()

		var g errgroup.Group
		g.SetLimit(cfg.Workers)
		for i, c := range cubes {
			i, c := i, c
			g.Go(func() error {
				best := -1
				stream := search.StreamSolve(tbl, c, cfg.MaxLen, log)
				for sol := range stream.Solutions() {
					best = len(sol.Moves)
				}
				stream.Stop()
				results[i] = best
				return nil
			})
		}
		_ = g.Wait()

		elapsed := time.Since(start)

		lengths := make([]int, 0, count)
		misses := 0
		for _, best := range results {
			if best < 0 {
				misses++
				continue
			}
			lengths = append(lengths, best)
		}
		if misses > 0 {
			fmt.Fprintf(os.Stderr, "%d cube(s) had no solution within %d moves\n", misses, cfg.MaxLen)
		}

		reportBench(lengths, elapsed)
	},
}

func reportBench(lengths []int, elapsed time.Duration) {
	if len(lengths) == 0 {
		fmt.Println("no solutions recorded")
		return
	}
	total, min, max := 0, lengths[0], lengths[0]
	for _, l := range lengths {
		total += l
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	avg := float64(total) / float64(len(lengths))
	fmt.Printf("solved %d cubes in %v (avg %v/cube)\n", len(lengths), elapsed, elapsed/time.Duration(len(lengths)))
	fmt.Printf("move count: min %d, max %d, avg %.2f\n", min, max, avg)
}

func init() {
	benchCmd.Flags().Int("count", 20, "Number of random cubes to solve")
	benchCmd.Flags().Int64("seed", 1, "PRNG seed for reproducible batches")
}
