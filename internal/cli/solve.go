package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/twisty/internal/cfen"
	"github.com/ehrlich-b/twisty/internal/cube"
	"github.com/ehrlich-b/twisty/internal/kociemba/search"
	"github.com/ehrlich-b/twisty/internal/kociemba/tables"
)

var solveCmd = &cobra.Command{
	Use:   "solve <scramble-or-cfen>",
	Short: "Solve a scrambled cube",
	Long: `Solve streams strictly-improving solutions for a scramble or CFEN
position as the two-phase search finds them, most recent solution
overwriting the line before it.

Examples:
  twisty solve "R U R' U'"
  twisty solve "WG|Y9/R9/B9/W9/O9/G9" --first-only`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		log := logger(cfg)

		maxLength, _ := cmd.Flags().GetInt("max-length")
		firstOnly, _ := cmd.Flags().GetBool("first-only")
		cfg = cfg.WithMaxLen(maxLength)

		start, err := parseCubeArg(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		tbl, err := tables.Open(cfg.TableDir, tables.WithLogger(log))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error opening tables:", err)
			os.Exit(1)
		}
		defer tbl.Close()

		stream := search.StreamSolve(tbl, start, cfg.MaxLen, log)
		defer stream.Stop()

		found := false
		for sol := range stream.Solutions() {
			found = true
			fmt.Printf("\r%-80s", cube.FormatMoves(sol.Moves))
			fmt.Printf("  (%d moves)", len(sol.Moves))
			if firstOnly {
				break
			}
		}
		fmt.Println()
		if !found {
			fmt.Fprintf(os.Stderr, "No solution found within %d moves\n", cfg.MaxLen)
			os.Exit(1)
		}
	},
}

// parseCubeArg accepts either a CFEN string (identified by the '|'
// separator) or a move-notation scramble applied to a solved cube.
func parseCubeArg(arg string) (cube.Cube, error) {
	if len(arg) > 0 {
		for _, r := range arg {
			if r == '|' {
				state, err := cfen.Parse(arg)
				if err != nil {
					return cube.Cube{}, err
				}
				return state.ToCube()
			}
		}
	}
	moves, err := cube.ParseScramble(arg)
	if err != nil {
		return cube.Cube{}, err
	}
	return cube.Solved.ApplyAll(moves), nil
}

func init() {
	solveCmd.Flags().Int("max-length", 0, "Maximum total move count to search (default: TWISTY_MAX_LEN or 20)")
	solveCmd.Flags().Bool("first-only", false, "Stop after the first solution found")
}
