package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/twisty/internal/cfen"
	"github.com/ehrlich-b/twisty/internal/cube"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a cube and print the resulting CFEN",
	Long: `Twist applies a sequence of moves to a starting cube and prints the
resulting state as a CFEN string. It does not solve anything -- useful
for building scrambles or exploring what a sequence does.

Examples:
  twisty twist "R U R' U'"
  twisty twist "F R U' R' F'" --start "WG|Y9/R9/B9/W9/O9/G9"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startCfen, _ := cmd.Flags().GetString("start")
		useColor, _ := cmd.Flags().GetBool("color")

		start := cube.Solved
		if startCfen != "" {
			state, err := cfen.Parse(startCfen)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error parsing starting CFEN:", err)
				os.Exit(1)
			}
			start, err = state.ToCube()
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error converting CFEN to cube:", err)
				os.Exit(1)
			}
		}

		moves, err := cube.ParseScramble(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing moves:", err)
			os.Exit(1)
		}

		result := start.ApplyAll(moves)

		if useColor {
			fmt.Println(result.ColoredString())
		}
		fmt.Println(cfen.Generate(result))
	},
}

func init() {
	twistCmd.Flags().String("start", "", "Starting cube state as CFEN (default: solved)")
	twistCmd.Flags().BoolP("color", "c", false, "Also print a colored unfolded net")
}
