package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/twisty/internal/cube"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble-or-cfen]",
	Short: "Render a cube's unfolded net",
	Long: `Show renders a cube state as an unfolded net of its six faces.
Accepts a move-notation scramble applied to a solved cube, or a CFEN
string directly.

Examples:
  twisty show "R U R' U'"
  twisty show "WG|W9/R9/G9/Y9/O9/B9" --color`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		useColor, _ := cmd.Flags().GetBool("color")

		c := cube.Solved
		if len(args) > 0 && args[0] != "" {
			var err error
			c, err = parseCubeArg(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
		}

		if useColor {
			fmt.Println(c.ColoredString())
		} else {
			fmt.Println(c.String())
		}
		if c.IsSolved() {
			fmt.Println("Status: solved")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}

func init() {
	showCmd.Flags().BoolP("color", "c", false, "Use ANSI colored output")
}
