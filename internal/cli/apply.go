package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
)

var (
	applyScheme string
	applyPlain  bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply moves to a solved cube and print the result",
	Long: `Apply a sequence of moves in standard notation to a solved cube and print
the unfolded net. Tokens are case-sensitive; if any token is invalid nothing
is applied.

Examples:
  cubesim apply "R U R' U'"
  cubesim apply R2 L2 U2 D2 F2 B2 --plain`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyScheme, "scheme", "", "Color scheme (basic, white, dodo)")
	applyCmd.Flags().BoolVar(&applyPlain, "plain", false, "Print face letters instead of colors")
}

func runApply(cmd *cobra.Command, args []string) error {
	sc, err := activeScheme(applyScheme)
	if err != nil {
		return err
	}

	c := cubesim.NewCube()
	if err := c.ApplyNotation(strings.Join(args, " ")); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	writeState(out, c.Snapshot(), sc, applyPlain)
	fmt.Fprintln(out)
	if c.IsSolved() {
		fmt.Fprintln(out, "Solved: yes")
	} else {
		fmt.Fprintf(out, "Solved: no (%d/6 faces)\n", c.SolvedFaces())
	}
	return nil
}
