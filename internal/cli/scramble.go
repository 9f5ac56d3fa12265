package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

// ErrScrambleMismatch is returned by scramble verify when a stored scramble
// no longer matches its seed.
var ErrScrambleMismatch = errors.New("cubesim: stored scramble does not match its seed")

var (
	scrambleCount  int
	scrambleSeed   int64
	scrambleSave   bool
	scrambleLabel  string
	scrambleNet    bool
	scrambleScheme string
	scramblePlain  bool
	listLimit      int
	showLast       bool
	showInverse    bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate and manage scrambles",
	Long:  `Commands for generating reproducible scrambles and managing stored ones.`,
}

var scrambleNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a new scramble",
	Long: `Generate a scramble of uniformly random moves. The same --seed and --count
always produce the same scramble. Use --save to store it for later replay.`,
	RunE: runScrambleNew,
}

var scrambleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored scrambles",
	RunE:  runScrambleList,
}

var scrambleShowCmd = &cobra.Command{
	Use:   "show [scramble-id]",
	Short: "Show a stored scramble",
	Long: `Display a stored scramble. The ID may be shortened to any unique prefix.

Use --last to show the most recent scramble and --inverse to print the
sequence that undoes it.`,
	RunE: runScrambleShow,
}

var scrambleVerifyCmd = &cobra.Command{
	Use:   "verify [scramble-id]",
	Short: "Check a stored scramble against its seed",
	Long: `Regenerate a stored scramble from its seed and compare both the moves and
the digest of the resulting cube state.`,
	RunE: runScrambleVerify,
}

var scrambleDeleteCmd = &cobra.Command{
	Use:   "delete <scramble-id>",
	Short: "Delete a stored scramble",
	Args:  cobra.ExactArgs(1),
	RunE:  runScrambleDelete,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)

	scrambleCmd.AddCommand(scrambleNewCmd)
	scrambleNewCmd.Flags().IntVarP(&scrambleCount, "count", "n", -1, "Number of moves (default: scramble_length from config)")
	scrambleNewCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Seed for a reproducible scramble (default: random)")
	scrambleNewCmd.Flags().BoolVar(&scrambleSave, "save", false, "Store the scramble in the database")
	scrambleNewCmd.Flags().StringVar(&scrambleLabel, "label", "", "Label stored with the scramble")
	scrambleNewCmd.Flags().BoolVar(&scrambleNet, "net", false, "Print the scrambled cube")
	scrambleNewCmd.Flags().StringVar(&scrambleScheme, "scheme", "", "Color scheme for --net")
	scrambleNewCmd.Flags().BoolVar(&scramblePlain, "plain", false, "Print face letters instead of colors")

	scrambleCmd.AddCommand(scrambleListCmd)
	scrambleListCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of scrambles to display")

	scrambleCmd.AddCommand(scrambleShowCmd)
	scrambleShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent scramble")
	scrambleShowCmd.Flags().BoolVar(&showInverse, "inverse", false, "Also print the inverse sequence")

	scrambleCmd.AddCommand(scrambleVerifyCmd)
	scrambleVerifyCmd.Flags().BoolVar(&showLast, "last", false, "Verify the most recent scramble")

	scrambleCmd.AddCommand(scrambleDeleteCmd)
}

func runScrambleNew(cmd *cobra.Command, args []string) error {
	count := scrambleCount
	if count < 0 {
		count = cfg.Settings().ScrambleLength
	}

	seed := scrambleSeed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	moves := scramble.Sequence(seed, count)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, notation.FormatSequence(moves))
	fmt.Fprintf(out, "Seed: %d  Moves: %d\n", seed, len(moves))

	if scrambleNet {
		sc, err := activeScheme(scrambleScheme)
		if err != nil {
			return err
		}
		s := cube.New()
		cube.ApplyAll(s, moves)
		fmt.Fprintln(out)
		writeState(out, s, sc, scramblePlain)
	}

	if !scrambleSave {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := storage.NewScrambleRepository(db).Create(seed, moves, scrambleLabel)
	if err != nil {
		return err
	}
	slog.Debug("scramble saved", "id", id, "seed", seed)
	fmt.Fprintf(out, "Saved: %s\n", id)
	return nil
}

func runScrambleList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	scrambles, err := storage.NewScrambleRepository(db).List(listLimit)
	if err != nil {
		return fmt.Errorf("failed to list scrambles: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(scrambles) == 0 {
		fmt.Fprintln(out, "No scrambles stored yet")
		fmt.Fprintln(out, "Create one with: cubesim scramble new --save")
		return nil
	}

	fmt.Fprintf(out, "Recent scrambles (showing %d):\n", len(scrambles))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-8s  %-20s  %-20s  %-5s  %s\n", "ID", "Created", "Seed", "Moves", "Label")
	fmt.Fprintln(out, "--------  --------------------  --------------------  -----  -----")

	for _, s := range scrambles {
		label := ""
		if s.Label != nil {
			label = *s.Label
			if len(label) > 30 {
				label = label[:27] + "..."
			}
		}

		fmt.Fprintf(out, "%-8s  %-20s  %-20d  %-5d  %s\n",
			shortID(s.ScrambleID),
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.Seed,
			s.Length,
			label,
		)
	}

	return nil
}

func runScrambleShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := resolveScramble(storage.NewScrambleRepository(db), args, showLast)
	if err != nil {
		return err
	}
	moves, err := s.Moves()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Scramble Details")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "ID:      %s\n", s.ScrambleID)
	fmt.Fprintf(out, "Created: %s\n", s.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Seed:    %d\n", s.Seed)
	fmt.Fprintf(out, "Moves:   %d\n", s.Length)
	if s.Label != nil && *s.Label != "" {
		fmt.Fprintf(out, "Label:   %s\n", *s.Label)
	}
	fmt.Fprintf(out, "Digest:  %s\n", s.Digest)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Sequence")
	fmt.Fprintln(out, "--------")
	for _, line := range wrapMoves(moves, 60) {
		fmt.Fprintln(out, line)
	}

	if showInverse {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Inverse")
		fmt.Fprintln(out, "-------")
		for _, line := range wrapMoves(cube.Invert(moves), 60) {
			fmt.Fprintln(out, line)
		}
	}

	return nil
}

func runScrambleVerify(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)
	s, err := resolveScramble(repo, args, showLast)
	if err != nil {
		return err
	}

	regenerated := scramble.Sequence(s.Seed, s.Length)
	if got := notation.FormatSequence(regenerated); got != s.Notation {
		return fmt.Errorf("%w: moves differ for %s", ErrScrambleMismatch, shortID(s.ScrambleID))
	}

	rows, err := repo.GetMoves(s.ScrambleID)
	if err != nil {
		return err
	}
	if len(rows) != len(regenerated) {
		return fmt.Errorf("%w: %d move rows, want %d", ErrScrambleMismatch, len(rows), len(regenerated))
	}
	for i, row := range rows {
		if row.Notation != regenerated[i].Notation() {
			return fmt.Errorf("%w: move %d is %s, want %s", ErrScrambleMismatch, i+1, row.Notation, regenerated[i].Notation())
		}
	}

	state := cube.New()
	cube.ApplyAll(state, regenerated)
	if storage.Digest(state) != s.Digest {
		return fmt.Errorf("%w: state digest differs for %s", ErrScrambleMismatch, shortID(s.ScrambleID))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Scramble %s OK (%d moves, seed %d)\n", shortID(s.ScrambleID), s.Length, s.Seed)
	return nil
}

func runScrambleDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)
	s, err := resolveScramble(repo, args, false)
	if err != nil {
		return err
	}

	if _, err := repo.Delete(s.ScrambleID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted scramble %s\n", s.ScrambleID)
	return nil
}
