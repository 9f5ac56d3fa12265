package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and stored scramble information",
	Long:  `Display the config and database locations, the schema version, and a summary of stored scrambles.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	settings := cfg.Settings()

	fmt.Fprintln(out, "cubesim Status")
	fmt.Fprintln(out, "==============")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Config:   %s\n", cfg.Path())
	fmt.Fprintf(out, "Scheme:   %s\n", settings.Scheme)
	fmt.Fprintf(out, "Scramble: %d moves\n", settings.ScrambleLength)
	fmt.Fprintf(out, "Delay:    %s\n", settings.Delay())
	fmt.Fprintln(out)

	path := getDBPath()
	if path == "" {
		defaultPath, err := storage.DefaultDBPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}
	fmt.Fprintf(out, "Database: %s\n", path)

	db, err := openDB()
	if err != nil {
		fmt.Fprintf(out, "  unavailable: %v\n", err)
		return nil
	}
	defer db.Close()

	version, err := db.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	fmt.Fprintf(out, "Schema:   v%d (latest v%d)\n", version, storage.LatestVersion())

	repo := storage.NewScrambleRepository(db)
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count scrambles: %w", err)
	}
	fmt.Fprintf(out, "Stored scrambles: %d\n", count)

	last, err := repo.GetLast()
	if err != nil {
		return fmt.Errorf("failed to get last scramble: %w", err)
	}
	if last == nil {
		fmt.Fprintln(out, "No scrambles stored yet")
		return nil
	}

	fmt.Fprintf(out, "Last scramble: %s (%s ago)\n", shortID(last.ScrambleID), formatDuration(time.Since(last.CreatedAt)))
	return nil
}
