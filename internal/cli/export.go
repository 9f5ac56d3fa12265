package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var (
	exportID     string
	exportFormat string
	exportOutput string
	exportLast   bool
	exportLimit  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored scrambles",
	Long: `Export stored scrambles in text, JSON or YAML format.

Without --id or --last every stored scramble is exported, newest first,
up to --limit.

Examples:
  cubesim export --last
  cubesim export --id <scramble_id> --format json
  cubesim export --format yaml -o scrambles.yaml`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportID, "id", "", "Scramble ID (or unique prefix) to export")
	exportCmd.Flags().BoolVar(&exportLast, "last", false, "Export the most recent scramble")
	exportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 1000, "Maximum number of scrambles when exporting all")
}

// exportedScramble is the JSON/YAML shape of a stored scramble.
type exportedScramble struct {
	ID        string   `json:"id" yaml:"id"`
	CreatedAt string   `json:"created_at" yaml:"created_at"`
	Seed      int64    `json:"seed" yaml:"seed"`
	Label     string   `json:"label,omitempty" yaml:"label,omitempty"`
	Digest    string   `json:"digest" yaml:"digest"`
	Moves     []string `json:"moves" yaml:"moves"`
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)

	var scrambles []storage.Scramble
	if exportID != "" || exportLast {
		var idArgs []string
		if exportID != "" {
			idArgs = []string{exportID}
		}
		s, err := resolveScramble(repo, idArgs, exportLast)
		if err != nil {
			return err
		}
		scrambles = []storage.Scramble{*s}
	} else {
		scrambles, err = repo.List(exportLimit)
		if err != nil {
			return fmt.Errorf("failed to list scrambles: %w", err)
		}
	}

	if len(scrambles) == 0 {
		return fmt.Errorf("%w: nothing to export", ErrScrambleNotFound)
	}

	output, err := formatExport(scrambles, exportFormat)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d scrambles to %s\n", len(scrambles), exportOutput)
	return nil
}

// formatExport renders scrambles in the named format. Output always ends in
// a newline.
func formatExport(scrambles []storage.Scramble, format string) (string, error) {
	switch strings.ToLower(format) {
	case "txt":
		var b strings.Builder
		for _, s := range scrambles {
			fmt.Fprintf(&b, "%s\t%s\n", shortID(s.ScrambleID), s.Notation)
		}
		return b.String(), nil

	case "json":
		data, err := json.MarshalIndent(toExported(scrambles), "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data) + "\n", nil

	case "yaml", "yml":
		var b strings.Builder
		if err := writeYAML(&b, toExported(scrambles)); err != nil {
			return "", err
		}
		return b.String(), nil

	default:
		return "", fmt.Errorf("unknown format: %s (use txt, json or yaml)", format)
	}
}

func toExported(scrambles []storage.Scramble) []exportedScramble {
	out := make([]exportedScramble, 0, len(scrambles))
	for _, s := range scrambles {
		e := exportedScramble{
			ID:        s.ScrambleID,
			CreatedAt: s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
			Seed:      s.Seed,
			Digest:    s.Digest,
			Moves:     strings.Fields(s.Notation),
		}
		if e.Moves == nil {
			e.Moves = []string{}
		}
		if s.Label != nil {
			e.Label = *s.Label
		}
		out = append(out, e)
	}
	return out
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}
