package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show or change the settings stored in the config file.

Keys: db_path, log_level, scheme, scramble_length, turn_delay

Examples:
  cubesim config show
  cubesim config set scheme white
  cubesim config set turn_delay 200ms`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cfg.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configSetCmd.ValidArgsFunction = configKeys
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", cfg.Path())
	return writeYAML(out, cfg.Settings())
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if err := cfg.Set(key, value); err != nil {
		return err
	}

	s := cfg.Settings()
	var stored any
	switch key {
	case "db_path":
		stored = s.DBPath
	case "scheme":
		stored = s.Scheme
	case "scramble_length":
		stored = s.ScrambleLength
	case "turn_delay":
		stored = s.TurnDelay
	case "log_level":
		stored = s.LogLevel
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, stored)
	return nil
}

// configKeys is used by shell completion for config set.
func configKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys(), cobra.ShellCompDirectiveNoFileComp
}
