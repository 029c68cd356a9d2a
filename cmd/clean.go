package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/formplay/internal/config"
	"github.com/zhubert/formplay/internal/logger"
)

var (
	skipConfirm bool
	cleanConfig bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the debug log and, optionally, saved preferences",
	Long: `Removes the formplay debug log. With --config it also deletes the saved
preferences (theme, example and pane widths) so the next run starts from the
defaults.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if cleanConfig {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			path = cfg.FilePath()
		}
		return runCleanWithReader(os.Stdin, cmd.OutOrStdout(), path)
	},
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&cleanConfig, "config", false, "Also delete the saved config file")
	rootCmd.AddCommand(cleanCmd)
}

// runCleanWithReader allows injecting the prompt input and output for testing.
// configPath is removed too when non-empty.
func runCleanWithReader(input io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "This will remove:\n  - the debug log (%s)\n", logger.DefaultLogPath)
	if configPath != "" {
		fmt.Fprintf(out, "  - saved preferences (%s)\n", configPath)
	}

	if !skipConfirm && !confirm(input, out) {
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		return fmt.Errorf("error clearing logs: %w", err)
	}
	fmt.Fprintf(out, "Removed %d log file(s).\n", logsCleared)

	if configPath != "" {
		if err := os.Remove(configPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("error removing config: %w", err)
		}
		fmt.Fprintln(out, "Removed saved preferences.")
	}
	return nil
}

// confirm asks for a y/n answer; anything but yes counts as no
func confirm(input io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Continue? [y/N]: ")
	answer, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
