package cmd

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/formplay/internal/app"
	"github.com/zhubert/formplay/internal/config"
	"github.com/zhubert/formplay/internal/logger"
	"github.com/zhubert/formplay/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	exampleName           string
	themeName             string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "formplay",
	Short: "Terminal playground for JSON Schema forms",
	Long: `formplay is a three-pane terminal playground for JSON Schema forms.
Edit a JSON Schema on the left and a UI schema on the right; the form in the
middle re-renders on every keystroke and shows the data it produces.
Drag the dividers with the mouse (or use alt+arrows) to resize the panes.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVarP(&exampleName, "example", "e", "", "Seed example to start from (see 'formplay examples')")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Color theme for this run")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("formplay %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("formplay %s\n", version)
}

// validateTheme rejects theme names that are not compiled in
func validateTheme(name string) error {
	if name == "" || ui.IsTheme(name) {
		return nil
	}
	names := make([]string, 0, len(ui.ThemeNames()))
	for _, n := range ui.ThemeNames() {
		names = append(names, string(n))
	}
	return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(names, ", "))
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := validateTheme(themeName); err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()
	log := logger.WithComponent("cmd")
	log.Info("starting formplay", "version", version, "logFile", logger.Path())

	// Create and run the app
	m, err := app.New(cfg, app.Options{
		Version: version,
		Example: exampleName,
		Theme:   themeName,
	})
	if err != nil {
		return err
	}
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
