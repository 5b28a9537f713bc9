// Package main provides the CLI entrypoint for ftracker.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/ftracker/internal/config"
	"github.com/verte-zerg/ftracker/internal/model"
	"github.com/verte-zerg/ftracker/internal/report"
	"github.com/verte-zerg/ftracker/internal/workout"
)

const stdinInput = "-"

var (
	reportInput string

	configPrintPath bool
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ftracker",
		Short:         "Workout metrics from sensor packages",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReportCmd,
	}

	rootCmd.Flags().StringVarP(&reportInput, "input", "i", "", `packages TOML file ("-" for stdin, empty for the built-in sample)`)

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTypesCmd())

	return rootCmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "input", &reportInput, fileCfg.Report.Input)

	cfg := model.ReportConfig{
		Input: strings.TrimSpace(reportInput),
	}

	pkgs, err := loadPackages(cmd, cfg)
	if err != nil {
		return err
	}
	return report.Run(cmd.OutOrStdout(), pkgs)
}

func loadPackages(cmd *cobra.Command, cfg model.ReportConfig) ([]model.Package, error) {
	switch cfg.Input {
	case "":
		return config.SamplePackages(), nil
	case stdinInput:
		return config.DecodePackages(cmd.InOrStdin())
	default:
		return config.LoadPackages(cfg.Input)
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
	cmd.Flags().BoolVar(&configPrintPath, "path", false, "create the config file if missing and print its path instead of opening an editor")
	return cmd
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	if configPrintPath {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	editCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editCmd.Stdin = os.Stdin
	editCmd.Stdout = os.Stdout
	editCmd.Stderr = os.Stderr
	if err := editCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported workout type codes",
		Args:  cobra.NoArgs,
		RunE:  runTypesCmd,
	}
}

func runTypesCmd(cmd *cobra.Command, _ []string) error {
	types := workout.Types()
	rows := make([][]string, 0, len(types))
	for _, wt := range types {
		rows = append(rows, []string{wt.Code, wt.Name, strconv.Itoa(len(wt.Params)), strings.Join(wt.Params, ", ")})
	}
	lines := report.FormatTable([]string{"Code", "Workout", "Count", "Params"}, rows, map[int]bool{2: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# ftracker configuration
# Uncomment a value to enable it. CLI flags override config values.

[report]
# input = "packages.toml"  # Packages file, %q reads stdin; unset runs the built-in sample
`, stdinInput)
}

func errorPrefix(styled bool) string {
	if styled {
		return errorStyle.Render("error:")
	}
	return "error:"
}

func logError(err error) {
	styled := term.IsTerminal(int(os.Stderr.Fd()))
	logErrf("%s %v\n", errorPrefix(styled), err)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
