// Package main is the entry point for the TuDu terminal to-do list.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hy4ri/tudu/internal/config"
	"github.com/hy4ri/tudu/internal/logging"
	"github.com/hy4ri/tudu/internal/tui"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		initConfig bool
	)

	cmd := &cobra.Command{
		Use:   "tudu",
		Short: "A terminal to-do list",
		Long: `tudu - a small in-memory to-do list for the terminal.

KEYBINDINGS:
    e/E         New item
    Up/Down     Navigate
    Enter       Mark completed / not completed
    D           Delete item
    y           Copy item to clipboard
    Esc/q       Quit

    While typing a new item:
    Enter       Add
    Esc         Go back

Items live in memory only and are gone when tudu exits.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(configPath)
			if err != nil {
				return err
			}
			if initConfig {
				return createConfigTemplate(path, cmd.InOrStdin(), cmd.OutOrStdout())
			}
			return runApp(path)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/tudu/config.yaml)")
	cmd.Flags().BoolVar(&initConfig, "init", false, "create a template config file")

	return cmd
}

func resolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	path, err := config.ConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}

// createConfigTemplate writes the template config, asking before overwriting.
func createConfigTemplate(path string, in io.Reader, out io.Writer) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "Config file already exists: %s\n", path)
		fmt.Fprint(out, "Overwrite? [y/N]: ")

		response, _ := bufio.NewReader(in).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := config.WriteTemplate(path); err != nil {
		return err
	}

	fmt.Fprintf(out, "Config file created: %s\n", path)
	return nil
}

// runApp starts the TUI. Bubble Tea restores the terminal on every exit
// path, including errors and panics inside the program.
func runApp(configPath string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile := cfg.Log.File
	if logFile == "" && cfg.Log.Level != "" {
		if logFile, err = config.DefaultLogPath(); err != nil {
			return fmt.Errorf("failed to get log path: %w", err)
		}
	}
	if err := logging.Initialize(logging.Options{
		Level:      cfg.Log.Level,
		File:       logFile,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logging.Sync()

	logging.Info("starting", zap.String("version", version), zap.String("config", configPath))
	logging.Debug("config loaded",
		zap.Int("char_limit", cfg.Editor.CharLimit),
		zap.Bool("allow_empty_submit", cfg.Editor.AllowEmptySubmit),
		zap.String("title", cfg.UI.Title),
	)

	app := tui.NewApp(cfg, logging.GetLogger())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logging.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logging.Info("exiting", zap.Int("items", app.State().List.Len()))
	return nil
}
