package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dired/internal/config"
	"dired/internal/log"
	"dired/internal/tui"
	"dired/internal/watch"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile    string
		cfg        *config.Config
		reuseView  bool
		showHidden bool
		debug      bool
	)

	rootCmd := &cobra.Command{
		Use:     "dired [directory]",
		Short:   "Edit a directory like a text buffer",
		Long:    `Dired renders a directory as an editable buffer: mark entries, batch delete and move them, and rename files by editing their names in place.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v; using default settings\n", err)
				cfg = config.New()
			}

			if cmd.Flags().Changed("reuse-view") {
				cfg.Settings.ReuseView = reuseView
			}
			if cmd.Flags().Changed("show-hidden") {
				cfg.Settings.ShowHidden = showHidden
			}
			if cmd.Flags().Changed("debug") {
				cfg.Settings.Debug = debug
			}
			log.SetDebug(cfg.Settings.Debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.Directories.Default
			if len(args) > 0 {
				dir = args[0]
			}
			if dir == "" || dir == "." {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("error getting current directory: %w", err)
				}
				dir = wd
			}

			var watcher *watch.Watcher
			if cfg.Settings.Watch {
				var err error
				watcher, err = watch.New()
				if err != nil {
					return err
				}
				if err := watcher.Start(); err != nil {
					return err
				}
				defer watcher.Stop()
			}

			m, err := tui.New(cfg, dir, watcher)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running browser: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/dired/config.yaml)")
	rootCmd.Flags().BoolVar(&reuseView, "reuse-view", false, "navigate in place instead of stacking views")
	rootCmd.Flags().BoolVar(&showHidden, "show-hidden", false, "include dotfiles in listings")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "debug-level logging")

	rootCmd.AddCommand(newThemesCmd())

	return rootCmd
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListThemes() {
				fmt.Println(name)
			}
		},
	}
}
