package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"editbox/clipboardx"
	"editbox/config"
	"editbox/log"
	"editbox/notes"
	"editbox/ui"
)

var (
	version      = "dev"
	cfgFile      string
	debugFlag    bool
	logFile      string
	logLevel     string
	visibleLines int
	writeConfig  bool
)

var rootCmd = &cobra.Command{
	Use:   "editbox [note-file]",
	Short: "Edit a short note in the terminal",
	Long: `editbox opens a small multi-line text box in the terminal holding a single
note. Ctrl+S saves the note and exits, Esc exits without saving and Ctrl+L
clears the box.

The note is stored as JSON ({"note": "..."}) at note_path from the config
file, or at the path given as the first argument.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEditor,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/editbox/settings.json)")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false,
		"write a debug log")
	rootCmd.Flags().StringVar(&logFile, "log-file", "",
		"debug log path (default: log_path from the config, or editbox.log)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "debug",
		"minimum level written to the debug log (debug, info, warn, error)")
	rootCmd.Flags().IntVar(&visibleLines, "visible-lines", 0,
		"number of lines shown at once (overrides config)")
	rootCmd.Flags().BoolVar(&writeConfig, "write-config", false,
		"write the resolved settings to the config file and exit")
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.ConfigPath()
}

// loadConfig resolves the configuration for one run: the config file, then
// flags, then the positional note path.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.LoadFrom(configPath())
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("visible-lines") {
		cfg.VisibleLines = visibleLines
	}
	if len(args) == 1 {
		cfg.NotePath = args[0]
	}
	cfg.Validate()
	return cfg, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if writeConfig {
		path := configPath()
		if err := cfg.SaveTo(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	}

	// Initialize logging if debug mode enabled (via flag or env var)
	if debugFlag || os.Getenv("EDITBOX_DEBUG") != "" {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		path := logFile
		if path == "" {
			path = cfg.LogPath
		}
		if path == "" {
			path = "editbox.log"
		}
		cleanup, err := log.Init(path)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()
		log.SetMinLevel(level)
		log.Info(log.CatConfig, "editbox starting", "version", version, "note", cfg.NotePath, "theme", cfg.Theme)
	}

	store := notes.NewStore(cfg.NotePath, cfg.MaxNoteLength)
	saved, err := ui.Run(cfg, store, clipboardx.NewSystem())
	if err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	if saved {
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", cfg.NotePath)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
