package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/fileman/internal/configuration"
	"github.com/desertwitch/fileman/internal/schema"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	Version = "dev"

	cfgFiles []string
	debug    bool

	app *App
)

//nolint:gochecknoglobals
var rootCmd = &cobra.Command{
	Use:   "fileman",
	Short: "fileman - atomic file replacement and file management",
	Long: `fileman replaces files and directories atomically where the filesystem
allows it, and performs the surrounding file management: temporary files,
directory creation and enumeration, recursive copies, moves and removals.

Settings are read from the given configuration files (KEY=value lines) and
the FILEMAN_* environment variables, the latter taking precedence.

Use "fileman [command] --help" for more information about a command.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupApp,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&cfgFiles, "config", nil, "configuration file(s) to read, in order")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")

	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(mktempCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(replacementDirCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func setupApp(cmd *cobra.Command, _ []string) error {
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{}, &schema.OS{})

	cfg, err := configHandler.Load(cfgFiles...)
	if err != nil {
		return fmt.Errorf("(main) %w", err)
	}

	if debug {
		cfg.LogLevel = slog.LevelDebug
	}

	app = NewApp(cfg, cmd.ErrOrStderr())
	slog.SetDefault(slog.New(app.logs))

	slog.Debug("Configuration loaded.",
		"files", cfgFiles,
		"strategy", cfg.Strategy,
		"dirMode", fmt.Sprintf("%#o", cfg.DirMode),
		"verifyCopies", cfg.VerifyCopies,
	)

	return nil
}

func printErr(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
