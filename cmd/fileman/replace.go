package main

import (
	"fmt"
	"log/slog"

	"github.com/desertwitch/fileman"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	replaceNewMetadataOnly bool
	replaceKeepBackup      bool
	replaceDryRun          bool
)

//nolint:gochecknoglobals
var replaceCmd = &cobra.Command{
	Use:   "replace ORIGINAL REPLACEMENT",
	Short: "Replace an item with another one",
	Long: `Replace ORIGINAL with REPLACEMENT. Afterwards ORIGINAL holds what was at
REPLACEMENT, with the extended attributes of both items merged, and
REPLACEMENT is gone.

On filesystems supporting it both items are exchanged in one atomic step;
otherwise the original is moved aside, the replacement moved into place and
the original removed.

Examples:
  # Replace a configuration file with a freshly written one
  fileman replace /etc/app.conf /etc/app.conf.new

  # Keep the previous file at the replacement's path
  fileman replace --keep-backup /etc/app.conf /etc/app.conf.new

  # Only show which strategy would be used
  fileman replace --dry-run /etc/app.conf /etc/app.conf.new`,
	Args: cobra.ExactArgs(2), //nolint:mnd
	RunE: runReplace,
}

func init() {
	replaceCmd.Flags().BoolVar(&replaceNewMetadataOnly, "new-metadata-only", false, "discard the extended attributes of the original")
	replaceCmd.Flags().BoolVar(&replaceKeepBackup, "keep-backup", false, "keep the original at the replacement's path")
	replaceCmd.Flags().BoolVar(&replaceDryRun, "dry-run", false, "print the strategy that would be used and exit")
}

func runReplace(cmd *cobra.Command, args []string) error {
	original, replacement := args[0], args[1]

	if replaceDryRun {
		strategy, err := app.manager.SelectStrategy(original, replacement)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strategy)

		return nil
	}

	var opts fileman.Options
	if replaceNewMetadataOnly {
		opts |= fileman.UsingNewMetadataOnly
	}
	if replaceKeepBackup {
		opts |= fileman.WithoutDeletingBackupItem
	}

	if err := app.manager.ReplaceItem(cmd.Context(), original, replacement, opts); err != nil {
		return err
	}

	slog.Info("Item replaced.",
		"original", original,
		"replacement", replacement,
	)

	return nil
}
