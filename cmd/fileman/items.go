package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/desertwitch/fileman"
	"github.com/spf13/cobra"
)

var errInvalidMode = errors.New("invalid octal mode")

//nolint:gochecknoglobals
var (
	mkdirMode    string
	mkdirParents bool

	mktempDir         string
	mktempTemplate    string
	mktempSuffix      string
	mktempUmaskGuard  bool
	lsRecursive       bool
	lsFullPaths       bool
	replacementDirMod string
)

//nolint:gochecknoglobals
var mkdirCmd = &cobra.Command{
	Use:   "mkdir PATH",
	Short: "Create a directory",
	Long: `Create a directory with exactly the given mode, regardless of the umask.
With --parents, missing parent directories are created with the same mode.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		mode, err := parseMode(mkdirMode)
		if err != nil {
			return err
		}

		return app.manager.CreateDirectory(args[0], mode, mkdirParents)
	},
}

//nolint:gochecknoglobals
var mktempCmd = &cobra.Command{
	Use:   "mktemp",
	Short: "Create a temporary file and print its path",
	Long: `Create a new, empty file readable and writable only by its owner. The
last run of X characters of the template is replaced by random characters
and the suffix is appended afterwards.

Examples:
  fileman mktemp
  fileman mktemp --dir /var/tmp --template report-XXXXXX --suffix .csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var path string

		create := func() error {
			file, p, err := app.manager.CreateTemporaryFile(mktempDir, mktempTemplate, mktempSuffix)
			if err != nil {
				return err
			}
			path = p

			return file.Close()
		}

		var err error
		if mktempUmaskGuard {
			err = app.manager.WithRestrictedUmask(create)
		} else {
			err = create()
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)

		return nil
	},
}

//nolint:gochecknoglobals
var lsCmd = &cobra.Command{
	Use:   "ls DIRECTORY",
	Short: "List the contents of a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var e *fileman.Enumerator
		if lsFullPaths {
			e = app.manager.ContentsOfDirectoryPaths(args[0], lsRecursive)
		} else {
			e = app.manager.ContentsOfDirectory(args[0], lsRecursive)
		}
		defer e.Close()

		for path := range e.All() {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}

		return e.Err()
	},
}

//nolint:gochecknoglobals
var typeCmd = &cobra.Command{
	Use:   "type PATH...",
	Short: "Print the type of items",
	Long:  `Print the type of each item, without following symbolic links.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			reachable, err := app.manager.ItemIsReachable(path)
			if err != nil {
				return err
			}

			if !reachable {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: missing\n", path)

				continue
			}

			ft, err := app.manager.TypeOfItem(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, ft)
		}

		return nil
	},
}

//nolint:gochecknoglobals
var volumeCmd = &cobra.Command{
	Use:   "volume PATH",
	Short: "Print the volume of an item and what it supports",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := app.manager.VolumeID(args[0])
		if err != nil {
			return err
		}

		caps, err := app.manager.VolumeCapabilities(args[0])
		if err != nil {
			return err
		}

		name, err := app.manager.FilesystemName(args[0])
		if err != nil {
			name = "unknown"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "id:           %s\n", id)
		fmt.Fprintf(out, "filesystem:   %s\n", name)
		fmt.Fprintf(out, "capabilities: %s\n", caps)

		return nil
	},
}

//nolint:gochecknoglobals
var replacementDirCmd = &cobra.Command{
	Use:   "replacement-dir DESTINATION",
	Short: "Create a directory for preparing a replacement of DESTINATION",
	Long: `Create a fresh directory on the same volume as DESTINATION, preferably in
the temporary directory, and print its path. A replacement prepared in it can
be swapped in with "fileman replace" atomically.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := parseMode(replacementDirMod)
		if err != nil {
			return err
		}

		dir, err := app.manager.CreateItemReplacementDirectory(args[0], mode)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), dir)

		return nil
	},
}

func init() {
	mkdirCmd.Flags().StringVarP(&mkdirMode, "mode", "m", "", "octal mode of the directory (default from configuration)")
	mkdirCmd.Flags().BoolVarP(&mkdirParents, "parents", "p", false, "create missing parent directories")

	mktempCmd.Flags().StringVar(&mktempDir, "dir", "", "directory of the file (default $TMPDIR or /tmp)")
	mktempCmd.Flags().StringVar(&mktempTemplate, "template", "", "file name template (default from configuration)")
	mktempCmd.Flags().StringVar(&mktempSuffix, "suffix", "", "suffix appended after the random characters")
	mktempCmd.Flags().BoolVar(&mktempUmaskGuard, "umask-guard", false, "restrict the process umask to 077 while creating")

	lsCmd.Flags().BoolVarP(&lsRecursive, "recursive", "R", false, "list subdirectories recursively")
	lsCmd.Flags().BoolVar(&lsFullPaths, "full-paths", false, "print paths joined onto DIRECTORY")

	replacementDirCmd.Flags().StringVarP(&replacementDirMod, "mode", "m", "0700", "octal mode of the directory")
}

// parseMode parses an octal mode; an empty string is zero, which selects the
// configured default.
func parseMode(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}

	mode, err := strconv.ParseUint(s, 8, 32)
	if err != nil || mode > 0o7777 {
		return 0, fmt.Errorf("%w: %q", errInvalidMode, s)
	}

	return uint32(mode), nil
}
