package main

import (
	"context"
	"fmt"

	"github.com/desertwitch/fileman"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	transferUI      bool
	removeRecursive bool
)

//nolint:gochecknoglobals
var copyCmd = &cobra.Command{
	Use:   "copy SOURCE DESTINATION",
	Short: "Copy an item recursively, with all metadata",
	Long: `Copy an item to a destination that must not exist yet. Directories are
copied recursively; permissions, ownership, extended attributes and
timestamps are carried over.

Examples:
  # Copy a directory tree
  fileman copy /data/photos /backup/photos

  # Show the progress while copying
  fileman copy --ui /data/big.img /backup/big.img`,
	Args: cobra.ExactArgs(2), //nolint:mnd
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.runTransfer(cmd.Context(), "Copy", transferUI, func(ctx context.Context, progress *fileman.TransferInfo) error {
			return app.manager.CopyItem(ctx, args[0], args[1], progress)
		})
	},
}

//nolint:gochecknoglobals
var moveCmd = &cobra.Command{
	Use:   "move SOURCE DESTINATION",
	Short: "Move an item, across volumes if needed",
	Long: `Rename an item. When source and destination are on different volumes,
the item is copied with all metadata and the source is removed afterwards.`,
	Args: cobra.ExactArgs(2), //nolint:mnd
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.runTransfer(cmd.Context(), "Move", transferUI, func(ctx context.Context, progress *fileman.TransferInfo) error {
			return app.manager.MoveItem(ctx, args[0], args[1], progress)
		})
	},
}

//nolint:gochecknoglobals
var removeCmd = &cobra.Command{
	Use:   "remove PATH",
	Short: "Remove an item",
	Long: `Remove a file, symbolic link or empty directory. With --recursive,
directories are removed along with their contents.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.runTransfer(cmd.Context(), "Remove", transferUI, func(ctx context.Context, progress *fileman.TransferInfo) error {
			return removeWithProgress(ctx, app.manager, args[0], removeRecursive, progress)
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{copyCmd, moveCmd, removeCmd} {
		cmd.Flags().BoolVar(&transferUI, "ui", false, "show the progress in a terminal user interface")
	}

	removeCmd.Flags().BoolVarP(&removeRecursive, "recursive", "r", false, "remove directories and their contents")
}

// removeWithProgress removes the entries of a directory one by one, so that
// the removal can be followed and interrupted between them.
func removeWithProgress(ctx context.Context, m *fileman.Manager, path string, recursive bool, progress *fileman.TransferInfo) error {
	ft, err := m.TypeOfItem(path)
	if err != nil {
		return err
	}

	if ft != fileman.Directory || !recursive {
		progress.Start(0, 1)
		err := m.RemoveItem(path, recursive)
		progress.End(err)

		return err
	}

	e := m.ContentsOfDirectoryPaths(path, false)
	defer e.Close()

	var children []string
	for child := range e.All() {
		children = append(children, child)
	}
	if err := e.Err(); err != nil {
		return err
	}

	progress.Start(0, uint64(len(children)+1))

	for _, child := range children {
		if err := ctx.Err(); err != nil {
			progress.End(err)

			return fmt.Errorf("(main-remove) %w", err)
		}

		if err := m.RemoveItem(child, true); err != nil {
			progress.End(err)

			return err
		}
		progress.ItemDone(child)
	}

	err = m.RemoveItem(path, false)
	progress.End(err)

	return err
}
