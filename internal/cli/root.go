package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitup-cli/gitup/internal/bookmarks"
	"github.com/gitup-cli/gitup/internal/term"
	"github.com/gitup-cli/gitup/internal/update"
)

// version is set at build time via -ldflags.
var version = "dev"

// NewRootCmd creates the top-level `gitup` command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gitup [directory ...]",
		Short: "gitup — batch-update all of your git repositories at once",
		Long: `gitup updates a collection of git repositories in one go. Each given
directory (or saved bookmark, when no directories are given) is either a
repository itself or a folder of repositories; every repository found is
fetched first and only fast-forwarded when the working tree is clean.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(args)
		},
	}

	root.AddCommand(newBookmarkCmd())
	root.AddCommand(newCheckCmd())

	return root
}

func runUpdate(paths []string) error {
	bookmarksPath, err := bookmarks.DefaultPath()
	if err != nil {
		return err
	}
	return runUpdateWith(paths, bookmarksPath, update.CLI{}, term.New(os.Stdout))
}

// runUpdateWith is the testable core of the root command.
func runUpdateWith(paths []string, bookmarksPath string, git update.Git, out term.Printer) error {
	u := update.New(git, out)

	if len(paths) > 0 {
		u.Directories(paths)
		return nil
	}

	store, err := bookmarks.Load(bookmarksPath)
	if err != nil {
		return fmt.Errorf("loading bookmarks: %w", err)
	}

	marks := make([]update.RepoRef, 0, len(store.Bookmarks))
	for _, b := range store.Bookmarks {
		marks = append(marks, update.RepoRef{Path: b.Path, Name: b.Name})
	}
	u.Bookmarks(marks)
	return nil
}

// Execute runs the root command.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
