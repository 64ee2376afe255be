package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitup-cli/gitup/internal/bookmarks"
)

// newBookmarkCmd creates the `bookmark` command group.
// Usage: gitup bookmark <add|rm|list>
func newBookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Manage saved repository bookmarks",
		Long: `Bookmarks are named shortcuts to directories you update often.
Running gitup with no arguments updates every bookmark in order.`,
	}

	cmd.AddCommand(newBookmarkAddCmd())
	cmd.AddCommand(newBookmarkRmCmd())
	cmd.AddCommand(newBookmarkListCmd())

	return cmd
}

// newBookmarkAddCmd creates the `bookmark add` subcommand.
// Usage: gitup bookmark add <name> <path>
func newBookmarkAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <path>",
		Short: "Save a directory under a bookmark name",
		Long: `Saves the given directory under a bookmark name. The path is stored
absolute; adding an existing name overwrites that bookmark's path.

Example:
  gitup bookmark add work ~/src/work`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookmarksPath, err := bookmarks.DefaultPath()
			if err != nil {
				return err
			}
			return runBookmarkAdd(args[0], args[1], bookmarksPath)
		},
	}
}

func runBookmarkAdd(name, path, bookmarksPath string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	store, err := bookmarks.Load(bookmarksPath)
	if err != nil {
		return fmt.Errorf("loading bookmarks: %w", err)
	}

	store.Set(name, abs)

	if err := store.Save(bookmarksPath); err != nil {
		return fmt.Errorf("saving bookmarks: %w", err)
	}

	fmt.Printf("Bookmarked %s → %s\n", name, abs)
	return nil
}

// newBookmarkRmCmd creates the `bookmark rm` subcommand.
// Usage: gitup bookmark rm <name>
func newBookmarkRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a bookmark",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return completeBookmarkNames(toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			bookmarksPath, err := bookmarks.DefaultPath()
			if err != nil {
				return err
			}
			return runBookmarkRm(args[0], bookmarksPath)
		},
	}
}

func runBookmarkRm(name, bookmarksPath string) error {
	store, err := bookmarks.Load(bookmarksPath)
	if err != nil {
		return fmt.Errorf("loading bookmarks: %w", err)
	}

	if !store.Remove(name) {
		return fmt.Errorf("no bookmark named %q", name)
	}

	if err := store.Save(bookmarksPath); err != nil {
		return fmt.Errorf("saving bookmarks: %w", err)
	}

	fmt.Printf("Removed bookmark %s\n", name)
	return nil
}

// newBookmarkListCmd creates the `bookmark list` subcommand.
// Usage: gitup bookmark list
func newBookmarkListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all bookmarks in stored order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bookmarksPath, err := bookmarks.DefaultPath()
			if err != nil {
				return err
			}

			store, err := bookmarks.Load(bookmarksPath)
			if err != nil {
				return fmt.Errorf("loading bookmarks: %w", err)
			}

			if len(store.Bookmarks) == 0 {
				fmt.Println("No bookmarks configured. Add one with 'gitup bookmark add <name> <path>'.")
				return nil
			}
			for _, b := range store.Bookmarks {
				fmt.Printf("%s → %s\n", b.Name, b.Path)
			}
			return nil
		},
	}
}

// completeBookmarkNames provides shell completion from the stored
// bookmark names.
func completeBookmarkNames(toComplete string) ([]string, cobra.ShellCompDirective) {
	bookmarksPath, err := bookmarks.DefaultPath()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	store, err := bookmarks.Load(bookmarksPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var names []string
	for _, name := range store.Names() {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
