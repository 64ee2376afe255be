package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitup-cli/gitup/internal/bookmarks"
	"github.com/gitup-cli/gitup/internal/update"
)

// newCheckCmd creates the `check` command.
// Usage: gitup check [--strict]
func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report the state of every bookmark without updating anything",
		Long: `Inspects each bookmark and reports whether it is missing, not a git
repository, dirty, or clean. Nothing is fetched or pulled.

With --strict, the command exits with a non-zero code if any bookmark is
missing, not a repository, or dirty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with error code if any bookmark needs attention")

	return cmd
}

func runCheck(strict bool) error {
	bookmarksPath, err := bookmarks.DefaultPath()
	if err != nil {
		return err
	}

	store, err := bookmarks.Load(bookmarksPath)
	if err != nil {
		return fmt.Errorf("loading bookmarks: %w", err)
	}

	if len(store.Bookmarks) == 0 {
		fmt.Println("You don't have any bookmarks configured! Get help with 'gitup -h'.")
		return nil
	}

	marks := make([]update.RepoRef, 0, len(store.Bookmarks))
	for _, b := range store.Bookmarks {
		marks = append(marks, update.RepoRef{Path: b.Path, Name: b.Name})
	}

	results := CheckBookmarks(marks, update.CLI{}, update.IsRepository)

	fmt.Printf("Checking %d bookmark(s)...\n\n", len(marks))

	var issues int
	for _, r := range results {
		switch r.Status {
		case CheckClean:
			fmt.Printf("  %s — clean\n", r.Name)
		case CheckMissing:
			fmt.Printf("  %s — missing (%s does not exist)\n", r.Name, r.Path)
			issues++
		case CheckNotRepo:
			fmt.Printf("  %s — not a git repository\n", r.Name)
			issues++
		case CheckDirty:
			fmt.Printf("  %s — dirty (%d pending change(s))\n", r.Name, r.Pending)
			issues++
		case CheckUnknown:
			fmt.Printf("  %s — status unreadable\n", r.Name)
			issues++
		}
	}

	fmt.Println()
	if issues > 0 {
		msg := fmt.Sprintf("%d bookmark(s) need attention.", issues)
		if strict {
			return fmt.Errorf("%s", msg)
		}
		fmt.Println(msg)
	} else {
		fmt.Println("All bookmarks are clean.")
	}
	return nil
}

// pathExists reports whether the given path exists.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
