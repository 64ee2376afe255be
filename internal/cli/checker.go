package cli

import (
	"strings"

	"github.com/gitup-cli/gitup/internal/update"
)

// CheckStatus describes the state of a single bookmarked repository.
type CheckStatus int

const (
	CheckClean   CheckStatus = iota // Repository exists, working tree clean
	CheckMissing                    // Bookmarked path does not exist
	CheckNotRepo                    // Path exists but is not a git repository
	CheckDirty                      // Repository has uncommitted changes
	CheckUnknown                    // Working-tree status could not be read
)

// CheckResult holds the outcome of checking one bookmark.
type CheckResult struct {
	Name    string
	Path    string
	Status  CheckStatus
	Pending int // number of pending working-tree entries when dirty
}

// CheckBookmarks inspects each bookmark without modifying anything.
func CheckBookmarks(marks []update.RepoRef, git update.Git, isRepo func(string) bool) []CheckResult {
	return checkBookmarksWith(marks, git, isRepo, pathExists)
}

// checkBookmarksWith is the testable core of CheckBookmarks: a pure
// function reading state only through its arguments.
func checkBookmarksWith(marks []update.RepoRef, git update.Git, isRepo, exists func(string) bool) []CheckResult {
	results := make([]CheckResult, 0, len(marks))

	for _, mark := range marks {
		result := CheckResult{Name: mark.Name, Path: mark.Path}

		switch {
		case !exists(mark.Path):
			result.Status = CheckMissing
		case !isRepo(mark.Path):
			result.Status = CheckNotRepo
		default:
			status, err := git.Status(mark.Path)
			switch {
			case err != nil:
				result.Status = CheckUnknown
			case status == "":
				result.Status = CheckClean
			default:
				result.Status = CheckDirty
				result.Pending = len(strings.Split(status, "\n"))
			}
		}

		results = append(results, result)
	}

	return results
}
