// Package update is the decision engine of gitup: it classifies paths as
// repositories or containers of repositories and runs a check-before-pull
// cycle on each repository it finds.
package update

import (
	"github.com/gitup-cli/gitup/internal/term"
)

// Updater walks directories and bookmarks and updates every git
// repository they resolve to, strictly sequentially. All outcomes are
// reported through the Printer; one bad repository never aborts the batch.
type Updater struct {
	git Git
	out term.Printer
}

// New creates an Updater emitting through out and running git through git.
func New(git Git, out term.Printer) *Updater {
	return &Updater{git: git, out: out}
}

// updateRepository runs the fetch-check-pull cycle on one confirmed
// repository. Callers guarantee ref passed the probe; it is not
// re-validated here.
func (u *Updater) updateRepository(ref RepoRef) {
	u.out.Emit(1, u.out.Bold(ref.Name)+":")

	// Check if there is anything to pull, but don't do it yet.
	dryFetch, err := u.git.DryRunFetch(ref.Path)
	if err != nil {
		u.out.Emit(2, u.out.Red("Error: ")+"cannot fetch; do you have a remote repository configured correctly?")
		return
	}

	lastCommit, err := u.git.LastCommitAge(ref.Path)
	if err != nil {
		lastCommit = "never" // no log, so no commits yet
	}

	if dryFetch == "" {
		u.out.Emit(2, u.out.Blue("No new changes.")+" Last commit was "+lastCommit+".")
		return
	}

	u.out.Emit(2, "There are new changes upstream...")

	status, err := u.git.Status(ref.Path)
	if err != nil {
		// Can't prove the tree is clean, so don't touch it.
		u.out.Emit(2, u.out.Red("Error: ")+"cannot read the working-tree status; skipping.")
		return
	}
	if status != "" {
		u.out.Emit(2, u.out.Red("Warning: ")+"you have uncommitted changes in this repository!")
		u.out.Emit(2, "Ignoring.")
		return
	}

	u.out.Emit(2, u.out.Green("Pulling new changes..."))
	result, err := u.git.Pull(ref.Path)
	if err != nil {
		u.out.Emit(2, u.out.Red("Error: ")+"pull failed; the repository was left untouched.")
		return
	}
	u.out.Emit(2, "The following changes have been made since "+lastCommit+":")
	u.out.Raw(result)
}
