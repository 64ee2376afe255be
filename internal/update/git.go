package update

import (
	"fmt"
	"os/exec"
	"strings"
)

// Git abstracts the four git invocations the update cycle needs.
//
// The default implementation shells out to the git executable; tests
// substitute a fake. Every method takes the repository directory
// explicitly — the engine never touches the process working directory.
type Git interface {
	// DryRunFetch reports what a fetch would change without altering
	// local refs. Empty output means nothing new upstream.
	DryRunFetch(dir string) (string, error)

	// LastCommitAge returns the relative age of the most recent local
	// commit (e.g. "3 days ago").
	LastCommitAge(dir string) (string, error)

	// Status returns the porcelain working-tree status. Empty output
	// means the tree is clean.
	Status(dir string) (string, error)

	// Pull fast-forwards the local branch and returns git's output.
	Pull(dir string) (string, error)
}

// CLI implements Git by running the external git executable.
type CLI struct{}

var _ Git = (*CLI)(nil)

func (CLI) DryRunFetch(dir string) (string, error) {
	return runGit(dir, "fetch", "--dry-run")
}

func (CLI) LastCommitAge(dir string) (string, error) {
	return runGit(dir, "log", "-n", "1", "--pretty=%ar")
}

func (CLI) Status(dir string) (string, error) {
	return runGit(dir, "status", "--porcelain")
}

func (CLI) Pull(dir string) (string, error) {
	return runGit(dir, "pull")
}

// runGit executes git against an explicit repository directory, capturing
// stdout and stderr together. A single trailing newline is trimmed. A
// nonzero exit status is returned as an error carrying the output.
func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.CombinedOutput()
	result := trimTrailingNewline(string(out))
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, result)
	}
	return result, nil
}

func trimTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
