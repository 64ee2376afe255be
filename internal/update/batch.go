package update

import "path/filepath"

// Bookmarks updates every bookmarked directory tree, in order. An empty
// list produces a single guidance line and nothing else.
func (u *Updater) Bookmarks(marks []RepoRef) {
	if len(marks) == 0 {
		u.out.Emit(0, "You don't have any bookmarks configured! Get help with 'gitup -h'.")
		return
	}
	for _, mark := range marks {
		u.updateDirectory(mark.Path, mark.Name, true)
	}
}

// Directories updates a list of directories supplied on the command
// line. Relative paths are made absolute; each directory's display name
// is its final path segment.
func (u *Updater) Directories(paths []string) {
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		u.updateDirectory(abs, filepath.Base(abs), false)
	}
}
