package update

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"unicode"
)

// updateDirectory updates a single input path. The path is either a git
// repository itself or a container whose immediate children are
// inspected; everything else produces an error report. isBookmark only
// changes the wording of the reports, never the logic.
func (u *Updater) updateDirectory(path, name string, isBookmark bool) {
	kind := "directory"
	if isBookmark {
		kind = "bookmark"
	}
	longName := kind + " '" + u.out.Bold(path) + "'"

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		u.out.Emit(0, u.out.Red("Error: ")+longName+" does not exist!")
		return
	}
	if err != nil {
		u.out.Emit(0, u.out.Red("Error: ")+"cannot enter "+longName+"; does it exist?")
		return
	}
	if !info.IsDir() {
		u.out.Emit(0, u.out.Red("Error: ")+longName+" is not a directory!")
		return
	}

	if IsRepository(path) {
		u.out.Emit(0, capitalize(longName)+" is a git repository:")
		u.updateRepository(RepoRef{Path: path, Name: name})
		return
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		u.out.Emit(0, u.out.Red("Error: ")+"cannot enter "+longName+"; does it exist?")
		return
	}

	var repos []RepoRef
	for _, entry := range entries {
		repoPath := filepath.Join(path, entry.Name())
		if IsRepository(repoPath) {
			repos = append(repos, RepoRef{
				Path: repoPath,
				Name: filepath.Join(name, entry.Name()),
			})
		}
	}

	if len(repos) == 1 {
		u.out.Emit(0, capitalize(longName)+" contains 1 git repository:")
	} else {
		u.out.Emit(0, capitalize(longName)+" contains "+strconv.Itoa(len(repos))+" git repositories:")
	}

	// Alphabetical instead of whatever order the filesystem returned.
	sort.Slice(repos, func(i, j int) bool { return repos[i].Path < repos[j].Path })
	for _, repo := range repos {
		u.updateRepository(repo)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
