package update

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// makeRepo creates dir with a .git subdirectory so the probe accepts it.
func makeRepo(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateDirectory_MissingPath(t *testing.T) {
	t.Parallel()

	out := &recordPrinter{}
	u := New(&fakeGit{}, out)
	missing := filepath.Join(t.TempDir(), "nope")

	u.updateDirectory(missing, "nope", false)

	out.contains(t, "directory '"+missing+"' does not exist!")
	if len(out.lines) != 1 {
		t.Errorf("emitted %d lines, want 1", len(out.lines))
	}
}

func TestUpdateDirectory_NotADirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}

	out := &recordPrinter{}
	New(&fakeGit{}, out).updateDirectory(file, "plain.txt", false)

	out.contains(t, "is not a directory!")
}

func TestUpdateDirectory_BookmarkWording(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope")
	out := &recordPrinter{}
	New(&fakeGit{}, out).updateDirectory(missing, "nope", true)

	out.contains(t, "bookmark '"+missing+"' does not exist!")
}

func TestUpdateDirectory_SingleRepository(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeRepo(t, dir)

	git := &fakeGit{fetchOut: "", age: "1 day ago"}
	out := &recordPrinter{}
	New(git, out).updateDirectory(dir, "myrepo", false)

	out.contains(t, "is a git repository:")
	out.contains(t, "1|myrepo:")
	if got := git.calls[0]; got != "fetch:"+dir {
		t.Errorf("first git call = %q, want fetch on %q", got, dir)
	}
}

func TestUpdateDirectory_ContainerSortsRepositories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b", "a", "c"} {
		makeRepo(t, filepath.Join(dir, name))
	}
	// A non-repo child must be filtered out, not updated.
	if err := os.Mkdir(filepath.Join(dir, "notrepo"), 0755); err != nil {
		t.Fatal(err)
	}

	git := &fakeGit{fetchOut: "", age: "1 day ago"}
	out := &recordPrinter{}
	New(git, out).updateDirectory(dir, "box", false)

	out.contains(t, "contains 3 git repositories:")

	var headers []string
	for _, line := range out.lines {
		if strings.HasPrefix(line, "1|") {
			headers = append(headers, line)
		}
	}
	want := []string{
		"1|" + filepath.Join("box", "a") + ":",
		"1|" + filepath.Join("box", "b") + ":",
		"1|" + filepath.Join("box", "c") + ":",
	}
	if len(headers) != len(want) {
		t.Fatalf("got %d repository headers, want %d:\n%s", len(headers), len(want), strings.Join(out.lines, "\n"))
	}
	for i := range want {
		if headers[i] != want[i] {
			t.Errorf("header %d = %q, want %q", i, headers[i], want[i])
		}
	}
}

func TestUpdateDirectory_SingularPlural(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		repos int
		want  string
	}{
		{"zero", 0, "contains 0 git repositories:"},
		{"one", 1, "contains 1 git repository:"},
		{"two", 2, "contains 2 git repositories:"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			for i := 0; i < tt.repos; i++ {
				makeRepo(t, filepath.Join(dir, string(rune('a'+i))))
			}

			out := &recordPrinter{}
			New(&fakeGit{fetchOut: "", age: "1 day ago"}, out).updateDirectory(dir, "box", false)

			out.contains(t, tt.want)
		})
	}
}

func TestUpdateDirectory_EmptyContainerRunsNoUpdates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	git := &fakeGit{}
	out := &recordPrinter{}
	New(git, out).updateDirectory(dir, "empty", false)

	out.contains(t, "contains 0 git repositories:")
	if len(git.calls) != 0 {
		t.Errorf("git was invoked for an empty container: %v", git.calls)
	}
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"", ""},
		{"bookmark 'x'", "Bookmark 'x'"},
		{"Directory", "Directory"},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
