package update

// RepoRef identifies one git repository queued for an update.
// Path is absolute; Name is the human-readable identifier shown in
// reports (a bookmark name, or container/child for discovered repos).
// Immutable once constructed.
type RepoRef struct {
	Path string
	Name string
}
