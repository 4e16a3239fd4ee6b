package extract

import "time"

// CommitRecord is one commit's contribution to the extraction window.
// Records are plain values, produced fresh on every call and never shared
// or cached between calls.
type CommitRecord struct {
	ID           string    // abbreviated content hash, 8 hex digits
	Author       string    // author display name
	Timestamp    time.Time // committer time, not author time
	Message      string    // full message with surrounding whitespace trimmed
	FilesChanged []string  // touched paths in diff emission order
	Additions    int
	Deletions    int
}

// ChangeType classifies how a single file changed within one commit.
type ChangeType int

const (
	ChangeAdded ChangeType = iota
	ChangeModified
	ChangeDeleted
)

// String returns the lower-case name of the change type.
func (t ChangeType) String() string {
	switch t {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// FileChangeRecord describes one file's change within a single commit.
type FileChangeRecord struct {
	FilePath   string
	ChangeType ChangeType
	Additions  int
	Deletions  int
	DiffBody   string
}

// LastCommit is a snapshot of the most recent commit on HEAD.
type LastCommit struct {
	ID        string
	Message   string
	Timestamp time.Time
}

// RepositoryStats is the aggregate view returned by Stats.
type RepositoryStats struct {
	TotalCommits  int
	Branches      []string
	CurrentBranch string
	LastCommit    LastCommit
}
