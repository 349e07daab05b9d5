package domain

// RepositoryState mirrors the in-progress operation git records in its directory.
type RepositoryState int

const (
	StateClean RepositoryState = iota
	StateMerge
	StateRevert
	StateCherryPick
	StateBisect
	StateRebase
	StateRebaseInteractive
	StateRebaseMerge
	StateApplyMailbox
	StateApplyMailboxOrRebase
)

var repositoryStateNames = map[RepositoryState]string{
	StateClean:                "Clean",
	StateMerge:                "Merge",
	StateRevert:               "Revert",
	StateCherryPick:           "CherryPick",
	StateBisect:               "Bisect",
	StateRebase:               "Rebase",
	StateRebaseInteractive:    "RebaseInteractive",
	StateRebaseMerge:          "RebaseMerge",
	StateApplyMailbox:         "ApplyMailbox",
	StateApplyMailboxOrRebase: "ApplyMailboxOrRebase",
}

func (s RepositoryState) String() string {
	if name, ok := repositoryStateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// RepositoryStatus is a one-shot summary of a working copy.
// Counters are independent tallies: a file staged and then modified again
// counts in both IndexFiles and WorkingFiles.
type RepositoryStatus struct {
	Ahead        int
	Behind       int
	NewFiles     int
	WorkingFiles int
	IndexFiles   int
	StashCount   int
	State        RepositoryState
	Hash         string
	Branch       string
	Tag          string
}
