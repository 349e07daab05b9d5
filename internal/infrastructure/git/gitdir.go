package git

import (
	"bufio"
	"errors"
	"os"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/doeshing/sigil/internal/domain"
)

const (
	stashRef     = plumbing.ReferenceName("refs/stash")
	stashLogPath = "logs/refs/stash"
)

var errNoGitDir = errors.New("repository storage has no git directory")

// stateMarkers lists the files git keeps in its directory while an operation
// is in progress. Order matters: rebase directories also contain files that
// look like other operations.
var stateMarkers = []struct {
	path  string
	state domain.RepositoryState
}{
	{"rebase-merge/interactive", domain.StateRebaseInteractive},
	{"rebase-merge", domain.StateRebaseMerge},
	{"rebase-apply/rebasing", domain.StateRebase},
	{"rebase-apply/applying", domain.StateApplyMailbox},
	{"rebase-apply", domain.StateApplyMailboxOrRebase},
	{"MERGE_HEAD", domain.StateMerge},
	{"REVERT_HEAD", domain.StateRevert},
	{"CHERRY_PICK_HEAD", domain.StateCherryPick},
	{"BISECT_LOG", domain.StateBisect},
}

func gitDirStorage(repo *gogit.Repository) (*filesystem.Storage, error) {
	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return nil, errNoGitDir
	}
	return storage, nil
}

func readState(repo *gogit.Repository) (domain.RepositoryState, error) {
	storage, err := gitDirStorage(repo)
	if err != nil {
		return domain.StateClean, err
	}
	fs := storage.Filesystem()
	for _, marker := range stateMarkers {
		if _, err := fs.Stat(marker.path); err == nil {
			return marker.state, nil
		}
	}
	return domain.StateClean, nil
}

// stashCount counts entries of the refs/stash reflog. A stash ref without a
// reflog still holds one entry.
func stashCount(repo *gogit.Repository) (int, error) {
	if _, err := repo.Reference(stashRef, false); err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return 0, nil
		}
		return 0, err
	}

	storage, err := gitDirStorage(repo)
	if err != nil {
		return 0, err
	}
	f, err := storage.Filesystem().Open(stashLogPath)
	if errors.Is(err, os.ErrNotExist) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return count, nil
}
