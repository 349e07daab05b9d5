package git

import (
	"path"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

type worktreeCounts struct {
	newFiles     int
	indexFiles   int
	workingFiles int
}

var (
	indexCodes = map[gogit.StatusCode]bool{
		gogit.Added:    true,
		gogit.Modified: true,
		gogit.Deleted:  true,
		gogit.Renamed:  true,
		gogit.Copied:   true,
	}
	workingCodes = map[gogit.StatusCode]bool{
		gogit.Modified: true,
		gogit.Deleted:  true,
		gogit.Renamed:  true,
	}
)

func countWorktree(repo *gogit.Repository) (worktreeCounts, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return worktreeCounts{}, err
	}
	status, err := wt.Status()
	if err != nil {
		return worktreeCounts{}, err
	}
	idx, err := repo.Storer.Index()
	if err != nil {
		return worktreeCounts{}, err
	}
	tracked := make([]string, 0, len(idx.Entries))
	for _, entry := range idx.Entries {
		tracked = append(tracked, entry.Name)
	}
	return tally(status, trackedDirs(tracked)), nil
}

// tally tests every entry against the three buckets independently. Untracked
// files below a directory holding no tracked file count once, as that
// directory.
func tally(status gogit.Status, tracked map[string]bool) worktreeCounts {
	var counts worktreeCounts
	untracked := map[string]bool{}
	for name, entry := range status {
		if entry.Worktree == gogit.Untracked {
			untracked[untrackedRoot(filepath.ToSlash(name), tracked)] = true
			continue
		}
		if indexCodes[entry.Staging] {
			counts.indexFiles++
		}
		if workingCodes[entry.Worktree] {
			counts.workingFiles++
		}
	}
	counts.newFiles = len(untracked)
	return counts
}

// trackedDirs lists every directory containing a tracked file at any depth.
func trackedDirs(names []string) map[string]bool {
	dirs := map[string]bool{}
	for _, name := range names {
		for dir := path.Dir(name); dir != "." && !dirs[dir]; dir = path.Dir(dir) {
			dirs[dir] = true
		}
	}
	return dirs
}

// untrackedRoot returns the outermost directory of name without tracked
// files, with a trailing slash, or name itself when every parent is tracked.
func untrackedRoot(name string, tracked map[string]bool) string {
	parts := strings.Split(name, "/")
	for i := 1; i < len(parts); i++ {
		dir := strings.Join(parts[:i], "/")
		if !tracked[dir] {
			return dir + "/"
		}
	}
	return name
}
