package git

import (
	"container/heap"
	"context"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

type divergence struct {
	ahead  int
	behind int
}

const (
	fromLocal uint8 = 1 << iota
	fromUpstream
	stale
)

const fromBoth = fromLocal | fromUpstream

// aheadBehind paints the commit graph from both tips, newest commit first.
// A commit reached from both sides is stale and only propagates that mark.
// Committer times may go backwards along a parent edge, so an all-stale queue
// can still reach a commit painted from one side only; the walk continues
// until no such commit is left or the queue is empty. Commits left with a
// single mark are the one-sided differences.
func aheadBehind(ctx context.Context, repo *gogit.Repository, local, upstream plumbing.Hash) (divergence, error) {
	if local == upstream {
		return divergence{}, nil
	}

	w := &walker{
		repo:    repo,
		flags:   map[plumbing.Hash]uint8{},
		commits: map[plumbing.Hash]*object.Commit{},
	}
	if err := w.mark(local, fromLocal); err != nil {
		return divergence{}, err
	}
	if err := w.mark(upstream, fromUpstream); err != nil {
		return divergence{}, err
	}

	for w.interesting() || (w.oneSided > 0 && w.queue.Len() > 0) {
		if err := ctx.Err(); err != nil {
			return divergence{}, err
		}
		commit := heap.Pop(&w.queue).(*object.Commit)
		flags := w.flags[commit.Hash]
		if flags&fromBoth == fromBoth {
			flags |= stale
			w.flags[commit.Hash] = flags
		}
		for _, parent := range commit.ParentHashes {
			if err := w.mark(parent, flags); err != nil {
				return divergence{}, err
			}
		}
	}

	var div divergence
	for _, flags := range w.flags {
		switch flags & fromBoth {
		case fromLocal:
			div.ahead++
		case fromUpstream:
			div.behind++
		}
	}
	return div, nil
}

type walker struct {
	repo     *gogit.Repository
	flags    map[plumbing.Hash]uint8
	commits  map[plumbing.Hash]*object.Commit
	queue    commitQueue
	oneSided int
}

// mark adds flags to hash and queues it when that taught it something new.
func (w *walker) mark(hash plumbing.Hash, flags uint8) error {
	current, seen := w.flags[hash]
	if seen && current|flags == current {
		return nil
	}
	commit, ok := w.commits[hash]
	if !ok {
		var err error
		commit, err = w.repo.CommitObject(hash)
		if err != nil {
			return err
		}
		w.commits[hash] = commit
	}
	updated := current | flags
	w.oneSided += sidedness(updated) - sidedness(current)
	w.flags[hash] = updated
	heap.Push(&w.queue, commit)
	return nil
}

// sidedness is 1 for a commit reached from exactly one tip.
func sidedness(flags uint8) int {
	switch flags & fromBoth {
	case fromLocal, fromUpstream:
		return 1
	default:
		return 0
	}
}

func (w *walker) interesting() bool {
	for _, commit := range w.queue {
		if w.flags[commit.Hash]&stale == 0 {
			return true
		}
	}
	return false
}

// commitQueue is a max-heap on committer time.
type commitQueue []*object.Commit

func (q commitQueue) Len() int { return len(q) }

func (q commitQueue) Less(i, j int) bool {
	return q[i].Committer.When.After(q[j].Committer.When)
}

func (q commitQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *commitQueue) Push(x any) { *q = append(*q, x.(*object.Commit)) }

func (q *commitQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
