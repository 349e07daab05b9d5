// Package gitstatus turns a repository summary into the dense symbol string
// shown in the prompt. Glyphs and their order are consumed by existing shell
// setups, so both are fixed.
package gitstatus

import (
	"strconv"
	"strings"

	"github.com/doeshing/sigil/internal/domain"
)

const (
	symbolAhead   = "▲"
	symbolBehind  = "▼"
	symbolNew     = "□"
	symbolIndex   = "■"
	symbolWorking = "▣"
	symbolStash   = "▷"
	symbolState   = "◊"
)

// Format renders status as identity followed by counters and state, each part
// omitted when zero or empty.
func Format(status domain.RepositoryStatus) string {
	var b strings.Builder
	b.Grow(60)

	b.WriteString(identity(status))

	counters := []struct {
		symbol string
		value  int
	}{
		{symbolAhead, status.Ahead},
		{symbolBehind, status.Behind},
		{symbolNew, status.NewFiles},
		{symbolIndex, status.IndexFiles},
		{symbolWorking, status.WorkingFiles},
		{symbolStash, status.StashCount},
	}
	for _, c := range counters {
		if c.value > 0 {
			b.WriteString(c.symbol)
			b.WriteString(strconv.Itoa(c.value))
		}
	}

	if status.State != domain.StateClean {
		b.WriteString(symbolState)
		b.WriteString(strings.ToUpper(status.State.String()))
	}

	return b.String()
}

func identity(status domain.RepositoryStatus) string {
	switch {
	case status.Branch != "":
		return status.Branch
	case status.Tag != "":
		return status.Tag
	case len(status.Hash) >= domain.HashAbbrevLength:
		return status.Hash[:domain.HashAbbrevLength]
	default:
		return status.Hash
	}
}
