// Package preview renders line diffs of document rewrites for dry runs.
package preview

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"go.trai.ch/stamp/internal/core/ports"
)

var _ ports.Previewer = (*Differ)(nil)

// contextLines is the number of unchanged lines shown around a change.
const contextLines = 1

// Differ implements ports.Previewer with a line-level diff.
type Differ struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// New creates a new Differ.
func New() *Differ {
	return &Differ{dmp: diffmatchpatch.New()}
}

type line struct {
	op   diffmatchpatch.Operation
	text string
}

// Diff returns a unified-style diff of before and after, or an empty string
// when they are equal.
func (d *Differ) Diff(path string, before, after []byte) string {
	oldText, newText := string(before), string(after)
	if oldText == newText {
		return ""
	}

	rOld, rNew, lineArray := d.dmp.DiffLinesToRunes(oldText, newText)
	diffs := d.dmp.DiffCleanupMerge(d.dmp.DiffMainRunes(rOld, rNew, false))

	var lines []line
	for _, df := range diffs {
		for _, r := range df.Text {
			idx := int(r)
			if idx < 0 || idx >= len(lineArray) {
				continue
			}
			lines = append(lines, line{op: df.Type, text: strings.TrimSuffix(lineArray[idx], "\n")})
		}
	}

	var b strings.Builder
	b.WriteString("--- " + path + "\n")
	b.WriteString("+++ " + path + "\n")

	skipped := false
	for i, l := range lines {
		if l.op == diffmatchpatch.DiffEqual && !nearChange(lines, i) {
			if !skipped {
				b.WriteString("  ...\n")
				skipped = true
			}
			continue
		}
		skipped = false

		switch l.op {
		case diffmatchpatch.DiffDelete:
			b.WriteString("- ")
		case diffmatchpatch.DiffInsert:
			b.WriteString("+ ")
		default:
			b.WriteString("  ")
		}
		b.WriteString(l.text + "\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func nearChange(lines []line, i int) bool {
	lo := max(0, i-contextLines)
	hi := min(len(lines)-1, i+contextLines)
	for j := lo; j <= hi; j++ {
		if lines[j].op != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}
