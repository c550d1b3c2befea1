// Package libdiff compares SMT-LIB descriptions token by token.
package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const (
	DeleteOpen  = "[-"
	DeleteClose = "-]"
	InsertOpen  = "{+"
	InsertClose = "+}"
)

// DiffString returns the edits turning from into to. Parentheses and words
// are the units of change; whitespace travels with the preceding unit and
// newlines are read as spaces.
func DiffString(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	a, b, units := diffCfg.DiffLinesToChars(unitLines(from), unitLines(to))
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, units)
	for i := range diffs {
		diffs[i].Text = strings.ReplaceAll(diffs[i].Text, "\n", "")
	}
	return diffs
}

// unitLines puts every unit of s on its own line.
func unitLines(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	var b strings.Builder
	i := 0
	for i < len(s) {
		j := i + 1
		if s[i] != '(' && s[i] != ')' {
			for j < len(s) && s[j] != '(' && s[j] != ')' && s[j] != ' ' {
				j++
			}
		}
		for j < len(s) && s[j] == ' ' {
			j++
		}
		b.WriteString(s[i:j])
		b.WriteByte('\n')
		i = j
	}
	return b.String()
}

// Changed reports whether diffs contain any insertion or deletion.
func Changed(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

// Render writes diffs to w, marking deletions and insertions with brackets
// or, when colored, in red and green.
func Render(w io.Writer, diffs []diffpatch.Diff, colored bool) error {
	del := func(s string) string { return DeleteOpen + s + DeleteClose }
	ins := func(s string) string { return InsertOpen + s + InsertClose }
	if colored {
		red, green := color.New(color.FgRed, color.CrossedOut), color.New(color.FgGreen)
		del = func(s string) string { return red.Sprint(s) }
		ins = func(s string) string { return green.Sprint(s) }
	}
	for i := range diffs {
		diff := &diffs[i]
		var s string
		switch diff.Type {
		case diffpatch.DiffDelete:
			s = del(diff.Text)
		case diffpatch.DiffInsert:
			s = ins(diff.Text)
		case diffpatch.DiffEqual:
			s = diff.Text
		}
		if _, err := io.WriteString(w, s); err != nil {
			return fmt.Errorf("could not write diff: %w", err)
		}
	}
	return nil
}
