// Package libdiff computes line diffs between a draft and its resolved form.
package libdiff

import (
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) Prefix() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a line diff.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to []string) []Line {
	diffCfg := diffpatch.New()
	a, b, lineArray := diffCfg.DiffLinesToChars(joinLines(from), joinLines(to))
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lineArray)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffEqual:
			op = Equal
		}
		for _, text := range splitLines(diff.Text) {
			res = append(res, Line{Op: op, Text: text})
		}
	}
	return res
}

// Changed reports whether any line differs.
func Changed(ls []Line) bool {
	for i := range ls {
		if ls[i].Op != Equal {
			return true
		}
	}
	return false
}

// Write writes ls to w, one prefixed line each. colors may be nil.
func Write(w io.Writer, ls []Line, colors *Colors) error {
	for i := range ls {
		l := &ls[i]
		text := l.Op.Prefix() + l.Text
		if colors != nil {
			text = colors.Sprint(l.Op, text)
		}
		if _, err := io.WriteString(w, text+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
