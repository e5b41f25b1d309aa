package draft

import (
	"strconv"
	"strings"
)

// Patch rewrites the instruction of every fixup's line in place. The
// annotation is dropped from patched lines.
func Patch(lines []string, fixups []Fixup, t *Table, d Dialect) error {
	for i := range fixups {
		f := &fixups[i]
		if f.Line < 0 || f.Line >= len(lines) {
			return lineErrf(f.Line, "%w: fixup outside of %d lines", ErrInternal, len(lines))
		}
		res, err := patchLine(instruction(lines[f.Line], d), f, t)
		if err != nil {
			return err
		}
		lines[f.Line] = res
	}
	return nil
}

func instruction(line string, d Dialect) string {
	ins, _, _ := strings.Cut(line, string(d.Separator))
	return strings.TrimSpace(ins)
}

func patchLine(ins string, f *Fixup, t *Table) (string, error) {
	toks := strings.Fields(ins)
	if len(toks) == 0 {
		return "", lineErrf(f.Line, "%w: pointer on a line without instruction", ErrUnknownInstruction)
	}
	r, ok := t.Rule(toks[0])
	if !ok {
		return "", lineErrf(f.Line, "%w %q", ErrUnknownInstruction, toks[0])
	}
	if len(toks) < r.minTokens() {
		return "", lineErrf(f.Line, "%w %q: want at least %d tokens, got %d", ErrUnknownInstruction, toks[0], r.minTokens(), len(toks))
	}
	if err := t.expectPlaceholder(toks, r.Arg, f.Line); err != nil {
		return "", err
	}
	switch r.Mode {
	case Relative:
		if err := t.expectPlaceholder(toks, r.Operator, f.Line); err != nil {
			return "", err
		}
		toks[r.Operator] = t.Operation(f.Direction)
		toks[r.Arg] = strconv.Itoa(f.Distance)
	case Absolute:
		toks[r.Arg] = strconv.Itoa(f.Target)
	}
	return strings.Join(toks, " "), nil
}

func (t *Table) expectPlaceholder(toks []string, at, line int) error {
	if toks[at] == t.Placeholder {
		return nil
	}
	return lineErrf(line, "%w %q: expected placeholder %q at token %d, got %q", ErrUnknownInstruction, toks[0], t.Placeholder, at, toks[at])
}
