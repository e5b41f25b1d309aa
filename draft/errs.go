package draft

import (
	"errors"
	"fmt"
)

var (
	ErrFormat             = errors.New("bad annotation")
	ErrDuplicateLabel     = errors.New("duplicate label")
	ErrUnresolvedPointer  = errors.New("unresolved pointer")
	ErrSelfReference      = errors.New("pointer to own line")
	ErrUnknownInstruction = errors.New("unknown instruction")
	ErrEmptyDraft         = errors.New("empty draft")
	ErrBadTable           = errors.New("bad opcode table")
	ErrInternal           = errors.New("internal error")
)

// LineErr attaches a zero-based line index to an error.
type LineErr struct {
	Err  error
	Line int
}

func (e *LineErr) Unwrap() error {
	return e.Err
}

func (e *LineErr) Error() string {
	return fmt.Sprintf("%s on line %d", e.Err.Error(), e.Line)
}

func lineErrf(line int, format string, args ...any) error {
	return &LineErr{Line: line, Err: fmt.Errorf(format, args...)}
}
