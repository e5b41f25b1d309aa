package draft

type finishOpts struct {
	dialect Dialect
	table   *Table
}

type FinishOption func(*finishOpts)

func WithDialect(d Dialect) FinishOption {
	return func(o *finishOpts) {
		o.dialect = d
	}
}

func WithTable(t *Table) FinishOption {
	return func(o *finishOpts) {
		if t != nil {
			o.table = t
		}
	}
}

// Result is a resolved draft.
type Result struct {
	Lines  []string
	Index  *Index
	Fixups []Fixup
}

// Finish resolves a draft. lines is not modified.
func Finish(lines []string, opts ...FinishOption) (*Result, error) {
	o := &finishOpts{dialect: DefaultDialect()}
	for _, opt := range opts {
		opt(o)
	}
	if o.table == nil {
		o.table = DefaultTable()
	}
	if err := o.table.Check(o.dialect); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyDraft
	}
	anns, err := Parse(lines, o.dialect)
	if err != nil {
		return nil, err
	}
	x, err := Validate(anns)
	if err != nil {
		return nil, err
	}
	fixups, err := Resolve(x)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(lines))
	copy(out, lines)
	if err := Patch(out, fixups, o.table, o.dialect); err != nil {
		return nil, err
	}
	Strip(out, o.dialect)
	return &Result{Lines: out, Index: x, Fixups: fixups}, nil
}
