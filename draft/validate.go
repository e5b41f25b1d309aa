package draft

// Validate builds the index of anns and checks, in order, that labels are
// unique, that every pointer names a declared label and that no pointer
// targets its own line.
func Validate(anns []Annotation) (*Index, error) {
	x := NewIndex()
	for i, a := range anns {
		if !a.HasLabel() {
			continue
		}
		if prev, ok := x.Declare(i, a.Label); !ok {
			return nil, lineErrf(i, "%w %q, first declared on line %d", ErrDuplicateLabel, a.Label, prev)
		}
	}
	for i, a := range anns {
		if !a.HasPointer() {
			continue
		}
		if _, ok := x.LineOf(a.Pointer); !ok {
			return nil, lineErrf(i, "%w: no label %q", ErrUnresolvedPointer, a.Pointer)
		}
		x.Point(i, a.Pointer)
	}
	for _, i := range x.PointerLines() {
		v, _ := x.PointerAt(i)
		if l, _ := x.LineOf(v); l == i {
			return nil, lineErrf(i, "%w %q", ErrSelfReference, v)
		}
	}
	return x, nil
}
