package draft

import "fmt"

// Direction tells which way a pointer reaches its label.
type Direction int

const (
	// Lower means the label is below the pointer.
	Lower Direction = iota
	// Upper means the label is above the pointer.
	Upper
)

func (d Direction) String() string {
	if d == Upper {
		return "upper"
	}
	return "lower"
}

// Fixup is a resolved pointer.
type Fixup struct {
	Line      int
	Target    int
	Distance  int
	Direction Direction
}

// Resolve computes a fixup for every pointer in x, ordered by line.
//
// A label below the pointer is Distance = Target - Line - 1 lines away,
// a label above is Distance = Line - Target + 1.
func Resolve(x *Index) ([]Fixup, error) {
	lines := x.PointerLines()
	res := make([]Fixup, 0, len(lines))
	for _, p := range lines {
		v, _ := x.PointerAt(p)
		l, ok := x.LineOf(v)
		if !ok {
			return nil, lineErrf(p, "%w: pointer %q has no label after validation", ErrInternal, v)
		}
		f, err := resolveOne(p, l)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, nil
}

func resolveOne(p, l int) (Fixup, error) {
	switch {
	case p < l:
		return Fixup{Line: p, Target: l, Distance: l - p - 1, Direction: Lower}, nil
	case p > l:
		return Fixup{Line: p, Target: l, Distance: p - l + 1, Direction: Upper}, nil
	default:
		return Fixup{}, &LineErr{Line: p, Err: fmt.Errorf("%w: pointer resolves to its own line", ErrInternal)}
	}
}
