package draft

import (
	"strconv"
	"strings"
)

const (
	DefaultSeparator = '#'
	DefaultMarker    = "->"
)

// Dialect describes the annotation syntax.
type Dialect struct {
	Separator rune
	Marker    string
	// IntValues requires label and pointer values to be base-10 integers.
	// Values are stored in canonical form so "07" and "7" are the same label.
	IntValues bool
}

func DefaultDialect() Dialect {
	return Dialect{Separator: DefaultSeparator, Marker: DefaultMarker}
}

type Kind int

const (
	None Kind = iota
	LabelOnly
	PointerOnly
	Both
)

// Annotation is the decoded annotation of a single line.
type Annotation struct {
	Kind    Kind
	Label   string
	Pointer string
}

func (a Annotation) HasLabel() bool {
	return a.Kind == LabelOnly || a.Kind == Both
}

func (a Annotation) HasPointer() bool {
	return a.Kind == PointerOnly || a.Kind == Both
}

// Parse decodes the annotation of every line. The result has one entry per
// line.
func Parse(lines []string, d Dialect) ([]Annotation, error) {
	res := make([]Annotation, len(lines))
	for i, line := range lines {
		a, err := ParseLine(line, i, d)
		if err != nil {
			return nil, err
		}
		res[i] = a
	}
	return res, nil
}

// ParseLine decodes the annotation of line, which sits at index i.
func ParseLine(line string, i int, d Dialect) (Annotation, error) {
	sep := string(d.Separator)
	_, rest, found := strings.Cut(line, sep)
	if !found {
		return Annotation{}, nil
	}
	params := strings.Split(rest, sep)
	switch len(params) {
	case 1:
		p := params[0]
		if strings.Contains(p, d.Marker) {
			v, err := d.pointer(p, i)
			if err != nil {
				return Annotation{}, err
			}
			return Annotation{Kind: PointerOnly, Pointer: v}, nil
		}
		v, err := d.label(p, i)
		if err != nil {
			return Annotation{}, err
		}
		return Annotation{Kind: LabelOnly, Label: v}, nil
	case 2:
		ptr, err := d.pointer(params[0], i)
		if err != nil {
			return Annotation{}, err
		}
		lbl, err := d.label(params[1], i)
		if err != nil {
			return Annotation{}, err
		}
		return Annotation{Kind: Both, Pointer: ptr, Label: lbl}, nil
	default:
		return Annotation{}, lineErrf(i, "%w: more than 2 parameters after %q", ErrFormat, sep)
	}
}

func (d Dialect) pointer(p string, i int) (string, error) {
	p = strings.TrimSpace(p)
	_, v, ok := strings.Cut(p, d.Marker)
	if !ok {
		return "", lineErrf(i, "%w: expected pointer containing %q, got %q", ErrFormat, d.Marker, p)
	}
	return d.value(v, "pointer", i)
}

func (d Dialect) label(p string, i int) (string, error) {
	p = strings.TrimSpace(p)
	if strings.Contains(p, d.Marker) {
		return "", lineErrf(i, "%w: expected label, got pointer %q", ErrFormat, p)
	}
	return d.value(p, "label", i)
}

func (d Dialect) value(v, what string, i int) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", lineErrf(i, "%w: empty %s", ErrFormat, what)
	}
	if !d.IntValues {
		return v, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return "", lineErrf(i, "%w: %s %q is not an integer", ErrFormat, what, v)
	}
	return strconv.Itoa(n), nil
}
