package draft

import "sort"

// Index maps lines to labels and pointers and labels back to lines.
type Index struct {
	labels   map[int]string
	lines    map[string]int
	pointers map[int]string
}

func NewIndex() *Index {
	return &Index{
		labels:   map[int]string{},
		lines:    map[string]int{},
		pointers: map[int]string{},
	}
}

// Declare binds label v to line i. It reports the line v is already bound
// to, if any, and leaves the index unchanged in that case.
func (x *Index) Declare(i int, v string) (int, bool) {
	if prev, ok := x.lines[v]; ok {
		return prev, false
	}
	x.labels[i] = v
	x.lines[v] = i
	return i, true
}

func (x *Index) Point(i int, v string) {
	x.pointers[i] = v
}

func (x *Index) PointerAt(i int) (string, bool) {
	v, ok := x.pointers[i]
	return v, ok
}

// LineOf returns the line where label v is declared.
func (x *Index) LineOf(v string) (int, bool) {
	i, ok := x.lines[v]
	return i, ok
}

func (x *Index) NumLabels() int {
	return len(x.labels)
}

func (x *Index) NumPointers() int {
	return len(x.pointers)
}

// PointerLines returns the lines holding a pointer in ascending order.
func (x *Index) PointerLines() []int {
	res := make([]int, 0, len(x.pointers))
	for i := range x.pointers {
		res = append(res, i)
	}
	sort.Ints(res)
	return res
}
