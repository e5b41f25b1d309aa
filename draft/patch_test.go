package draft

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type patchTest struct {
	in    string
	fixup Fixup
	out   string
}

func TestPatch(t *testing.T) {
	var tests = []patchTest{
		{
			in:    "op n a b n #->x",
			fixup: Fixup{Distance: 3, Target: 7, Direction: Lower},
			out:   "op add a b 3",
		},
		{
			in:    "  op   n a  b n   #->x #y",
			fixup: Fixup{Distance: 5, Target: 0, Direction: Upper},
			out:   "op sub a b 5",
		},
		{
			in:    "op n a b n extra #->x",
			fixup: Fixup{Distance: 0, Target: 1, Direction: Lower},
			out:   "op add a b 0 extra",
		},
		{
			in:    "jump n always #->x",
			fixup: Fixup{Distance: 9, Target: 12, Direction: Upper},
			out:   "jump 12 always",
		},
	}
	tbl := DefaultTable()
	d := DefaultDialect()
	for _, tt := range tests {
		lines := []string{tt.in}
		if err := Patch(lines, []Fixup{tt.fixup}, tbl, d); err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if lines[0] != tt.out {
			t.Errorf("got %q want %q", lines[0], tt.out)
		}
	}
}

func TestPatchIdempotent(t *testing.T) {
	f := Fixup{Line: 0, Distance: 2, Target: 3, Direction: Lower}
	tbl := DefaultTable()
	d := DefaultDialect()
	once := []string{"op n x y n #->a"}
	if err := Patch(once, []Fixup{f}, tbl, d); err != nil {
		t.Fatal(err)
	}
	twice := []string{"op n x y n #->a"}
	for range 2 {
		twice[0] = "op n x y n #->a"
		if err := Patch(twice, []Fixup{f}, tbl, d); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("mismatch (-once +twice):\n%s", diff)
	}
}

func TestPatchUnknownInstruction(t *testing.T) {
	var bad = []string{
		"set x n #->a",
		"#->a",
		"op n a b #->a",
		"op x a b n #->a",
		"op n a b c #->a",
		"jump 4 #->a",
		"jump #->a",
	}
	tbl := DefaultTable()
	d := DefaultDialect()
	for _, in := range bad {
		lines := []string{"first", in}
		err := Patch(lines, []Fixup{{Line: 1}}, tbl, d)
		if !errors.Is(err, ErrUnknownInstruction) {
			t.Errorf("%q: got %v want %v", in, err, ErrUnknownInstruction)
			continue
		}
		var le *LineErr
		if !errors.As(err, &le) || le.Line != 1 {
			t.Errorf("%q: expected line 1 in %v", in, err)
		}
		if lines[1] != in {
			t.Errorf("%q: line modified to %q", in, lines[1])
		}
	}
}

func TestPatchOutOfRange(t *testing.T) {
	err := Patch([]string{"a"}, []Fixup{{Line: 1}}, DefaultTable(), DefaultDialect())
	if !errors.Is(err, ErrInternal) {
		t.Errorf("got %v want %v", err, ErrInternal)
	}
}
