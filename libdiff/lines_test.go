package libdiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	from := []string{"op n 1 n #0", "set x 5", "jump n #->0"}
	to := []string{"op n 1 n", "set x 5", "jump 0"}
	got := Lines(from, to)
	if !Changed(got) {
		t.Fatal("expected a change")
	}
	var dels, ins, eq []string
	for _, l := range got {
		switch l.Op {
		case Delete:
			dels = append(dels, l.Text)
		case Insert:
			ins = append(ins, l.Text)
		case Equal:
			eq = append(eq, l.Text)
		}
	}
	if diff := cmp.Diff([]string{"op n 1 n #0", "jump n #->0"}, dels); diff != "" {
		t.Errorf("deleted mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"op n 1 n", "jump 0"}, ins); diff != "" {
		t.Errorf("inserted mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"set x 5"}, eq); diff != "" {
		t.Errorf("equal mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesUnchanged(t *testing.T) {
	ls := Lines([]string{"a", "b"}, []string{"a", "b"})
	if Changed(ls) {
		t.Errorf("got change in %v", ls)
	}
	if len(ls) != 2 {
		t.Errorf("got %d lines want 2", len(ls))
	}
}

func TestWrite(t *testing.T) {
	ls := []Line{{Op: Equal, Text: "a"}, {Op: Delete, Text: "b"}, {Op: Insert, Text: "c"}}
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, ls, nil); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), " a\n-b\n+c\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	buf.Reset()
	if err := Write(buf, ls, NewColors()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected escape sequences in %q", out)
	}
	if !strings.Contains(out, " a\n") {
		t.Errorf("expected uncolored equal line in %q", out)
	}
}
