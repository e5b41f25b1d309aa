package draft

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStrip(t *testing.T) {
	lines := []string{"  set x 5  ", "op n 1 n #0", "jump 3 # ->a # b", "#only", "", "\tend\t"}
	Strip(lines, DefaultDialect())
	want := []string{"set x 5", "op n 1 n", "jump 3", "", "", "end"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Strip mismatch (-want +got):\n%s", diff)
	}
}

func TestStripNoAnnotations(t *testing.T) {
	in := []string{" a", "b ", "  c d  ", "e"}
	got := append([]string(nil), in...)
	Strip(got, DefaultDialect())
	if len(got) != len(in) {
		t.Fatalf("got %d lines want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != strings.TrimSpace(in[i]) {
			t.Errorf("line %d: got %q want %q", i, got[i], strings.TrimSpace(in[i]))
		}
	}
}

func TestStripTwice(t *testing.T) {
	once := []string{"op n 1 n #->a #b", "set x # 1", "plain"}
	Strip(once, DefaultDialect())
	twice := append([]string(nil), once...)
	Strip(twice, DefaultDialect())
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("mismatch (-once +twice):\n%s", diff)
	}
}
