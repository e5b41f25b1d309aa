package draft

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"
)

// Mode selects what a rule substitutes for its placeholder.
type Mode int

const (
	// Relative substitutes the direction's operation name and the distance.
	Relative Mode = iota
	// Absolute substitutes the target line index.
	Absolute
)

func ParseMode(v string) (Mode, error) {
	switch v {
	case "relative", "rel":
		return Relative, nil
	case "absolute", "abs":
		return Absolute, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrBadTable, v)
}

func (m Mode) String() string {
	if m == Absolute {
		return "absolute"
	}
	return "relative"
}

// Rule describes one placeholder-bearing opcode. Positions are token
// indices, the opcode being token 0.
type Rule struct {
	Opcode string
	Mode   Mode
	// Operator is the token replaced by the operation name. Relative only.
	Operator int
	// Arg is the token replaced by the distance or target line.
	Arg int
}

func (r *Rule) minTokens() int {
	n := r.Arg
	if r.Mode == Relative && r.Operator > n {
		n = r.Operator
	}
	return n + 1
}

// Table is the set of opcodes the patcher knows how to rewrite.
type Table struct {
	Placeholder string
	Lower       string
	Upper       string

	rules map[string]*Rule
}

// DefaultTable supports
//
//	op n a b n   relative, becomes op add|sub a b <distance>
//	jump n ...   absolute, becomes jump <target> ...
func DefaultTable() *Table {
	t, err := NewTable("n", "add", "sub",
		Rule{Opcode: "op", Mode: Relative, Operator: 1, Arg: 4},
		Rule{Opcode: "jump", Mode: Absolute, Arg: 1})
	if err != nil {
		panic(err)
	}
	return t
}

func NewTable(placeholder, lower, upper string, rules ...Rule) (*Table, error) {
	t := &Table{
		Placeholder: placeholder,
		Lower:       lower,
		Upper:       upper,
		rules:       make(map[string]*Rule, len(rules)),
	}
	if placeholder == "" {
		return nil, fmt.Errorf("%w: empty placeholder", ErrBadTable)
	}
	if lower == "" || upper == "" || lower == upper {
		return nil, fmt.Errorf("%w: lower and upper operations must be distinct and non-empty, got %q and %q", ErrBadTable, lower, upper)
	}
	for _, name := range []string{placeholder, lower, upper} {
		if strings.ContainsFunc(name, unicode.IsSpace) {
			return nil, fmt.Errorf("%w: %q contains white space", ErrBadTable, name)
		}
	}
	for i := range rules {
		r := rules[i]
		if r.Opcode == "" {
			return nil, fmt.Errorf("%w: rule %d has no opcode", ErrBadTable, i)
		}
		if _, dup := t.rules[r.Opcode]; dup {
			return nil, fmt.Errorf("%w: opcode %q listed twice", ErrBadTable, r.Opcode)
		}
		if r.Arg <= 0 {
			return nil, fmt.Errorf("%w: opcode %q: arg position must be positive", ErrBadTable, r.Opcode)
		}
		if r.Mode == Relative && (r.Operator <= 0 || r.Operator == r.Arg) {
			return nil, fmt.Errorf("%w: opcode %q: operator position must be positive and differ from arg", ErrBadTable, r.Opcode)
		}
		t.rules[r.Opcode] = &r
	}
	return t, nil
}

// Check reports an error if a token substituted by t would contain the
// separator of d, which Strip would then cut.
func (t *Table) Check(d Dialect) error {
	sep := string(d.Separator)
	for _, name := range []string{t.Placeholder, t.Lower, t.Upper} {
		if strings.Contains(name, sep) {
			return fmt.Errorf("%w: %q contains the separator %q", ErrBadTable, name, sep)
		}
	}
	return nil
}

func (t *Table) Rule(opcode string) (*Rule, bool) {
	r, ok := t.rules[opcode]
	return r, ok
}

func (t *Table) Operation(d Direction) string {
	if d == Upper {
		return t.Upper
	}
	return t.Lower
}

type tableFile struct {
	Placeholder string     `yaml:"placeholder"`
	Lower       string     `yaml:"lower"`
	Upper       string     `yaml:"upper"`
	Rules       []ruleFile `yaml:"rules"`
}

type ruleFile struct {
	Opcode   string `yaml:"opcode"`
	Mode     string `yaml:"mode"`
	Operator int    `yaml:"operator"`
	Arg      int    `yaml:"arg"`
}

// ParseTable reads a table from YAML. Missing placeholder and operation
// names take the defaults "n", "add" and "sub".
func ParseTable(d []byte) (*Table, error) {
	tf := &tableFile{}
	if err := yaml.UnmarshalWithOptions(d, tf, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadTable, err)
	}
	if tf.Placeholder == "" {
		tf.Placeholder = "n"
	}
	if tf.Lower == "" {
		tf.Lower = "add"
	}
	if tf.Upper == "" {
		tf.Upper = "sub"
	}
	if len(tf.Rules) == 0 {
		return nil, fmt.Errorf("%w: no rules", ErrBadTable)
	}
	rules := make([]Rule, len(tf.Rules))
	for i, rf := range tf.Rules {
		mode := Relative
		if rf.Mode != "" {
			m, err := ParseMode(rf.Mode)
			if err != nil {
				return nil, err
			}
			mode = m
		}
		rules[i] = Rule{Opcode: rf.Opcode, Mode: mode, Operator: rf.Operator, Arg: rf.Arg}
	}
	return NewTable(tf.Placeholder, tf.Lower, tf.Upper, rules...)
}

func LoadTable(path string) (*Table, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	t, err := ParseTable(d)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return t, nil
}
