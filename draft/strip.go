package draft

import "strings"

// Strip truncates every line at its first separator and trims it.
func Strip(lines []string, d Dialect) {
	sep := string(d.Separator)
	for i, line := range lines {
		ins, _, _ := strings.Cut(line, sep)
		lines[i] = strings.TrimSpace(ins)
	}
}
