// Package source reads drafts from files and writes their resolved form.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mindraft/mindraft/draft"
)

const (
	// DraftExt is the extension of function drafts.
	DraftExt = ".minfndft"
	// RawExt is the extension of raw code, which may also be annotated.
	RawExt = ".minraw"
	// OutExt is the extension of resolved output.
	OutExt = ".min"
)

var ErrExtension = errors.New("unsuitable filename extension")

// Exts lists the input extensions in processing order.
func Exts() []string {
	return []string{DraftExt, RawExt}
}

func IsInput(path string) bool {
	switch filepath.Ext(path) {
	case DraftExt, RawExt:
		return true
	}
	return false
}

// CheckExt returns an error wrapping ErrExtension if path is not a draft.
func CheckExt(path string) error {
	if IsInput(path) {
		return nil
	}
	return fmt.Errorf("%w: only %s and %s are suitable, got %q", ErrExtension, RawExt, DraftExt, filepath.Ext(path))
}

// OutputPath returns the path of the resolved output for the draft at path.
func OutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + OutExt
}

// Lines splits d into lines. A trailing '\r' is dropped from each line and
// trailing empty lines are discarded.
func Lines(d []byte) []string {
	d = bytes.ReplaceAll(d, []byte("\r\n"), []byte("\n"))
	lines := strings.Split(string(d), "\n")
	n := len(lines)
	for n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		n--
	}
	return lines[:n]
}

// Read reads the lines of the draft at path.
func Read(path string) ([]string, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	lines := Lines(d)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: %w", path, draft.ErrEmptyDraft)
	}
	return lines, nil
}

// Join joins trimmed lines with '\n' without a final newline.
func Join(lines []string) []byte {
	buf := bytes.NewBuffer(nil)
	for i, line := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.TrimSpace(line))
	}
	return buf.Bytes()
}

// Write replaces the file at path with lines. The content is written to a
// temporary file in the same directory and renamed over path.
func Write(path string, lines []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*"+OutExt)
	if err != nil {
		return fmt.Errorf("could not create temporary file in %q: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	if _, err := tmp.Write(Join(lines)); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error syncing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("could not replace %q: %w", path, err)
	}
	return nil
}

// List returns the drafts directly in dir, every DraftExt file before every
// RawExt file, each group sorted by name.
func List(dir string) ([]string, error) {
	var res []string
	for _, ext := range Exts() {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			fi, err := os.Stat(m)
			if err != nil {
				return nil, err
			}
			if fi.Mode().IsRegular() {
				res = append(res, m)
			}
		}
	}
	return res, nil
}
