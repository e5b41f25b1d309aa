// Package batch resolves draft files, one at a time or a directory at once.
package batch

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/mindraft/mindraft/draft"
	"github.com/mindraft/mindraft/libdiff"
	"github.com/mindraft/mindraft/source"

	"github.com/fatih/color"
)

// Runner holds everything needed to process drafts.
type Runner struct {
	Dialect draft.Dialect
	Table   *draft.Table
	// DryRun prints a diff of each draft against its output to Out
	// instead of writing the output file.
	DryRun bool
	Color  bool
	Out    io.Writer
	Log    *slog.Logger
}

func NewRunner(out io.Writer, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		Dialect: draft.DefaultDialect(),
		Table:   draft.DefaultTable(),
		Out:     out,
		Log:     log,
	}
}

// Result is the outcome of processing one file.
type Result struct {
	Path   string
	Output string
	Fixups int
	Err    error
}

// File resolves the draft at path and writes its output. Nothing is
// written if any step fails.
func (r *Runner) File(path string) *Result {
	res := &Result{Path: path}
	if err := source.CheckExt(path); err != nil {
		res.Err = err
		return res
	}
	lines, err := source.Read(path)
	if err != nil {
		res.Err = err
		return res
	}
	fin, err := draft.Finish(lines, draft.WithDialect(r.Dialect), draft.WithTable(r.Table))
	if err != nil {
		res.Err = fmt.Errorf("error resolving %s: %w", path, err)
		return res
	}
	res.Fixups = len(fin.Fixups)
	res.Output = source.OutputPath(path)
	r.Log.Debug("resolved", "file", path, "lines", len(fin.Lines),
		"labels", fin.Index.NumLabels(), "pointers", fin.Index.NumPointers())
	if r.DryRun {
		res.Output = ""
		if err := r.preview(path, lines, fin.Lines); err != nil {
			res.Err = err
		}
		return res
	}
	if err := source.Write(res.Output, fin.Lines); err != nil {
		res.Output = ""
		res.Err = err
		return res
	}
	r.Log.Info("wrote", "file", res.Output, "fixups", res.Fixups)
	return res
}

// preview writes nothing for a draft its output does not change.
func (r *Runner) preview(path string, from, to []string) error {
	ls := libdiff.Lines(from, to)
	if !libdiff.Changed(ls) {
		return nil
	}
	var colors *libdiff.Colors
	if r.Color {
		colors = libdiff.NewColors()
	}
	if _, err := fmt.Fprintf(r.Out, "--- %s\n+++ %s\n", path, source.OutputPath(path)); err != nil {
		return err
	}
	return libdiff.Write(r.Out, ls, colors)
}

// Dir processes every draft directly in dir. A failing file is reported
// to Out and does not stop the others.
func (r *Runner) Dir(dir string) (*Report, error) {
	paths, err := source.List(dir)
	if err != nil {
		return nil, fmt.Errorf("could not list %q: %w", dir, err)
	}
	rep := &Report{}
	for _, path := range paths {
		res := r.File(path)
		rep.Results = append(rep.Results, res)
		if res.Err != nil {
			r.Log.Debug("failed", "file", path, "error", res.Err)
			if err := r.reportErr(res); err != nil {
				return rep, err
			}
		}
	}
	r.Log.Debug("done", "dir", dir, "files", len(rep.Results), "failed", rep.Failed())
	return rep, nil
}

func (r *Runner) reportErr(res *Result) error {
	name := filepath.Base(res.Path) + ":"
	if r.Color {
		c := color.New(color.FgRed, color.Bold)
		c.EnableColor()
		name = c.Sprint(name)
	}
	_, err := fmt.Fprintf(r.Out, "%s\n%s\n", name, res.Err.Error())
	return err
}

// Report collects the results of a directory run.
type Report struct {
	Results []*Result
}

func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Err returns an error if any file failed.
func (r *Report) Err() error {
	if n := r.Failed(); n > 0 {
		return fmt.Errorf("%d of %d drafts failed", n, len(r.Results))
	}
	return nil
}
