package batch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mindraft/mindraft/source"

	"github.com/fsnotify/fsnotify"
)

// Watch processes every draft in dir once and then again each time one is
// written or created, until ctx is done.
func (r *Runner) Watch(ctx context.Context, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("could not watch %q: %w", dir, err)
	}
	if _, err := r.Dir(dir); err != nil {
		return err
	}
	r.Log.Info("watching", "dir", dir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isDraftChange(ev) {
				continue
			}
			r.Log.Debug("changed", "file", ev.Name, "op", ev.Op.String())
			if res := r.File(ev.Name); res.Err != nil {
				if err := r.reportErr(res); err != nil {
					return err
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.Log.Warn("watch error", "dir", dir, "error", err)
		}
	}
}

func isDraftChange(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	base := filepath.Base(ev.Name)
	if len(base) > 0 && base[0] == '.' {
		return false
	}
	return source.IsInput(ev.Name)
}
