package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLog(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	log := newLog(buf, false)
	log.Info("wrote", "file", "a.min")
	log.Debug("resolved", "file", "a.minfndft")
	if buf.Len() != 0 {
		t.Errorf("got output at default level: %q", buf.String())
	}
	log.Warn("watch error", "dir", ".")
	if got := buf.String(); !strings.HasPrefix(got, "level=WARN msg=\"watch error\"") {
		t.Errorf("got %q", got)
	}

	buf.Reset()
	log = newLog(buf, true)
	log.Info("wrote", "file", "a.min")
	if got, want := buf.String(), "msg=wrote file=a.min\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
