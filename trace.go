package termline

import (
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// tracer logs key events and completed lines to a rotating file. A console
// in raw mode owns the screen, so diagnostics cannot go to stdout; the
// trace file is the debugging channel when the editor misbehaves. A nil
// tracer discards everything.
type tracer struct {
	logger *log.Logger
	file   *lumberjack.Logger
}

func newTracer(path string) *tracer {
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     14, // days
	}
	return &tracer{
		logger: log.New(file, "", log.LstdFlags),
		file:   file,
	}
}

func (t *tracer) logKey(k Key) {
	if t == nil {
		return
	}
	if k.Kind == KeyChar {
		t.logger.Printf("key: char %q", k.Ch)
		return
	}
	t.logger.Printf("key: %s", k.Kind)
}

func (t *tracer) logLine(line string) {
	if t == nil {
		return
	}
	t.logger.Printf("line: %q", line)
}

func (t *tracer) close() error {
	if t == nil {
		return nil
	}
	return t.file.Close()
}
