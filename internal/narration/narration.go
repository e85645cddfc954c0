// Package narration carries the human-readable battle log: "Wild X appeared!",
// "X used Y! (N DMG)", "X fainted!". Tests assert on it instead of pixels.
package narration

import (
	"log"
	"sync"
)

// Sink receives narration lines in the order they happen.
type Sink interface {
	Narrate(line string)
}

// Discard drops every line.
var Discard Sink = discard{}

type discard struct{}

func (discard) Narrate(string) {}

// Recorder keeps every line it receives.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Narrate(line string) {
	r.mu.Lock()
	r.lines = append(r.lines, line)
	r.mu.Unlock()
}

// Lines returns a copy of everything recorded so far.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Reset forgets recorded lines.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.lines = nil
	r.mu.Unlock()
}

// LogSink writes each line to a standard logger.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink wraps logger; nil means the standard logger.
func NewLogSink(logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Narrate(line string) {
	s.logger.Printf("narration: %s", line)
}

// Feed keeps the most recent lines for on-screen display.
type Feed struct {
	lines []string
	limit int
}

// NewFeed creates a feed holding at most limit lines.
func NewFeed(limit int) *Feed {
	if limit < 1 {
		limit = 1
	}
	return &Feed{limit: limit}
}

func (f *Feed) Narrate(line string) {
	f.lines = append(f.lines, line)
	if over := len(f.lines) - f.limit; over > 0 {
		f.lines = append(f.lines[:0], f.lines[over:]...)
	}
}

// Lines returns the retained lines, oldest first.
func (f *Feed) Lines() []string {
	return f.lines
}

// Multi fans every line out to several sinks.
type Multi []Sink

func (m Multi) Narrate(line string) {
	for _, s := range m {
		s.Narrate(line)
	}
}
