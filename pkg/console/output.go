package console

import (
	"fmt"
	"strings"
	"sync"
)

// Output is the classified console output sink. Transports (TCP session,
// WebSocket session, test buffer) implement it; the engine never talks to a
// connection directly.
type Output interface {
	Print(format string, a ...any)
	Help(format string, a ...any)
	Warning(format string, a ...any)
	Error(format string, a ...any)
}

// BufferSink collects output lines in memory. Used by tests and by the
// command log subscriber.
type BufferSink struct {
	mu    sync.Mutex
	lines []string
}

func (b *BufferSink) add(prefix, format string, a ...any) {
	b.mu.Lock()
	b.lines = append(b.lines, prefix+fmt.Sprintf(format, a...))
	b.mu.Unlock()
}

// Print records an information line.
func (b *BufferSink) Print(format string, a ...any) { b.add("", format, a...) }

// Help records a help line.
func (b *BufferSink) Help(format string, a ...any) { b.add("", format, a...) }

// Warning records a warning line.
func (b *BufferSink) Warning(format string, a ...any) { b.add("WARNING: ", format, a...) }

// Error records an error line.
func (b *BufferSink) Error(format string, a ...any) { b.add("ERROR: ", format, a...) }

// Lines returns a copy of everything recorded so far.
func (b *BufferSink) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.lines...)
}

// String joins all recorded lines with newlines.
func (b *BufferSink) String() string { return strings.Join(b.Lines(), "\n") }

// Reset discards everything recorded so far.
func (b *BufferSink) Reset() {
	b.mu.Lock()
	b.lines = nil
	b.mu.Unlock()
}
