package server

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/haulage-game/haulage/pkg/events"
)

// TransportType identifies the kind of transport a Session uses.
type TransportType int

const (
	TransportTCP       TransportType = iota // plain TCP console
	TransportWebSocket                      // WebSocket console
)

// Session represents a single console client connection. It implements
// console.Output for command replies and events.Subscriber so viewport
// and window events reach the client.
type Session struct {
	ID        string
	Conn      net.Conn
	Reader    *bufio.Reader
	Addr      string
	ConnTime  time.Time
	LastCmd   time.Time
	CmdCount  int
	Transport TransportType

	// SendFunc overrides the default Send behavior (used by the
	// WebSocket transport). If nil, the TCP path is used.
	SendFunc func(msg string)

	mu     sync.Mutex
	closed bool
}

// NewSession wraps a net.Conn into a Session with a fresh id.
func NewSession(conn net.Conn) *Session {
	now := time.Now()
	return &Session{
		ID:       uuid.NewString(),
		Conn:     conn,
		Reader:   bufio.NewReaderSize(conn, 4096),
		Addr:     conn.RemoteAddr().String(),
		ConnTime: now,
		LastCmd:  now,
	}
}

// Send writes one line to the client.
func (s *Session) Send(msg string) {
	if s.SendFunc != nil {
		s.SendFunc(msg)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if !strings.HasSuffix(msg, "\n") {
		msg += "\r\n"
	}
	s.Conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	s.Conn.Write([]byte(msg))
}

// Close shuts the connection down once.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()
	if s.Conn != nil {
		s.Conn.Close()
	}
}

// Print implements console.Output.
func (s *Session) Print(format string, a ...any) {
	s.Send(fmt.Sprintf(format, a...))
}

// Help implements console.Output.
func (s *Session) Help(format string, a ...any) {
	s.Send(fmt.Sprintf(format, a...))
}

// Warning implements console.Output.
func (s *Session) Warning(format string, a ...any) {
	s.Send("WARNING: " + fmt.Sprintf(format, a...))
}

// Error implements console.Output.
func (s *Session) Error(format string, a ...any) {
	s.Send("ERROR: " + fmt.Sprintf(format, a...))
}

// Receive implements events.Subscriber. Viewport and window events are
// rendered as console lines; a GUI client would consume them directly.
func (s *Session) Receive(ev events.Event) {
	switch ev.Type {
	case events.EvViewport:
		s.Send(fmt.Sprintf("[viewport] centered on %d,%d", ev.X, ev.Y))
	case events.EvWindow:
		s.Send(fmt.Sprintf("[window] open %s", ev.Target))
	case events.EvText:
		s.Send(ev.Text)
	}
}

// Closed implements events.Subscriber.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
