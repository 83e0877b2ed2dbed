package events

// EventType classifies events for transport-specific handling.
type EventType int

const (
	EvText     EventType = iota // Raw console text
	EvViewport                  // Scroll main view to a map position
	EvWindow                    // Open an entity window
	EvCommand                   // One console line finished dispatching
	EvWorld                     // World-level change (save/load, pause)
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EvText:
		return "text"
	case EvViewport:
		return "viewport"
	case EvWindow:
		return "window"
	case EvCommand:
		return "command"
	case EvWorld:
		return "world"
	default:
		return "unknown"
	}
}

// Event is a structured console/world event that flows through the bus.
// Fields beyond Type are used per-type: viewport events carry coordinates,
// window events a target description, command events the executed line,
// the entity kind it ran over and its match accounting.
type Event struct {
	Type     EventType
	Session  string // originating session id; empty for world-wide events
	Text     string
	Target   string
	Kind     string // entity noun for command summaries ("train", "town", ...)
	X, Y     int
	Matched  int
	Affected int
}

// CommandSummary reports a finished batch dispatch: the line as executed,
// the entity noun it ran over, and the matched/affected counts.
func CommandSummary(session, line, kind string, matched, affected int) Event {
	return Event{Type: EvCommand, Session: session, Text: line, Kind: kind,
		Matched: matched, Affected: affected}
}

// ViewportJump asks the originating session's client to scroll its main
// view to a map position.
func ViewportJump(session string, x, y int) Event {
	return Event{Type: EvViewport, Session: session, X: x, Y: y}
}

// WindowOpen asks the originating session's client to open the window
// named by target, e.g. "town:4" or "vehicle:12".
func WindowOpen(session, target string) Event {
	return Event{Type: EvWindow, Session: session, Target: target}
}

// WorldChange marks a world-level state transition (pause, save, load).
func WorldChange(session, text string) Event {
	return Event{Type: EvWorld, Session: session, Text: text}
}
