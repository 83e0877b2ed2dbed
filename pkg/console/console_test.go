package console

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/haulage-game/haulage/pkg/events"
	"github.com/haulage-game/haulage/pkg/world"
)

func TestSplitLineQuotes(t *testing.T) {
	tokens, err := splitLine(`train "night expresses" start`)
	if err != nil {
		t.Fatalf("splitLine: %v", err)
	}
	want := []string{"train", "night expresses", "start"}
	if len(tokens) != len(want) {
		t.Fatalf("tokens = %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("tokens[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}

	if _, err := splitLine(`echo "unterminated`); err == nil {
		t.Fatal("unbalanced quotes accepted")
	}
}

func TestExpandAlias(t *testing.T) {
	lines := expandAlias("aircraft %+", []string{"all", "count"})
	if len(lines) != 1 || lines[0] != "aircraft all count" {
		t.Fatalf("lines = %v", lines)
	}
	lines = expandAlias("echo %A; echo %B", []string{"one", "two"})
	if len(lines) != 2 || lines[0] != "echo one" || lines[1] != "echo two" {
		t.Fatalf("lines = %v", lines)
	}
	// Missing positional parameters expand to nothing.
	lines = expandAlias("echo %C", []string{"one"})
	if lines[0] != "echo " {
		t.Fatalf("lines = %v", lines)
	}
}

func TestPlaneAlias(t *testing.T) {
	w := world.New()
	w.AddCompany(&world.Company{ID: 1})
	w.SetLocalCompany(1)
	w.AddVehicle(&world.Vehicle{Type: world.VehAircraft, Owner: 1, CurSpeed: 400})
	con := New(w, events.NewBus())
	out := &BufferSink{}

	con.Run("s", out, "plane all count")
	lines := out.Lines()
	if len(lines) == 0 || lines[len(lines)-1] != "Number of aircrafts matched: 1, affected: 1" {
		t.Fatalf("output = %v", lines)
	}
}

func TestRoadSelector(t *testing.T) {
	w := world.New()
	w.AddCompany(&world.Company{ID: 1})
	w.SetLocalCompany(1)
	w.AddVehicle(&world.Vehicle{Type: world.VehRoad, Owner: 1, CurSpeed: 50})

	con := New(w, events.NewBus())
	want := "Number of road vehicles matched: 1, affected: 1"
	for _, line := range []string{"road all count", "rv all count"} {
		out := &BufferSink{}
		con.Run("s", out, line)
		lines := out.Lines()
		if len(lines) == 0 || lines[len(lines)-1] != want {
			t.Fatalf("%q output = %v", line, lines)
		}
	}
}

func TestAliasRecursionBounded(t *testing.T) {
	w := world.New()
	con := New(w, events.NewBus())
	con.DefineAlias("loop", "loop")
	out := &BufferSink{}
	con.Run("s", out, "loop")
	if !strings.Contains(out.String(), "Too many alias expansions.") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestUnknownCommandSuggestion(t *testing.T) {
	w := world.New()
	con := New(w, events.NewBus())
	out := &BufferSink{}
	con.Run("s", out, "indastry all count")
	if !strings.Contains(out.String(), "Did you mean 'industry'?") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestEchoAndComments(t *testing.T) {
	w := world.New()
	con := New(w, events.NewBus())
	out := &BufferSink{}
	con.Run("s", out, "echo hello world")
	if out.String() != "hello world" {
		t.Fatalf("echo output = %q", out.String())
	}
	out.Reset()
	con.Run("s", out, "# a comment line")
	if len(out.Lines()) != 0 {
		t.Fatalf("comment produced output: %v", out.Lines())
	}
}

func TestPauseUnpause(t *testing.T) {
	w := world.New()
	con := New(w, events.NewBus())
	out := &BufferSink{}
	con.Run("s", out, "pause")
	if !w.Paused() {
		t.Fatal("world not paused")
	}
	con.Run("s", out, "pause")
	if !strings.Contains(out.String(), "already paused") {
		t.Fatalf("output = %q", out.String())
	}
	con.Run("s", out, "unpause")
	if w.Paused() {
		t.Fatal("world still paused")
	}
}

func TestGetDate(t *testing.T) {
	w := world.New()
	w.SetDate(1974, 6, 1)
	con := New(w, events.NewBus())
	out := &BufferSink{}
	con.Run("s", out, "getdate")
	if out.String() != "Date: 1974-06-01" {
		t.Fatalf("output = %q", out.String())
	}
}

type memorySaver struct {
	snaps map[string]*world.Snapshot
}

func (m *memorySaver) Save(w *world.World, name string) error {
	m.snaps[name] = w.Snapshot()
	return nil
}

func (m *memorySaver) Load(w *world.World, name string) error {
	snap, ok := m.snaps[name]
	if !ok {
		return fmt.Errorf("no save named %q", name)
	}
	w.Restore(snap)
	return nil
}

func TestSaveLoadRoundTrip(t *testing.T) {
	w := world.New()
	w.AddCompany(&world.Company{ID: 1})
	w.SetLocalCompany(1)
	w.AddTown(&world.Town{Name: "Sundingburg", Population: 2400})
	con := New(w, events.NewBus())
	con.Saver = &memorySaver{snaps: make(map[string]*world.Snapshot)}
	out := &BufferSink{}

	con.Run("s", out, "save before")
	con.Run("s", out, "town all delete")
	if _, towns, _ := w.Counts(); towns != 0 {
		t.Fatalf("towns = %d, want 0", towns)
	}
	con.Run("s", out, "load before")
	if _, towns, _ := w.Counts(); towns != 1 {
		t.Fatalf("towns after load = %d, want 1", towns)
	}
	out.Reset()
	con.Run("s", out, "load missing")
	if !strings.Contains(out.String(), "Loading failed") {
		t.Fatalf("output = %q", out.String())
	}
}

type memoryHistory struct {
	entries []HistoryEntry
}

func (m *memoryHistory) Record(e HistoryEntry) error {
	m.entries = append(m.entries, e)
	return nil
}

func (m *memoryHistory) Recent(n int) ([]HistoryEntry, error) {
	if n > len(m.entries) {
		n = len(m.entries)
	}
	return m.entries[len(m.entries)-n:], nil
}

func TestCommandHistoryRecordedAndDumped(t *testing.T) {
	w := world.New()
	con := New(w, events.NewBus())
	hist := &memoryHistory{}
	con.Hist = hist
	out := &BufferSink{}

	con.Run("sess-1", out, "echo one")
	con.Run("sess-2", out, "echo two")
	if len(hist.entries) != 2 || hist.entries[0].Line != "echo one" {
		t.Fatalf("entries = %+v", hist.entries)
	}
	if hist.entries[0].When.After(time.Now()) {
		t.Fatal("entry timestamp in the future")
	}

	out.Reset()
	con.Run("sess-1", out, "dump_command_log 2")
	text := out.String()
	if !strings.Contains(text, "[sess-2] echo two") {
		t.Fatalf("dump output = %q", text)
	}
}

func TestHelpForSelectorAndAlias(t *testing.T) {
	w := world.New()
	con := New(w, events.NewBus())
	out := &BufferSink{}
	con.Run("s", out, "help town")
	if !strings.Contains(out.String(), "Invoke command on specified town(s)") {
		t.Fatalf("help town output = %q", out.String())
	}
	out.Reset()
	con.Run("s", out, "help plane")
	if !strings.Contains(out.String(), "aircraft %+") {
		t.Fatalf("help plane output = %q", out.String())
	}
}
