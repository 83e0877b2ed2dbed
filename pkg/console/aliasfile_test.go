package console

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/haulage-game/haulage/pkg/events"
	"github.com/haulage-game/haulage/pkg/world"
)

func TestLoadAliasFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.conf")
	data := `# console aliases
alias stopall "vehicle all stop"

alias gd getdate
bogus line without directive
alias onlyname
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	con := New(world.New(), events.NewBus())
	if err := con.LoadAliasFile(path); err != nil {
		t.Fatalf("LoadAliasFile: %v", err)
	}

	if exp, ok := con.Alias("stopall"); !ok || exp != "vehicle all stop" {
		t.Errorf("stopall = %q ok=%v", exp, ok)
	}
	if exp, ok := con.Alias("gd"); !ok || exp != "getdate" {
		t.Errorf("gd = %q ok=%v", exp, ok)
	}
	if _, ok := con.Alias("onlyname"); ok {
		t.Error("malformed alias installed")
	}

	// Reload replaces entries in place.
	data = `alias stopall "train all stop"` + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := con.LoadAliasFile(path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if exp, _ := con.Alias("stopall"); exp != "train all stop" {
		t.Errorf("stopall after reload = %q", exp)
	}

	if err := con.LoadAliasFile(filepath.Join(t.TempDir(), "nope.conf")); err == nil {
		t.Error("missing alias file accepted")
	}
}
