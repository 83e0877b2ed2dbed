package console

import (
	"testing"

	"github.com/haulage-game/haulage/pkg/world"
)

func TestResolveCommandExact(t *testing.T) {
	cmd, ok := resolveCommand("start", vehCommands, vehAliases)
	if !ok || cmd.ID != VehStart {
		t.Fatalf("start: got %v ok=%v, want VehStart", cmd.ID, ok)
	}
	// Exactness is case-insensitive.
	cmd, ok = resolveCommand("StArT", vehCommands, vehAliases)
	if !ok || cmd.ID != VehStart {
		t.Fatalf("StArT: got %v ok=%v, want VehStart", cmd.ID, ok)
	}
}

func TestResolveCommandExactBeatsPrefix(t *testing.T) {
	// "show" is an exact alias hit even though it prefixes nothing else;
	// more to the point, an exact name must win over being a prefix of a
	// longer name. "stop" resolves exactly, never ambiguously against
	// nothing.
	cmd, ok := resolveCommand("show", vehCommands, vehAliases)
	if !ok || cmd.ID != VehOpen {
		t.Fatalf("show: got %v ok=%v, want VehOpen via alias", cmd.ID, ok)
	}
}

func TestResolveCommandUniquePrefix(t *testing.T) {
	cmd, ok := resolveCommand("int", vehCommands, vehAliases)
	if !ok || cmd.ID != VehInterval {
		t.Fatalf("int: got %v ok=%v, want VehInterval", cmd.ID, ok)
	}
	cmd, ok = resolveCommand("dep", vehCommands, vehAliases)
	if !ok || cmd.ID != VehDepot {
		t.Fatalf("dep: got %v ok=%v, want VehDepot", cmd.ID, ok)
	}
}

func TestResolveCommandAmbiguousPrefix(t *testing.T) {
	// "s" prefixes sell, service, skip, start, stop, show...
	if _, ok := resolveCommand("s", vehCommands, vehAliases); ok {
		t.Fatal("s resolved, want ambiguous failure")
	}
	// "cl" prefixes clone and clone_shared.
	if _, ok := resolveCommand("cl", vehCommands, vehAliases); ok {
		t.Fatal("cl resolved, want ambiguous failure")
	}
	// "clone" is exact, so the clone/clone_shared overlap does not matter.
	cmd, ok := resolveCommand("clone", vehCommands, vehAliases)
	if !ok || cmd.ID != VehClone {
		t.Fatalf("clone: got %v ok=%v, want VehClone", cmd.ID, ok)
	}
}

func TestResolveCommandSamePrimaryPrefixNotAmbiguous(t *testing.T) {
	// "cent" prefixes both center and its alias centre; both resolve to
	// the same primary, so the prefix stays unique.
	cmd, ok := resolveCommand("cent", vehCommands, vehAliases)
	if !ok || cmd.ID != VehCenter {
		t.Fatalf("cent: got %v ok=%v, want VehCenter", cmd.ID, ok)
	}
}

func TestResolveCommandUnknown(t *testing.T) {
	if _, ok := resolveCommand("zzz", vehCommands, vehAliases); ok {
		t.Fatal("zzz resolved, want failure")
	}
	if _, ok := resolveCommand("", vehCommands, vehAliases); ok {
		t.Fatal("empty query resolved, want failure")
	}
}

func TestResolveMatchKeyPrefix(t *testing.T) {
	sp, ok := resolveMatchKey("pop")
	if !ok || sp.Kind != MatchTownPopulation {
		t.Fatalf("pop: got %v ok=%v, want MatchTownPopulation", sp.Kind, ok)
	}
	// "profit" is exact even though profit_this and profit_last extend it.
	sp, ok = resolveMatchKey("profit")
	if !ok || sp.Kind != MatchProfit {
		t.Fatalf("profit: got %v ok=%v, want MatchProfit", sp.Kind, ok)
	}
	// "profit_" is a prefix of two different keywords.
	if _, ok := resolveMatchKey("profit_"); ok {
		t.Fatal("profit_ resolved, want ambiguous failure")
	}
}

func TestResolveGroupNameCaseSensitiveExactWins(t *testing.T) {
	groups := []*world.Group{
		{ID: 1, Name: "xyz"},
		{ID: 2, Name: "Xyz"},
	}
	g := ResolveGroupName(groups, "Xyz")
	if g == nil || g.ID != 2 {
		t.Fatalf("Xyz: got %v, want group 2", g)
	}
	g = ResolveGroupName(groups, "xyz")
	if g == nil || g.ID != 1 {
		t.Fatalf("xyz: got %v, want group 1", g)
	}
	// No case-sensitive hit and two case-insensitive exact hits: ambiguous.
	if g := ResolveGroupName(groups, "XYZ"); g != nil {
		t.Fatalf("XYZ: got group %d, want nil", g.ID)
	}
}

func TestResolveGroupNamePrefix(t *testing.T) {
	groups := []*world.Group{
		{ID: 1, Name: "expresses"},
		{ID: 2, Name: "locals"},
	}
	g := ResolveGroupName(groups, "exp")
	if g == nil || g.ID != 1 {
		t.Fatalf("exp: got %v, want group 1", g)
	}
	groups = append(groups, &world.Group{ID: 3, Name: "express freight"})
	if g := ResolveGroupName(groups, "exp"); g != nil {
		t.Fatalf("exp with two candidates: got group %d, want nil", g.ID)
	}
	// An exact name still wins over being a prefix of another.
	g = ResolveGroupName(groups, "expresses")
	if g == nil || g.ID != 1 {
		t.Fatalf("expresses: got %v, want group 1", g)
	}
}
