package console

import (
	"testing"

	"github.com/haulage-game/haulage/pkg/world"
)

func TestCompareOperatorsInclusive(t *testing.T) {
	// >= and <= include the boundary; > and < exclude it.
	if !numericSubMatch(1000, OpGe, "1000") {
		t.Error(">=1000 at 1000 should match")
	}
	if numericSubMatch(1000, OpGt, "1000") {
		t.Error(">1000 at 1000 should not match")
	}
	if !numericSubMatch(1000, OpLe, "1000") {
		t.Error("<=1000 at 1000 should match")
	}
	if numericSubMatch(1000, OpLt, "1000") {
		t.Error("<1000 at 1000 should not match")
	}
	if !numericSubMatch(999, OpNe, "1000") {
		t.Error("<>1000 at 999 should match")
	}
}

func TestNumericSubMatchUnparsable(t *testing.T) {
	if numericSubMatch(5, OpEq, "bogus") {
		t.Error("unparsable literal must make the predicate false")
	}
	// Base prefixes are honored.
	if !numericSubMatch(255, OpEq, "0xff") {
		t.Error("0xff should parse as 255")
	}
}

func TestStringSubMatchCaseInsensitive(t *testing.T) {
	if !stringSubMatch("Night Expresses", OpEq, "night expresses") {
		t.Error("string equality is case-insensitive")
	}
	if !stringSubMatch("abc", OpLt, "abd") {
		t.Error("abc < abd lexicographically")
	}
	// No operator means equality.
	if !stringSubMatch("coal", OpNone, "Coal") {
		t.Error("OpNone should compare as equality")
	}
}

func TestVehicleChainConjunction(t *testing.T) {
	w := world.New()
	v := &world.Vehicle{Type: world.VehTrain, CurSpeed: 120, Crashed: false}
	w.AddVehicle(v)

	chain := Chain{
		{Kind: MatchSpeed, Op: OpGt, Literal: "100"},
		{Kind: MatchAll},
	}
	if !chain.MatchesVehicle(v, w) {
		t.Error("speed>100 and all should match at 120")
	}
	chain = append(chain, Criterion{Kind: MatchCrashed})
	if chain.MatchesVehicle(v, w) {
		t.Error("appending crashed criterion must unmatch a healthy vehicle")
	}
}

func TestVehicleTrainOnlyCriteria(t *testing.T) {
	w := world.New()
	ship := &world.Vehicle{Type: world.VehShip, CurSpeed: 20}
	w.AddVehicle(ship)

	chain := Chain{{Kind: MatchLength, Op: OpGt, Literal: "0"}}
	if chain.MatchesVehicle(ship, w) {
		t.Error("len criterion must be false for non-trains")
	}
	chain = Chain{{Kind: MatchWagons, Op: OpGe, Literal: "0"}}
	if chain.MatchesVehicle(ship, w) {
		t.Error("wagons criterion must be false for non-trains")
	}
}

func TestVehicleGenericMatch(t *testing.T) {
	w := world.New()
	v := &world.Vehicle{Type: world.VehTrain, Name: "Flying Scotsman"}
	w.AddVehicle(v)

	chain := Chain{{Kind: MatchGeneric, Literal: "flying scotsman"}}
	if !chain.MatchesVehicle(v, w) {
		t.Error("generic match by name is case-insensitive")
	}
	chain = Chain{{Kind: MatchGeneric, Literal: "1"}}
	if !chain.MatchesVehicle(v, w) {
		t.Errorf("generic match by unit number %d should match literal 1", v.UnitNumber)
	}
	chain = Chain{{Kind: MatchGeneric, Literal: "other"}}
	if chain.MatchesVehicle(v, w) {
		t.Error("non-matching literal matched")
	}
}

func TestVehicleGroupCriteria(t *testing.T) {
	w := world.New()
	gid := w.AddGroup(&world.Group{Name: "expresses", Owner: 1})
	v := &world.Vehicle{Type: world.VehTrain, Group: gid}
	w.AddVehicle(v)
	loner := &world.Vehicle{Type: world.VehTrain}
	w.AddVehicle(loner)

	chain := Chain{{Kind: MatchGroup, Op: OpEq, Literal: "Expresses"}}
	if !chain.MatchesVehicle(v, w) {
		t.Error("group=Expresses should match the grouped vehicle")
	}
	if chain.MatchesVehicle(loner, w) {
		t.Error("ungrouped vehicle matched a group criterion")
	}
}

func TestTownCompanyRelativeCriteria(t *testing.T) {
	w := world.New()
	tid := w.AddTown(&world.Town{Name: "Sundingburg", Population: 2400})
	tn, _ := w.Town(tid)
	tn.Ratings[1] = 400
	tn.Statues[1] = true

	// Without a local company, company-relative criteria are false.
	chain := Chain{{Kind: MatchTownRating, Op: OpGt, Literal: "0"}}
	if chain.MatchesTown(tn, w) {
		t.Error("rating criterion matched without a local company")
	}
	chain = Chain{{Kind: MatchTownStatue}}
	if chain.MatchesTown(tn, w) {
		t.Error("statue criterion matched without a local company")
	}

	w.AddCompany(&world.Company{ID: 1, Name: "Haulage Ltd"})
	w.SetLocalCompany(1)
	chain = Chain{{Kind: MatchTownRating, Op: OpEq, Literal: "400"}}
	if !chain.MatchesTown(tn, w) {
		t.Error("rating=400 should match")
	}
	chain = Chain{{Kind: MatchTownStatue}}
	if !chain.MatchesTown(tn, w) {
		t.Error("statue keyword should match a town with our statue")
	}
	chain = Chain{{Kind: MatchTownNoStatue}}
	if chain.MatchesTown(tn, w) {
		t.Error("no_statue must not match a town with our statue")
	}
}

func TestTownExclusivityCriteria(t *testing.T) {
	w := world.New()
	w.AddCompany(&world.Company{ID: 1})
	w.AddCompany(&world.Company{ID: 2})
	w.SetLocalCompany(1)

	tid := w.AddTown(&world.Town{Name: "Flanfingway"})
	tn, _ := w.Town(tid)
	tn.Exclusivity = 2
	tn.ExclusiveCounter = 7

	chain := Chain{{Kind: MatchTownExclusiveCompany, Op: OpEq, Literal: "2"}}
	if !chain.MatchesTown(tn, w) {
		t.Error("exclusive=2 should match")
	}
	chain = Chain{{Kind: MatchTownExclusiveOthersMonths, Op: OpGe, Literal: "7"}}
	if !chain.MatchesTown(tn, w) {
		t.Error("other_exclusive>=7 should match a competitor's rights")
	}
	chain = Chain{{Kind: MatchTownExclusiveMyMonths, Op: OpGt, Literal: "0"}}
	if chain.MatchesTown(tn, w) {
		t.Error("my_exclusive must not match a competitor's rights")
	}
}

func TestIndustryGenericMatchesTownName(t *testing.T) {
	w := world.New()
	tid := w.AddTown(&world.Town{Name: "Great Torpford"})
	iid := w.AddIndustry(&world.Industry{Town: tid})
	ind, _ := w.Industry(iid)

	chain := Chain{{Kind: MatchGeneric, Literal: "great torpford"}}
	if !chain.MatchesIndustry(ind, w) {
		t.Error("industry generic match should hit its town's name")
	}
	chain = Chain{{Kind: MatchGeneric, Literal: "1"}}
	if !chain.MatchesIndustry(ind, w) {
		t.Error("industry generic match should hit the industry id")
	}
}

func TestIndustryProductionCriteria(t *testing.T) {
	w := world.New()
	tid := w.AddTown(&world.Town{Name: "Sundingburg"})
	iid := w.AddIndustry(&world.Industry{Town: tid, Produced: [2]world.CargoStats{
		{Cargo: "coal", LastProduced: 100, LastTransported: 60, ThisProduced: 40, ThisTransported: 10},
	}})
	ind, _ := w.Industry(iid)

	chain := Chain{{Kind: MatchIndustryProduction, Op: OpEq, Literal: "100"}}
	if !chain.MatchesIndustry(ind, w) {
		t.Error("production=100 should match")
	}
	chain = Chain{{Kind: MatchIndustryPercent, Op: OpEq, Literal: "60"}}
	if !chain.MatchesIndustry(ind, w) {
		t.Error("percent=60 should match")
	}
	chain = Chain{{Kind: MatchIndustryPercentThis, Op: OpEq, Literal: "25"}}
	if !chain.MatchesIndustry(ind, w) {
		t.Error("thispercent=25 should match")
	}
}
