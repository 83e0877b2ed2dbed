package console

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/haulage-game/haulage/pkg/world"
)

// compare applies one comparison operator, mirroring the ordered-comparison
// switch the numeric, money and string matches all reduce to.
func compare[T cmp.Ordered](value T, op Op, target T) bool {
	switch op {
	case OpEq:
		return value == target
	case OpNe:
		return value != target
	case OpLt:
		return value < target
	case OpLe:
		return value <= target
	case OpGe:
		return value >= target
	case OpGt:
		return value > target
	}
	return false
}

// numericSubMatch parses the criterion literal as an integer (base prefixes
// allowed) and compares. An unparsable literal makes the predicate false,
// not an error.
func numericSubMatch(value int64, op Op, literal string) bool {
	target, err := strconv.ParseInt(literal, 0, 64)
	if err != nil {
		return false
	}
	return compare(value, op, target)
}

// moneySubMatch is numericSubMatch over Money.
func moneySubMatch(value world.Money, op Op, literal string) bool {
	return numericSubMatch(int64(value), op, literal)
}

// stringSubMatch compares case-insensitively and lexicographically, reduced
// to the same operator switch. A keyword criterion with no operator is
// treated as equality.
func stringSubMatch(value string, op Op, target string) bool {
	if op == OpNone {
		op = OpEq
	}
	res := strings.Compare(strings.ToLower(value), strings.ToLower(target))
	return compare(res, op, 0)
}

// genericMatch is the fallback criterion: display name equals the literal
// case-insensitively, or the numeric identifier equals the literal parsed
// as an integer.
func genericMatch(name string, id int, literal string) bool {
	if strings.EqualFold(name, literal) {
		return true
	}
	n, err := strconv.Atoi(literal)
	return err == nil && n == id
}

// MatchesVehicle evaluates the whole chain against a vehicle: the vehicle
// matches iff it matches every criterion.
func (ch Chain) MatchesVehicle(v *world.Vehicle, w *world.World) bool {
	for _, c := range ch {
		if !vehicleMatches(v, w, c) {
			return false
		}
	}
	return true
}

func vehicleMatches(v *world.Vehicle, w *world.World, c Criterion) bool {
	switch c.Kind {
	case MatchAll:
		return true
	case MatchCrashed:
		return v.Crashed
	case MatchBroken:
		return v.BreakdownCtr != 0
	case MatchInDepot:
		return v.InDepot
	case MatchService:
		return numericSubMatch(int64(v.ServiceInterval), c.Op, c.Literal)
	case MatchSpeed:
		return numericSubMatch(int64(v.CurSpeed), c.Op, c.Literal)
	case MatchOrders:
		return numericSubMatch(int64(v.NumOrders()), c.Op, c.Literal)
	case MatchAge:
		return numericSubMatch(int64(v.AgeDays/365), c.Op, c.Literal)
	case MatchBreakdowns:
		return numericSubMatch(int64(v.BreakdownsSinceService), c.Op, c.Literal)
	case MatchMaxSpeed:
		return numericSubMatch(int64(v.MaxSpeed), c.Op, c.Literal)
	case MatchLength:
		if v.Type != world.VehTrain {
			return false
		}
		return numericSubMatch(int64(v.LengthTiles), c.Op, c.Literal)
	case MatchWagons:
		if v.Type != world.VehTrain {
			return false
		}
		return numericSubMatch(int64(v.CountWagons()), c.Op, c.Literal)
	case MatchGeneric:
		return genericMatch(v.DisplayName(), v.UnitNumber, c.Literal)
	case MatchProfit:
		return moneySubMatch(v.ProfitThisYear+v.ProfitLastYear, c.Op, c.Literal)
	case MatchProfitThis:
		return moneySubMatch(v.ProfitThisYear, c.Op, c.Literal)
	case MatchProfitLast:
		return moneySubMatch(v.ProfitLastYear, c.Op, c.Literal)
	case MatchGroup, MatchGroupMember:
		g, ok := w.Group(v.Group)
		if !ok {
			return false
		}
		return stringSubMatch(g.Name, c.Op, c.Literal)
	}
	return false
}

// MatchesTown evaluates the whole chain against a town.
func (ch Chain) MatchesTown(t *world.Town, w *world.World) bool {
	for _, c := range ch {
		if !townMatches(t, w, c) {
			return false
		}
	}
	return true
}

func townMatches(t *world.Town, w *world.World, c Criterion) bool {
	company := w.LocalCompany()
	haveCompany := w.HasLocalCompany()
	switch c.Kind {
	case MatchAll:
		return true
	case MatchGeneric:
		return genericMatch(t.Name, int(t.ID), c.Literal)
	case MatchTownPopulation:
		return numericSubMatch(int64(t.Population), c.Op, c.Literal)
	case MatchTownHouses:
		return numericSubMatch(int64(t.Houses), c.Op, c.Literal)
	case MatchTownRating:
		if !haveCompany {
			return false
		}
		return numericSubMatch(int64(t.Rating(company)), c.Op, c.Literal)
	case MatchTownNoise:
		return numericSubMatch(int64(t.NoiseReached), c.Op, c.Literal)
	case MatchTownNoiseRemain:
		return numericSubMatch(int64(t.MaxNoise-t.NoiseReached), c.Op, c.Literal)
	case MatchTownNoiseMax:
		return numericSubMatch(int64(t.MaxNoise), c.Op, c.Literal)
	case MatchTownFunding:
		return numericSubMatch(int64(t.FundBuildingsMonths), c.Op, c.Literal)
	case MatchTownRoadworks:
		return numericSubMatch(int64(t.RoadBuildMonths), c.Op, c.Literal)
	case MatchTownExclusiveCompany:
		if t.ExclusiveCounter == 0 {
			return false
		}
		return numericSubMatch(int64(t.Exclusivity), c.Op, c.Literal)
	case MatchTownExclusiveMonths:
		return numericSubMatch(int64(t.ExclusiveCounter), c.Op, c.Literal)
	case MatchTownExclusiveMyMonths:
		if !haveCompany || t.Exclusivity != company {
			return false
		}
		return numericSubMatch(int64(t.ExclusiveCounter), c.Op, c.Literal)
	case MatchTownExclusiveOthersMonths:
		if !haveCompany || t.Exclusivity == company || t.Exclusivity == world.InvalidCompany {
			return false
		}
		return numericSubMatch(int64(t.ExclusiveCounter), c.Op, c.Literal)
	case MatchTownStatue:
		return haveCompany && t.HasStatue(company)
	case MatchTownNoStatue:
		return haveCompany && !t.HasStatue(company)
	case MatchTownUnwantedMonths:
		if !haveCompany {
			return false
		}
		return numericSubMatch(int64(t.Unwanted[company]), c.Op, c.Literal)
	}
	return false
}

// MatchesIndustry evaluates the whole chain against an industry. The
// generic match compares the name of the town the industry belongs to, or
// the industry id.
func (ch Chain) MatchesIndustry(i *world.Industry, w *world.World) bool {
	for _, c := range ch {
		if !industryMatches(i, w, c) {
			return false
		}
	}
	return true
}

func industryMatches(i *world.Industry, w *world.World, c Criterion) bool {
	switch c.Kind {
	case MatchAll:
		return true
	case MatchGeneric:
		name := ""
		if t, ok := w.Town(i.Town); ok {
			name = t.Name
		}
		return genericMatch(name, int(i.ID), c.Literal)
	case MatchIndustryProduction:
		return numericSubMatch(int64(i.LastMonthProduction()), c.Op, c.Literal)
	case MatchIndustryProductionThis:
		return numericSubMatch(int64(i.ThisMonthProduction()), c.Op, c.Literal)
	case MatchIndustryPercent:
		return numericSubMatch(int64(i.LastMonthTransportedPercent()), c.Op, c.Literal)
	case MatchIndustryPercentThis:
		return numericSubMatch(int64(i.ThisMonthTransportedPercent()), c.Op, c.Literal)
	}
	return false
}
