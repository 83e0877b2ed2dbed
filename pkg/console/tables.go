package console

// MatchKind identifies what a filter criterion tests.
type MatchKind int

const (
	MatchInvalid MatchKind = iota
	MatchGeneric           // display name or numeric id
	MatchAll

	// Vehicles
	MatchGroup
	MatchGroupMember // generic criterion rewritten to group membership
	MatchCrashed
	MatchLength
	MatchWagons
	MatchOrders
	MatchSpeed
	MatchAge
	MatchBreakdowns
	MatchMaxSpeed
	MatchProfit
	MatchProfitThis
	MatchProfitLast
	MatchService
	MatchInDepot
	MatchBroken

	// Towns
	MatchTownPopulation
	MatchTownHouses
	MatchTownRating
	MatchTownStatue
	MatchTownNoStatue
	MatchTownFunding
	MatchTownRoadworks
	MatchTownExclusiveCompany
	MatchTownExclusiveMonths
	MatchTownExclusiveMyMonths
	MatchTownExclusiveOthersMonths
	MatchTownUnwantedMonths
	MatchTownNoise
	MatchTownNoiseRemain
	MatchTownNoiseMax

	// Industries
	MatchIndustryProduction
	MatchIndustryProductionThis
	MatchIndustryPercent
	MatchIndustryPercentThis
)

// CmdID identifies one batch command. The three kinds share the id space;
// each table only lists its own.
type CmdID int

const (
	CmdInvalid CmdID = iota

	VehCenter
	VehClone
	VehCloneShared
	VehCount
	VehDepot
	VehIgnore
	VehInfo
	VehInterval
	VehLeave
	VehOpen
	VehSell
	VehService
	VehSkip
	VehStart
	VehStop
	VehTurn
	VehUnservice
	VehUndepot
	VehWagonInfo
	VehWagonSell

	TownCenter
	TownCount
	TownInfo
	TownPrint
	TownOpen
	TownAuth
	TownAdSmall
	TownAdMedium
	TownAdLarge
	TownRoad
	TownStatue
	TownFund
	TownExclusive
	TownBribe
	TownExpand
	TownDelete

	IndCenter
	IndCount
	IndInfo
	IndOpen
	IndDelete
)

// CmdSpec is the static descriptor of one batch command.
type CmdSpec struct {
	ID     CmdID
	Name   string
	Params int // required extra parameters
	Caps   Caps
	Help   string
}

// MatchSpec is the static descriptor of one match keyword.
type MatchSpec struct {
	Kind MatchKind
	Name string
	Caps Caps
	Help string
}

// vehCommands lists every vehicle batch command, ordered by name.
var vehCommands = []CmdSpec{
	{VehCenter, "center", 0, forAll(AnyVehicle),
		"Center main view on vehicle's location"},
	{VehClone, "clone", 0, Caps{Kinds: AnyVehicle, Pre: PreInDepot},
		"Clone vehicle, if it is in depot. Parameter specifies number of created clones (default 1)"},
	{VehCloneShared, "clone_shared", 0, Caps{Kinds: AnyVehicle, Pre: PreInDepot},
		"Same as clone, but with shared orders"},
	{VehCount, "count", 0, forAll(AnyVehicle),
		"Count vehicles matching given criteria"},
	{VehDepot, "depot", 0, Caps{Kinds: AnyVehicle, Pre: PreNotCrashed},
		"Send to depot"},
	{VehIgnore, "ignore", 0, Caps{Kinds: ForTrain, Pre: PreNotCrashed},
		"Ignore signals"},
	{VehInfo, "info", 0, forAll(AnyVehicle),
		"Show vehicle info in console"},
	{VehInterval, "interval", 1, Caps{Kinds: AnyVehicle, Pre: PreNotCrashed},
		"Set servicing interval. Parameter specifies new interval in days/percent"},
	{VehLeave, "leave", 0, Caps{Kinds: AnyVehicle, Pre: PreNotCrashed},
		"Leave station by skipping to next order"},
	{VehOpen, "open", 0, forAll(AnyVehicle),
		"Open vehicle window"},
	{VehSell, "sell", 0, Caps{Kinds: AnyVehicle, Pre: PreStopped | PreInDepot},
		"Sell vehicle, if it is stopped in depot"},
	{VehService, "service", 0, Caps{Kinds: AnyVehicle, Pre: PreNotCrashed},
		"Send for servicing"},
	{VehSkip, "skip", 0, Caps{Kinds: AnyVehicle, Pre: PreNotCrashed},
		"Skip to next order. Optional parameter specifies how many orders to skip ('r' = skip to random order, default is 1)"},
	{VehStart, "start", 0, Caps{Kinds: AnyVehicle, Pre: PreNotCrashed},
		"Start vehicle"},
	{VehStop, "stop", 0, Caps{Kinds: AnyVehicle, Pre: PreNotCrashed},
		"Stop vehicle"},
	{VehTurn, "turn", 0, Caps{Kinds: ForTrain | ForRoad, Pre: PreNotCrashed},
		"Turn around"},
	{VehUnservice, "unservice", 0, Caps{Kinds: AnyVehicle, Pre: PreNotCrashed},
		"Cancel order to be sent for servicing"},
	{VehUndepot, "undepot", 0, Caps{Kinds: AnyVehicle, Pre: PreNotCrashed},
		"Cancel order to be sent to depot"},
	{VehWagonInfo, "winfo", 0, forAll(ForTrain),
		"Show info about train wagons in console"},
	{VehWagonSell, "wsell", 1, Caps{Kinds: ForTrain, Pre: PreStopped | PreInDepot},
		"Sell train wagons(s). If one parameter is given, single wagon will be sold. If two parameters are given, they will specify range of wagons to sell."},
}

// vehAliases maps alias names to primary vehicle command names.
var vehAliases = map[string]string{
	"centre":  "center",
	"show":    "open",
	"go":      "start",
	"reverse": "turn",
}

// townCommands lists every town batch command, ordered by name.
var townCommands = []CmdSpec{
	{TownCenter, "center", 0, forAll(ForTown),
		"Center main view on town location"},
	{TownCount, "count", 0, forAll(ForTown),
		"Count towns matching given criteria"},
	{TownInfo, "info", 0, forAll(ForTown),
		"Show town info in console"},
	{TownPrint, "print", 0, forAll(ForTown),
		"Print town name in console"},
	{TownOpen, "open", 0, forAll(ForTown),
		"Open town window"},
	{TownAuth, "auth", 0, forAll(ForTown),
		"Open town authority window"},
	{TownAdSmall, "ad_small", 0, forAll(ForTown),
		"Launch small advertising campaign in the town"},
	{TownAdMedium, "ad_medium", 0, forAll(ForTown),
		"Launch medium advertising campaign in the town"},
	{TownAdLarge, "ad_large", 0, forAll(ForTown),
		"Launch large advertising campaign in the town"},
	{TownRoad, "road", 0, forAll(ForTown),
		"Fund road reconstruction in town"},
	{TownStatue, "statue", 0, forAll(ForTown),
		"Build statue in town"},
	{TownFund, "fund", 0, forAll(ForTown),
		"Fund construction of new buildings"},
	{TownExclusive, "exclusive", 0, forAll(ForTown),
		"Buy exclusive rights in town"},
	{TownBribe, "bribe", 0, forAll(ForTown),
		"Bribe town authority"},
	{TownExpand, "expand", 0, Caps{Kinds: ForTown, EditorOnly: true},
		"Expand town (scenario editor only) Parameter specifies number of repetitions (default 1)"},
	{TownDelete, "delete", 0, Caps{Kinds: ForTown, EditorOnly: true},
		"Delete the town (scenario editor only)"},
}

// townAliases maps alias names to primary town command names.
var townAliases = map[string]string{
	"centre":         "center",
	"show":           "open",
	"small_ad":       "ad_small",
	"medium_ad":      "ad_medium",
	"large_ad":       "ad_large",
	"reconstruction": "road",
	"building":       "fund",
}

// indCommands lists every industry batch command, ordered by name.
var indCommands = []CmdSpec{
	{IndCenter, "center", 0, forAll(ForIndustry),
		"Center main view on industry location"},
	{IndCount, "count", 0, forAll(ForIndustry),
		"Count industries matching given criteria"},
	{IndInfo, "info", 0, forAll(ForIndustry),
		"Show industry info in console"},
	{IndOpen, "open", 0, forAll(ForIndustry),
		"Open industry window"},
	{IndDelete, "delete", 0, forAll(ForIndustry),
		"Delete the industry"},
}

// indAliases maps alias names to primary industry command names.
var indAliases = map[string]string{
	"centre": "center",
	"show":   "open",
}

// specialMatches lists the non-numeric match keywords. They are matched as
// whole bare tokens only.
var specialMatches = []MatchSpec{
	{MatchAll, "all", Caps{Kinds: AnyVehicle | ForTown | ForIndustry, UsePrintf: true},
		" for all %ss"},
	{MatchAll, "*", Caps{Kinds: AnyVehicle | ForTown | ForIndustry, UsePrintf: true},
		" for all %ss"},
	{MatchBroken, "broken", Caps{Kinds: AnyVehicle, UsePrintf: true},
		" for all broken down %ss"},
	{MatchCrashed, "crashed", Caps{Kinds: AnyVehicle, UsePrintf: true},
		" for all crashed %ss"},
	{MatchInDepot, "depot", Caps{Kinds: AnyVehicle, UsePrintf: true},
		" for all %ss in depot"},
	{MatchTownStatue, "statue", forAll(ForTown),
		" for all towns where you have a statue"},
	{MatchTownNoStatue, "no_statue", forAll(ForTown),
		" for all towns where you don't have a statue"},
}

// numericMatches lists the match keywords used with a comparison operator.
var numericMatches = []MatchSpec{
	// Vehicles
	{MatchAge, "age", forAll(AnyVehicle),
		"=[value] for matching age (in years)"},
	{MatchBreakdowns, "breakdowns", forAll(AnyVehicle),
		"=[value] for matching breakdowns since last service"},
	{MatchLength, "len", forAll(ForTrain),
		"=[value] for matching train length (in tiles)"},
	{MatchMaxSpeed, "maxspeed", forAll(AnyVehicle),
		"=[value] for matching maximum speed (in km/h)"},
	{MatchOrders, "orders", forAll(AnyVehicle),
		"=[value] for matching number of orders"},
	{MatchGroup, "group", forAll(AnyVehicle),
		"=[name] for matching group by name"},
	{MatchProfit, "profit", forAll(AnyVehicle),
		"=[value] for matching sum of this and last year's profit (in pounds)"},
	{MatchProfitThis, "profit_this", forAll(AnyVehicle),
		"=[value] for matching this year's profit (in pounds)"},
	{MatchProfitLast, "profit_last", forAll(AnyVehicle),
		"=[value] for matching last year's profit (in pounds)"},
	{MatchService, "service", forAll(AnyVehicle),
		"=[value] for matching service interval (in days/percent)"},
	{MatchSpeed, "speed", forAll(AnyVehicle),
		"=[value] for matching current speed (in km/h)"},
	{MatchWagons, "wagons", forAll(ForTrain),
		"=[value] for matching number of train wagons"},

	// Towns
	{MatchTownPopulation, "population", forAll(ForTown),
		"=[value] for matching town population"},
	{MatchTownHouses, "houses", forAll(ForTown),
		"=[value] for matching number of town houses"},
	{MatchTownRating, "rating", forAll(ForTown),
		"=[value] for matching your rating in town"},
	{MatchTownNoise, "currnoise", forAll(ForTown),
		"=[value] for matching currently used noise level"},
	{MatchTownNoiseRemain, "noise", forAll(ForTown),
		"=[value] for matching remaining (usable by you) noise level"},
	{MatchTownNoiseMax, "maxnoise", forAll(ForTown),
		"=[value] for matching maximal noise level"},
	{MatchTownFunding, "fund", forAll(ForTown),
		"=[value] for matching months remaining in building funding"},
	{MatchTownRoadworks, "roadworks", forAll(ForTown),
		"=[value] for matching months remaining in road reconstructions"},
	{MatchTownExclusiveCompany, "exclusive", forAll(ForTown),
		"=[value] for matching company having exclusive rights"},
	{MatchTownExclusiveMonths, "any_exclusive", forAll(ForTown),
		"=[value] for matching months of remaining exclusive rights for any company"},
	{MatchTownExclusiveMyMonths, "my_exclusive", forAll(ForTown),
		"=[value] for matching months of remaining exclusive rights for your company"},
	{MatchTownExclusiveOthersMonths, "other_exclusive", forAll(ForTown),
		"=[value] for matching months of remaining exclusive rights for any competitor company"},
	{MatchTownUnwantedMonths, "unwanted", forAll(ForTown),
		"=[value] for matching months you are unwanted in town due to bribe"},

	// Industries
	{MatchIndustryProduction, "production", forAll(ForIndustry),
		"=[value] for matching industry production last month"},
	{MatchIndustryProductionThis, "thisproduction", forAll(ForIndustry),
		"=[value] for matching industry production this month"},
	{MatchIndustryPercent, "percent", forAll(ForIndustry),
		"=[value] for percent transported last month"},
	{MatchIndustryPercentThis, "thispercent", forAll(ForIndustry),
		"=[value] for percent transported this month"},
}

// noMatchAliases is shared by the match keyword tables, which define no
// abbreviations of their own.
var noMatchAliases = map[string]string{}

// resolveCommand resolves an abbreviated command name against one kind's
// command table.
func resolveCommand(query string, specs []CmdSpec, aliases map[string]string) (CmdSpec, bool) {
	return resolveName(query, specs, func(s CmdSpec) string { return s.Name }, aliases)
}

// resolveMatchKey resolves a filter key against the numeric match keywords.
func resolveMatchKey(query string) (MatchSpec, bool) {
	return resolveName(query, numericMatches, func(s MatchSpec) string { return s.Name }, noMatchAliases)
}
