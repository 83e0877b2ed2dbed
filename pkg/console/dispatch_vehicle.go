package console

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/haulage-game/haulage/pkg/events"
	"github.com/haulage-game/haulage/pkg/world"
)

// reportChainError translates a chain build failure into console output.
// The line counts as handled either way; nothing was dispatched.
func reportChainError(out Output, err error) {
	if err == ErrBadMatchKind {
		out.Error("You have specified invalid match type for this query.")
		return
	}
	out.Error("Invalid match condition.")
}

// vehicleNoun maps a query kind set to the entity noun used in output.
func vehicleNoun(kinds KindSet) string {
	switch kinds {
	case ForTrain:
		return "train"
	case ForRoad:
		return "road vehicle"
	case ForShip:
		return "ship"
	case ForAircraft:
		return "aircraft"
	}
	return "vehicle"
}

// ownedGroups returns the local company's vehicle groups.
func ownedGroups(w *world.World) []*world.Group {
	local := w.LocalCompany()
	var out []*world.Group
	for _, g := range w.Groups() {
		if g.Owner == local {
			out = append(out, g)
		}
	}
	return out
}

// rewriteGroupCriteria converts generic criteria whose literal resolves to
// an owned group name. The first hit replaces the candidate set with that
// group and the criterion becomes match-all; later hits degrade to
// group-membership predicates on the already restricted set. Two named
// groups are never intersected into one result.
func rewriteGroupCriteria(w *world.World, chain Chain) world.GroupID {
	restrict := world.InvalidGroup
	groups := ownedGroups(w)
	for i := range chain {
		if chain[i].Kind != MatchGeneric {
			continue
		}
		g := ResolveGroupName(groups, chain[i].Literal)
		if g == nil {
			continue
		}
		if restrict == world.InvalidGroup {
			restrict = g.ID
			chain[i] = Criterion{Kind: MatchAll}
		} else {
			chain[i].Kind = MatchGroupMember
		}
	}
	return restrict
}

// runVehicleCommand is the dispatcher shared by the train, road, ship,
// aircraft and vehicle selectors.
func runVehicleCommand(ctx *Context, args []string, kinds KindSet, selector string) bool {
	noun := vehicleNoun(kinds)

	if len(args) == 0 {
		commandsHelp(ctx.Out, noun, selector, vehCommands, vehAliases, kinds)
		ctx.Out.Help("You can also use:")
		ctx.Out.Help(" name of group for all %ss from specified group. Can accept unique prefix of group name", noun)
		ctx.Out.Help(" %s number for specific %s", noun, noun)
		return true
	}

	if !ctx.World.HasLocalCompany() {
		ctx.Out.Error("You have to own a company to make use of this command.")
		return true
	}

	if len(args) < 2 {
		return false
	}

	chain, rest, err := BuildChain(args, kinds)
	if err != nil {
		reportChainError(ctx.Out, err)
		return true
	}
	if len(rest) == 0 {
		// Filter chain without a trailing command.
		return false
	}

	cmd, ok := resolveCommand(rest[0], vehCommands, vehAliases)
	if !ok {
		ctx.Out.Error("You have specified invalid command.")
		return true
	}
	params := rest[1:]
	if len(params) < cmd.Params {
		ctx.Out.Error("This command requires additional parameter(s).")
		return true
	}
	if !cmd.Caps.Kinds.Intersects(kinds) {
		ctx.Out.Error("The command you have specified cannot be applied to %s.", noun)
		return true
	}
	warnEditorOnly(ctx, cmd)

	restrict := rewriteGroupCriteria(ctx.World, chain)

	local := ctx.World.LocalCompany()
	matched, affected := 0, 0
	for _, id := range ctx.World.VehicleIDs() {
		v, ok := ctx.World.Vehicle(id)
		if !ok {
			continue
		}
		if v.Owner != local || !kinds.Has(VehicleKind(v.Type)) {
			continue
		}
		if restrict != world.InvalidGroup && v.Group != restrict {
			continue
		}
		if !chain.MatchesVehicle(v, ctx.World) {
			continue
		}
		matched++

		// Command-specific preconditions: failures are silent skips,
		// visible only as the matched/affected gap.
		if cmd.Caps.Pre.Has(PreNotCrashed) && v.Crashed {
			continue
		}
		if cmd.Caps.Pre.Has(PreStopped) && !v.Stopped {
			continue
		}
		if cmd.Caps.Pre.Has(PreInDepot) && !v.InDepot {
			continue
		}
		if !cmd.Caps.Kinds.Has(VehicleKind(v.Type)) {
			continue
		}

		affected += doVehicleCommand(ctx, v, cmd.ID, params)
	}

	ctx.Out.Print("Number of %ss matched: %d, affected: %d", noun, matched, affected)
	ctx.emit(events.CommandSummary(ctx.Session,
		selector+" "+strings.Join(args, " "), noun, matched, affected))
	return true
}

// clampServiceInterval bounds a requested service interval.
func clampServiceInterval(days int) int {
	if days < 5 {
		return 5
	}
	if days > 800 {
		return 800
	}
	return days
}

// doVehicleCommand performs one command on one vehicle and reports whether
// the action was accepted.
func doVehicleCommand(ctx *Context, v *world.Vehicle, id CmdID, params []string) int {
	switch id {
	case VehCount:
		return 1

	case VehOpen:
		ctx.emit(events.WindowOpen(ctx.Session, fmt.Sprintf("vehicle:%d", v.ID)))
		return 1

	case VehCenter:
		ctx.emit(events.ViewportJump(ctx.Session, v.X, v.Y))
		return 1

	case VehInterval:
		newInterval, err := strconv.Atoi(params[0])
		if err != nil {
			return 0
		}
		newInterval = clampServiceInterval(newInterval)
		if newInterval == v.ServiceInterval {
			return 0 // No change
		}
		if !ctx.Actions.Submit(world.VehicleRef(v.ID), world.ActChangeServiceInterval, newInterval) {
			return 0
		}
		return 1

	case VehWagonInfo:
		ctx.Out.Print("Train #%4d wagons", v.UnitNumber)
		for i, wg := range v.Wagons {
			engine := ""
			if wg.Engine {
				engine = " (engine)"
			}
			ctx.Out.Print("%2d,  Cargo capacity: %d (%s),  Max speed: %d km/h%s",
				i+1, wg.CargoCap, wg.Cargo, wg.MaxSpeed, engine)
		}
		return 1

	case VehInfo:
		status := ""
		if v.Stopped {
			status += " (STOPPED)"
		}
		if v.Crashed {
			status += " (CRASHED)"
		}
		if v.BreakdownCtr != 0 {
			status += " (BROKEN)"
		}
		if v.InDepot {
			status += " (IN DEPOT)"
		}
		ctx.Out.Print("#%4d, Location: [%d, %d, %d]%s", v.UnitNumber, v.X, v.Y, v.Z, status)
		ctx.Out.Print("      Age: %d/%d years", v.AgeDays/365, v.MaxAgeDays/365)
		if v.Type == world.VehTrain {
			ctx.Out.Print("      Speed: %d/%d km/h, Orders: %d", v.CurSpeed, v.MaxSpeed, v.NumOrders())
			ctx.Out.Print("      Length: %d tiles, Power: %d hp,  Weight: %d t", v.LengthTiles, v.Power, v.WeightTons)
		} else {
			factor := 2
			if v.Type == world.VehAircraft {
				factor = 1
			}
			ctx.Out.Print("      Speed: %d/%d km/h, Orders: %d", v.CurSpeed/factor, v.MaxSpeed/factor, v.NumOrders())
		}
		ctx.Out.Print("      Service interval: %d days/%%, Breakdowns: %d (reliability %d%%)",
			v.ServiceInterval, v.BreakdownsSinceService, v.Reliability)
		ctx.Out.Print("      Profit this/last year: %s/%s",
			humanize.Comma(int64(v.ProfitThisYear)), humanize.Comma(int64(v.ProfitLastYear)))
		return 1

	case VehSkip, VehLeave:
		numOrders := 1
		if id == VehLeave {
			cur := v.CurrentOrder()
			if cur == nil || cur.Type != world.OrderLoading {
				return 0
			}
		} else if len(params) > 0 {
			if strings.HasPrefix(strings.ToLower(params[0]), "r") {
				numOrders = rand.IntN(1 << 20) // modulo below corrects this
			} else if n, err := strconv.Atoi(params[0]); err == nil {
				numOrders = n
			}
		}
		if numOrders == 0 || v.NumOrders() == 0 {
			return 0
		}
		newOrder := (v.CurOrder + numOrders) % v.NumOrders()
		if newOrder < 0 {
			// Skipped before the first order: go to the last one.
			newOrder = v.NumOrders() - 1
		}
		if !ctx.Actions.Submit(world.VehicleRef(v.ID), world.ActSkipToOrder, newOrder) {
			return 0
		}
		return 1

	case VehIgnore:
		if !ctx.Actions.Submit(world.VehicleRef(v.ID), world.ActForceProceed) {
			return 0
		}
		return 1

	case VehTurn:
		if !ctx.Actions.Submit(world.VehicleRef(v.ID), world.ActReverseVehicle) {
			return 0
		}
		return 1

	case VehStop, VehStart:
		if id == VehStop && v.Stopped {
			return 0
		}
		if id == VehStart && !v.Stopped {
			return 0
		}
		if !ctx.Actions.Submit(world.VehicleRef(v.ID), world.ActStartStopVehicle) {
			return 0
		}
		return 1

	case VehDepot, VehService, VehUndepot, VehUnservice:
		if v.Stopped && v.InDepot {
			return 0 // Already in depot
		}
		if cur := v.CurrentOrder(); cur != nil && cur.Type == world.OrderGotoDepot {
			// Already heading to a depot, either to halt or to service.
			if cur.DepotHalt {
				if id == VehDepot || id == VehUnservice {
					return 0
				}
			} else {
				if id == VehUndepot || id == VehService {
					return 0
				}
			}
		} else if id == VehUndepot || id == VehUnservice {
			// Not heading to a depot at all. Nothing to cancel.
			return 0
		}
		service := 0
		if id == VehService || id == VehUnservice {
			service = 1
		}
		if !ctx.Actions.Submit(world.VehicleRef(v.ID), world.ActSendToDepot, service) {
			return 0
		}
		return 1

	case VehClone, VehCloneShared:
		numClones := 1
		if len(params) > 0 {
			if n, err := strconv.Atoi(params[0]); err == nil && n > 0 {
				numClones = n
			}
		}
		shared := 0
		if id == VehCloneShared {
			shared = 1
		}
		accepted := 0
		for i := 0; i < numClones; i++ {
			if ctx.Actions.Submit(world.VehicleRef(v.ID), world.ActCloneVehicle, shared) {
				accepted = 1
			}
		}
		return accepted

	case VehWagonSell:
		min, err := strconv.Atoi(params[0])
		if err != nil || min < 0 {
			return 0
		}
		max := min
		if len(params) >= 2 {
			if max, err = strconv.Atoi(params[1]); err != nil {
				return 0
			}
			if max < min {
				return 0
			}
		}
		// Collect consist indices to sell, skipping articulated parts;
		// delete back to front so earlier removals don't shift the rest.
		var toSell []int
		pos := 0
		for idx, wg := range v.Wagons {
			if wg.Articulated {
				continue
			}
			if pos >= min && pos <= max {
				toSell = append(toSell, idx)
			}
			pos++
			if pos > max || len(toSell) >= 100 {
				break
			}
		}
		for i := len(toSell) - 1; i >= 0; i-- {
			ctx.Actions.Submit(world.VehicleRef(v.ID), world.ActSellWagon, toSell[i])
		}
		return 1

	case VehSell:
		if !ctx.Actions.Submit(world.VehicleRef(v.ID), world.ActSellVehicle) {
			return 0
		}
		return 1
	}
	return 0
}
