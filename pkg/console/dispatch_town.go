package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/haulage-game/haulage/pkg/events"
	"github.com/haulage-game/haulage/pkg/world"
)

// townActionOf maps the authority commands to world action numbers.
var townActionOf = map[CmdID]int{
	TownAdSmall:   world.TownActAdSmall,
	TownAdMedium:  world.TownActAdMedium,
	TownAdLarge:   world.TownActAdLarge,
	TownRoad:      world.TownActRoad,
	TownStatue:    world.TownActStatue,
	TownFund:      world.TownActFund,
	TownExclusive: world.TownActExclusive,
	TownBribe:     world.TownActBribe,
}

// runTownCommand is the dispatcher behind the town selector.
func runTownCommand(ctx *Context, args []string) bool {
	if len(args) == 0 {
		commandsHelp(ctx.Out, "town", "town", townCommands, townAliases, ForTown)
		ctx.Out.Help("You can also use:")
		ctx.Out.Help(" name of town for specific town. Can accept unique prefix of town name")
		ctx.Out.Help(" town number for specific town")
		return true
	}

	if len(args) < 2 {
		return false
	}

	chain, rest, err := BuildChain(args, ForTown)
	if err != nil {
		reportChainError(ctx.Out, err)
		return true
	}
	if len(rest) == 0 {
		return false
	}

	cmd, ok := resolveCommand(rest[0], townCommands, townAliases)
	if !ok {
		ctx.Out.Error("You have specified invalid command.")
		return true
	}
	params := rest[1:]
	if len(params) < cmd.Params {
		ctx.Out.Error("This command requires additional parameter(s).")
		return true
	}
	warnEditorOnly(ctx, cmd)

	matched, affected := 0, 0
	for _, id := range ctx.World.TownIDs() {
		t, ok := ctx.World.Town(id)
		if !ok {
			continue
		}
		if !chain.MatchesTown(t, ctx.World) {
			continue
		}
		matched++
		affected += doTownCommand(ctx, t, cmd.ID, params)
	}

	ctx.Out.Print("Number of towns matched: %d, affected: %d", matched, affected)
	ctx.emit(events.CommandSummary(ctx.Session,
		"town "+strings.Join(args, " "), "town", matched, affected))
	return true
}

// doTownCommand performs one command on one town and reports whether the
// action was accepted.
func doTownCommand(ctx *Context, t *world.Town, id CmdID, params []string) int {
	switch id {
	case TownCount:
		return 1

	case TownPrint:
		ctx.Out.Print("%-20s  (Population: %s)", t.Name, humanize.Comma(int64(t.Population)))
		return 1

	case TownInfo:
		larger := ""
		if t.LargerTown {
			larger = " (city)"
		}
		ctx.Out.Print("%s%s, Location: [%d, %d]", t.Name, larger, t.X, t.Y)
		ctx.Out.Print("      Population: %s, Houses: %d, Layout: %s",
			humanize.Comma(int64(t.Population)), t.Houses, t.Layout)
		if ctx.World.HasLocalCompany() {
			local := ctx.World.LocalCompany()
			ctx.Out.Print("      Your rating: %d, Statue: %t",
				t.Rating(local), t.HasStatue(local))
		}
		ctx.Out.Print("      Noise: %d/%d", t.NoiseReached, t.MaxNoise)
		if t.FundBuildingsMonths > 0 {
			ctx.Out.Print("      Building funding: %d more month(s)", t.FundBuildingsMonths)
		}
		if t.RoadBuildMonths > 0 {
			ctx.Out.Print("      Road reconstruction: %d more month(s)", t.RoadBuildMonths)
		}
		if t.Exclusivity != world.InvalidCompany {
			ctx.Out.Print("      Exclusive rights: company %d for %d more month(s)",
				t.Exclusivity, t.ExclusiveCounter)
		}
		return 1

	case TownOpen:
		ctx.emit(events.WindowOpen(ctx.Session, fmt.Sprintf("town:%d", t.ID)))
		return 1

	case TownAuth:
		ctx.emit(events.WindowOpen(ctx.Session, fmt.Sprintf("townauth:%d", t.ID)))
		return 1

	case TownCenter:
		ctx.emit(events.ViewportJump(ctx.Session, t.X, t.Y))
		return 1

	case TownAdSmall, TownAdMedium, TownAdLarge, TownRoad, TownStatue,
		TownFund, TownExclusive, TownBribe:
		if !ctx.Actions.Submit(world.TownRef(t.ID), world.ActTownAction, townActionOf[id]) {
			return 0
		}
		return 1

	case TownExpand:
		reps := 1
		if len(params) > 0 {
			if n, err := strconv.Atoi(params[0]); err == nil && n > 0 {
				reps = n
			}
		}
		accepted := 0
		for i := 0; i < reps; i++ {
			if ctx.Actions.Submit(world.TownRef(t.ID), world.ActGrowTown) {
				accepted = 1
			}
		}
		return accepted

	case TownDelete:
		if !ctx.Actions.Submit(world.TownRef(t.ID), world.ActDeleteTown) {
			return 0
		}
		return 1
	}
	return 0
}
