package console

import (
	"fmt"
	"strings"

	"github.com/haulage-game/haulage/pkg/events"
	"github.com/haulage-game/haulage/pkg/world"
)

// runIndustryCommand is the dispatcher behind the industry selector.
func runIndustryCommand(ctx *Context, args []string) bool {
	if len(args) == 0 {
		commandsHelp(ctx.Out, "industry", "industry", indCommands, indAliases, ForIndustry)
		ctx.Out.Help("You can also use:")
		ctx.Out.Help(" name of town for all industries of specified town. Can accept unique prefix of town name")
		ctx.Out.Help(" industry number for specific industry")
		return true
	}

	if len(args) < 2 {
		return false
	}

	chain, rest, err := BuildChain(args, ForIndustry)
	if err != nil {
		reportChainError(ctx.Out, err)
		return true
	}
	if len(rest) == 0 {
		return false
	}

	cmd, ok := resolveCommand(rest[0], indCommands, indAliases)
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
	for _, id := range ctx.World.IndustryIDs() {
		ind, ok := ctx.World.Industry(id)
		if !ok {
			continue
		}
		if !chain.MatchesIndustry(ind, ctx.World) {
			continue
		}
		matched++
		affected += doIndustryCommand(ctx, ind, cmd.ID, params)
	}

	ctx.Out.Print("Number of industries matched: %d, affected: %d", matched, affected)
	ctx.emit(events.CommandSummary(ctx.Session,
		"industry "+strings.Join(args, " "), "industry", matched, affected))
	return true
}

// doIndustryCommand performs one command on one industry and reports whether
// the action was accepted.
func doIndustryCommand(ctx *Context, ind *world.Industry, id CmdID, params []string) int {
	switch id {
	case IndCount:
		return 1

	case IndInfo:
		town := "?"
		if t, ok := ctx.World.Town(ind.Town); ok {
			town = t.Name
		}
		ctx.Out.Print("#%4d near %s, Location: [%d, %d], Size: %dx%d",
			ind.ID, town, ind.X, ind.Y, ind.Width, ind.Height)
		for _, p := range ind.Produced {
			if p.Cargo == "" {
				continue
			}
			ctx.Out.Print("      %s: %d produced last month (%d%% transported), %d this month (%d%%)",
				p.Cargo, p.LastProduced, transportedPercent(p.LastTransported, p.LastProduced),
				p.ThisProduced, transportedPercent(p.ThisTransported, p.ThisProduced))
		}
		for _, a := range ind.Accepts {
			ctx.Out.Print("      accepts %s (%d waiting)", a.Cargo, a.Waiting)
		}
		return 1

	case IndOpen:
		ctx.emit(events.WindowOpen(ctx.Session, fmt.Sprintf("industry:%d", ind.ID)))
		return 1

	case IndCenter:
		ctx.emit(events.ViewportJump(ctx.Session, ind.X, ind.Y))
		return 1

	case IndDelete:
		if !ctx.Actions.Submit(world.IndustryRef(ind.ID), world.ActDeleteIndustry) {
			return 0
		}
		return 1
	}
	return 0
}

func transportedPercent(transported, produced int) int {
	if produced == 0 {
		return 0
	}
	return transported * 100 / produced
}
