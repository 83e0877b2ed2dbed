package console

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/haulage-game/haulage/pkg/events"
	"github.com/haulage-game/haulage/pkg/world"
)

// CommandHandler is the signature for console command implementations.
// Returning false means the arguments didn't form a valid invocation; the
// console then re-runs the handler with no arguments to show its usage.
type CommandHandler func(ctx *Context, args []string) bool

// Command represents a registered console command.
type Command struct {
	Name    string
	Handler CommandHandler
}

// Saver persists and restores world snapshots.
type Saver interface {
	Save(w *world.World, name string) error
	Load(w *world.World, name string) error
}

// HistoryEntry is one executed console line.
type HistoryEntry struct {
	When    time.Time
	Session string
	Line    string
}

// History records executed console lines and serves them back.
type History interface {
	Record(e HistoryEntry) error
	Recent(n int) ([]HistoryEntry, error)
}

// Console parses lines, expands aliases and dispatches commands. One
// Console is shared by all sessions; per-session state travels in Context.
type Console struct {
	World   *world.World
	Actions world.Submitter
	Bus     *events.Bus
	Saver   Saver
	Hist    History

	cmds map[string]*Command

	aliasMu sync.RWMutex
	aliases map[string]string
}

// Context carries the per-invocation state handed to command handlers.
type Context struct {
	Con     *Console
	World   *world.World
	Actions world.Submitter
	Out     Output
	Session string
}

// emit publishes an event if a bus is attached.
func (ctx *Context) emit(ev events.Event) {
	if ctx.Con != nil && ctx.Con.Bus != nil {
		ctx.Con.Bus.Emit(ev)
	}
}

// warnEditorOnly reports misuse of an editor command outside the editor.
// The command still runs; the dispatcher does not abort.
func warnEditorOnly(ctx *Context, cmd CmdSpec) {
	if cmd.Caps.EditorOnly && !ctx.World.EditorMode() {
		ctx.Out.Warning("This command is only available in scenario editor.")
	}
}

// New builds a console over the given world. The world doubles as the
// action submitter unless the caller overrides Actions afterwards.
func New(w *world.World, bus *events.Bus) *Console {
	c := &Console{
		World:   w,
		Actions: w,
		Bus:     bus,
		cmds:    make(map[string]*Command),
		aliases: make(map[string]string),
	}
	c.initCommands()
	c.initAliases()
	return c
}

func (c *Console) register(name string, handler CommandHandler) {
	c.cmds[strings.ToLower(name)] = &Command{Name: name, Handler: handler}
}

// initCommands registers all console commands, entity selectors included.
func (c *Console) initCommands() {
	// Entity selectors
	c.register("train", func(ctx *Context, args []string) bool {
		return runVehicleCommand(ctx, args, ForTrain, "train")
	})
	c.register("road", func(ctx *Context, args []string) bool {
		return runVehicleCommand(ctx, args, ForRoad, "road")
	})
	c.register("ship", func(ctx *Context, args []string) bool {
		return runVehicleCommand(ctx, args, ForShip, "ship")
	})
	c.register("aircraft", func(ctx *Context, args []string) bool {
		return runVehicleCommand(ctx, args, ForAircraft, "aircraft")
	})
	c.register("vehicle", func(ctx *Context, args []string) bool {
		return runVehicleCommand(ctx, args, AnyVehicle, "vehicle")
	})
	c.register("town", runTownCommand)
	c.register("industry", runIndustryCommand)

	// General
	c.register("echo", cmdEcho)
	c.register("help", cmdHelp)
	c.register("list_cmds", cmdListCmds)
	c.register("alias", cmdAlias)
	c.register("getdate", cmdGetDate)
	c.register("pause", cmdPause)
	c.register("unpause", cmdUnpause)
	c.register("save", cmdSave)
	c.register("load", cmdLoad)
	c.register("dump_command_log", cmdDumpCommandLog)
}

// initAliases installs the built-in aliases. More can be loaded from an
// alias file or defined at runtime with the alias command.
func (c *Console) initAliases() {
	c.aliases["plane"] = "aircraft %+"
	c.aliases["rv"] = "road %+"
	c.aliases["quit_game"] = "echo use the exit command to leave"
}

// DefineAlias installs or replaces a console alias.
func (c *Console) DefineAlias(name, expansion string) {
	c.aliasMu.Lock()
	c.aliases[strings.ToLower(name)] = expansion
	c.aliasMu.Unlock()
}

// Alias looks up a console alias.
func (c *Console) Alias(name string) (string, bool) {
	c.aliasMu.RLock()
	defer c.aliasMu.RUnlock()
	exp, ok := c.aliases[strings.ToLower(name)]
	return exp, ok
}

// maxAliasDepth bounds alias indirection so self-referential aliases
// cannot loop forever.
const maxAliasDepth = 10

// Run executes one console line for the given session.
func (c *Console) Run(session string, out Output, line string) {
	if c.Hist != nil {
		if err := c.Hist.Record(HistoryEntry{When: time.Now(), Session: session, Line: line}); err != nil {
			log.Printf("console: history record failed: %v", err)
		}
	}
	c.run(session, out, line, 0)
}

func (c *Console) run(session string, out Output, line string, depth int) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	tokens, err := splitLine(line)
	if err != nil {
		out.Error("%v", err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	name := strings.ToLower(tokens[0])
	args := tokens[1:]

	if exp, ok := c.Alias(name); ok {
		if depth >= maxAliasDepth {
			out.Error("Too many alias expansions.")
			return
		}
		for _, sub := range expandAlias(exp, args) {
			c.run(session, out, sub, depth+1)
		}
		return
	}

	cmd, ok := c.cmds[name]
	if !ok {
		if sug := c.suggest(name); sug != "" {
			out.Error("Unknown command '%s'. Did you mean '%s'?", name, sug)
		} else {
			out.Error("Unknown command '%s'.", name)
		}
		return
	}

	ctx := &Context{Con: c, World: c.World, Actions: c.Actions, Out: out, Session: session}
	if !cmd.Handler(ctx, args) {
		// Invalid invocation: show the command's own usage.
		cmd.Handler(ctx, nil)
	}
}

// suggest returns the closest registered command name within edit
// distance 3, or "".
func (c *Console) suggest(name string) string {
	best, bestDist := "", 4
	for cand := range c.cmds {
		if d := levenshtein.ComputeDistance(name, cand); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

// splitLine tokenizes a console line. Double quotes group words into one
// token and are stripped; there is no escape character.
func splitLine(line string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inQuote := false
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '"':
			if inQuote {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
			inQuote = !inQuote
		case !inQuote && (r == ' ' || r == '\t'):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unbalanced quotes in %q", line)
	}
	flush()
	return tokens, nil
}

// expandAlias substitutes parameters into an alias expansion and splits it
// into the lines to run. %+ inserts all arguments, %A through %Z insert
// single arguments, ; separates commands.
func expandAlias(exp string, args []string) []string {
	var lines []string
	var cur strings.Builder
	for i := 0; i < len(exp); i++ {
		ch := exp[i]
		switch {
		case ch == ';':
			lines = append(lines, cur.String())
			cur.Reset()
			for i+1 < len(exp) && (exp[i+1] == ' ' || exp[i+1] == '\t') {
				i++
			}
		case ch == '%' && i+1 < len(exp):
			i++
			p := exp[i]
			switch {
			case p == '+':
				cur.WriteString(strings.Join(args, " "))
			case p >= 'A' && p <= 'Z':
				if n := int(p - 'A'); n < len(args) {
					cur.WriteString(args[n])
				}
			default:
				cur.WriteByte('%')
				cur.WriteByte(p)
			}
		default:
			cur.WriteByte(ch)
		}
	}
	lines = append(lines, cur.String())
	return lines
}

func cmdEcho(ctx *Context, args []string) bool {
	ctx.Out.Print("%s", strings.Join(args, " "))
	return true
}

func cmdHelp(ctx *Context, args []string) bool {
	if len(args) == 0 {
		ctx.Out.Help(" ---- console help ---- ")
		ctx.Out.Help(" - commands: [command to list all commands: list_cmds]")
		ctx.Out.Help(" call commands with '<command> <arg2> <arg3>...'")
		ctx.Out.Help(" - to assign strings, e.g. on alias, use \" \"")
		ctx.Out.Help(" - use 'help <command>' to get help on a specific command")
		return true
	}
	name := strings.ToLower(args[0])
	if cmd, ok := ctx.Con.cmds[name]; ok {
		// Selector commands print their own table.
		ctx2 := *ctx
		cmd.Handler(&ctx2, nil)
		return true
	}
	if exp, ok := ctx.Con.Alias(name); ok {
		ctx.Out.Print(" - alias is '%s'", exp)
		return true
	}
	ctx.Out.Error("Unknown command '%s'.", name)
	return true
}

func cmdListCmds(ctx *Context, args []string) bool {
	prefix := ""
	if len(args) > 0 {
		prefix = strings.ToLower(args[0])
	}
	names := make([]string, 0, len(ctx.Con.cmds))
	for n := range ctx.Con.cmds {
		if strings.HasPrefix(n, prefix) {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	for _, n := range names {
		ctx.Out.Print("%s", n)
	}
	return true
}

func cmdAlias(ctx *Context, args []string) bool {
	if len(args) == 0 {
		ctx.Out.Help("Add a new alias, or redefine the behaviour of an existing alias. Usage: 'alias <name> <command>'")
		return true
	}
	if len(args) < 2 {
		return false
	}
	ctx.Con.DefineAlias(args[0], strings.Join(args[1:], " "))
	return true
}

func cmdGetDate(ctx *Context, args []string) bool {
	ctx.Out.Print("Date: %s", ctx.World.Date())
	return true
}

func cmdPause(ctx *Context, args []string) bool {
	if ctx.World.Paused() {
		ctx.Out.Print("Game is already paused.")
		return true
	}
	ctx.World.SetPaused(true)
	ctx.Out.Print("Game paused.")
	ctx.emit(events.WorldChange(ctx.Session, "paused"))
	return true
}

func cmdUnpause(ctx *Context, args []string) bool {
	if !ctx.World.Paused() {
		ctx.Out.Print("Game is not paused.")
		return true
	}
	ctx.World.SetPaused(false)
	ctx.Out.Print("Game unpaused.")
	ctx.emit(events.WorldChange(ctx.Session, "unpaused"))
	return true
}

func cmdSave(ctx *Context, args []string) bool {
	if len(args) < 1 {
		ctx.Out.Help("Save the current game. Usage: 'save <name>'")
		return true
	}
	if ctx.Con.Saver == nil {
		ctx.Out.Error("No save backend configured.")
		return true
	}
	if err := ctx.Con.Saver.Save(ctx.World, args[0]); err != nil {
		ctx.Out.Error("Saving failed: %v", err)
		return true
	}
	ctx.Out.Print("Saved game as '%s'.", args[0])
	return true
}

func cmdLoad(ctx *Context, args []string) bool {
	if len(args) < 1 {
		ctx.Out.Help("Load a saved game. Usage: 'load <name>'")
		return true
	}
	if ctx.Con.Saver == nil {
		ctx.Out.Error("No save backend configured.")
		return true
	}
	if err := ctx.Con.Saver.Load(ctx.World, args[0]); err != nil {
		ctx.Out.Error("Loading failed: %v", err)
		return true
	}
	ctx.Out.Print("Loaded game '%s'.", args[0])
	ctx.emit(events.WorldChange(ctx.Session, "loaded "+args[0]))
	return true
}

func cmdDumpCommandLog(ctx *Context, args []string) bool {
	if ctx.Con.Hist == nil {
		ctx.Out.Error("No command log configured.")
		return true
	}
	n := 20
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			ctx.Out.Error("Invalid entry count '%s'.", args[0])
			return true
		}
		n = v
	}
	entries, err := ctx.Con.Hist.Recent(n)
	if err != nil {
		ctx.Out.Error("Reading command log failed: %v", err)
		return true
	}
	for _, e := range entries {
		ctx.Out.Print("%s  [%s] %s", e.When.Format("2006-01-02 15:04:05"), e.Session, e.Line)
	}
	return true
}
