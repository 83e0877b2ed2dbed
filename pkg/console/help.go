package console

import (
	"fmt"
	"sort"
	"strings"
)

// aliasesOf returns the alias names of one primary command, sorted.
func aliasesOf(primary string, aliases map[string]string) []string {
	var out []string
	for alias, target := range aliases {
		if target == primary {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// matchHelp prints help lines for one match keyword table, restricted to
// the given kind set and with the %s entity-noun placeholder substituted.
func matchHelp(out Output, specs []MatchSpec, noun string, kinds KindSet) {
	for _, sp := range specs {
		if !sp.Caps.Kinds.Intersects(kinds) {
			continue
		}
		help := sp.Help
		if sp.Caps.UsePrintf {
			help = fmt.Sprintf(sp.Help, noun)
		}
		out.Help("  %s%s", sp.Name, help)
	}
}

// commandsHelp prints the generated usage text for one entity kind: the
// command table with alias groupings, then both match keyword tables.
func commandsHelp(out Output, noun, selector string, specs []CmdSpec, aliases map[string]string, kinds KindSet) {
	out.Help("Invoke command on specified %s(s). Usage: '%s <identifier> <command> [<optional command parameters...>]'", noun, selector)
	out.Help("Command can be:")

	for _, sp := range specs {
		if !sp.Caps.Kinds.Intersects(kinds) {
			continue
		}
		suffix := ""
		if al := aliasesOf(sp.Name, aliases); len(al) > 0 {
			suffix = fmt.Sprintf(" (Aliases: %s)", strings.Join(al, ", "))
		}
		out.Help("  %-15s %s%s", sp.Name, sp.Help, suffix)
	}

	out.Help("Identifier can be:")
	matchHelp(out, specialMatches, noun, kinds)

	out.Help("Operators < > <= >= and <> can be also used instead of = for following matches:")
	matchHelp(out, numericMatches, noun, kinds)

	out.Help("You can specify multiple match conditions before the command.")
	out.Help("If you use more than one match condition, you have to separate them by 'and' or '&' parameter. Number of match conditions is not limited.")
}
