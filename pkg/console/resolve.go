package console

import (
	"strings"

	"github.com/haulage-game/haulage/pkg/world"
)

// hasPrefixFold reports whether prefix is a non-empty case-insensitive
// proper-or-equal prefix of s.
func hasPrefixFold(s, prefix string) bool {
	if prefix == "" || len(prefix) > len(s) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

// resolveName resolves an abbreviated query against a table of named specs
// plus an alias -> primary-name map. Resolution order:
//
//  1. case-insensitive exact match on any name, aliases included; an alias
//     hit returns its primary. Exactness ignores ambiguity entirely.
//  2. case-insensitive unique prefix match. Prefix hits that land on the
//     same primary (several aliases of one command) do not make the result
//     ambiguous; hits on different primaries do.
//
// Anything else is not found.
func resolveName[S any](query string, specs []S, name func(S) string, aliases map[string]string) (S, bool) {
	var zero S
	byName := make(map[string]S, len(specs))
	for _, s := range specs {
		byName[name(s)] = s
	}

	for _, s := range specs {
		if strings.EqualFold(query, name(s)) {
			return s, true
		}
	}
	for alias, primary := range aliases {
		if strings.EqualFold(query, alias) {
			if s, ok := byName[primary]; ok {
				return s, true
			}
			return zero, false
		}
	}

	found := ""
	ambiguous := false
	consider := func(n, primary string) {
		if !hasPrefixFold(n, query) {
			return
		}
		if found != "" && found != primary {
			ambiguous = true
			return
		}
		found = primary
	}
	for _, s := range specs {
		consider(name(s), name(s))
	}
	for alias, primary := range aliases {
		consider(alias, primary)
	}
	if found == "" || ambiguous {
		return zero, false
	}
	return byName[found], true
}

// ResolveGroupName resolves a free-form group name against the given groups.
// The tier order differs from resolveName and must stay that way: a
// case-sensitive exact match wins unconditionally and immediately; failing
// that a case-insensitive exact match wins if unique; failing that a
// case-insensitive prefix match wins if unique. "XYZ" therefore never
// ambiguously matches both "xyz" and "Xyz".
func ResolveGroupName(groups []*world.Group, name string) *world.Group {
	var nocase, prefix *world.Group
	uniqueNocase, uniquePrefix := true, true

	for _, g := range groups {
		if g.Name == name {
			return g
		}
		if strings.EqualFold(g.Name, name) {
			if nocase != nil {
				uniqueNocase = false
			}
			nocase = g
			continue
		}
		if hasPrefixFold(g.Name, name) {
			if prefix != nil {
				uniquePrefix = false
			}
			prefix = g
		}
	}

	if nocase != nil && uniqueNocase {
		return nocase
	}
	if prefix != nil && uniquePrefix {
		return prefix
	}
	return nil
}
