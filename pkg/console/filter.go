package console

import (
	"errors"
	"strings"
)

// Builder failure kinds. All of them are reported to the output sink and
// leave the command line handled with no side effects.
var (
	ErrTooFewTokens = errors.New("need at least one filter and a command")
	ErrBadMatchKind = errors.New("invalid match type for this query")
)

// Criterion is one parsed filter predicate.
type Criterion struct {
	Kind    MatchKind
	Op      Op
	Literal string
}

// Chain is the ordered conjunction of criteria parsed from one command
// line. It is built fresh per invocation and discarded with it.
type Chain []Criterion

// isChainWord reports whether the token continues a filter chain.
func isChainWord(tok string) bool {
	return strings.EqualFold(tok, "and") || tok == "&"
}

// parseCriterion classifies one filter token for the given kind set.
// A bare token equal to an applicable special keyword becomes a keyword
// criterion with no comparand. Otherwise the token is split on its first
// comparison operator and the key resolved against the numeric match
// keywords: a key that resolves but does not apply to this kind set is an
// error; a key that does not resolve at all degrades to a generic match
// carrying the whole token.
func parseCriterion(token string, kinds KindSet) (Criterion, error) {
	for _, sp := range specialMatches {
		if sp.Caps.Kinds.Intersects(kinds) && strings.EqualFold(token, sp.Name) {
			return Criterion{Kind: sp.Kind, Op: OpNone}, nil
		}
	}

	key, op, value := splitFilterToken(token)
	if op != OpNone && key != "" {
		if sp, ok := resolveMatchKey(key); ok {
			if !sp.Caps.Kinds.Intersects(kinds) {
				return Criterion{}, ErrBadMatchKind
			}
			return Criterion{Kind: sp.Kind, Op: op, Literal: value}, nil
		}
	}
	return Criterion{Kind: MatchGeneric, Op: OpNone, Literal: token}, nil
}

// BuildChain consumes filter tokens from args, producing the criterion
// chain and the unconsumed remainder (the command name and its
// parameters). Tokens are chained while the token after a criterion is
// "and" or "&" (case-insensitive). Any failure aborts the whole parse.
func BuildChain(args []string, kinds KindSet) (Chain, []string, error) {
	// Need at least one filter token and the command after it.
	if len(args) < 2 {
		return nil, nil, ErrTooFewTokens
	}

	var chain Chain
	for len(args) > 0 {
		c, err := parseCriterion(args[0], kinds)
		if err != nil {
			return nil, nil, err
		}
		chain = append(chain, c)
		args = args[1:]
		if len(args) == 0 {
			break
		}
		if !isChainWord(args[0]) {
			break
		}
		args = args[1:]
	}
	return chain, args, nil
}
