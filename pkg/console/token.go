package console

import "strings"

// Op is the comparison operator of a filter criterion. OpNone marks pure
// keyword criteria with no comparand ("crashed", "all").
type Op int

const (
	OpNone Op = iota
	OpEq
	OpNe
	OpLt
	OpLe
	OpGe
	OpGt
)

// String returns the operator's console spelling.
func (o Op) String() string {
	switch o {
	case OpEq:
		return "="
	case OpNe:
		return "<>"
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGe:
		return ">="
	case OpGt:
		return ">"
	}
	return ""
}

// splitFilterToken splits one filter token of the form key<op>value on the
// first occurrence of < > or =. A token with no operator is a bare keyword:
// the whole token is the key, the operator is OpNone and the value empty.
func splitFilterToken(token string) (key string, op Op, value string) {
	i := strings.IndexAny(token, "<>=")
	if i < 0 {
		return token, OpNone, ""
	}
	key = token[:i]
	rest := token[i+1:]
	switch token[i] {
	case '=':
		return key, OpEq, rest
	case '<':
		if strings.HasPrefix(rest, "=") {
			return key, OpLe, rest[1:]
		}
		if strings.HasPrefix(rest, ">") {
			return key, OpNe, rest[1:]
		}
		return key, OpLt, rest
	default: // '>'
		if strings.HasPrefix(rest, "=") {
			return key, OpGe, rest[1:]
		}
		return key, OpGt, rest
	}
}
