package smtlib

import (
	"sort"
)

// Op is an SMT-LIB function symbol reachable from a surface operator token.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpDistinct
	OpLt
	OpGt
	OpLe
	OpGe
	OpAnd
	OpOr
	OpNot
	OpForall
	OpExists
)

var tokenOps = map[string]Op{
	"+":  OpAdd,
	"-":  OpSub,
	"*":  OpMul,
	"/":  OpDiv,
	"%":  OpMod,
	"=":  OpEq,
	"==": OpEq,
	"!=": OpDistinct,
	"<":  OpLt,
	">":  OpGt,
	"<=": OpLe,
	">=": OpGe,
	"&":  OpAnd,
	"&&": OpAnd,
	"∧":  OpAnd,
	"|":  OpOr,
	"||": OpOr,
	"∨":  OpOr,
	"!":  OpNot,
	"~":  OpNot,
	"∀":  OpForall,
	"∃":  OpExists,
}

// ParseOp maps a surface token to its Op.
func ParseOp(token string) (Op, error) {
	op, ok := tokenOps[token]
	if !ok {
		return 0, &UnsupportedOperatorError{Token: token}
	}
	return op, nil
}

// Resolve maps a surface token to its SMT-LIB symbol.
func Resolve(token string) (string, error) {
	op, err := ParseOp(token)
	if err != nil {
		return "", err
	}
	return op.Symbol(), nil
}

func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "mod"
	case OpEq:
		return "="
	case OpDistinct:
		return "distinct"
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLe:
		return "<="
	case OpGe:
		return ">="
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpNot:
		return "not"
	case OpForall:
		return "forall"
	case OpExists:
		return "exists"
	default:
		return "<unknown op>"
	}
}

func (o Op) String() string {
	return o.Symbol()
}

// IsQuantifier reports whether o introduces bound variables.
func (o Op) IsQuantifier() bool {
	return o == OpForall || o == OpExists
}

func Ops() []Op {
	return []Op{
		OpAdd,
		OpSub,
		OpMul,
		OpDiv,
		OpMod,
		OpEq,
		OpDistinct,
		OpLt,
		OpGt,
		OpLe,
		OpGe,
		OpAnd,
		OpOr,
		OpNot,
		OpForall,
		OpExists,
	}
}

// Tokens returns every supported surface token, sorted.
func Tokens() []string {
	res := make([]string, 0, len(tokenOps))
	for tok := range tokenOps {
		res = append(res, tok)
	}
	sort.Strings(res)
	return res
}
