package walk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Zir0-93/tabster/debug"
	"github.com/Zir0-93/tabster/smtlib"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

var (
	ErrUnsupportedNode = errors.New("unsupported expression")
	ErrQuantifier      = errors.New("malformed quantifier")
)

// Builder receives the traversal of an expression tree.
type Builder interface {
	Start(token string) error
	StartPredicate(token, name string) error
	End() error
	Term(text string)
	ResolveSort(name string) (smtlib.Sort, error)
}

var quantifiers = map[string]string{
	"forall": "∀",
	"exists": "∃",
}

// aliases maps expr-lang operator spellings onto catalog tokens.
var aliases = map[string]string{
	"and": "&&",
	"or":  "||",
	"not": "!",
}

// Translate parses input and writes it as the assertion of a new
// description over vars.
func Translate(input string, vars []smtlib.Var, opts ...smtlib.Option) (*smtlib.Description, error) {
	tree, err := parser.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", input, err)
	}
	d, err := smtlib.New(vars, append([]smtlib.Option{smtlib.Source(input)}, opts...)...)
	if err != nil {
		return nil, err
	}
	if err := Walk(tree.Node, d); err != nil {
		return nil, err
	}
	if err := d.Check(); err != nil {
		return nil, err
	}
	return d, nil
}

// Walk visits node in pre-order, calling b for every operator and leaf.
func Walk(node ast.Node, b Builder) error {
	if node == nil {
		return fmt.Errorf("%w: empty expression", ErrUnsupportedNode)
	}
	if debug.Walk() {
		debug.Logf("walk %s\n", node.String())
	}
	switch n := node.(type) {
	case *ast.BinaryNode:
		return walkOp(b, n.Operator, n.Left, n.Right)
	case *ast.UnaryNode:
		if n.Operator == "+" {
			return Walk(n.Node, b)
		}
		return walkOp(b, n.Operator, n.Node)
	case *ast.CallNode:
		return walkCall(n, b)
	case *ast.IdentifierNode:
		if _, err := b.ResolveSort(n.Value); err != nil {
			return err
		}
		b.Term(n.Value)
		return nil
	case *ast.IntegerNode:
		if n.Value < 0 {
			return negated(b, strconv.Itoa(-n.Value))
		}
		b.Term(strconv.Itoa(n.Value))
		return nil
	case *ast.FloatNode:
		if n.Value < 0 {
			return negated(b, formatReal(-n.Value))
		}
		b.Term(formatReal(n.Value))
		return nil
	case *ast.BoolNode:
		b.Term(strconv.FormatBool(n.Value))
		return nil
	default:
		return fmt.Errorf("%w: %s (%T)", ErrUnsupportedNode, node.String(), node)
	}
}

func walkOp(b Builder, op string, operands ...ast.Node) error {
	if alias, ok := aliases[op]; ok {
		op = alias
	}
	if err := b.Start(op); err != nil {
		return err
	}
	for _, operand := range operands {
		if err := Walk(operand, b); err != nil {
			return err
		}
	}
	return b.End()
}

func walkCall(n *ast.CallNode, b Builder) error {
	callee, ok := n.Callee.(*ast.IdentifierNode)
	if !ok {
		return fmt.Errorf("%w: call %s", ErrUnsupportedNode, n.String())
	}
	tok, ok := quantifiers[callee.Value]
	if !ok {
		return fmt.Errorf("%w: call to %s", ErrUnsupportedNode, callee.Value)
	}
	if len(n.Arguments) < 2 {
		return fmt.Errorf("%w: %s needs bound variables and a body", ErrQuantifier, callee.Value)
	}
	bound := n.Arguments[:len(n.Arguments)-1]
	for _, arg := range bound {
		v, ok := arg.(*ast.IdentifierNode)
		if !ok {
			return fmt.Errorf("%w: %s cannot bind %s", ErrQuantifier, callee.Value, arg.String())
		}
		if err := b.StartPredicate(tok, v.Value); err != nil {
			return err
		}
	}
	if err := Walk(n.Arguments[len(n.Arguments)-1], b); err != nil {
		return err
	}
	for range bound {
		if err := b.End(); err != nil {
			return err
		}
	}
	return nil
}

// negated writes a negative literal; SMT-LIB numerals are unsigned.
func negated(b Builder, lit string) error {
	if err := b.Start("-"); err != nil {
		return err
	}
	b.Term(lit)
	return b.End()
}

// formatReal writes v as an SMT-LIB decimal.
func formatReal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
