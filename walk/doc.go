// Package walk drives an smtlib description from infix expression text.
//
// Expressions are parsed with the expr-lang parser and visited in pre-order:
// every operator node opens a sub-expression before its operands are written
// and closes it afterwards. Quantifiers are written as calls,
//
//	forall(x, exists(y, x + y == 0))
//	forall(x, y, x * y >= 0)
//
// and bind variables declared in the description's catalog.
//
// # Related Packages
//
//   - github.com/Zir0-93/tabster/smtlib - the description builder
package walk
