// Package smtlib builds SMT-LIB v2.5 descriptions of tabular expressions.
//
// A [Description] is an append-only text buffer driven by an external
// expression walker. The walker calls [Description.Start] (or
// [Description.StartPredicate] for quantifiers) before visiting the children
// of a sub-expression, [Description.Term] for every leaf and
// [Description.End] once the children are written.
//
// # Usage
//
//	d, err := smtlib.New([]smtlib.Var{
//	    {Name: "x", Sort: smtlib.IntSort},
//	    {Name: "y", Sort: smtlib.BoolSort},
//	}, smtlib.CheckSat(true))
//	if err != nil {
//	    return err
//	}
//	d.Start("&&")
//	d.Start(">")
//	d.Term("x")
//	d.Term("0")
//	d.End()
//	d.Term("y")
//	d.End()
//	fmt.Println(d)
//
// produces
//
//	(set-logic AUFLIRA) (set-option :produce-models true) (declare-fun x () Int) (declare-fun y () Bool) (assert (and (> x 0 ) y ) ) (check-sat) (exit)
//
// The walker owns the pairing of Start and End calls; the description does
// not check it unless built with [Balanced].
//
// # Related Packages
//
//   - github.com/Zir0-93/tabster/walk - drive a Description from infix text
//   - github.com/Zir0-93/tabster/catalog - load variable catalogs
package smtlib
