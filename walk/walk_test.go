package walk

import (
	"errors"
	"strings"
	"testing"

	"github.com/Zir0-93/tabster/smtlib"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/google/go-cmp/cmp"
)

var vars = []smtlib.Var{
	{Name: "x", Sort: smtlib.IntSort},
	{Name: "y", Sort: smtlib.IntSort},
	{Name: "r", Sort: smtlib.RealSort},
	{Name: "b", Sort: smtlib.BoolSort},
}

// recorder records builder calls.
type recorder struct {
	calls []string
}

func (r *recorder) Start(tok string) error {
	r.calls = append(r.calls, "start "+tok)
	return nil
}

func (r *recorder) StartPredicate(tok, name string) error {
	r.calls = append(r.calls, "pred "+tok+" "+name)
	return nil
}

func (r *recorder) End() error {
	r.calls = append(r.calls, "end")
	return nil
}

func (r *recorder) Term(text string) {
	r.calls = append(r.calls, "term "+text)
}

func (r *recorder) ResolveSort(name string) (smtlib.Sort, error) {
	for _, v := range vars {
		if v.Name == name {
			return v.Sort, nil
		}
	}
	return 0, &smtlib.UnknownVariableError{Name: name}
}

func TestWalkPreOrder(t *testing.T) {
	tree, err := parser.Parse("x > 0 && not b")
	if err != nil {
		t.Fatal(err)
	}
	r := &recorder{}
	if err := Walk(tree.Node, r); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"start &&",
		"start >", "term x", "term 0", "end",
		"start !", "term b", "end",
		"end",
	}
	if diff := cmp.Diff(want, r.calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}

func TestWalkQuantifiers(t *testing.T) {
	tree, err := parser.Parse("forall(x, y, exists(r, x * y >= r))")
	if err != nil {
		t.Fatal(err)
	}
	r := &recorder{}
	if err := Walk(tree.Node, r); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"pred ∀ x", "pred ∀ y",
		"pred ∃ r",
		"start >=", "start *", "term x", "term y", "end", "term r", "end",
		"end",
		"end", "end",
	}
	if diff := cmp.Diff(want, r.calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		in   string
		body string
	}{
		{in: "x + 1 == y", body: "(= (+ x 1 ) y ) "},
		{in: "x != y or b", body: "(or (distinct x y ) b ) "},
		{in: "x % 2 == 0 and b", body: "(and (= (mod x 2 ) 0 ) b ) "},
		{in: "-x < +y", body: "(< (- x ) y ) "},
		{in: "r / 2.5 <= 3.0", body: "(<= (/ r 2.5 ) 3.0 ) "},
		{in: "!b || true", body: "(or (not b ) true ) "},
		{in: "forall(x, x * x >= 0)", body: "(forall ((x Int)) (>= (* x x ) 0 ) ) "},
		{in: "b", body: "b "},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := Translate(tt.in, vars)
			if err != nil {
				t.Fatal(err)
			}
			if got := d.Body(); got != tt.body {
				t.Errorf("got %q want %q", got, tt.body)
			}
			if d.Source() != tt.in {
				t.Errorf("source %q", d.Source())
			}
			if !strings.HasSuffix(d.String(), tt.body+") (exit)") {
				t.Errorf("unexpected description %s", d)
			}
		})
	}
}

func TestTranslateOptions(t *testing.T) {
	d, err := Translate("x > y", vars[:2], smtlib.CheckSat(true), smtlib.GetModel(true))
	if err != nil {
		t.Fatal(err)
	}
	want := "(set-logic AUFLIRA) (set-option :produce-models true) " +
		"(declare-fun x () Int) (declare-fun y () Int) " +
		"(assert (> x y ) ) (check-sat) (get-model) (exit)"
	if d.String() != want {
		t.Errorf("got\n%s\nwant\n%s", d, want)
	}
}

func TestTranslateErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{in: "x ** 2 > y", want: smtlib.ErrUnsupportedOperator},
		{in: "z > 0", want: smtlib.ErrUnknownVariable},
		{in: "forall(z, z > 0)", want: smtlib.ErrTranslation},
		{in: "forall(x)", want: ErrQuantifier},
		{in: "forall(1, x > 0)", want: ErrQuantifier},
		{in: "max(x, y) > 0", want: ErrUnsupportedNode},
		{in: "f(x)", want: ErrUnsupportedNode},
		{in: `x == "s"`, want: ErrUnsupportedNode},
		{in: "b ? x : y", want: ErrUnsupportedNode},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Translate(tt.in, vars)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v want %v", err, tt.want)
			}
		})
	}
}

func TestTranslateUnsupportedCarriesToken(t *testing.T) {
	_, err := Translate("x ** 2 > y", vars)
	var uerr *smtlib.UnsupportedOperatorError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UnsupportedOperatorError, got %v", err)
	}
	if uerr.Token != "**" {
		t.Errorf("got token %q", uerr.Token)
	}
}

func TestTranslateParseError(t *testing.T) {
	if _, err := Translate("x >", vars); err == nil {
		t.Error("expected parse error")
	}
}

func TestFormatReal(t *testing.T) {
	for in, want := range map[float64]string{2: "2.0", 2.5: "2.5", 0.125: "0.125"} {
		if got := formatReal(in); got != want {
			t.Errorf("%v: got %q want %q", in, got, want)
		}
	}
}

func TestWalkNegativeLiterals(t *testing.T) {
	r := &recorder{}
	node := &ast.BinaryNode{
		Operator: "<",
		Left:     &ast.IntegerNode{Value: -3},
		Right:    &ast.FloatNode{Value: -0.5},
	}
	if err := Walk(node, r); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"start <",
		"start -", "term 3", "end",
		"start -", "term 0.5", "end",
		"end",
	}
	if diff := cmp.Diff(want, r.calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}
