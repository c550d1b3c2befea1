package smtlib

import (
	"io"
	"strings"

	"github.com/Zir0-93/tabster/debug"
)

const (
	preamble    = "(set-logic AUFLIRA) (set-option :produce-models true) "
	assertStart = "(assert "
)

// Description accumulates the SMT-LIB text of one tabular expression.
//
// It is append-only: once String or WriteTo has been used to read the final
// text, no further writes should be made. A Description is not safe for
// concurrent use.
type Description struct {
	buf  strings.Builder
	body int // offset of the assertion body in buf
	reg  *Registry

	checkSat bool
	getModel bool
	balanced bool
	depth    int
	source   string

	err error // first error encountered
}

// New declares vars and opens the top level assertion.
func New(vars []Var, opts ...Option) (*Description, error) {
	reg, err := NewRegistry(vars)
	if err != nil {
		return nil, err
	}
	d := &Description{reg: reg}
	for _, opt := range opts {
		opt(d)
	}
	d.buf.WriteString(preamble)
	d.buf.WriteString(DeclareAll(reg.vars))
	d.buf.WriteString(assertStart)
	d.body = d.buf.Len()
	return d, nil
}

// Start opens a sub-expression headed by the symbol for token.
func (d *Description) Start(token string) error {
	if d.err != nil {
		return d.err
	}
	sym, err := Resolve(token)
	if err != nil {
		d.err = err
		return err
	}
	if debug.Desc() {
		debug.Logf("start %q -> %s at depth %d\n", token, sym, d.depth)
	}
	d.open(sym)
	return nil
}

// StartPredicate opens a quantified sub-expression binding name with its
// declared sort.
func (d *Description) StartPredicate(token, name string) error {
	if d.err != nil {
		return d.err
	}
	sort, err := d.reg.ResolveSort(name)
	if err != nil {
		d.err = &TranslationError{Token: token, Var: name, Err: err}
		return d.err
	}
	sym, err := Resolve(token)
	if err != nil {
		d.err = err
		return err
	}
	if debug.Desc() {
		debug.Logf("start %q -> %s binding %s at depth %d\n", token, sym, Var{Name: name, Sort: sort}, d.depth)
	}
	d.open(sym)
	d.buf.WriteString("((")
	d.buf.WriteString(name)
	d.buf.WriteByte(' ')
	d.buf.WriteString(sort.String())
	d.buf.WriteString(")) ")
	return nil
}

func (d *Description) open(sym string) {
	d.buf.WriteByte('(')
	d.buf.WriteString(sym)
	d.buf.WriteByte(' ')
	d.depth++
}

// End closes the innermost open sub-expression. Pairing is the caller's
// obligation; it is only checked when the description is Balanced.
func (d *Description) End() error {
	if d.err != nil {
		return d.err
	}
	if d.balanced && d.depth == 0 {
		d.err = &UnbalancedError{Depth: -1}
		return d.err
	}
	if debug.Desc() {
		debug.Logf("end at depth %d\n", d.depth)
	}
	d.depth--
	d.buf.WriteString(") ")
	return nil
}

// Term writes a leaf verbatim. text must already be a valid SMT-LIB atom.
func (d *Description) Term(text string) {
	if d.err != nil {
		return
	}
	d.buf.WriteString(text)
	d.buf.WriteByte(' ')
}

// ResolveSort returns the declared sort of a variable.
func (d *Description) ResolveSort(name string) (Sort, error) {
	return d.reg.ResolveSort(name)
}

// Err returns the first error the description encountered.
func (d *Description) Err() error {
	return d.err
}

// Check reports the first error and, for Balanced descriptions, any
// sub-expressions left open.
func (d *Description) Check() error {
	if d.err != nil {
		return d.err
	}
	if d.balanced && d.depth != 0 {
		return &UnbalancedError{Depth: d.depth}
	}
	return nil
}

// Depth is the number of currently open sub-expressions.
func (d *Description) Depth() int {
	return d.depth
}

func (d *Description) Vars() []Var {
	return d.reg.Vars()
}

func (d *Description) Source() string {
	return d.source
}

// Body returns the assertion body written so far.
func (d *Description) Body() string {
	return d.buf.String()[d.body:]
}

// Footer closes the top level assertion and appends the requested commands.
func Footer(checkSat, getModel bool) string {
	var b strings.Builder
	b.WriteString(")")
	if checkSat {
		b.WriteString(" (check-sat)")
	}
	if getModel {
		b.WriteString(" (get-model)")
	}
	b.WriteString(" (exit)")
	return b.String()
}

// String returns the complete description. It does not modify the buffer.
func (d *Description) String() string {
	return d.buf.String() + Footer(d.checkSat, d.getModel)
}

func (d *Description) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.buf.String())
	if err != nil {
		return int64(n), err
	}
	m, err := io.WriteString(w, Footer(d.checkSat, d.getModel))
	return int64(n + m), err
}
