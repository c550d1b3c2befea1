package smtlib

import (
	"fmt"
	"strings"
)

// Var is a typed input variable, declared as an uninterpreted constant.
type Var struct {
	Name string `yaml:"name"`
	Sort Sort   `yaml:"sort"`
}

func (v Var) String() string {
	return v.Name + ":" + v.Sort.String()
}

// Registry holds the variables of one description. It is fixed at
// construction.
type Registry struct {
	vars []Var
}

func NewRegistry(vars []Var) (*Registry, error) {
	seen := make(map[string]bool, len(vars))
	for i := range vars {
		name := vars[i].Name
		if name == "" {
			return nil, fmt.Errorf("%w: variable %d", ErrEmptyName, i)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
		}
		seen[name] = true
	}
	return &Registry{vars: append([]Var(nil), vars...)}, nil
}

// ResolveSort returns the declared sort of name.
func (r *Registry) ResolveSort(name string) (Sort, error) {
	for i := range r.vars {
		if r.vars[i].Name == name {
			return r.vars[i].Sort, nil
		}
	}
	return 0, &UnknownVariableError{Name: name}
}

func (r *Registry) Vars() []Var {
	return append([]Var(nil), r.vars...)
}

// DeclareAll returns one declare-fun clause per variable, in order.
func DeclareAll(vars []Var) string {
	var b strings.Builder
	for i := range vars {
		writeDecl(&b, &vars[i])
	}
	return b.String()
}

func writeDecl(b *strings.Builder, v *Var) {
	b.WriteString("(declare-fun ")
	b.WriteString(v.Name)
	b.WriteString(" () ")
	b.WriteString(v.Sort.String())
	b.WriteString(") ")
}
