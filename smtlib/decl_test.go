package smtlib

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeclareAll(t *testing.T) {
	got := DeclareAll([]Var{
		{Name: "x", Sort: IntSort},
		{Name: "y", Sort: BoolSort},
	})
	want := "(declare-fun x () Int) (declare-fun y () Bool) "
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if DeclareAll(nil) != "" {
		t.Errorf("expected no declarations for no vars")
	}
}

func TestRegistryResolveSort(t *testing.T) {
	vars := []Var{
		{Name: "x", Sort: IntSort},
		{Name: "r", Sort: RealSort},
		{Name: "b", Sort: BoolSort},
	}
	reg, err := NewRegistry(vars)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range vars {
		s, err := reg.ResolveSort(v.Name)
		if err != nil {
			t.Errorf("%s: %v", v.Name, err)
			continue
		}
		if s != v.Sort {
			t.Errorf("%s: got %s want %s", v.Name, s, v.Sort)
		}
	}
	_, err = reg.ResolveSort("z")
	var uerr *UnknownVariableError
	if !errors.As(err, &uerr) || uerr.Name != "z" {
		t.Fatalf("expected unknown variable z, got %v", err)
	}
	if !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("expected ErrUnknownVariable, got %v", err)
	}
}

func TestRegistryIsFixed(t *testing.T) {
	vars := []Var{{Name: "x", Sort: IntSort}}
	reg, err := NewRegistry(vars)
	if err != nil {
		t.Fatal(err)
	}
	vars[0].Name = "y"
	if _, err := reg.ResolveSort("y"); err == nil {
		t.Errorf("registry followed caller mutation")
	}
	got := reg.Vars()
	got[0].Sort = BoolSort
	if diff := cmp.Diff([]Var{{Name: "x", Sort: IntSort}}, reg.Vars()); diff != "" {
		t.Errorf("registry vars changed (-want +got):\n%s", diff)
	}
}

func TestNewRegistryErrors(t *testing.T) {
	tests := []struct {
		name string
		vars []Var
		want error
	}{
		{
			name: "duplicate",
			vars: []Var{{Name: "x"}, {Name: "y"}, {Name: "x", Sort: BoolSort}},
			want: ErrDuplicateVariable,
		},
		{
			name: "empty name",
			vars: []Var{{Name: "x"}, {Sort: RealSort}},
			want: ErrEmptyName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.vars)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v want %v", err, tt.want)
			}
		})
	}
}

func TestSortText(t *testing.T) {
	for _, s := range Sorts() {
		d, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Sort
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != s {
			t.Errorf("got %s want %s", back, s)
		}
	}
	for in, want := range map[string]Sort{"int": IntSort, "REAL": RealSort, "Bool": BoolSort} {
		got, err := ParseSort(in)
		if err != nil || got != want {
			t.Errorf("%q: got %s, %v", in, got, err)
		}
	}
	if _, err := ParseSort("String"); !errors.Is(err, ErrBadSort) {
		t.Errorf("expected bad sort, got %v", err)
	}
	if _, err := Sort(42).MarshalText(); !errors.Is(err, ErrBadSort) {
		t.Errorf("expected bad sort, got %v", err)
	}
}
