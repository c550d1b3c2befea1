package smtlib

import (
	"fmt"
	"strings"
)

// Sort is the SMT-LIB sort of a declared constant.
type Sort int

const (
	IntSort Sort = iota
	RealSort
	BoolSort
)

func (s Sort) String() string {
	str, ok := map[Sort]string{
		IntSort:  "Int",
		RealSort: "Real",
		BoolSort: "Bool",
	}[s]
	if ok {
		return str
	}
	return "<unknown sort>"
}

// ParseSort accepts the SMT-LIB sort names, ignoring case.
func ParseSort(v string) (Sort, error) {
	s, ok := map[string]Sort{
		"int":  IntSort,
		"real": RealSort,
		"bool": BoolSort,
	}[strings.ToLower(v)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadSort, v)
	}
	return s, nil
}

func (s Sort) MarshalText() ([]byte, error) {
	switch s {
	case IntSort, RealSort, BoolSort:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadSort, int(s))
	}
}

func (s *Sort) UnmarshalText(d []byte) error {
	ps, err := ParseSort(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

func Sorts() []Sort {
	return []Sort{IntSort, RealSort, BoolSort}
}
