// Package catalog reads variable catalogs for tabular expressions.
//
// A catalog is YAML, either a list
//
//	vars:
//	- name: x
//	  sort: Int
//	- name: flag
//	  sort: Bool
//
// or an ordered mapping
//
//	vars:
//	  x: Int
//	  flag: Bool
//
// Declaration order is the order in the file.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Zir0-93/tabster/debug"
	"github.com/Zir0-93/tabster/smtlib"

	"github.com/goccy/go-yaml"
)

var ErrCatalog = errors.New("bad catalog")

func LoadFile(path string) ([]smtlib.Var, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	vars, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return vars, nil
}

func Load(r io.Reader) ([]smtlib.Var, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return Parse(d)
}

func Parse(d []byte) ([]smtlib.Var, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(d, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalog, err)
	}
	if doc == nil {
		return nil, nil
	}
	if top, ok := doc.(yaml.MapSlice); ok {
		doc = nil
		for _, item := range top {
			if item.Key == "vars" {
				doc = item.Value
				continue
			}
			return nil, fmt.Errorf("%w: unexpected key %v", ErrCatalog, item.Key)
		}
	}
	var (
		vars []smtlib.Var
		err  error
	)
	switch x := doc.(type) {
	case nil:
	case yaml.MapSlice:
		vars, err = fromMapping(x)
	case []any:
		vars, err = fromList(x)
	default:
		err = fmt.Errorf("%w: vars must be a list or a mapping, got %T", ErrCatalog, doc)
	}
	if err != nil {
		return nil, err
	}
	if debug.Catalog() {
		debug.Logf("catalog: %v\n", vars)
	}
	return vars, nil
}

func fromMapping(m yaml.MapSlice) ([]smtlib.Var, error) {
	res := make([]smtlib.Var, 0, len(m))
	for _, item := range m {
		name, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: variable name %v is not a string", ErrCatalog, item.Key)
		}
		v, err := mkVar(name, item.Value)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func fromList(l []any) ([]smtlib.Var, error) {
	res := make([]smtlib.Var, 0, len(l))
	for i, elt := range l {
		m, ok := elt.(yaml.MapSlice)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d is not a mapping", ErrCatalog, i)
		}
		var name, sort any
		for _, item := range m {
			switch item.Key {
			case "name":
				name = item.Value
			case "sort":
				sort = item.Value
			default:
				return nil, fmt.Errorf("%w: entry %d: unexpected key %v", ErrCatalog, i, item.Key)
			}
		}
		s, ok := name.(string)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrCatalog, i)
		}
		v, err := mkVar(s, sort)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func mkVar(name string, sort any) (smtlib.Var, error) {
	s, ok := sort.(string)
	if !ok {
		return smtlib.Var{}, fmt.Errorf("%w: %s has no sort", ErrCatalog, name)
	}
	ps, err := smtlib.ParseSort(s)
	if err != nil {
		return smtlib.Var{}, fmt.Errorf("%w: %s: %w", ErrCatalog, name, err)
	}
	return smtlib.Var{Name: name, Sort: ps}, nil
}

// ParseVar parses name:sort, as given on the command line.
func ParseVar(a string) (smtlib.Var, error) {
	name, sort, ok := strings.Cut(a, ":")
	if !ok || name == "" {
		return smtlib.Var{}, fmt.Errorf("%w: %q expected name:sort", ErrCatalog, a)
	}
	return mkVar(name, sort)
}
