package smtlib

import (
	"fmt"
	"testing"

	"github.com/fatih/color"
)

func TestHighlightNoColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	d, err := New(xy, CheckSat(true))
	if err != nil {
		t.Fatal(err)
	}
	d.Start("%")
	d.Term("x")
	d.Term("2")
	d.End()
	text := d.String()
	if got := NewColors().Highlight(text); got != text {
		t.Errorf("got %q want %q", got, text)
	}
}

func TestHighlightAttrs(t *testing.T) {
	c := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	names := map[ColorAttr]string{
		ParenColor:   "p",
		CommandColor: "c",
		SymbolColor:  "s",
		SortColor:    "t",
		KeywordColor: "k",
		TermColor:    "v",
	}
	for a, n := range names {
		c.Map[a] = func(v string, _ ...any) string { return fmt.Sprintf("%s[%s]", n, v) }
	}
	got := c.Highlight("(set-option :produce-models true) (declare-fun x () Int) (mod x 2 )")
	want := "p[(]c[set-option] k[:produce-models] v[true]p[)] " +
		"p[(]c[declare-fun] v[x] p[(]p[)] t[Int]p[)] " +
		"p[(]s[mod] v[x] v[2] p[)]"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}
