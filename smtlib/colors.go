package smtlib

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	ParenColor ColorAttr = iota
	CommandColor
	SymbolColor
	SortColor
	KeywordColor
	TermColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[ParenColor] = color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[CommandColor] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[SymbolColor] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[SortColor] = color.CyanString
	colors.Map[KeywordColor] = color.RGB(196, 168, 128).SprintfFunc()
	colors.Map[TermColor] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

var commands = map[string]bool{
	"set-logic":   true,
	"set-option":  true,
	"declare-fun": true,
	"assert":      true,
	"check-sat":   true,
	"get-model":   true,
	"exit":        true,
}

// Highlight colors the words and parentheses of SMT-LIB text.
func (c *Colors) Highlight(text string) string {
	var b strings.Builder
	afterParen := false
	i := 0
	for i < len(text) {
		ch := text[i]
		switch ch {
		case '(', ')':
			b.WriteString(c.Color(ParenColor, text[i:i+1]))
			afterParen = ch == '('
			i++
			continue
		case ' ', '\t', '\n':
			b.WriteByte(ch)
			i++
			continue
		}
		j := i
		for j < len(text) && !strings.ContainsRune("() \t\n", rune(text[j])) {
			j++
		}
		b.WriteString(c.Color(wordAttr(text[i:j], afterParen), text[i:j]))
		afterParen = false
		i = j
	}
	return b.String()
}

func wordAttr(w string, head bool) ColorAttr {
	switch {
	case head && commands[w]:
		return CommandColor
	case head:
		return SymbolColor
	case strings.HasPrefix(w, ":"):
		return KeywordColor
	}
	for _, s := range Sorts() {
		if w == s.String() {
			return SortColor
		}
	}
	return TermColor
}
