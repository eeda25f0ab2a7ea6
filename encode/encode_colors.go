package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

// Colors assigns terminal attributes to the token classes of rendered
// output. A nil class is printed plain.
type Colors struct {
	Field   []color.Attribute
	String  []color.Attribute
	Number  []color.Attribute
	Bool    []color.Attribute
	Anchor  []color.Attribute
	Alias   []color.Attribute
	Comment []color.Attribute
}

func NewColors() *Colors {
	return &Colors{
		Field:   []color.Attribute{color.FgHiCyan},
		String:  []color.Attribute{color.FgHiGreen},
		Number:  []color.Attribute{color.FgHiMagenta},
		Bool:    []color.Attribute{color.FgHiYellow},
		Anchor:  []color.Attribute{color.FgHiBlue, color.Bold},
		Alias:   []color.Attribute{color.FgHiBlue},
		Comment: []color.Attribute{color.FgBlue},
	}
}

// Colorize re-tokenizes rendered YAML or JSON and wraps each token in the
// escape sequences of its class.
func (c *Colors) Colorize(s string) string {
	if s == "" {
		return s
	}
	p := &printer.Printer{
		MapKey:  property(c.Field),
		String:  property(c.String),
		Number:  property(c.Number),
		Bool:    property(c.Bool),
		Anchor:  property(c.Anchor),
		Alias:   property(c.Alias),
		Comment: property(c.Comment),
	}
	res := p.PrintTokens(lexer.Tokenize(s))
	if strings.HasSuffix(s, "\n") && !strings.HasSuffix(res, "\n") {
		res += "\n"
	}
	return res
}

// property takes the escape sequences that color puts around text, since
// the printer wants them as literal strings.
func property(attrs []color.Attribute) printer.PrintFunc {
	if len(attrs) == 0 {
		return nil
	}
	c := color.New(attrs...)
	c.EnableColor()
	prefix, suffix, _ := strings.Cut(c.Sprint("|"), "|")
	prop := &printer.Property{
		Prefix: prefix,
		Suffix: suffix,
	}
	return func() *printer.Property { return prop }
}
