package encode

import "github.com/fatih/color"

// Colors maps ADF token classes to ANSI renderers. The zero behavior
// (nil Colors) is plain text.
type Colors struct {
	String *color.Color
	Number *color.Color
	Bool   *color.Color
	Null   *color.Color
	Type   *color.Color
	Key    *color.Color
	Schema *color.Color
	Tag    *color.Color
	Attr   *color.Color
}

// NewColors returns the default palette with color output forced on,
// independent of terminal detection; the caller already decided to
// colorize.
func NewColors() *Colors {
	mk := func(attr color.Attribute) *color.Color {
		c := color.New(attr)
		c.EnableColor()
		return c
	}
	return &Colors{
		String: mk(color.FgHiGreen),
		Number: mk(color.FgHiBlue),
		Bool:   mk(color.FgHiMagenta),
		Null:   mk(color.FgHiBlack),
		Type:   mk(color.FgHiCyan),
		Key:    mk(color.FgHiYellow),
		Schema: mk(color.FgHiRed),
		Tag:    mk(color.FgHiRed),
		Attr:   mk(color.FgHiYellow),
	}
}

func (e *encState) color(pick func(*Colors) *color.Color, s string) string {
	if e.colors == nil {
		return s
	}
	return pick(e.colors).Sprint(s)
}

func (e *encState) cString(s string) string { return e.color(func(c *Colors) *color.Color { return c.String }, s) }
func (e *encState) cNumber(s string) string { return e.color(func(c *Colors) *color.Color { return c.Number }, s) }
func (e *encState) cBool(s string) string   { return e.color(func(c *Colors) *color.Color { return c.Bool }, s) }
func (e *encState) cNull(s string) string   { return e.color(func(c *Colors) *color.Color { return c.Null }, s) }
func (e *encState) cType(s string) string   { return e.color(func(c *Colors) *color.Color { return c.Type }, s) }
func (e *encState) cKey(s string) string    { return e.color(func(c *Colors) *color.Color { return c.Key }, s) }
func (e *encState) cSchema(s string) string { return e.color(func(c *Colors) *color.Color { return c.Schema }, s) }
func (e *encState) cTag(s string) string    { return e.color(func(c *Colors) *color.Color { return c.Tag }, s) }
func (e *encState) cAttr(s string) string   { return e.color(func(c *Colors) *color.Color { return c.Attr }, s) }
