package token

// Cursor walks input text one byte at a time, maintaining the absolute
// offset plus line and column counters. Advance is the only method
// that moves the position.
type Cursor struct {
	text string
	i    int
	line int
	col  int
}

func NewCursor(text string) *Cursor {
	return &Cursor{text: text}
}

func (c *Cursor) EOF() bool { return c.i >= len(c.text) }

// Peek returns the current byte, or 0 at end of input.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.text[c.i]
}

// PeekNext returns the byte after the current one, or 0.
func (c *Cursor) PeekNext() byte {
	if c.i+1 >= len(c.text) {
		return 0
	}
	return c.text[c.i+1]
}

// Next consumes and returns the current byte.
func (c *Cursor) Next() byte {
	ch := c.Peek()
	c.Advance(1)
	return ch
}

// Advance consumes n bytes, updating line/column counters, and returns
// the last byte consumed.
func (c *Cursor) Advance(n int) byte {
	var last byte
	for ; n > 0 && !c.EOF(); n-- {
		last = c.text[c.i]
		if last == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
		c.i++
	}
	return last
}

// SkipWhitespace skips spaces, tabs and newlines. It never consumes
// comments; '/' stays in the stream for the metadata scanner.
func (c *Cursor) SkipWhitespace() {
	for !c.EOF() {
		switch c.text[c.i] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			c.Advance(1)
		default:
			return
		}
	}
}

func (c *Cursor) Offset() int { return c.i }

// Pos captures the current position with a context window of up to ten
// bytes on each side.
func (c *Cursor) Pos() Pos {
	start := max(0, c.i-10)
	end := min(len(c.text), c.i+11)
	return Pos{
		Offset:  c.i,
		Line:    c.line,
		Col:     c.col,
		Context: c.text[start:end],
	}
}

// Window returns the text before, at and after the cursor for debug
// traces.
func (c *Cursor) Window(n int) (before, at, after string) {
	start := max(0, c.i-n)
	end := min(len(c.text), c.i+n+1)
	before = c.text[start:c.i]
	if c.i < len(c.text) {
		at = c.text[c.i : c.i+1]
		after = c.text[c.i+1 : end]
	}
	return before, at, after
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// IsIdentStart reports whether ch can begin an identifier.
func IsIdentStart(ch byte) bool { return isIdentStart(ch) }

// IsDigit reports whether ch is an ASCII digit.
func IsDigit(ch byte) bool { return isDigit(ch) }

// ReadIdent reads an identifier [a-zA-Z_][a-zA-Z0-9_]*, skipping
// leading whitespace. Returns "" when the next character cannot start
// one.
func (c *Cursor) ReadIdent() string {
	c.SkipWhitespace()
	if c.EOF() || !isIdentStart(c.text[c.i]) {
		return ""
	}
	start := c.i
	c.Advance(1)
	for !c.EOF() && isIdentPart(c.text[c.i]) {
		c.Advance(1)
	}
	return c.text[start:c.i]
}

// ReadQuoted reads a double-quoted string starting at the opening
// quote, decoding \n \t \r \" \\ escapes and passing any other escaped
// byte through. Reports whether the closing quote was found.
func (c *Cursor) ReadQuoted() (string, bool) {
	if c.Peek() != '"' {
		return "", false
	}
	c.Advance(1)
	var b []byte
	for !c.EOF() {
		ch := c.text[c.i]
		if ch == '"' {
			c.Advance(1)
			return string(b), true
		}
		if ch == '\\' {
			c.Advance(1)
			if c.EOF() {
				break
			}
			esc := c.text[c.i]
			switch esc {
			case 'n':
				b = append(b, '\n')
			case 't':
				b = append(b, '\t')
			case 'r':
				b = append(b, '\r')
			case '"':
				b = append(b, '"')
			case '\\':
				b = append(b, '\\')
			default:
				b = append(b, esc)
			}
			c.Advance(1)
			continue
		}
		b = append(b, ch)
		c.Advance(1)
	}
	return string(b), false
}

// ReadNumber reads a number token: optional sign, integer part,
// optional fraction, optional exponent. Returns the raw text and
// whether a fraction or exponent made it a float.
func (c *Cursor) ReadNumber() (raw string, isFloat bool) {
	start := c.i
	if c.Peek() == '-' {
		c.Advance(1)
	}
	for !c.EOF() && isDigit(c.text[c.i]) {
		c.Advance(1)
	}
	if c.Peek() == '.' {
		isFloat = true
		c.Advance(1)
		for !c.EOF() && isDigit(c.text[c.i]) {
			c.Advance(1)
		}
	}
	if ch := c.Peek(); ch == 'e' || ch == 'E' {
		isFloat = true
		c.Advance(1)
		if ch := c.Peek(); ch == '+' || ch == '-' {
			c.Advance(1)
		}
		for !c.EOF() && isDigit(c.text[c.i]) {
			c.Advance(1)
		}
	}
	return c.text[start:c.i], isFloat
}
