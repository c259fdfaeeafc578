package decode

import (
	"fmt"

	"github.com/arkadia-format/go-adf/ir"
	"github.com/arkadia-format/go-adf/token"
)

// scanMeta consumes everything metadata-shaped at the cursor:
// whitespace, /* */ comments, / ... / meta blocks and inline $ # !
// modifiers. Comments and inline modifiers go to the pending buffer;
// meta blocks apply directly to obj (or, with no obj, warn and fall
// back to pending).
func (d *decoder) scanMeta(obj metaHolder) {
	for !d.c.EOF() {
		d.c.SkipWhitespace()

		ch := d.c.Peek()
		next := d.c.PeekNext()

		if ch == '/' && next == '*' {
			d.pending.Comments = append(d.pending.Comments, d.parseCommentBlock())
			continue
		}
		if ch == '/' {
			d.parseMetaBlock(obj)
			continue
		}
		if ch == '$' || ch == '#' || ch == '!' {
			d.parseModifierInline()
			continue
		}
		break
	}
}

// parseCommentBlock reads a /* ... */ block, honoring nesting and
// backslash escapes, and returns the trimmed content.
func (d *decoder) parseCommentBlock() string {
	d.c.Advance(2) // "/*"

	nesting := 1
	var content []byte

	for !d.c.EOF() && nesting > 0 {
		ch := d.c.Peek()

		if ch == '\\' {
			d.c.Advance(1)
			if !d.c.EOF() {
				content = append(content, d.c.Next())
			}
			continue
		}
		if ch == '/' && d.c.PeekNext() == '*' {
			nesting++
			d.c.Advance(2)
			content = append(content, "/*"...)
			continue
		}
		if ch == '*' && d.c.PeekNext() == '/' {
			nesting--
			d.c.Advance(2)
			if nesting > 0 {
				content = append(content, "*/"...)
			}
			continue
		}
		content = append(content, ch)
		d.c.Advance(1)
	}

	if nesting > 0 {
		d.addError("Unterminated comment (expected '*/')")
	}
	return trimSpace(content)
}

func trimSpace(b []byte) string {
	start, end := 0, len(b)
	for start < end && isSpace(b[start]) {
		start++
	}
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return string(b[start:end])
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// parseModifierInline dispatches one $attr, #tag or !flag into the
// pending buffer.
func (d *decoder) parseModifierInline() {
	switch d.c.Peek() {
	case '$':
		d.parseMetaAttribute(d.pending)
	case '#':
		d.parseMetaTag(d.pending)
	case '!':
		d.parseMetaFlag(d.pending)
	default:
		d.c.Advance(1)
	}
}

// parseMetaBlock parses a / ... / block. Its contents apply directly
// to obj, bypassing the pending buffer; a block with nothing to attach
// to is a warning and merges into pending instead.
func (d *decoder) parseMetaBlock(obj metaHolder) *ir.MetaInfo {
	d.expect('/')
	d.trace("START meta block /.../")

	meta := &ir.MetaInfo{}

	for !d.c.EOF() {
		d.c.SkipWhitespace()
		ch := d.c.Peek()

		if ch == '/' && d.c.PeekNext() == '*' {
			meta.Comments = append(meta.Comments, d.parseCommentBlock())
			continue
		}
		if ch == '/' {
			d.c.Advance(1)
			break
		}

		switch ch {
		case '$':
			d.parseMetaAttribute(meta)
			continue
		case '#':
			d.parseMetaTag(meta)
			continue
		case '!':
			d.parseMetaFlag(meta)
			continue
		}

		// Legacy: bare key=value without '$'.
		if token.IsIdentStart(ch) {
			key := d.c.ReadIdent()
			val := ir.Bool(true)
			d.c.SkipWhitespace()
			if d.c.Peek() == '=' {
				d.c.Advance(1)
				val = d.parsePrimitiveValue()
			}
			d.addWarning(fmt.Sprintf("Implicit attribute %q. Use '$%s' instead.", key, key))
			meta.SetAttr(key, val)
			continue
		}

		d.addError(fmt.Sprintf("Unexpected token in meta block: %q", string(ch)))
		d.c.Advance(1)
	}

	if obj != nil {
		obj.ApplyMeta(meta)
	} else {
		d.addWarning(fmt.Sprintf("There is no parent to add the meta block %s", meta))
		d.pending.Merge(meta)
	}

	d.trace("END meta block")
	return meta
}

func (d *decoder) parseMetaAttribute(meta *ir.MetaInfo) {
	d.c.Advance(1) // '$'
	key := d.c.ReadIdent()
	val := ir.Bool(true)

	d.c.SkipWhitespace()
	if d.c.Peek() == '=' {
		d.c.Advance(1)
		val = d.parsePrimitiveValue()
	}
	meta.SetAttr(key, val)
	d.trace("Meta Attr: $%s=%s", key, val.Text())
}

func (d *decoder) parseMetaTag(meta *ir.MetaInfo) {
	d.c.Advance(1) // '#'
	tag := d.c.ReadIdent()
	meta.Tags = append(meta.Tags, tag)
	d.trace("Meta Tag: #%s", tag)
}

func (d *decoder) parseMetaFlag(meta *ir.MetaInfo) {
	d.c.Advance(1) // '!'
	flag := d.c.ReadIdent()
	if flag == "required" {
		meta.Required = true
		d.trace("Meta Flag: !required")
		return
	}
	d.addWarning("Unknown flag: !" + flag)
}
