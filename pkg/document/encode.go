package document

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf16"
)

// EncodeOptions controls the output layout.
type EncodeOptions struct {
	// Indent is the number of spaces per nesting level. A negative value
	// writes the whole document on one line with ", " and ": " separators.
	Indent int

	// ASCII escapes every rune outside printable ASCII as \uXXXX.
	ASCII bool
}

// DefaultEncodeOptions is the layout project files are expected to have.
var DefaultEncodeOptions = EncodeOptions{Indent: 4, ASCII: true}

// Marshal returns the encoding of v.
func Marshal(v *Value, opts EncodeOptions) []byte {
	e := &encoder{opts: opts}
	if opts.Indent > 0 {
		e.pad = strings.Repeat(" ", opts.Indent)
	}
	e.value(v, 0)
	return e.buf.Bytes()
}

// Encode writes the encoding of v to w.
func Encode(w io.Writer, v *Value, opts EncodeOptions) error {
	_, err := w.Write(Marshal(v, opts))
	return err
}

type encoder struct {
	buf  bytes.Buffer
	opts EncodeOptions
	pad  string
}

func (e *encoder) value(v *Value, depth int) {
	if v == nil {
		e.buf.WriteString("null")
		return
	}

	switch v.Kind {
	case KindNull:
		e.buf.WriteString("null")
	case KindBool:
		if v.Bool {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	case KindNumber:
		if v.Number == "" {
			e.buf.WriteByte('0')
		} else {
			e.buf.WriteString(v.Number.String())
		}
	case KindString:
		e.string(v.Str)
	case KindArray:
		if len(v.Items) == 0 {
			e.buf.WriteString("[]")
			return
		}
		e.buf.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				e.separator()
			}
			e.newline(depth + 1)
			e.value(item, depth+1)
		}
		e.newline(depth)
		e.buf.WriteByte(']')
	case KindObject:
		if len(v.Members) == 0 {
			e.buf.WriteString("{}")
			return
		}
		e.buf.WriteByte('{')
		for i, m := range v.Members {
			if i > 0 {
				e.separator()
			}
			e.newline(depth + 1)
			e.string(m.Key)
			e.buf.WriteString(": ")
			e.value(m.Value, depth+1)
		}
		e.newline(depth)
		e.buf.WriteByte('}')
	}
}

func (e *encoder) separator() {
	if e.opts.Indent < 0 {
		e.buf.WriteString(", ")
		return
	}
	e.buf.WriteByte(',')
}

func (e *encoder) newline(depth int) {
	if e.opts.Indent < 0 {
		return
	}
	e.buf.WriteByte('\n')
	for range depth {
		e.buf.WriteString(e.pad)
	}
}

const hexDigits = "0123456789abcdef"

func (e *encoder) string(s string) {
	e.buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			e.buf.WriteString(`\"`)
		case '\\':
			e.buf.WriteString(`\\`)
		case '\n':
			e.buf.WriteString(`\n`)
		case '\r':
			e.buf.WriteString(`\r`)
		case '\t':
			e.buf.WriteString(`\t`)
		case '\b':
			e.buf.WriteString(`\b`)
		case '\f':
			e.buf.WriteString(`\f`)
		default:
			switch {
			case r < 0x20:
				e.escape(r)
			case e.opts.ASCII && r > 0x7e:
				if r > 0xffff {
					hi, lo := utf16.EncodeRune(r)
					e.escape(hi)
					e.escape(lo)
				} else {
					e.escape(r)
				}
			default:
				e.buf.WriteRune(r)
			}
		}
	}
	e.buf.WriteByte('"')
}

func (e *encoder) escape(r rune) {
	e.buf.WriteString(`\u`)
	e.buf.WriteByte(hexDigits[r>>12&0xf])
	e.buf.WriteByte(hexDigits[r>>8&0xf])
	e.buf.WriteByte(hexDigits[r>>4&0xf])
	e.buf.WriteByte(hexDigits[r&0xf])
}
