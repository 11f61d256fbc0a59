package utf8

import "io"

// Cursor tracks the decode position within a byte buffer.
// A Cursor belongs to a single sequence of Next calls and
// must not be shared between concurrent decodes.
type Cursor struct {
	buf []byte // underlying buffer
	pos int    // current byte offset; always <= len(buf)
}

// NewCursor returns a new Cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current byte offset within the buffer.
func (c *Cursor) Pos() int {
	return c.pos
}

// Next decodes the UTF-8 sequence starting at the current position and
// returns the codepoint it encodes.
// The cursor advances by the length of the sequence only when the whole
// sequence was decoded; on any error the position is left untouched.
// Algorithm description:
//   - read one byte B0 at the cursor
//   - if B0 = 0xxxxxxx then the decoded value is B0 -> end
//   - if B0 = 10xxxxxx, the encoding is invalid
//   - if B0 = 11xxxxxx, set L to the number of leading binary 1s minus 1:
//     B0 = 110xxxxx -> L = 1
//     B0 = 1110xxxx -> L = 2
//     B0 = 11110xxx -> L = 3
//   - assign the bits following the encoding (the x bits in the examples)
//     to a variable R
//   - loop from 1 to L
//   - left shift R 6 bits
//   - read the next byte B
//   - if B does not match 10xxxxxx, the encoding is invalid
//   - set R = R or <the lower 6 bits from B>
//   - the decoded value is R
//
// Next returns io.EOF when the cursor is at the end of the buffer, and
// io.ErrUnexpectedEOF when the buffer ends within a multi-byte sequence.
// Malformed sequences are rejected: invalid lead bytes, continuation
// bytes missing the 10 marker, overlong encodings, surrogate codepoints
// and values above MaxCodepoint each report a distinct error.
func (c *Cursor) Next() (Codepoint, error) {
	if c.pos == len(c.buf) {
		return 0, io.EOF
	}

	c0 := c.buf[c.pos]

	// 1-byte, 7-bit sequence
	if c0 < tx {
		// if c0 == 0xxxxxxx
		// total: 7 bits (7)
		c.pos++
		return Codepoint(c0), nil
	}

	// unexpected continuation byte
	if c0 < t2 {
		// if c0 == 10xxxxxx
		return 0, ErrUnexpectedContinuation
	}

	// get number of continuation bytes and store bits from c0
	var l int
	var x Codepoint
	switch {
	case c0 < t3:
		// if c0 == 110xxxxx
		// total: 11 bits (5 + 6)
		l = 1
		x = Codepoint(c0 & mask2)
	case c0 < t4:
		// if c0 == 1110xxxx
		// total: 16 bits (4 + 6 + 6)
		l = 2
		x = Codepoint(c0 & mask3)
	case c0 < t5:
		// if c0 == 11110xxx
		// total: 21 bits (3 + 6 + 6 + 6)
		l = 3
		x = Codepoint(c0 & mask4)
	default:
		// if c0 == 11111xxx
		return 0, ErrInvalidLead
	}

	// store bits from continuation bytes
	for i := 1; i <= l; i++ {
		if c.pos+i == len(c.buf) {
			return 0, io.ErrUnexpectedEOF
		}
		cc := c.buf[c.pos+i]
		if cc < tx || t2 <= cc {
			// if cc != 10xxxxxx
			return 0, ErrExpectedContinuation
		}
		x = x<<6 | Codepoint(cc&maskx)
	}

	// check if the representation is larger than necessary
	switch l {
	case 1:
		if x <= rune1Max {
			return 0, ErrOverlong
		}
	case 2:
		if x <= rune2Max {
			return 0, ErrOverlong
		}
	case 3:
		if x <= rune3Max {
			return 0, ErrOverlong
		}
	}

	if surrogateMin <= x && x <= surrogateMax {
		return 0, ErrSurrogate
	}

	if x > MaxCodepoint {
		return 0, ErrOutOfRange
	}

	c.pos += 1 + l
	return x, nil
}

// Decode decodes p as UTF-8 and returns the codepoints it encodes.
// Malformed or truncated input aborts the decode and reports the failing
// condition; a truncated trailing sequence is io.ErrUnexpectedEOF, never
// a silently shortened result.
func Decode(p []byte) (cps []Codepoint, err error) {
	c := NewCursor(p)
	for {
		cp, err := c.Next()
		if err == io.EOF {
			return cps, nil
		}

		if err != nil {
			return nil, err
		}

		cps = append(cps, cp)
	}
}

// DecodeString decodes the UTF-8 bytes of s and returns the codepoints.
func DecodeString(s string) ([]Codepoint, error) {
	return Decode([]byte(s))
}
