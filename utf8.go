// Package utf8 implements encoding and decoding of Unicode codepoints as UTF-8 byte sequences.
package utf8

import "errors"

// Codepoint is a Unicode scalar value.
type Codepoint uint32

// MaxCodepoint is the largest valid Unicode scalar value.
const MaxCodepoint Codepoint = 0x10FFFF

// Surrogate codepoints are reserved for UTF-16 pairing and
// are not valid scalar values.
const (
	surrogateMin Codepoint = 0xD800
	surrogateMax Codepoint = 0xDFFF
)

const (
	tx = 0x80 // 1000 0000
	t2 = 0xC0 // 1100 0000
	t3 = 0xE0 // 1110 0000
	t4 = 0xF0 // 1111 0000
	t5 = 0xF8 // 1111 1000

	maskx = 0x3F // 0011 1111
	mask2 = 0x1F // 0001 1111
	mask3 = 0x0F // 0000 1111
	mask4 = 0x07 // 0000 0111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1
)

var (
	ErrUnexpectedContinuation = errors.New("utf8: unexpected continuation byte") // continuation byte 10xxxxxx used as a lead byte
	ErrInvalidLead            = errors.New("utf8: invalid lead byte")            // lead byte in the range 0xF8-0xFF
	ErrExpectedContinuation   = errors.New("utf8: expected continuation byte")   // byte within a sequence missing the 10 marker bits
	ErrOverlong               = errors.New("utf8: overlong encoding")            // sequence longer than its scalar value requires
	ErrSurrogate              = errors.New("utf8: surrogate codepoint")          // decoded value in the range 0xD800-0xDFFF
	ErrOutOfRange             = errors.New("utf8: codepoint out of range")       // decoded value above 0x10FFFF
	ErrInvalidCodepoint       = errors.New("utf8: invalid codepoint")            // encode argument above 0x10FFFF or in the surrogate range
)
