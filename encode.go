package utf8

// Encode encodes cp as UTF-8 and returns its byte sequence,
// between one and four bytes long.
// Surrogate codepoints and values above MaxCodepoint are rejected with
// ErrInvalidCodepoint.
func Encode(cp Codepoint) ([]byte, error) {
	switch {
	case cp <= rune1Max:
		// 0xxxxxxx
		// total: 7 bits (7)
		return []byte{byte(cp)}, nil
	case cp <= rune2Max:
		// 110xxxxx 10xxxxxx
		// total: 11 bits (5 + 6)
		return []byte{
			t2 | byte(cp>>6),
			tx | byte(cp)&maskx,
		}, nil
	case surrogateMin <= cp && cp <= surrogateMax:
		return nil, ErrInvalidCodepoint
	case cp <= rune3Max:
		// 1110xxxx 10xxxxxx 10xxxxxx
		// total: 16 bits (4 + 6 + 6)
		return []byte{
			t3 | byte(cp>>12),
			tx | byte(cp>>6)&maskx,
			tx | byte(cp)&maskx,
		}, nil
	case cp <= MaxCodepoint:
		// 11110xxx 10xxxxxx 10xxxxxx 10xxxxxx
		// total: 21 bits (3 + 6 + 6 + 6)
		return []byte{
			t4 | byte(cp>>18),
			tx | byte(cp>>12)&maskx,
			tx | byte(cp>>6)&maskx,
			tx | byte(cp)&maskx,
		}, nil
	}

	return nil, ErrInvalidCodepoint
}

// EncodeAll encodes each codepoint in cps and returns the concatenated
// byte sequence.
// On an invalid codepoint it returns the bytes produced so far together
// with the error; output for preceding codepoints is never discarded.
func EncodeAll(cps []Codepoint) (buf []byte, err error) {
	for _, cp := range cps {
		b, err := Encode(cp)
		if err != nil {
			return buf, err
		}

		buf = append(buf, b...)
	}

	return buf, nil
}
