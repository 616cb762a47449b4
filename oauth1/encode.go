package oauth1

const upperhex = "0123456789ABCDEF"

// encode percent-encodes s as required by RFC 5849 section 3.6. Every byte
// outside the RFC 3986 unreserved set (ALPHA, DIGIT, "-", ".", "_", "~") is
// replaced by its uppercase %XX form. Encoding operates on raw UTF-8 bytes
// and is total: it succeeds for any input string.
func encode(s string) string {
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			return encodeFrom(s, i)
		}
	}
	return s
}

func encodeFrom(s string, start int) string {
	buf := make([]byte, 0, len(s)+2*3)
	buf = append(buf, s[:start]...)
	for i := start; i < len(s); i++ {
		b := s[i]
		if isUnreserved(b) {
			buf = append(buf, b)
			continue
		}
		buf = append(buf, '%', upperhex[b>>4], upperhex[b&0x0f])
	}
	return string(buf)
}

func isUnreserved(b byte) bool {
	switch {
	case 'A' <= b && b <= 'Z', 'a' <= b && b <= 'z', '0' <= b && b <= '9':
		return true
	case b == '-' || b == '.' || b == '_' || b == '~':
		return true
	}
	return false
}
