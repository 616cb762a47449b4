package oauth1

import "crypto/rand"

const nonceLen = 64

const nonceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// nonce returns a fresh 64-character alphanumeric token drawn uniformly from
// a cryptographically secure source. The alphabet is a subset of the percent
// encoding unreserved set, so a nonce needs no further encoding before use in
// a parameter string or header.
//
// Uniformity is preserved by rejection sampling: each random byte is masked
// to six bits and discarded when it falls outside the 62-character alphabet.
func nonce() string {
	buf := make([]byte, 0, nonceLen)
	var raw [nonceLen]byte
	for len(buf) < nonceLen {
		if _, err := rand.Read(raw[:]); err != nil {
			// crypto/rand does not fail on any supported platform.
			panic(err)
		}
		for _, b := range raw {
			b &= 0x3f
			if int(b) < len(nonceAlphabet) {
				buf = append(buf, nonceAlphabet[b])
				if len(buf) == nonceLen {
					break
				}
			}
		}
	}
	return string(buf)
}
