package oauth1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonceShape(t *testing.T) {
	n := nonce()
	require.Len(t, n, nonceLen)
	for i := 0; i < len(n); i++ {
		b := n[i]
		ok := ('0' <= b && b <= '9') || ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z')
		assert.True(t, ok, "nonce byte %q at index %d is not alphanumeric", b, i)
	}
}

func TestNonceUniqueness(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		n := nonce()
		require.Len(t, n, nonceLen)
		require.False(t, seen[n], "duplicate nonce generated")
		seen[n] = true
	}
}

func TestNonceConcurrent(t *testing.T) {
	// The generator must be safe for use from multiple goroutines.
	const workers = 8
	done := make(chan string, workers)
	for i := 0; i < workers; i++ {
		go func() {
			done <- nonce()
		}()
	}
	seen := make(map[string]bool, workers)
	for i := 0; i < workers; i++ {
		n := <-done
		assert.False(t, seen[n])
		seen[n] = true
	}
}
