// Package draw implements winner selection and the cosmetic spin phase.
package draw

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"
)

// Uniform returns an unbiased integer in [0, n) from crypto/rand.
//
// A plain modulo of a 32-bit value over a non-power-of-two n skews low
// indices, so values at or above the largest multiple of n below 2^32 are
// rejected and redrawn.
func Uniform(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyPool
	}
	if n == 1 {
		return 0, nil
	}
	span := uint64(1) << 32
	limit := span - span%uint64(n)
	var buf [4]byte
	for {
		if _, err := crand.Read(buf[:]); err != nil {
			return 0, fmt.Errorf("read random bytes: %w", err)
		}
		v := uint64(binary.BigEndian.Uint32(buf[:]))
		if v >= limit {
			continue
		}
		return int(v % uint64(n)), nil
	}
}

// Pick selects n distinct tickets from pool without replacement. Every
// remaining ticket has equal probability at each step. The input slice is
// not modified.
func Pick(pool []string, n int) ([]string, error) {
	if n <= 0 || n > len(pool) {
		return nil, ErrEmptyPool
	}
	remaining := append([]string(nil), pool...)
	out := make([]string, 0, n)
	for range n {
		idx, err := Uniform(len(remaining))
		if err != nil {
			return nil, err
		}
		out = append(out, remaining[idx])
		remaining[idx] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}
	return out, nil
}

// Sample returns a display-only subset of size n. It uses the fast
// non-cryptographic source; nothing selected here ever reaches state.
func Sample(pool []string, n int) []string {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}
	shuffled := append([]string(nil), pool...)
	mrand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
