package diesir

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Rand is a source of die rolls. *rand.Rand from math/rand/v2 implements it.
type Rand interface {
	// Int64N returns a uniformly distributed value in [0, n). The evaluator
	// only calls it with positive n.
	Int64N(n int64) int64
}

// CryptoRand returns a new Rand keyed from crypto/rand. The stream is
// ChaCha8, which is cryptographically strong.
func CryptoRand() Rand {
	var key [32]byte
	// Read never returns an error.
	crand.Read(key[:])
	return rand.New(rand.NewChaCha8(key))
}

// SeededRand returns a Rand that produces the same rolls for the same seed.
func SeededRand(seed uint64) Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return rand.New(rand.NewChaCha8(key))
}
