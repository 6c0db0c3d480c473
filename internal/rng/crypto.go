package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Crypto is a Generator backed by crypto/rand
// It is the source used when dealing hands outside of tests.
type Crypto struct{}

// Intn returns a random number in [0, n)
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: invalid argument to Intn: %d", n))
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
