package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GeneratePatientCode generates a random 4-digit patient share code
// (1000-9999). Uniqueness is checked by the caller against the store;
// collisions are retried, not prevented.
func GeneratePatientCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		n = big.NewInt(0)
	}
	return fmt.Sprintf("%04d", n.Int64()+1000)
}
