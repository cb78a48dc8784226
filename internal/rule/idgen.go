package rule

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
)

// DefaultIDPrefix is the literal prefix of generated test IDs.
const DefaultIDPrefix = "tid-"

// suffixLength is the number of random characters after the prefix.
const suffixLength = 8

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// IDGenerator produces values for synthesized test ID attributes.
type IDGenerator interface {
	NextID() string
}

// RandomIDs generates Prefix followed by a short random alphanumeric suffix.
// Uniqueness is best effort; collisions are not detected.
type RandomIDs struct {
	Prefix string
}

// NewRandomIDs returns a RandomIDs using prefix, or DefaultIDPrefix if empty.
func NewRandomIDs(prefix string) *RandomIDs {
	if prefix == "" {
		prefix = DefaultIDPrefix
	}
	return &RandomIDs{Prefix: prefix}
}

// NextID returns a new identifier.
func (g *RandomIDs) NextID() string {
	suffix, err := randomSuffix(suffixLength)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is unavailable
		panic(fmt.Sprintf("generating test id: %v", err))
	}
	return g.Prefix + suffix
}

// randomSuffix returns n characters drawn from alphabet using crypto/rand.
func randomSuffix(n int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generating random number: %w", err)
		}
		buf[i] = alphabet[idx.Int64()]
	}
	return string(buf), nil
}

// SequenceIDs generates Prefix1, Prefix2, ... and is safe for concurrent use.
type SequenceIDs struct {
	Prefix string

	mu   sync.Mutex
	next int
}

// NextID returns the next identifier in the sequence.
func (g *SequenceIDs) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s%d", g.Prefix, g.next)
}
