package deck

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// RandomStream returns a fresh, unpredictable stream for shuffling.
func RandomStream() cipher.Stream {
	return suite.RandomStream()
}

// SeededStream returns a deterministic stream derived from seed. Two decks
// shuffled with streams built from the same seed end up in the same order.
func SeededStream(seed []byte) cipher.Stream {
	return suite.XOF(seed)
}

// Shuffle reorders the undealt cards with a Fisher-Yates pass driven by
// stream. A nil stream falls back to RandomStream.
func (d *Deck) Shuffle(stream cipher.Stream) {
	if stream == nil {
		stream = RandomStream()
	}
	perm := permutation(len(d.cards), stream)
	tmp := make([]int, len(d.cards))
	for i, p := range perm {
		tmp[i] = d.cards[p]
	}
	d.cards = tmp
}

// Helper function to generate a random permutation of size permSize
func permutation(permSize int, stream cipher.Stream) []int {
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i
	}
	for i := permSize - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
