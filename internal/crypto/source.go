package crypto

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// Source picks uniform random indexes. Implementations decide their own thread-safety.
type Source interface {
	// Intn returns a uniform random int in [0, n). n must be positive.
	Intn(n int) (int, error)
}

type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand. It is safe for concurrent use.
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

type seededSource struct {
	r *mrand.Rand
}

// NewSeededSource returns a deterministic Source for reproducible output.
// It is not safe for concurrent use and must never back real credentials.
func NewSeededSource(seed uint64) Source {
	return &seededSource{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Intn(n int) (int, error) {
	return s.r.IntN(n), nil
}
