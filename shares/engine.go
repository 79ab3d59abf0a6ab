package shares

import (
	pphErrors "github.com/deepali-gupta/polypasswordhasher/errors"
	"github.com/deepali-gupta/polypasswordhasher/crypto"
)

// Share is one account's contribution toward reconstructing the master
// secret: a share number and the 32 field-element bytes the account's
// polynomial evaluations produced at that number.
type Share struct {
	X int
	Y []byte
}

// Engine holds, for each of the secret's 32 bytes, an independent random
// polynomial of degree Threshold-1 whose constant term is that byte. It
// is only ever held in memory by an unlocked or freshly created Store,
// never persisted.
type Engine struct {
	Threshold    int
	coefficients []polynomial // one polynomial per secret byte
}

// New builds an Engine for the given secret under the given threshold,
// generating Threshold-1 random coefficients per secret byte. Returns
// ErrCryptoRandomGenerationFailed if the CSPRNG fails.
func New(threshold int, secret []byte) (*Engine, *pphErrors.Error) {
	coeffs := make([]polynomial, len(secret))
	for i, b := range secret {
		p := make(polynomial, threshold)
		p[0] = b
		if threshold > 1 {
			random, err := crypto.NewSalt(threshold - 1)
			if err != nil {
				return nil, pphErrors.ErrCryptoRandomGenerationFailed.Wrap(err)
			}
			copy(p[1:], random)
		}
		coeffs[i] = p
	}
	return &Engine{Threshold: threshold, coefficients: coeffs}, nil
}

// ComputeShare evaluates every per-byte polynomial at x, producing the
// 32-byte share value for share number x. x must be in [1, 255]; share
// numbers 0 and -1 are reserved for shielded and bootstrap records.
func (e *Engine) ComputeShare(x int) []byte {
	out := make([]byte, len(e.coefficients))
	for i, p := range e.coefficients {
		out[i] = p.eval(byte(x))
	}
	return out
}

// IsValidShare reports whether shareBytes is exactly what ComputeShare(x)
// would produce, in constant time. Only callable while the engine (and
// therefore the polynomial coefficients) is held in memory, i.e. on an
// unlocked or freshly created store.
func (e *Engine) IsValidShare(x int, shareBytes []byte) bool {
	expected := e.ComputeShare(x)
	return crypto.ConstantTimeEqual(expected, shareBytes)
}

// Recover reconstructs the 32-byte secret from a set of submitted
// shares. At least threshold shares must be present. When more than
// threshold shares are submitted, Recover tolerates up to
// floor((n-threshold)/2) of them being wrong, via Berlekamp-Welch
// decoding; with exactly threshold shares submitted it falls back to
// ordinary polynomial interpolation (equivalent to Berlekamp-Welch with
// zero tolerated errors).
func Recover(threshold int, submitted []Share) ([]byte, *pphErrors.Error) {
	n := len(submitted)
	if n < threshold {
		return nil, pphErrors.ErrInsufficientShares
	}

	width := 0
	for _, s := range submitted {
		if len(s.Y) > width {
			width = len(s.Y)
		}
	}

	xs := make([]byte, n)
	for i, s := range submitted {
		xs[i] = byte(s.X)
	}

	maxErrors := (n - threshold) / 2

	secret := make([]byte, width)
	for pos := 0; pos < width; pos++ {
		ys := make([]byte, n)
		for i, s := range submitted {
			ys[i] = s.Y[pos]
		}
		b, err := decodeSymbol(xs, ys, threshold, maxErrors)
		if err != nil {
			return nil, err
		}
		secret[pos] = b
	}

	return secret, nil
}
