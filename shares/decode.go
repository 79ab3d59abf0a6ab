package shares

import pphErrors "github.com/deepali-gupta/polypasswordhasher/errors"

// decodeSymbol recovers a single secret byte from n (x, y) points that
// were generated by evaluating a degree-(k-1) polynomial at the x
// coordinates, where up to maxErrors of the y values may be wrong.
//
// It implements Berlekamp-Welch decoding: find an error locator E(x) of
// degree t and a polynomial Q(x) of degree < k+t such that
// Q(x_i) = y_i * E(x_i) for every submitted point. Q/E is then the
// original degree-(k-1) polynomial wherever E has no root, so dividing
// them out and evaluating at zero yields the secret byte. t is tried
// from maxErrors down to 0; the first t for which the linear system is
// solvable and the division is exact is accepted.
func decodeSymbol(xs, ys []byte, k, maxErrors int) (byte, *pphErrors.Error) {
	n := len(xs)
	if n < k {
		return 0, pphErrors.ErrInsufficientShares
	}

	for t := maxErrors; t >= 0; t-- {
		unknowns := k + 2*t
		if unknowns > n {
			continue
		}

		// Columns 0..k+t-1 are Q's coefficients, columns k+t..k+2t-1 are
		// E's coefficients below its monic degree-t term.
		a := make([][]byte, n)
		b := make([]byte, n)
		for i := 0; i < n; i++ {
			row := make([]byte, unknowns)
			xi := xs[i]
			for j := 0; j < k+t; j++ {
				row[j] = pow(xi, j)
			}
			for j := 0; j < t; j++ {
				row[k+t+j] = mul(ys[i], pow(xi, j))
			}
			a[i] = row
			// Q(x_i) - y_i*(e-part) = y_i * x_i^t  (monic term moved to rhs)
			b[i] = mul(ys[i], pow(xi, t))
		}

		solution, ok := solveConsistent(a, b, unknowns)
		if !ok {
			continue
		}

		q := polynomial(solution[:k+t])
		e := make(polynomial, t+1)
		copy(e, solution[k+t:])
		e[t] = 1 // monic leading term

		quotient, remainder, ok := divide(q, e)
		if !ok || !isZero(remainder) || len(quotient) > k {
			continue
		}

		return evalPadded(quotient, 0), nil
	}

	return 0, pphErrors.ErrUnrecoverableShares
}

func isZero(p polynomial) bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

func evalPadded(p polynomial, x byte) byte {
	if len(p) == 0 {
		return 0
	}
	return p.eval(x)
}

// divide performs polynomial long division p / d over GF(2^8), returning
// the quotient and remainder. ok is false if d is the zero polynomial.
func divide(p, d polynomial) (quotient, remainder polynomial, ok bool) {
	dDeg := degree(d)
	if dDeg < 0 {
		return nil, nil, false
	}

	rem := append(polynomial(nil), p...)
	pDeg := degree(rem)
	if pDeg < dDeg {
		return polynomial{0}, rem, true
	}

	q := make(polynomial, pDeg-dDeg+1)
	leadInv := inv(d[dDeg])

	for pDeg >= dDeg && !isZero(rem) {
		pDeg = degree(rem)
		if pDeg < dDeg {
			break
		}
		coeff := mul(rem[pDeg], leadInv)
		shift := pDeg - dDeg
		q[shift] = coeff
		for i := 0; i <= dDeg; i++ {
			rem[shift+i] = add(rem[shift+i], mul(coeff, d[i]))
		}
	}

	return q, rem, true
}

// degree returns the highest index of a nonzero coefficient, or -1 for
// the zero polynomial.
func degree(p polynomial) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}
