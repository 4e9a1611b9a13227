package bootstrap

import (
	"math"

	"github.com/meenmo/curvelib/curveerr"
)

const brentEps = 2.220446049250313e-16 // float64 machine epsilon

// errNoBracket signals f(a) and f(b) share a sign; the caller may retry with
// a wider bracket before surfacing a ConvergenceError.
var errNoBracket = curveerr.Convergencef("root is not bracketed")

// brent finds a root of f in [a, b] using Brent's method: bisection-safe
// steps refined by secant / inverse quadratic interpolation. Terminates after
// maxIter iterations or once |f| falls below tol, whichever comes first.
func brent(f func(float64) float64, a, b, tol float64, maxIter int) (float64, error) {
	fa, fb := f(a), f(b)
	if (fa > 0 && fb > 0) || (fa < 0 && fb < 0) {
		return 0, errNoBracket
	}

	c, fc := a, fa
	d := b - a
	e := d

	for iter := 0; iter < maxIter; iter++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 := 2.0*brentEps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 || math.Abs(fb) < tol {
			return b, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt inverse quadratic interpolation (secant if a == c).
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2.0 * xm * s
				q = 1.0 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2.0*xm*q*(q-r) - (b-a)*(r-1.0))
				q = (q - 1.0) * (r - 1.0) * (s - 1.0)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3.0*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2.0*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}

	return 0, curveerr.Convergencef("root finder did not converge within %d iterations", maxIter)
}
