package kernel

// Binomial returns C(n, k), the number of k-element subsets of an n-element
// set, computed exactly with integer arithmetic (no floating-point rounding,
// no Gamma involved). Returns 0 for k < 0 or k > n, matching the usual
// combinatorial convention rather than failing.
//
// Binomial fails with a *DomainError when n < 0.
func Binomial(n, k int) (int64, error) {
	if n < 0 {
		return 0, newDomainError("Binomial", "n must be >= 0, got %d", n)
	}
	if k < 0 || k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k
	}

	var result int64 = 1
	for i := 0; i < k; i++ {
		result = result * int64(n-i) / int64(i+1)
	}
	return result, nil
}

// DoubleFactorial returns n!! = n * (n-2) * (n-4) * ... down to 1 or 2.
// DoubleFactorial(0) and DoubleFactorial(-1) both return 1 by convention.
//
// DoubleFactorial fails with a *DomainError for n < -1.
func DoubleFactorial(n int) (int64, error) {
	if n < -1 {
		return 0, newDomainError("DoubleFactorial", "n must be >= -1, got %d", n)
	}
	if n <= 0 {
		return 1, nil
	}

	var result int64 = 1
	for i := int64(n); i > 1; i -= 2 {
		result *= i
	}
	return result, nil
}

// Factorial returns n! exactly as an int64. Valid for 0 <= n <= 20 (beyond
// that, int64 overflows); callers needing larger N should route through
// Gamma instead, which is what the shape formulas in package shape do.
//
// Factorial fails with a *DomainError for n < 0 or n > 20.
func Factorial(n int) (int64, error) {
	if n < 0 || n > 20 {
		return 0, newDomainError("Factorial", "n must be in [0, 20], got %d", n)
	}
	var result int64 = 1
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}
	return result, nil
}
