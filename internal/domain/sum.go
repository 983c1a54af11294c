package domain

// SumOf adds the value of every character in s.
func (r *ReferenceData) SumOf(s string) (int, error) {
	sum := 0
	for _, ch := range s {
		v, err := r.ValueOf(ch)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// LuckyBucket maps a raw sum to the lucky point bucket 1–9 (n mod 9, with 0
// remapped to 9). It is the only rule used to select a lucky point.
func LuckyBucket(n int) int {
	bucket := n % 9
	if bucket == 0 {
		return 9
	}
	return bucket
}

// DisplaySum is the value shown for the second plate group: n itself up to 9,
// otherwise the sum of its decimal digits taken once. The result is not
// reduced further, so 28 displays as 10.
func DisplaySum(n int) int {
	if n <= 9 {
		return n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
