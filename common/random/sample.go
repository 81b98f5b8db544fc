package random

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"
)

// Sample draws one key from a probability map. Keys are visited in sorted
// order so a seeded generator always reproduces the same draw.
func Sample[K cmp.Ordered](rand *rand.Rand, probs map[K]float64) (K, error) {
	type valueProb struct {
		val  K
		prob float64
	}
	values := make([]valueProb, 0, len(probs))
	sum := 0.0
	for val, prob := range probs {
		values = append(values, valueProb{val, prob})
		sum += prob
	}
	if len(values) == 0 {
		var zero K
		return zero, fmt.Errorf("empty distribution")
	}
	if sum < 1-1e-6 || sum > 1+1e-6 {
		var zero K
		return zero, fmt.Errorf("invalid probs sum != 1")
	}
	slices.SortFunc(values, func(a, b valueProb) int {
		return cmp.Compare(a.val, b.val)
	})

	r := rand.Float64()
	cumulativeProb := 0.0
	for _, vp := range values {
		cumulativeProb += vp.prob
		if r < cumulativeProb {
			return vp.val, nil
		}
	}
	return values[len(values)-1].val, nil
}
