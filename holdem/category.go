package holdem

// HandCategory is the canonical 169-grid class of a starting hand:
// "AA" for pairs, "AKs" suited, "AKo" offsuit, high rank first.
type HandCategory string

// CategoryOf maps two hole cards onto their starting-hand class.
func CategoryOf(a, b Card) HandCategory {
	hi, lo := a.Rank(), b.Rank()
	if lo > hi {
		hi, lo = lo, hi
	}
	if hi == lo {
		return HandCategory(string(rankChars[hi]) + string(rankChars[lo]))
	}
	suffix := "o"
	if a.Suit() == b.Suit() {
		suffix = "s"
	}
	return HandCategory(string(rankChars[hi]) + string(rankChars[lo]) + suffix)
}

func (c HandCategory) IsPair() bool {
	return len(c) == 2
}

func (c HandCategory) Suited() bool {
	return len(c) == 3 && c[2] == 's'
}

// Ranks returns the high and low rank of the class, -1 on a malformed class.
func (c HandCategory) Ranks() (int16, int16) {
	if len(c) < 2 {
		return -1, -1
	}
	hi := rankIndex(c[0])
	lo := rankIndex(c[1])
	return hi, lo
}

func rankIndex(b byte) int16 {
	for i := 0; i < len(rankChars); i++ {
		if rankChars[i] == b {
			return int16(i)
		}
	}
	return -1
}

// Score orders hand classes by raw preflop strength. The scale is a
// heuristic, not an equity: ordering and ratios are what callers rely on.
func (c HandCategory) Score() float64 {
	hi, lo := c.Ranks()
	if hi < 0 || lo < 0 {
		return 0
	}
	score := (2*float64(hi) + float64(lo)) / 36.0
	if c.IsPair() {
		score += 0.35
		return score
	}
	if c.Suited() {
		score += 0.05
	}
	gap := hi - lo
	if gap == 1 {
		score += 0.05
	} else if gap == 2 {
		score += 0.03
	}
	if lo >= RANK_TEN {
		score += 0.05
	}
	return score
}

// AllCategories enumerates the full 169-cell grid, pairs first.
func AllCategories() []HandCategory {
	out := make([]HandCategory, 0, 169)
	for hi := int16(12); hi >= 0; hi-- {
		out = append(out, HandCategory(string(rankChars[hi])+string(rankChars[hi])))
	}
	for hi := int16(12); hi >= 1; hi-- {
		for lo := hi - 1; lo >= 0; lo-- {
			base := string(rankChars[hi]) + string(rankChars[lo])
			out = append(out, HandCategory(base+"s"), HandCategory(base+"o"))
		}
	}
	return out
}
