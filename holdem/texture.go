package holdem

import "slices"

// BoardTexture buckets the community cards by how many draws they offer.
type BoardTexture int

const (
	TEXTURE_DRY     = BoardTexture(0)
	TEXTURE_DYNAMIC = BoardTexture(1)
	TEXTURE_WET     = BoardTexture(2)
)

var Texture2string = map[BoardTexture]string{
	TEXTURE_DRY:     "dry",
	TEXTURE_DYNAMIC: "dynamic",
	TEXTURE_WET:     "wet",
}

func (t BoardTexture) String() string {
	return Texture2string[t]
}

// Coordination scores straight and flush connectivity of the board in [0,1].
func Coordination(board []Card) float64 {
	if len(board) < 3 {
		return 0
	}
	ranks := make([]int16, 0, len(board))
	for _, c := range board {
		ranks = append(ranks, c.Rank())
	}
	slices.Sort(ranks)

	coordination := 0.0
	for i := 0; i < len(ranks)-1; i++ {
		gap := ranks[i+1] - ranks[i]
		if gap <= 2 {
			coordination += 0.3
		} else if gap <= 3 {
			coordination += 0.15
		}
	}
	if maxSuitCount(board) >= 3 {
		coordination += 0.2
	}
	return min(1.0, coordination)
}

// EvaluateTexture classifies the board as dry, dynamic or wet.
func EvaluateTexture(board []Card) BoardTexture {
	c := Coordination(board)
	if c > 0.7 {
		return TEXTURE_WET
	}
	if c > 0.4 {
		return TEXTURE_DYNAMIC
	}
	return TEXTURE_DRY
}

func maxSuitCount(cards []Card) int {
	counts := [4]int{}
	best := 0
	for _, c := range cards {
		s := c.Suit()
		if s < 0 || s > 3 {
			continue
		}
		counts[s]++
		if counts[s] > best {
			best = counts[s]
		}
	}
	return best
}

// HasFlushDraw reports three or more of one suit among the board cards.
func HasFlushDraw(board []Card) bool {
	return len(board) >= 3 && maxSuitCount(board) >= 3
}

// HasStraightDraw reports three distinct board ranks inside a five-rank
// window, the footprint a straight needs.
func HasStraightDraw(board []Card) bool {
	ranks := make([]int16, 0, len(board))
	for _, c := range board {
		if !slices.Contains(ranks, c.Rank()) {
			ranks = append(ranks, c.Rank())
		}
	}
	if len(ranks) < 3 {
		return false
	}
	slices.Sort(ranks)
	for i := 0; i+2 < len(ranks); i++ {
		if ranks[i+2]-ranks[i] <= 4 {
			return true
		}
	}
	return false
}

// Paired reports a rank appearing at least twice on the board.
func Paired(board []Card) bool {
	counts := map[int16]int{}
	for _, c := range board {
		counts[c.Rank()]++
		if counts[c.Rank()] >= 2 {
			return true
		}
	}
	return false
}

// HasNutBlocker reports whether the hole cards remove top combinations
// from the opponent's continuing range: any ace, or the king of a suit
// that threatens a flush on this board.
func HasNutBlocker(hole [2]Card, board []Card) bool {
	flushSuit := int16(-1)
	if HasFlushDraw(board) {
		counts := [4]int{}
		for _, c := range board {
			counts[c.Suit()]++
		}
		for s, n := range counts {
			if n >= 3 {
				flushSuit = int16(s)
			}
		}
	}
	for _, c := range hole {
		if c.Rank() == RANK_ACE {
			return true
		}
		if c.Rank() == RANK_KING && c.Suit() == flushSuit {
			return true
		}
	}
	return false
}
