package holdem

import (
	"fmt"

	"github.com/paulhankin/poker"
)

var pokerSuits = [4]poker.Suit{poker.Spade, poker.Heart, poker.Diamond, poker.Club}

func pokerCard(c Card) (poker.Card, error) {
	r, s := c.Rank(), c.Suit()
	if r < 0 || r > 12 || s < 0 || s > 3 {
		return 0, fmt.Errorf("card %d out of range", int32(c))
	}
	rank := poker.Rank(r + 2)
	if r == RANK_ACE {
		rank = poker.Rank(1)
	}
	return poker.MakeCard(pokerSuits[s], rank)
}

func evalBest(cards []poker.Card) (int16, error) {
	switch len(cards) {
	case 5:
		hand := [5]poker.Card{cards[0], cards[1], cards[2], cards[3], cards[4]}
		return poker.Eval5(&hand), nil
	case 6:
		// Best five of six.
		best := int16(-32768)
		for skip := 0; skip < 6; skip++ {
			var hand [5]poker.Card
			k := 0
			for i, c := range cards {
				if i == skip {
					continue
				}
				hand[k] = c
				k++
			}
			if v := poker.Eval5(&hand); v > best {
				best = v
			}
		}
		return best, nil
	case 7:
		hand := [7]poker.Card{cards[0], cards[1], cards[2], cards[3], cards[4], cards[5], cards[6]}
		return poker.Eval7(&hand), nil
	}
	return 0, fmt.Errorf("cannot evaluate %d cards", len(cards))
}

// MadeHandStrength returns the fraction of opponent hole-card combinations
// this hand beats on the visible board, counting ties as half. It is an
// exhaustive showdown enumeration, not a draw-equity simulation, which keeps
// it deterministic and fast enough for one call per decision point.
func MadeHandStrength(hole [2]Card, board []Card) (float64, error) {
	if len(board) < 3 || len(board) > 5 {
		return 0, fmt.Errorf("board has %d cards, want 3..5", len(board))
	}

	used := map[Card]bool{hole[0]: true, hole[1]: true}
	boardPoker := make([]poker.Card, 0, 7)
	for _, c := range board {
		if used[c] {
			return 0, fmt.Errorf("card %s appears twice", c)
		}
		used[c] = true
		pc, err := pokerCard(c)
		if err != nil {
			return 0, err
		}
		boardPoker = append(boardPoker, pc)
	}

	h0, err := pokerCard(hole[0])
	if err != nil {
		return 0, err
	}
	h1, err := pokerCard(hole[1])
	if err != nil {
		return 0, err
	}
	ours, err := evalBest(append(append([]poker.Card{}, boardPoker...), h0, h1))
	if err != nil {
		return 0, err
	}

	remaining := make([]Card, 0, 52-len(used))
	for suit := int16(0); suit < 4; suit++ {
		for rank := int16(0); rank < 13; rank++ {
			c := NewCard(rank, suit)
			if !used[c] {
				remaining = append(remaining, c)
			}
		}
	}

	var wins, ties, total float64
	for i := 0; i < len(remaining); i++ {
		for j := i + 1; j < len(remaining); j++ {
			o0, err := pokerCard(remaining[i])
			if err != nil {
				return 0, err
			}
			o1, err := pokerCard(remaining[j])
			if err != nil {
				return 0, err
			}
			theirs, err := evalBest(append(append([]poker.Card{}, boardPoker...), o0, o1))
			if err != nil {
				return 0, err
			}
			total++
			if ours > theirs {
				wins++
			} else if ours == theirs {
				ties++
			}
		}
	}
	if total == 0 {
		return 0, fmt.Errorf("no opponent combinations")
	}
	return (wins + 0.5*ties) / total, nil
}
