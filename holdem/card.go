package holdem

import (
	"fmt"
	"strings"
)

// Card packs suit*13+rank into a single int32.
// Ranks run 0 (deuce) to 12 (ace), suits 0 (spade) to 3 (club).
type Card int32

const (
	SUIT_SPADE   = int16(0)
	SUIT_HEART   = int16(1)
	SUIT_DIAMOND = int16(2)
	SUIT_CLUB    = int16(3)
)

const (
	RANK_TEN   = int16(8)
	RANK_JACK  = int16(9)
	RANK_QUEEN = int16(10)
	RANK_KING  = int16(11)
	RANK_ACE   = int16(12)
)

func NewCard(rank, suit int16) Card {
	return Card(suit*13 + rank)
}

func (card Card) Rank() int16 {
	return int16(card % 13)
}

func (card Card) Suit() int16 {
	return int16(card / 13)
}

const rankChars = "23456789TJQKA"
const suitChars = "shdc"

// ParseCard reads the two-character rank+suit form, e.g. "As" or "7h".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("card %q: want rank+suit, e.g. \"As\"", s)
	}
	rank := strings.IndexByte(rankChars, strings.ToUpper(s)[0])
	if rank < 0 {
		return 0, fmt.Errorf("card %q: unknown rank %q", s, s[0])
	}
	suit := strings.IndexByte(suitChars, strings.ToLower(s)[1])
	if suit < 0 {
		return 0, fmt.Errorf("card %q: unknown suit %q", s, s[1])
	}
	return NewCard(int16(rank), int16(suit)), nil
}

// MustCard is ParseCard for literals in tests and tables.
func MustCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (card Card) String() string {
	r := card.Rank()
	s := card.Suit()
	if r < 0 || r > 12 || s < 0 || s > 3 {
		return fmt.Sprintf("Card(%d)", int32(card))
	}
	return string(rankChars[r]) + string(suitChars[s])
}

// ParseCards reads a slice of two-character cards, rejecting duplicates.
func ParseCards(ss []string) ([]Card, error) {
	cards := make([]Card, 0, len(ss))
	seen := make(map[Card]bool, len(ss))
	for _, s := range ss {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate card %q", s)
		}
		seen[c] = true
		cards = append(cards, c)
	}
	return cards, nil
}
