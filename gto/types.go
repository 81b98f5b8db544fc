package gto

import (
	"gto-advisor/holdem"
)

// ActionClass names the preflop range family a decision draws from.
type ActionClass int

const (
	CLASS_OPEN   = ActionClass(0)
	CLASS_3BET   = ActionClass(1)
	CLASS_4BET   = ActionClass(2)
	CLASS_DEFEND = ActionClass(3)
)

var Class2string = map[ActionClass]string{
	CLASS_OPEN:   "open",
	CLASS_3BET:   "3bet",
	CLASS_4BET:   "4bet",
	CLASS_DEFEND: "defend",
}

func (c ActionClass) String() string {
	return Class2string[c]
}

// LegalAction is one entry of the table engine's legal-action list.
// Min/Max amounts are only meaningful for bet/raise kinds.
type LegalAction struct {
	Kind      holdem.ActionKind
	MinAmount int
	MaxAmount int
}

// OpponentAction is one prior action by an opponent in this hand.
type OpponentAction struct {
	Kind   holdem.ActionKind
	Amount int
}

// DecisionContext is the immutable snapshot of a single decision point.
// It is built fresh per decision and discarded afterwards.
type DecisionContext struct {
	Street          holdem.Street
	Position        holdem.Position
	HoleCards       [2]holdem.Card
	CommunityCards  []holdem.Card
	PotSize         int
	StackSize       int
	CallAmount      int
	LegalActions    []LegalAction
	OpponentActions []OpponentAction
	ActiveOpponents int
}

// Validate enforces the context contract. Violations are caller bugs
// and surface as InputError.
func (c *DecisionContext) Validate() error {
	if c.HoleCards[0] == c.HoleCards[1] {
		return inputErrorf("duplicate hole card %s", c.HoleCards[0])
	}
	want := c.Street.BoardCards()
	if len(c.CommunityCards) != want {
		return inputErrorf("street %s wants %d community cards, got %d",
			c.Street, want, len(c.CommunityCards))
	}
	seen := map[holdem.Card]bool{c.HoleCards[0]: true, c.HoleCards[1]: true}
	for _, card := range c.CommunityCards {
		if seen[card] {
			return inputErrorf("duplicate card %s", card)
		}
		seen[card] = true
	}
	if c.PotSize < 0 || c.StackSize < 0 || c.CallAmount < 0 {
		return inputErrorf("negative pot, stack or call amount")
	}
	if c.ActiveOpponents < 1 {
		return inputErrorf("need at least one active opponent")
	}
	if len(c.LegalActions) == 0 {
		return inputErrorf("empty legal-action list")
	}
	return nil
}

// Legal returns the legal-action entry for kind, if present.
func (c *DecisionContext) Legal(kind holdem.ActionKind) (LegalAction, bool) {
	for _, a := range c.LegalActions {
		if a.Kind == kind {
			return a, true
		}
	}
	return LegalAction{}, false
}

// MinRaise returns the smallest legal raise/bet amount, or 0 when no
// aggressive action is available.
func (c *DecisionContext) MinRaise() int {
	for _, a := range c.LegalActions {
		if a.Kind.Aggressive() {
			return a.MinAmount
		}
	}
	return 0
}

// Category is the starting-hand class of the hole cards.
func (c *DecisionContext) Category() holdem.HandCategory {
	return holdem.CategoryOf(c.HoleCards[0], c.HoleCards[1])
}

// RaiseCount counts opponent raises this hand, classifying the preflop spot.
func (c *DecisionContext) RaiseCount() int {
	n := 0
	for _, a := range c.OpponentActions {
		if a.Kind == holdem.ACTION_RAISE || a.Kind == holdem.ACTION_BET || a.Kind == holdem.ACTION_ALLIN {
			n++
		}
	}
	return n
}

// SizingRecommendation resolves a pot fraction into a legal chip amount.
type SizingRecommendation struct {
	PotFraction float64
	Amount      int
	AllIn       bool
}

// FrequencyResult is a normalized mixed strategy over the legal actions,
// with its balance metrics.
type FrequencyResult struct {
	Frequencies    map[holdem.ActionKind]float64
	BalanceScore   float64
	Predictability float64
	Exploitability float64
}

// ReasonFactor is one named contribution to a decision, in the order the
// factors were applied.
type ReasonFactor struct {
	Name  string
	Value float64
}

// GTOResult is the advice returned to the caller. The reasoning trace is
// structured data meant to feed an explanation layer verbatim.
type GTOResult struct {
	Action      holdem.ActionKind
	Amount      int
	Frequencies *FrequencyResult
	Reasoning   []ReasonFactor
	Confidence  float64
}

// Recommendation is an action proposal tagged with its source, used to
// blend the GTO line with an externally supplied exploitative line.
type RecommendationSource int

const (
	SOURCE_GTO          = RecommendationSource(0)
	SOURCE_EXPLOITATIVE = RecommendationSource(1)
)

type Recommendation struct {
	Source    RecommendationSource
	Action    holdem.ActionKind
	Amount    int
	Rationale string
}

// StrategyMode selects how the advisor combines its two sources.
type StrategyMode int

const (
	MODE_GTO_ONLY          = StrategyMode(0)
	MODE_EXPLOITATIVE_ONLY = StrategyMode(1)
	MODE_HYBRID            = StrategyMode(2)
)

var Mode2string = map[StrategyMode]string{
	MODE_GTO_ONLY:          "gto_only",
	MODE_EXPLOITATIVE_ONLY: "exploitative_only",
	MODE_HYBRID:            "hybrid",
}

func (m StrategyMode) String() string {
	return Mode2string[m]
}

// ParseStrategyMode maps the configuration string onto a mode, failing
// with InputError for anything outside the three known values.
func ParseStrategyMode(s string) (StrategyMode, error) {
	for mode, name := range Mode2string {
		if name == s {
			return mode, nil
		}
	}
	return 0, inputErrorf("unknown strategy mode %q", s)
}
