package gto

import (
	"math"

	"gto-advisor/holdem"
)

// SizingOptimizer turns a decision context into a chip amount. It is a
// pure function of the context and its policy table: no state survives
// between calls.
type SizingOptimizer struct {
	cfg *Config
}

func NewSizingOptimizer(cfg *Config) *SizingOptimizer {
	return &SizingOptimizer{cfg: cfg}
}

// RecommendSize picks a pot fraction for the spot and resolves it into a
// legal amount. Preflop fractions come from the action class (raise sizes
// in pot multiples of the open/3bet/4bet charts), postflop from board
// texture, both scaled by stack depth and position.
func (s *SizingOptimizer) RecommendSize(ctx *DecisionContext, class ActionClass, texture holdem.BoardTexture) SizingRecommendation {
	fraction := s.baseFraction(ctx, class, texture)
	fraction *= s.stackDepthFactor(ctx)
	fraction *= s.cfg.PositionSizing[ctx.Position]

	minRaise := ctx.MinRaise()
	if ctx.StackSize <= minRaise {
		return SizingRecommendation{PotFraction: fraction, Amount: ctx.StackSize, AllIn: true}
	}

	amount := int(math.Round(float64(ctx.PotSize) * fraction))
	if amount < minRaise {
		amount = minRaise
	}
	if amount >= ctx.StackSize {
		return SizingRecommendation{PotFraction: fraction, Amount: ctx.StackSize, AllIn: true}
	}
	return SizingRecommendation{PotFraction: fraction, Amount: amount}
}

func (s *SizingOptimizer) baseFraction(ctx *DecisionContext, class ActionClass, texture holdem.BoardTexture) float64 {
	if ctx.Street == holdem.STREET_PREFLOP {
		switch class {
		case CLASS_3BET:
			if ctx.Position.InPosition() {
				return s.cfg.ThreeBetIP
			}
			return s.cfg.ThreeBetOOP
		case CLASS_4BET:
			return s.cfg.FourBetFraction
		}
		return s.cfg.OpenFraction
	}
	return s.cfg.TextureFraction[texture]
}

// stackDepthFactor reads the stack-to-pot ratio: shallow stacks push the
// size toward all-in, deep stacks allow thinner bets on later streets.
func (s *SizingOptimizer) stackDepthFactor(ctx *DecisionContext) float64 {
	if ctx.PotSize <= 0 {
		return 1.0
	}
	spr := float64(ctx.StackSize) / float64(ctx.PotSize)
	switch {
	case spr < s.cfg.ShallowSPR:
		return s.cfg.ShallowSizingFactor
	case spr > s.cfg.DeepSPR:
		return s.cfg.DeepSizingFactor
	}
	return 1.0
}

// OverbetSize is the polarized line on locked boards: a fixed multiple
// of the pot, clamped the same way as RecommendSize.
func (s *SizingOptimizer) OverbetSize(ctx *DecisionContext) SizingRecommendation {
	minRaise := ctx.MinRaise()
	if ctx.StackSize <= minRaise {
		return SizingRecommendation{PotFraction: s.cfg.OverbetFraction, Amount: ctx.StackSize, AllIn: true}
	}
	amount := int(math.Round(float64(ctx.PotSize) * s.cfg.OverbetFraction))
	if amount < minRaise {
		amount = minRaise
	}
	if amount >= ctx.StackSize {
		return SizingRecommendation{PotFraction: s.cfg.OverbetFraction, Amount: ctx.StackSize, AllIn: true}
	}
	return SizingRecommendation{PotFraction: s.cfg.OverbetFraction, Amount: amount}
}
