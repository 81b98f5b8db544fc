package gto

import (
	"testing"

	"gto-advisor/holdem"

	"github.com/stretchr/testify/assert"
)

func raiseActions(minAmount, maxAmount int) []LegalAction {
	return []LegalAction{
		{Kind: holdem.ACTION_FOLD},
		{Kind: holdem.ACTION_CALL},
		{Kind: holdem.ACTION_RAISE, MinAmount: minAmount, MaxAmount: maxAmount},
	}
}

func flopCtx(position holdem.Position, pot, stack int) *DecisionContext {
	return &DecisionContext{
		Street:   holdem.STREET_FLOP,
		Position: position,
		HoleCards: [2]holdem.Card{
			holdem.MustCard("Ks"), holdem.MustCard("Qs"),
		},
		CommunityCards: []holdem.Card{
			holdem.MustCard("Kd"), holdem.MustCard("7h"), holdem.MustCard("2c"),
		},
		PotSize:         pot,
		StackSize:       stack,
		LegalActions:    raiseActions(20, stack),
		ActiveOpponents: 1,
	}
}

func TestRecommendSizeByTexture(t *testing.T) {
	s := NewSizingOptimizer(DefaultConfig())
	// HJ has a neutral position multiplier, SPR 10 a neutral depth factor.
	ctx := flopCtx(holdem.POSITION_HJ, 100, 1000)

	dry := s.RecommendSize(ctx, CLASS_OPEN, holdem.TEXTURE_DRY)
	dynamic := s.RecommendSize(ctx, CLASS_OPEN, holdem.TEXTURE_DYNAMIC)
	wet := s.RecommendSize(ctx, CLASS_OPEN, holdem.TEXTURE_WET)

	assert.Equal(t, 33, dry.Amount)
	assert.Equal(t, 55, dynamic.Amount)
	assert.Equal(t, 75, wet.Amount)
	assert.Less(t, dry.Amount, dynamic.Amount)
	assert.Less(t, dynamic.Amount, wet.Amount)
}

func TestRecommendSizeStackDepth(t *testing.T) {
	s := NewSizingOptimizer(DefaultConfig())

	shallow := s.RecommendSize(flopCtx(holdem.POSITION_HJ, 100, 500), CLASS_OPEN, holdem.TEXTURE_DRY)
	neutral := s.RecommendSize(flopCtx(holdem.POSITION_HJ, 100, 1000), CLASS_OPEN, holdem.TEXTURE_DRY)
	deep := s.RecommendSize(flopCtx(holdem.POSITION_HJ, 100, 5000), CLASS_OPEN, holdem.TEXTURE_DRY)

	assert.Greater(t, shallow.Amount, neutral.Amount)
	assert.Less(t, deep.Amount, neutral.Amount)
}

func TestRecommendSizePositionFactor(t *testing.T) {
	s := NewSizingOptimizer(DefaultConfig())

	btn := s.RecommendSize(flopCtx(holdem.POSITION_BTN, 100, 1000), CLASS_OPEN, holdem.TEXTURE_DRY)
	bb := s.RecommendSize(flopCtx(holdem.POSITION_BB, 100, 1000), CLASS_OPEN, holdem.TEXTURE_DRY)

	assert.Greater(t, btn.Amount, bb.Amount)
}

func TestRecommendSizeClampsToMinRaise(t *testing.T) {
	s := NewSizingOptimizer(DefaultConfig())
	ctx := flopCtx(holdem.POSITION_HJ, 10, 1000)
	ctx.LegalActions = raiseActions(40, 1000)

	rec := s.RecommendSize(ctx, CLASS_OPEN, holdem.TEXTURE_DRY)
	assert.Equal(t, 40, rec.Amount)
	assert.False(t, rec.AllIn)
}

func TestRecommendSizeAllIn(t *testing.T) {
	s := NewSizingOptimizer(DefaultConfig())

	// Stack no larger than the minimum raise degrades to all-in.
	ctx := flopCtx(holdem.POSITION_HJ, 100, 30)
	ctx.LegalActions = raiseActions(30, 30)
	rec := s.RecommendSize(ctx, CLASS_OPEN, holdem.TEXTURE_WET)
	assert.True(t, rec.AllIn)
	assert.Equal(t, 30, rec.Amount)

	// A resolved amount past the stack also becomes all-in.
	big := flopCtx(holdem.POSITION_HJ, 1000, 200)
	big.LegalActions = raiseActions(50, 200)
	rec = s.RecommendSize(big, CLASS_OPEN, holdem.TEXTURE_WET)
	assert.True(t, rec.AllIn)
	assert.Equal(t, 200, rec.Amount)
}

func TestRecommendSizePreflopClasses(t *testing.T) {
	s := NewSizingOptimizer(DefaultConfig())
	ctx := &DecisionContext{
		Street:   holdem.STREET_PREFLOP,
		Position: holdem.POSITION_HJ,
		HoleCards: [2]holdem.Card{
			holdem.MustCard("As"), holdem.MustCard("Ah"),
		},
		PotSize:         100,
		StackSize:       1000,
		LegalActions:    raiseActions(20, 1000),
		ActiveOpponents: 1,
	}

	open := s.RecommendSize(ctx, CLASS_OPEN, holdem.TEXTURE_DRY)
	threeBet := s.RecommendSize(ctx, CLASS_3BET, holdem.TEXTURE_DRY)

	assert.Greater(t, threeBet.Amount, open.Amount)
	for _, rec := range []SizingRecommendation{open, threeBet} {
		assert.GreaterOrEqual(t, rec.Amount, ctx.MinRaise())
		assert.LessOrEqual(t, rec.Amount, ctx.StackSize)
	}
}

func TestThreeBetLargerOutOfPosition(t *testing.T) {
	s := NewSizingOptimizer(DefaultConfig())
	cfg := DefaultConfig()
	assert.Greater(t, cfg.ThreeBetOOP, cfg.ThreeBetIP)

	ip := &DecisionContext{
		Street:          holdem.STREET_PREFLOP,
		Position:        holdem.POSITION_BTN,
		HoleCards:       [2]holdem.Card{holdem.MustCard("As"), holdem.MustCard("Ah")},
		PotSize:         100,
		StackSize:       1500,
		LegalActions:    raiseActions(20, 1500),
		ActiveOpponents: 1,
	}
	oop := &DecisionContext{
		Street:          holdem.STREET_PREFLOP,
		Position:        holdem.POSITION_SB,
		HoleCards:       [2]holdem.Card{holdem.MustCard("As"), holdem.MustCard("Ah")},
		PotSize:         100,
		StackSize:       1500,
		LegalActions:    raiseActions(20, 1500),
		ActiveOpponents: 1,
	}

	ipRec := s.RecommendSize(ip, CLASS_3BET, holdem.TEXTURE_DRY)
	oopRec := s.RecommendSize(oop, CLASS_3BET, holdem.TEXTURE_DRY)
	assert.Greater(t, oopRec.PotFraction/DefaultConfig().PositionSizing[holdem.POSITION_SB],
		ipRec.PotFraction/DefaultConfig().PositionSizing[holdem.POSITION_BTN])
}

func TestOverbetSize(t *testing.T) {
	s := NewSizingOptimizer(DefaultConfig())
	ctx := flopCtx(holdem.POSITION_HJ, 100, 1000)

	rec := s.OverbetSize(ctx)
	assert.Equal(t, 125, rec.Amount)
	assert.False(t, rec.AllIn)
}
