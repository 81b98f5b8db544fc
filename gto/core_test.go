package gto

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"gto-advisor/holdem"

	"github.com/stretchr/testify/assert"
)

func newCore(seed int64) *GTOCore {
	return NewGTOCore(DefaultConfig(), NewRangeManager(), rand.New(rand.NewSource(seed)))
}

func traceNames(result *GTOResult) []string {
	names := make([]string, 0, len(result.Reasoning))
	for _, f := range result.Reasoning {
		names = append(names, f.Name)
	}
	return names
}

func TestPremiumPairOpensNearAlways(t *testing.T) {
	core := newCore(1)
	ctx := preflopCtx(holdem.POSITION_BTN, [2]holdem.Card{holdem.MustCard("As"), holdem.MustCard("Ah")})

	result, err := core.CalculateGTOAction(ctx)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, result.Frequencies.Frequencies[holdem.ACTION_RAISE], 0.95)
	assert.Equal(t, holdem.ACTION_RAISE, result.Action)
	assert.Greater(t, result.Amount, 0)
}

func TestTrashFoldsNearAlways(t *testing.T) {
	core := newCore(1)
	ctx := preflopCtx(holdem.POSITION_UTG, [2]holdem.Card{holdem.MustCard("7d"), holdem.MustCard("2c")})

	result, err := core.CalculateGTOAction(ctx)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, result.Frequencies.Frequencies[holdem.ACTION_FOLD], 0.95)
	assert.Equal(t, holdem.ACTION_FOLD, result.Action)
	assert.Equal(t, 0, result.Amount)
}

func topPairDefenseCtx() *DecisionContext {
	return &DecisionContext{
		Street:    holdem.STREET_FLOP,
		Position:  holdem.POSITION_BB,
		HoleCards: [2]holdem.Card{holdem.MustCard("Ks"), holdem.MustCard("Qs")},
		CommunityCards: []holdem.Card{
			holdem.MustCard("Kd"), holdem.MustCard("7h"), holdem.MustCard("2c"),
		},
		PotSize:         90,
		StackSize:       910,
		CallAmount:      30,
		LegalActions:    raiseActions(60, 910),
		OpponentActions: []OpponentAction{{Kind: holdem.ACTION_BET, Amount: 30}},
		ActiveOpponents: 1,
	}
}

func TestTopPairNeverFoldsToSmallBet(t *testing.T) {
	core := newCore(1)
	result, err := core.CalculateGTOAction(topPairDefenseCtx())
	assert.NoError(t, err)

	assert.NotContains(t, result.Frequencies.Frequencies, holdem.ACTION_FOLD)
	assert.Greater(t,
		result.Frequencies.Frequencies[holdem.ACTION_CALL],
		result.Frequencies.Frequencies[holdem.ACTION_RAISE])
	assert.NotEqual(t, holdem.ACTION_FOLD, result.Action)
}

func TestPostflopReasoningTrace(t *testing.T) {
	core := newCore(1)
	result, err := core.CalculateGTOAction(topPairDefenseCtx())
	assert.NoError(t, err)

	names := traceNames(result)
	for _, want := range []string{
		"board_coordination",
		"made_hand_strength",
		"range_strength",
		"hand_strength",
		"position_advantage",
		"pot_odds",
		"action_frequency",
	} {
		assert.Contains(t, names, want)
	}
}

func TestConfidenceTracksChosenFrequency(t *testing.T) {
	core := newCore(1)
	cfg := DefaultConfig()
	ctx := preflopCtx(holdem.POSITION_BTN, [2]holdem.Card{holdem.MustCard("As"), holdem.MustCard("Ah")})

	result, err := core.CalculateGTOAction(ctx)
	assert.NoError(t, err)

	want := cfg.ConfidenceFloor + cfg.ConfidenceSlope*result.Frequencies.Frequencies[result.Action]
	assert.InDelta(t, want, result.Confidence, 1e-9)
	assert.GreaterOrEqual(t, result.Confidence, cfg.ConfidenceFloor)
	assert.LessOrEqual(t, result.Confidence, 1.0)
}

func TestRangeFallbackIsRecoveredAndTraced(t *testing.T) {
	core := newCore(1)

	// The BB has no opening range: the core substitutes the widest
	// configured range instead of failing.
	ctx := preflopCtx(holdem.POSITION_BB, [2]holdem.Card{holdem.MustCard("As"), holdem.MustCard("Kh")})

	result, err := core.CalculateGTOAction(ctx)
	assert.NoError(t, err)
	assert.Contains(t, traceNames(result), "range_fallback")
	assert.Equal(t, int64(1), core.Stats().RangeFallbacks.Load())
}

func TestInputErrorsPropagate(t *testing.T) {
	core := newCore(1)

	cases := map[string]*DecisionContext{
		"duplicate hole card": {
			Street:          holdem.STREET_PREFLOP,
			Position:        holdem.POSITION_BTN,
			HoleCards:       [2]holdem.Card{holdem.MustCard("As"), holdem.MustCard("As")},
			PotSize:         15,
			StackSize:       1000,
			LegalActions:    raiseActions(20, 1000),
			ActiveOpponents: 1,
		},
		"board count mismatch": {
			Street:          holdem.STREET_FLOP,
			Position:        holdem.POSITION_BTN,
			HoleCards:       [2]holdem.Card{holdem.MustCard("As"), holdem.MustCard("Kh")},
			CommunityCards:  []holdem.Card{holdem.MustCard("2c"), holdem.MustCard("3c")},
			PotSize:         100,
			StackSize:       1000,
			LegalActions:    raiseActions(20, 1000),
			ActiveOpponents: 1,
		},
		"hole card on board": {
			Street:    holdem.STREET_FLOP,
			Position:  holdem.POSITION_BTN,
			HoleCards: [2]holdem.Card{holdem.MustCard("As"), holdem.MustCard("Kh")},
			CommunityCards: []holdem.Card{
				holdem.MustCard("As"), holdem.MustCard("3c"), holdem.MustCard("9d"),
			},
			PotSize:         100,
			StackSize:       1000,
			LegalActions:    raiseActions(20, 1000),
			ActiveOpponents: 1,
		},
		"no opponents": {
			Street:          holdem.STREET_PREFLOP,
			Position:        holdem.POSITION_BTN,
			HoleCards:       [2]holdem.Card{holdem.MustCard("As"), holdem.MustCard("Kh")},
			PotSize:         15,
			StackSize:       1000,
			LegalActions:    raiseActions(20, 1000),
			ActiveOpponents: 0,
		},
		"empty legal actions": {
			Street:          holdem.STREET_PREFLOP,
			Position:        holdem.POSITION_BTN,
			HoleCards:       [2]holdem.Card{holdem.MustCard("As"), holdem.MustCard("Kh")},
			PotSize:         15,
			StackSize:       1000,
			ActiveOpponents: 1,
		},
	}
	for name, ctx := range cases {
		_, err := core.CalculateGTOAction(ctx)
		assert.Error(t, err, name)
		var inputErr *InputError
		assert.True(t, errors.As(err, &inputErr), name)
	}
}

func TestDecisionsAreDeterministicForSeed(t *testing.T) {
	ctxs := []*DecisionContext{
		preflopCtx(holdem.POSITION_BTN, [2]holdem.Card{holdem.MustCard("Ad"), holdem.MustCard("Jd")}),
		preflopCtx(holdem.POSITION_CO, [2]holdem.Card{holdem.MustCard("8h"), holdem.MustCard("8c")}),
		topPairDefenseCtx(),
	}

	run := func() []*GTOResult {
		core := newCore(42)
		out := make([]*GTOResult, 0, len(ctxs))
		for _, ctx := range ctxs {
			result, err := core.CalculateGTOAction(ctx)
			assert.NoError(t, err)
			out = append(out, result)
		}
		return out
	}

	first, second := run(), run()
	for i := range first {
		assert.Equal(t, first[i].Action, second[i].Action)
		assert.Equal(t, first[i].Amount, second[i].Amount)
		assert.Equal(t, first[i].Frequencies.Frequencies, second[i].Frequencies.Frequencies)
		assert.Equal(t, first[i].Confidence, second[i].Confidence)
	}
}

func TestFourBetPotUsesNarrowRange(t *testing.T) {
	core := newCore(1)

	// Two raises in front: the 4bet range decides. A medium suited
	// connector is out of it and folds near always.
	ctx := preflopCtx(holdem.POSITION_BTN, [2]holdem.Card{holdem.MustCard("8s"), holdem.MustCard("7s")})
	ctx.OpponentActions = []OpponentAction{
		{Kind: holdem.ACTION_RAISE, Amount: 25},
		{Kind: holdem.ACTION_RAISE, Amount: 80},
	}
	ctx.CallAmount = 80

	result, err := core.CalculateGTOAction(ctx)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, result.Frequencies.Frequencies[holdem.ACTION_FOLD], 0.9)
}

func BenchmarkCalculateGTOAction(b *testing.B) {
	core := newCore(1)
	ctx := topPairDefenseCtx()
	start := time.Now()
	for i := 0; i < b.N; i++ {
		if _, err := core.CalculateGTOAction(ctx); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportMetric(float64(b.N)/time.Since(start).Seconds(), "decisions/s")
}
