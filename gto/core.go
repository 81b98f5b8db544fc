package gto

import (
	"errors"
	"math/rand"
	"sync/atomic"

	"gto-advisor/holdem"
	"gto-advisor/metrics"
)

// CoreStats counts what the core did, independent of the prometheus
// sink, so tests can assert on recovered failures directly.
type CoreStats struct {
	Decisions      atomic.Int64
	RangeFallbacks atomic.Int64
}

// GTOCore is the pure game-theoretic side of the advisor: one synchronous
// computation per decision point, no I/O, no retained per-hand state.
type GTOCore struct {
	cfg    *Config
	ranges *RangeManager
	sizing *SizingOptimizer
	freq   *FrequencyCalculator
	stats  *CoreStats
}

func NewGTOCore(cfg *Config, ranges *RangeManager, rng *rand.Rand) *GTOCore {
	return &GTOCore{
		cfg:    cfg,
		ranges: ranges,
		sizing: NewSizingOptimizer(cfg),
		freq:   NewFrequencyCalculator(cfg, rng),
		stats:  &CoreStats{},
	}
}

func (c *GTOCore) Stats() *CoreStats {
	return c.stats
}

// rangeClass picks the preflop range family from the betting so far:
// an unraised pot consults the opening range, a single raise the
// continuing range, a reraised pot the 4bet range.
func rangeClass(ctx *DecisionContext) ActionClass {
	switch ctx.RaiseCount() {
	case 0:
		return CLASS_OPEN
	case 1:
		return CLASS_DEFEND
	}
	return CLASS_4BET
}

// sizingClass is the raise family matching the same betting state: the
// aggressive action in an unraised pot is an open, over one raise a
// 3bet, over more a 4bet.
func sizingClass(ctx *DecisionContext) ActionClass {
	switch ctx.RaiseCount() {
	case 0:
		return CLASS_OPEN
	case 1:
		return CLASS_3BET
	}
	return CLASS_4BET
}

// rangeOrWidest resolves a table, substituting the widest configured
// range when the pair is unconfigured. The substitution is recoverable
// policy: it is logged, counted and traced, never surfaced as an error.
func (c *GTOCore) rangeOrWidest(ctx *DecisionContext, class ActionClass, trace *[]ReasonFactor) *Range {
	r, err := c.ranges.RangeFor(ctx.Position, class)
	if err == nil {
		return r
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		logRangeFallback(err, ctx.Position, class)
		metrics.Observer.IncrementFallback(ctx.Position.String(), class.String())
		c.stats.RangeFallbacks.Add(1)
		*trace = append(*trace, ReasonFactor{Name: "range_fallback", Value: 1})
		return c.ranges.WidestRange()
	}
	return c.ranges.WidestRange()
}

// CalculateGTOAction runs the full street state machine for one context
// and returns a sampled action, its size and the reasoning trace.
// Contract violations in the context surface as InputError; missing
// range tables never do.
func (c *GTOCore) CalculateGTOAction(ctx *DecisionContext) (*GTOResult, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	c.stats.Decisions.Add(1)

	trace := make([]ReasonFactor, 0, 8)
	texture := holdem.TEXTURE_DRY

	var strength float64
	if ctx.Street == holdem.STREET_PREFLOP {
		r := c.rangeOrWidest(ctx, rangeClass(ctx), &trace)
		strength = c.ranges.StrengthOf(ctx.Category(), r)
		trace = append(trace, ReasonFactor{Name: "range_strength", Value: strength})
	} else {
		texture = holdem.EvaluateTexture(ctx.CommunityCards)
		trace = append(trace, ReasonFactor{Name: "board_coordination", Value: holdem.Coordination(ctx.CommunityCards)})

		made, err := holdem.MadeHandStrength(ctx.HoleCards, ctx.CommunityCards)
		if err != nil {
			return nil, inputErrorf("hand evaluation: %v", err)
		}
		trace = append(trace, ReasonFactor{Name: "made_hand_strength", Value: made})

		r := c.rangeOrWidest(ctx, CLASS_DEFEND, &trace)
		rangeStrength := c.ranges.StrengthOf(ctx.Category(), r)
		trace = append(trace, ReasonFactor{Name: "range_strength", Value: rangeStrength})

		// Showdown equity dominates, range position refines.
		strength = 0.6*made + 0.4*rangeStrength

		if equity, err := c.ranges.RangeVsRangeEquity(r, c.ranges.WidestRange(), ctx.CommunityCards); err == nil {
			trace = append(trace, ReasonFactor{Name: "range_equity", Value: equity})
		}
	}

	trace = append(trace, ReasonFactor{Name: "hand_strength", Value: strength})
	trace = append(trace, ReasonFactor{Name: "position_advantage", Value: ctx.Position.Advantage()})
	if ctx.CallAmount > 0 && ctx.PotSize+ctx.CallAmount > 0 {
		trace = append(trace, ReasonFactor{
			Name:  "pot_odds",
			Value: float64(ctx.CallAmount) / float64(ctx.PotSize+ctx.CallAmount),
		})
	}

	freqs := c.freq.CalculateMixedStrategy(ctx, strength, texture)
	action, err := c.freq.SampleAction(freqs)
	if err != nil {
		return nil, err
	}

	amount := 0
	switch {
	case action.Aggressive():
		var size SizingRecommendation
		if ctx.Street == holdem.STREET_RIVER && strength >= 0.9 {
			// Polarized river line: the near-nuts bet past the pot.
			size = c.sizing.OverbetSize(ctx)
		} else {
			size = c.sizing.RecommendSize(ctx, sizingClass(ctx), texture)
		}
		amount = size.Amount
		trace = append(trace, ReasonFactor{Name: "pot_fraction", Value: size.PotFraction})
		if la, ok := ctx.Legal(action); ok && la.MaxAmount > 0 && amount > la.MaxAmount {
			amount = la.MaxAmount
		}
	case action == holdem.ACTION_CALL:
		amount = ctx.CallAmount
	}

	chosen := freqs.Frequencies[action]
	trace = append(trace, ReasonFactor{Name: "action_frequency", Value: chosen})

	metrics.Observer.IncrementDecision(ctx.Street.String(), action.String())

	return &GTOResult{
		Action:      action,
		Amount:      amount,
		Frequencies: freqs,
		Reasoning:   trace,
		Confidence:  c.cfg.ConfidenceFloor + c.cfg.ConfidenceSlope*chosen,
	}, nil
}
