package gto

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"gto-advisor/holdem"
	"gto-advisor/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// decisionRecord is one advised decision kept for the rolling metrics.
type decisionRecord struct {
	ID             string
	Action         holdem.ActionKind
	BalanceScore   float64
	Predictability float64
	Exploitability float64
}

// PerformanceMetrics is the telemetry snapshot: the latest decision's
// balance numbers plus simple moving averages over the recent window.
type PerformanceMetrics struct {
	LastBalance        float64
	LastPredictability float64
	LastExploitability float64

	RollingBalance        float64
	RollingPredictability float64
	RollingExploitability float64

	Decisions          int64
	RangeFallbacks     int64
	LegalityViolations int64
}

// GTOAdvisor is the facade: it runs the GTO core, blends in an external
// exploitative recommendation per the configured mode, and guarantees
// the returned action is legal for the context.
//
// Mode and weights are mutable shared state under a single-writer lock;
// random draws serialize inside the frequency calculator, so concurrent
// decisions are safe.
type GTOAdvisor struct {
	core *GTOCore

	mutex              sync.RWMutex
	mode               StrategyMode
	gtoWeight          float64
	exploitativeWeight float64
	history            []decisionRecord
	historyLimit       int

	legalityViolations atomic.Int64
}

func NewGTOAdvisor(cfg *Config, ranges *RangeManager, mode StrategyMode, rng *rand.Rand) *GTOAdvisor {
	return &GTOAdvisor{
		core:               NewGTOCore(cfg, ranges, rng),
		mode:               mode,
		gtoWeight:          0.7,
		exploitativeWeight: 0.3,
		historyLimit:       cfg.HistoryLimit,
	}
}

func (a *GTOAdvisor) Core() *GTOCore {
	return a.core
}

// SetStrategyMode switches the blending mode. Unknown modes are caller
// bugs, not clamp targets.
func (a *GTOAdvisor) SetStrategyMode(mode StrategyMode) error {
	if _, ok := Mode2string[mode]; !ok {
		return inputErrorf("unknown strategy mode %d", mode)
	}
	a.mutex.Lock()
	a.mode = mode
	a.mutex.Unlock()
	return nil
}

// UpdateWeights replaces the blend weights. Inputs are clamped to [0,1]
// and renormalized, so the pair always sums to exactly 1 afterwards.
// Two zero inputs reset to an even split.
func (a *GTOAdvisor) UpdateWeights(gtoWeight, exploitativeWeight float64) {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	g, e := clamp(gtoWeight), clamp(exploitativeWeight)
	if g+e == 0 {
		g, e = 0.5, 0.5
	}
	sum := g + e

	a.mutex.Lock()
	a.gtoWeight = g / sum
	a.exploitativeWeight = e / sum
	a.mutex.Unlock()
}

// Weights returns the current blend pair.
func (a *GTOAdvisor) Weights() (gtoWeight, exploitativeWeight float64) {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.gtoWeight, a.exploitativeWeight
}

// GetGTOAdvice is the entry point used once per decision point. The
// exploitative recommendation is optional except in exploitative-only
// mode. The returned action and amount are always legal for the context.
func (a *GTOAdvisor) GetGTOAdvice(ctx *DecisionContext, exploitative *Recommendation) (*GTOResult, error) {
	a.mutex.RLock()
	mode := a.mode
	gtoWeight := a.gtoWeight
	a.mutex.RUnlock()

	var result *GTOResult
	switch mode {
	case MODE_EXPLOITATIVE_ONLY:
		if exploitative == nil {
			return nil, inputErrorf("exploitative-only mode needs an exploitative recommendation")
		}
		if err := ctx.Validate(); err != nil {
			return nil, err
		}
		result = &GTOResult{
			Action:     exploitative.Action,
			Amount:     exploitative.Amount,
			Confidence: 0.5,
			Reasoning:  []ReasonFactor{{Name: "source_exploitative", Value: 1}},
		}

	case MODE_GTO_ONLY:
		gto, err := a.core.CalculateGTOAction(ctx)
		if err != nil {
			return nil, err
		}
		result = gto

	default: // hybrid
		gto, err := a.core.CalculateGTOAction(ctx)
		if err != nil {
			return nil, err
		}
		result = a.blend(gto, exploitative, gtoWeight)
	}

	a.coerceLegal(ctx, result)
	a.record(result)
	return result, nil
}

// blend mixes the two candidate actions as a lottery over sources, not
// over raw frequencies. Agreement short-circuits with averaged amounts.
func (a *GTOAdvisor) blend(gto *GTOResult, exploitative *Recommendation, gtoWeight float64) *GTOResult {
	if exploitative == nil {
		return gto
	}
	if exploitative.Action == gto.Action {
		gto.Amount = (gto.Amount + exploitative.Amount) / 2
		gto.Reasoning = append(gto.Reasoning, ReasonFactor{Name: "blend_agreement", Value: 1})
		return gto
	}
	if a.core.freq.roll() < gtoWeight {
		gto.Reasoning = append(gto.Reasoning, ReasonFactor{Name: "blend_source_gto", Value: gtoWeight})
		return gto
	}
	gto.Action = exploitative.Action
	gto.Amount = exploitative.Amount
	gto.Confidence = 0.5
	gto.Reasoning = append(gto.Reasoning, ReasonFactor{Name: "blend_source_exploitative", Value: 1 - gtoWeight})
	return gto
}

// coerceLegal repairs an illegal action/amount pair in place: raise falls
// back to call, an unaffordable or unavailable call folds, fold decays to
// check when the pot is free. Every repair counts as a legality violation.
func (a *GTOAdvisor) coerceLegal(ctx *DecisionContext, result *GTOResult) {
	from := result.Action

	if result.Action.Aggressive() {
		if la, ok := ctx.Legal(result.Action); ok {
			if la.MinAmount > 0 && result.Amount < la.MinAmount {
				result.Amount = la.MinAmount
			}
			if la.MaxAmount > 0 && result.Amount > la.MaxAmount {
				result.Amount = la.MaxAmount
			}
			if result.Amount <= ctx.StackSize {
				return
			}
		}
		result.Action = holdem.ACTION_CALL
		result.Amount = ctx.CallAmount
	}

	if result.Action == holdem.ACTION_CALL {
		_, callLegal := ctx.Legal(holdem.ACTION_CALL)
		if callLegal && ctx.CallAmount <= ctx.StackSize {
			if from != result.Action {
				a.countViolation(from, result.Action, result)
			}
			result.Amount = ctx.CallAmount
			return
		}
		result.Action = holdem.ACTION_FOLD
		result.Amount = 0
	}

	if result.Action == holdem.ACTION_FOLD {
		if _, ok := ctx.Legal(holdem.ACTION_FOLD); !ok {
			result.Action = holdem.ACTION_CHECK
		}
	}
	if result.Action == holdem.ACTION_CHECK {
		result.Amount = 0
	}

	// Whatever survived the chain must be on the legal list. Anything
	// else, including an unknown kind from a caller recommendation,
	// snaps to the first legal action.
	if _, ok := ctx.Legal(result.Action); !ok && len(ctx.LegalActions) > 0 {
		la := ctx.LegalActions[0]
		result.Action = la.Kind
		switch {
		case la.Kind.Aggressive():
			result.Amount = la.MinAmount
		case la.Kind == holdem.ACTION_CALL:
			result.Amount = ctx.CallAmount
		default:
			result.Amount = 0
		}
	}
	if from != result.Action {
		a.countViolation(from, result.Action, result)
	}
}

func (a *GTOAdvisor) countViolation(from, to holdem.ActionKind, result *GTOResult) {
	a.legalityViolations.Add(1)
	metrics.Observer.IncrementViolation(from.String(), to.String())
	result.Reasoning = append(result.Reasoning, ReasonFactor{Name: "coerced_" + from.String() + "_to_" + to.String(), Value: 1})
	log.Warn().
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("illegal recommendation coerced")
}

// record appends the decision to the rolling history, pruning the oldest
// entries past the configured limit.
func (a *GTOAdvisor) record(result *GTOResult) {
	if result.Frequencies == nil {
		return
	}
	entry := decisionRecord{
		ID:             uuid.NewString(),
		Action:         result.Action,
		BalanceScore:   result.Frequencies.BalanceScore,
		Predictability: result.Frequencies.Predictability,
		Exploitability: result.Frequencies.Exploitability,
	}

	a.mutex.Lock()
	a.history = append(a.history, entry)
	if len(a.history) > a.historyLimit {
		a.history = a.history[len(a.history)-a.historyLimit:]
	}
	a.mutex.Unlock()
}

// GetPerformanceMetrics snapshots the latest balance numbers and their
// moving averages over the recent decision window.
func (a *GTOAdvisor) GetPerformanceMetrics() PerformanceMetrics {
	a.mutex.RLock()
	history := a.history
	window := a.core.cfg.RollingWindow
	if window > len(history) {
		window = len(history)
	}
	recent := history[len(history)-window:]

	balances := make([]float64, len(recent))
	predictabilities := make([]float64, len(recent))
	exploitabilities := make([]float64, len(recent))
	for i, entry := range recent {
		balances[i] = entry.BalanceScore
		predictabilities[i] = entry.Predictability
		exploitabilities[i] = entry.Exploitability
	}
	out := PerformanceMetrics{
		Decisions:          a.core.stats.Decisions.Load(),
		RangeFallbacks:     a.core.stats.RangeFallbacks.Load(),
		LegalityViolations: a.legalityViolations.Load(),
	}
	if len(history) > 0 {
		last := history[len(history)-1]
		out.LastBalance = last.BalanceScore
		out.LastPredictability = last.Predictability
		out.LastExploitability = last.Exploitability
	}
	a.mutex.RUnlock()

	if len(balances) > 0 {
		out.RollingBalance = stat.Mean(balances, nil)
		out.RollingPredictability = stat.Mean(predictabilities, nil)
		out.RollingExploitability = stat.Mean(exploitabilities, nil)
	}
	return out
}
