package gto

import (
	"math"
	"math/rand"
	"sync"

	"gto-advisor/common/linq"
	"gto-advisor/common/random"
	"gto-advisor/holdem"

	"gonum.org/v1/gonum/stat"
)

// FrequencyCalculator mixes fold/call/raise probabilities for a decision
// point. The generator is injected so a fixed seed reproduces the full
// decision stream; its draws go through a mutex so concurrent decisions
// share it safely.
type FrequencyCalculator struct {
	cfg *Config

	mu  sync.Mutex
	rng *rand.Rand
}

func NewFrequencyCalculator(cfg *Config, rng *rand.Rand) *FrequencyCalculator {
	return &FrequencyCalculator{cfg: cfg, rng: rng}
}

// rawStrategy is the canonical three-way split before legality filtering.
type rawStrategy struct {
	raise float64
	call  float64
	fold  float64
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// CalculateMixedStrategy maps hand strength onto a normalized action
// distribution over the context's legal actions. Strength splits into a
// value region, a bluff region and a linear blend between them; facing a
// live bet flips the split toward calling.
func (f *FrequencyCalculator) CalculateMixedStrategy(ctx *DecisionContext, strength float64, texture holdem.BoardTexture) *FrequencyResult {
	facing := ctx.CallAmount > 0
	blocker := holdem.HasNutBlocker(ctx.HoleCards, ctx.CommunityCards)

	raw := f.regionStrategy(strength, facing, blocker)
	f.adjust(&raw, ctx, strength, texture)

	freqs := f.legalize(ctx, raw)
	normalize(freqs)

	return &FrequencyResult{
		Frequencies:    freqs,
		BalanceScore:   balanceScore(freqs),
		Predictability: maxProb(freqs),
		Exploitability: f.exploitability(strength),
	}
}

func (f *FrequencyCalculator) regionStrategy(strength float64, facing, blocker bool) rawStrategy {
	vbt, bt := f.cfg.ValueBetThreshold, f.cfg.BluffThreshold

	var top, bottom rawStrategy
	if facing {
		top = rawStrategy{raise: 0.45, call: 0.55}
		bottom = rawStrategy{raise: 0.10, call: 0.90}
	} else {
		top = rawStrategy{raise: 0.97, call: 0.03}
		bottom = rawStrategy{raise: 0.65, call: 0.35}
	}

	if strength >= vbt {
		t := 0.0
		if vbt < 1 {
			t = (strength - vbt) / (1 - vbt)
		}
		return rawStrategy{
			raise: lerp(bottom.raise, top.raise, t),
			call:  lerp(bottom.call, top.call, t),
		}
	}

	floor := f.bluffStrategy(strength, facing, blocker)
	if strength <= bt {
		return floor
	}

	t := (strength - bt) / (vbt - bt)
	return rawStrategy{
		raise: lerp(floor.raise, bottom.raise, t),
		call:  lerp(floor.call, bottom.call, t),
		fold:  lerp(floor.fold, 0, t),
	}
}

// bluffStrategy is the low end of the grid. Out-of-range hands fold near
// always; in-range weak hands bluff at the configured frequency when they
// hold a nut blocker, otherwise mostly give up.
func (f *FrequencyCalculator) bluffStrategy(strength float64, facing, blocker bool) rawStrategy {
	if strength <= 0 {
		if facing {
			return rawStrategy{raise: 0.01, call: 0.04, fold: 0.95}
		}
		return rawStrategy{raise: 0.01, call: 0.02, fold: 0.97}
	}
	if blocker {
		bluff := f.cfg.BluffRaiseFrequency
		if facing {
			return rawStrategy{raise: bluff * 0.8, call: 0.10, fold: 1 - bluff*0.8 - 0.10}
		}
		return rawStrategy{raise: bluff, call: 0.08, fold: 1 - bluff - 0.08}
	}
	if facing {
		return rawStrategy{raise: 0.02, call: 0.13, fold: 0.85}
	}
	return rawStrategy{raise: 0.05, call: 0.15, fold: 0.80}
}

// adjust applies the board, seat and opponent multipliers. Zero mass
// stays zero: value hands keep their no-fold guarantee through every
// adjustment.
func (f *FrequencyCalculator) adjust(raw *rawStrategy, ctx *DecisionContext, strength float64, texture holdem.BoardTexture) {
	if ctx.Street != holdem.STREET_PREFLOP {
		raw.raise *= f.cfg.TextureAggression[texture]
		raw.call *= f.cfg.TextureDefense[texture]
	}

	adv := ctx.Position.Advantage()
	raw.raise *= 0.8 + 0.4*adv
	raw.fold *= 1.2 - 0.4*adv

	if ctx.ActiveOpponents > 2 {
		raw.raise *= 0.9
		raw.fold *= 1.1
	}

	// Against an opponent who bets and raises most of the time, bluffing
	// loses value and calling down gains it.
	if aggressionRate(ctx.OpponentActions) > 0.6 {
		raw.raise *= 0.9
		raw.call *= 1.1
	}

	if ctx.CallAmount > 0 && ctx.PotSize+ctx.CallAmount > 0 {
		price := float64(ctx.CallAmount) / float64(ctx.PotSize+ctx.CallAmount)
		if strength > price {
			raw.call *= 1.1
			raw.fold *= 0.8
		}
	}
}

func aggressionRate(actions []OpponentAction) float64 {
	if len(actions) == 0 {
		return 0
	}
	aggressive := 0
	for _, a := range actions {
		if a.Kind.Aggressive() {
			aggressive++
		}
	}
	return float64(aggressive) / float64(len(actions))
}

// legalize maps the canonical split onto the actions the engine actually
// permits. Aggressive mass falls back raise then bet then all-in; orphaned
// mass moves to the passive action, then to fold, then to whatever leg of
// the split is left. Every action in the result is on the legal list.
func (f *FrequencyCalculator) legalize(ctx *DecisionContext, raw rawStrategy) map[holdem.ActionKind]float64 {
	freqs := map[holdem.ActionKind]float64{}

	aggressive := holdem.ActionKind(-1)
	for _, kind := range []holdem.ActionKind{holdem.ACTION_RAISE, holdem.ACTION_BET, holdem.ACTION_ALLIN} {
		if _, ok := ctx.Legal(kind); ok {
			aggressive = kind
			break
		}
	}
	passive := holdem.ActionKind(-1)
	for _, kind := range []holdem.ActionKind{holdem.ACTION_CALL, holdem.ACTION_CHECK} {
		if _, ok := ctx.Legal(kind); ok {
			passive = kind
			break
		}
	}
	_, foldLegal := ctx.Legal(holdem.ACTION_FOLD)

	raiseMass, callMass, foldMass := raw.raise, raw.call, raw.fold
	if aggressive < 0 {
		callMass += raiseMass
		raiseMass = 0
	}
	if passive < 0 {
		if foldLegal {
			foldMass += callMass
		} else {
			raiseMass += callMass
		}
		callMass = 0
	}
	if !foldLegal {
		if passive >= 0 {
			callMass += foldMass
		} else {
			raiseMass += foldMass
		}
		foldMass = 0
	}

	if aggressive >= 0 && raiseMass > 0 {
		freqs[aggressive] = raiseMass
	}
	if passive >= 0 && callMass > 0 {
		freqs[passive] = callMass
	}
	if foldMass > 0 {
		freqs[holdem.ACTION_FOLD] = foldMass
	}
	if len(freqs) == 0 && foldLegal {
		freqs[holdem.ACTION_FOLD] = 1
	}
	return freqs
}

func normalize(freqs map[holdem.ActionKind]float64) {
	sum := 0.0
	for _, p := range freqs {
		sum += p
	}
	if sum <= 0 {
		return
	}
	for kind := range freqs {
		freqs[kind] /= sum
	}
}

// balanceScore compares the distribution against the uniform baseline
// over the same actions: 1 at uniform, toward 0 as the strategy turns
// into a pure one.
func balanceScore(freqs map[holdem.ActionKind]float64) float64 {
	if len(freqs) <= 1 {
		return 0
	}
	probs := linq.ToList(freqs, func(_ holdem.ActionKind, p float64) float64 { return p })
	return 1 - math.Min(1, float64(len(probs))*stat.Variance(probs, nil))
}

func maxProb(freqs map[holdem.ActionKind]float64) float64 {
	best := 0.0
	for _, p := range freqs {
		if p > best {
			best = p
		}
	}
	return best
}

// exploitability reads how far the implied value-to-bluff ratio sits from
// the configured target band. Pure value or pure air both score high: a
// perfectly polarized node is trivial to play against once identified.
func (f *FrequencyCalculator) exploitability(strength float64) float64 {
	const eps = 1e-3
	ratio := (strength + eps) / (1 - strength + eps)
	dev := math.Abs(math.Log(ratio / f.cfg.ValueBluffRatio))
	return math.Min(1, dev/3)
}

// SampleAction draws one action from the distribution. Sampling is
// deterministic for a fixed seed and distribution.
func (f *FrequencyCalculator) SampleAction(result *FrequencyResult) (holdem.ActionKind, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return random.Sample(f.rng, result.Frequencies)
}

// roll draws one uniform variate from the shared generator.
func (f *FrequencyCalculator) roll() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rng.Float64()
}
