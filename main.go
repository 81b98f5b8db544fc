package main

import (
	"math/rand"
	"time"

	"gto-advisor/appconfig"
	"gto-advisor/common/bench"
	"gto-advisor/gto"
	"gto-advisor/holdem"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func demoContexts() []*gto.DecisionContext {
	return []*gto.DecisionContext{
		{
			Street:    holdem.STREET_PREFLOP,
			Position:  holdem.POSITION_BTN,
			HoleCards: [2]holdem.Card{holdem.MustCard("As"), holdem.MustCard("Ah")},
			PotSize:   15,
			StackSize: 1000,
			LegalActions: []gto.LegalAction{
				{Kind: holdem.ACTION_FOLD},
				{Kind: holdem.ACTION_CALL},
				{Kind: holdem.ACTION_RAISE, MinAmount: 20, MaxAmount: 1000},
			},
			ActiveOpponents: 2,
		},
		{
			Street:    holdem.STREET_PREFLOP,
			Position:  holdem.POSITION_UTG,
			HoleCards: [2]holdem.Card{holdem.MustCard("7d"), holdem.MustCard("2c")},
			PotSize:   15,
			StackSize: 1000,
			LegalActions: []gto.LegalAction{
				{Kind: holdem.ACTION_FOLD},
				{Kind: holdem.ACTION_CALL},
				{Kind: holdem.ACTION_RAISE, MinAmount: 20, MaxAmount: 1000},
			},
			ActiveOpponents: 5,
		},
		{
			Street:    holdem.STREET_FLOP,
			Position:  holdem.POSITION_BB,
			HoleCards: [2]holdem.Card{holdem.MustCard("Ks"), holdem.MustCard("Qs")},
			CommunityCards: []holdem.Card{
				holdem.MustCard("Kd"), holdem.MustCard("7h"), holdem.MustCard("2c"),
			},
			PotSize:    90,
			StackSize:  910,
			CallAmount: 30,
			LegalActions: []gto.LegalAction{
				{Kind: holdem.ACTION_FOLD},
				{Kind: holdem.ACTION_CALL},
				{Kind: holdem.ACTION_RAISE, MinAmount: 60, MaxAmount: 910},
			},
			OpponentActions: []gto.OpponentAction{
				{Kind: holdem.ACTION_BET, Amount: 30},
			},
			ActiveOpponents: 1,
		},
	}
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := appconfig.LoadAppConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	mode, err := gto.ParseStrategyMode(cfg.StrategyMode)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid strategy mode")
	}

	ranges := gto.NewRangeManager()
	if cfg.RangeFile != "" {
		if err := ranges.LoadRangeFile(cfg.RangeFile); err != nil {
			log.Fatal().Err(err).Str("path", cfg.RangeFile).Msg("failed to load range file")
		}
	}

	coreCfg := gto.DefaultConfig()
	coreCfg.HistoryLimit = cfg.HistoryLimit
	advisor := gto.NewGTOAdvisor(coreCfg, ranges, mode, rng)
	advisor.UpdateWeights(cfg.GTOWeight, cfg.ExploitativeWeight)

	elapsed := bench.MeasureExec(func() {
		for _, ctx := range demoContexts() {
			result, err := advisor.GetGTOAdvice(ctx, nil)
			if err != nil {
				log.Error().Err(err).Msg("advice failed")
				continue
			}
			log.Info().
				Str("street", ctx.Street.String()).
				Str("position", ctx.Position.String()).
				Str("hand", string(ctx.Category())).
				Str("action", result.Action.String()).
				Int("amount", result.Amount).
				Float64("confidence", result.Confidence).
				Msg("advice")
		}
	})

	perf := advisor.GetPerformanceMetrics()
	log.Info().
		Dur("elapsed", elapsed).
		Int64("decisions", perf.Decisions).
		Float64("rolling_balance", perf.RollingBalance).
		Float64("rolling_predictability", perf.RollingPredictability).
		Msg("session summary")
}
