package gto

import "gto-advisor/holdem"

// Config carries every numeric policy knob of the core. The defaults
// mirror common solver-derived heuristics but are policy, not ground
// truth: callers tune them, tests pin behavior under defaults only.
type Config struct {
	// Frequency thresholds.
	ValueBetThreshold   float64
	BluffThreshold      float64
	ValueBluffRatio     float64
	BluffRaiseFrequency float64

	// Sizing: base pot fractions.
	TextureFraction     map[holdem.BoardTexture]float64
	OverbetFraction     float64
	OpenFraction        float64
	ThreeBetIP          float64
	ThreeBetOOP         float64
	FourBetFraction     float64
	ShallowSPR          float64
	DeepSPR             float64
	ShallowSizingFactor float64
	DeepSizingFactor    float64
	PositionSizing      map[holdem.Position]float64
	TextureAggression   map[holdem.BoardTexture]float64
	TextureDefense      map[holdem.BoardTexture]float64

	// Confidence mapping from chosen-action frequency.
	ConfidenceFloor float64
	ConfidenceSlope float64

	// Advisor bookkeeping.
	RollingWindow int
	HistoryLimit  int
}

func DefaultConfig() *Config {
	return &Config{
		ValueBetThreshold:   0.6,
		BluffThreshold:      0.3,
		ValueBluffRatio:     2.0,
		BluffRaiseFrequency: 0.22,

		TextureFraction: map[holdem.BoardTexture]float64{
			holdem.TEXTURE_DRY:     0.33,
			holdem.TEXTURE_DYNAMIC: 0.55,
			holdem.TEXTURE_WET:     0.75,
		},
		OverbetFraction:     1.25,
		OpenFraction:        2.5,
		ThreeBetIP:          3.0,
		ThreeBetOOP:         3.5,
		FourBetFraction:     2.2,
		ShallowSPR:          8,
		DeepSPR:             20,
		ShallowSizingFactor: 1.2,
		DeepSizingFactor:    0.8,
		PositionSizing: map[holdem.Position]float64{
			holdem.POSITION_BTN: 1.10,
			holdem.POSITION_CO:  1.05,
			holdem.POSITION_HJ:  1.00,
			holdem.POSITION_MP:  0.95,
			holdem.POSITION_UTG: 0.90,
			holdem.POSITION_SB:  0.95,
			holdem.POSITION_BB:  0.90,
		},
		TextureAggression: map[holdem.BoardTexture]float64{
			holdem.TEXTURE_DRY:     1.10,
			holdem.TEXTURE_DYNAMIC: 1.00,
			holdem.TEXTURE_WET:     0.80,
		},
		TextureDefense: map[holdem.BoardTexture]float64{
			holdem.TEXTURE_DRY:     0.90,
			holdem.TEXTURE_DYNAMIC: 1.00,
			holdem.TEXTURE_WET:     1.20,
		},

		ConfidenceFloor: 0.2,
		ConfidenceSlope: 0.8,

		RollingWindow: 10,
		HistoryLimit:  256,
	}
}
