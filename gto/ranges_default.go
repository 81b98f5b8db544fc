package gto

import "gto-advisor/holdem"

// The default preflop tables. Weight 1 is a pure strategy, fractional
// weights mix at the boundary of the range. Derived from standard
// 100bb 6-max/full-ring charts, compressed to the 169-category grid.

type rangeBuilder struct {
	weights map[holdem.HandCategory]float64
}

func newRangeBuilder() *rangeBuilder {
	return &rangeBuilder{weights: map[holdem.HandCategory]float64{}}
}

func (b *rangeBuilder) add(weight float64, cats ...string) *rangeBuilder {
	for _, c := range cats {
		b.weights[holdem.HandCategory(c)] = weight
	}
	return b
}

func (b *rangeBuilder) build(name string) *Range {
	return &Range{Name: name, Weights: b.weights}
}

var (
	pairsAll    = []string{"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22"}
	pairsBig    = []string{"AA", "KK", "QQ", "JJ", "TT"}
	connectorsS = []string{"T9s", "98s", "87s", "76s", "65s", "54s"}
)

func utgOpenRange() *Range {
	return newRangeBuilder().
		add(1, pairsBig...).
		add(1, "99", "88", "77").
		add(0.5, "66", "55", "44", "33", "22").
		add(1, "AKs", "AKo", "AQs", "AQo", "AJs", "ATs").
		add(0.75, "A9s", "A8s", "A7s", "A6s", "A5s").
		add(1, "KQs", "KQo", "KJs", "KTs", "QJs", "QTs", "JTs").
		add(0.5, connectorsS...).
		build("UTG open")
}

func mpOpenRange() *Range {
	return newRangeBuilder().
		add(1, pairsAll...).
		add(1, "AKs", "AKo", "AQs", "AQo", "AJs", "AJo", "ATs").
		add(1, "A9s", "A8s", "A7s", "A6s", "A5s").
		add(0.5, "A4s", "A3s", "A2s").
		add(1, "KQs", "KQo", "KJs", "KTs", "K9s").
		add(1, "QJs", "QTs", "JTs", "J9s").
		add(1, connectorsS...).
		build("MP open")
}

func hjOpenRange() *Range {
	return newRangeBuilder().
		add(1, pairsAll...).
		add(1, "AKs", "AKo", "AQs", "AQo", "AJs", "AJo", "ATs", "ATo").
		add(1, "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s").
		add(1, "KQs", "KQo", "KJs", "KJo", "KTs", "K9s").
		add(1, "QJs", "QJo", "QTs", "Q9s", "JTs", "J9s", "T8s").
		add(1, connectorsS...).
		add(0.5, "97s", "86s", "75s", "64s", "53s").
		build("HJ open")
}

func coOpenRange() *Range {
	return newRangeBuilder().
		add(1, pairsAll...).
		add(1, "AKs", "AKo", "AQs", "AQo", "AJs", "AJo", "ATs", "ATo").
		add(1, "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s").
		add(0.75, "A9o", "A8o").
		add(1, "KQs", "KQo", "KJs", "KJo", "KTs", "KTo", "K9s", "K8s").
		add(1, "QJs", "QJo", "QTs", "QTo", "Q9s").
		add(1, "JTs", "JTo", "J9s", "J8s", "T9s", "T8s").
		add(1, "98s", "97s", "87s", "86s", "76s", "75s", "65s", "64s", "54s", "53s").
		build("CO open")
}

func btnOpenRange() *Range {
	b := newRangeBuilder().
		add(1, pairsAll...).
		add(1, "AKs", "AKo", "AQs", "AQo", "AJs", "AJo", "ATs", "ATo",
			"A9s", "A9o", "A8s", "A8o", "A7s", "A7o", "A6s", "A6o",
			"A5s", "A5o", "A4s", "A4o", "A3s", "A3o", "A2s", "A2o").
		add(1, "KQs", "KQo", "KJs", "KJo", "KTs", "KTo", "K9s", "K9o",
			"K8s", "K7s", "K6s", "K5s", "K4s", "K3s", "K2s").
		add(1, "QJs", "QJo", "QTs", "QTo", "Q9s", "Q9o", "Q8s", "Q7s", "Q6s", "Q5s").
		add(0.5, "Q4s", "Q3s", "Q2s").
		add(1, "JTs", "JTo", "J9s", "J9o", "J8s", "J7s").
		add(0.5, "J6s", "J5s", "J4s").
		add(1, "T9s", "T9o", "T8s", "T7s", "T6s").
		add(1, "98s", "97s", "96s", "87s", "86s", "85s", "76s", "75s", "65s", "64s", "54s", "53s", "43s")
	return b.build("BTN open")
}

func sbOpenRange() *Range {
	return newRangeBuilder().
		add(1, pairsAll...).
		add(1, "AKs", "AKo", "AQs", "AQo", "AJs", "AJo", "ATs", "ATo",
			"A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s").
		add(1, "KQs", "KQo", "KJs", "KJo", "KTs", "KTo", "K9s", "K8s").
		add(1, "QJs", "QJo", "QTs", "QTo", "Q9s").
		add(1, "JTs", "JTo", "J9s", "J8s").
		add(1, "T9s", "T8s", "T7s", "98s", "97s", "87s", "86s", "76s", "75s", "65s", "64s", "54s", "53s").
		build("SB open")
}

func bbDefendRange() *Range {
	b := newRangeBuilder().
		add(1, pairsAll...).
		add(1, "AKs", "AKo", "AQs", "AQo", "AJs", "AJo", "ATs", "ATo",
			"A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s").
		add(1, "KQs", "KQo", "KJs", "KJo", "KTs", "KTo",
			"K9s", "K8s", "K7s", "K6s", "K5s", "K4s", "K3s", "K2s").
		add(1, "QJs", "QJo", "QTs", "QTo",
			"Q9s", "Q8s", "Q7s", "Q6s", "Q5s", "Q4s", "Q3s", "Q2s").
		add(1, "JTs", "JTo", "J9s", "J8s", "J7s", "J6s", "J5s", "J4s", "J3s", "J2s").
		add(1, "T9s", "T8s", "T7s", "T6s", "T5s", "T4s", "T3s", "T2s").
		add(1, "98s", "97s", "96s", "95s", "94s", "93s", "92s").
		add(1, "87s", "86s", "85s", "84s", "83s", "82s").
		add(1, "76s", "75s", "74s", "73s").
		add(0.5, "72s").
		add(1, "65s", "64s", "63s", "62s").
		add(1, "54s", "53s", "52s", "43s", "42s", "32s")
	return b.build("BB defend")
}

func threeBetRange(name string, wide bool) *Range {
	b := newRangeBuilder().
		add(1, "AA", "KK", "QQ", "JJ", "AKs", "AKo", "AQs")
	if wide {
		b.add(1, "TT", "AJs", "KQs").
			add(0.5, "A5s", "A4s")
	}
	return b.build(name)
}

func fourBetRange(name string) *Range {
	return newRangeBuilder().
		add(1, "AA", "KK", "QQ", "AKs", "AKo").
		add(0.5, "JJ", "AQs").
		add(0.35, "A5s").
		build(name)
}

func defendRange(name string, wide bool) *Range {
	b := newRangeBuilder().
		add(1, pairsAll...).
		add(1, "AKs", "AKo", "AQs", "AQo", "AJs", "ATs",
			"A9s", "A8s", "A7s", "A6s", "A5s").
		add(1, "KQs", "KJs", "KTs", "K9s").
		add(1, "QJs", "QTs", "Q9s").
		add(1, "JTs", "J9s").
		add(1, connectorsS...)
	if wide {
		b.add(1, "AJo", "ATo", "KQo", "QJo", "JTo", "T8s", "97s", "86s", "75s")
	}
	return b.build(name)
}

// defaultRangeTables wires every position/class pair except BB open: the
// big blind never opens an unraised pot, a lookup there falls back to the
// widest configured range.
func defaultRangeTables() map[rangeKey]*Range {
	t := map[rangeKey]*Range{}

	t[rangeKey{holdem.POSITION_UTG, CLASS_OPEN}] = utgOpenRange()
	t[rangeKey{holdem.POSITION_MP, CLASS_OPEN}] = mpOpenRange()
	t[rangeKey{holdem.POSITION_HJ, CLASS_OPEN}] = hjOpenRange()
	t[rangeKey{holdem.POSITION_CO, CLASS_OPEN}] = coOpenRange()
	t[rangeKey{holdem.POSITION_BTN, CLASS_OPEN}] = btnOpenRange()
	t[rangeKey{holdem.POSITION_SB, CLASS_OPEN}] = sbOpenRange()

	t[rangeKey{holdem.POSITION_UTG, CLASS_3BET}] = threeBetRange("UTG 3bet", false)
	t[rangeKey{holdem.POSITION_MP, CLASS_3BET}] = threeBetRange("MP 3bet", false)
	t[rangeKey{holdem.POSITION_HJ, CLASS_3BET}] = threeBetRange("HJ 3bet", true)
	t[rangeKey{holdem.POSITION_CO, CLASS_3BET}] = threeBetRange("CO 3bet", true)
	t[rangeKey{holdem.POSITION_BTN, CLASS_3BET}] = threeBetRange("BTN 3bet", true)
	t[rangeKey{holdem.POSITION_SB, CLASS_3BET}] = threeBetRange("SB 3bet", true)
	t[rangeKey{holdem.POSITION_BB, CLASS_3BET}] = threeBetRange("BB 3bet", true)

	t[rangeKey{holdem.POSITION_UTG, CLASS_DEFEND}] = defendRange("UTG defend", false)
	t[rangeKey{holdem.POSITION_MP, CLASS_DEFEND}] = defendRange("MP defend", false)
	t[rangeKey{holdem.POSITION_HJ, CLASS_DEFEND}] = defendRange("HJ defend", false)
	t[rangeKey{holdem.POSITION_CO, CLASS_DEFEND}] = defendRange("CO defend", true)
	t[rangeKey{holdem.POSITION_BTN, CLASS_DEFEND}] = defendRange("BTN defend", true)
	t[rangeKey{holdem.POSITION_SB, CLASS_DEFEND}] = defendRange("SB defend", false)
	t[rangeKey{holdem.POSITION_BB, CLASS_DEFEND}] = bbDefendRange()

	for pos := holdem.POSITION_UTG; pos <= holdem.POSITION_BB; pos++ {
		t[rangeKey{pos, CLASS_4BET}] = fourBetRange(pos.String() + " 4bet")
	}
	return t
}
