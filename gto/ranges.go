package gto

import (
	"hash/fnv"
	"slices"

	"gto-advisor/common/defaultmap"
	"gto-advisor/common/linq"
	"gto-advisor/common/safemap"
	"gto-advisor/holdem"

	"github.com/rs/zerolog/log"
)

// Range is a weighted set of starting-hand categories. Weight 1 means the
// category is always played this way, fractional weights mix at the range
// boundary, weight 0 (or absence) means never.
type Range struct {
	Name    string
	Weights map[holdem.HandCategory]float64
}

func (r *Range) Weight(cat holdem.HandCategory) float64 {
	return r.Weights[cat]
}

func (r *Range) TotalWeight() float64 {
	total := 0.0
	for _, w := range r.Weights {
		total += w
	}
	return total
}

// Clone returns a deep copy, so callers can adjust weights without
// touching the shared tables.
func (r *Range) Clone() *Range {
	return &Range{Name: r.Name, Weights: linq.CopyMap(r.Weights)}
}

// Hash folds the weighted categories into a stable 64-bit key for
// equity-cache lookups.
func (r *Range) Hash() uint64 {
	cats := make([]holdem.HandCategory, 0, len(r.Weights))
	for cat := range r.Weights {
		cats = append(cats, cat)
	}
	slices.Sort(cats)

	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, cat := range cats {
		h.Write([]byte(cat))
		milli := uint64(r.Weights[cat] * 1000)
		for i := 0; i < 8; i++ {
			buf[i] = byte(milli >> (8 * i))
		}
		h.Write(buf)
	}
	return h.Sum64()
}

func boardHash(board []holdem.Card) uint64 {
	h := fnv.New64a()
	for _, c := range board {
		h.Write([]byte{byte(c), byte(int32(c) >> 8)})
	}
	return h.Sum64()
}

type rangeKey struct {
	Position holdem.Position
	Class    ActionClass
}

type catPair struct {
	A holdem.HandCategory
	B holdem.HandCategory
}

// RangeManager owns the positional range tables and answers
// range-strength and range-vs-range queries. Tables are read-only after
// construction; the equity cache is safe for concurrent decisions.
type RangeManager struct {
	tables map[rangeKey]*Range

	// Per-board cache of category-vs-category equities.
	equityCache defaultmap.DefaultSafemap[uint64, safemap.Safemap[catPair, float64]]
}

func NewRangeManager() *RangeManager {
	return &RangeManager{
		tables: defaultRangeTables(),
		equityCache: defaultmap.New[uint64, safemap.Safemap[catPair, float64]](func() safemap.Safemap[catPair, float64] {
			return safemap.New[catPair, float64]()
		}),
	}
}

// RangeFor looks up the table for a position and action class. A missing
// table is a ConfigError; fallback policy belongs to the caller.
func (m *RangeManager) RangeFor(position holdem.Position, class ActionClass) (*Range, error) {
	r, ok := m.tables[rangeKey{position, class}]
	if !ok {
		return nil, configErrorf("no range table for %s %s", position, class)
	}
	return r, nil
}

// Override replaces one table entry. Only for load time, before the
// manager is shared between decisions.
func (m *RangeManager) Override(position holdem.Position, class ActionClass, r *Range) {
	m.tables[rangeKey{position, class}] = r
}

// WidestRange returns the configured range with the most combined weight.
// It backs the fallback for unconfigured position/class pairs.
func (m *RangeManager) WidestRange() *Range {
	var widest *Range
	best := -1.0
	keys := make([]rangeKey, 0, len(m.tables))
	for k := range m.tables {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b rangeKey) int {
		if a.Position != b.Position {
			return int(a.Position - b.Position)
		}
		return int(a.Class - b.Class)
	})
	for _, k := range keys {
		if w := m.tables[k].TotalWeight(); w > best {
			best = w
			widest = m.tables[k]
		}
	}
	return widest
}

// StrengthOf ranks a hand category inside a range: 1.0 for the strongest
// category present, 0.0 when the category carries no weight. The rank is
// the weight quantile, so boundary hands with partial weight land between
// their neighbours.
func (m *RangeManager) StrengthOf(cat holdem.HandCategory, r *Range) float64 {
	mine := r.Weights[cat]
	if mine <= 0 {
		return 0
	}
	total := r.TotalWeight()
	if total <= 0 {
		return 0
	}
	myScore := cat.Score()
	below := 0.0
	for other, w := range r.Weights {
		if other == cat || w <= 0 {
			continue
		}
		if other.Score() < myScore {
			below += w
		}
	}
	return (below + mine) / total
}

// RangeVsRangeEquity approximates the aggregate win probability of a over
// b on the given board, as a weighted average of category-vs-category
// equities. The pairwise equity is a score ratio, which keeps the result
// exactly complementary when the arguments swap.
func (m *RangeManager) RangeVsRangeEquity(a, b *Range, board []holdem.Card) (float64, error) {
	if a.TotalWeight() <= 0 || b.TotalWeight() <= 0 {
		return 0, configErrorf("range %q vs %q: empty range", a.Name, b.Name)
	}
	cache := m.equityCache.Get(boardHash(board))

	var weighted, mass float64
	for catA, wa := range a.Weights {
		if wa <= 0 {
			continue
		}
		for catB, wb := range b.Weights {
			if wb <= 0 {
				continue
			}
			weighted += wa * wb * m.categoryEquity(cache, catA, catB, board)
			mass += wa * wb
		}
	}
	if mass <= 0 {
		return 0, configErrorf("range %q vs %q: no overlapping mass", a.Name, b.Name)
	}
	return weighted / mass, nil
}

func (m *RangeManager) categoryEquity(cache safemap.Safemap[catPair, float64], a, b holdem.HandCategory, board []holdem.Card) float64 {
	if e, ok := cache.Get(catPair{a, b}); ok {
		return e
	}
	sa := boardAdjustedScore(a, board)
	sb := boardAdjustedScore(b, board)
	e := 0.5
	if sa+sb > 0 {
		e = sa / (sa + sb)
	}
	cache.Set(catPair{a, b}, e)
	cache.Set(catPair{b, a}, 1-e)
	return e
}

// boardAdjustedScore boosts categories that pair the board, so postflop
// range equities shift toward the range that connects.
func boardAdjustedScore(cat holdem.HandCategory, board []holdem.Card) float64 {
	score := cat.Score()
	hi, lo := cat.Ranks()
	for _, c := range board {
		if c.Rank() == hi || c.Rank() == lo {
			score += 0.35
		}
	}
	return score
}

// logRangeFallback records a recovered table miss. ConfigError never
// leaves the package, so the warning is the only external signal.
func logRangeFallback(err error, position holdem.Position, class ActionClass) {
	log.Warn().
		Str("position", position.String()).
		Str("class", class.String()).
		Err(err).
		Msg("range table missing, using widest configured range")
}
