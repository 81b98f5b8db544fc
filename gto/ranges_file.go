package gto

import (
	"os"

	"gto-advisor/holdem"

	"gopkg.in/yaml.v3"
)

// Optional YAML override for the built-in preflop tables. The file holds
// a list of entries, each replacing one position/class table:
//
//	ranges:
//	  - position: BTN
//	    class: open
//	    hands:
//	      AA: 1.0
//	      A5s: 0.5
type rangeFile struct {
	Ranges []rangeFileEntry `yaml:"ranges"`
}

type rangeFileEntry struct {
	Position string             `yaml:"position"`
	Class    string             `yaml:"class"`
	Hands    map[string]float64 `yaml:"hands"`
}

// LoadRangeFile applies the overrides in path on top of the default
// tables. Unknown positions, classes, categories or weights outside
// [0,1] are ConfigErrors; the manager is left unchanged on failure.
func (m *RangeManager) LoadRangeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return configErrorf("range file %s: %v", path, err)
	}
	var file rangeFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return configErrorf("range file %s: %v", path, err)
	}

	type override struct {
		key rangeKey
		r   *Range
	}
	overrides := make([]override, 0, len(file.Ranges))
	for _, entry := range file.Ranges {
		position, ok := parsePosition(entry.Position)
		if !ok {
			return configErrorf("range file %s: unknown position %q", path, entry.Position)
		}
		class, ok := parseClass(entry.Class)
		if !ok {
			return configErrorf("range file %s: unknown action class %q", path, entry.Class)
		}
		weights := make(map[holdem.HandCategory]float64, len(entry.Hands))
		for hand, weight := range entry.Hands {
			cat := holdem.HandCategory(hand)
			if hi, lo := cat.Ranks(); hi < 0 || lo < 0 {
				return configErrorf("range file %s: unknown hand %q", path, hand)
			}
			if weight < 0 || weight > 1 {
				return configErrorf("range file %s: hand %q weight %v outside [0,1]", path, hand, weight)
			}
			weights[cat] = weight
		}
		overrides = append(overrides, override{
			key: rangeKey{position, class},
			r:   &Range{Name: entry.Position + " " + entry.Class, Weights: weights},
		})
	}

	for _, o := range overrides {
		m.tables[o.key] = o.r
	}
	return nil
}

func parsePosition(s string) (holdem.Position, bool) {
	for pos, name := range holdem.Position2string {
		if name == s {
			return pos, true
		}
	}
	return 0, false
}

func parseClass(s string) (ActionClass, bool) {
	for class, name := range Class2string {
		if name == s {
			return class, true
		}
	}
	return 0, false
}
