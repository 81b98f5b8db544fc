package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMadeHandStrengthQuads(t *testing.T) {
	s, err := MadeHandStrength(
		[2]Card{MustCard("As"), MustCard("Ah")},
		board("Ad", "Ac", "2c"),
	)
	assert.NoError(t, err)
	assert.Greater(t, s, 0.99)
}

func TestMadeHandStrengthAir(t *testing.T) {
	s, err := MadeHandStrength(
		[2]Card{MustCard("7d"), MustCard("2c")},
		board("As", "Kh", "Qd"),
	)
	assert.NoError(t, err)
	assert.Less(t, s, 0.4)
}

func TestMadeHandStrengthOrdering(t *testing.T) {
	flop := board("Kd", "7h", "2c")
	topPair, err := MadeHandStrength([2]Card{MustCard("Ks"), MustCard("Qs")}, flop)
	assert.NoError(t, err)
	weakPair, err := MadeHandStrength([2]Card{MustCard("7s"), MustCard("4s")}, flop)
	assert.NoError(t, err)
	air, err := MadeHandStrength([2]Card{MustCard("Js"), MustCard("5d")}, flop)
	assert.NoError(t, err)

	assert.Greater(t, topPair, weakPair)
	assert.Greater(t, weakPair, air)
}

func TestMadeHandStrengthBounds(t *testing.T) {
	for _, streets := range [][]Card{
		board("Kd", "7h", "2c"),
		board("Kd", "7h", "2c", "9s"),
		board("Kd", "7h", "2c", "9s", "3d"),
	} {
		s, err := MadeHandStrength([2]Card{MustCard("As"), MustCard("Td")}, streets)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestMadeHandStrengthErrors(t *testing.T) {
	_, err := MadeHandStrength([2]Card{MustCard("As"), MustCard("Td")}, board("Kd", "7h"))
	assert.Error(t, err)

	_, err = MadeHandStrength([2]Card{MustCard("As"), MustCard("Td")}, board("As", "7h", "2c"))
	assert.Error(t, err)

	_, err = MadeHandStrength([2]Card{Card(200), MustCard("Td")}, board("Kd", "7h", "2c"))
	assert.Error(t, err)
}

func BenchmarkMadeHandStrength(b *testing.B) {
	hole := [2]Card{MustCard("Ks"), MustCard("Qs")}
	flop := board("Kd", "7h", "2c")
	for i := 0; i < b.N; i++ {
		_, err := MadeHandStrength(hole, flop)
		if err != nil {
			b.Fatal(err)
		}
	}
}
