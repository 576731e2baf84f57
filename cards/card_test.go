package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Card
		wantErr  bool
	}{
		{"A♠", Card{Suit: Spades, Rank: Ace}, false},
		{"As", Card{Suit: Spades, Rank: Ace}, false},
		{"10h", Card{Suit: Hearts, Rank: Ten}, false},
		{"10♥", Card{Suit: Hearts, Rank: Ten}, false},
		{"Kd", Card{Suit: Diamonds, Rank: King}, false},
		{"2C", Card{Suit: Clubs, Rank: Two}, false},
		{"Z♠", Card{}, true},
		{"A", Card{}, true},
		{"", Card{}, true},
	}

	for _, tt := range tests {
		card, err := CardFromString(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		assert.NoError(t, err, "input %q", tt.input)
		assert.True(t, card.Equals(tt.expected), "input %q", tt.input)
	}
}

func TestCardValues(t *testing.T) {
	ace := Card{Suit: Spades, Rank: Ace}
	assert.Equal(t, []int{1, 11}, ace.Values())

	for _, rank := range []Rank{Ten, Jack, Queen, King} {
		card := Card{Suit: Hearts, Rank: rank}
		assert.Equal(t, []int{10}, card.Values(), "rank %s", rank)
	}

	assert.Equal(t, []int{2}, Card{Suit: Clubs, Rank: Two}.Values())
	assert.Equal(t, []int{9}, Card{Suit: Clubs, Rank: Nine}.Values())
}

func TestCardCountWeight(t *testing.T) {
	low := []Rank{Two, Three, Four, Five, Six}
	neutral := []Rank{Seven, Eight, Nine}
	high := []Rank{Ten, Jack, Queen, King, Ace}

	for _, rank := range low {
		assert.Equal(t, 1, Card{Suit: Spades, Rank: rank}.CountWeight(), "rank %s", rank)
	}
	for _, rank := range neutral {
		assert.Equal(t, 0, Card{Suit: Spades, Rank: rank}.CountWeight(), "rank %s", rank)
	}
	for _, rank := range high {
		assert.Equal(t, -1, Card{Suit: Spades, Rank: rank}.CountWeight(), "rank %s", rank)
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", Card{Suit: Spades, Rank: Ace}.String())
	assert.Equal(t, "10♥", Card{Suit: Hearts, Rank: Ten}.String())
}

func TestIsAce(t *testing.T) {
	assert.True(t, Card{Suit: Spades, Rank: Ace}.IsAce())
	assert.False(t, Card{Suit: Spades, Rank: King}.IsAce())
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	assert.Len(t, deck, 52)

	// every (suit, rank) pair appears exactly once
	seen := make(map[Card]int)
	for _, card := range deck {
		seen[card]++
	}
	assert.Len(t, seen, 52)
}
