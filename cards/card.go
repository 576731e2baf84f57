package cards

import (
	"fmt"
	"unicode/utf8"
)

// CardFromString creates a card from a string representation
// e.g., "10♠" or "10s" or "10S" -> Card{Suit: Spades, Rank: Ten}
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %s", s)
	}

	// the suit glyph may be a multi-byte rune
	_, size := utf8.DecodeLastRuneInString(s)
	suitStr, rankStr := s[len(s)-size:], s[:len(s)-size]

	var suit Suit
	switch suitStr {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %s", suitStr)
	}

	var rank Rank
	switch rankStr {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "10":
		rank = Ten
	case "9":
		rank = Nine
	case "8":
		rank = Eight
	case "7":
		rank = Seven
	case "6":
		rank = Six
	case "5":
		rank = Five
	case "4":
		rank = Four
	case "3":
		rank = Three
	case "2":
		rank = Two
	default:
		return Card{}, fmt.Errorf("invalid card rank: %s", rankStr)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Rank represents a card rank
type Rank string

const (
	Ace   Rank = "A"
	King  Rank = "K"
	Queen Rank = "Q"
	Jack  Rank = "J"
	Ten   Rank = "10"
	Nine  Rank = "9"
	Eight Rank = "8"
	Seven Rank = "7"
	Six   Rank = "6"
	Five  Rank = "5"
	Four  Rank = "4"
	Three Rank = "3"
	Two   Rank = "2"
)

// Suits lists the four suits in deck order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Ranks lists the thirteen ranks from ace to king
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// String returns the string representation of a card
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// Values returns the candidate blackjack point values of the card, low first.
// Only the ace carries two values.
func (c Card) Values() []int {
	switch c.Rank {
	case Ace:
		return []int{1, 11}
	case Two:
		return []int{2}
	case Three:
		return []int{3}
	case Four:
		return []int{4}
	case Five:
		return []int{5}
	case Six:
		return []int{6}
	case Seven:
		return []int{7}
	case Eight:
		return []int{8}
	case Nine:
		return []int{9}
	default:
		return []int{10}
	}
}

// CountWeight returns the hi-lo running count weight of the card
func (c Card) CountWeight() int {
	switch c.Rank {
	case Two, Three, Four, Five, Six:
		return 1
	case Seven, Eight, Nine:
		return 0
	default:
		return -1
	}
}

// IsAce checks if the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}
