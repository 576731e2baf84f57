package cards

import "strings"

// Cards represents an ordered sequence of cards
type Cards []Card

// String returns the comma-separated rendering of the cards
func (c Cards) String() string {
	parts := make([]string, len(c))
	for i, card := range c {
		parts[i] = card.String()
	}
	return strings.Join(parts, ", ")
}

// NewDeck creates a standard deck of 52 cards in (suit, rank) order
func NewDeck() Cards {
	deck := make(Cards, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}
