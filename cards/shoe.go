package cards

import (
	"math/rand"
	"time"
)

// Shoe holds the shuffled cards of one or more decks and tracks the
// hi-lo running count as cards are dealt.
type Shoe struct {
	cards Cards
	count int
	decks int
	rng   *rand.Rand
}

// NewShoe creates a shuffled shoe with the given number of decks
func NewShoe(decks int) *Shoe {
	return NewShoeWithRand(decks, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewShoeWithRand creates a shuffled shoe using the provided random source,
// so tests and replays can inject a deterministic permutation
func NewShoeWithRand(decks int, rng *rand.Rand) *Shoe {
	s := &Shoe{decks: decks, rng: rng}
	s.fill()
	return s
}

func (s *Shoe) fill() {
	shoe := make(Cards, 0, s.decks*52)
	for i := 0; i < s.decks; i++ {
		shoe = append(shoe, NewDeck()...)
	}
	s.rng.Shuffle(len(shoe), func(i, j int) {
		shoe[i], shoe[j] = shoe[j], shoe[i]
	})
	s.cards = shoe
	s.count = 0
}

// Len returns the number of cards left in the shoe
func (s *Shoe) Len() int {
	return len(s.cards)
}

// IsEmpty checks if the shoe has no cards left
func (s *Shoe) IsEmpty() bool {
	return len(s.cards) == 0
}

// NumDecks returns the number of decks loaded into the shoe
func (s *Shoe) NumDecks() int {
	return s.decks
}

// Deal removes and returns the top card of the shoe, updating the running
// count. The second return is false when the shoe is empty.
func (s *Shoe) Deal() (Card, bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	s.count += card.CountWeight()
	return card, true
}

// RunningCount returns the running count normalized by the number of decks
func (s *Shoe) RunningCount() float64 {
	return float64(s.count) / float64(s.decks)
}

// Penetration returns the fraction of the shoe dealt since the last shuffle
func (s *Shoe) Penetration() float64 {
	return 1 - float64(len(s.cards))/float64(s.decks*52)
}

// Reset rebuilds the shoe full and reshuffled with the same deck count,
// zeroing the running count
func (s *Shoe) Reset() {
	s.fill()
}
