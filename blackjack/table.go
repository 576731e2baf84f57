package blackjack

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/cardroom/blackjack/cards"
)

// Outcome represents the result of a player hand against the dealer
type Outcome string

const (
	// OutcomeBlackjack is a win with a two-card 21, typically paid 3:2
	OutcomeBlackjack Outcome = "blackjack"
	// OutcomeWin is a regular win, paid 1:1
	OutcomeWin Outcome = "win"
	// OutcomeLose is a loss
	OutcomeLose Outcome = "lose"
	// OutcomePush is a tie
	OutcomePush Outcome = "push"
)

// TableState represents the phase of the current round
type TableState string

const (
	// TableStateOpen means no cards are on the table
	TableStateOpen TableState = "open"
	// TableStateDealt means the initial two-card hands are out
	TableStateDealt TableState = "dealt"
	// TableStateFlipped means the dealer's hand has been revealed
	TableStateFlipped TableState = "flipped"
)

// Table orchestrates one dealer hand and a fixed number of player spots
// against a single shoe. The phase advances Open -> Dealt -> Flipped -> Open
// each round; calling an operation in the wrong phase is a caller bug and
// panics.
type Table struct {
	dealer         *Hand
	playerHands    []*Hand
	playerBets     []Bet
	shoe           *cards.Shoe
	maxPenetration float64
	numDecks       int
	state          TableState
	rng            *rand.Rand
}

// NewTable creates a table with numDecks decks, numSpots betting spots, and
// a reshuffle threshold maxPenetration (clamped to 0.0-1.0)
func NewTable(numDecks, numSpots int, maxPenetration float64) *Table {
	return newTable(numDecks, numSpots, maxPenetration, nil)
}

// NewTableWithRand creates a table whose shoe shuffles with the provided
// random source, for deterministic play in tests
func NewTableWithRand(numDecks, numSpots int, maxPenetration float64, rng *rand.Rand) *Table {
	return newTable(numDecks, numSpots, maxPenetration, rng)
}

func newTable(numDecks, numSpots int, maxPenetration float64, rng *rand.Rand) *Table {
	var shoe *cards.Shoe
	if rng != nil {
		shoe = cards.NewShoeWithRand(numDecks, rng)
	} else {
		shoe = cards.NewShoe(numDecks)
	}

	playerHands := make([]*Hand, numSpots)
	for i := range playerHands {
		playerHands[i] = NewHand()
	}

	return &Table{
		dealer:         NewHand(),
		playerHands:    playerHands,
		playerBets:     make([]Bet, numSpots),
		shoe:           shoe,
		maxPenetration: clamp(maxPenetration, 0, 1),
		numDecks:       numDecks,
		state:          TableStateOpen,
		rng:            rng,
	}
}

// State returns the current phase of the table
func (t *Table) State() TableState {
	return t.state
}

// NumSpots returns the number of betting spots
func (t *Table) NumSpots() int {
	return len(t.playerHands)
}

// Deal deals the initial hands round-robin: one card to every player spot,
// one to the dealer, then a second pass. If the shoe's penetration exceeds
// the configured maximum, the shoe is replaced first; the return reports
// whether that reshuffle happened.
//
// Panics if cards are already on the table.
func (t *Table) Deal() bool {
	if t.state != TableStateOpen {
		panic("cannot deal when hands are currently on the table")
	}

	for _, player := range t.playerHands {
		if !player.IsEmpty() {
			panic("player hand not empty at start of deal")
		}
	}

	reshuffle := t.shoe.Penetration() > t.maxPenetration
	if reshuffle {
		t.rebuildShoe()
	}

	t.state = TableStateDealt

	for i := 0; i < 2; i++ {
		for _, player := range t.playerHands {
			player.Insert(t.mustDeal())
		}
		t.dealer.Insert(t.mustDeal())
	}

	return reshuffle
}

// Peek checks the dealer's hand for blackjack. A dealer blackjack ends the
// round immediately, so the table moves straight to Flipped.
//
// Panics if no cards are dealt.
func (t *Table) Peek() bool {
	if t.state != TableStateDealt {
		panic("cannot peek when no cards are dealt")
	}

	if t.dealer.Blackjack() {
		t.state = TableStateFlipped
		return true
	}
	return false
}

// PlayerHit deals one more card to the given spot and reports whether the
// hand is now busted. Hitting an already busted hand is a no-op.
//
// Panics if no cards are dealt or the spot does not exist.
func (t *Table) PlayerHit(spot int) bool {
	if t.state != TableStateDealt {
		panic("cannot hit when no cards are dealt")
	}

	if t.playerHands[spot].Busted() {
		return true
	}

	t.playerHands[spot].Insert(t.mustDeal())
	return t.playerHands[spot].Busted()
}

// DealerHit deals one more card to the dealer and reports whether the dealer
// busted. Drawing for the dealer always reveals the hole card, so the table
// moves to Flipped. Hitting an already busted dealer is a no-op.
//
// Panics if no cards are dealt.
func (t *Table) DealerHit() bool {
	if t.state == TableStateOpen {
		panic("cannot hit dealer when no cards are dealt")
	}

	if t.dealer.Busted() {
		return true
	}

	t.dealer.Insert(t.mustDeal())
	t.state = TableStateFlipped
	return t.dealer.Busted()
}

// FlipHole reveals the dealer's hole card without drawing.
//
// Panics if no cards are dealt.
func (t *Table) FlipHole() {
	if t.state == TableStateOpen {
		panic("cannot flip hole card when no cards are dealt")
	}
	t.state = TableStateFlipped
}

// DealerValue returns the dealer hand's value.
// The second return is false while the table is open or the dealer busted.
func (t *Table) DealerValue() (int, bool) {
	if t.state == TableStateOpen {
		return 0, false
	}
	return t.dealer.Value()
}

// GetOutcome returns the outcome of the given spot against the dealer.
// It is a pure read of the current hand states.
func (t *Table) GetOutcome(spot int) Outcome {
	player := t.playerHands[spot]

	if t.dealer.Blackjack() {
		if player.Blackjack() {
			return OutcomePush
		}
		return OutcomeLose
	}

	if player.Blackjack() {
		return OutcomeBlackjack
	}

	if player.Busted() {
		return OutcomeLose
	}

	if t.dealer.Busted() {
		return OutcomeWin
	}

	p, _ := player.Value()
	d, _ := t.dealer.Value()
	switch {
	case p > d:
		return OutcomeWin
	case p < d:
		return OutcomeLose
	default:
		return OutcomePush
	}
}

// ClearHands replaces the dealer and player hands with empty hands and
// reopens the table for the next round.
//
// Panics unless the dealer has flipped.
func (t *Table) ClearHands() {
	if t.state != TableStateFlipped {
		panic("cannot clear hands before dealer has flipped")
	}

	t.dealer = NewHand()
	for i := range t.playerHands {
		t.playerHands[i] = NewHand()
	}
	t.state = TableStateOpen
}

// Reset rebuilds the shoe from scratch and clears all hands, restarting
// the session.
//
// Panics if cards are currently dealt.
func (t *Table) Reset() {
	if t.state != TableStateOpen {
		panic("cannot reset table while cards are dealt")
	}

	t.rebuildShoe()
	t.dealer = NewHand()
	for i := range t.playerHands {
		t.playerHands[i] = NewHand()
	}
}

// PlaceBet sets the bet placeholder for a spot. The table records bets but
// never computes settlement.
//
// Panics if cards are currently dealt.
func (t *Table) PlaceBet(spot int, bet Bet) {
	if t.state != TableStateOpen {
		panic("cannot place a bet while cards are dealt")
	}
	t.playerBets[spot] = bet
}

// PlayerBet returns the bet placeholder for a spot
func (t *Table) PlayerBet(spot int) Bet {
	return t.playerBets[spot]
}

// PlayerHand returns the hand at the given spot
func (t *Table) PlayerHand(spot int) *Hand {
	return t.playerHands[spot]
}

// PlayerHands returns all player hands in spot order
func (t *Table) PlayerHands() []*Hand {
	return t.playerHands
}

// DealerHand returns the dealer's hand
func (t *Table) DealerHand() *Hand {
	return t.dealer
}

// RunningCount returns the shoe's running count normalized by deck count
func (t *Table) RunningCount() float64 {
	return t.shoe.RunningCount()
}

// Penetration returns the fraction of the shoe dealt since the last shuffle
func (t *Table) Penetration() float64 {
	return t.shoe.Penetration()
}

// String renders the table: dealer line with shoe statistics, then one line
// per player spot
func (t *Table) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dealer: %s    %.1f %.2f\n", t.dealer, t.shoe.RunningCount(), t.shoe.Penetration())
	for i, player := range t.playerHands {
		fmt.Fprintf(&sb, "Player %d: %s\n", i+1, player)
	}
	return sb.String()
}

func (t *Table) rebuildShoe() {
	if t.rng != nil {
		t.shoe = cards.NewShoeWithRand(t.numDecks, t.rng)
	} else {
		t.shoe = cards.NewShoe(t.numDecks)
	}
}

func (t *Table) mustDeal() cards.Card {
	card, ok := t.shoe.Deal()
	if !ok {
		panic("shoe is out of cards")
	}
	return card
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
