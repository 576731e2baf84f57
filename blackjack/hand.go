package blackjack

import (
	"fmt"

	"github.com/cardroom/blackjack/cards"
)

// ValueKind tags the classification of a hand total
type ValueKind string

const (
	KindHard      ValueKind = "hard"
	KindSoft      ValueKind = "soft"
	KindBlackjack ValueKind = "blackjack"
	KindBust      ValueKind = "bust"
)

// Value classifies a hand. For a soft hand, HardAces records how many of the
// hand's aces are currently forced to count as 1 to keep the total at or
// under 21; the remaining flexibility is needed to re-derive the total as
// more cards arrive.
type Value struct {
	Kind     ValueKind
	Total    int
	HardAces int
}

// HardValue builds a hard classification
func HardValue(total int) Value {
	return Value{Kind: KindHard, Total: total}
}

// SoftValue builds a soft classification with the given forced-ace count
func SoftValue(total, hardAces int) Value {
	return Value{Kind: KindSoft, Total: total, HardAces: hardAces}
}

// BlackjackValue builds the two-card 21 classification
func BlackjackValue() Value {
	return Value{Kind: KindBlackjack, Total: 21}
}

// BustValue builds the bust classification
func BustValue() Value {
	return Value{Kind: KindBust}
}

// Points returns the numeric value of the classification.
// The second return is false for a bust.
func (v Value) Points() (int, bool) {
	if v.Kind == KindBust {
		return 0, false
	}
	return v.Total, true
}

// Hand is an ordered sequence of dealt cards plus its derived value.
// The zero value is an empty hand. The value is recomputed incrementally
// on every insert, never from scratch.
type Hand struct {
	cards   cards.Cards
	numAces int
	val     Value
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{val: HardValue(0)}
}

// Insert deals one card into the hand and recomputes its classification
// from the previous one.
func (h *Hand) Insert(card cards.Card) {
	if len(h.cards) == 0 {
		if card.IsAce() {
			h.val = SoftValue(11, 0)
		} else {
			h.val = HardValue(card.Values()[0])
		}
	} else {
		switch h.val.Kind {
		case KindBust:
			// a busted hand absorbs further cards without changing value
		case KindHard:
			h.val = h.insertIntoHard(card)
		case KindSoft:
			h.val = h.insertIntoSoft(card)
		case KindBlackjack:
			h.val = h.insertIntoBlackjack(card)
		}
	}

	if card.IsAce() {
		h.numAces++
	}
	h.cards = append(h.cards, card)
	h.verify()
}

func (h *Hand) insertIntoHard(card cards.Card) Value {
	v := h.val.Total
	cardVals := card.Values()
	candidates := make([]int, len(cardVals))
	for i, x := range cardVals {
		candidates[i] = v + x
	}

	switch {
	case len(h.cards) == 1 && v == 10 && card.IsAce():
		return BlackjackValue()
	case minInt(candidates) > 21:
		return BustValue()
	case len(candidates) == 1:
		return HardValue(candidates[0])
	case maxInt(candidates) > 21:
		// counting the ace as 11 busts, so it is forced to 1 and the
		// hand stays hard
		return HardValue(minInt(candidates))
	default:
		return SoftValue(maxInt(candidates), 0)
	}
}

func (h *Hand) insertIntoSoft(card cards.Card) Value {
	v, a := h.val.Total, h.val.HardAces
	cardVals := card.Values()

	if len(h.cards) == 1 && v == 11 && cardVals[0] == 10 {
		return BlackjackValue()
	}

	type reachable struct {
		total    int
		hardAces int
	}

	// build every reachable (total, forced-ace) pair: each of the hand's
	// still-free aces may be forced from 11 down to 1, and if the new card
	// is an ace its low value counts as one more forced ace
	deductions := h.numAces - a
	var all []reachable
	for o := 0; o < len(cardVals); o++ {
		c := cardVals[len(cardVals)-1-o]
		for i := 0; i <= deductions; i++ {
			all = append(all, reachable{
				total:    v - 10*i + c,
				hardAces: a + i + o,
			})
		}
	}

	legal := 0
	minTotal := all[0].total
	best := reachable{total: -1}
	for _, r := range all {
		if r.total < minTotal {
			minTotal = r.total
		}
		if r.total > 21 {
			continue
		}
		legal++
		if r.total > best.total || (r.total == best.total && r.hardAces > best.hardAces) {
			best = r
		}
	}

	switch {
	case legal == 0:
		return BustValue()
	case legal == 1:
		// forcing is exhausted, no flexibility left
		return HardValue(minTotal)
	default:
		return SoftValue(best.total, best.hardAces)
	}
}

func (h *Hand) insertIntoBlackjack(card cards.Card) Value {
	// only reachable when a caller deviates from normal flow; the hand
	// degrades and never regains blackjack status
	var all []int
	for _, c := range card.Values() {
		all = append(all, c+11, c+21)
	}
	if minInt(all) > 21 {
		return BustValue()
	}
	return HardValue(minInt(all))
}

// verify asserts the evaluator's invariants after every insert.
// Violations are programming errors, not recoverable conditions.
func (h *Hand) verify() {
	if total, ok := h.val.Points(); ok && total > 21 {
		panic(fmt.Sprintf("hand value %d exceeds 21 without busting", total))
	}
	if h.val.Kind == KindBlackjack && len(h.cards) != 2 {
		panic(fmt.Sprintf("blackjack with %d cards", len(h.cards)))
	}
	if h.val.Kind == KindSoft && h.val.HardAces >= h.numAces {
		panic(fmt.Sprintf("soft hand with %d forced aces out of %d", h.val.HardAces, h.numAces))
	}
}

// Value returns the numeric value of the hand.
// The second return is false iff the hand is bust.
func (h *Hand) Value() (int, bool) {
	return h.val.Points()
}

// Classification returns the hand's tagged value variant
func (h *Hand) Classification() Value {
	return h.val
}

// Busted checks if the hand is a bust
func (h *Hand) Busted() bool {
	return h.val.Kind == KindBust
}

// Blackjack checks if the hand is a two-card 21
func (h *Hand) Blackjack() bool {
	return h.val.Kind == KindBlackjack
}

// IsEmpty checks if the hand has no cards
func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// IsSoft checks if the hand counts an ace as 11
func (h *Hand) IsSoft() bool {
	return h.val.Kind == KindSoft || h.val.Kind == KindBlackjack
}

// CanSplit checks if the hand is exactly two cards of equal rank
func (h *Hand) CanSplit() bool {
	return len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank
}

// CanDouble checks if the hand is exactly two cards
func (h *Hand) CanDouble() bool {
	return len(h.cards) == 2
}

// Cards returns a copy of the cards in the hand, in deal order
func (h *Hand) Cards() cards.Cards {
	out := make(cards.Cards, len(h.cards))
	copy(out, h.cards)
	return out
}

// String renders the hand as its card list plus value or a bust marker
func (h *Hand) String() string {
	if total, ok := h.Value(); ok {
		return fmt.Sprintf("[%s] (Value: %d)", h.cards.String(), total)
	}
	return fmt.Sprintf("[%s] (Bust)", h.cards.String())
}

func minInt(vals []int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxInt(vals []int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
