package blackjack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T, numDecks, numSpots int, maxPenetration float64) *Table {
	t.Helper()
	return NewTableWithRand(numDecks, numSpots, maxPenetration, rand.New(rand.NewSource(11)))
}

// rigTable builds a table in the Dealt phase with exact hands, bypassing the
// shoe, so outcome scenarios are deterministic.
func rigTable(t *testing.T, dealer []string, players ...[]string) *Table {
	t.Helper()
	table := testTable(t, 1, len(players), 1)
	table.state = TableStateDealt
	table.dealer = handOf(t, dealer...)
	for i, shorthands := range players {
		table.playerHands[i] = handOf(t, shorthands...)
	}
	return table
}

func TestNewTable(t *testing.T) {
	table := NewTable(2, 3, 0.75)
	assert.Equal(t, TableStateOpen, table.State())
	assert.Equal(t, 3, table.NumSpots())
	assert.True(t, table.DealerHand().IsEmpty())
	_, ok := table.DealerValue()
	assert.False(t, ok)
}

func TestMaxPenetrationClamped(t *testing.T) {
	table := NewTable(1, 1, 1.7)
	assert.Equal(t, 1.0, table.maxPenetration)

	table = NewTable(1, 1, -0.3)
	assert.Equal(t, 0.0, table.maxPenetration)
}

func TestDeal(t *testing.T) {
	table := testTable(t, 1, 2, 1)

	reshuffled := table.Deal()
	assert.False(t, reshuffled)
	assert.Equal(t, TableStateDealt, table.State())

	assert.Equal(t, 2, table.DealerHand().Len())
	for _, hand := range table.PlayerHands() {
		assert.Equal(t, 2, hand.Len())
	}

	// 2 players + dealer, two cards each
	assert.InDelta(t, 6.0/52.0, table.Penetration(), 1e-9)

	_, ok := table.DealerValue()
	assert.True(t, ok)
}

func TestDealReshufflesPastMaxPenetration(t *testing.T) {
	table := testTable(t, 1, 1, 0)

	assert.False(t, table.Deal(), "fresh shoe has zero penetration")
	table.FlipHole()
	table.ClearHands()

	// four cards are gone, so penetration now exceeds the zero threshold
	assert.True(t, table.Deal())
	assert.InDelta(t, 4.0/52.0, table.Penetration(), 1e-9)
}

func TestDealPanicsWhenDealt(t *testing.T) {
	table := testTable(t, 1, 1, 1)
	table.Deal()
	assert.Panics(t, func() { table.Deal() })
}

func TestPeekMovesToFlippedOnDealerBlackjack(t *testing.T) {
	table := rigTable(t, []string{"As", "Kd"}, []string{"10s", "9d"})

	assert.True(t, table.Peek())
	assert.Equal(t, TableStateFlipped, table.State())

	// the round is over, players may no longer act
	assert.Panics(t, func() { table.PlayerHit(0) })
}

func TestPeekNoBlackjack(t *testing.T) {
	table := rigTable(t, []string{"10s", "7d"}, []string{"10s", "9d"})

	assert.False(t, table.Peek())
	assert.Equal(t, TableStateDealt, table.State())
}

func TestPeekPanicsWhenOpen(t *testing.T) {
	table := testTable(t, 1, 1, 1)
	assert.Panics(t, func() { table.Peek() })
}

func TestPlayerHit(t *testing.T) {
	table := testTable(t, 1, 1, 1)
	table.Deal()

	busted := false
	for !busted {
		before := table.PlayerHand(0).Len()
		busted = table.PlayerHit(0)
		assert.Equal(t, before+1, table.PlayerHand(0).Len())
	}
	assert.True(t, table.PlayerHand(0).Busted())

	// hitting a busted hand is a no-op
	before := table.PlayerHand(0).Len()
	assert.True(t, table.PlayerHit(0))
	assert.Equal(t, before, table.PlayerHand(0).Len())
}

func TestPlayerHitPanicsWhenOpen(t *testing.T) {
	table := testTable(t, 1, 1, 1)
	assert.Panics(t, func() { table.PlayerHit(0) })
}

func TestDealerHitFlips(t *testing.T) {
	table := testTable(t, 1, 1, 1)
	table.Deal()

	table.DealerHit()
	assert.Equal(t, TableStateFlipped, table.State())
	assert.Equal(t, 3, table.DealerHand().Len())

	// dealer may keep drawing after the flip
	if !table.DealerHand().Busted() {
		table.DealerHit()
		assert.Equal(t, 4, table.DealerHand().Len())
	}
}

func TestDealerHitPanicsWhenOpen(t *testing.T) {
	table := testTable(t, 1, 1, 1)
	assert.Panics(t, func() { table.DealerHit() })
}

func TestFlipHole(t *testing.T) {
	table := testTable(t, 1, 1, 1)
	table.Deal()
	table.FlipHole()
	assert.Equal(t, TableStateFlipped, table.State())

	table.ClearHands()
	assert.Panics(t, func() { table.FlipHole() })
}

func TestClearHands(t *testing.T) {
	table := testTable(t, 1, 2, 1)
	table.Deal()
	table.FlipHole()
	table.ClearHands()

	assert.Equal(t, TableStateOpen, table.State())
	assert.True(t, table.DealerHand().IsEmpty())
	for _, hand := range table.PlayerHands() {
		assert.True(t, hand.IsEmpty())
	}
}

func TestClearHandsPanicsWhenOpen(t *testing.T) {
	table := testTable(t, 1, 1, 1)
	assert.Panics(t, func() { table.ClearHands() })
}

func TestClearHandsPanicsBeforeFlip(t *testing.T) {
	table := testTable(t, 1, 1, 1)
	table.Deal()
	assert.Panics(t, func() { table.ClearHands() })
}

func TestReset(t *testing.T) {
	table := testTable(t, 1, 1, 1)
	table.Deal()
	table.FlipHole()
	table.ClearHands()

	require.Greater(t, table.Penetration(), 0.0)
	table.Reset()
	assert.Equal(t, 0.0, table.Penetration())
	assert.Equal(t, 0.0, table.RunningCount())
}

func TestResetPanicsWhileDealt(t *testing.T) {
	table := testTable(t, 1, 1, 1)
	table.Deal()
	assert.Panics(t, func() { table.Reset() })
}

func TestGetOutcomeDealerBlackjack(t *testing.T) {
	table := rigTable(t, []string{"As", "Kd"},
		[]string{"Ks", "Qd"}, // 20 still loses to a natural
		[]string{"Ah", "Kc"}, // blackjack pushes
	)

	assert.Equal(t, OutcomeLose, table.GetOutcome(0))
	assert.Equal(t, OutcomePush, table.GetOutcome(1))
}

func TestGetOutcomePlayerBlackjack(t *testing.T) {
	table := rigTable(t, []string{"10s", "6d"}, []string{"Ah", "Kc"})
	assert.Equal(t, OutcomeBlackjack, table.GetOutcome(0))
}

func TestGetOutcomeComparisons(t *testing.T) {
	// dealer 17 vs player 19
	table := rigTable(t, []string{"10s", "7d"}, []string{"10h", "9c"})
	assert.Equal(t, OutcomeWin, table.GetOutcome(0))

	// dealer 19 vs player 17
	table = rigTable(t, []string{"10s", "9d"}, []string{"10h", "7c"})
	assert.Equal(t, OutcomeLose, table.GetOutcome(0))

	// equal totals push
	table = rigTable(t, []string{"10s", "8d"}, []string{"10h", "8c"})
	assert.Equal(t, OutcomePush, table.GetOutcome(0))
}

func TestGetOutcomePlayerBustLosesRegardless(t *testing.T) {
	table := rigTable(t, []string{"10s", "8d"}, []string{"10h", "9c", "5s"})
	require.True(t, table.PlayerHand(0).Busted())
	assert.Equal(t, OutcomeLose, table.GetOutcome(0))

	// even when the dealer busts afterwards
	table = rigTable(t, []string{"10s", "8d", "9h"}, []string{"10h", "9c", "5s"})
	require.True(t, table.DealerHand().Busted())
	assert.Equal(t, OutcomeLose, table.GetOutcome(0))
}

func TestGetOutcomeDealerBust(t *testing.T) {
	table := rigTable(t, []string{"10s", "8d", "9h"}, []string{"10h", "2c"})
	assert.Equal(t, OutcomeWin, table.GetOutcome(0))
}

func TestPlaceBet(t *testing.T) {
	table := testTable(t, 1, 2, 1)
	table.PlaceBet(0, BetFrom(ChipTwentyFive))
	assert.Equal(t, 25, table.PlayerBet(0).Units())
	assert.Equal(t, 0, table.PlayerBet(1).Units())

	table.Deal()
	assert.Panics(t, func() { table.PlaceBet(0, BetFrom(ChipFive)) })
}

func TestTableString(t *testing.T) {
	table := rigTable(t, []string{"10s", "7d"}, []string{"Ah", "Kc"})
	out := table.String()
	assert.Contains(t, out, "Dealer: [10♠, 7♦] (Value: 17)")
	assert.Contains(t, out, "Player 1: [A♥, K♣] (Value: 21)")
}

func TestFullRoundFlow(t *testing.T) {
	table := testTable(t, 2, 3, 0.75)

	for round := 0; round < 20; round++ {
		table.Deal()
		if !table.Peek() {
			for spot := 0; spot < table.NumSpots(); spot++ {
				// naive strategy: draw to 17
				for {
					v, ok := table.PlayerHand(spot).Value()
					if !ok || v >= 17 {
						break
					}
					table.PlayerHit(spot)
				}
			}
			for {
				v, ok := table.DealerValue()
				if !ok || v >= 17 {
					break
				}
				table.DealerHit()
			}
			table.FlipHole()
		}

		for spot := 0; spot < table.NumSpots(); spot++ {
			outcome := table.GetOutcome(spot)
			assert.Contains(t, []Outcome{OutcomeBlackjack, OutcomeWin, OutcomeLose, OutcomePush}, outcome)
		}

		table.ClearHands()
		assert.Equal(t, TableStateOpen, table.State())
	}
}
