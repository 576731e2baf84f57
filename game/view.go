package game

import (
	"github.com/cardroom/blackjack/blackjack"
	"github.com/cardroom/blackjack/cards"
)

// HandView is a read-only rendering of one hand
type HandView struct {
	Cards     []string `json:"cards"`
	Value     int      `json:"value"` // 0 when busted or concealed
	Soft      bool     `json:"soft"`
	Busted    bool     `json:"busted"`
	Blackjack bool     `json:"blackjack"`
	CanSplit  bool     `json:"canSplit"`
	CanDouble bool     `json:"canDouble"`
}

// SessionView is a snapshot of the whole table for presentation. The
// dealer's hole card stays concealed until the table has flipped.
type SessionView struct {
	TableID      string     `json:"tableId"`
	State        string     `json:"state"`
	Dealer       HandView   `json:"dealer"`
	Players      []HandView `json:"players"`
	RunningCount float64    `json:"runningCount"`
	Penetration  float64    `json:"penetration"`
}

// View builds a snapshot of the session's current state
func (s *Session) View() SessionView {
	players := make([]HandView, s.rules.NumSpots)
	for spot := range players {
		players[spot] = buildHandView(s.table.PlayerHand(spot))
	}

	return SessionView{
		TableID:      s.ID,
		State:        string(s.table.State()),
		Dealer:       s.buildDealerView(),
		Players:      players,
		RunningCount: s.table.RunningCount(),
		Penetration:  s.table.Penetration(),
	}
}

func buildHandView(hand *blackjack.Hand) HandView {
	dealt := hand.Cards()
	names := make([]string, len(dealt))
	for i, card := range dealt {
		names[i] = card.String()
	}

	value, _ := hand.Value()
	return HandView{
		Cards:     names,
		Value:     value,
		Soft:      hand.IsSoft(),
		Busted:    hand.Busted(),
		Blackjack: hand.Blackjack(),
		CanSplit:  hand.CanSplit(),
		CanDouble: hand.CanDouble(),
	}
}

// buildDealerView conceals the hole card until the flip
func (s *Session) buildDealerView() HandView {
	dealer := s.table.DealerHand()
	if s.table.State() != blackjack.TableStateDealt {
		return buildHandView(dealer)
	}

	dealt := dealer.Cards()
	held := make([]cards.HeldCard, len(dealt))
	for i, card := range dealt {
		visibility := cards.FaceUpToAll
		if i > 0 {
			visibility = cards.FaceDown
		}
		held[i] = cards.NewHeldCard(card, visibility)
	}

	names := make([]string, len(held))
	for i, card := range held {
		names[i] = card.String()
	}
	return HandView{Cards: names}
}
