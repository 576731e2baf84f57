package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/cardroom/blackjack/blackjack"
	"github.com/cardroom/blackjack/events"
	"github.com/google/uuid"
	"github.com/sanity-io/litter"
)

// Rules configures a blackjack session
type Rules struct {
	NumDecks       int
	NumSpots       int
	MaxPenetration float64
}

// DefaultRules plays six decks, one spot, and reshuffles past 75% penetration
func DefaultRules() Rules {
	return Rules{NumDecks: 6, NumSpots: 1, MaxPenetration: 0.75}
}

// Session drives one blackjack table through the deal/hit/resolve lifecycle
// and emits events as the round advances. The table's contract violations are
// fatal; the session validates commands first so remote callers get errors
// instead of panics.
type Session struct {
	ID    string
	rules Rules
	table *blackjack.Table

	store         events.EventStore
	eventHandlers []events.EventHandler
	debug         bool
}

// NewSession creates a session with a freshly shuffled shoe
func NewSession(rules Rules, store events.EventStore) *Session {
	return &Session{
		ID:    uuid.NewString(),
		rules: rules,
		table: blackjack.NewTable(rules.NumDecks, rules.NumSpots, rules.MaxPenetration),
		store: store,
	}
}

// NewSessionWithRand creates a session whose shoe shuffles with the provided
// random source, for deterministic tests
func NewSessionWithRand(rules Rules, store events.EventStore, rng *rand.Rand) *Session {
	return &Session{
		ID:    uuid.NewString(),
		rules: rules,
		table: blackjack.NewTableWithRand(rules.NumDecks, rules.NumSpots, rules.MaxPenetration, rng),
		store: store,
	}
}

// AddEventHandler registers a handler for the session's events
func (s *Session) AddEventHandler(handler events.EventHandler) {
	s.eventHandlers = append(s.eventHandlers, handler)
}

// SetDebug toggles dumping of emitted events to stdout
func (s *Session) SetDebug(debug bool) {
	s.debug = debug
}

// Rules returns the session's configuration
func (s *Session) Rules() Rules {
	return s.rules
}

// Table returns the underlying table
func (s *Session) Table() *blackjack.Table {
	return s.table
}

func (s *Session) emit(event events.Event) {
	if s.debug {
		litter.D(event)
	}
	if s.store != nil {
		_ = s.store.Append(event)
	}
	for _, handler := range s.eventHandlers {
		handler(event)
	}
}

// StartRound deals the initial hands, reshuffling the shoe first when
// penetration requires it, then peeks at the dealer's hand. It reports
// whether the shoe was reshuffled and whether the dealer has blackjack
// (which ends the round immediately).
func (s *Session) StartRound() (reshuffled, dealerBlackjack bool, err error) {
	if s.table.State() != blackjack.TableStateOpen {
		return false, false, errors.New("cannot deal: hands are already on the table")
	}

	reshuffled = s.table.Deal()
	if reshuffled {
		s.emit(events.ShoeReshuffled{TableID: s.ID, NumDecks: s.rules.NumDecks})
	}
	s.emit(events.RoundDealt{TableID: s.ID, Reshuffled: reshuffled, Spots: s.rules.NumSpots})

	if s.table.Peek() {
		s.emitDealerRevealed()
		return reshuffled, true, nil
	}
	return reshuffled, false, nil
}

// Hit deals one more card to the given spot and reports whether the hand
// busted.
func (s *Session) Hit(spot int) (busted bool, err error) {
	if err := s.checkSpot(spot); err != nil {
		return false, err
	}
	if s.table.State() != blackjack.TableStateDealt {
		return false, errors.New("cannot hit: spot play is closed")
	}

	hand := s.table.PlayerHand(spot)
	if hand.Busted() {
		// the table treats this as a no-op, so no card event is owed
		return true, nil
	}

	busted = s.table.PlayerHit(spot)

	dealt := hand.Cards()
	value, _ := hand.Value()
	s.emit(events.CardDealt{
		TableID: s.ID,
		Spot:    spot,
		Card:    dealt[len(dealt)-1].String(),
		Value:   value,
		Busted:  busted,
	})
	if busted {
		s.emit(events.PlayerBusted{TableID: s.ID, Spot: spot})
	}
	return busted, nil
}

// PlayDealer flips the hole card and draws for the dealer until the hand
// reaches 17 or busts (the dealer stands on all 17s). It reports whether
// the dealer busted.
func (s *Session) PlayDealer() (busted bool, err error) {
	if s.table.State() == blackjack.TableStateOpen {
		return false, errors.New("cannot play dealer: no cards are dealt")
	}

	for {
		value, ok := s.table.DealerValue()
		if !ok || value >= 17 {
			break
		}
		s.table.DealerHit()
	}
	s.table.FlipHole()

	s.emitDealerRevealed()
	return s.table.DealerHand().Busted(), nil
}

// Outcomes returns the outcome of every spot against the dealer
func (s *Session) Outcomes() ([]blackjack.Outcome, error) {
	if s.table.State() == blackjack.TableStateOpen {
		return nil, errors.New("no round in progress")
	}

	outcomes := make([]blackjack.Outcome, s.rules.NumSpots)
	for spot := range outcomes {
		outcomes[spot] = s.table.GetOutcome(spot)
	}
	return outcomes, nil
}

// ResolveRound computes the outcome of every spot, emits the resolution,
// and clears the table for the next round.
func (s *Session) ResolveRound() ([]blackjack.Outcome, error) {
	if s.table.State() != blackjack.TableStateFlipped {
		return nil, errors.New("cannot resolve: dealer has not flipped")
	}

	outcomes, err := s.Outcomes()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(outcomes))
	for i, outcome := range outcomes {
		names[i] = string(outcome)
	}
	s.emit(events.RoundResolved{TableID: s.ID, Outcomes: names})

	s.table.ClearHands()
	s.emit(events.HandsCleared{TableID: s.ID})

	return outcomes, nil
}

// Reset rebuilds the shoe from scratch and restarts the session
func (s *Session) Reset() error {
	if s.table.State() != blackjack.TableStateOpen {
		return errors.New("cannot reset: a round is in progress")
	}

	s.table.Reset()
	s.emit(events.SessionReset{TableID: s.ID})
	return nil
}

// PlaceBet records a bet placeholder for a spot
func (s *Session) PlaceBet(spot int, bet blackjack.Bet) error {
	if err := s.checkSpot(spot); err != nil {
		return err
	}
	if s.table.State() != blackjack.TableStateOpen {
		return errors.New("cannot place a bet: a round is in progress")
	}

	s.table.PlaceBet(spot, bet)
	return nil
}

func (s *Session) checkSpot(spot int) error {
	if spot < 0 || spot >= s.rules.NumSpots {
		return fmt.Errorf("spot %d does not exist", spot)
	}
	return nil
}

func (s *Session) emitDealerRevealed() {
	dealer := s.table.DealerHand()
	value, _ := dealer.Value()

	dealt := dealer.Cards()
	names := make([]string, len(dealt))
	for i, card := range dealt {
		names[i] = card.String()
	}

	s.emit(events.DealerRevealed{
		TableID:   s.ID,
		Cards:     names,
		Value:     value,
		Busted:    dealer.Busted(),
		Blackjack: dealer.Blackjack(),
	})
}
