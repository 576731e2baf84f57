package events

// ShoeReshuffled signals the shoe was replaced before dealing because
// penetration crossed the table's threshold
type ShoeReshuffled struct {
	TableID  string `json:"tableId"`
	NumDecks int    `json:"numDecks"`
}

func (e ShoeReshuffled) Name() string { return "SHOE_RESHUFFLED" }

// RoundDealt signals the initial two-card hands are on the table
type RoundDealt struct {
	TableID    string `json:"tableId"`
	Reshuffled bool   `json:"reshuffled"`
	Spots      int    `json:"spots"`
}

func (e RoundDealt) Name() string { return "ROUND_DEALT" }

// CardDealt signals one card was dealt to a player spot after the
// initial deal
type CardDealt struct {
	TableID string `json:"tableId"`
	Spot    int    `json:"spot"`
	Card    string `json:"card"`
	Value   int    `json:"value"` // 0 when the hand busted
	Busted  bool   `json:"busted"`
}

func (e CardDealt) Name() string { return "CARD_DEALT" }

// PlayerBusted signals a player spot went over 21
type PlayerBusted struct {
	TableID string `json:"tableId"`
	Spot    int    `json:"spot"`
}

func (e PlayerBusted) Name() string { return "PLAYER_BUSTED" }

// DealerRevealed signals the dealer's hand is face up, either through a
// peeked blackjack or after the dealer finished drawing
type DealerRevealed struct {
	TableID   string   `json:"tableId"`
	Cards     []string `json:"cards"`
	Value     int      `json:"value"` // 0 when the dealer busted
	Busted    bool     `json:"busted"`
	Blackjack bool     `json:"blackjack"`
}

func (e DealerRevealed) Name() string { return "DEALER_REVEALED" }

// RoundResolved carries the outcome of every spot for the finished round
type RoundResolved struct {
	TableID  string   `json:"tableId"`
	Outcomes []string `json:"outcomes"`
}

func (e RoundResolved) Name() string { return "ROUND_RESOLVED" }

// HandsCleared signals the table returned to the open phase
type HandsCleared struct {
	TableID string `json:"tableId"`
}

func (e HandsCleared) Name() string { return "HANDS_CLEARED" }

// SessionReset signals the shoe was rebuilt and the session restarted
type SessionReset struct {
	TableID string `json:"tableId"`
}

func (e SessionReset) Name() string { return "SESSION_RESET" }
