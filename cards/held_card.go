package cards

type CardVisibility string

const (
	FaceDown    CardVisibility = "down" // Nobody can see
	FaceUpToAll CardVisibility = "all"  // Everyone can see
)

// HeldCard represents a card that's on the table with visibility information,
// such as the dealer's hole card before the flip
type HeldCard struct {
	Card
	Visibility CardVisibility
}

// NewHeldCard creates a new held card with the specified visibility
func NewHeldCard(card Card, visibility CardVisibility) HeldCard {
	return HeldCard{
		Card:       card,
		Visibility: visibility,
	}
}

// Hide sets the card as face down
func (c *HeldCard) Hide() {
	c.Visibility = FaceDown
}

// Flip sets the card as face up to all
func (c *HeldCard) Flip() {
	c.Visibility = FaceUpToAll
}

// String renders the card, masking it while face down
func (c HeldCard) String() string {
	if c.Visibility == FaceDown {
		return "🂠"
	}
	return c.Card.String()
}
