package blackjack

// Chip is a betting chip denomination
type Chip int

const (
	// ChipOne is a chip worth 1 unit
	ChipOne Chip = 1
	// ChipFive is a chip worth 5 units
	ChipFive Chip = 5
	// ChipTwentyFive is a chip worth 25 units
	ChipTwentyFive Chip = 25
	// ChipHundred is a chip worth 100 units
	ChipHundred Chip = 100
)

// Units returns the value of the chip in units
func (c Chip) Units() int {
	return int(c)
}

var chipDenominations = []Chip{ChipHundred, ChipTwentyFive, ChipFive, ChipOne}

// Bet is a stack of chips with a cached unit total. It is a pure value
// object: the table records bets per spot but never settles them.
// The zero value is an empty bet.
type Bet struct {
	chips map[Chip]int
	units int
}

// BetFrom creates a bet of a single chip
func BetFrom(chip Chip) Bet {
	return Bet{
		chips: map[Chip]int{chip: 1},
		units: chip.Units(),
	}
}

// Units returns the total value of the bet in units
func (b Bet) Units() int {
	return b.units
}

// Chips returns the chips in the bet, largest denominations first
func (b Bet) Chips() []Chip {
	var out []Chip
	for _, chip := range chipDenominations {
		for i := 0; i < b.chips[chip]; i++ {
			out = append(out, chip)
		}
	}
	return out
}

// Add returns the combined bet
func (b Bet) Add(other Bet) Bet {
	chips := b.cloneChips()
	for chip, count := range other.chips {
		chips[chip] += count
	}
	return Bet{chips: chips, units: b.units + other.units}
}

// Sub returns the bet with the other bet's chips removed.
//
// Panics with an overflow when removing chips the bet does not hold.
func (b Bet) Sub(other Bet) Bet {
	chips := b.cloneChips()
	for chip, count := range other.chips {
		if chips[chip] < count {
			panic("bet subtraction overflow")
		}
		chips[chip] -= count
	}
	return Bet{chips: chips, units: b.units - other.units}
}

// MulBy returns the bet with every chip count multiplied by n
func (b Bet) MulBy(n int) Bet {
	chips := make(map[Chip]int, len(b.chips))
	for chip, count := range b.chips {
		chips[chip] = count * n
	}
	return Bet{chips: chips, units: b.units * n}
}

func (b Bet) cloneChips() map[Chip]int {
	chips := make(map[Chip]int, len(b.chips))
	for chip, count := range b.chips {
		chips[chip] = count
	}
	return chips
}
