// Command trainer deals through a shoe one card at a time so you can
// practice keeping the running count.
package main

import (
	"flag"
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/cardroom/blackjack/cards"
)

func main() {
	decks := flag.Int("decks", 2, "number of decks in the shoe")
	flag.Parse()

	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Shoe ", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Trainer", pterm.FgDarkGray.ToStyle()),
	).Render()

	logger.Info("Shoe loaded", "decks", *decks)

	shoe := cards.NewShoe(*decks)
	for !shoe.IsEmpty() {
		action, _ := pterm.DefaultInteractiveContinue.
			WithDefaultText("Deal the next card?").
			WithOptions([]string{"deal", "check", "quit"}).
			Show()

		switch action {
		case "deal":
			// the loop guard keeps the shoe non-empty here
			card, _ := shoe.Deal()
			pterm.DefaultBox.
				WithTitle("Card").
				WithTitleTopCenter().
				Println(card.String())
		case "check":
			pterm.Info.Printfln("Running count: %+.1f", shoe.RunningCount())
			pterm.Info.Printfln("Penetration: %.0f%%", shoe.Penetration()*100)
		case "quit":
			logger.Info("Final count", "count", shoe.RunningCount(), "penetration", shoe.Penetration())
			return
		}
	}

	pterm.Success.Printfln("Shoe exhausted. Final count: %+.1f", shoe.RunningCount())
}
