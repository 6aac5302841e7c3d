package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/game"
)

func cardLabel(c poker.Card) string {
	if c.Suit() == poker.Heart || c.Suit() == poker.Diamond {
		return pterm.LightRed(c.String())
	}
	return pterm.LightBlue(c.String())
}

func getResultPanel(res poker.PlayResult) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	cards := make([]string, len(res.Cards))
	for i, c := range res.Cards {
		cards[i] = cardLabel(c)
	}
	text := pterm.Sprintfln("%s  %s", strings.Join(cards, " "), pterm.LightYellow(res.Hand.Name))
	text += pterm.Sprintfln("%d chips × %d mult before jokers", res.Hand.Chips, res.Hand.Mult)
	text += pterm.Sprintf("scored %s, total %d", pterm.LightGreen(res.Score), res.Total)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|LAST HAND|")).WithTitleTopCenter().Sprint(text)}
}

func getDiscardPanel(cards []poker.Card) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = cardLabel(c)
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|DISCARDED|")).WithTitleTopCenter().Sprint(strings.Join(labels, " "))}
}

func printState(run *game.Run, additionalPanel ...pterm.Panel) {
	round := run.Current()
	dashboard := []pterm.Panel{{Data: printHandInfo(round.Hand())}}
	dashboard = append(dashboard, additionalPanel...)

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: printRoundInfo(run)}, {Data: printJokerInfo(round.Jokers())}},
		dashboard,
	}).Render()
}

func printRoundInfo(run *game.Run) string {
	round := run.Current()
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.Sprintf("Ante %d/%d", run.Ante()+1, run.Config().Antes)).WithTitleTopLeft().Sprintf(
		"Blind: %d\nScore: %s\nHands: %d\nDiscards: %d\nDeck: %d",
		round.Target(), pterm.LightGreen(round.Score()), round.PlaysLeft(), round.DiscardsLeft(), round.DeckLeft())
}

func printJokerInfo(jokers []poker.Joker) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	if len(jokers) == 0 {
		return pbox.WithTitle("Jokers").WithTitleTopLeft().Sprint(pterm.Gray("none"))
	}
	lines := make([]string, len(jokers))
	for i, j := range jokers {
		lines[i] = pterm.Sprintf("%s: %s", pterm.LightMagenta(j.Name()), j.Text())
	}
	return pbox.WithTitle(pterm.Sprintf("Jokers %d/%d", len(jokers), poker.MaxJokers)).WithTitleTopLeft().Sprint(strings.Join(lines, "\n"))
}

func printHandInfo(hand []poker.Card) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(10).WithTopPadding(1).WithBottomPadding(1)
	positions := make([]string, len(hand))
	cards := make([]string, len(hand))
	for i, c := range hand {
		label := c.String()
		width := len([]rune(label))
		positions[i] = pterm.Sprintf("%-*d", width, i+1)
		cards[i] = cardLabel(c)
	}
	return pbox.WithTitle("Your hand").WithTitleTopLeft().Sprintf("%s\n%s", strings.Join(cards, "  "), pterm.Gray(strings.Join(positions, "  ")))
}
