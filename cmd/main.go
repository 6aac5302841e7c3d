package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/joker-poker/application"
	"github.com/luca-patrignani/joker-poker/config"
	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/game"
	"github.com/luca-patrignani/joker-poker/storage"
)

const (
	menuPlay    = "Play cards"
	menuDiscard = "Discard cards"
	menuSuggest = "Suggest a hand"
	menuSave    = "Save"
	menuQuit    = "Quit"

	menuNewRun = "New run"
	menuResume = "Resume saved run"
	skipJoker  = "Skip"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	pterm.DefaultLogger.Level = ptermLevel(cfg.LogLevel)
	// Create a new slog logger with the default PTerm logger as handler
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("J", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker", pterm.FgDarkGray.ToStyle()),
	).Render()

	var repo storage.Repository
	db, err := storage.OpenAndMigrate(cfg.DatabasePath)
	if err != nil {
		logger.Error("saves are disabled", "path", cfg.DatabasePath, "error", err.Error())
	} else {
		repo = storage.NewSQLiteRepository(db)
	}
	orchestrator := application.NewGameOrchestrator(cfg.Run(), repo, logger)

	if err := startOrResume(orchestrator, repo, cfg.SaveSlot); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	var panel []pterm.Panel
	for {
		run := orchestrator.Run()
		printState(run, panel...)
		panel = nil

		switch run.Status() {
		case game.Victory:
			pterm.Success.Printfln("You beat all %d antes!", run.Config().Antes)
			return
		case game.Defeat:
			pterm.Error.Printfln("Round lost at ante %d with %d/%d.", run.Ante()+1, run.Current().Score(), run.Current().Target())
			return
		case game.Cleared:
			pterm.Success.Printfln("Blind beaten with %d points.", run.Current().Score())
			if err := visitShop(orchestrator); err != nil {
				logger.Warn("shop failed", "error", err.Error())
			}
			if _, err := orchestrator.Next(); err != nil {
				logger.Error(err.Error())
				os.Exit(1)
			}
			continue
		}

		p, quit := inputAction(orchestrator, cfg.SaveSlot)
		if quit {
			return
		}
		if p != nil {
			panel = append(panel, *p)
		}
	}
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	}
	return pterm.LogLevelError
}

func startOrResume(o *application.GameOrchestrator, repo storage.Repository, slot string) error {
	if repo != nil {
		if _, err := repo.Load(slot); err == nil {
			choice, _ := pterm.DefaultInteractiveSelect.WithDefaultText("A saved run was found").WithOptions([]string{menuResume, menuNewRun}).Show()
			if choice == menuResume {
				return o.Resume(slot)
			}
		} else if !errors.Is(err, storage.ErrSlotNotFound) {
			pterm.Warning.Printfln("Could not read slot %q: %s", slot, err.Error())
		}
	}

	jokers, err := poker.NewJokers()
	if err != nil {
		return err
	}
	if j, ok := pickJoker(offerJokers(nil, 0, 3), "Pick a starting joker"); ok {
		if err := jokers.Add(j); err != nil {
			return err
		}
	}
	return o.Start(jokers)
}

// inputAction asks for the next action until one succeeds. It returns the
// panel describing the result and whether the player quit.
func inputAction(o *application.GameOrchestrator, slot string) (*pterm.Panel, bool) {
	actions := []string{menuPlay, menuDiscard, menuSuggest, menuSave, menuQuit}
	area, _ := pterm.DefaultArea.Start()
	defer area.Stop()
	for {
		selectedAction, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Select your next action").WithOptions(actions).Show()
		switch selectedAction {
		case menuPlay, menuDiscard:
			hand := o.Run().Current().Hand()
			raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Card positions (e.g. 1,3,5)").Show()
			indices, err := parseIndices(raw, len(hand))
			if err != nil {
				area.Update()
				pterm.Error.Printfln("Invalid selection: %s", err.Error())
				continue
			}
			if selectedAction == menuPlay {
				res, err := o.Play(indices)
				if err != nil {
					area.Update()
					pterm.Error.Printfln("Invalid action: %s", err.Error())
					continue
				}
				p := getResultPanel(res)
				return &p, false
			}
			cards, err := o.Discard(indices)
			if err != nil {
				area.Update()
				pterm.Error.Printfln("Invalid action: %s", err.Error())
				continue
			}
			p := getDiscardPanel(cards)
			return &p, false
		case menuSuggest:
			indices, err := o.Suggest()
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			hand := o.Run().Current().Hand()
			labels := ""
			picked := make([]poker.Card, len(indices))
			for i, idx := range indices {
				picked[i] = hand[idx]
				labels += fmt.Sprintf("%d ", idx+1)
			}
			pterm.Info.Printfln("Try positions %s(%s)", labels, poker.Classify(picked).Name)
		case menuSave:
			spinner, _ := pterm.DefaultSpinner.Start("Saving ...")
			if err := o.Save(slot); err != nil {
				spinner.Fail(err.Error())
				continue
			}
			spinner.Success()
		case menuQuit:
			if confirm, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Quit without saving?").WithDefaultValue(false).Show(); confirm {
				return nil, true
			}
			area.Update()
			pterm.Info.Println("Action cancelled.")
		}
	}
}

func visitShop(o *application.GameOrchestrator) error {
	run := o.Run()
	if len(run.Jokers()) >= poker.MaxJokers {
		pterm.Info.Println("Your joker slots are full.")
		return nil
	}
	j, ok := pickJoker(offerJokers(run.Jokers(), run.Ante()+1, 3), "Pick a joker for the next ante")
	if !ok {
		return nil
	}
	return o.AddJoker(j)
}

func pickJoker(offer []poker.Joker, prompt string) (poker.Joker, bool) {
	options := make([]string, 0, len(offer)+1)
	for _, j := range offer {
		options = append(options, fmt.Sprintf("%s: %s", j.Name(), j.Text()))
	}
	options = append(options, skipJoker)
	choice, _ := pterm.DefaultInteractiveSelect.WithDefaultText(prompt).WithOptions(options).Show()
	for i, opt := range options[:len(offer)] {
		if opt == choice {
			return offer[i], true
		}
	}
	return poker.Joker{}, false
}
