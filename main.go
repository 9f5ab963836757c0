package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"mancala/config"
	"mancala/engine"
	"mancala/experiments"
	"mancala/game"
	"mancala/player"
	"mancala/ui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	mode := flag.String("mode", string(cfg.Mode), "Game mode: pvc, pvp or cvc")
	computer := flag.Int("computer", int(cfg.ComputerSide), "Side played by the computer in pvc mode")
	experiment := flag.Bool("experiment", false, "Play the advisor against a random player and record the games")
	games := flag.Int("games", cfg.Games, "Number of games per experiment")
	seed := flag.Uint64("seed", cfg.Seed, "Seed of the random player")
	out := flag.String("out", cfg.OutputDir, "Directory for experiment records")
	logLevel := flag.String("log-level", cfg.LogLevel.String(), "Log level")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *experiment {
		summary, err := experiments.RunMatchups(experiments.Config{Games: *games, Seed: *seed, OutputDir: *out})
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		fmt.Printf("Advisor won %d, random won %d, %d ties, %d unfinished. Records in %s\n",
			summary.AdvisorWins, summary.RandomWins, summary.Ties, summary.Unfinished, summary.Dir)
		return
	}

	prompter := ui.NewPrompter(os.Stdin, os.Stdout)
	players, err := newPlayers(config.Mode(*mode), *computer, prompter)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	// Computer-only games start without waiting for a human
	if config.Mode(*mode) == config.ComputerVsComputer {
		prompter = nil
	}
	if err := play(players, prompter); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func newPlayers(mode config.Mode, computerSide int, prompter *ui.Prompter) ([2]player.Player, error) {
	human := player.NewHuman(prompter)

	switch mode {
	case config.HumanVsHuman:
		return [2]player.Player{human, human}, nil
	case config.ComputerVsComputer:
		return [2]player.Player{player.NewComputer(), player.NewComputer()}, nil
	case config.HumanVsComputer:
		side := game.Side(computerSide)
		if !side.Valid() {
			return [2]player.Player{}, fmt.Errorf("computer side must be 1 or 2, got %d", computerSide)
		}
		players := [2]player.Player{human, human}
		players[side-1] = player.NewComputer()
		return players, nil
	}
	return [2]player.Player{}, fmt.Errorf("unknown mode %q", mode)
}

func play(players [2]player.Player, prompter *ui.Prompter) error {
	ui.Banner(os.Stdout)
	if prompter != nil {
		if err := prompter.WaitForStart(); err != nil {
			return err
		}
	}
	ui.Render(os.Stdout, game.NewBoard())

	e := engine.LocalEngine(players,
		engine.WithoutTurnLimit(),
		engine.WithObserver(func(move game.Cell, state game.GameState) {
			if side, err := move.Owner(); err == nil {
				fmt.Printf("%s played %s\n", side, move)
			}
			ui.Render(os.Stdout, state.Board)
		}),
	)

	result, err := e.Run()
	if errors.Is(err, ui.ErrQuit) {
		return nil
	}
	if err != nil {
		return err
	}
	return ui.AnnounceOutcome(os.Stdout, result.Outcome)
}
