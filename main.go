// Command mancala prints, replays and self-plays Kalah games.
package main

import (
	"context"
	"fmt"
	"os"

	"mancala/engine"
	"mancala/game"
	"mancala/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "mancala",
		Usage: "Kalah rules engine",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "log every applied move"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(cmd.Bool("debug"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:   "board",
				Usage:  "print the starting board",
				Action: runBoard,
			},
			{
				Name:      "apply",
				Usage:     "apply pit indices from the starting board",
				ArgsUsage: "<pit> [pit...]",
				Action:    runApply,
			},
			{
				Name:  "play",
				Usage: "self-play a game between two random agents",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "seed", Value: meta.DEFAULT_SEED, Usage: "seed of player 0, player 1 uses seed+1"},
					&cli.IntFlag{Name: "max-moves", Value: meta.MAX_MOVES, Usage: "stop after this many moves"},
					&cli.BoolFlag{Name: "verbose", Usage: "print the board after every move"},
				},
				Action: runPlay,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("mancala failed")
	}
}

func setupLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func runBoard(ctx context.Context, cmd *cli.Command) error {
	fmt.Println(game.NewState())
	return nil
}

func runApply(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("apply needs at least one pit")
	}

	state := game.NewState()
	for _, label := range cmd.Args().Slice() {
		action, err := game.ParseAction(label)
		if err != nil {
			return err
		}
		player := state.CurrentPlayer()
		if err := state.ApplyMove(action); err != nil {
			return fmt.Errorf("move %d: %w", state.MoveNumber()+1, err)
		}
		fmt.Printf("player %d sows pit %s\n%s\n\n", player, state.ActionToString(player, action), state)
	}

	printOutcome(state)
	return nil
}

func runPlay(ctx context.Context, cmd *cli.Command) error {
	seed := uint64(cmd.Int("seed"))
	agents := []engine.Agent{engine.NewRandomAgent(seed), engine.NewRandomAgent(seed + 1)}

	options := []engine.Option{engine.WithMetrics(), engine.WithMaxMoves(int(cmd.Int("max-moves")))}
	if cmd.Bool("verbose") {
		options = append(options, engine.WithObserver(func(s game.State, move engine.MoveMetric) {
			fmt.Printf("%d. player %d sows pit %d\n%s\n\n", move.Step, move.Player, move.Action, s)
		}))
	}

	state := game.NewState()
	e, err := engine.LocalEngine(state, agents, options...)
	if err != nil {
		return err
	}
	result, err := e.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(state)
	printOutcome(state)
	fmt.Printf("moves: %d, extra turns: %d, duration: %s\n", result.Game.TotalMoves, result.Game.ExtraTurns, result.Game.Duration)
	return nil
}

func printOutcome(state *game.MancalaState) {
	player0, player1 := state.Scores()
	fmt.Printf("seeds: player 0 %d, player 1 %d\n", player0, player1)
	if !state.IsTerminal() {
		fmt.Printf("player %d to move, legal pits %v\n", state.CurrentPlayer(), state.LegalActions())
		return
	}
	fmt.Printf("returns: %v\n", state.Returns())
	if winner := state.Winner(); winner != game.PlayerNone {
		fmt.Printf("winner: player %d\n", winner)
	} else {
		fmt.Println("draw")
	}
}
