package engine

import (
	"context"
	"fmt"
	"mancala/game"
	"mancala/meta"
	"mancala/utils"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Observer is called after every applied move with the new state.
type Observer func(state game.State, move MoveMetric)

type Engine struct {
	State    game.State
	Agents   []Agent // Indexed by player
	maxMoves int
	metrics  Collector
	observer Observer
}

type Result struct {
	Winner      game.Player // PlayerNone on a draw or when truncated
	Returns     []float64   // Nil when truncated
	Moves       int
	Truncated   bool
	Game        GameMetric
	MoveMetrics []MoveMetric
}

func WithMaxMoves(maxMoves int) Option {
	return func(e *Engine) {
		if maxMoves > 0 {
			e.maxMoves = maxMoves
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = NewCollector()
	}
}

func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

// LocalEngine plays state to the end with one agent per player.
func LocalEngine(state game.State, agents []Agent, options ...Option) (*Engine, error) {
	if state == nil {
		return nil, fmt.Errorf("engine needs a state")
	}
	if len(agents) != game.NumPlayers {
		return nil, fmt.Errorf("need %d agents, got %d", game.NumPlayers, len(agents))
	}

	e := &Engine{ // Default values
		State:    state,
		Agents:   agents,
		maxMoves: meta.MAX_MOVES,
		metrics:  NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the game loop until the state is terminal, the move cap is
// reached or ctx is cancelled.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	starting := e.State.CurrentPlayer()
	e.metrics.Start(starting)
	log.Info().Msgf("player %d is starting", starting)

	moves := 0
	for !e.State.IsTerminal() && moves < e.maxMoves {
		if err := ctx.Err(); err != nil {
			return Result{Moves: moves}, fmt.Errorf("game stopped after %d moves: %w", moves, err)
		}

		move, err := e.step(moves + 1)
		if err != nil {
			return Result{Moves: moves}, err
		}
		e.metrics.AddMove(move)
		if e.observer != nil {
			e.observer(e.State, move)
		}
		moves++
	}

	result := Result{Winner: game.PlayerNone, Moves: moves}
	if e.State.IsTerminal() {
		result.Returns = e.State.Returns()
		result.Winner = winner(result.Returns)
		log.Info().Msgf("game over after %d moves, returns %v", moves, result.Returns)
	} else {
		result.Truncated = true
		log.Warn().Msgf("stopped after %d moves without a terminal state", moves)
	}
	result.Game, result.MoveMetrics = e.metrics.Complete(result.Winner, result.Returns, result.Truncated)
	return result, nil
}

func (e *Engine) step(step int) (MoveMetric, error) {
	player := e.State.CurrentPlayer()
	legal := e.State.LegalActions()

	start := time.Now()
	action, err := e.Agents[player].FindMove(e.State.Clone())
	elapsed := time.Since(start)
	if err != nil {
		return MoveMetric{}, fmt.Errorf("player %d could not find a move at step %d: %w", player, step, err)
	}

	if !utils.Contains(legal, action) {
		log.Warn().Msgf("player %d chose pit %d, legal pits are %v", player, action, legal)
	}
	if err := e.State.ApplyMove(action); err != nil {
		return MoveMetric{}, fmt.Errorf("player %d at step %d: %w", player, step, err)
	}

	move := MoveMetric{
		Step:      step,
		Player:    player,
		Action:    action,
		ExtraTurn: e.State.CurrentPlayer() == player,
		Hash:      e.State.Hash(),
		Duration:  elapsed,
	}
	log.Debug().
		Int("step", step).
		Int("player", int(player)).
		Int("action", int(action)).
		Bool("extra_turn", move.ExtraTurn).
		Uint64("hash", uint64(move.Hash)).
		Msg("move applied")
	return move, nil
}

// winner maps returns to the player with a positive reward.
func winner(returns []float64) game.Player {
	for player, reward := range returns {
		if reward > 0 {
			return game.Player(player)
		}
	}
	return game.PlayerNone
}
