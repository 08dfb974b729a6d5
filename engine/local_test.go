package engine

import (
	"context"
	"mancala/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomAgents(seed0, seed1 uint64) []Agent {
	return []Agent{NewRandomAgent(seed0), NewRandomAgent(seed1)}
}

func TestLocalEngine(t *testing.T) {
	t.Run("requires a state", func(t *testing.T) {
		_, err := LocalEngine(nil, randomAgents(1, 2))
		require.Error(t, err)
	})

	t.Run("requires one agent per player", func(t *testing.T) {
		_, err := LocalEngine(game.NewState(), []Agent{NewRandomAgent(1)})
		require.Error(t, err)
	})
}

func TestEngineRunScripted(t *testing.T) {
	t.Run("replays a script shared by both seats", func(t *testing.T) {
		state := game.NewState()
		script := NewScriptedAgent(3, 1, 10)
		e, err := LocalEngine(state, []Agent{script, script}, WithMaxMoves(3), WithMetrics())
		require.NoError(t, err)

		result, err := e.Run(context.Background())

		require.NoError(t, err)
		require.True(t, result.Truncated, "Game should stop at the move cap")
		require.Nil(t, result.Returns)
		require.Equal(t, game.PlayerNone, result.Winner)
		require.Equal(t, 3, result.Moves)
		require.Equal(t, game.Board{1, 0, 5, 1, 6, 6, 5, 1, 4, 4, 0, 5, 5, 5}, state.Board())
		require.Equal(t, game.Player1, state.CurrentPlayer())

		require.Len(t, result.MoveMetrics, 3)
		extraTurns := []bool{}
		for _, move := range result.MoveMetrics {
			extraTurns = append(extraTurns, move.ExtraTurn)
		}
		require.Equal(t, []bool{true, false, true}, extraTurns)
		require.Equal(t, game.Player1, result.MoveMetrics[2].Player)
		require.Equal(t, state.Hash(), result.MoveMetrics[2].Hash)
		require.Equal(t, 3, result.Game.TotalMoves)
		require.Equal(t, 2, result.Game.ExtraTurns)
		require.Equal(t, game.Player0, result.Game.StartingPlayer)
		require.True(t, result.Game.Truncated)
	})

	t.Run("fails when the script runs out", func(t *testing.T) {
		script := NewScriptedAgent(3)
		e, err := LocalEngine(game.NewState(), []Agent{script, script})
		require.NoError(t, err)

		result, err := e.Run(context.Background())

		require.ErrorIs(t, err, ErrScriptExhausted)
		require.Equal(t, 1, result.Moves)
	})

	t.Run("fails on an illegal action", func(t *testing.T) {
		state := game.NewState()
		script := NewScriptedAgent(7)
		e, err := LocalEngine(state, []Agent{script, script})
		require.NoError(t, err)

		_, err = e.Run(context.Background())

		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, 0, state.MoveNumber(), "State should not change")
	})
}

func TestEngineRunRandom(t *testing.T) {
	t.Run("plays to a terminal state", func(t *testing.T) {
		state := game.NewState()
		e, err := LocalEngine(state, randomAgents(1, 2), WithMetrics())
		require.NoError(t, err)

		result, err := e.Run(context.Background())

		require.NoError(t, err)
		require.True(t, state.IsTerminal())
		require.False(t, result.Truncated)
		require.Equal(t, state.Returns(), result.Returns)
		require.Equal(t, state.Winner(), result.Winner)
		require.Equal(t, state.MoveNumber(), result.Moves)
		require.Len(t, result.MoveMetrics, result.Moves)
		require.Equal(t, result.Winner, result.Game.Winner)
		require.False(t, result.Game.EndTime.Before(result.Game.StartTime))
	})

	t.Run("same seeds replay the same game", func(t *testing.T) {
		first, second := game.NewState(), game.NewState()

		e1, err := LocalEngine(first, randomAgents(7, 8))
		require.NoError(t, err)
		_, err = e1.Run(context.Background())
		require.NoError(t, err)

		e2, err := LocalEngine(second, randomAgents(7, 8))
		require.NoError(t, err)
		_, err = e2.Run(context.Background())
		require.NoError(t, err)

		require.Equal(t, first.History(), second.History())
		require.Equal(t, first.Hash(), second.Hash())
	})

	t.Run("terminal state needs no moves", func(t *testing.T) {
		state := game.NewState()
		e, err := LocalEngine(state, randomAgents(3, 4))
		require.NoError(t, err)
		_, err = e.Run(context.Background())
		require.NoError(t, err)

		again, err := LocalEngine(state, randomAgents(3, 4))
		require.NoError(t, err)
		result, err := again.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, 0, result.Moves)
		require.Equal(t, state.Returns(), result.Returns)
	})

	t.Run("observer sees every move", func(t *testing.T) {
		state := game.NewState()
		seen := 0
		observer := func(s game.State, move MoveMetric) {
			seen++
			require.Equal(t, seen, move.Step)
		}
		e, err := LocalEngine(state, randomAgents(5, 6), WithObserver(observer))
		require.NoError(t, err)

		result, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, result.Moves, seen)
		require.Nil(t, result.MoveMetrics, "Metrics are off by default")
		require.Zero(t, result.Game.TotalMoves)
	})
}

func TestEngineRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state := game.NewState()
	e, err := LocalEngine(state, randomAgents(1, 2))
	require.NoError(t, err)

	result, err := e.Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, result.Moves)
	require.Equal(t, 0, state.MoveNumber())
}

func TestWinner(t *testing.T) {
	require.Equal(t, game.Player0, winner([]float64{1, -1}))
	require.Equal(t, game.Player1, winner([]float64{-1, 1}))
	require.Equal(t, game.PlayerNone, winner([]float64{0, 0}))
	require.Equal(t, game.PlayerNone, winner(nil))
}
