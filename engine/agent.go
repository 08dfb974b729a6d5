package engine

import (
	"errors"
	"fmt"
	"mancala/game"

	"golang.org/x/exp/rand"
)

var ErrScriptExhausted = errors.New("script has no actions left")

type Agent interface {
	// FindMove returns the action to play in state. state must not be mutated.
	FindMove(state game.State) (game.Action, error)
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent picking uniformly among the legal actions.
// Agents built from the same seed make the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State) (game.Action, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return 0, fmt.Errorf("no legal actions for player %d", state.CurrentPlayer())
	}
	return actions[a.rng.Intn(len(actions))], nil
}

type scriptedAgent struct {
	actions []game.Action
	next    int
}

// NewScriptedAgent returns an agent replaying actions in order. The same agent
// can sit in both seats to replay a whole game.
func NewScriptedAgent(actions ...game.Action) Agent {
	return &scriptedAgent{actions: actions}
}

func (a *scriptedAgent) FindMove(state game.State) (game.Action, error) {
	if a.next >= len(a.actions) {
		return 0, fmt.Errorf("%w after %d actions", ErrScriptExhausted, len(a.actions))
	}
	action := a.actions[a.next]
	a.next++
	return action, nil
}
