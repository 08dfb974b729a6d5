package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

var _ State = (*MancalaState)(nil)

// MancalaState is a Kalah position: the pits, the player to move, the number of
// moves played so far and the actions that led here.
type MancalaState struct {
	board         Board
	currentPlayer Player
	numMoves      int
	history       []Action
}

// NewState returns the starting position with player 0 to move.
func NewState() *MancalaState {
	s := &MancalaState{currentPlayer: Player0}
	s.InitBoard()
	return s
}

// InitBoard puts SeedsPerPit seeds in every sowing pit and empties both stores.
func (s *MancalaState) InitBoard() {
	s.board.init()
}

func (s *MancalaState) CurrentPlayer() Player {
	return s.currentPlayer
}

func (s *MancalaState) MoveNumber() int {
	return s.numMoves
}

// Board returns a copy of the pit array.
func (s *MancalaState) Board() Board {
	return s.board
}

// History returns the actions applied so far, oldest first.
func (s *MancalaState) History() []Action {
	return append([]Action(nil), s.history...)
}

// LegalActions returns the non-empty pits of the player to move. Player 0's pits
// are listed in ascending order, player 1's from pit 13 down to pit 8.
func (s *MancalaState) LegalActions() []Action {
	if s.IsTerminal() {
		return []Action{}
	}
	actions := make([]Action, 0, NumPits)
	for _, pit := range sowingPits(s.currentPlayer) {
		if s.board[pit] > 0 {
			actions = append(actions, Action(pit))
		}
	}
	return actions
}

func (s *MancalaState) IsLegal(action Action) bool {
	for _, legal := range s.LegalActions() {
		if legal == action {
			return true
		}
	}
	return false
}

// ApplyMove sows the seeds of the given pit. The state is left untouched and
// ErrIllegalMove is returned if the action is not in LegalActions.
func (s *MancalaState) ApplyMove(action Action) error {
	if !s.IsLegal(action) {
		return fmt.Errorf("%w: pit %d for player %d", ErrIllegalMove, action, s.currentPlayer)
	}
	s.applyAction(action)
	return nil
}

// applyAction performs the transition without a legality check. Sowing from an
// empty pit lands on the pit itself, which is never a store, so the turn passes.
func (s *MancalaState) applyAction(action Action) {
	landing := s.board.sow(int(action))
	if landing != HomePit(s.currentPlayer) {
		s.currentPlayer = s.currentPlayer.Opponent()
	}
	s.numMoves++
	s.history = append(s.history, action)
}

// UndoMove only rewinds the bookkeeping: it pops the last history entry and
// decrements the move counter. The pits and the player to move are NOT restored,
// callers that need a real inverse must keep a Copy of the state.
func (s *MancalaState) UndoMove(player Player, action Action) error {
	if len(s.history) == 0 {
		return fmt.Errorf("%w: pit %d for player %d", ErrNothingToUndo, action, player)
	}
	s.numMoves--
	s.history = s.history[:len(s.history)-1]
	return nil
}

// IsTerminal reports whether either player has emptied all six sowing pits.
func (s *MancalaState) IsTerminal() bool {
	return !s.board.hasSeeds(Player0) || !s.board.hasSeeds(Player1)
}

func (s *MancalaState) IsFull() bool {
	return s.numMoves == NumCells
}

// Scores returns the raw seed totals each player holds on their side, store included.
func (s *MancalaState) Scores() (player0, player1 int) {
	return s.board.sums()
}

// Returns gives {1, -1}, {-1, 1} or {0, 0} depending on which side holds more
// seeds. Seeds left in the pits are counted where they lie, nothing is swept
// into the stores first. Only meaningful once the state is terminal.
func (s *MancalaState) Returns() []float64 {
	player0, player1 := s.board.sums()
	switch {
	case player0 > player1:
		return []float64{1.0, -1.0}
	case player0 < player1:
		return []float64{-1.0, 1.0}
	default:
		return []float64{0.0, 0.0}
	}
}

// Winner returns the player with a positive return, PlayerNone on a draw or
// while the game is still running.
func (s *MancalaState) Winner() Player {
	if !s.IsTerminal() {
		return PlayerNone
	}
	returns := s.Returns()
	switch {
	case returns[Player0] > 0:
		return Player0
	case returns[Player1] > 0:
		return Player1
	default:
		return PlayerNone
	}
}

// Copy returns a deep copy of the state.
func (s *MancalaState) Copy() *MancalaState {
	return &MancalaState{
		board:         s.board,
		currentPlayer: s.currentPlayer,
		numMoves:      s.numMoves,
		history:       append([]Action(nil), s.history...),
	}
}

func (s *MancalaState) Clone() State {
	return s.Copy()
}

// Hash identifies the position by player to move and pit counts. History and
// move number are not part of it.
func (s *MancalaState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(s.currentPlayer))
	for _, seeds := range s.board {
		binary.Write(hasher, binary.LittleEndian, int64(seeds))
	}

	return StateHash(hasher.Sum64())
}
