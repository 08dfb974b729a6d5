package game

// Action is the pit index a player sows from.
type Action int

// Player is a seat index, 0 or 1.
type Player int

const (
	PlayerNone Player = -1
	Player0    Player = 0
	Player1    Player = 1
)

// NumPlayers is the number of seats at the board.
const NumPlayers = 2

type StateHash uint64

// State is the contract a game loop or a tree search needs from a position.
// ApplyMove mutates the receiver, callers exploring alternatives must Clone first.
type State interface {
	CurrentPlayer() Player
	LegalActions() []Action
	ApplyMove(Action) error
	IsTerminal() bool
	Returns() []float64
	Clone() State
	Hash() StateHash
	String() string
}

// Opponent returns the other seat.
func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) valid() bool {
	return p >= 0 && p < NumPlayers
}
