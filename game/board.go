package game

const (
	NumPits     = 6 // Sowing pits per player
	TotalPits   = 2*NumPits + 2
	NumCells    = TotalPits
	SeedsPerPit = 4
	TotalSeeds  = 2 * NumPits * SeedsPerPit

	// CellStates bounds the observation tensor: one category per seed count 0..TotalSeeds.
	CellStates = TotalSeeds + 1
)

// Board holds the seed count of every pit. Index 0 is player 1's store,
// 1..6 are player 0's pits, 7 is player 0's store and 8..13 are player 1's pits.
type Board [TotalPits]int

// HomePit returns the index of the store that scores for player.
func HomePit(player Player) int {
	if player == Player0 {
		return TotalPits / 2
	}
	return 0
}

func (b *Board) init() {
	for i := range b {
		b[i] = SeedsPerPit
	}
	b[0] = 0
	b[len(b)/2] = 0
}

// sow empties pit and drops one seed into each following pit, stores included.
// Returns the index the last seed landed in.
func (b *Board) sow(pit int) int {
	seeds := b[pit]
	b[pit] = 0
	for i := 0; i < seeds; i++ {
		b[(pit+i+1)%TotalPits]++
	}
	return (pit + seeds) % TotalPits
}

func (b *Board) hasSeeds(player Player) bool {
	for _, pit := range sowingPits(player) {
		if b[pit] > 0 {
			return true
		}
	}
	return false
}

// sowingPits lists the pits player may sow from, in legal-move order:
// ascending for player 0, from the far end of the array backward for player 1.
func sowingPits(player Player) [NumPits]int {
	var pits [NumPits]int
	for i := 0; i < NumPits; i++ {
		if player == Player0 {
			pits[i] = i + 1
		} else {
			pits[i] = TotalPits - 1 - i
		}
	}
	return pits
}

// sums returns the raw seed totals for each player: player 0 owns pits 1..7,
// player 1 owns pits 8..13 and pit 0.
func (b *Board) sums() (player0, player1 int) {
	for i := 1; i <= TotalPits/2; i++ {
		player0 += b[i]
	}
	for i := TotalPits/2 + 1; i < TotalPits; i++ {
		player1 += b[i]
	}
	player1 += b[0]
	return player0, player1
}

func (b *Board) total() int {
	sum := 0
	for _, seeds := range b {
		sum += seeds
	}
	return sum
}
