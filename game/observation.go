package game

import (
	"fmt"
	"strconv"
	"strings"
)

const separator = "-"

// String renders the board on three lines: player 1's pits from 13 down to 8,
// the two stores, then player 0's pits from 1 to 6.
//
//	-4-4-4-4-4-4-
//	0-----------0
//	-4-4-4-4-4-4-
func (s *MancalaState) String() string {
	var sb strings.Builder

	sb.WriteString(separator)
	for i := 0; i < NumPits; i++ {
		sb.WriteString(strconv.Itoa(s.board[len(s.board)-1-i]))
		sb.WriteString(separator)
	}
	sb.WriteString("\n")

	sb.WriteString(strconv.Itoa(s.board[0]))
	sb.WriteString(strings.Repeat(separator, NumPits*2-1))
	sb.WriteString(strconv.Itoa(s.board[len(s.board)/2]))
	sb.WriteString("\n")

	sb.WriteString(separator)
	for i := 0; i < NumPits; i++ {
		sb.WriteString(strconv.Itoa(s.board[i+1]))
		sb.WriteString(separator)
	}
	return sb.String()
}

// ActionToString labels an action by its pit index.
func (s *MancalaState) ActionToString(player Player, action Action) string {
	return strconv.Itoa(int(action))
}

// ParseAction reads a label produced by ActionToString.
func ParseAction(label string) (Action, error) {
	pit, err := strconv.Atoi(strings.TrimSpace(label))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAction, label)
	}
	if pit < 0 || pit >= TotalPits {
		return 0, fmt.Errorf("%w: pit %d outside 0..%d", ErrInvalidAction, pit, TotalPits-1)
	}
	return Action(pit), nil
}

// HistoryString joins the applied actions with ", ".
func (s *MancalaState) HistoryString() string {
	labels := make([]string, len(s.history))
	for i, action := range s.history {
		labels[i] = strconv.Itoa(int(action))
	}
	return strings.Join(labels, ", ")
}

func (s *MancalaState) InformationStateString(player Player) (string, error) {
	if !player.valid() {
		return "", fmt.Errorf("%w: %d", ErrPlayerOutOfRange, player)
	}
	return s.HistoryString(), nil
}

func (s *MancalaState) ObservationString(player Player) (string, error) {
	if !player.valid() {
		return "", fmt.Errorf("%w: %d", ErrPlayerOutOfRange, player)
	}
	return s.String(), nil
}

// ObservationTensorShape is {CellStates, NumCells}, row-major.
func ObservationTensorShape() []int {
	return []int{CellStates, NumCells}
}

// ObservationTensor writes a one-hot encoding of the board into values: for
// every pit, the entry at row seeds and column pit is 1, everything else is 0.
// values must hold exactly CellStates*NumCells floats.
func (s *MancalaState) ObservationTensor(player Player, values []float32) error {
	if !player.valid() {
		return fmt.Errorf("%w: %d", ErrPlayerOutOfRange, player)
	}
	if len(values) != CellStates*NumCells {
		return fmt.Errorf("%w: got %d, want %d", ErrTensorSize, len(values), CellStates*NumCells)
	}

	clear(values)
	for cell := 0; cell < NumCells; cell++ {
		values[s.board[cell]*NumCells+cell] = 1.0
	}
	return nil
}
