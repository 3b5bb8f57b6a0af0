package entity

const EmptyCell = ""

// Board is a square grid indexed [row][col]. EmptyCell marks a free cell.
type Board [][]string

func NewBoard(size int) Board {
	board := make(Board, size)
	for row := range board {
		board[row] = make([]string, size)
	}
	return board
}

func (that Board) Size() int {
	return len(that)
}

func (that Board) InBounds(row, col int) bool {
	return row >= 0 && row < len(that) && col >= 0 && col < len(that[row])
}

func (that Board) IsEmpty(row, col int) bool {
	return that[row][col] == EmptyCell
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy.
func (that Board) Clone() Board {
	if that == nil {
		return nil
	}

	board := make(Board, len(that))
	for row := range that {
		board[row] = append([]string(nil), that[row]...)
	}
	return board
}

// MoveOrder has the shape of a Board and holds the 1-based ply at which each
// cell was filled; 0 means the cell is empty.
type MoveOrder [][]int
