package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const (
	SymbolX = "X"
	SymbolO = "O"

	EmptyCell = ""
)

// WinLength is the run of equal symbols that ends a game. Longer runs win too.
const WinLength = 5

// directions through a cell: horizontal, vertical and both diagonals.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Board is a square grid of cells, each EmptyCell or a symbol.
type Board [][]string

// NewBoard - returns an empty size x size board.
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

// Count - number of occupied cells.
func (that Board) Count() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != EmptyCell {
				count++
			}
		}
	}

	return count
}

func (that Board) Clone() Board {
	clone := make(Board, len(that))
	for row := range that {
		clone[row] = append([]string(nil), that[row]...)
	}

	return clone
}

func (that Board) inBounds(row, col int) bool {
	return row >= 0 && row < len(that) && col >= 0 && col < len(that)
}

// ApplyMove - places symbol at (row, col) and returns the resulting board. The input board is left untouched.
func ApplyMove(board Board, row, col int, symbol string) (Board, error) {
	if !board.inBounds(row, col) {
		return nil, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if board[row][col] != EmptyCell {
		return nil, fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	next := board.Clone()
	next[row][col] = symbol

	return next, nil
}

// CheckWin - reports whether the symbol at (row, col) is part of a line of WinLength or more.
func CheckWin(board Board, row, col int) bool {
	if !board.inBounds(row, col) {
		return false
	}

	symbol := board[row][col]
	if symbol == EmptyCell {
		return false
	}

	for _, dir := range directions {
		count := 1
		count += countDirection(board, row, col, dir[0], dir[1], symbol)
		count += countDirection(board, row, col, -dir[0], -dir[1], symbol)

		if count >= WinLength {
			return true
		}
	}

	return false
}

func countDirection(board Board, row, col, dRow, dCol int, symbol string) int {
	count := 0

	r, c := row+dRow, col+dCol
	for board.inBounds(r, c) && board[r][c] == symbol {
		count++
		r += dRow
		c += dCol
	}

	return count
}

// CheckDraw - true when every cell is occupied.
func CheckDraw(board Board) bool {
	for _, row := range board {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return len(board) > 0
}

// OtherSymbol - toggles between the two symbols.
func OtherSymbol(symbol string) string {
	if symbol == SymbolX {
		return SymbolO
	}

	return SymbolX
}
