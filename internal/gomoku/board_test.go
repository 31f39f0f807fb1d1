package gomoku

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardSize = 15

// drawPattern never lines up more than two equal symbols in any direction.
func drawPattern(row, col int) string {
	if ((col+2*row)/2)%2 == 0 {
		return SymbolX
	}
	return SymbolO
}

func rotate180(board Board) Board {
	size := board.Size()
	rotated := NewBoard(size)
	for r := range board {
		for c := range board[r] {
			rotated[size-1-r][size-1-c] = board[r][c]
		}
	}
	return rotated
}

func reflect(board Board) Board {
	size := board.Size()
	reflected := NewBoard(size)
	for r := range board {
		for c := range board[r] {
			reflected[r][size-1-c] = board[r][c]
		}
	}
	return reflected
}

func TestApplyMove(t *testing.T) {
	t.Run("Places symbol without touching the input board", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard(standardSize)

		// When: a move is applied
		next, err := ApplyMove(board, 7, 7, SymbolX)

		// Then: only the new board holds the symbol
		require.NoError(t, err)
		assert.Equal(t, SymbolX, next[7][7])
		assert.Equal(t, EmptyCell, board[7][7])
		assert.Equal(t, 1, next.Count())
		assert.Equal(t, 0, board.Count())
	})

	t.Run("Rejects out of bounds cells", func(t *testing.T) {
		board := NewBoard(standardSize)

		for _, cell := range [][2]int{{-1, 0}, {0, -1}, {standardSize, 0}, {0, standardSize}} {
			// When: a move outside the grid is applied
			_, err := ApplyMove(board, cell[0], cell[1], SymbolO)

			// Then: ErrOutOfBounds is returned
			require.ErrorIs(t, err, apperror.ErrOutOfBounds)
		}
	})

	t.Run("Rejects occupied cells", func(t *testing.T) {
		// Given: a board with an occupied cell
		board, err := ApplyMove(NewBoard(standardSize), 3, 4, SymbolX)
		require.NoError(t, err)

		// When: the same cell is played again
		_, err = ApplyMove(board, 3, 4, SymbolO)

		// Then: ErrCellOccupied is returned and the cell keeps its symbol
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, SymbolX, board[3][4])
	})

	t.Run("Occupied count grows by one for every distinct move", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(42))
		board := NewBoard(standardSize)
		cells := rnd.Perm(standardSize * standardSize)
		symbol := SymbolX

		for i, cell := range cells {
			prior := board.Count()

			next, err := ApplyMove(board, cell/standardSize, cell%standardSize, symbol)
			require.NoError(t, err)

			assert.Equal(t, prior+1, next.Count(), "move %d", i)

			board = next
			symbol = OtherSymbol(symbol)
		}
	})
}

func TestCheckWin(t *testing.T) {
	t.Run("Fifth horizontal stone wins, earlier ones do not", func(t *testing.T) {
		// Given: an empty 15x15 board
		board := NewBoard(standardSize)

		for col := 0; col < 5; col++ {
			// When: X is placed along row 7
			var err error
			board, err = ApplyMove(board, 7, col, SymbolX)
			require.NoError(t, err)

			// Then: only the fifth placement is a win
			assert.Equal(t, col == 4, CheckWin(board, 7, col), "col %d", col)
		}
	})

	t.Run("Vertical and diagonal lines win", func(t *testing.T) {
		lines := map[string][5][2]int{
			"vertical":      {{2, 3}, {3, 3}, {4, 3}, {5, 3}, {6, 3}},
			"diagonal":      {{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}},
			"anti-diagonal": {{4, 10}, {5, 9}, {6, 8}, {7, 7}, {8, 6}},
		}

		for name, line := range lines {
			t.Run(name, func(t *testing.T) {
				board := NewBoard(standardSize)
				for _, cell := range line {
					board[cell[0]][cell[1]] = SymbolO
				}

				// When: checking from the middle of the line and from one end
				// Then: both see the win
				assert.True(t, CheckWin(board, line[2][0], line[2][1]))
				assert.True(t, CheckWin(board, line[0][0], line[0][1]))
			})
		}
	})

	t.Run("Runs longer than five still win", func(t *testing.T) {
		// Given: two and three stones with a gap between them
		board := NewBoard(standardSize)
		for _, col := range []int{0, 1, 3, 4, 5} {
			board[0][col] = SymbolX
		}
		require.False(t, CheckWin(board, 0, 5))

		// When: the gap is filled making a run of six
		board, err := ApplyMove(board, 0, 2, SymbolX)
		require.NoError(t, err)

		// Then: it is a win
		assert.True(t, CheckWin(board, 0, 2))
	})

	t.Run("Broken or mixed lines do not win", func(t *testing.T) {
		board := NewBoard(standardSize)
		for col := 0; col < 4; col++ {
			board[5][col] = SymbolX
		}
		board[5][4] = SymbolO

		assert.False(t, CheckWin(board, 5, 3))
		assert.False(t, CheckWin(board, 5, 4))
		assert.False(t, CheckWin(board, 9, 9), "empty cell never wins")
		assert.False(t, CheckWin(board, -1, 3), "out of bounds never wins")
	})

	t.Run("Result is symmetric under rotation and reflection", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(7))

		for i := 0; i < 200; i++ {
			// Given: a random dense board
			board := NewBoard(standardSize)
			for r := range board {
				for c := range board[r] {
					switch rnd.Intn(3) {
					case 0:
						board[r][c] = SymbolX
					case 1:
						board[r][c] = SymbolO
					}
				}
			}

			rotated := rotate180(board)
			reflected := reflect(board)

			for r := 0; r < standardSize; r++ {
				for c := 0; c < standardSize; c++ {
					// Then: the transformed cell reports the same result
					want := CheckWin(board, r, c)
					assert.Equal(t, want, CheckWin(rotated, standardSize-1-r, standardSize-1-c))
					assert.Equal(t, want, CheckWin(reflected, r, standardSize-1-c))
				}
			}
		}
	})
}

func TestCheckDraw(t *testing.T) {
	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: an empty 15x15 board
		board := NewBoard(standardSize)
		total := standardSize * standardSize

		placed := 0
		for r := 0; r < standardSize; r++ {
			for c := 0; c < standardSize; c++ {
				// When: every cell is filled one by one
				var err error
				board, err = ApplyMove(board, r, c, drawPattern(r, c))
				require.NoError(t, err)
				placed++

				// Then: no move ever wins and only the last one completes the board
				require.False(t, CheckWin(board, r, c), "row %d col %d", r, c)
				assert.Equal(t, placed == total, CheckDraw(board))
			}
		}

		assert.Equal(t, total, board.Count())
	})

	t.Run("Empty board is not a draw", func(t *testing.T) {
		assert.False(t, CheckDraw(NewBoard(standardSize)))
	})
}

func TestOtherSymbol(t *testing.T) {
	assert.Equal(t, SymbolO, OtherSymbol(SymbolX))
	assert.Equal(t, SymbolX, OtherSymbol(SymbolO))
}
