package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoardRejectsEvenDimensions(t *testing.T) {
	cases := []struct {
		width, height int
		wantErr       bool
	}{
		{15, 15, false},
		{9, 15, false},
		{14, 15, true},
		{15, 14, true},
		{14, 14, true},
		{1, 1, false},
	}
	for _, tc := range cases {
		_, err := NewBoard(tc.width, tc.height)
		if tc.wantErr {
			require.ErrorIs(t, err, ErrEvenDimension, "width=%d height=%d", tc.width, tc.height)
		} else {
			require.NoError(t, err, "width=%d height=%d", tc.width, tc.height)
		}
	}
}

func TestBoardCenter(t *testing.T) {
	board, err := NewBoard(15, 15)
	require.NoError(t, err)
	row, col := board.Center()
	require.Equal(t, 7, row)
	require.Equal(t, 7, col)

	board, err = NewBoard(9, 13)
	require.NoError(t, err)
	row, col = board.Center()
	require.Equal(t, 6, row)
	require.Equal(t, 4, col)
}

func TestBoardPlayableAt(t *testing.T) {
	board, err := NewBoard(15, 15)
	require.NoError(t, err)
	board.Set(7, 7, CellBlack)
	board.Set(8, 8, CellRemoved)

	require.False(t, board.PlayableAt(7, 7), "occupied cell")
	require.True(t, board.PlayableAt(8, 8), "removed cell counts as empty for placement")
	require.True(t, board.PlayableAt(0, 0))
	require.False(t, board.PlayableAt(-1, 0))
	require.False(t, board.PlayableAt(15, 0))
}

func TestBoardCountEmptyExcludesRemoved(t *testing.T) {
	board, err := NewBoard(3, 3)
	require.NoError(t, err)
	board.Set(0, 0, CellBlack)
	board.Set(1, 1, CellRemoved)
	require.Equal(t, 7, board.CountEmpty())
}

func TestBoardCloneIsIndependent(t *testing.T) {
	board, err := NewBoard(15, 15)
	require.NoError(t, err)
	board.Set(3, 4, CellWhite)
	clone := board.Clone()
	clone.Set(3, 4, CellEmpty)
	clone.Set(5, 5, CellBlack)
	require.Equal(t, CellWhite, board.At(3, 4))
	require.Equal(t, CellEmpty, board.At(5, 5))
}
