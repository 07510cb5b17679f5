package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	require.Equal(t, 80, s.Width())
	require.Equal(t, 24, s.Height())
	for y := 0; y < s.Height(); y++ {
		require.Equal(t, strings.Repeat(" ", 80), s.Row(y), "row %d", y)
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '●', ColorRed)
	cell := s.GetCell(5, 5)
	assert.Equal(t, '●', cell.Rune)
	assert.Equal(t, ColorRed, cell.Color)

	// Out of bounds writes are ignored and reads are blank
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)
	assert.Equal(t, blankCell, s.GetCell(-1, 0))
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(18, 0, "Hello")

	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0))
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "▲▲", ColorYellow)

	// two runes centered in 20 columns start at 9
	assert.Equal(t, '▲', s.Get(9, 1), "row %q", s.Row(1))
	assert.Equal(t, '▲', s.Get(10, 1), "row %q", s.Row(1))
	assert.Equal(t, ColorYellow, s.GetCell(9, 1).Color)
}

func TestScreenFillRectAndBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), '#', ColorGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			assert.Equal(t, '#', s.Get(x, y), "(%d, %d)", x, y)
		}
	}
	assert.Equal(t, ' ', s.Get(5, 5), "outside cells stay blank")

	s.Clear()
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)
	assert.Equal(t, '┌', s.Get(1, 1))
	assert.Equal(t, '┘', s.Get(5, 4))
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.Resize(8, 4)

	require.Equal(t, 8, s.Width())
	require.Equal(t, 4, s.Height())
	assert.Empty(t, strings.TrimSpace(s.Row(0)), "resize clears the buffer")
}
