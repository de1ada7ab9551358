package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPopCountAndLSB(t *testing.T) {
	b := BitMask(NewSquare(FileA, Rank1)) | BitMask(NewSquare(FileH, Rank8))
	assert.Equal(t, 2, b.PopCount())
	assert.Equal(t, NewSquare(FileA, Rank1), b.LSB())
	assert.Equal(t, NoSquare, EmptyBitboard.LSB())
}

func TestScanForwardAscending(t *testing.T) {
	b := BitMask(NewSquare(FileH, Rank8)) | BitMask(NewSquare(FileA, Rank1)) | BitMask(NewSquare(FileE, Rank4))
	got := ScanForward(b)
	assert.Equal(t, []Square{
		NewSquare(FileA, Rank1),
		NewSquare(FileE, Rank4),
		NewSquare(FileH, Rank8),
	}, got)
}

func TestCornersAndColoredSquares(t *testing.T) {
	for _, sq := range []Square{
		NewSquare(FileA, Rank1), NewSquare(FileH, Rank1),
		NewSquare(FileA, Rank8), NewSquare(FileH, Rank8),
	} {
		assert.True(t, BBCorners.IsSet(sq))
	}
	assert.True(t, BBLightSquares.IsSet(NewSquare(FileB, Rank1)))
	assert.True(t, BBDarkSquares.IsSet(NewSquare(FileA, Rank1)))
}

func TestKnightAttacksFromCorner(t *testing.T) {
	attacks := KnightAttacks(NewSquare(FileA, Rank1))
	assert.Equal(t, 2, attacks.PopCount())
	assert.True(t, attacks.IsSet(NewSquare(FileB, Rank3)))
	assert.True(t, attacks.IsSet(NewSquare(FileC, Rank2)))
}

func TestPawnAttacksDirectionDependsOnColor(t *testing.T) {
	sq := NewSquare(FileE, Rank4)
	white := PawnAttacks(White, sq)
	black := PawnAttacks(Black, sq)
	assert.True(t, white.IsSet(NewSquare(FileD, Rank5)))
	assert.True(t, white.IsSet(NewSquare(FileF, Rank5)))
	assert.True(t, black.IsSet(NewSquare(FileD, Rank3)))
	assert.True(t, black.IsSet(NewSquare(FileF, Rank3)))
}
