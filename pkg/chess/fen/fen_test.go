package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herohde/gambit/pkg/chess"
)

func TestDecodeInitialPosition(t *testing.T) {
	b, err := Decode(Initial)
	require.NoError(t, err)

	assert.Equal(t, chess.White, b.Turn())
	assert.Equal(t, chess.AllCastlingRights, b.Castling())
	_, hasEP := b.EnPassant()
	assert.False(t, hasEP)
	assert.Equal(t, 0, b.Halfmove())
	assert.Equal(t, 1, b.Fullmove())
	assert.Len(t, b.LegalMoves(), 20)
}

func TestEncodeRoundTrips(t *testing.T) {
	b, err := Decode(Initial)
	require.NoError(t, err)
	assert.Equal(t, Initial, Encode(b))
}

func TestDecodeEncodeAfterMoves(t *testing.T) {
	b, err := Decode(Initial)
	require.NoError(t, err)

	b.Push(chess.Move{From: chess.NewSquare(chess.FileE, chess.Rank2), To: chess.NewSquare(chess.FileE, chess.Rank4)})
	b.Push(chess.Move{From: chess.NewSquare(chess.FileC, chess.Rank7), To: chess.NewSquare(chess.FileC, chess.Rank5)})

	encoded := Encode(b)
	roundTripped, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, Encode(roundTripped))
}

func TestDecodeRejectsMalformedFEN(t *testing.T) {
	_, err := Decode("not a fen")
	assert.Error(t, err)

	_, err = Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assert.Error(t, err)
}

func TestDecodeStalematePosition(t *testing.T) {
	b, err := Decode("k7/8/1Q6/8/8/8/8/K7 b - - 0 1")
	require.NoError(t, err)
	assert.True(t, b.IsStalemate())
	assert.False(t, b.IsCheckmate())
}
