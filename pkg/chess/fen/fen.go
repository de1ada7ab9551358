// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/herohde/gambit/pkg/chess"
)

// Initial is the FEN record for the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a board.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fen string) (*chess.Board, error) {
	parts := strings.Fields(strings.TrimSpace(fen))
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of fields in FEN: %q", fen)
	}

	placements, err := parsePlacement(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid piece placement in FEN %q: %w", fen, err)
	}

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: %q", fen)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling rights in FEN: %q", fen)
	}

	ep := chess.NoSquare
	if parts[3] != "-" {
		sq, err := chess.ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square in FEN %q: %w", fen, err)
		}
		ep = sq
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", fen)
	}

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("invalid fullmove number in FEN: %q", fen)
	}

	return chess.NewBoardFromPlacements(placements, turn, castling, ep, halfmove, fullmove), nil
}

// Encode renders a board as a FEN record.
func Encode(b *chess.Board) string {
	var sb strings.Builder
	for r := int(chess.Rank8); r >= int(chess.Rank1); r-- {
		blanks := 0
		for f := 0; f < chess.NumFiles; f++ {
			sq := chess.NewSquare(chess.File(f), chess.Rank(r))
			p, ok := b.PieceAt(sq)
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(p.String())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > int(chess.Rank1) {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if sq, ok := b.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v",
		sb.String(), b.Turn(), b.Castling(), ep, b.Halfmove(), b.Fullmove())
}

func parsePlacement(field string) ([]chess.Placement, error) {
	var placements []chess.Placement

	rank := int(chess.Rank8)
	file := 0
	for _, r := range field {
		switch {
		case r == '/':
			if file != chess.NumFiles {
				return nil, fmt.Errorf("rank %d has %d files, want %d", rank+1, file, chess.NumFiles)
			}
			rank--
			file = 0

		case unicode.IsDigit(r):
			file += int(r - '0')

		default:
			piece, ok := parsePiece(r)
			if !ok {
				return nil, fmt.Errorf("invalid piece %q", r)
			}
			if file >= chess.NumFiles || rank < 0 {
				return nil, fmt.Errorf("piece %q falls outside the board", r)
			}
			placements = append(placements, chess.Placement{
				Square: chess.NewSquare(chess.File(file), chess.Rank(rank)),
				Piece:  piece,
			})
			file++
		}
	}
	if file != chess.NumFiles || rank != int(chess.Rank1) {
		return nil, fmt.Errorf("incomplete piece placement field: %q", field)
	}
	return placements, nil
}

func parseColor(str string) (chess.Color, bool) {
	switch str {
	case "w":
		return chess.White, true
	case "b":
		return chess.Black, true
	default:
		return 0, false
	}
}

func parseCastling(str string) (chess.CastlingRights, bool) {
	if str == "-" {
		return chess.NoCastlingRights, true
	}
	var ret chess.CastlingRights
	for _, r := range str {
		switch r {
		case 'K':
			ret |= chess.WhiteKingside
		case 'Q':
			ret |= chess.WhiteQueenside
		case 'k':
			ret |= chess.BlackKingside
		case 'q':
			ret |= chess.BlackQueenside
		default:
			return 0, false
		}
	}
	return ret, true
}

func parsePiece(r rune) (chess.Piece, bool) {
	color := chess.White
	if unicode.IsLower(r) {
		color = chess.Black
	}
	switch unicode.ToUpper(r) {
	case 'P':
		return chess.Piece{Type: chess.Pawn, Color: color}, true
	case 'N':
		return chess.Piece{Type: chess.Knight, Color: color}, true
	case 'B':
		return chess.Piece{Type: chess.Bishop, Color: color}, true
	case 'R':
		return chess.Piece{Type: chess.Rook, Color: color}, true
	case 'Q':
		return chess.Piece{Type: chess.Queen, Color: color}, true
	case 'K':
		return chess.Piece{Type: chess.King, Color: color}, true
	default:
		return chess.Piece{}, false
	}
}
