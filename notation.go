// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// notation.go converts between Forsyth-Edwards Notation strings and
// Position. ToPosition parses; Position.String emits. ToPosition also
// accepts the Shredder-FEN convention of naming castling rights after
// the rook's file instead of "KQkq", matching the original engine's
// notation.cpp; Position.String always writes "KQkq" letters.

package pulse

import (
	"fmt"
	"strconv"
	"strings"
)

// StandardPosition is the FEN of the standard starting position.
const StandardPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ToPosition parses a FEN string into a new Position. It accepts the
// standard six fields and also tolerates FENs that omit the halfmove
// clock and fullmove number (defaulting both to their initial values),
// the way casual FEN sources often do.
func ToPosition(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 4 && len(fields) != 5 && len(fields) != 6 {
		return nil, fmt.Errorf("%q: expected 4-6 fields: %w", fen, ErrMalformedFEN)
	}

	pos := NewPosition()

	if err := parseBoard(pos, fields[0]); err != nil {
		return nil, fmt.Errorf("%q: %w", fen, err)
	}

	color, err := toColor(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%q: active color: %w", fen, err)
	}
	pos.SetActiveColor(color)

	if err := parseCastling(pos, fields[2]); err != nil {
		return nil, fmt.Errorf("%q: castling rights: %w", fen, err)
	}

	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%q: en passant square: %w", fen, err)
		}
		// An en passant capture is only possible the ply right after a
		// double push, so the rank must match the side to move: with
		// black to move, white just pushed to rank 4 leaving a rank-3
		// capture square; with white to move, black just pushed to
		// rank 5 leaving a rank-6 capture square.
		wantRank := Rank6
		if color == Black {
			wantRank = Rank3
		}
		if sq.Rank() != wantRank {
			return nil, fmt.Errorf("%q: en passant square %v inconsistent with active color %v: %w", fen, sq, color, ErrMalformedFEN)
		}
		pos.SetEnPassantSquare(sq)
	}

	halfmoveClock, fullmoveNumber := 0, 1
	if len(fields) >= 5 {
		halfmoveClock, err = strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("%q: halfmove clock: %w", fen, ErrMalformedFEN)
		}
	}
	if len(fields) == 6 {
		fullmoveNumber, err = strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("%q: fullmove number: %w", fen, ErrMalformedFEN)
		}
	}
	pos.SetHalfmoveClock(halfmoveClock)
	pos.SetFullmoveNumber(fullmoveNumber)

	return pos, nil
}

func parseBoard(pos *Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: expected 8 ranks: %w", ErrMalformedFEN)
	}

	for i, rankField := range ranks {
		rank := Rank8 - Rank(i)
		file := FileA
		for _, r := range rankField {
			switch {
			case r >= '1' && r <= '8':
				file += File(r - '0')
			default:
				piece, err := toPiece(r)
				if err != nil {
					return err
				}
				if !file.IsValid() {
					return fmt.Errorf("board: rank %d overflows: %w", rank+1, ErrMalformedFEN)
				}
				pos.Put(piece, SquareOf(file, rank))
				file++
			}
		}
		if file != FileH+1 {
			return fmt.Errorf("board: rank %d has wrong length: %w", rank+1, ErrMalformedFEN)
		}
	}
	return nil
}

// parseCastling parses the castling-availability field, including the
// Shredder-FEN convention of a rook file letter (e.g. "HAha") instead
// of "KQkq" when castling rights don't correspond to the standard rook
// files. An unrecognized letter is resolved by comparing its file
// against each side's king file: a file to the east of the king is
// Kingside, west is Queenside — mirroring notation.cpp's
// disambiguation.
func parseCastling(pos *Position, field string) error {
	if field == "-" {
		return nil
	}
	for _, r := range field {
		switch r {
		case 'K':
			pos.SetCastlingRight(WhiteKingside)
		case 'Q':
			pos.SetCastlingRight(WhiteQueenside)
		case 'k':
			pos.SetCastlingRight(BlackKingside)
		case 'q':
			pos.SetCastlingRight(BlackQueenside)
		default:
			c := Color(White)
			letter := r
			if r >= 'a' && r <= 'z' {
				c = Black
			}
			file := File(strings.ToLower(string(letter))[0] - 'a')
			if !file.IsValid() {
				return fmt.Errorf("castling: unrecognized letter %q: %w", r, ErrMalformedFEN)
			}
			kingSquare := pos.KingSquare(c)
			if !kingSquare.IsValid() {
				return fmt.Errorf("castling: no king for shredder letter %q: %w", r, ErrMalformedFEN)
			}
			if file > kingSquare.File() {
				pos.SetCastlingRight(CastlingRightOf(c, Kingside))
			} else {
				pos.SetCastlingRight(CastlingRightOf(c, Queenside))
			}
		}
	}
	return nil
}

// String renders pos as a FEN string.
func (pos *Position) String() string {
	var b strings.Builder

	for rank := Rank8; rank >= Rank1; rank-- {
		empty := 0
		for file := FileA; file <= FileH; file++ {
			piece := pos.Board(SquareOf(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteRune(fromPiece(piece))
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank != Rank1 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	b.WriteString(fromColor(pos.ActiveColor()))

	b.WriteByte(' ')
	b.WriteString(fromCastling(pos.CastlingRights()))

	b.WriteByte(' ')
	if pos.EnPassantSquare() == NoSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(pos.EnPassantSquare().String())
	}

	fmt.Fprintf(&b, " %d %d", pos.HalfmoveClock(), pos.FullmoveNumber())
	return b.String()
}

func fromCastling(rights CastlingRight) string {
	if rights == NoCastlingRights {
		return "-"
	}
	var b strings.Builder
	if rights&WhiteKingside != 0 {
		b.WriteByte('K')
	}
	if rights&WhiteQueenside != 0 {
		b.WriteByte('Q')
	}
	if rights&BlackKingside != 0 {
		b.WriteByte('k')
	}
	if rights&BlackQueenside != 0 {
		b.WriteByte('q')
	}
	return b.String()
}

var pieceLetters = map[rune]Piece{
	'P': PieceOf(White, Pawn), 'N': PieceOf(White, Knight), 'B': PieceOf(White, Bishop),
	'R': PieceOf(White, Rook), 'Q': PieceOf(White, Queen), 'K': PieceOf(White, King),
	'p': PieceOf(Black, Pawn), 'n': PieceOf(Black, Knight), 'b': PieceOf(Black, Bishop),
	'r': PieceOf(Black, Rook), 'q': PieceOf(Black, Queen), 'k': PieceOf(Black, King),
}

func toPiece(r rune) (Piece, error) {
	if p, ok := pieceLetters[r]; ok {
		return p, nil
	}
	return NoPiece, fmt.Errorf("board: unknown piece letter %q: %w", r, ErrMalformedFEN)
}

func fromPiece(p Piece) rune {
	for r, candidate := range pieceLetters {
		if candidate == p {
			return r
		}
	}
	panic("pulse: fromPiece: invalid piece")
}

var pieceTypeLetters = map[rune]PieceType{
	'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen,
}

// toPieceType maps a promotion letter ('n', 'b', 'r', 'q', in either
// case) to its PieceType, returning NoPieceType for anything else.
func toPieceType(r rune) PieceType {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if pt, ok := pieceTypeLetters[r]; ok {
		return pt
	}
	return NoPieceType
}

func toColor(field string) (Color, error) {
	switch field {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return NoColor, fmt.Errorf("%q: %w", field, ErrMalformedFEN)
	}
}

func fromColor(c Color) string {
	if c == White {
		return "w"
	}
	return "b"
}

// parseSquare parses a two-character square name such as "e4".
func parseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%q: malformed square: %w", s, ErrMalformedFEN)
	}
	file, err := toFile(s[0])
	rank := Rank(s[1] - '1')
	if err != nil || !rank.IsValid() {
		return NoSquare, fmt.Errorf("%q: malformed square: %w", s, ErrMalformedFEN)
	}
	return SquareOf(file, rank), nil
}
