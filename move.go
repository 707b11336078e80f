// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// move.go defines the packed Move representation consumed by
// Position.MakeMove/UndoMove and the long-algebraic conversion used at
// the UCI boundary.

package pulse

import (
	"fmt"
	"strings"
)

// MoveType distinguishes the handful of move shapes that need special
// make/undo handling.
type MoveType uint32

const (
	MoveNormal MoveType = iota
	MovePawnDouble
	MovePawnPromotion
	MoveEnPassant
	MoveCastling
)

func (t MoveType) String() string {
	switch t {
	case MoveNormal:
		return "Normal"
	case MovePawnDouble:
		return "PawnDouble"
	case MovePawnPromotion:
		return "PawnPromotion"
	case MoveEnPassant:
		return "EnPassant"
	case MoveCastling:
		return "Castling"
	default:
		return "Unknown"
	}
}

// Move packs a position-dependent move into a single 32-bit integer.
//
// Bit layout (low to high):
//
//	 0.. 2  (3 bits) move type
//	 3.. 9  (7 bits) origin square
//	10..16  (7 bits) target square
//	17..20  (4 bits) origin piece
//	21..24  (4 bits) target piece, or NoPiece
//	25..27  (3 bits) promotion piece type, or NoPieceType
//
// Accessors are pure bit extractions; encoding a move does not consult
// a Position.
type Move uint32

const (
	moveTypeShift    = 0
	moveOriginShift  = 3
	moveTargetShift  = 10
	moveOriginPShift = 17
	moveTargetPShift = 21
	movePromoShift   = 25

	moveTypeMask   = 0x7
	moveSquareMask = 0x7f
	movePieceMask  = 0xf
	movePromoMask  = 0x7
)

// NewMove packs a move. originPiece must be the piece standing on
// origin before the move; targetPiece is the piece being captured
// (NoPiece if none); promotion is the new piece type for a
// MovePawnPromotion move (NoPieceType otherwise).
func NewMove(t MoveType, origin, target Square, originPiece, targetPiece Piece, promotion PieceType) Move {
	return Move(t)<<moveTypeShift |
		Move(origin)<<moveOriginShift |
		Move(target)<<moveTargetShift |
		Move(originPiece)<<moveOriginPShift |
		Move(targetPiece)<<moveTargetPShift |
		Move(promotion)<<movePromoShift
}

// Type returns the move's type.
func (m Move) Type() MoveType {
	return MoveType(m >> moveTypeShift & moveTypeMask)
}

// Origin returns the move's origin square.
func (m Move) Origin() Square {
	return Square(m >> moveOriginShift & moveSquareMask)
}

// Target returns the move's target square.
func (m Move) Target() Square {
	return Square(m >> moveTargetShift & moveSquareMask)
}

// OriginPiece returns the piece that stood on Origin() before the move.
func (m Move) OriginPiece() Piece {
	return Piece(m >> moveOriginPShift & movePieceMask)
}

// TargetPiece returns the captured piece, or NoPiece.
func (m Move) TargetPiece() Piece {
	return Piece(m >> moveTargetPShift & movePieceMask)
}

// Promotion returns the promoted-to piece type, or NoPieceType.
func (m Move) Promotion() PieceType {
	return PieceType(m >> movePromoShift & movePromoMask)
}

// String returns the move in long algebraic notation, e.g. "e2e4" or
// "e7e8q". This is the shape UCI and other external protocols expect;
// the packed integer above never leaves the core.
func (m Move) String() string {
	var b strings.Builder
	b.WriteString(m.Origin().String())
	b.WriteString(m.Target().String())
	if m.Type() == MovePawnPromotion {
		b.WriteString(promotionLetter(m.Promotion()))
	}
	return b.String()
}

func promotionLetter(pt PieceType) string {
	switch pt {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	default:
		return ""
	}
}

// ParseLANMove parses a long-algebraic move ("e2e4", "h7h8q") against
// pos, determining the move type (double push, en passant, castling,
// promotion) from the position the way a UCI front-end would before
// calling Position.MakeMove. It returns ErrMalformedFEN-flavoured
// errors on malformed input and on a castling move whose king, rook or
// path the board does not support; it does not check full legality
// beyond that (the search makes the move and checks
// IsCheck to establish legality, per the search consumer contract).
func ParseLANMove(pos *Position, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return 0, fmt.Errorf("%s: %w", s, ErrMalformedFEN)
	}

	origin, err := parseSquare(s[0:2])
	if err != nil {
		return 0, err
	}
	target, err := parseSquare(s[2:4])
	if err != nil {
		return 0, err
	}

	originPiece := pos.Board(origin)
	if originPiece == NoPiece {
		return 0, fmt.Errorf("%s: no piece on origin square: %w", s, ErrMalformedFEN)
	}

	moveType := MoveNormal
	targetPiece := pos.Board(target)
	promotion := NoPieceType

	if originPiece.Type() == Pawn && target == pos.EnPassantSquare() {
		moveType = MoveEnPassant
		targetPiece = PieceOf(pos.ActiveColor().Opposite(), Pawn)
	}
	if originPiece.Type() == Pawn && abs(int(target.Rank())-int(origin.Rank())) == 2 {
		moveType = MovePawnDouble
	}
	if originPiece.Type() == King && abs(int(target.File())-int(origin.File())) == 2 {
		moveType = MoveCastling
		// Castling needs the king on its home square, the own rook on
		// its corner and every square between them empty.
		rookOrigin, step := SquareOf(FileH, origin.Rank()), Square(E)
		if target.File() < origin.File() {
			rookOrigin, step = SquareOf(FileA, origin.Rank()), Square(W)
		}
		if (origin != SquareE1 && origin != SquareE8) || pos.Board(rookOrigin) != PieceOf(originPiece.Color(), Rook) {
			return 0, fmt.Errorf("%s: no castling king and rook: %w", s, ErrMalformedFEN)
		}
		for sq := origin + step; sq != rookOrigin; sq += step {
			if pos.Board(sq) != NoPiece {
				return 0, fmt.Errorf("%s: castling path is blocked: %w", s, ErrMalformedFEN)
			}
		}
	}
	if originPiece.Type() == Pawn && (target.Rank() == Rank8 || target.Rank() == Rank1) {
		if len(s) != 5 {
			return 0, fmt.Errorf("%s: promotion move missing promotion piece: %w", s, ErrMalformedFEN)
		}
		moveType = MovePawnPromotion
		promotion = toPieceType(rune(s[4]))
		if promotion == NoPieceType {
			return 0, fmt.Errorf("%s: unknown promotion piece: %w", s, ErrMalformedFEN)
		}
	} else if len(s) != 4 {
		return 0, fmt.Errorf("%s: unexpected trailing characters: %w", s, ErrMalformedFEN)
	}

	return NewMove(moveType, origin, target, originPiece, targetPiece, promotion), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
