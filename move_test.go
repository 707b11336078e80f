// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pulse

import "testing"

func TestMoveCreation(t *testing.T) {
	a7 := SquareOf(FileA, Rank7)
	b8 := SquareOf(FileB, Rank8)
	m := NewMove(MovePawnPromotion, a7, b8, PieceOf(White, Pawn), PieceOf(Black, Queen), Knight)

	if got := m.Type(); got != MovePawnPromotion {
		t.Errorf("Type() = %v, want MovePawnPromotion", got)
	}
	if got := m.Origin(); got != a7 {
		t.Errorf("Origin() = %v, want a7", got)
	}
	if got := m.Target(); got != b8 {
		t.Errorf("Target() = %v, want b8", got)
	}
	if got := m.OriginPiece(); got != PieceOf(White, Pawn) {
		t.Errorf("OriginPiece() = %v, want white pawn", got)
	}
	if got := m.TargetPiece(); got != PieceOf(Black, Queen) {
		t.Errorf("TargetPiece() = %v, want black queen", got)
	}
	if got := m.Promotion(); got != Knight {
		t.Errorf("Promotion() = %v, want Knight", got)
	}
}

func TestMoveString(t *testing.T) {
	e2 := SquareOf(FileE, Rank2)
	a7 := SquareOf(FileA, Rank7)
	a8 := SquareOf(FileA, Rank8)
	cases := []struct {
		m    Move
		want string
	}{
		{NewMove(MoveNormal, SquareE1, e2, PieceOf(White, King), NoPiece, NoPieceType), "e1e2"},
		{NewMove(MovePawnPromotion, a7, a8, PieceOf(White, Pawn), NoPiece, Queen), "a7a8q"},
	}
	for _, c := range cases {
		if got := c.m.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestParseLANMoveDoublePush(t *testing.T) {
	pos, err := ToPosition(StandardPosition)
	if err != nil {
		t.Fatal(err)
	}
	m, err := ParseLANMove(pos, "e2e4")
	if err != nil {
		t.Fatal(err)
	}
	if m.Type() != MovePawnDouble {
		t.Errorf("Type() = %v, want MovePawnDouble", m.Type())
	}
	if m.Origin() != SquareOf(FileE, Rank2) || m.Target() != SquareOf(FileE, Rank4) {
		t.Errorf("unexpected origin/target: %v -> %v", m.Origin(), m.Target())
	}
}

func TestParseLANMoveCastling(t *testing.T) {
	pos, err := ToPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := ParseLANMove(pos, "e1g1")
	if err != nil {
		t.Fatal(err)
	}
	if m.Type() != MoveCastling {
		t.Errorf("Type() = %v, want MoveCastling", m.Type())
	}
}

func TestParseLANMovePromotionRequiresLetter(t *testing.T) {
	pos, err := ToPosition("8/P7/8/8/8/8/8/4k2K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseLANMove(pos, "a7a8"); err == nil {
		t.Errorf("expected error for missing promotion letter")
	}
	m, err := ParseLANMove(pos, "a7a8q")
	if err != nil {
		t.Fatal(err)
	}
	if m.Type() != MovePawnPromotion || m.Promotion() != Queen {
		t.Errorf("got type %v promotion %v, want PawnPromotion/Queen", m.Type(), m.Promotion())
	}
}

func TestParseLANMoveEnPassant(t *testing.T) {
	pos, err := ToPosition("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := ParseLANMove(pos, "e5d6")
	if err != nil {
		t.Fatal(err)
	}
	if m.Type() != MoveEnPassant {
		t.Errorf("Type() = %v, want MoveEnPassant", m.Type())
	}
	if m.TargetPiece() != PieceOf(Black, Pawn) {
		t.Errorf("TargetPiece() = %v, want black pawn", m.TargetPiece())
	}
}
