// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// attack.go holds the per-piece direction tables, which the
// evaluator's mobility count reads through directionsFor, and the two
// attack scans (single-step for knights/kings, ray scan for bishops/
// rooks/queens) that Position.IsAttacked is built from.
//
// Unlike the teacher's magic-bitboard sliding attacks, the 0x88 layout
// mandated by this design makes ray scanning itself O(1) per step with
// a single AND for the off-board test, so there is no precomputed
// attack table to build here — only the direction deltas.

package pulse

// pawnCaptureDirections[c] holds the two deltas a c-colored pawn
// captures along, indexed by color.
var pawnCaptureDirections = [2][2]int{
	White: {NE, NW},
	Black: {SE, SW},
}

var knightDirections = [8]int{-33, -31, -18, -14, 14, 18, 31, 33}
var bishopDirections = [4]int{NE, NW, SE, SW}
var rookDirections = [4]int{N, S, E, W}
var kingDirections = [8]int{N, S, E, W, NE, NW, SE, SW}

// directionsFor returns the movement directions and sliding-ness for
// pt, used by mobility scoring. Pawns and kings are not scored for
// mobility and return ok == false.
func directionsFor(pt PieceType) (directions []int, sliding bool, ok bool) {
	switch pt {
	case Knight:
		return knightDirections[:], false, true
	case Bishop:
		return bishopDirections[:], true, true
	case Rook:
		return rookDirections[:], true, true
	case Queen:
		return kingDirections[:], true, true
	default:
		return nil, false, false
	}
}

// isAttackedByStep reports whether any square one step from target in
// one of directions holds attacker.
func isAttackedByStep(board *[128]Piece, target Square, attacker Piece, directions []int) bool {
	for _, d := range directions {
		sq := target + Square(d)
		if sq.IsValid() && board[sq] == attacker {
			return true
		}
	}
	return false
}

// isAttackedBySlide ray-scans from target in each of directions until
// off-board or until it hits a piece; the ray hits iff that piece is
// attacker or queen.
func isAttackedBySlide(board *[128]Piece, target Square, attacker, queen Piece, directions []int) bool {
	for _, d := range directions {
		sq := target + Square(d)
		for sq.IsValid() {
			p := board[sq]
			if p != NoPiece {
				if p == attacker || p == queen {
					return true
				}
				break
			}
			sq += Square(d)
		}
	}
	return false
}
