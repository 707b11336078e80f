// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pulse

import "errors"

// ErrMalformedFEN is returned (wrapped with fmt.Errorf) by ToPosition
// and ParseLANMove for any syntactically invalid input: wrong field
// count, bad characters, an inconsistent en passant rank, a
// non-numeric clock.
var ErrMalformedFEN = errors.New("malformed fen")

// ErrInvalidArgument signals a programmer error — an out-of-range
// conversion such as fromFile(NoFile) — rather than bad input data. It
// should never arise from a valid chess position; callers on the hot
// make/undo path are trusted and are not expected to check for it.
var ErrInvalidArgument = errors.New("invalid argument")
