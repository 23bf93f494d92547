// seehuhn.de/go/fillet - tangent arcs between lines and circular arcs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fillet

import (
	"errors"
	"fmt"
)

// ErrNoFillet is matched by every error returned from the solver.
// Use [KindOf] to find out why no fillet could be constructed.
var ErrNoFillet = errors.New("no fillet possible")

// Kind classifies the reason why no fillet could be constructed.
type Kind int

// These are the possible failure kinds.
const (
	// InvalidInput means a path is missing or the radius is not positive.
	InvalidInput Kind = iota + 1

	// NoCommonEndpoint means that no endpoint of the first path coincides
	// with an endpoint of the second path.
	NoCommonEndpoint

	// NoShardIntersection means that the probe circle around the common
	// point does not meet one of the paths, usually because the path is
	// shorter than the radius.
	NoShardIntersection

	// NoGuideIntersection means that the two offset paths do not meet,
	// or that no offset path exists.
	NoGuideIntersection

	// DegenerateTrim means that trimming would reduce a path to zero length.
	DegenerateTrim

	// AmbiguousSpan means that the fillet arc would span exactly 180°.
	AmbiguousSpan
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case NoCommonEndpoint:
		return "no common endpoint"
	case NoShardIntersection:
		return "no shard intersection"
	case NoGuideIntersection:
		return "no guide intersection"
	case DegenerateTrim:
		return "degenerate trim"
	case AmbiguousSpan:
		return "ambiguous span"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error describes a failed fillet construction.
type Error struct {
	Kind Kind

	// Side is the index (0 or 1) of the path which caused the failure,
	// or -1 if the failure concerns both paths.
	Side int

	Msg string
}

func (e *Error) Error() string {
	msg := "fillet: " + e.Kind.String()
	if e.Side >= 0 {
		msg += fmt.Sprintf(" (path %d)", e.Side+1)
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	return msg
}

// Is makes every *Error match [ErrNoFillet].
func (e *Error) Is(target error) bool {
	return target == ErrNoFillet
}

// KindOf returns the failure kind of err, or 0 if err was not produced by
// the solver.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(kind Kind, side int, format string, args ...any) *Error {
	return &Error{
		Kind: kind,
		Side: side,
		Msg:  fmt.Sprintf(format, args...),
	}
}
