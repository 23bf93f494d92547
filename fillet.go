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

// Package fillet rounds the corner between two paths.
//
// Given a line or arc and a second line or arc which share an endpoint,
// [Fillet] constructs the circular arc of a given radius which is tangent to
// both paths, and shortens both paths so that they end where the fillet
// begins. If no such arc exists, both paths are left unchanged.
package fillet

import (
	"log/slog"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fillet/shape"
)

// Solver constructs fillets. The zero value uses [shape.DefaultAccuracy].
//
// A Solver holds no state between calls and is safe for concurrent use,
// as long as the paths passed to concurrent calls are distinct.
type Solver struct {
	// Accuracy is the rounding step used to decide whether two endpoints
	// coincide. Zero or negative values select [shape.DefaultAccuracy].
	Accuracy float64
}

// Fillet rounds the corner between p1 and p2 using the default [Solver].
func Fillet(p1, p2 shape.Path, radius float64) (*shape.Arc, error) {
	var s Solver
	return s.Fillet(p1, p2, radius)
}

// Fillet constructs an arc of the given radius which is tangent to both p1
// and p2 near their common endpoint.
//
// On success, the common endpoints of p1 and p2 are moved to the points where
// the arc touches the paths, and the arc is returned. Its span is always
// less than 180°. On failure, p1 and p2 are not modified and the error
// matches [ErrNoFillet].
//
// The caller must not access p1 or p2 concurrently with this call.
func (s *Solver) Fillet(p1, p2 shape.Path, radius float64) (*shape.Arc, error) {
	log := Logger()

	if p1 == nil || p2 == nil || isNilPath(p1) || isNilPath(p2) {
		return nil, fail(log, newError(InvalidInput, -1, "missing path"))
	}
	if p1 == p2 {
		return nil, fail(log, newError(InvalidInput, -1, "both paths are the same object"))
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fail(log, newError(InvalidInput, -1, "radius %g", radius))
	}
	accuracy := s.Accuracy
	if accuracy <= 0 {
		accuracy = shape.DefaultAccuracy
	}

	refs, ok := matchEndpoints(p1, p2, accuracy)
	if !ok {
		return nil, fail(log, newError(NoCommonEndpoint, -1, ""))
	}
	common := refs[0].point

	var sides [2]side
	for i, ref := range refs {
		shard, ok := locateShard(ref, radius)
		if !ok {
			return nil, fail(log, newError(NoShardIntersection, i,
				"path shorter than radius %g", radius))
		}
		sides[i] = side{endpointRef: ref, shard: shard}
	}

	var guides [2]shape.Path
	for i := range sides {
		g, ok := buildGuide(sides[i], radius, sides[1-i].shard, accuracy)
		if !ok {
			return nil, fail(log, newError(NoGuideIntersection, i, "no offset path"))
		}
		guides[i] = g
	}

	center, ok := resolveCenter(guides[0], guides[1], common)
	if !ok {
		return nil, fail(log, newError(NoGuideIntersection, -1, ""))
	}

	var outcomes [2]outcome
	for i := range sides {
		o, kind := resolveTangent(sides[i].endpointRef, center)
		if kind != 0 {
			return nil, fail(log, newError(kind, i, ""))
		}
		outcomes[i] = o
	}

	arc, kind := assemble(center, radius, outcomes[0].filletAngle, outcomes[1].filletAngle)
	if kind != 0 {
		return nil, fail(log, newError(kind, -1, ""))
	}

	for i := range sides {
		outcomes[i].commit(sides[i].endpointRef)
	}
	log.Debug("fillet constructed",
		slog.Float64("radius", radius),
		slog.Float64("cx", center.X),
		slog.Float64("cy", center.Y),
		slog.Float64("start", arc.StartAngle),
		slog.Float64("end", arc.EndAngle))
	return arc, nil
}

// assemble builds the fillet arc between the two tangent directions,
// choosing the orientation which gives a span of less than 180°.
func assemble(center vec.Vec2, radius, start, end float64) (*shape.Arc, Kind) {
	arc := shape.NewArc(center, radius, start, end)
	span := shape.Round(arc.Span(), shape.DefaultAccuracy)
	switch {
	case span == 180:
		return nil, AmbiguousSpan
	case span > 180:
		arc.StartAngle, arc.EndAngle = arc.EndAngle, arc.StartAngle
	}
	return arc, 0
}

// isNilPath reports whether p wraps a nil pointer.
func isNilPath(p shape.Path) bool {
	switch p := p.(type) {
	case *shape.Line:
		return p == nil
	case *shape.Arc:
		return p == nil
	}
	return false
}

func fail(log *slog.Logger, err *Error) error {
	log.Debug("no fillet",
		slog.String("kind", err.Kind.String()),
		slog.Int("side", err.Side),
		slog.String("msg", err.Msg))
	return err
}
