// SPDX-License-Identifier: MIT
// Package: scanpath/model
//
// enforce.go — converting step-based models into equivalent points-based ones.
//
// Contract:
//   • The returned model produces exactly the positions of the input.
//   • Lengths are trimmed to the last reachable step, so the region reported
//     downstream is the region actually scanned.
//   • When no whole step fits: with BoundsToFit the region is kept and the
//     single point sits at its centre; without it the region grows to one
//     step and the single point sits at its start.
//   • Points-based inputs are returned unchanged.

package model

// EnforceLineShape returns the points-based equivalent of a step-based Line.
func EnforceLineShape(l Line) (Line, error) {
	if err := l.Validate(); err != nil {
		return Line{}, err
	}
	if l.Points > 0 {
		return l, nil
	}
	s, _ := l.Sampling()
	length := enforcedLength(l.Length(), l.Step, s.Count, l.BoundsToFit)

	out := l
	out.Stop = l.Start + length
	out.Points = s.Count
	out.Step = 0
	return out, nil
}

// EnforceGridShape returns the points-based equivalent of a step-based Grid.
// Axes already given as points are left as they are.
func EnforceGridShape(g Grid) (Grid, error) {
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	fast, slow, _ := g.Samplings()

	out := g
	if g.FastPoints == 0 {
		out.Box.FastLength = enforcedLength(g.Box.FastLength, g.FastStep, fast.Count, g.BoundsToFit)
		out.FastPoints = fast.Count
	}
	if g.SlowPoints == 0 {
		out.Box.SlowLength = enforcedLength(g.Box.SlowLength, g.SlowStep, slow.Count, g.BoundsToFit)
		out.SlowPoints = slow.Count
	}
	out.FastStep, out.SlowStep = 0, 0

	return out, nil
}

// enforcedLength returns the region length a points-based model needs to
// reproduce count positions spaced by step.
func enforcedLength(length, step float64, count int, fit bool) float64 {
	if fit {
		// one centred point: any length reproduces it, keep the original
		if count == 1 && floorSteps(length, step) == 0 {
			return length
		}
		return float64(count) * step
	}
	if count == 1 {
		return step
	}
	return float64(count-1) * step
}
