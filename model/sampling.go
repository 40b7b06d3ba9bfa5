package model

// Sampling is the resolved, evenly spaced set of positions along one axis:
// Start, Start+Step, …, Start+(Count-1)·Step.
//
// Every line-like model (Line, DiagonalLine, each Grid axis) reduces to a
// Sampling, which makes point i a closed-form expression.
type Sampling struct {
	Start float64
	Step  float64
	Count int
}

// At returns the i-th position. i is not range-checked.
func (s Sampling) At(i int) float64 {
	return s.Start + float64(i)*s.Step
}

// Last returns the final position, or Start for an empty sampling.
func (s Sampling) Last() float64 {
	if s.Count == 0 {
		return s.Start
	}
	return s.At(s.Count - 1)
}

// sample resolves an axis of the given signed length starting at start,
// from either an explicit point count or a step.
//
// Policy:
//   - points N, edge placement:  start + i·len/(N-1); N=1 ⇒ start.
//   - points N, fit placement:   start + (i+½)·len/N.
//   - step s, edge placement:    ⌊len/s⌋+1 points from start.
//   - step s, fit placement:     ⌊len/s⌋ points from start+s/2; none fit ⇒ one at the centre.
//   - both given: the spacing they imply must agree; points wins.
//   - neither given:             ErrMissingParameter.
//   - step sign opposite to len: ErrWrongDirection.
//   - zero length:               a single repeated value, never a division by zero.
func sample(method, pointsField, stepField string, start, length float64, points int, step float64, fit bool) (Sampling, error) {
	if err := validateFinite(method, stepField, step); err != nil {
		return Sampling{}, err
	}
	if err := validateCount(method, pointsField, points); err != nil {
		return Sampling{}, err
	}

	switch {
	case points == 0 && step == 0:
		return Sampling{}, modelErrorf(method, ErrMissingParameter, "neither %s nor %s set", pointsField, stepField)

	case points > 0:
		s := samplePoints(start, length, points, fit)
		if step != 0 && points > 1 && !sameSpacing(step, s.Step) {
			return Sampling{}, modelErrorf(method, ErrContradictoryParameters,
				"%s=%d implies step %v, but %s=%v", pointsField, points, s.Step, stepField, step)
		}
		return s, nil

	default:
		return sampleStep(method, stepField, start, length, step, fit)
	}
}

func samplePoints(start, length float64, n int, fit bool) Sampling {
	if fit {
		step := length / float64(n)
		return Sampling{Start: start + step/2, Step: step, Count: n}
	}
	if n == 1 {
		return Sampling{Start: start, Step: 0, Count: 1}
	}
	return Sampling{Start: start, Step: length / float64(n-1), Count: n}
}

func sampleStep(method, stepField string, start, length, step float64, fit bool) (Sampling, error) {
	if length != 0 && (length > 0) != (step > 0) {
		return Sampling{}, modelErrorf(method, ErrWrongDirection, "%s=%v for length %v", stepField, step, length)
	}
	steps := floorSteps(length, step)
	if steps > MaxAxisPoints {
		return Sampling{}, modelErrorf(method, ErrInvalidParameter,
			"%s=%v over length %v gives more than %d points", stepField, step, length, MaxAxisPoints)
	}

	n := int(steps)
	if !fit {
		return Sampling{Start: start, Step: step, Count: n + 1}, nil
	}
	if n == 0 {
		return Sampling{Start: start + length/2, Step: 0, Count: 1}, nil
	}
	return Sampling{Start: start + step/2, Step: step, Count: n}, nil
}
