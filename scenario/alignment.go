package scenario

import (
	"math"

	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/keystore"
)

// indexCandidate is one curve index nextKeyMatch offers the caller, paired
// with the distance score already computed for it (so ExpandChild need not
// recompute it for the common case).
type indexCandidate struct {
	index int
	dist  float64
}

// anisotropicDist computes the penalized distance between a curve point and
// a key center, scaling the component along axis by axisCoef and the
// component perpendicular to axis by perpCoef.
// A zero axis (no leniency direction available, e.g. a single-point curve)
// falls back to plain Euclidean distance.
func anisotropicDist(diff, axis geom.Vec, axisCoef, perpCoef float64) float64 {
	u := axis.Normalized()
	if u.X == 0 && u.Y == 0 {
		return diff.Norm()
	}
	along := diff.Dot(u)
	alongVec := u.Scale(along)
	perpVec := diff.Sub(alongVec)
	weighted := alongVec.Scale(axisCoef).Add(perpVec.Scale(perpCoef))
	return weighted.Norm()
}

// tangentAt returns the unit direction of the curve segment next to index
// i: the segment i → i+1 when forward is true, the segment i-1 → i
// otherwise (both point in the direction of travel). It is the zero
// vector when that neighbor does not exist.
func (s Scenario) tangentAt(i int, forward bool) geom.Vec {
	n := s.curve.Size()
	var other int
	if forward {
		other = i + 1
		if other >= n {
			return geom.Vec{}
		}
		return s.curve.PositionVec(other).Sub(s.curve.PositionVec(i)).Normalized()
	}
	other = i - 1
	if other < 0 {
		return geom.Vec{}
	}
	return s.curve.PositionVec(i).Sub(s.curve.PositionVec(other)).Normalized()
}

// distanceScore computes the normalized, sign-flipped distance score at
// curve index i for letter: positive when the curve point lands close to
// the key center (after anisotropic leniency), negative otherwise. isFirst
// and isLast select tip leniency along the local tangent; a mandatory
// special point at i selects normal-vector leniency instead.
func (s Scenario) distanceScore(letter keystore.LetterID, i int, isFirst, isLast bool) (float64, float64) {
	center := s.keys.CorrectedCenter(letter)
	point := s.curve.PositionVec(i)
	diff := point.Sub(geom.VecOf(center))

	ratio := s.p.AnisotropyRatio
	if ratio <= 0 {
		ratio = 1
	}

	var dist float64
	switch {
	case s.curve.Special(i, false).IsMandatory():
		axis := s.curve.Normal(i)
		dist = anisotropicDist(diff, axis, 1.0/ratio, 1.0)
	case isFirst:
		axis := s.tangentAt(i, true)
		dist = anisotropicDist(diff, axis, 1.0/(2*ratio), 1.0)
	case isLast:
		axis := s.tangentAt(i, false)
		dist = anisotropicDist(diff, axis, 1.0/(2*ratio), 1.0)
	default:
		dist = diff.Norm()
	}

	norm := s.p.DistMaxNext
	if isFirst {
		norm = s.p.DistMaxStart
	}
	if norm <= 0 {
		norm = 1
	}
	score := 1 - dist/norm
	return score, dist
}

// cosScore rates the direction of the curve chord C(prevIndex)→C(i) against
// the direction of the key chord K(prev)→K(letter): the closer the two
// directions, the smaller |sin θ| and the higher the score. A reversed
// direction (the curve chord points away from where the key chord points)
// scores −1 outright. Short curve chords are leniently scored via coef,
// which scales from 0 toward 1 as the chord approaches curve_score_min_dist,
// so that brief segments are not penalized as harshly as long ones for a
// direction mismatch.
func (s Scenario) cosScore(letter keystore.LetterID, prevIndex, i int) float64 {
	if prevIndex < 0 {
		return 1
	}
	prevLetter, ok := s.LastLetter()
	if !ok {
		return 1
	}

	keyChord := geom.VecOf(s.keys.CorrectedCenter(letter)).Sub(geom.VecOf(s.keys.CorrectedCenter(prevLetter)))
	curveChord := s.curve.PositionVec(i).Sub(s.curve.PositionVec(prevIndex))

	chordLen := curveChord.Norm()
	if chordLen == 0 || keyChord.Norm() == 0 {
		return 1
	}
	if keyChord.Dot(curveChord) < 0 {
		return -1
	}

	sinTheta := absF(geom.SinAngle(curveChord.X, curveChord.Y, keyChord.X, keyChord.Y))

	minDist := s.p.CurveScoreMinDist
	var coef float64
	if minDist > 0 {
		coef = clamp(chordLen/minDist, 0, 1)
	}

	maxAngle := s.p.MaxAngle * math.Pi / 180
	sinMax := math.Sin(maxAngle)
	var angleRatio float64
	if sinMax > 0 {
		angleRatio = coef * sinTheta / sinMax
	}

	var gapRatio float64
	if s.p.CosMaxGap > 0 {
		gapRatio = chordLen * sinTheta / s.p.CosMaxGap
	}

	return 1 - maxF(gapRatio, angleRatio)
}

// curveScore penalizes a candidate whose path from the previous matched
// point bows away from the straight key chord K(prev)→K(letter): s1 rates
// how far interior curve points stray perpendicular to that chord, s2 rates
// the quadrilateral area swept between the key chord and the curve chord,
// and s3 penalizes soft sharp turns the span passes over without
// rendezvousing.
func (s Scenario) curveScore(letter keystore.LetterID, prevIndex, i int) float64 {
	if prevIndex < 0 || i <= prevIndex {
		return 0
	}
	prevLetter, ok := s.LastLetter()
	if !ok {
		return 0
	}

	kPrev := s.keys.CorrectedCenter(prevLetter)
	kCur := s.keys.CorrectedCenter(letter)
	cPrev := s.curve.Position(prevIndex)
	cCur := s.curve.Position(i)
	chordLen := geom.Distance(cPrev, cCur)

	var maxDist, sumDist float64
	var samples, softTurns int
	for k := prevIndex + 1; k < i; k++ {
		p := s.curve.Position(k)
		d := geom.DistLinePoint(kPrev, kCur, p)
		if d > maxDist {
			maxDist = d
		}
		sumDist += d
		samples++
		if s.curve.Special(k, false).IsSoft() {
			softTurns++
		}
	}
	var meanDist float64
	if samples > 0 {
		meanDist = sumDist / float64(samples)
	}

	threshold := s.p.CurveDistThreshold
	if threshold <= 0 {
		threshold = 1
	}
	coef := minF(0.5+chordLen/(4*threshold), 1)
	spread := maxF(maxDist, 2*meanDist) / (threshold * coef)
	s1 := spread * spread

	area := geom.Surface4(kPrev, cPrev, cCur, kCur)
	s2 := s.p.CurveSurfaceCoef * area / 1e6

	s3 := s.p.SharpTurnPenalty * float64(softTurns)

	return 1 - s1 - s2 - s3
}

// nextKeyMatch scans forward from the scenario's current curve index for
// admissible indices to rendezvous with letter, honoring any mandatory
// special point encountered along the way. It returns the
// ordered list of candidate indices to try (best-first is not guaranteed;
// ExpandChild tries all of them and keeps what survives), or an error if no
// admissible index exists, or a mandatory point would be skipped.
func (s Scenario) nextKeyMatch(letter keystore.LetterID, isFirst, isLast bool) ([]indexCandidate, error) {
	n := s.curve.Size()
	from := 0
	if !isFirst {
		from = s.CurveIndex()
		if from < 0 {
			from = 0
		}
	}
	if from >= n {
		return nil, ErrNoAlignment
	}

	matchWait := int(s.p.MatchWait)
	if matchWait <= 0 {
		matchWait = 1
	}
	gap := int(s.p.MaxTurnIndexGap)
	minGap := int(s.p.MinTurnIndexGap)

	bestI, bestScore := -1, -1e18
	noImprove := 0
	turnI := -1
	var turnClass curvestore.SpecialClass
	var turnScore float64

	for i := from; i < n; i++ {
		score, _ := s.distanceScore(letter, i, isFirst, isLast)
		if score > bestScore {
			bestScore, bestI = score, i
			noImprove = 0
		} else {
			noImprove++
		}

		class := s.curve.Special(i, false)
		if class.IsMandatory() && turnI == -1 {
			turnI, turnClass, turnScore = i, class, score
		}

		if turnI >= 0 && i >= turnI+gap {
			break
		}
		if turnI == -1 && noImprove > matchWait && i-from >= matchWait {
			break
		}
	}

	if turnI == -1 {
		if bestI == -1 {
			return nil, ErrNoAlignment
		}
		return []indexCandidate{{bestI, bestScore}}, nil
	}

	if turnClass == curvestore.SpecialUTurn {
		if turnScore < 0 {
			return nil, ErrMandatoryPointSkipped
		}
		out := []indexCandidate{{turnI, turnScore}}
		if bestI >= 0 && bestI < turnI {
			out = append(out, indexCandidate{bestI, bestScore})
		}
		return out, nil
	}

	switch {
	case bestI >= 0 && bestI < turnI-gap:
		return []indexCandidate{{bestI, bestScore}}, nil
	case bestI > turnI+gap:
		return nil, ErrMandatoryPointSkipped
	default:
		var out []indexCandidate
		if turnClass == curvestore.SpecialMovableTurn && turnI-from <= gap {
			// A movable turn close to the scan origin is absorbed into the
			// tip rather than rendezvoused.
			if bestI >= 0 {
				out = append(out, indexCandidate{bestI, bestScore})
			}
			return out, nil
		}
		if turnScore > 0 {
			out = append(out, indexCandidate{turnI, turnScore})
		}
		if bestI >= 0 && (bestI < turnI-minGap || bestI > turnI+minGap) {
			out = append(out, indexCandidate{bestI, bestScore})
		}
		if len(out) == 0 {
			return nil, ErrMandatoryPointSkipped
		}
		return out, nil
	}
}
