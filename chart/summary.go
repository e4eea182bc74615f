package chart

import (
	"github.com/teranos/jyotish/graha"
)

// Summary is the condensed read of a chart: the rising point, the best
// placed grahas and houses, and an overall grade.
type Summary struct {
	Ascendant       Ascendant
	StrongestGrahas []graha.Graha
	StrongestBhava  int
	WeakestBhava    int
	YogaCount       int
	Grade           string
}

// Grade thresholds over mean house strength plus one point per yoga. The
// cutoffs are a reporting policy, not a classical rule.
const (
	gradeExceptional = "exceptional"
	gradeStrong      = "strong"
	gradeBalanced    = "balanced"
	gradeChallenging = "challenging"
)

// Summary derives the condensed view. Ties on graha dignity are kept, in
// enumeration order; ties on house strength resolve to the lower house
// number.
func (c *Chart) Summary() Summary {
	bestScore := 0
	for _, g := range c.grahas {
		if g.Dignity.Score > bestScore {
			bestScore = g.Dignity.Score
		}
	}
	var strongest []graha.Graha
	for _, g := range c.grahas {
		if g.Dignity.Score == bestScore {
			strongest = append(strongest, g.Graha)
		}
	}

	strongestBhava, weakestBhava := 1, 1
	total := 0.0
	for _, s := range c.strengths {
		total += s.Score
		if s.Score > c.strengths[strongestBhava-1].Score {
			strongestBhava = s.House
		}
		if s.Score < c.strengths[weakestBhava-1].Score {
			weakestBhava = s.House
		}
	}

	composite := total/float64(len(c.strengths)) + float64(len(c.yogas))
	var grade string
	switch {
	case composite >= 10:
		grade = gradeExceptional
	case composite >= 8:
		grade = gradeStrong
	case composite >= 5:
		grade = gradeBalanced
	default:
		grade = gradeChallenging
	}

	return Summary{
		Ascendant:       c.ascendant,
		StrongestGrahas: strongest,
		StrongestBhava:  strongestBhava,
		WeakestBhava:    weakestBhava,
		YogaCount:       len(c.yogas),
		Grade:           grade,
	}
}
