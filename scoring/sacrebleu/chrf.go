/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package sacrebleu

import (
	"fmt"
	"strings"
)

const (
	// CharOrder is the highest chrF character n-gram order.
	CharOrder = 6
	// Beta weighs recall Beta times as much as precision.
	Beta = 2
)

// ChrF holds a corpus chrF score.
type ChrF struct {
	Score float64
}

type chrStats struct {
	hyp, ref, match int
}

func charNgrams(s string, n int) map[string]int {
	r := []rune(strings.Join(strings.Fields(s), ""))
	counts := make(map[string]int)
	for i := 0; i+n <= len(r); i++ {
		counts[string(r[i:i+n])]++
	}
	return counts
}

// CorpusChrF scores hypotheses against one reference each.
func CorpusChrF(hypotheses, references []string) (ChrF, error) {
	if len(hypotheses) != len(references) {
		return ChrF{}, fmt.Errorf("chrf: %d hypotheses, %d references", len(hypotheses), len(references))
	}

	var stats [CharOrder]chrStats
	for i := range hypotheses {
		for n := 1; n <= CharOrder; n++ {
			hyp := charNgrams(hypotheses[i], n)
			ref := charNgrams(references[i], n)
			for g, c := range hyp {
				stats[n-1].hyp += c
				stats[n-1].match += min(c, ref[g])
			}
			for _, c := range ref {
				stats[n-1].ref += c
			}
		}
	}
	return ChrF{Score: fScore(stats[:])}, nil
}

// fScore averages precision and recall over the orders both sides have
// n-grams for, then combines them into F-beta.
func fScore(stats []chrStats) float64 {
	const factor = Beta * Beta
	var avgPrec, avgRec float64
	effective := 0
	for _, s := range stats {
		if s.hyp == 0 || s.ref == 0 {
			continue
		}
		avgPrec += float64(s.match) / float64(s.hyp)
		avgRec += float64(s.match) / float64(s.ref)
		effective++
	}
	if effective == 0 {
		return 0
	}
	avgPrec /= float64(effective)
	avgRec /= float64(effective)
	if avgPrec+avgRec == 0 {
		return 0
	}
	return 100 * (1 + factor) * avgPrec * avgRec / (factor*avgPrec + avgRec)
}
