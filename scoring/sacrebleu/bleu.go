/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package sacrebleu

import (
	"fmt"
	"math"
	"strings"
)

// MaxNgramOrder is the highest BLEU n-gram order.
const MaxNgramOrder = 4

// BLEU holds a corpus BLEU score and the statistics behind it.
type BLEU struct {
	Score      float64
	Precisions [MaxNgramOrder]float64
	BP         float64
	SysLen     int
	RefLen     int
}

// ngramCounts counts the n-grams of tokens of order n.
func ngramCounts(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], "\x00")]++
	}
	return counts
}

// CorpusBLEU scores hypotheses against one reference each.
func CorpusBLEU(hypotheses, references []string) (BLEU, error) {
	if len(hypotheses) != len(references) {
		return BLEU{}, fmt.Errorf("bleu: %d hypotheses, %d references", len(hypotheses), len(references))
	}

	var correct, total [MaxNgramOrder]int
	var sysLen, refLen int
	for i := range hypotheses {
		hyp := Tokenize13a(hypotheses[i])
		ref := Tokenize13a(references[i])
		sysLen += len(hyp)
		refLen += len(ref)

		for n := 1; n <= MaxNgramOrder; n++ {
			refCounts := ngramCounts(ref, n)
			for ngram, c := range ngramCounts(hyp, n) {
				correct[n-1] += min(c, refCounts[ngram])
				total[n-1] += c
			}
		}
	}
	return computeBLEU(correct, total, sysLen, refLen), nil
}

// computeBLEU applies exponential smoothing and the brevity penalty.
func computeBLEU(correct, total [MaxNgramOrder]int, sysLen, refLen int) BLEU {
	b := BLEU{BP: 1, SysLen: sysLen, RefLen: refLen}
	if sysLen < refLen {
		if sysLen > 0 {
			b.BP = math.Exp(1 - float64(refLen)/float64(sysLen))
		} else {
			b.BP = 0
		}
	}

	smooth := 1.0
	for n := range MaxNgramOrder {
		if total[n] == 0 {
			break
		}
		if correct[n] == 0 {
			smooth *= 2
			b.Precisions[n] = 100 / (smooth * float64(total[n]))
			continue
		}
		b.Precisions[n] = 100 * float64(correct[n]) / float64(total[n])
	}

	var logSum float64
	for _, p := range b.Precisions {
		logSum += safeLog(p)
	}
	b.Score = b.BP * math.Exp(logSum/MaxNgramOrder)
	return b
}

// safeLog mirrors the reference implementation, which maps log(0) to a
// large negative constant instead of -Inf.
func safeLog(x float64) float64 {
	if x == 0 {
		return -9999999999
	}
	return math.Log(x)
}
