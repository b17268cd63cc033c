/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package scoring

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// isArabicMark reports harakat, Quranic marks, superscript alef and tatweel.
func isArabicMark(r rune) bool {
	return (r >= '\u064B' && r <= '\u065F') || r == '\u0670' || r == '\u0640'
}

// isOverlapMark is the narrower set stripped before BLEU and chrF.
func isOverlapMark(r rune) bool {
	return (r >= '\u064B' && r <= '\u0652') || r == '\u0670' || r == '\u0640'
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r) || r == '؟' || r == '،' || r == '؛'
}

// foldArabicLetter maps letter variants onto one representative.
func foldArabicLetter(r rune) rune {
	switch r {
	case 'أ', 'إ', 'آ', 'ٱ':
		return 'ا'
	case 'ى', 'ی':
		return 'ي'
	case 'ة':
		return 'ه'
	case 'ؤ':
		return 'و'
	case 'ئ':
		return 'ي'
	}
	return r
}

// NormalizeArabic prepares Arabic text for exact matching.
func NormalizeArabic(s string) string {
	t := transform.Chain(
		norm.NFKC,
		runes.Remove(runes.Predicate(isArabicMark)),
		runes.Map(foldArabicLetter),
		runes.Remove(runes.Predicate(isPunct)),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return collapseSpace(s)
	}
	return collapseSpace(out)
}

var lower = cases.Lower(language.Und)

// NormalizeEnglish prepares English text for exact matching.
func NormalizeEnglish(s string) string {
	t := transform.Chain(
		norm.NFKC,
		runes.Remove(runes.Predicate(isPunct)),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return collapseSpace(lower.String(out))
}

// normalizeOverlap prepares text for the n-gram overlap scorers: only marks
// are removed, letters and punctuation are kept.
func normalizeOverlap(s string) string {
	out, _, err := transform.String(runes.Remove(runes.Predicate(isOverlapMark)), s)
	if err != nil {
		out = s
	}
	return collapseSpace(out)
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
