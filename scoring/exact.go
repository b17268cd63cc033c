/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package scoring

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrLengthMismatch is returned when predictions and references differ in length.
var ErrLengthMismatch = errors.New("predictions and references differ in length")

func checkParallel(predictions, references []string) error {
	if len(predictions) != len(references) {
		return fmt.Errorf("%w: %d predictions, %d references", ErrLengthMismatch, len(predictions), len(references))
	}
	return nil
}

// meanMatch returns the share of pairs whose normalized forms are equal.
func meanMatch(predictions, references []string, normalize func(string) string) (float64, error) {
	if err := checkParallel(predictions, references); err != nil {
		return 0, err
	}
	if len(predictions) == 0 {
		return 0, nil
	}
	matches := 0
	for i := range predictions {
		if normalize(predictions[i]) == normalize(references[i]) {
			matches++
		}
	}
	return float64(matches) / float64(len(predictions)), nil
}

// ArabicExactMatch is the share of pairs equal after NormalizeArabic.
func ArabicExactMatch(predictions, references []string) (float64, error) {
	return meanMatch(predictions, references, NormalizeArabic)
}

// EnglishExactMatch is the share of pairs equal after NormalizeEnglish.
func EnglishExactMatch(predictions, references []string) (float64, error) {
	return meanMatch(predictions, references, NormalizeEnglish)
}

var choiceLetter = regexp.MustCompile(`\b[A-D]\b`)

// ChoiceLetter returns the first standalone A-D letter in a prediction, or "".
func ChoiceLetter(prediction string) string {
	return choiceLetter.FindString(prediction)
}

// ChoiceAccuracy is the share of predictions whose first choice letter equals
// the reference letter.
func ChoiceAccuracy(predictions, references []string) (float64, error) {
	return meanMatch(predictions, references, ChoiceLetter)
}
