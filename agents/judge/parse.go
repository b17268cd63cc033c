/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"fmt"
	"regexp"
	"strconv"
)

// digitRun matches a maximal run of ASCII digits that is not glued to a
// letter, digit or underscore: "3." and "(4)" qualify, "3rd" and "x5" do not.
var digitRun = regexp.MustCompile(`\b[0-9]+\b`)

// ParseRating returns the first pure-digit token of reply whose value is in
// [MinRating, MaxRating].
func ParseRating(reply string) (int, error) {
	for _, tok := range digitRun.FindAllString(reply, -1) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		if n >= MinRating && n <= MaxRating {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNoRating, reply)
}
