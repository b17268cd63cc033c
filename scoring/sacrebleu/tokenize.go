/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package sacrebleu

import (
	"regexp"
	"strings"
)

var (
	htmlEntities = strings.NewReplacer(
		"&quot;", `"`,
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
	)

	// Order matters: each rule runs over the output of the previous one.
	rules13a = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile("([\\{-\\~\\[-\\` -\\&\\(-\\+\\:-\\@\\/])"), " ${1} "},
		{regexp.MustCompile(`([^0-9])([\.,])`), "${1} ${2} "},
		{regexp.MustCompile(`([\.,])([^0-9])`), " ${1} ${2}"},
		{regexp.MustCompile(`([0-9])(-)`), "${1} ${2} "},
	}
)

// Tokenize13a splits a line the way the mteval-v13a script does.
func Tokenize13a(line string) []string {
	line = strings.ReplaceAll(line, "<skipped>", "")
	line = strings.ReplaceAll(line, "-\n", "")
	line = strings.ReplaceAll(line, "\n", " ")
	if strings.Contains(line, "&") {
		line = htmlEntities.Replace(line)
	}

	line = " " + line + " "
	for _, r := range rules13a {
		line = r.re.ReplaceAllString(line, r.repl)
	}
	return strings.Fields(line)
}
