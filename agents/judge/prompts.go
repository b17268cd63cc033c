/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"chainguard.dev/jawaher/agents/promptbuilder"
)

// rubricPrompt asks for a single Likert rating of a prediction.
var rubricPrompt = promptbuilder.MustNewPrompt(`You are grading an answer about an Arabic proverb against a reference answer.

Reference answer:
{{reference}}

Answer to grade:
{{prediction}}

Rate how well the answer conveys the meaning of the reference on a scale from 1 to 5:
1 - Wrong or unrelated meaning.
2 - Mostly wrong, with a small correct element.
3 - Partially correct; the main idea is incomplete or mixed with errors.
4 - Correct meaning with minor omissions or inaccuracies.
5 - Fully correct; equivalent in meaning to the reference.

Reply with the rating digit only.
Rating:`)

// request binds one pair into the rubric.
type request struct {
	Prediction string
	Reference  string
}

var _ promptbuilder.Binder = request{}

// Bind implements promptbuilder.Binder
func (r request) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	return p.BindAll(map[string]string{
		"prediction": r.Prediction,
		"reference":  r.Reference,
	})
}
