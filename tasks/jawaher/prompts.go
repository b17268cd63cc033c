/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package jawaher

import (
	"fmt"

	"chainguard.dev/jawaher/agents/promptbuilder"
	"chainguard.dev/jawaher/scoring"
)

// AnswerCue ends every prompt.
const AnswerCue = "Answer:"

// SentimentRubric is shared by both sentiment prompts. The first word of each
// definition is the label the scorer compares.
const SentimentRubric = `Classify the sentiment into exactly one of these categories:
Positive: expresses optimism, praise, encouragement or a favorable outcome.
Negative: expresses pessimism, criticism, warning or an unfavorable outcome.
Neutral: states a fact or observation without a clear positive or negative attitude.
Reply with the category name only.`

// SentimentLabels are the lowercase rubric categories.
var SentimentLabels = []string{"positive", "negative", "neutral"}

var (
	mcqPrompt = promptbuilder.MustNewPrompt("You are tasked with selecting the correct explanation for the following proverb. \nProverb: {{proverb}}\n\nChoose the correct explanation from the options provided. \n\nOptions: A. {{a}} \nB. {{b}}\n\n" + AnswerCue)

	mcqEnglishPrompt = promptbuilder.MustNewPrompt("You are tasked with selecting the correct English explanation for the following Arabic proverb. \nProverb: {{proverb}}\n\nChoose the correct explanation from the options provided. \n\nOptions: A. {{a}} \nB. {{b}}\n\n" + AnswerCue)

	idiomPrompt = promptbuilder.MustNewPrompt(`Choose the option that best explains the meaning of the following proverb.
Proverb: {{proverb}}

Options:
A. {{a}}
B. {{b}}
C. {{c}}
D. {{d}}

Reply with the letter of the correct option.
` + AnswerCue)

	idiomContextPrompt = promptbuilder.MustNewPrompt(`Read the conversation and choose the option that best explains the meaning of the proverb as it is used there.
Conversation:
{{context}}

Proverb: {{proverb}}

Options:
A. {{a}}
B. {{b}}
C. {{c}}
D. {{d}}

Reply with the letter of the correct option.
` + AnswerCue)

	completionPrompt = promptbuilder.MustNewPrompt(`Complete the following Arabic proverb with its missing final word.
Proverb: {{incomplete}} ...

Reply with the missing word only.
` + AnswerCue)

	proverbSentimentPrompt = promptbuilder.MustNewPrompt(SentimentRubric + `

Proverb: {{text}}
` + AnswerCue)

	explanationSentimentPrompt = promptbuilder.MustNewPrompt(SentimentRubric + `

Explanation of a proverb: {{text}}
` + AnswerCue)

	explainArabicPrompt = promptbuilder.MustNewPrompt(`اشرح معنى المثل التالي باللغة العربية في جملة أو جملتين.
المثل: {{proverb}}
` + AnswerCue)

	explainEnglishPrompt = promptbuilder.MustNewPrompt(`Explain the meaning of the following Arabic proverb in English in one or two sentences.
Proverb: {{proverb}}
` + AnswerCue)
)

func render(p *promptbuilder.Prompt, values map[string]string) (string, error) {
	bound, err := p.BindAll(values)
	if err != nil {
		return "", err
	}
	return bound.Build()
}

// ProverbMCQ renders the two-option explanation question.
func ProverbMCQ(c ProverbChoice) (string, error) {
	return render(mcqPrompt, map[string]string{"proverb": c.Proverb, "a": c.Options[0], "b": c.Options[1]})
}

// ProverbMCQEnglish renders the two-option question over English explanations.
func ProverbMCQEnglish(c ProverbChoice) (string, error) {
	return render(mcqEnglishPrompt, map[string]string{"proverb": c.Proverb, "a": c.Options[0], "b": c.Options[1]})
}

func idiomValues(r IdiomRecord) map[string]string {
	return map[string]string{
		"proverb": r.Proverb,
		"a":       r.Options[0],
		"b":       r.Options[1],
		"c":       r.Options[2],
		"d":       r.Options[3],
	}
}

// IdiomMCQ renders the four-option MAPS question.
func IdiomMCQ(r IdiomRecord) (string, error) {
	return render(idiomPrompt, idiomValues(r))
}

// IdiomMCQWithContext renders the four-option MAPS question after the
// conversation the proverb appears in.
func IdiomMCQWithContext(r IdiomRecord) (string, error) {
	values := idiomValues(r)
	values["context"] = r.Context
	return render(idiomContextPrompt, values)
}

// ProverbCompletion asks for the missing final word.
func ProverbCompletion(c CompletionItem) (string, error) {
	return render(completionPrompt, map[string]string{"incomplete": c.Incomplete})
}

// Sentiment renders the rubric prompt for either phase.
func Sentiment(s SentimentItem) (string, error) {
	switch s.Phase {
	case scoring.PhaseProverb:
		return ProverbSentiment(s.Text)
	case scoring.PhaseExplanation:
		return ExplanationSentiment(s.Text)
	default:
		return "", fmt.Errorf("unknown sentiment phase %q", s.Phase)
	}
}

// ProverbSentiment asks for the sentiment of a proverb.
func ProverbSentiment(proverb string) (string, error) {
	return render(proverbSentimentPrompt, map[string]string{"text": proverb})
}

// ExplanationSentiment asks for the sentiment of an explanation.
func ExplanationSentiment(explanation string) (string, error) {
	return render(explanationSentimentPrompt, map[string]string{"text": explanation})
}

// ExplainProverbArabic asks for an Arabic explanation.
func ExplainProverbArabic(r ProverbRecord) (string, error) {
	return render(explainArabicPrompt, map[string]string{"proverb": r.Proverb})
}

// ExplainProverbEnglish asks for an English explanation.
func ExplainProverbEnglish(r ProverbRecord) (string, error) {
	return render(explainEnglishPrompt, map[string]string{"proverb": r.Proverb})
}

// AnswerLetter returns the option letter for index i.
func AnswerLetter(i int) string {
	return string(rune('A' + i))
}
