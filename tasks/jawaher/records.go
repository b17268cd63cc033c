/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package jawaher

import "chainguard.dev/jawaher/scoring"

// ProverbRecord is one row of the Jawaher dataset.
type ProverbRecord struct {
	ID                   string `json:"id"`
	Proverb              string `json:"Proverbs"`
	Explanation          string `json:"Ar_Explanation"`
	EnglishExplanation   string `json:"En_Explanation"`
	IncorrectExplanation string `json:"Incorrect_Explanation"`
	Dialect              string `json:"Dialect,omitempty"`
	Sentiment            string `json:"Sentiment,omitempty"`
}

// ProverbChoice is a proverb with two candidate explanations, one correct.
type ProverbChoice struct {
	ID      string    `json:"id"`
	Proverb string    `json:"Proverb"`
	Options [2]string `json:"Options"`
	// Answer is the index of the correct option.
	Answer  int       `json:"Answer"`
}

// IdiomRecord is one row of the MAPS dataset.
type IdiomRecord struct {
	ID        string    `json:"id"`
	Proverb   string    `json:"proverb"`
	Context   string    `json:"conversation"`
	Options   [4]string `json:"options"`
	// AnswerKey is the letter of the correct option.
	AnswerKey string    `json:"answer_key"`
}

// CompletionItem asks for the final word of a proverb.
type CompletionItem struct {
	ID         string `json:"id"`
	Proverb    string `json:"Proverb"`
	Incomplete string `json:"Incomplete"`
	Target     string `json:"Target"`
}

// SentimentItem is either a proverb or its explanation, to be labeled.
type SentimentItem struct {
	ID    string `json:"id"`
	Phase string `json:"phase"`
	Text  string `json:"text"`
	Label string `json:"label,omitempty"`
}

var _ scoring.SentimentKeyed = SentimentItem{}

// SentimentKey groups the two phases of the same proverb.
func (s SentimentItem) SentimentKey() (string, string) {
	return s.ID, s.Phase
}
