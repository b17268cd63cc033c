/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openailm

import (
	"context"
	"testing"

	"chainguard.dev/jawaher/agents/lm"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/require"
)

type fakeResponses struct {
	calls []responses.ResponseNewParams
	text  string
}

func (f *fakeResponses) New(_ context.Context, body responses.ResponseNewParams, _ ...option.RequestOption) (*responses.Response, error) {
	f.calls = append(f.calls, body)
	return &responses.Response{
		Output: []responses.ResponseOutputItemUnion{{
			Type: "message",
			Content: []responses.ResponseOutputMessageContentUnion{{
				Type: "output_text",
				Text: f.text,
			}},
		}},
	}, nil
}

func newTestLM(t *testing.T, fake *fakeResponses) *LM {
	t.Helper()
	l, err := New(context.Background(),
		WithLookuper(envconfig.MapLookuper(map[string]string{"OPENAI_API_KEY": "sk-test"})),
		WithClient(fake))
	require.NoError(t, err)
	return l
}

func TestGenerateUntil(t *testing.T) {
	fake := &fakeResponses{text: "4\n\nReasoning: close match"}
	l := newTestLM(t, fake)

	got, err := l.GenerateUntil(context.Background(), []lm.Request{{
		Prompt:  "rate",
		Options: lm.Options{Until: lm.StopSequences{"\n\nReasoning"}},
	}, {
		// Whitespace-only stops are dropped, so nothing is cut.
		Prompt:  "rate again",
		Options: lm.Options{Until: lm.StopSequences{"\n\n"}},
	}}, true)
	require.NoError(t, err)
	require.Equal(t, []string{"4", "4\n\nReasoning: close match"}, got)
	require.Len(t, fake.calls, 2)
}

func TestGenerateUntilEmptyBatch(t *testing.T) {
	fake := &fakeResponses{}
	l := newTestLM(t, fake)
	got, err := l.GenerateUntil(context.Background(), nil, true)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Empty(t, fake.calls)
}

func TestExtractText(t *testing.T) {
	require.Equal(t, "", extractText(nil))
	require.Equal(t, "", extractText(&responses.Response{}))
	require.Equal(t, "", extractText(&responses.Response{
		Output: []responses.ResponseOutputItemUnion{{Type: "reasoning"}},
	}))
}

func TestTruncateAtStop(t *testing.T) {
	tests := []struct {
		text  string
		stops []string
		want  string
	}{
		{text: "abc", want: "abc"},
		{text: "a.b\nc", stops: []string{"\n", "."}, want: "a"},
		{text: "abc", stops: []string{"x"}, want: "abc"},
	}
	for _, tc := range tests {
		if got := truncateAtStop(tc.text, tc.stops); got != tc.want {
			t.Errorf("truncateAtStop(%q, %q) = %q, wanted %q", tc.text, tc.stops, got, tc.want)
		}
	}
}

func TestMissingCredential(t *testing.T) {
	_, err := New(context.Background(),
		WithLookuper(envconfig.MapLookuper(map[string]string{"OPENAI_API_KEY": ""})),
		WithClient(&fakeResponses{}))
	require.ErrorIs(t, err, lm.ErrMissingCredential)
}
