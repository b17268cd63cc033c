/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package lm

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestNormalizeStopSequences(t *testing.T) {
	tests := []struct {
		name  string
		until []string
		want  []string
	}{{
		name: "nil",
		want: []string{},
	}, {
		name:  "keeps order",
		until: []string{"Q:", "###", "\n\nA"},
		want:  []string{"Q:", "###", "\n\nA"},
	}, {
		name:  "drops newline-only entries",
		until: []string{"\n", "\n\n", "\r\n", "###"},
		want:  []string{"###"},
	}, {
		name:  "drops blank entries",
		until: []string{"", "   ", "###", "\t"},
		want:  []string{"###"},
	}, {
		name:  "truncates to four",
		until: []string{"a", "b", "c", "d", "e", "f"},
		want:  []string{"a", "b", "c", "d"},
	}, {
		name:  "blank entries do not count toward the limit",
		until: []string{"", "a", " ", "b", "c", "d", "e"},
		want:  []string{"a", "b", "c", "d"},
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeStopSequences(tc.until)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("NormalizeStopSequences() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefaultsResolve(t *testing.T) {
	d := Defaults{Model: "m", MaxTokens: 128, Temperature: 0, TopP: 1}

	got := d.Resolve(Options{})
	want := Resolved{Model: "m", MaxTokens: 128, Temperature: 0, TopP: 1, StopSequences: []string{}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve(empty) mismatch (-want +got):\n%s", diff)
	}

	got = d.Resolve(Options{
		Until:       StopSequences{"\n", "Q:"},
		MaxGenToks:  Ptr[int64](16),
		Temperature: Ptr(0.7),
		TopP:        Ptr(0.9),
	})
	want = Resolved{Model: "m", MaxTokens: 16, Temperature: 0.7, TopP: 0.9, StopSequences: []string{"Q:"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve(overrides) mismatch (-want +got):\n%s", diff)
	}
}

func TestResolvedValidate(t *testing.T) {
	ok := Resolved{Model: "m", MaxTokens: 1, TopP: 1}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, wanted nil", err)
	}

	bad := map[string]Resolved{
		"zero tokens":   {MaxTokens: 0, TopP: 1},
		"negative temp": {MaxTokens: 1, Temperature: -0.1, TopP: 1},
		"top_p above 1": {MaxTokens: 1, TopP: 1.5},
		"five stops":    {MaxTokens: 1, TopP: 1, StopSequences: []string{"a", "b", "c", "d", "e"}},
	}
	for name, r := range bad {
		if err := r.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, wanted error", name)
		}
	}
}

func TestStopSequencesJSON(t *testing.T) {
	tests := []struct {
		in   string
		want StopSequences
	}{
		{in: `{"until": "\n\n"}`, want: StopSequences{"\n\n"}},
		{in: `{"until": ["a", "b"]}`, want: StopSequences{"a", "b"}},
		{in: `{"until": null}`, want: nil},
		{in: `{}`, want: nil},
	}
	for _, tc := range tests {
		var opts Options
		if err := json.Unmarshal([]byte(tc.in), &opts); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, opts.Until); diff != "" {
			t.Errorf("Unmarshal(%s) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}

	var opts Options
	if err := json.Unmarshal([]byte(`{"until": 3}`), &opts); err == nil {
		t.Error("Unmarshal(number) = nil, wanted error")
	}
}

func TestStopSequencesYAML(t *testing.T) {
	tests := []struct {
		in   string
		want StopSequences
	}{
		{in: "until: \"###\"\n", want: StopSequences{"###"}},
		{in: "until:\n  - \"\\n\"\n  - Q\n", want: StopSequences{"\n", "Q"}},
		{in: "max_gen_toks: 8\n", want: nil},
	}
	for _, tc := range tests {
		var opts Options
		if err := yaml.Unmarshal([]byte(tc.in), &opts); err != nil {
			t.Fatalf("Unmarshal(%q) error = %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, opts.Until); diff != "" {
			t.Errorf("Unmarshal(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}

	var opts Options
	if err := yaml.Unmarshal([]byte("until:\n  a: b\n"), &opts); err == nil {
		t.Error("Unmarshal(mapping) = nil, wanted error")
	}
}
