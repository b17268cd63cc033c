/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package tasks

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDatasetTransforms(t *testing.T) {
	d := FromSlice([]int{1, 2, 3, 4})

	doubled := Map(d, func(i int) int { return i * 2 })
	if diff := cmp.Diff([]int{2, 4, 6, 8}, doubled.Records()); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}

	strs, err := MapErr(d, func(i int) (string, error) { return strconv.Itoa(i), nil })
	if err != nil {
		t.Fatalf("MapErr() error = %v", err)
	}
	if diff := cmp.Diff([]string{"1", "2", "3", "4"}, strs.Records()); diff != "" {
		t.Errorf("MapErr() mismatch (-want +got):\n%s", diff)
	}

	_, err = MapErr(d, func(i int) (int, error) {
		if i == 3 {
			return 0, errors.New("bad")
		}
		return i, nil
	})
	if err == nil || !strings.Contains(err.Error(), "record 2") {
		t.Errorf("MapErr() error = %v, wanted record 2", err)
	}

	pairs := FlatMap(d.Limit(2), func(i int) []int { return []int{i, -i} })
	if diff := cmp.Diff([]int{1, -1, 2, -2}, pairs.Records()); diff != "" {
		t.Errorf("FlatMap() mismatch (-want +got):\n%s", diff)
	}

	if got := d.Limit(0).Len(); got != 4 {
		t.Errorf("Limit(0).Len() = %d, wanted 4", got)
	}
	if got := d.Limit(10).Len(); got != 4 {
		t.Errorf("Limit(10).Len() = %d, wanted 4", got)
	}
	if got := d.At(2); got != 3 {
		t.Errorf("At(2) = %d, wanted 3", got)
	}
}

func TestDatasetIsImmutable(t *testing.T) {
	src := []int{1, 2}
	d := FromSlice(src)
	src[0] = 99
	recs := d.Records()
	recs[1] = 99
	if diff := cmp.Diff([]int{1, 2}, d.Records()); diff != "" {
		t.Errorf("dataset changed (-want +got):\n%s", diff)
	}
}

type row struct {
	ID      string `json:"id"`
	Proverb string `json:"Proverbs"`
}

func TestDecodeJSONL(t *testing.T) {
	in := `{"id": "1", "Proverbs": "الصبر مفتاح الفرج"}

{"id": "2", "Proverbs": "اللي فات مات"}
`
	got, err := DecodeJSONL[row](strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeJSONL() error = %v", err)
	}
	want := []row{{ID: "1", Proverb: "الصبر مفتاح الفرج"}, {ID: "2", Proverb: "اللي فات مات"}}
	if diff := cmp.Diff(want, got.Records()); diff != "" {
		t.Errorf("DecodeJSONL() mismatch (-want +got):\n%s", diff)
	}

	if _, err := DecodeJSONL[row](strings.NewReader("{\"id\": \"1\"}\nnot json\n")); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("DecodeJSONL(bad) error = %v, wanted line 2", err)
	}
}

func TestDecodeCSV(t *testing.T) {
	in := "\ufeffid,Proverbs,Extra\n1,\"الصبر مفتاح الفرج\",x\n2,اللي فات مات,y\n"
	got, err := DecodeCSV[row](strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	want := []row{{ID: "1", Proverb: "الصبر مفتاح الفرج"}, {ID: "2", Proverb: "اللي فات مات"}}
	if diff := cmp.Diff(want, got.Records()); diff != "" {
		t.Errorf("DecodeCSV() mismatch (-want +got):\n%s", diff)
	}

	empty, err := DecodeCSV[row](strings.NewReader(""))
	if err != nil || empty.Len() != 0 {
		t.Errorf("DecodeCSV(empty) = %d records, %v", empty.Len(), err)
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return p
	}

	for _, p := range []string{
		write("d.jsonl", `{"id": "1", "Proverbs": "a"}`+"\n"),
		write("d.json", `[{"id": "1", "Proverbs": "a"}]`),
		write("d.csv", "id,Proverbs\n1,a\n"),
	} {
		got, err := Load[row](p)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", p, err)
		}
		if diff := cmp.Diff([]row{{ID: "1", Proverb: "a"}}, got.Records()); diff != "" {
			t.Errorf("Load(%s) mismatch (-want +got):\n%s", p, diff)
		}
	}

	if _, err := Load[row](write("d.parquet", "")); err == nil {
		t.Error("Load(parquet) = nil error")
	}
}
