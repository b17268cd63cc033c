/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package tasks

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a dataset file, choosing the format from its extension:
// .jsonl, .json or .csv.
func Load[T any](path string) (Dataset[T], error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".jsonl", ".ndjson":
		return LoadJSONL[T](path)
	case ".json":
		return LoadJSON[T](path)
	case ".csv":
		return LoadCSV[T](path)
	default:
		return Dataset[T]{}, fmt.Errorf("unsupported dataset format %q for %s", ext, path)
	}
}

// LoadJSONL reads one JSON object per line. Blank lines are skipped.
func LoadJSONL[T any](path string) (Dataset[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset[T]{}, err
	}
	defer f.Close()
	return DecodeJSONL[T](f)
}

// DecodeJSONL is LoadJSONL over a reader.
func DecodeJSONL[T any](r io.Reader) (Dataset[T], error) {
	var records []T
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 {
			continue
		}
		var rec T
		if err := json.Unmarshal(b, &rec); err != nil {
			return Dataset[T]{}, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return Dataset[T]{}, err
	}
	return Dataset[T]{records: records}, nil
}

// LoadJSON reads a JSON array of records.
func LoadJSON[T any](path string) (Dataset[T], error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Dataset[T]{}, err
	}
	var records []T
	if err := json.Unmarshal(b, &records); err != nil {
		return Dataset[T]{}, fmt.Errorf("%s: %w", path, err)
	}
	return Dataset[T]{records: records}, nil
}

// LoadCSV reads a CSV file with a header row.
func LoadCSV[T any](path string) (Dataset[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset[T]{}, err
	}
	defer f.Close()
	return DecodeCSV[T](f)
}

// DecodeCSV is LoadCSV over a reader. Each row becomes an object keyed by
// the header and is decoded into T through its json tags, so every field
// of T that is read from CSV must be a string.
func DecodeCSV[T any](r io.Reader) (Dataset[T], error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset[T]{}, nil
		}
		return Dataset[T]{}, fmt.Errorf("reading header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records []T
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Dataset[T]{}, fmt.Errorf("row %d: %w", row, err)
		}
		obj := make(map[string]string, len(header))
		for i, name := range header {
			obj[name] = fields[i]
		}
		b, err := json.Marshal(obj)
		if err != nil {
			return Dataset[T]{}, fmt.Errorf("row %d: %w", row, err)
		}
		var rec T
		if err := json.Unmarshal(b, &rec); err != nil {
			return Dataset[T]{}, fmt.Errorf("row %d: %w", row, err)
		}
		records = append(records, rec)
	}
	return Dataset[T]{records: records}, nil
}
