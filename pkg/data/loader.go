package data

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInvalidRecord is returned when a stored record is missing a field
// or carries a value that is not an integer.
var ErrInvalidRecord = errors.New("invalid record")

// wireRecord distinguishes a missing field from an explicit zero.
type wireRecord struct {
	Feature *int `json:"Feature"`
	Target  *int `json:"Target"`
}

// Encode writes records as a single JSON array. A nil slice is written as [].
func Encode(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	return json.NewEncoder(w).Encode(records)
}

// Decode reads a complete JSON array of records from r.
func Decode(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var raw []wireRecord
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after array", ErrInvalidRecord)
	}

	out := make([]Record, len(raw))
	for i, wr := range raw {
		if wr.Feature == nil || wr.Target == nil {
			return nil, fmt.Errorf("%w: record %d is missing Feature or Target", ErrInvalidRecord, i)
		}
		out[i] = Record{Feature: *wr.Feature, Target: *wr.Target}
	}
	return out, nil
}

// WriteFile truncates path and stores records in it.
func WriteFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := Encode(w, records); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile loads every record stored in path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}
