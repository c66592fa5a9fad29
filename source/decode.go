// Package source reads the Cabinet Office national holiday list
// (syukujitsu.csv) into rows for syukujitsu.New.
//
// The published file is Shift_JIS encoded, starts with a header row whose
// first column contains "国民の祝日", and lists one holiday per line as
// "YYYY/M/D,name".
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/rabitt1ove/syukujitsu"
)

// headerMarker must appear in the first header column.
const headerMarker = "国民の祝日"

var (
	ErrBadHeader      = errors.New("source: unexpected header")
	ErrTooFewColumns  = errors.New("source: too few columns")
	ErrUnknownCharset = errors.New("source: unknown encoding")
)

// Encoding names accepted by DecodeWith.
const (
	ShiftJIS = "shift_jis"
	UTF8     = "utf-8"
)

// Decode parses a Shift_JIS encoded holiday list.
func Decode(r io.Reader) ([]syukujitsu.Row, error) {
	return parse(transform.NewReader(r, japanese.ShiftJIS.NewDecoder()))
}

// DecodeUTF8 parses a holiday list that has already been converted to UTF-8.
func DecodeUTF8(r io.Reader) ([]syukujitsu.Row, error) {
	return parse(r)
}

// DecodeWith parses r using the named encoding (ShiftJIS or UTF8).
func DecodeWith(r io.Reader, encoding string) ([]syukujitsu.Row, error) {
	switch strings.ToLower(encoding) {
	case ShiftJIS, "sjis", "":
		return Decode(r)
	case UTF8, "utf8":
		return DecodeUTF8(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, encoding)
	}
}

// ReadFile reads a Shift_JIS holiday list from disk.
func ReadFile(path string) ([]syukujitsu.Row, error) {
	return ReadFileWith(path, ShiftJIS)
}

// ReadFileWith reads a holiday list from disk using the named encoding.
func ReadFileWith(path, encoding string) ([]syukujitsu.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := DecodeWith(f, encoding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Load reads a Shift_JIS holiday list and builds a calendar from it.
func Load(path string) (*syukujitsu.Calendar, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return syukujitsu.New(rows)
}

func parse(r io.Reader) ([]syukujitsu.Row, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: %d columns, expected 2", ErrBadHeader, len(header))
	}
	if !strings.Contains(header[0], headerMarker) {
		return nil, fmt.Errorf("%w: %q does not contain %q", ErrBadHeader, header[0], headerMarker)
	}

	var rows []syukujitsu.Row
	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNum++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: %w: got %d", lineNum, ErrTooFewColumns, len(record))
		}

		dateStr := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if dateStr == "" || name == "" {
			continue
		}
		if _, _, _, err := syukujitsu.ParseDate(dateStr); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		rows = append(rows, syukujitsu.Row{Date: dateStr, Label: name})
	}
	return rows, nil
}
