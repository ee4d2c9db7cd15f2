package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp    time.Time
	AsOf         time.Time
	Transactions int
	Balances     int
	RedFlags     int
	Warnings     int
	Trend        string
	Outcome      string
}

// Header is the CSV header for analysis-log.csv.
const Header = "timestamp,as_of,transactions,balances,red_flags,warnings,trend,outcome"

const (
	numFields  = 8
	logDir     = "logs"
	logFile    = "logs/analysis-log.csv"
	dateFormat = "2006-01-02"

	colTimestamp    = 0
	colAsOf         = 1
	colTransactions = 2
	colBalances     = 3
	colRedFlags     = 4
	colWarnings     = 5
	colTrend        = 6
	colOutcome      = 7
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colAsOf] = e.AsOf.Format(dateFormat)
	row[colTransactions] = strconv.Itoa(e.Transactions)
	row[colBalances] = strconv.Itoa(e.Balances)
	row[colRedFlags] = strconv.Itoa(e.RedFlags)
	row[colWarnings] = strconv.Itoa(e.Warnings)
	row[colTrend] = e.Trend
	row[colOutcome] = e.Outcome
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	asOf, err := time.Parse(dateFormat, record[colAsOf])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing as_of %q: %w", record[colAsOf], err)
	}

	counts := make([]int, 4)
	for i, col := range []int{colTransactions, colBalances, colRedFlags, colWarnings} {
		n, err := strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing count %q: %w", record[col], err)
		}
		counts[i] = n
	}

	return Entry{
		Timestamp:    ts,
		AsOf:         asOf,
		Transactions: counts[0],
		Balances:     counts[1],
		RedFlags:     counts[2],
		Warnings:     counts[3],
		Trend:        record[colTrend],
		Outcome:      record[colOutcome],
	}, nil
}

// Append writes entries to <root>/logs/analysis-log.csv, creating the file and
// header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/analysis-log.csv.
// Returns nil if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
