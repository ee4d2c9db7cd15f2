package runlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp:    testTime,
		AsOf:         time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Transactions: 412,
		Balances:     180,
		RedFlags:     1,
		Warnings:     3,
		Trend:        "declining",
		Outcome:      "ok",
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	err := Append(dir, []Entry{testEntry()})
	require.NoError(t, err)

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "declining", entries[0].Trend)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.Outcome = "insufficient data for nsf_count: no balance records in window"
	e2.RedFlags = 0
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "ok", entries[0].Outcome)
	assert.Contains(t, entries[1].Outcome, "insufficient data")
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := testEntry()
	require.NoError(t, Append(dir, []Entry{original}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	assert.True(t, original.AsOf.Equal(got.AsOf))
	assert.Equal(t, original.Transactions, got.Transactions)
	assert.Equal(t, original.Balances, got.Balances)
	assert.Equal(t, original.RedFlags, got.RedFlags)
	assert.Equal(t, original.Warnings, got.Warnings)
	assert.Equal(t, original.Trend, got.Trend)
	assert.Equal(t, original.Outcome, got.Outcome)
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logs", "analysis-log.csv"), []byte(Header+"\n"), 0o644))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestMarshalEntry_Formats(t *testing.T) {
	row := MarshalEntry(testEntry())
	require.Len(t, row, 8)
	assert.Equal(t, "2024-06-15T10:30:00Z", row[0])
	assert.Equal(t, "2024-06-15", row[1])
	assert.Equal(t, "412", row[2])
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected 8 fields")
}

func TestUnmarshalEntry_BadCount(t *testing.T) {
	row := MarshalEntry(testEntry())
	row[colTransactions] = "many"
	_, err := UnmarshalEntry(row)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing count")
}

func TestAppend_CreatesDir(t *testing.T) {
	dir := t.TempDir()
	err := Append(dir, []Entry{testEntry()})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
