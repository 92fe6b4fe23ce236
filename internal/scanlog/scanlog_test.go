package scanlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/smsledger/internal/model"
)

var testTime = time.Date(2025, 6, 30, 18, 0, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp: testTime,
		Source:    model.SourceSMS,
		Outcome:   OutcomeSaved,
		RecordID:  "sms_0b6f3c52-3f0e-4a8e-9d0a-4d3c2b1a0f9e",
		Amount:    decimal.RequireFromString("1200"),
		Details:   "HDFC Bank UPI SWIGGY",
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, OutcomeSaved, entries[0].Outcome)
	assert.True(t, entries[0].Amount.Equal(decimal.RequireFromString("1200")))
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	failed := Entry{
		Timestamp: testTime.Add(time.Minute),
		Source:    model.SourceSMS,
		Outcome:   OutcomeNoAmount,
		Details:   "Your OTP is 123456",
	}
	require.NoError(t, Append(dir, []Entry{failed}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, OutcomeSaved, entries[0].Outcome)
	assert.Equal(t, OutcomeNoAmount, entries[1].Outcome)
	assert.True(t, entries[1].Amount.IsZero())
	assert.Empty(t, entries[1].RecordID)
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0o755))
	require.NoError(t, os.WriteFile(Path(dir), []byte(Header+"\n"), 0o644))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestMarshalEntry(t *testing.T) {
	e := testEntry()
	e.Details = "Rs.500 debited\nfrom  a/c"
	row := MarshalEntry(e)
	require.Len(t, row, 6)
	assert.Equal(t, "2025-06-30T18:00:00Z", row[colTimestamp])
	assert.Equal(t, "1200.00", row[colAmount])
	assert.Equal(t, "Rs.500 debited from a/c", row[colDetails])

	e.Amount = decimal.Zero
	assert.Empty(t, MarshalEntry(e)[colAmount])
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	assert.ErrorContains(t, err, "expected 6 fields")

	_, err = UnmarshalEntry([]string{"yesterday", "MANUAL", "saved", "", "", ""})
	assert.ErrorContains(t, err, "parsing timestamp")

	_, err = UnmarshalEntry([]string{"2025-06-30T18:00:00Z", "MANUAL", "saved", "", "lots", ""})
	assert.ErrorContains(t, err, "parsing amount")
}

func TestAppend_CreatesDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
