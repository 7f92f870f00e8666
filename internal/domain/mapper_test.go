package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog/internal/repository/sqlite"
)

func sampleEntry(notes string) Entry {
	started := time.Date(2017, 4, 14, 10, 0, 0, 0, time.UTC)
	return Entry{
		ID:            3,
		UID:           "uid-3",
		EmployeeName:  "Stuart McIntosh",
		CompletedTask: "Fix login",
		DateStarted:   started,
		DateCompleted: started.Add(45 * time.Minute),
		Notes:         notes,
		TimeTaken:     2700,
		TimeString:    "0 hours 45 minutes",
	}
}

func TestEntryMapper_ToDatabase(t *testing.T) {
	mapper := NewEntryMapper()

	result := mapper.ToDatabase(sampleEntry("Reset cache"))

	assert.Equal(t, int64(3), result.ID)
	assert.Equal(t, "uid-3", result.UID)
	assert.Equal(t, "Stuart McIntosh", result.EmployeeName)
	assert.Equal(t, "Fix login", result.CompletedTask)
	assert.Equal(t, int64(2700), result.TimeTaken)
	assert.Equal(t, "0 hours 45 minutes", result.TimeString)
	require.NotNil(t, result.Notes)
	assert.Equal(t, "Reset cache", *result.Notes)
}

func TestEntryMapper_ToDatabase_EmptyNotes(t *testing.T) {
	result := NewEntryMapper().ToDatabase(sampleEntry(""))
	assert.Nil(t, result.Notes)
}

func TestEntryMapper_RoundTrip(t *testing.T) {
	mapper := NewMapper()

	for _, notes := range []string{"", "two\nlines"} {
		original := sampleEntry(notes)
		assert.Equal(t, original, mapper.Entry.FromDatabase(mapper.Entry.ToDatabase(original)))
	}
}

func TestEntryMapper_FromDatabaseSlice(t *testing.T) {
	mapper := NewEntryMapper()
	notes := "n"
	dbEntries := []*sqlite.Entry{
		{ID: 1, EmployeeName: "Zoe Park", Notes: &notes},
		nil,
		{ID: 2, EmployeeName: "Ann Lee"},
	}

	result := mapper.FromDatabaseSlice(dbEntries)

	require.Len(t, result, 2)
	assert.Equal(t, "Zoe Park", result[0].EmployeeName)
	assert.Equal(t, "n", result[0].Notes)
	assert.Equal(t, "Ann Lee", result[1].EmployeeName)
	assert.Empty(t, result[1].Notes)
}

func TestEntryMapper_FromDatabaseSlice_Empty(t *testing.T) {
	result := NewEntryMapper().FromDatabaseSlice(nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
